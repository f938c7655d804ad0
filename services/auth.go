package services

import (
	"context"
	"errors"
	"net/http"

	"admindash/apiclient"
	"admindash/models"
	"admindash/validation"
)

const (
	loginPath    = "/api/login/"
	registerPath = "/api/register/"
)

var errNoAccessToken = errors.New("response carried no access token")

// Auth exchanges credentials for a bearer token. It never touches the session.
type Auth struct {
	client *apiclient.Client
}

func NewAuth(client *apiclient.Client) *Auth {
	return &Auth{client: client}
}

func (a *Auth) Login(ctx context.Context, creds models.Credentials) (string, error) {
	if err := validation.Struct(creds); err != nil {
		return "", err
	}
	return a.exchange(ctx, loginPath, creds)
}

func (a *Auth) Register(ctx context.Context, reg models.Registration) (string, error) {
	if err := validation.Struct(reg); err != nil {
		return "", err
	}
	return a.exchange(ctx, registerPath, reg)
}

func (a *Auth) exchange(ctx context.Context, path string, body interface{}) (string, error) {
	var resp models.TokenResponse
	err := a.client.Do(ctx, apiclient.Request{Method: http.MethodPost, Path: path, Body: body}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Access == "" {
		return "", &apiclient.Error{
			Kind:   apiclient.KindServerRejected,
			Status: http.StatusOK,
			Method: http.MethodPost,
			Path:   path,
			Err:    errNoAccessToken,
		}
	}
	return resp.Access, nil
}
