package services

import (
	"context"
	"net/http"

	"admindash/apiclient"
	"admindash/models"
)

const profilePath = "/api/profile/"

type Profile struct {
	client *apiclient.Client
}

func NewProfile(client *apiclient.Client) *Profile {
	return &Profile{client: client}
}

func (p *Profile) Get(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	err := p.client.Do(ctx, apiclient.Request{Method: http.MethodGet, Path: profilePath, Auth: true}, &profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update saves the editable fields. Email is never sent.
func (p *Profile) Update(ctx context.Context, input models.ProfileInput) (*models.Profile, error) {
	var profile models.Profile
	err := p.client.Do(ctx, apiclient.Request{Method: http.MethodPut, Path: profilePath, Body: input, Auth: true}, &profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
