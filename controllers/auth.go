package controllers

import (
	"context"

	"go.uber.org/zap"

	"admindash/apiclient"
	"admindash/models"
	"admindash/services"
	"admindash/session"
)

const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"

	msgLoginFailed        = "Login failed. Please try again."
	msgRegisterFailed     = "Registration failed. Please try again."
	msgRegisterSucceeded  = "Registration successful! Please log in."
	msgLoggedOut          = "Logged out successfully."
	msgSessionUnavailable = "Could not save the session. Please try again."
)

// Login exchanges credentials for a token and stores it in the session.
type Login struct {
	sess *session.Session
	auth *services.Auth

	Email string
	Error string
}

func NewLogin(sess *session.Session, svc *services.Services) *Login {
	return &Login{sess: sess, auth: svc.Auth}
}

// Submit reports whether the user is now logged in.
func (c *Login) Submit(ctx context.Context, creds models.Credentials) bool {
	c.Email = creds.Email
	c.Error = ""

	token, err := c.auth.Login(ctx, creds)
	if err != nil {
		zap.S().Infow("login failed", "email", creds.Email, "kind", apiclient.KindOf(err).String())
		c.Error = loginError(err)
		return false
	}
	if err := c.sess.SetToken(token); err != nil {
		zap.S().Errorw("storing session token failed", "error", err)
		c.Error = msgSessionUnavailable
		return false
	}
	return true
}

// loginError shows the backend's detail when it gives one. A 401 here means
// bad credentials, not an expired session.
func loginError(err error) string {
	apiErr, ok := apiclient.AsError(err)
	if !ok {
		return msgLoginFailed
	}
	switch apiErr.Kind {
	case apiclient.KindNetworkUnavailable, apiclient.KindValidationFailed:
		return ErrorMessage(err, "Account")
	}
	if detail := apiErr.Detail(); detail != "" {
		return detail
	}
	return msgLoginFailed
}

// Register creates an account. On success the token is stored and the user
// is sent to the login screen with Success set.
type Register struct {
	sess *session.Session
	auth *services.Auth

	Email    string
	Username string
	Error    string
	Success  string
}

func NewRegister(sess *session.Session, svc *services.Services) *Register {
	return &Register{sess: sess, auth: svc.Auth}
}

func (c *Register) Submit(ctx context.Context, reg models.Registration) bool {
	c.Email = reg.Email
	c.Username = reg.Username
	c.Error = ""
	c.Success = ""

	token, err := c.auth.Register(ctx, reg)
	if err != nil {
		c.Error = registerError(err)
		return false
	}
	if err := c.sess.SetToken(token); err != nil {
		zap.S().Errorw("storing session token failed", "error", err)
		c.Error = msgSessionUnavailable
		return false
	}
	c.Success = msgRegisterSucceeded
	return true
}

func registerError(err error) string {
	apiErr, ok := apiclient.AsError(err)
	if !ok {
		return msgRegisterFailed
	}
	switch apiErr.Kind {
	case apiclient.KindNetworkUnavailable, apiclient.KindValidationFailed:
		return ErrorMessage(err, "Account")
	}
	if detail := apiErr.Detail(); detail != "" {
		return detail
	}
	if flat := apiErr.Flatten(); flat != "" {
		return flat
	}
	return msgRegisterFailed
}

// Logout clears the session and returns the notice to show on the login screen.
func Logout(sess *session.Session) string {
	clearSession(sess)
	return msgLoggedOut
}
