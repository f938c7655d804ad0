package models

// Profile is the authenticated user's editable profile. Email is read-only.
type Profile struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	Bio       string `json:"bio"`
}

// ProfileInput is the PUT body for /api/profile/.
type ProfileInput struct {
	FirstName string `json:"first_name"`
	Bio       string `json:"bio"`
}

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Registration struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"notblank"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is returned by login and register.
type TokenResponse struct {
	Access string `json:"access"`
}
