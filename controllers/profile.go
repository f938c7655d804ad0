package controllers

import (
	"context"

	"admindash/models"
	"admindash/services"
	"admindash/session"
)

const msgProfileUpdated = "Profile updated successfully."

// Profile shows the user's profile with an edit/cancel toggle.
type Profile struct {
	sess *session.Session
	svc  *services.Profile

	State   *ViewState[*models.Profile]
	Editing bool
	Input   models.ProfileInput
	Error   string
}

func NewProfile(sess *session.Session, svc *services.Services) *Profile {
	return &Profile{sess: sess, svc: svc.Profile, State: NewViewState[*models.Profile]()}
}

func (c *Profile) Load(ctx context.Context) Phase {
	phase := c.State.Load(ctx, c.sess, "Profile", c.svc.Get)
	if p := c.State.Data(); phase == PhaseReady && p != nil {
		c.Input = models.ProfileInput{FirstName: p.FirstName, Bio: p.Bio}
	}
	return phase
}

func (c *Profile) Edit() {
	c.Editing = true
}

// Cancel leaves edit mode and refetches, discarding unsaved input.
func (c *Profile) Cancel(ctx context.Context) Phase {
	c.Editing = false
	c.Error = ""
	return c.Load(ctx)
}

// Save writes the editable fields. On success the form leaves edit mode with
// the saved values; on failure it stays in edit mode with Error set.
func (c *Profile) Save(ctx context.Context, input models.ProfileInput) (string, bool) {
	c.Input = input
	c.Error = ""
	if !c.sess.Authenticated() {
		c.State.Redirect()
		return "", false
	}

	saved, err := c.svc.Update(ctx, input)
	if err != nil {
		if mutationFailed(c.sess, c.State, err) {
			return "", false
		}
		c.Editing = true
		c.Error = fieldErrors(err, "Profile")
		return "", false
	}

	c.State.Resolve(c.sess, c.State.Begin(), "Profile", saved, nil)
	c.Editing = false
	c.Input = models.ProfileInput{FirstName: saved.FirstName, Bio: saved.Bio}
	return msgProfileUpdated, true
}
