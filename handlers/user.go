package handlers

import (
	"net/http"
	"strings"

	"admindash/controllers"
	"admindash/models"
)

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "home", "Welcome", nil)
}

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "login", "Login", &controllers.Login{})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess, svc := h.scope(r)
	c := controllers.NewLogin(sess, svc)
	creds := models.Credentials{
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
	}
	if !c.Submit(r.Context(), creds) {
		h.render(w, r, "login", "Login", c)
		return
	}
	http.Redirect(w, r, controllers.DashboardPath, http.StatusSeeOther)
}

func (h *Handler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "register", "Register", &controllers.Register{})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess, svc := h.scope(r)
	c := controllers.NewRegister(sess, svc)
	reg := models.Registration{
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
	}
	if !c.Submit(r.Context(), reg) {
		h.render(w, r, "register", "Register", c)
		return
	}
	flash(r, c.Success)
	http.Redirect(w, r, controllers.LoginPath, http.StatusSeeOther)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.scope(r)
	flash(r, controllers.Logout(sess))
	http.Redirect(w, r, controllers.LoginPath, http.StatusSeeOther)
}

// Profile shows the profile, in edit mode with ?edit=1.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	sess, svc := h.scope(r)
	c := controllers.NewProfile(sess, svc)
	c.Load(r.Context())
	if redirected(w, r, c.State) {
		return
	}
	if r.URL.Query().Get("edit") == "1" && c.State.Ready() {
		c.Edit()
	}
	h.render(w, r, "profile", "Profile", c)
}

// UpdateProfile handles the edit form's save and cancel buttons.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess, svc := h.scope(r)
	c := controllers.NewProfile(sess, svc)

	if r.PostFormValue("action") == "cancel" {
		c.Cancel(r.Context())
		if redirected(w, r, c.State) {
			return
		}
		h.render(w, r, "profile", "Profile", c)
		return
	}

	// Load first so a failed save can still show the read-only fields.
	c.Load(r.Context())
	if redirected(w, r, c.State) {
		return
	}
	c.Edit()
	notice, ok := c.Save(r.Context(), models.ProfileInput{
		FirstName: strings.TrimSpace(r.PostFormValue("first_name")),
		Bio:       r.PostFormValue("bio"),
	})
	if redirected(w, r, c.State) {
		return
	}
	if !ok {
		h.render(w, r, "profile", "Profile", c)
		return
	}
	flash(r, notice)
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}
