package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"admindash/controllers"
	"admindash/models"
)

const categoriesPath = "/categories"

func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	sess, svc := h.scope(r)
	list := controllers.NewCategoryList(sess, svc)
	list.Load(r.Context(), strings.TrimSpace(r.URL.Query().Get("search")))
	if redirected(w, r, list.State) {
		return
	}
	h.render(w, r, "categories", "Categories", list)
}

// CategoryForm shows the add form, or the edit form when the route has a slug.
func (h *Handler) CategoryForm(w http.ResponseWriter, r *http.Request) {
	sess, svc := h.scope(r)
	form := controllers.NewCategoryForm(sess, svc, mux.Vars(r)["slug"])
	form.Load(r.Context())
	if redirected(w, r, form.State) {
		return
	}
	h.render(w, r, "category_form", categoryTitle(form), form)
}

func (h *Handler) SaveCategory(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess, svc := h.scope(r)
	form := controllers.NewCategoryForm(sess, svc, mux.Vars(r)["slug"])
	notice, ok := form.Save(r.Context(), models.CategoryInput{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
	})
	if redirected(w, r, form.State) {
		return
	}
	if !ok {
		h.render(w, r, "category_form", categoryTitle(form), form)
		return
	}
	flash(r, notice)
	http.Redirect(w, r, categoriesPath, http.StatusSeeOther)
}

// ConfirmDeleteCategory asks before deleting.
func (h *Handler) ConfirmDeleteCategory(w http.ResponseWriter, r *http.Request) {
	sess, svc := h.scope(r)
	form := controllers.NewCategoryForm(sess, svc, mux.Vars(r)["slug"])
	form.Load(r.Context())
	if redirected(w, r, form.State) {
		return
	}
	h.render(w, r, "category_delete", "Delete Category", form)
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	sess, svc := h.scope(r)
	list := controllers.NewCategoryList(sess, svc)
	message, _ := list.Delete(r.Context(), mux.Vars(r)["slug"])
	if redirected(w, r, list.State) {
		return
	}
	flash(r, message)
	http.Redirect(w, r, categoriesPath, http.StatusSeeOther)
}

func categoryTitle(form *controllers.CategoryForm) string {
	if form.Editing() {
		return "Edit Category"
	}
	return "Add Category"
}
