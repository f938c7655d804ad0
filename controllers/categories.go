package controllers

import (
	"context"

	"admindash/models"
	"admindash/services"
	"admindash/session"
)

const (
	msgCategoryCreated = "Category created successfully."
	msgCategoryUpdated = "Category updated successfully."
	msgCategoryDeleted = "Category deleted successfully."
)

// CategoryList shows categories with a name search and delete action.
type CategoryList struct {
	sess *session.Session
	svc  *services.Categories

	State  *ViewState[[]models.Category]
	Search string
	Notice string
}

func NewCategoryList(sess *session.Session, svc *services.Services) *CategoryList {
	return &CategoryList{sess: sess, svc: svc.Categories, State: NewViewState[[]models.Category]()}
}

func (c *CategoryList) Load(ctx context.Context, search string) Phase {
	c.Search = search
	return c.State.Load(ctx, c.sess, "Category", func(ctx context.Context) ([]models.Category, error) {
		return c.svc.List(ctx, search)
	})
}

// Delete removes the category and refetches the list with the current search.
// The returned text is the notice or error to show.
func (c *CategoryList) Delete(ctx context.Context, slug string) (string, bool) {
	if !c.sess.Authenticated() {
		c.State.Redirect()
		return msgUnauthorized, false
	}
	if err := c.svc.Delete(ctx, slug); err != nil {
		if mutationFailed(c.sess, c.State, err) {
			return msgUnauthorized, false
		}
		return ErrorMessage(err, "Category"), false
	}
	c.Notice = msgCategoryDeleted
	c.Load(ctx, c.Search)
	return msgCategoryDeleted, true
}

// CategoryForm adds a category, or edits one when Slug is set.
type CategoryForm struct {
	sess *session.Session
	svc  *services.Categories

	Slug  string
	Input models.CategoryInput
	State *ViewState[*models.Category]
	Error string
}

func NewCategoryForm(sess *session.Session, svc *services.Services, slug string) *CategoryForm {
	return &CategoryForm{sess: sess, svc: svc.Categories, Slug: slug, State: NewViewState[*models.Category]()}
}

func (f *CategoryForm) Editing() bool {
	return f.Slug != ""
}

// Load gates the form and, when editing, fills it from the backend.
func (f *CategoryForm) Load(ctx context.Context) Phase {
	if !f.Editing() {
		return f.State.Load(ctx, f.sess, "Category", func(context.Context) (*models.Category, error) {
			return &models.Category{}, nil
		})
	}
	phase := f.State.Load(ctx, f.sess, "Category", func(ctx context.Context) (*models.Category, error) {
		return f.svc.Get(ctx, f.Slug)
	})
	if category := f.State.Data(); phase == PhaseReady && category != nil {
		f.Input = models.CategoryInput{Name: category.Name, Description: category.Description}
	}
	return phase
}

// Save creates or updates and returns the success notice. On failure Error
// holds the message and the input is kept for redisplay.
func (f *CategoryForm) Save(ctx context.Context, input models.CategoryInput) (string, bool) {
	f.Input = input
	f.Error = ""
	if !f.sess.Authenticated() {
		f.State.Redirect()
		return "", false
	}

	var err error
	notice := msgCategoryCreated
	if f.Editing() {
		_, err = f.svc.Update(ctx, f.Slug, input)
		notice = msgCategoryUpdated
	} else {
		_, err = f.svc.Create(ctx, input)
	}
	if err != nil {
		if !mutationFailed(f.sess, f.State, err) {
			f.Error = fieldErrors(err, "Category")
		}
		return "", false
	}
	return notice, true
}
