package services

import (
	"context"
	"net/url"

	"admindash/apiclient"
	"admindash/models"
	"admindash/validation"
)

type Categories struct {
	res *apiclient.Resource[models.Category]
}

func NewCategories(client *apiclient.Client) *Categories {
	return &Categories{res: apiclient.NewResource[models.Category](client, "/api/categories/")}
}

// List returns all categories, filtered by name when search is not empty.
func (c *Categories) List(ctx context.Context, search string) ([]models.Category, error) {
	return c.res.List(ctx, url.Values{"name": {search}})
}

func (c *Categories) Get(ctx context.Context, slug string) (*models.Category, error) {
	return c.res.Get(ctx, slug)
}

func (c *Categories) Create(ctx context.Context, input models.CategoryInput) (*models.Category, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	return c.res.Create(ctx, input)
}

func (c *Categories) Update(ctx context.Context, slug string, input models.CategoryInput) (*models.Category, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	return c.res.Update(ctx, slug, input)
}

func (c *Categories) Delete(ctx context.Context, slug string) error {
	return c.res.Delete(ctx, slug)
}
