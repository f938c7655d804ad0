package services

import (
	"context"
	"net/url"

	"admindash/apiclient"
	"admindash/models"
	"admindash/validation"
)

type Products struct {
	res *apiclient.Resource[models.Product]
}

func NewProducts(client *apiclient.Client) *Products {
	return &Products{res: apiclient.NewResource[models.Product](client, "/api/products/")}
}

func (p *Products) List(ctx context.Context, search string) ([]models.Product, error) {
	return p.res.List(ctx, url.Values{"search": {search}})
}

func (p *Products) Get(ctx context.Context, slug string) (*models.Product, error) {
	return p.res.Get(ctx, slug)
}

func (p *Products) Create(ctx context.Context, input models.ProductInput) (*models.Product, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	return p.res.Create(ctx, input)
}

func (p *Products) Update(ctx context.Context, slug string, input models.ProductInput) (*models.Product, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	return p.res.Update(ctx, slug, input)
}

func (p *Products) Delete(ctx context.Context, slug string) error {
	return p.res.Delete(ctx, slug)
}
