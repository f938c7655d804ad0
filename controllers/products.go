package controllers

import (
	"context"

	"admindash/models"
	"admindash/services"
	"admindash/session"
)

// ProductList shows products with a free-text search.
type ProductList struct {
	sess *session.Session
	svc  *services.Products

	State  *ViewState[[]models.Product]
	Search string
}

func NewProductList(sess *session.Session, svc *services.Services) *ProductList {
	return &ProductList{sess: sess, svc: svc.Products, State: NewViewState[[]models.Product]()}
}

func (c *ProductList) Load(ctx context.Context, search string) Phase {
	c.Search = search
	return c.State.Load(ctx, c.sess, "Product", func(ctx context.Context) ([]models.Product, error) {
		return c.svc.List(ctx, search)
	})
}

// Empty reports a successful load with nothing to show.
func (c *ProductList) Empty() bool {
	return c.State.Ready() && len(c.State.Data()) == 0
}

type ProductDetail struct {
	sess *session.Session
	svc  *services.Products

	Slug  string
	State *ViewState[*models.Product]
}

func NewProductDetail(sess *session.Session, svc *services.Services, slug string) *ProductDetail {
	return &ProductDetail{sess: sess, svc: svc.Products, Slug: slug, State: NewViewState[*models.Product]()}
}

func (c *ProductDetail) Load(ctx context.Context) Phase {
	return c.State.Load(ctx, c.sess, "Product", func(ctx context.Context) (*models.Product, error) {
		return c.svc.Get(ctx, c.Slug)
	})
}

// StockClass colours the stock figure: out of stock, low, or plenty.
func StockClass(stock int) string {
	switch {
	case stock <= 0:
		return "stock-out"
	case stock < 10:
		return "stock-low"
	default:
		return "stock-ok"
	}
}
