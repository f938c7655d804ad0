package models

import "github.com/shopspring/decimal"

type Product struct {
	ID           int64           `json:"id"`
	Slug         string          `json:"slug"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	Category     int64           `json:"category"`
	CategoryName string          `json:"category_name"`
	Image        *string         `json:"image"`
	UpdatedAt    Timestamp       `json:"updated_at"`
}

// ImageURL returns the product image or "" when the backend has none.
func (p Product) ImageURL() string {
	if p.Image == nil {
		return ""
	}
	return *p.Image
}

// InStock reports whether at least one unit is available.
func (p Product) InStock() bool {
	return p.Stock > 0
}

type ProductInput struct {
	Name        string          `json:"name" validate:"notblank"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"gte=0"`
	Stock       int             `json:"stock" validate:"gte=0"`
	Category    int64           `json:"category" validate:"required"`
}
