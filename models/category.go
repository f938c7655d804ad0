package models

// Category is a product grouping. Slug is the routing key, ID is what products reference.
type Category struct {
	ID          int64  `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryInput is the body sent when creating or editing a category.
type CategoryInput struct {
	Name        string `json:"name" validate:"notblank,max=100"`
	Description string `json:"description"`
}
