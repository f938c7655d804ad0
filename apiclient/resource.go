package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// Resource is one REST collection such as /api/categories/. Items are
// addressed as <path><key>/.
type Resource[T any] struct {
	client *Client
	path   string
}

func NewResource[T any](client *Client, path string) *Resource[T] {
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	return &Resource[T]{client: client, path: path}
}

func (r *Resource[T]) itemPath(key string) string {
	return r.path + url.PathEscape(key) + "/"
}

// List fetches the whole collection. Empty query values are dropped.
func (r *Resource[T]) List(ctx context.Context, query url.Values) ([]T, error) {
	var items []T
	err := r.client.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   r.path,
		Query:  compact(query),
		Auth:   true,
	}, &items)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (r *Resource[T]) Get(ctx context.Context, key string) (*T, error) {
	var item T
	err := r.client.Do(ctx, Request{Method: http.MethodGet, Path: r.itemPath(key), Auth: true}, &item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Resource[T]) Create(ctx context.Context, payload interface{}) (*T, error) {
	var item T
	err := r.client.Do(ctx, Request{Method: http.MethodPost, Path: r.path, Body: payload, Auth: true}, &item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Resource[T]) Update(ctx context.Context, key string, payload interface{}) (*T, error) {
	var item T
	err := r.client.Do(ctx, Request{Method: http.MethodPut, Path: r.itemPath(key), Body: payload, Auth: true}, &item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Resource[T]) Delete(ctx context.Context, key string) error {
	return r.client.Do(ctx, Request{Method: http.MethodDelete, Path: r.itemPath(key), Auth: true}, nil)
}

func compact(query url.Values) url.Values {
	if len(query) == 0 {
		return nil
	}
	out := url.Values{}
	for k, values := range query {
		for _, v := range values {
			if v != "" {
				out.Add(k, v)
			}
		}
	}
	return out
}
