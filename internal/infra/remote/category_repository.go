package remote

import (
	"context"
	"net/http"

	domcategory "example.com/catalog-admin/internal/domain/category"
)

type CategoryRepository struct {
	client *Client
}

var _ domcategory.Repository = (*CategoryRepository)(nil)

func NewCategoryRepository(client *Client) *CategoryRepository {
	return &CategoryRepository{client: client}
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domcategory.Category, error) {
	var categories []*domcategory.Category
	if err := r.client.do(ctx, http.MethodGet, "/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []*domcategory.Category{}
	}
	return categories, nil
}
