package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	domproduct "example.com/catalog-admin/internal/domain/product"
)

const productsPath = "/produits"

type ProductRepository struct {
	client *Client
}

var _ domproduct.Repository = (*ProductRepository)(nil)

func NewProductRepository(client *Client) *ProductRepository {
	return &ProductRepository{client: client}
}

func (r *ProductRepository) List(ctx context.Context) ([]*domproduct.Product, error) {
	return r.list(ctx, productsPath, nil)
}

func (r *ProductRepository) Update(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	if !p.HasID() {
		return nil, domproduct.ErrMissingID
	}
	var updated domproduct.Product
	err := r.client.do(ctx, http.MethodPut, productPath(p.ID), nil, p, &updated)
	if err != nil {
		return nil, notFound(err)
	}
	return &updated, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	if id == 0 {
		return domproduct.ErrMissingID
	}
	return notFound(r.client.do(ctx, http.MethodDelete, productPath(id), nil, nil, nil))
}

func (r *ProductRepository) Search(ctx context.Context, term string) ([]*domproduct.Product, error) {
	return r.list(ctx, productsPath+"/search", url.Values{"designation": {term}})
}

func (r *ProductRepository) ListByCategory(ctx context.Context, categoryID int64) ([]*domproduct.Product, error) {
	return r.list(ctx, productsPath+"/categorie/"+strconv.FormatInt(categoryID, 10), nil)
}

func (r *ProductRepository) ListOnPromotion(ctx context.Context) ([]*domproduct.Product, error) {
	return r.list(ctx, productsPath+"/promotion", nil)
}

func (r *ProductRepository) list(ctx context.Context, path string, query url.Values) ([]*domproduct.Product, error) {
	var products []*domproduct.Product
	if err := r.client.do(ctx, http.MethodGet, path, query, nil, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []*domproduct.Product{}
	}
	return products, nil
}

func productPath(id int64) string {
	return productsPath + "/" + strconv.FormatInt(id, 10)
}

// notFound tags a 404 so callers can match domproduct.ErrProductNotFound.
func notFound(err error) error {
	var se *StatusError
	if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %w", domproduct.ErrProductNotFound, err)
	}
	return err
}
