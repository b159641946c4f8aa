package product

import "context"

// Repository is the remote product service. Every call is a single
// request/response; failures carry no structured code callers rely on.
type Repository interface {
	List(ctx context.Context) ([]*Product, error)
	Update(ctx context.Context, p *Product) (*Product, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, term string) ([]*Product, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]*Product, error)
	ListOnPromotion(ctx context.Context) ([]*Product, error)
}
