package category

import "context"

// Repository is the remote category service.
type Repository interface {
	List(ctx context.Context) ([]*Category, error)
}
