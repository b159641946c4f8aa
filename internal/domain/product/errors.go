package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrMissingID       = errors.New("product id is missing")
)
