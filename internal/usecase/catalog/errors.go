package catalog

import "errors"

var (
	ErrNotEditing        = errors.New("no product is being edited")
	ErrDeclined          = errors.New("action was not confirmed")
	ErrUnknownProduct    = errors.New("unknown product")
	ErrInvalidCategoryID = errors.New("invalid category id")
)
