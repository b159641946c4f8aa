package catalog

import "context"

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeFailure NoticeKind = "failure"
)

// Notice is a transient message for the user. It is never kept in state.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// Prompter is the presentation layer's side of an interactive action: a
// yes/no confirmation before destructive calls, and notices about outcomes.
type Prompter interface {
	Confirm(ctx context.Context, message string) bool
	Notify(n Notice)
}

const (
	unnamedProduct = "Unnamed"

	msgLoadProductsFailed = "Error while loading products"
	msgUpdateFailed       = "Error while updating the product"

	confirmUpdateFmt = "Confirm update of product: %s ?"
	confirmDeleteFmt = "Delete product: %s ?"

	noticeUpdated      = "Product updated successfully!"
	noticeDeleted      = "Product deleted successfully!"
	noticeDeleteFailed = "Error while deleting the product"
	noticeMissingID    = "Cannot delete: product id is missing"
)
