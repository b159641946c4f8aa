package http

import (
	"context"

	"example.com/catalog-admin/internal/usecase/catalog"
)

// requestPrompter answers confirmations from the request payload and keeps
// the notices raised while serving it.
type requestPrompter struct {
	confirm bool
	notices []noticeResponse
}

func (p *requestPrompter) Confirm(ctx context.Context, message string) bool {
	return p.confirm
}

func (p *requestPrompter) Notify(n catalog.Notice) {
	p.notices = append(p.notices, noticeResponse{Kind: string(n.Kind), Message: n.Message})
}

func (p *requestPrompter) list() []noticeResponse {
	if p == nil || p.notices == nil {
		return []noticeResponse{}
	}
	return p.notices
}
