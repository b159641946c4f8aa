package catalog

import (
	"context"
	"fmt"
	"slices"

	domcategory "example.com/catalog-admin/internal/domain/category"
	domproduct "example.com/catalog-admin/internal/domain/product"
)

// StartEdit opens an edit session on a copy of p. The listed product is not
// touched until the update is confirmed by the backend.
func (s *Service) StartEdit(p *domproduct.Product) error {
	if p == nil {
		return ErrUnknownProduct
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.edit = &editSession{
		draft:    p.Clone(),
		selected: p.Categorie,
	}
	s.log.WithField("product_id", p.ID).Debug("Editing product")
	return nil
}

// EditDraft applies a form change to the draft.
func (s *Service) EditDraft(fn func(draft *domproduct.Product)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.edit == nil {
		return ErrNotEditing
	}
	fn(s.edit.draft)
	return nil
}

// SelectCategory picks the category to attach on submit. id 0 clears it.
func (s *Service) SelectCategory(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.edit == nil {
		return ErrNotEditing
	}
	if id == 0 {
		s.edit.selected = nil
		return nil
	}
	for _, c := range s.categoryList {
		if c.ID == id {
			s.edit.selected = c
			return nil
		}
	}
	return fmt.Errorf("category %d: %w", id, domcategory.ErrCategoryNotFound)
}

func (s *Service) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetLocked()
}

func (s *Service) resetLocked() {
	s.edit = nil
	s.erreur = ""
}

// SubmitEdit asks for confirmation and sends the draft to the backend. On
// success the listed product is replaced by the backend's version and the
// session ends. On failure the session stays open and the error message is
// set.
func (s *Service) SubmitEdit(ctx context.Context, pr Prompter) error {
	s.mu.Lock()
	session := s.edit
	if session == nil {
		s.mu.Unlock()
		return ErrNotEditing
	}
	name := session.draft.DisplayName(unnamedProduct)
	s.mu.Unlock()

	if !pr.Confirm(ctx, fmt.Sprintf(confirmUpdateFmt, name)) {
		return ErrDeclined
	}

	s.mu.Lock()
	if s.edit != session {
		s.mu.Unlock()
		return ErrNotEditing
	}
	session.draft.Categorie = session.selected
	draft := session.draft.Clone()
	s.mu.Unlock()

	updated, err := s.products.Update(ctx, draft)

	s.mu.Lock()
	if err != nil {
		s.erreur = msgUpdateFailed
		s.mu.Unlock()
		s.log.WithError(err).WithField("product_id", draft.ID).Error("Failed to update product")
		return fmt.Errorf("update product %d: %w", draft.ID, err)
	}
	if i := indexByID(s.produits, updated.ID); i >= 0 {
		s.produits[i] = updated
		s.refreshLocked()
	}
	if s.edit == session {
		s.resetLocked()
	}
	s.mu.Unlock()

	s.log.WithField("product_id", updated.ID).Info("Product updated")
	pr.Notify(Notice{Kind: NoticeSuccess, Message: noticeUpdated})
	return nil
}

// DeleteProduct asks for confirmation and deletes p on the backend. Outcomes
// are reported through notices only.
func (s *Service) DeleteProduct(ctx context.Context, p *domproduct.Product, pr Prompter) error {
	if p == nil {
		return ErrUnknownProduct
	}
	if !pr.Confirm(ctx, fmt.Sprintf(confirmDeleteFmt, p.DisplayName(unnamedProduct))) {
		return ErrDeclined
	}
	if !p.HasID() {
		pr.Notify(Notice{Kind: NoticeFailure, Message: noticeMissingID})
		return domproduct.ErrMissingID
	}

	if err := s.products.Delete(ctx, p.ID); err != nil {
		s.log.WithError(err).WithField("product_id", p.ID).Error("Failed to delete product")
		pr.Notify(Notice{Kind: NoticeFailure, Message: noticeDeleteFailed})
		return fmt.Errorf("delete product %d: %w", p.ID, err)
	}

	s.mu.Lock()
	if s.removeLocked(p) {
		s.refreshLocked()
	}
	s.mu.Unlock()

	s.log.WithField("product_id", p.ID).Info("Product deleted")
	pr.Notify(Notice{Kind: NoticeSuccess, Message: noticeDeleted})
	return nil
}

// removeLocked drops p from the product list, by reference first and by id
// when p is a copy (e.g. an entry from a server-side filter result).
func (s *Service) removeLocked(p *domproduct.Product) bool {
	i := slices.Index(s.produits, p)
	if i < 0 {
		i = indexByID(s.produits, p.ID)
	}
	if i < 0 {
		return false
	}
	s.produits = slices.Delete(s.produits, i, i+1)
	return true
}
