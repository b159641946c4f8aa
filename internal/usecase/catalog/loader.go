package catalog

import (
	"context"
	"fmt"
)

// LoadProducts replaces the product list and resets the filtered view to
// show everything. On failure the current lists are kept and the error
// message is set.
func (s *Service) LoadProducts(ctx context.Context) error {
	products, err := s.products.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.log.WithError(err).Error("Failed to load products")
		s.erreur = msgLoadProductsFailed
		return fmt.Errorf("load products: %w", err)
	}

	s.bumpLocked()
	s.produits = products
	s.filtered = copyProducts(products)
	s.log.Infof("Loaded %d products", len(products))
	return nil
}

// LoadCategories replaces the category list. A failure only degrades the
// category picker, so it is logged and returned but never shown to the user.
func (s *Service) LoadCategories(ctx context.Context) error {
	categories, err := s.categories.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.log.WithError(err).Error("Failed to load categories")
		return fmt.Errorf("load categories: %w", err)
	}

	s.categoryList = categories
	s.log.Infof("Loaded %d categories", len(categories))
	return nil
}
