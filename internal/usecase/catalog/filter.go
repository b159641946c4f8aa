package catalog

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	domproduct "example.com/catalog-admin/internal/domain/product"
)

// Criteria are the three filter dimensions of the product list.
type Criteria struct {
	SearchTerm    string
	CategoryID    int64
	PromotionOnly bool
}

// Active reports whether at least one criterion restricts the list.
func (c Criteria) Active() bool {
	return strings.TrimSpace(c.SearchTerm) != "" || c.CategoryID != 0 || c.PromotionOnly
}

// Matches reports whether p satisfies every active criterion.
func (c Criteria) Matches(p *domproduct.Product) bool {
	passes := true
	if term := strings.TrimSpace(c.SearchTerm); term != "" {
		passes = passes && strings.Contains(strings.ToLower(p.Designation), strings.ToLower(term))
	}
	if c.CategoryID != 0 {
		passes = passes && p.CategoryID() == c.CategoryID
	}
	if c.PromotionOnly {
		passes = passes && p.EnPromotion
	}
	return passes
}

type fetchFunc func(ctx context.Context) ([]*domproduct.Product, error)

// SearchByName sets the search term. A non-empty term is searched on the
// backend; an empty one re-derives the view locally.
func (s *Service) SearchByName(ctx context.Context, term string) {
	s.mu.Lock()
	s.criteria.SearchTerm = term
	tok := s.bumpLocked()
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		s.applyFiltersLocked()
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	s.fetchFiltered(ctx, tok, "search", func(ctx context.Context) ([]*domproduct.Product, error) {
		return s.products.Search(ctx, trimmed)
	})
}

// FilterByCategory sets the category criterion. id may be a number or a
// numeric string; nil, "" and 0 clear the criterion.
func (s *Service) FilterByCategory(ctx context.Context, id any) error {
	categoryID, err := ParseCategoryID(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.criteria.CategoryID = categoryID
	tok := s.bumpLocked()
	if categoryID == 0 {
		s.applyFiltersLocked()
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	s.fetchFiltered(ctx, tok, "category", func(ctx context.Context) ([]*domproduct.Product, error) {
		return s.products.ListByCategory(ctx, categoryID)
	})
	return nil
}

// FilterByPromotion sets the promotion criterion.
func (s *Service) FilterByPromotion(ctx context.Context, only bool) {
	s.mu.Lock()
	s.criteria.PromotionOnly = only
	tok := s.bumpLocked()
	if !only {
		s.applyFiltersLocked()
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	s.fetchFiltered(ctx, tok, "promotion", s.products.ListOnPromotion)
}

// ResetFilters clears every criterion and shows the whole list without
// asking the backend.
func (s *Service) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bumpLocked()
	s.criteria = Criteria{}
	s.filtered = copyProducts(s.produits)
}

// fetchFiltered runs a backend filter and applies its result unless a newer
// view change was issued while it was in flight. Backend failures fall back
// to filtering the local list.
func (s *Service) fetchFiltered(ctx context.Context, tok uint64, name string, fetch fetchFunc) {
	result, err := fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.log.WithField("filter", name)
	if tok != s.token {
		log.Debugf("Dropping stale filter result (token %d, latest %d)", tok, s.token)
		return
	}
	if err != nil {
		log.WithError(err).Warn("Backend filter failed, filtering locally")
		s.filterLocallyLocked()
		return
	}
	s.filtered = result
}

// refreshLocked re-derives the view after a change to the product list.
func (s *Service) refreshLocked() {
	s.bumpLocked()
	s.applyFiltersLocked()
}

func (s *Service) applyFiltersLocked() {
	if !s.criteria.Active() {
		s.filtered = copyProducts(s.produits)
		return
	}
	s.filterLocallyLocked()
}

func (s *Service) filterLocallyLocked() {
	out := make([]*domproduct.Product, 0, len(s.produits))
	for _, p := range s.produits {
		if s.criteria.Matches(p) {
			out = append(out, p)
		}
	}
	s.filtered = out
}

// ParseCategoryID normalizes a category id coming from a form or a JSON
// payload. nil, blank strings and 0 mean "no category".
func ParseCategoryID(v any) (int64, error) {
	var (
		id  int64
		err error
	)
	switch val := v.(type) {
	case nil:
		return 0, nil
	case string:
		val = strings.TrimSpace(val)
		if val == "" {
			return 0, nil
		}
		id, err = strconv.ParseInt(val, 10, 64)
	case bool:
		err = ErrInvalidCategoryID
	case float64:
		if val != math.Trunc(val) {
			err = ErrInvalidCategoryID
		}
		id = int64(val)
	default:
		id, err = cast.ToInt64E(val)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidCategoryID, v)
	}
	if id < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCategoryID, id)
	}
	return id, nil
}
