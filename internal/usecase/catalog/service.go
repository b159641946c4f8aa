package catalog

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	domcategory "example.com/catalog-admin/internal/domain/category"
	domproduct "example.com/catalog-admin/internal/domain/product"
)

type Dependencies struct {
	Products   domproduct.Repository
	Categories domcategory.Repository
	Logger     logrus.FieldLogger
}

// Service holds the admin screen's state: the product and category lists,
// the filtered view, the edit session and the persistent error message.
//
// All state sits behind mu. The lock is never held across a remote call;
// results are applied afterwards, and filter results only when no newer view
// change has been issued in the meantime (see token).
type Service struct {
	products   domproduct.Repository
	categories domcategory.Repository
	log        logrus.FieldLogger

	mu           sync.Mutex
	produits     []*domproduct.Product
	categoryList []*domcategory.Category
	filtered     []*domproduct.Product
	edit         *editSession
	erreur       string
	criteria     Criteria
	token        uint64
}

// editSession is present only while a product is being edited.
type editSession struct {
	draft    *domproduct.Product
	selected *domcategory.Category
}

// View is a snapshot of the state the presentation layer renders. Products
// are copies; mutating them does not affect the service.
type View struct {
	Products         []*domproduct.Product
	Categories       []*domcategory.Category
	Filtered         []*domproduct.Product
	Draft            *domproduct.Product
	SelectedCategory *domcategory.Category
	EditMode         bool
	Error            string
	Criteria         Criteria
}

func NewService(deps Dependencies) *Service {
	logger := deps.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Service{
		products:   deps.Products,
		categories: deps.Categories,
		log:        logger.WithField("component", "catalog"),
		produits:   []*domproduct.Product{},
		filtered:   []*domproduct.Product{},
	}
}

// Init loads products and categories concurrently. A category failure is
// only logged; a product failure is returned.
func (s *Service) Init(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error {
		return s.LoadProducts(ctx)
	})
	g.Go(func() error {
		_ = s.LoadCategories(ctx)
		return nil
	})
	return g.Wait()
}

func (s *Service) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		Products:   cloneProducts(s.produits),
		Categories: cloneCategories(s.categoryList),
		Filtered:   cloneProducts(s.filtered),
		Error:      s.erreur,
		Criteria:   s.criteria,
	}
	if s.edit != nil {
		v.EditMode = true
		v.Draft = snapshotProduct(s.edit.draft)
		if s.edit.selected != nil {
			c := *s.edit.selected
			v.SelectedCategory = &c
		}
	}
	return v
}

// Lookup returns the stored entry for id, searching the product list first
// and then the filtered view. The returned pointer is the service's own
// entry, suitable for DeleteProduct and StartEdit.
func (s *Service) Lookup(id int64) (*domproduct.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := indexByID(s.produits, id); i >= 0 {
		return s.produits[i], true
	}
	if i := indexByID(s.filtered, id); i >= 0 {
		return s.filtered[i], true
	}
	return nil, false
}

// FilteredAt returns the i-th entry (zero based) of the filtered view.
func (s *Service) FilteredAt(i int) (*domproduct.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.filtered) {
		return nil, false
	}
	return s.filtered[i], true
}

func (s *Service) bumpLocked() uint64 {
	s.token++
	return s.token
}

func indexByID(list []*domproduct.Product, id int64) int {
	if id == 0 {
		return -1
	}
	for i, p := range list {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func copyProducts(list []*domproduct.Product) []*domproduct.Product {
	out := make([]*domproduct.Product, len(list))
	copy(out, list)
	return out
}

func cloneProducts(list []*domproduct.Product) []*domproduct.Product {
	out := make([]*domproduct.Product, 0, len(list))
	for _, p := range list {
		out = append(out, snapshotProduct(p))
	}
	return out
}

// snapshotProduct copies p together with its category, so nothing in a View
// aliases stored state.
func snapshotProduct(p *domproduct.Product) *domproduct.Product {
	cp := p.Clone()
	if cp != nil && cp.Categorie != nil {
		c := *cp.Categorie
		cp.Categorie = &c
	}
	return cp
}

func cloneCategories(list []*domcategory.Category) []*domcategory.Category {
	out := make([]*domcategory.Category, 0, len(list))
	for _, c := range list {
		cp := *c
		out = append(out, &cp)
	}
	return out
}
