package catalog

import (
	"context"
	"errors"
	"sync"

	domcategory "example.com/catalog-admin/internal/domain/category"
	domproduct "example.com/catalog-admin/internal/domain/product"
	"example.com/catalog-admin/internal/infra/logging"
)

var errBackend = errors.New("backend unavailable")

type mockProductRepository struct {
	mu sync.Mutex

	products    []*domproduct.Product
	listErr     error
	search      []*domproduct.Product
	searchErr   error
	byCategory  map[int64][]*domproduct.Product
	categoryErr error
	promotion   []*domproduct.Product
	promoErr    error
	updated     *domproduct.Product
	updateErr   error
	deleteErr   error

	// searchGate, when set, blocks Search until it is closed
	searchGate    chan struct{}
	searchStarted chan struct{}

	searchCalls   []string
	categoryCalls []int64
	promoCalls    int
	updateCalls   []*domproduct.Product
	deleteCalls   []int64
}

func (m *mockProductRepository) List(ctx context.Context) ([]*domproduct.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]*domproduct.Product(nil), m.products...), nil
}

func (m *mockProductRepository) Update(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updateCalls = append(m.updateCalls, p.Clone())
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	if m.updated != nil {
		return m.updated, nil
	}
	return p.Clone(), nil
}

func (m *mockProductRepository) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteCalls = append(m.deleteCalls, id)
	return m.deleteErr
}

func (m *mockProductRepository) Search(ctx context.Context, term string) ([]*domproduct.Product, error) {
	m.mu.Lock()
	m.searchCalls = append(m.searchCalls, term)
	gate, started := m.searchGate, m.searchStarted
	result, err := m.search, m.searchErr
	m.mu.Unlock()

	if started != nil {
		close(started)
	}
	if gate != nil {
		<-gate
	}
	return result, err
}

func (m *mockProductRepository) ListByCategory(ctx context.Context, categoryID int64) ([]*domproduct.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categoryCalls = append(m.categoryCalls, categoryID)
	if m.categoryErr != nil {
		return nil, m.categoryErr
	}
	return m.byCategory[categoryID], nil
}

func (m *mockProductRepository) ListOnPromotion(ctx context.Context) ([]*domproduct.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.promoCalls++
	if m.promoErr != nil {
		return nil, m.promoErr
	}
	return m.promotion, nil
}

type mockCategoryRepository struct {
	categories []*domcategory.Category
	err        error
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]*domcategory.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.categories, nil
}

type recordingPrompter struct {
	answer   bool
	confirms []string
	notices  []Notice
}

func (p *recordingPrompter) Confirm(ctx context.Context, message string) bool {
	p.confirms = append(p.confirms, message)
	return p.answer
}

func (p *recordingPrompter) Notify(n Notice) {
	p.notices = append(p.notices, n)
}

var (
	catChaises = &domcategory.Category{ID: 1, Name: "Chaises"}
	catTables  = &domcategory.Category{ID: 2, Name: "Tables"}
)

func fixtureProducts() []*domproduct.Product {
	return []*domproduct.Product{
		{ID: 1, Designation: "Chaise", Categorie: catChaises, EnPromotion: false},
		{ID: 2, Designation: "Table", Categorie: catTables, EnPromotion: true},
		{ID: 3, Designation: "Chaise longue", Categorie: catChaises, EnPromotion: true},
		{ID: 4, Designation: "", EnPromotion: false},
	}
}

func newLoadedService(repo *mockProductRepository) *Service {
	svc := NewService(Dependencies{
		Products:   repo,
		Categories: &mockCategoryRepository{categories: []*domcategory.Category{catChaises, catTables}},
		Logger:     logging.Discard(),
	})
	_ = svc.Init(context.Background())
	return svc
}

func ids(list []*domproduct.Product) []int64 {
	out := make([]int64, 0, len(list))
	for _, p := range list {
		out = append(out, p.ID)
	}
	return out
}
