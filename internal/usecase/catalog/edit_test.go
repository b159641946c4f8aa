package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	domcategory "example.com/catalog-admin/internal/domain/category"
	domproduct "example.com/catalog-admin/internal/domain/product"
)

func startEditing(t *testing.T, svc *Service, id int64) *domproduct.Product {
	t.Helper()
	p, ok := svc.Lookup(id)
	require.True(t, ok)
	require.NoError(t, svc.StartEdit(p))
	return p
}

func TestStartEdit_WorksOnACopy(t *testing.T) {
	svc := newLoadedService(&mockProductRepository{products: fixtureProducts()})
	original := startEditing(t, svc, 1)

	require.NoError(t, svc.EditDraft(func(d *domproduct.Product) {
		d.Designation = "Chaise pliante"
	}))

	require.Equal(t, "Chaise", original.Designation)
	view := svc.View()
	require.True(t, view.EditMode)
	require.Equal(t, "Chaise pliante", view.Draft.Designation)
	require.Equal(t, int64(1), view.SelectedCategory.ID)
	require.Equal(t, "Chaise", view.Products[0].Designation)
}

func TestStartEdit_Nil(t *testing.T) {
	svc := newLoadedService(&mockProductRepository{products: fixtureProducts()})
	require.ErrorIs(t, svc.StartEdit(nil), ErrUnknownProduct)
}

func TestEditOperations_RequireSession(t *testing.T) {
	svc := newLoadedService(&mockProductRepository{products: fixtureProducts()})

	require.ErrorIs(t, svc.EditDraft(func(*domproduct.Product) {}), ErrNotEditing)
	require.ErrorIs(t, svc.SelectCategory(1), ErrNotEditing)

	pr := &recordingPrompter{answer: true}
	require.ErrorIs(t, svc.SubmitEdit(context.Background(), pr), ErrNotEditing)
	require.Empty(t, pr.confirms)
}

func TestSelectCategory(t *testing.T) {
	svc := newLoadedService(&mockProductRepository{products: fixtureProducts()})
	startEditing(t, svc, 1)

	require.NoError(t, svc.SelectCategory(2))
	require.Equal(t, int64(2), svc.View().SelectedCategory.ID)

	err := svc.SelectCategory(9)
	require.ErrorIs(t, err, domcategory.ErrCategoryNotFound)
	require.Equal(t, int64(2), svc.View().SelectedCategory.ID)

	require.NoError(t, svc.SelectCategory(0))
	require.Nil(t, svc.View().SelectedCategory)
}

func TestCancelEdit(t *testing.T) {
	repo := &mockProductRepository{products: fixtureProducts(), updateErr: errBackend}
	svc := newLoadedService(repo)
	startEditing(t, svc, 1)

	require.Error(t, svc.SubmitEdit(context.Background(), &recordingPrompter{answer: true}))
	require.NotEmpty(t, svc.View().Error)

	svc.CancelEdit()
	view := svc.View()
	require.False(t, view.EditMode)
	require.Nil(t, view.Draft)
	require.Nil(t, view.SelectedCategory)
	require.Empty(t, view.Error)
}

func TestSubmitEdit_Success(t *testing.T) {
	repo := &mockProductRepository{products: fixtureProducts()}
	svc := newLoadedService(repo)
	startEditing(t, svc, 1)

	require.NoError(t, svc.EditDraft(func(d *domproduct.Product) {
		d.Designation = "Chaise pliante"
		d.EnPromotion = true
	}))
	require.NoError(t, svc.SelectCategory(2))

	pr := &recordingPrompter{answer: true}
	require.NoError(t, svc.SubmitEdit(context.Background(), pr))

	require.Equal(t, []string{"Confirm update of product: Chaise pliante ?"}, pr.confirms)
	require.Equal(t, []Notice{{Kind: NoticeSuccess, Message: noticeUpdated}}, pr.notices)

	require.Len(t, repo.updateCalls, 1)
	sent := repo.updateCalls[0]
	require.Equal(t, int64(1), sent.ID)
	require.Equal(t, int64(2), sent.CategoryID())

	view := svc.View()
	require.False(t, view.EditMode)
	require.Nil(t, view.Draft)
	require.Empty(t, view.Error)
	require.Equal(t, []int64{1, 2, 3, 4}, ids(view.Products))
	require.Equal(t, "Chaise pliante", view.Products[0].Designation)
	require.True(t, view.Products[0].EnPromotion)
	require.Equal(t, "Chaise pliante", view.Filtered[0].Designation)
}

func TestSubmitEdit_UsesBackendVersion(t *testing.T) {
	repo := &mockProductRepository{
		products: fixtureProducts(),
		updated:  &domproduct.Product{ID: 2, Designation: "TABLE", Categorie: catTables},
	}
	svc := newLoadedService(repo)
	startEditing(t, svc, 2)

	require.NoError(t, svc.SubmitEdit(context.Background(), &recordingPrompter{answer: true}))

	view := svc.View()
	require.Equal(t, "TABLE", view.Products[1].Designation)
	require.False(t, view.Products[1].EnPromotion)
}

func TestSubmitEdit_ClearsCategory(t *testing.T) {
	repo := &mockProductRepository{products: fixtureProducts()}
	svc := newLoadedService(repo)
	startEditing(t, svc, 1)

	require.NoError(t, svc.SelectCategory(0))
	require.NoError(t, svc.SubmitEdit(context.Background(), &recordingPrompter{answer: true}))

	require.Nil(t, repo.updateCalls[0].Categorie)
	require.Nil(t, svc.View().Products[0].Categorie)
}

func TestSubmitEdit_ReappliesFilters(t *testing.T) {
	repo := &mockProductRepository{products: fixtureProducts(), promoErr: errBackend}
	svc := newLoadedService(repo)
	svc.FilterByPromotion(context.Background(), true)
	require.Equal(t, []int64{2, 3}, ids(svc.View().Filtered))

	startEditing(t, svc, 2)
	require.NoError(t, svc.EditDraft(func(d *domproduct.Product) { d.EnPromotion = false }))
	require.NoError(t, svc.SubmitEdit(context.Background(), &recordingPrompter{answer: true}))

	require.Equal(t, []int64{3}, ids(svc.View().Filtered))
}

func TestSubmitEdit_Failure(t *testing.T) {
	repo := &mockProductRepository{products: fixtureProducts(), updateErr: errBackend}
	svc := newLoadedService(repo)
	startEditing(t, svc, 1)
	require.NoError(t, svc.EditDraft(func(d *domproduct.Product) { d.Designation = "Nouveau" }))

	pr := &recordingPrompter{answer: true}
	err := svc.SubmitEdit(context.Background(), pr)
	require.ErrorIs(t, err, errBackend)
	require.Empty(t, pr.notices)

	view := svc.View()
	require.True(t, view.EditMode)
	require.Equal(t, msgUpdateFailed, view.Error)
	require.Equal(t, "Nouveau", view.Draft.Designation)
	require.Equal(t, "Chaise", view.Products[0].Designation)
}

func TestSubmitEdit_Declined(t *testing.T) {
	repo := &mockProductRepository{products: fixtureProducts()}
	svc := newLoadedService(repo)
	startEditing(t, svc, 4)

	pr := &recordingPrompter{answer: false}
	require.ErrorIs(t, svc.SubmitEdit(context.Background(), pr), ErrDeclined)

	require.Equal(t, []string{"Confirm update of product: Unnamed ?"}, pr.confirms)
	require.Empty(t, repo.updateCalls)
	require.Empty(t, pr.notices)
	require.True(t, svc.View().EditMode)
}

func TestDeleteProduct_Success(t *testing.T) {
	repo := &mockProductRepository{products: fixtureProducts()}
	svc := newLoadedService(repo)
	p, _ := svc.Lookup(2)

	pr := &recordingPrompter{answer: true}
	require.NoError(t, svc.DeleteProduct(context.Background(), p, pr))

	require.Equal(t, []string{"Delete product: Table ?"}, pr.confirms)
	require.Equal(t, []int64{2}, repo.deleteCalls)
	require.Equal(t, []Notice{{Kind: NoticeSuccess, Message: noticeDeleted}}, pr.notices)

	view := svc.View()
	require.Equal(t, []int64{1, 3, 4}, ids(view.Products))
	require.Equal(t, []int64{1, 3, 4}, ids(view.Filtered))
}

func TestDeleteProduct_CopyRemovedByID(t *testing.T) {
	repo := &mockProductRepository{
		products: fixtureProducts(),
		search:   []*domproduct.Product{{ID: 3, Designation: "Chaise longue"}},
	}
	svc := newLoadedService(repo)
	svc.SearchByName(context.Background(), "longue")

	p, ok := svc.FilteredAt(0)
	require.True(t, ok)
	require.NoError(t, svc.DeleteProduct(context.Background(), p, &recordingPrompter{answer: true}))

	view := svc.View()
	require.Equal(t, []int64{1, 2, 4}, ids(view.Products))
	require.Empty(t, view.Filtered)
}

func TestDeleteProduct_MissingID(t *testing.T) {
	repo := &mockProductRepository{products: fixtureProducts()}
	svc := newLoadedService(repo)

	pr := &recordingPrompter{answer: true}
	err := svc.DeleteProduct(context.Background(), &domproduct.Product{Designation: "Ghost"}, pr)
	require.ErrorIs(t, err, domproduct.ErrMissingID)

	require.Empty(t, repo.deleteCalls)
	require.Equal(t, []Notice{{Kind: NoticeFailure, Message: noticeMissingID}}, pr.notices)
	require.Len(t, svc.View().Products, 4)
}

func TestDeleteProduct_Failure(t *testing.T) {
	repo := &mockProductRepository{products: fixtureProducts(), deleteErr: errBackend}
	svc := newLoadedService(repo)
	p, _ := svc.Lookup(1)

	pr := &recordingPrompter{answer: true}
	err := svc.DeleteProduct(context.Background(), p, pr)
	require.ErrorIs(t, err, errBackend)

	require.Equal(t, []Notice{{Kind: NoticeFailure, Message: noticeDeleteFailed}}, pr.notices)
	view := svc.View()
	require.Len(t, view.Products, 4)
	require.Empty(t, view.Error)
}

func TestDeleteProduct_Declined(t *testing.T) {
	repo := &mockProductRepository{products: fixtureProducts()}
	svc := newLoadedService(repo)
	p, _ := svc.Lookup(1)

	pr := &recordingPrompter{answer: false}
	require.ErrorIs(t, svc.DeleteProduct(context.Background(), p, pr), ErrDeclined)
	require.Empty(t, repo.deleteCalls)
	require.Empty(t, pr.notices)
	require.Len(t, svc.View().Products, 4)
}
