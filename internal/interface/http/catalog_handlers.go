package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	domproduct "example.com/catalog-admin/internal/domain/product"
	"example.com/catalog-admin/internal/usecase/catalog"
)

type draftRequest struct {
	Designation *string         `json:"designation" validate:"omitempty,max=255"`
	EnPromotion *bool           `json:"enPromotion"`
	CategoryID  json.RawMessage `json:"categoryId"`
}

type submitRequest struct {
	Confirm bool `json:"confirm"`
}

type searchRequest struct {
	Term string `json:"term" validate:"max=255"`
}

type categoryFilterRequest struct {
	CategoryID any `json:"categoryId"`
}

type promotionFilterRequest struct {
	PromotionOnly *bool `json:"promotionOnly" validate:"required"`
}

// respond writes the current view with the notices collected by pr. A
// non-nil err sets the status and the top-level error field.
func (a *API) respond(w http.ResponseWriter, pr *requestPrompter, err error) {
	status := http.StatusOK
	resp := actionResponse{
		View:    mapView(a.catalog.View()),
		Notices: pr.list(),
	}
	if err != nil {
		status = errorStatus(err)
		resp.Error = err.Error()
	}
	writeJSON(w, status, resp)
}

func (a *API) handleView(w http.ResponseWriter, r *http.Request) {
	a.respond(w, nil, nil)
}

func (a *API) handleReloadProducts(w http.ResponseWriter, r *http.Request) {
	a.respond(w, nil, a.catalog.LoadProducts(r.Context()))
}

func (a *API) handleReloadCategories(w http.ResponseWriter, r *http.Request) {
	a.respond(w, nil, a.catalog.LoadCategories(r.Context()))
}

// productParam resolves the {id} URL parameter to a listed product, writing
// the error response itself when it cannot.
func (a *API) productParam(w http.ResponseWriter, r *http.Request) (*domproduct.Product, bool) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return nil, false
	}
	p, ok := a.catalog.Lookup(id)
	if !ok {
		handleDomainError(w, fmt.Errorf("product %d: %w", id, domproduct.ErrProductNotFound))
		return nil, false
	}
	return p, true
}

func (a *API) handleStartEdit(w http.ResponseWriter, r *http.Request) {
	p, ok := a.productParam(w, r)
	if !ok {
		return
	}
	a.respond(w, nil, a.catalog.StartEdit(p))
}

func (a *API) handleEditDraft(w http.ResponseWriter, r *http.Request) {
	var req draftRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if len(req.CategoryID) > 0 {
		var raw any
		if err := json.Unmarshal(req.CategoryID, &raw); err != nil {
			respondError(w, http.StatusBadRequest, err)
			return
		}
		categoryID, err := catalog.ParseCategoryID(raw)
		if err != nil {
			handleDomainError(w, err)
			return
		}
		if err := a.catalog.SelectCategory(categoryID); err != nil {
			handleDomainError(w, err)
			return
		}
	}

	err := a.catalog.EditDraft(func(d *domproduct.Product) {
		if req.Designation != nil {
			d.Designation = *req.Designation
		}
		if req.EnPromotion != nil {
			d.EnPromotion = *req.EnPromotion
		}
	})
	a.respond(w, nil, err)
}

func (a *API) handleSubmitDraft(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	pr := &requestPrompter{confirm: req.Confirm}
	err := a.catalog.SubmitEdit(r.Context(), pr)
	a.respond(w, pr, err)
}

func (a *API) handleCancelDraft(w http.ResponseWriter, r *http.Request) {
	a.catalog.CancelEdit()
	a.respond(w, nil, nil)
}

func (a *API) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	confirm := false
	if v := r.URL.Query().Get("confirm"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, err)
			return
		}
		confirm = parsed
	}

	p, ok := a.productParam(w, r)
	if !ok {
		return
	}

	pr := &requestPrompter{confirm: confirm}
	err := a.catalog.DeleteProduct(r.Context(), p, pr)
	a.respond(w, pr, err)
}

func (a *API) handleSearchFilter(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	a.catalog.SearchByName(r.Context(), req.Term)
	a.respond(w, nil, nil)
}

func (a *API) handleCategoryFilter(w http.ResponseWriter, r *http.Request) {
	var req categoryFilterRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if err := a.catalog.FilterByCategory(r.Context(), req.CategoryID); err != nil {
		handleDomainError(w, err)
		return
	}
	a.respond(w, nil, nil)
}

func (a *API) handlePromotionFilter(w http.ResponseWriter, r *http.Request) {
	var req promotionFilterRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	a.catalog.FilterByPromotion(r.Context(), *req.PromotionOnly)
	a.respond(w, nil, nil)
}

func (a *API) handleResetFilters(w http.ResponseWriter, r *http.Request) {
	a.catalog.ResetFilters()
	a.respond(w, nil, nil)
}
