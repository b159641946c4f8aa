package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	domcategory "example.com/catalog-admin/internal/domain/category"
	domproduct "example.com/catalog-admin/internal/domain/product"
	"example.com/catalog-admin/internal/usecase/catalog"
)

type API struct {
	catalog   *catalog.Service
	log       logrus.FieldLogger
	validator *validator.Validate
}

type Dependencies struct {
	Catalog *catalog.Service
	Logger  logrus.FieldLogger
}

func NewAPI(deps Dependencies) *API {
	logger := deps.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &API{
		catalog:   deps.Catalog,
		log:       logger.WithField("component", "http"),
		validator: validator.New(),
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(a.requestLogger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.AllowContentType("application/json", "text/plain"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/view", a.handleView)

		r.Post("/products/reload", a.handleReloadProducts)
		r.Post("/categories/reload", a.handleReloadCategories)
		r.Post("/products/{id}/edit", a.handleStartEdit)
		r.Delete("/products/{id}", a.handleDeleteProduct)

		r.Route("/draft", func(r chi.Router) {
			r.Patch("/", a.handleEditDraft)
			r.Post("/submit", a.handleSubmitDraft)
			r.Post("/cancel", a.handleCancelDraft)
		})

		r.Route("/filters", func(r chi.Router) {
			r.Put("/search", a.handleSearchFilter)
			r.Put("/category", a.handleCategoryFilter)
			r.Put("/promotion", a.handlePromotionFilter)
			r.Delete("/", a.handleResetFilters)
		})
	})

	return r
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func parseIDParam(r *http.Request, key string) (int64, error) {
	idStr := chi.URLParam(r, key)
	return strconv.ParseInt(idStr, 10, 64)
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, domproduct.ErrProductNotFound),
		errors.Is(err, domcategory.ErrCategoryNotFound),
		errors.Is(err, catalog.ErrUnknownProduct):
		return http.StatusNotFound
	case errors.Is(err, catalog.ErrNotEditing):
		return http.StatusConflict
	case errors.Is(err, catalog.ErrDeclined):
		return http.StatusPreconditionRequired
	case errors.Is(err, domproduct.ErrMissingID),
		errors.Is(err, catalog.ErrInvalidCategoryID):
		return http.StatusUnprocessableEntity
	default:
		// anything else came back from the catalog backend
		return http.StatusBadGateway
	}
}

func handleDomainError(w http.ResponseWriter, err error) {
	respondError(w, errorStatus(err), err)
}
