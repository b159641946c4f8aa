package http

import (
	domcategory "example.com/catalog-admin/internal/domain/category"
	domproduct "example.com/catalog-admin/internal/domain/product"
	"example.com/catalog-admin/internal/usecase/catalog"
)

type criteriaResponse struct {
	SearchTerm    string `json:"searchTerm"`
	CategoryID    int64  `json:"categoryId,omitempty"`
	PromotionOnly bool   `json:"promotionOnly"`
}

type viewResponse struct {
	Products         []*domproduct.Product   `json:"products"`
	Categories       []*domcategory.Category `json:"categories"`
	Filtered         []*domproduct.Product   `json:"filtered"`
	Draft            *domproduct.Product     `json:"draft,omitempty"`
	SelectedCategory *domcategory.Category   `json:"selectedCategory,omitempty"`
	EditMode         bool                    `json:"editMode"`
	Error            string                  `json:"error,omitempty"`
	Criteria         criteriaResponse        `json:"criteria"`
}

type noticeResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type actionResponse struct {
	View    viewResponse     `json:"view"`
	Notices []noticeResponse `json:"notices"`
	Error   string           `json:"error,omitempty"`
}

func mapView(v catalog.View) viewResponse {
	return viewResponse{
		Products:         v.Products,
		Categories:       v.Categories,
		Filtered:         v.Filtered,
		Draft:            v.Draft,
		SelectedCategory: v.SelectedCategory,
		EditMode:         v.EditMode,
		Error:            v.Error,
		Criteria: criteriaResponse{
			SearchTerm:    v.Criteria.SearchTerm,
			CategoryID:    v.Criteria.CategoryID,
			PromotionOnly: v.Criteria.PromotionOnly,
		},
	}
}
