package product

import (
	"encoding/json"
	"strings"

	"example.com/catalog-admin/internal/domain/category"
	"example.com/catalog-admin/internal/domain/rawjson"
)

// Product mirrors the backend's product resource. ID 0 means the product has
// not been persisted yet.
type Product struct {
	ID          int64              `json:"id,omitempty"`
	Designation string             `json:"designation"`
	EnPromotion bool               `json:"enPromotion"`
	Categorie   *category.Category `json:"categorie"`

	// fields the backend sends that this package does not model; sent back
	// untouched on update
	extra map[string]json.RawMessage
}

var knownKeys = []string{"id", "designation", "enPromotion", "categorie"}

// HasID reports whether the product carries a backend identity.
func (p *Product) HasID() bool {
	return p != nil && p.ID != 0
}

// DisplayName returns the designation, or fallback when it is absent.
func (p *Product) DisplayName(fallback string) string {
	if p == nil || strings.TrimSpace(p.Designation) == "" {
		return fallback
	}
	return p.Designation
}

// CategoryID returns the id of the attached category, 0 when there is none.
func (p *Product) CategoryID() int64 {
	if p == nil || p.Categorie == nil {
		return 0
	}
	return p.Categorie.ID
}

// Clone returns a shallow copy: the category reference is shared.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

func (p *Product) UnmarshalJSON(data []byte) error {
	type plain Product
	var known plain
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}
	extra, err := rawjson.Extra(data, knownKeys...)
	if err != nil {
		return err
	}
	*p = Product(known)
	p.extra = extra
	return nil
}

func (p Product) MarshalJSON() ([]byte, error) {
	type plain Product
	return rawjson.Merge(plain(p), p.extra)
}
