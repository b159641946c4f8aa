package category

import (
	"encoding/json"

	"example.com/catalog-admin/internal/domain/rawjson"
)

// Category is read-only reference data for the product edit form.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"nomCategorie,omitempty"`
	Description string `json:"descriptionCategorie,omitempty"`

	// fields the backend sends that this package does not model
	extra map[string]json.RawMessage
}

var knownKeys = []string{"id", "nomCategorie", "descriptionCategorie"}

func (c *Category) UnmarshalJSON(data []byte) error {
	type plain Category
	var known plain
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}
	extra, err := rawjson.Extra(data, knownKeys...)
	if err != nil {
		return err
	}
	*c = Category(known)
	c.extra = extra
	return nil
}

func (c Category) MarshalJSON() ([]byte, error) {
	type plain Category
	return rawjson.Merge(plain(c), c.extra)
}
