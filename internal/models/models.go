package models

import "time"

// Identifier is a scheme-qualified identifier attached to an item,
// e.g. {Scheme: "CALL_NUMBER", Value: "QA76.73.G63"}.
type Identifier struct {
	Scheme string `json:"scheme"`
	Value  string `json:"value"`
}

// Identifier schemes used by the catalog.
const (
	SchemeCallNumber = "CALL_NUMBER"
	SchemeBarcode    = "BARCODE"
	SchemeISBN       = "ISBN"
)

// Item represents a physical catalog item with its shelving metadata.
// Identifiers may be nil when the ILS record carries none.
type Item struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Shelf       string       `json:"shelf,omitempty"`
	Barcode     string       `json:"barcode,omitempty"`
	Identifiers []Identifier `json:"identifiers,omitempty"`
	Medium      string       `json:"medium,omitempty"`
	Status      string       `json:"status,omitempty"`
	UpdatedAt   time.Time    `json:"updated_at,omitempty"`
}

// Identifier returns the value of the first identifier with the given
// scheme, or "" when the item has none.
func (i Item) Identifier(scheme string) string {
	for _, id := range i.Identifiers {
		if id.Scheme == scheme {
			return id.Value
		}
	}
	return ""
}
