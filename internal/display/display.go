// Package display derives presentation values for catalog items: formatted
// call numbers, stack-map URLs, and the HTML fragments that link to them.
package display

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lehigh-university-libraries/stackmap/internal/models"
)

const (
	// shelfMapBaseURL is the external stack-map service. The shelf number is
	// interpolated as-is; callers own its validity.
	shelfMapBaseURL = "https://lehigh.stackmap.com/view/?shelf=%s"

	// recordBaseURL is the public catalog record page for an item.
	recordBaseURL = "https://asa.lib.lehigh.edu/Record/"

	// iframeParams are the fixed display parameters for embedded map views.
	iframeParams = "&iframe=true&toolbar=false"
)

// Popup is the metadata shown by the map service when a shelf pin is opened.
type Popup struct {
	Title      string `json:"title"`
	CallNumber string `json:"callNumber,omitempty"`
}

// ShelfLinkOptions controls the optional parts of a stack-map URL.
type ShelfLinkOptions struct {
	Popup  *Popup
	IFrame bool
}

// CallNumber formats the item's call number for display, e.g. "(QA76.73.G63)".
// Items with no identifiers, or no CALL_NUMBER identifier, yield "".
func CallNumber(item models.Item) string {
	for _, id := range item.Identifiers {
		if id.Scheme == models.SchemeCallNumber {
			return "(" + id.Value + ")"
		}
	}
	return ""
}

// ShelfLink builds the stack-map URL for a shelf number. The popup metadata,
// when present, is JSON-serialized and appended as a query parameter; the
// iframe display parameters follow it. No escaping happens beyond the JSON
// serialization.
func ShelfLink(shelfNumber string, opts ShelfLinkOptions) string {
	var b strings.Builder
	fmt.Fprintf(&b, shelfMapBaseURL, shelfNumber)

	if opts.Popup != nil {
		data, err := json.Marshal(opts.Popup)
		if err == nil {
			b.WriteString("&popup=")
			b.Write(data)
		}
	}

	if opts.IFrame {
		b.WriteString(iframeParams)
	}

	return b.String()
}

// RecordLink builds the public catalog record URL for an item ID.
func RecordLink(itemID string) string {
	return recordBaseURL + itemID
}
