package display

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/lehigh-university-libraries/stackmap/internal/icons"
	"github.com/lehigh-university-libraries/stackmap/internal/models"
)

// ShelfLocation renders the shelf-location fragment for an item: an anchor
// holding the named icon and the shelf number, followed by the formatted
// call number. The anchor is omitted entirely when the item has no shelf;
// the call number still renders on its own.
func ShelfLocation(item models.Item, icon icons.Name) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		callNumber := CallNumber(item)

		if item.Shelf != "" {
			popup := &Popup{Title: item.Title, CallNumber: callNumber}
			href := ShelfLink(item.Shelf, ShelfLinkOptions{Popup: popup, IFrame: true})

			if _, err := fmt.Fprintf(w,
				`<a class="shelf-link" href="%s" target="_blank" rel="noopener">`,
				templ.EscapeString(string(templ.URL(href)))); err != nil {
				return err
			}
			if err := icons.Render(icon).Render(ctx, w); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, " %s</a>", templ.EscapeString(item.Shelf)); err != nil {
				return err
			}
		}

		if callNumber != "" {
			if _, err := fmt.Fprintf(w,
				` <span class="call-number">%s</span>`,
				templ.EscapeString(callNumber)); err != nil {
				return err
			}
		}

		return nil
	})
}
