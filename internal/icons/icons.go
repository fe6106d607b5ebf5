// Package icons holds the catalog of UI icons and renders them as
// references into the bundled Lucide SVG sprite.
package icons

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Name identifies an icon in the catalog.
type Name string

// Icons used by the catalog interface.
const (
	MapPin       Name = "map-pin"
	Book         Name = "book"
	Library      Name = "library"
	ExternalLink Name = "external-link"
)

const lucideSymbolPrefix = "lucide-"

var lucideIconNames = map[Name]string{
	MapPin:       "map-pin",
	Book:         "book",
	Library:      "library",
	ExternalLink: "external-link",
}

// Definition describes a catalog icon entry.
type Definition struct {
	Name        Name
	Description string
}

var catalog = []Definition{
	{Name: MapPin, Description: "Shelf locations on the stack map."},
	{Name: Book, Description: "Physical items and call numbers."},
	{Name: Library, Description: "Library and branch pages."},
	{Name: ExternalLink, Description: "Links leaving the catalog."},
}

// Catalog returns the icon definitions in display order.
func Catalog() []Definition {
	defs := make([]Definition, len(catalog))
	copy(defs, catalog)
	return defs
}

// LucideName returns the Lucide icon name for a catalog icon.
func LucideName(n Name) (string, bool) {
	name, ok := lucideIconNames[n]
	return name, ok
}

// SymbolID returns the sprite symbol ID for an icon name, falling back
// to the map pin for unknown names so markup stays valid.
func SymbolID(n Name) string {
	name, ok := lucideIconNames[n]
	if !ok {
		name = lucideIconNames[MapPin]
	}
	return lucideSymbolPrefix + name
}

// Render returns a component that draws the named icon from the sprite.
func Render(n Name) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<svg class="icon" aria-hidden="true"><use href="#%s"></use></svg>`,
			templ.EscapeString(SymbolID(n)))
		return err
	})
}
