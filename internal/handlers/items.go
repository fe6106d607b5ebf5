package handlers

import (
	"net/http"
	"strings"

	"github.com/lehigh-university-libraries/stackmap/internal/display"
	"github.com/lehigh-university-libraries/stackmap/internal/icons"
	"github.com/lehigh-university-libraries/stackmap/internal/models"
)

// itemResponse is an item plus its derived display values.
type itemResponse struct {
	*models.Item
	Display itemDisplay `json:"display"`
}

type itemDisplay struct {
	CallNumber  string `json:"call_number,omitempty"`
	ShelfMapURL string `json:"shelf_map_url,omitempty"`
	RecordURL   string `json:"record_url"`
}

func (h *Handler) itemResponseFor(item *models.Item) itemResponse {
	callNumber := display.CallNumber(*item)

	var mapURL string
	if item.Shelf != "" {
		mapURL = display.ShelfLink(item.Shelf, display.ShelfLinkOptions{
			Popup: &display.Popup{Title: item.Title, CallNumber: callNumber},
		})
	}

	return itemResponse{
		Item: item,
		Display: itemDisplay{
			CallNumber:  callNumber,
			ShelfMapURL: mapURL,
			RecordURL:   display.RecordLink(item.ID),
		},
	}
}

func (h *Handler) HandleItems(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		items := h.itemStore.GetAll()
		itemList := make([]itemResponse, 0, len(items))
		for _, item := range items {
			itemList = append(itemList, h.itemResponseFor(item))
		}
		h.writeJSON(w, itemList)
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) HandleItemDetail(w http.ResponseWriter, r *http.Request) {
	itemID := strings.TrimPrefix(r.URL.Path, "/api/items/")

	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	item, ok := h.getItemOrError(w, r, itemID)
	if !ok {
		return
	}

	h.writeJSON(w, h.itemResponseFor(item))
}

// HandleItemLocation serves the shelf-location HTML fragment for an item.
func (h *Handler) HandleItemLocation(w http.ResponseWriter, r *http.Request) {
	itemID := strings.TrimPrefix(r.URL.Path, "/items/")
	itemID = strings.TrimSuffix(itemID, "/location")

	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	item, ok := h.getItemOrError(w, r, itemID)
	if !ok {
		return
	}

	icon := icons.MapPin
	if name := r.URL.Query().Get("icon"); name != "" {
		icon = icons.Name(name)
	}

	h.writeFragment(w, r, display.ShelfLocation(*item, icon))
}
