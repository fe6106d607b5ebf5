package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/lehigh-university-libraries/stackmap/internal/catalog"
	"github.com/lehigh-university-libraries/stackmap/internal/models"
	"github.com/lehigh-university-libraries/stackmap/internal/storage"
	"github.com/lehigh-university-libraries/stackmap/internal/vocabulary"
)

type Handler struct {
	itemStore     *storage.ItemStore
	vocab         vocabulary.Table
	catalogClient *catalog.Client
}

// New builds a handler. The vocabulary table is injected here, not read
// from a global; the catalog client may be nil when serving imports only.
func New(store *storage.ItemStore, vocab vocabulary.Table, client *catalog.Client) *Handler {
	return &Handler{
		itemStore:     store,
		vocab:         vocab,
		catalogClient: client,
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}

func (h *Handler) writeFragment(w http.ResponseWriter, r *http.Request, fragment templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := fragment.Render(r.Context(), w); err != nil {
		slog.Error("Unable to render fragment", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// Item helpers
func (h *Handler) getItemOrError(w http.ResponseWriter, r *http.Request, itemID string) (*models.Item, bool) {
	item, exists := h.itemStore.Get(itemID)
	if exists {
		return item, true
	}

	if h.catalogClient != nil {
		fetched, err := h.catalogClient.FetchItem(r.Context(), itemID)
		if err == nil {
			h.itemStore.Set(itemID, fetched)
			return fetched, true
		}
		slog.Warn("Catalog lookup failed", "item_id", itemID, "err", err)
	}

	h.writeError(w, "Item not found", http.StatusNotFound)
	return nil, false
}
