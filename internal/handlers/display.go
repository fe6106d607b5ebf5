package handlers

import (
	"log/slog"
	"net/http"
)

// HandleDisplayVal resolves the display text for a coded field value.
//
// Lookups fail fast: an unconfigured field or unmatched value is a server
// error, not an empty 200. Configuration gaps should be loud.
func (h *Handler) HandleDisplayVal(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	field := r.URL.Query().Get("field")
	value := r.URL.Query().Get("value")
	if field == "" || value == "" {
		h.writeError(w, "field and value query parameters are required", http.StatusBadRequest)
		return
	}

	text, err := h.vocab.DisplayVal(field, value)
	if err != nil {
		slog.Error("Vocabulary lookup failed", "field", field, "value", value, "err", err)
		http.Error(w, "Vocabulary lookup failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, map[string]string{
		"field": field,
		"value": value,
		"text":  text,
	})
}
