package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lehigh-university-libraries/stackmap/internal/models"
	"github.com/lehigh-university-libraries/stackmap/internal/storage"
	"github.com/lehigh-university-libraries/stackmap/internal/vocabulary"
)

func newTestHandler() (*Handler, *storage.ItemStore) {
	store := storage.New()
	vocab := vocabulary.Table{
		"item_medium": {
			{Value: "PAPER", Text: "Paper"},
		},
	}
	return New(store, vocab, nil), store
}

func seedItem(store *storage.ItemStore) *models.Item {
	item := &models.Item{
		ID:    "lehigh.123",
		Title: "The Go Programming Language",
		Shelf: "B12",
		Identifiers: []models.Identifier{
			{Scheme: models.SchemeCallNumber, Value: "QA76.73.G63"},
		},
	}
	store.Set(item.ID, item)
	return item
}

func TestHandleItemDetailIncludesDisplayValues(t *testing.T) {
	handler, store := newTestHandler()
	seedItem(store)

	req := httptest.NewRequest("GET", "/api/items/lehigh.123", nil)
	w := httptest.NewRecorder()
	handler.HandleItemDetail(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var resp struct {
		ID      string `json:"id"`
		Display struct {
			CallNumber  string `json:"call_number"`
			ShelfMapURL string `json:"shelf_map_url"`
			RecordURL   string `json:"record_url"`
		} `json:"display"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.Display.CallNumber != "(QA76.73.G63)" {
		t.Errorf("Expected formatted call number, got %s", resp.Display.CallNumber)
	}
	if !strings.Contains(resp.Display.ShelfMapURL, "lehigh.stackmap.com") {
		t.Errorf("Expected stack-map URL, got %s", resp.Display.ShelfMapURL)
	}
	if !strings.HasSuffix(resp.Display.RecordURL, "/Record/lehigh.123") {
		t.Errorf("Expected record URL, got %s", resp.Display.RecordURL)
	}
}

func TestHandleItemDetailNotFound(t *testing.T) {
	handler, _ := newTestHandler()

	req := httptest.NewRequest("GET", "/api/items/nope", nil)
	w := httptest.NewRecorder()
	handler.HandleItemDetail(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestHandleItemLocationRendersFragment(t *testing.T) {
	handler, store := newTestHandler()
	seedItem(store)

	req := httptest.NewRequest("GET", "/items/lehigh.123/location", nil)
	w := httptest.NewRecorder()
	handler.HandleItemLocation(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/html") {
		t.Errorf("Expected HTML content type, got %s", got)
	}

	body := w.Body.String()
	if !strings.Contains(body, `<a class="shelf-link"`) {
		t.Errorf("Expected shelf anchor in fragment, got %s", body)
	}
	if !strings.Contains(body, "(QA76.73.G63)") {
		t.Errorf("Expected call number in fragment, got %s", body)
	}
}

func TestHandleItemLocationWithoutShelfOmitsAnchor(t *testing.T) {
	handler, store := newTestHandler()
	store.Set("lehigh.9", &models.Item{
		ID:    "lehigh.9",
		Title: "Unshelved",
		Identifiers: []models.Identifier{
			{Scheme: models.SchemeCallNumber, Value: "QA1"},
		},
	})

	req := httptest.NewRequest("GET", "/items/lehigh.9/location", nil)
	w := httptest.NewRecorder()
	handler.HandleItemLocation(w, req)

	body := w.Body.String()
	if strings.Contains(body, "<a") {
		t.Errorf("Expected no anchor without shelf, got %s", body)
	}
	if !strings.Contains(body, "(QA1)") {
		t.Errorf("Expected call number without anchor, got %s", body)
	}
}

func TestHandleDisplayValReturnsText(t *testing.T) {
	handler, _ := newTestHandler()

	req := httptest.NewRequest("GET", "/api/display?field=item_medium&value=PAPER", nil)
	w := httptest.NewRecorder()
	handler.HandleDisplayVal(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["text"] != "Paper" {
		t.Errorf("Expected Paper, got %s", resp["text"])
	}
}

func TestHandleDisplayValFailsFast(t *testing.T) {
	handler, _ := newTestHandler()

	// unmatched value
	req := httptest.NewRequest("GET", "/api/display?field=item_medium&value=VHS", nil)
	w := httptest.NewRecorder()
	handler.HandleDisplayVal(w, req)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500 for unmatched value, got %d", w.Code)
	}

	// unconfigured field
	req = httptest.NewRequest("GET", "/api/display?field=loan_state&value=ANY", nil)
	w = httptest.NewRecorder()
	handler.HandleDisplayVal(w, req)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500 for unconfigured field, got %d", w.Code)
	}
}

func TestHandleDisplayValRequiresParams(t *testing.T) {
	handler, _ := newTestHandler()

	req := httptest.NewRequest("GET", "/api/display?field=item_medium", nil)
	w := httptest.NewRecorder()
	handler.HandleDisplayVal(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
}

func TestHandleItemsListsStore(t *testing.T) {
	handler, store := newTestHandler()
	seedItem(store)

	req := httptest.NewRequest("GET", "/api/items", nil)
	w := httptest.NewRecorder()
	handler.HandleItems(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("Expected 1 item, got %d", len(items))
	}
}
