package importer

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lehigh-university-libraries/stackmap/internal/storage"
	"github.com/lehigh-university-libraries/stackmap/internal/vocabulary"
)

func testVocabTable() vocabulary.Table {
	return vocabulary.Table{
		"item_medium": {
			{Value: "PAPER", Text: "Paper"},
		},
		"item_status": {
			{Value: "CAN_CIRCULATE", Text: "Available"},
		},
	}
}

func newTestImporter(store *storage.ItemStore, opts Options) *Importer {
	validator := vocabulary.NewValidator(vocabulary.TableFetcher{Table: testVocabTable()})
	return New(store, validator, vocabulary.ItemDefinitions(), opts)
}

func TestRunImportsValidRecords(t *testing.T) {
	store := storage.New()
	imp := newTestImporter(store, Options{})

	records := []ItemRecord{
		{LegacyID: "100", Title: "Book One", Shelf: "B12", CallNumber: "QA76", Medium: "PAPER", Status: "CAN_CIRCULATE"},
		{LegacyID: "101", Title: "Book Two", Medium: "PAPER"},
	}

	report, err := imp.Run(context.Background(), "test.jsonl", records)
	if err != nil {
		t.Fatalf("Expected run to succeed, got %v", err)
	}

	if report.Imported != 2 {
		t.Errorf("Expected 2 imported, got %d", report.Imported)
	}
	if report.RunID == "" {
		t.Error("Expected run ID to be assigned")
	}

	item, exists := store.Get("100")
	if !exists {
		t.Fatal("Expected item 100 in store")
	}
	if item.Shelf != "B12" {
		t.Errorf("Expected shelf B12, got %s", item.Shelf)
	}
	if len(item.Identifiers) != 1 || item.Identifiers[0].Value != "QA76" {
		t.Errorf("Expected call number identifier, got %+v", item.Identifiers)
	}
}

func TestRunSkipsUnknownVocabularyValue(t *testing.T) {
	store := storage.New()
	imp := newTestImporter(store, Options{})

	records := []ItemRecord{
		{LegacyID: "100", Title: "Book One", Medium: "VHS"},
		{LegacyID: "101", Title: "Book Two", Medium: "PAPER"},
	}

	report, err := imp.Run(context.Background(), "test.jsonl", records)
	if err != nil {
		t.Fatalf("Expected run to continue past vocabulary error, got %v", err)
	}

	if report.Imported != 1 || report.Skipped != 1 {
		t.Errorf("Expected 1 imported and 1 skipped, got %d/%d", report.Imported, report.Skipped)
	}
	if len(report.Failures) != 1 || report.Failures[0].LegacyID != "100" {
		t.Errorf("Expected failure for record 100, got %+v", report.Failures)
	}
	if _, exists := store.Get("100"); exists {
		t.Error("Expected invalid record not to be stored")
	}
}

func TestRunStrictVocabularyAborts(t *testing.T) {
	store := storage.New()
	imp := newTestImporter(store, Options{StrictVocabulary: true})

	records := []ItemRecord{
		{LegacyID: "100", Title: "Book One", Medium: "VHS"},
		{LegacyID: "101", Title: "Book Two", Medium: "PAPER"},
	}

	if _, err := imp.Run(context.Background(), "test.jsonl", records); err == nil {
		t.Fatal("Expected strict run to abort on vocabulary error")
	}
	if store.Len() != 0 {
		t.Errorf("Expected no records stored, got %d", store.Len())
	}
}

func TestRunDuplicateHandling(t *testing.T) {
	store := storage.New()
	imp := newTestImporter(store, Options{})

	records := []ItemRecord{
		{LegacyID: "100", Title: "Book One"},
		{LegacyID: "100", Title: "Book One Again"},
	}

	report, err := imp.Run(context.Background(), "test.jsonl", records)
	if err != nil {
		t.Fatalf("Expected run to succeed, got %v", err)
	}
	if report.Imported != 1 || report.Skipped != 1 {
		t.Errorf("Expected duplicate skipped, got %d/%d", report.Imported, report.Skipped)
	}

	item, _ := store.Get("100")
	if item.Title != "Book One" {
		t.Errorf("Expected first record kept, got %s", item.Title)
	}
}

func TestRunAllowUpdatesOverwrites(t *testing.T) {
	store := storage.New()
	imp := newTestImporter(store, Options{AllowUpdates: true})

	records := []ItemRecord{
		{LegacyID: "100", Title: "Book One"},
		{LegacyID: "100", Title: "Book One Again"},
	}

	report, err := imp.Run(context.Background(), "test.jsonl", records)
	if err != nil {
		t.Fatalf("Expected run to succeed, got %v", err)
	}
	if report.Imported != 2 {
		t.Errorf("Expected both rows imported with AllowUpdates, got %d", report.Imported)
	}

	item, _ := store.Get("100")
	if item.Title != "Book One Again" {
		t.Errorf("Expected updated title, got %s", item.Title)
	}
}

func TestRunRejectsMalformedRecords(t *testing.T) {
	store := storage.New()
	imp := newTestImporter(store, Options{})

	records := []ItemRecord{
		{LegacyID: "", Title: "No ID"},
		{LegacyID: "101", Title: ""},
	}

	report, err := imp.Run(context.Background(), "test.jsonl", records)
	if err != nil {
		t.Fatalf("Expected run to succeed, got %v", err)
	}
	if report.Imported != 0 || report.Skipped != 2 {
		t.Errorf("Expected all rows skipped, got %d/%d", report.Imported, report.Skipped)
	}
}

func TestLoadJSONLDump(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "items.jsonl")

	lines := []string{
		`{"legacy_id":"100","title":"Book One","shelf":"B12","call_number":"QA76","medium":"PAPER"}`,
		``,
		`{"legacy_id":"101","title":"Book Two","isbn":"9780131103627"}`,
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		t.Fatalf("write dump: %v", err)
	}

	records, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Expected load to succeed, got %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].CallNumber != "QA76" {
		t.Errorf("Expected call number QA76, got %s", records[0].CallNumber)
	}

	item := records[1].Item()
	if len(item.Identifiers) != 1 || item.Identifiers[0].Scheme != "ISBN" {
		t.Errorf("Expected ISBN identifier, got %+v", item.Identifiers)
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	if _, err := NewLoader("items.csv").Load(); err == nil {
		t.Fatal("Expected error for unsupported format")
	}
}

func TestSaveReportWritesYAML(t *testing.T) {
	dir := t.TempDir()

	report := Report{
		RunID:    "0123456789abcdef",
		Source:   "items.jsonl",
		Imported: 2,
		Skipped:  1,
		Failures: []Failure{{LegacyID: "100", Error: "missing title"}},
	}

	path, err := SaveReport(report, dir)
	if err != nil {
		t.Fatalf("Expected save to succeed, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "run_id: 0123456789abcdef") {
		t.Errorf("Expected run ID in report, got %s", content)
	}
	if !strings.Contains(content, "legacy_id: \"100\"") {
		t.Errorf("Expected failure entry in report, got %s", content)
	}
}
