package display

import (
	"strings"
	"testing"

	"github.com/lehigh-university-libraries/stackmap/internal/models"
)

func TestCallNumberNilIdentifiers(t *testing.T) {
	item := models.Item{ID: "1", Title: "Some Book"}

	if got := CallNumber(item); got != "" {
		t.Errorf("Expected empty call number for nil identifiers, got %q", got)
	}
}

func TestCallNumberNoMatchingScheme(t *testing.T) {
	item := models.Item{
		ID: "1",
		Identifiers: []models.Identifier{
			{Scheme: models.SchemeISBN, Value: "9780131103627"},
			{Scheme: models.SchemeBarcode, Value: "39151000123456"},
		},
	}

	if got := CallNumber(item); got != "" {
		t.Errorf("Expected empty call number without CALL_NUMBER scheme, got %q", got)
	}
}

func TestCallNumberFormatsFirstMatch(t *testing.T) {
	item := models.Item{
		ID: "1",
		Identifiers: []models.Identifier{
			{Scheme: models.SchemeISBN, Value: "9780131103627"},
			{Scheme: models.SchemeCallNumber, Value: "QA76"},
			{Scheme: models.SchemeCallNumber, Value: "ZZ99"},
		},
	}

	if got := CallNumber(item); got != "(QA76)" {
		t.Errorf("Expected (QA76), got %q", got)
	}
}

func TestShelfLinkBaseURLOnly(t *testing.T) {
	got := ShelfLink("B12", ShelfLinkOptions{})

	want := "https://lehigh.stackmap.com/view/?shelf=B12"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestShelfLinkPopupThenIFrameParams(t *testing.T) {
	got := ShelfLink("B12", ShelfLinkOptions{
		Popup:  &Popup{Title: "X"},
		IFrame: true,
	})

	popupIdx := strings.Index(got, `&popup={"title":"X"}`)
	iframeIdx := strings.Index(got, "&iframe=true&toolbar=false")

	if popupIdx == -1 {
		t.Fatalf("Expected serialized popup content in %q", got)
	}
	if iframeIdx == -1 {
		t.Fatalf("Expected iframe display parameters in %q", got)
	}
	if popupIdx > iframeIdx {
		t.Errorf("Expected popup before iframe parameters in %q", got)
	}
	if !strings.HasPrefix(got, "https://lehigh.stackmap.com/view/?shelf=B12") {
		t.Errorf("Expected shelf number in base URL, got %q", got)
	}
}

func TestShelfLinkOmitsEmptyCallNumberFromPopup(t *testing.T) {
	got := ShelfLink("B12", ShelfLinkOptions{Popup: &Popup{Title: "X"}})

	if strings.Contains(got, "callNumber") {
		t.Errorf("Expected empty call number omitted from popup, got %q", got)
	}
}

func TestRecordLink(t *testing.T) {
	got := RecordLink("lehigh.123")

	want := "https://asa.lib.lehigh.edu/Record/lehigh.123"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
