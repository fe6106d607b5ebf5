// Package importer loads item-record dumps exported from the legacy ILS and
// imports them into the item store, validating coded fields along the way.
package importer

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/lehigh-university-libraries/stackmap/internal/models"
)

// ItemRecord is one row of a legacy item dump.
type ItemRecord struct {
	LegacyID   string `json:"legacy_id" parquet:"legacy_id"`
	Title      string `json:"title" parquet:"title"`
	Shelf      string `json:"shelf" parquet:"shelf,optional"`
	Barcode    string `json:"barcode" parquet:"barcode,optional"`
	CallNumber string `json:"call_number" parquet:"call_number,optional"`
	ISBN       string `json:"isbn" parquet:"isbn,optional"`
	Medium     string `json:"medium" parquet:"medium,optional"`
	Status     string `json:"status" parquet:"status,optional"`
}

// Item converts the dump row into a catalog item.
func (r ItemRecord) Item() *models.Item {
	item := &models.Item{
		ID:      r.LegacyID,
		Title:   r.Title,
		Shelf:   r.Shelf,
		Barcode: r.Barcode,
		Medium:  r.Medium,
		Status:  r.Status,
	}

	if r.CallNumber != "" {
		item.Identifiers = append(item.Identifiers, models.Identifier{
			Scheme: models.SchemeCallNumber,
			Value:  r.CallNumber,
		})
	}
	if r.ISBN != "" {
		item.Identifiers = append(item.Identifiers, models.Identifier{
			Scheme: models.SchemeISBN,
			Value:  r.ISBN,
		})
	}

	return item
}

// Loader handles loading of legacy item dumps
type Loader struct {
	dumpPath string
}

// NewLoader creates a new dump loader
func NewLoader(dumpPath string) *Loader {
	return &Loader{
		dumpPath: dumpPath,
	}
}

// Load loads records from a dump file (JSONL or Parquet)
func (l *Loader) Load() ([]ItemRecord, error) {
	ext := strings.ToLower(filepath.Ext(l.dumpPath))

	switch ext {
	case ".parquet":
		return l.loadParquet()
	case ".jsonl", ".json":
		return l.loadJSONL()
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: .parquet, .jsonl)", ext)
	}
}

// loadJSONL loads records from a JSONL file
func (l *Loader) loadJSONL() ([]ItemRecord, error) {
	slog.Debug("Opening JSONL dump", "path", l.dumpPath)

	file, err := os.Open(l.dumpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open dump file: %w", err)
	}
	defer file.Close()

	var records []ItemRecord
	scanner := bufio.NewScanner(file)

	// Increase buffer size for large JSON lines
	const maxCapacity = 1024 * 1024 // 1MB per line
	buf := make([]byte, maxCapacity)
	scanner.Buffer(buf, maxCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()

		if len(line) == 0 {
			continue
		}

		var record ItemRecord
		if err := json.Unmarshal(line, &record); err != nil {
			return nil, fmt.Errorf("failed to parse JSON at line %d: %w", lineNum, err)
		}

		records = append(records, record)

		if lineNum%1000 == 0 {
			slog.Debug("Reading JSONL", "lines_read", lineNum)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading dump: %w", err)
	}

	slog.Debug("Finished reading JSONL dump", "total_records", len(records))

	return records, nil
}

// loadParquet loads records from a Parquet file
func (l *Loader) loadParquet() ([]ItemRecord, error) {
	slog.Debug("Opening Parquet dump", "path", l.dumpPath)

	file, err := os.Open(l.dumpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	slog.Debug("Parquet dump opened", "num_rows", pf.NumRows(), "num_row_groups", len(pf.RowGroups()))

	reader := parquet.NewGenericReader[ItemRecord](pf)
	defer reader.Close()

	var records []ItemRecord
	rows := make([]ItemRecord, 128) // Read in batches

	for {
		n, err := reader.Read(rows)
		if n > 0 {
			records = append(records, rows[:n]...)
		}
		if err != nil {
			break
		}
	}

	slog.Debug("Finished reading Parquet dump", "total_records", len(records))

	return records, nil
}
