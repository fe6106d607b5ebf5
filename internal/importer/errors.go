package importer

import "fmt"

// RecordError reports a dump row missing the fields every item needs.
type RecordError struct {
	LegacyID string
	Reason   string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %s: %s", e.LegacyID, e.Reason)
}

// DuplicateError reports a legacy ID that already exists in the store.
type DuplicateError struct {
	LegacyID string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("record %s already imported", e.LegacyID)
}
