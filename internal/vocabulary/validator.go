package vocabulary

import (
	"context"
	"fmt"
	"sync"
)

// VocabularyError reports a coded value that does not exist in its
// vocabulary. Import tooling matches on it with errors.As.
type VocabularyError struct {
	Vocabulary string
	Value      string
}

func (e *VocabularyError) Error() string {
	return fmt.Sprintf("value %s not found in vocabulary %s", e.Value, e.Vocabulary)
}

// Definition ties a record field to the vocabulary its values must exist in.
type Definition struct {
	Type string `yaml:"type" json:"type"`
}

// ItemDefinitions names the coded item fields and the vocabulary each is
// validated against.
func ItemDefinitions() map[string]Definition {
	return map[string]Definition{
		"medium": {Type: "item_medium"},
		"status": {Type: "item_status"},
	}
}

// Fetcher returns the known keys of a vocabulary type from its source.
// Implementations exist for the local table and for the catalog search API.
type Fetcher interface {
	FetchKeys(ctx context.Context, vocabType string) (map[string]struct{}, error)
}

// TableFetcher serves vocabulary keys from a loaded Table.
type TableFetcher struct {
	Table Table
}

// FetchKeys returns the coded values configured for a vocabulary type.
// An unconfigured type yields an empty key set, so every value fails
// validation rather than passing silently.
func (f TableFetcher) FetchKeys(_ context.Context, vocabType string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	for _, e := range f.Table[vocabType] {
		keys[e.Value] = struct{}{}
	}
	return keys, nil
}

// Validator checks coded field values against their vocabularies, caching
// fetched key sets per vocabulary type across records.
type Validator struct {
	fetcher Fetcher

	mu    sync.Mutex
	cache map[string]map[string]struct{}
}

// NewValidator returns a validator backed by the given fetcher.
func NewValidator(fetcher Fetcher) *Validator {
	return &Validator{
		fetcher: fetcher,
		cache:   make(map[string]map[string]struct{}),
	}
}

// Validate checks each defined field of a record. Fields without a
// definition are skipped; a defined field whose value is unknown to its
// vocabulary yields a VocabularyError.
func (v *Validator) Validate(ctx context.Context, definitions map[string]Definition, fields map[string]string) error {
	for field, value := range fields {
		def, ok := definitions[field]
		if !ok {
			// field is not vocabulary-controlled
			continue
		}
		if value == "" {
			continue
		}

		has, err := v.hasKey(ctx, def.Type, value)
		if err != nil {
			return fmt.Errorf("failed to fetch vocabulary %s: %w", def.Type, err)
		}
		if !has {
			return &VocabularyError{Vocabulary: def.Type, Value: value}
		}
	}

	return nil
}

func (v *Validator) hasKey(ctx context.Context, vocabType, key string) (bool, error) {
	v.mu.Lock()
	keys, cached := v.cache[vocabType]
	v.mu.Unlock()

	if cached {
		if _, ok := keys[key]; ok {
			return true, nil
		}
	}

	fetched, err := v.fetcher.FetchKeys(ctx, vocabType)
	if err != nil {
		return false, err
	}

	v.mu.Lock()
	v.cache[vocabType] = fetched
	v.mu.Unlock()

	_, ok := fetched[key]
	return ok, nil
}

// Reset invalidates the cached vocabulary keys.
func (v *Validator) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cache = make(map[string]map[string]struct{})
}
