package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// VocabularyFetcher serves vocabulary keys from the catalog's facet API, so
// imports can be validated against values the ILS actually knows about.
type VocabularyFetcher struct {
	Client *Client
}

// FetchKeys returns the facet values the catalog reports for a field.
func (f VocabularyFetcher) FetchKeys(ctx context.Context, vocabType string) (map[string]struct{}, error) {
	facetURL := fmt.Sprintf("%s/api/v1/search?limit=0&facet[]=%s",
		f.Client.BaseURL, url.QueryEscape(vocabType))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, facetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create facet request: %w", err)
	}

	resp, err := f.Client.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch facets: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("facet API returned status %d: %s", resp.StatusCode, string(body))
	}

	var facetResp struct {
		Facets map[string][]struct {
			Value string `json:"value"`
		} `json:"facets"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&facetResp); err != nil {
		return nil, fmt.Errorf("failed to decode facet response: %w", err)
	}

	keys := make(map[string]struct{})
	for _, facet := range facetResp.Facets[vocabType] {
		keys[facet.Value] = struct{}{}
	}

	return keys, nil
}
