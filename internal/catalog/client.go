package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/lehigh-university-libraries/stackmap/internal/models"
)

// Client represents a catalog API client (VuFind or FOLIO)
type Client struct {
	BaseURL     string
	CatalogType string
	APIKey      string
	httpClient  *http.Client
}

// NewClient creates a new catalog client
func NewClient(catalogType, baseURL, apiKey string) *Client {
	return &Client{
		BaseURL:     baseURL,
		CatalogType: catalogType,
		APIKey:      apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchItem fetches a single item with its holdings metadata
func (c *Client) FetchItem(ctx context.Context, itemID string) (*models.Item, error) {
	switch c.CatalogType {
	case "vufind":
		return c.fetchItemFromVuFind(ctx, itemID)
	case "folio":
		return c.fetchItemFromFOLIO(ctx, itemID)
	default:
		return nil, fmt.Errorf("unsupported catalog type: %s", c.CatalogType)
	}
}

// fetchItemFromVuFind fetches an item record from a VuFind instance
func (c *Client) fetchItemFromVuFind(ctx context.Context, itemID string) (*models.Item, error) {
	// VuFind record API endpoint
	recordURL := fmt.Sprintf("%s/api/v1/record?id=%s&field[]=title&field[]=callNumbers&field[]=holdings",
		c.BaseURL, url.QueryEscape(itemID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, recordURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create VuFind request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from VuFind: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("VuFind API returned status %d: %s", resp.StatusCode, string(body))
	}

	// Parse VuFind response
	var vufindResp struct {
		Records []struct {
			ID          string   `json:"id"`
			Title       string   `json:"title"`
			CallNumbers []string `json:"callNumbers"`
			Holdings    []struct {
				Location string `json:"location"`
				Barcode  string `json:"barcode"`
				Status   string `json:"status"`
			} `json:"holdings"`
		} `json:"records"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&vufindResp); err != nil {
		return nil, fmt.Errorf("failed to decode VuFind response: %w", err)
	}

	if len(vufindResp.Records) == 0 {
		return nil, fmt.Errorf("item %s not found in VuFind", itemID)
	}

	rec := vufindResp.Records[0]
	item := &models.Item{
		ID:        rec.ID,
		Title:     rec.Title,
		UpdatedAt: time.Now(),
	}

	for _, cn := range rec.CallNumbers {
		item.Identifiers = append(item.Identifiers, models.Identifier{
			Scheme: models.SchemeCallNumber,
			Value:  cn,
		})
	}

	if len(rec.Holdings) > 0 {
		holding := rec.Holdings[0]
		item.Shelf = holding.Location
		item.Barcode = holding.Barcode
		item.Status = holding.Status
	}

	return item, nil
}

// fetchItemFromFOLIO fetches an item record from a FOLIO instance
func (c *Client) fetchItemFromFOLIO(ctx context.Context, itemID string) (*models.Item, error) {
	// FOLIO requires authentication via Okapi headers
	if c.APIKey == "" {
		return nil, fmt.Errorf("API key required for FOLIO")
	}

	itemURL := fmt.Sprintf("%s/inventory/items/%s", c.BaseURL, url.PathEscape(itemID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, itemURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create FOLIO request: %w", err)
	}

	// Add Okapi headers
	req.Header.Set("X-Okapi-Token", c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from FOLIO: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("FOLIO API returned status %d: %s", resp.StatusCode, string(body))
	}

	var folioResp struct {
		ID                 string `json:"id"`
		Title              string `json:"title"`
		Barcode            string `json:"barcode"`
		ItemLevelCallParts struct {
			CallNumber string `json:"callNumber"`
		} `json:"effectiveCallNumberComponents"`
		EffectiveLocation struct {
			Name string `json:"name"`
		} `json:"effectiveLocation"`
		Status struct {
			Name string `json:"name"`
		} `json:"status"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&folioResp); err != nil {
		return nil, fmt.Errorf("failed to decode FOLIO response: %w", err)
	}

	item := &models.Item{
		ID:        folioResp.ID,
		Title:     folioResp.Title,
		Barcode:   folioResp.Barcode,
		Shelf:     folioResp.EffectiveLocation.Name,
		Status:    folioResp.Status.Name,
		UpdatedAt: time.Now(),
	}

	if cn := folioResp.ItemLevelCallParts.CallNumber; cn != "" {
		item.Identifiers = append(item.Identifiers, models.Identifier{
			Scheme: models.SchemeCallNumber,
			Value:  cn,
		})
	}

	return item, nil
}
