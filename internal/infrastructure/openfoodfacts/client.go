// Package openfoodfacts wraps the Open Food Facts v2 HTTP API, covering the
// Spanish-language endpoint and the world endpoint used as fallback.
package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/applimenta/backend/internal/domain"
)

// searchFields is the field projection requested from the API. Keeping the
// payload to what the normalizer consumes keeps responses small.
const searchFields = "product_name,brands,nutriments,image_url,code,categories_tags,countries_tags,description"

// Client handles communication with the Open Food Facts API
type Client struct {
	httpClient      *http.Client
	primaryBaseURL  string
	fallbackBaseURL string
	pageSize        int
	rateLimiter     *rate.Limiter
	debug           bool
}

// NewClient creates a new Open Food Facts client. The timeout applies per
// request; exceeding it reads the same as any other transport failure.
func NewClient(primaryBaseURL, fallbackBaseURL string, timeout time.Duration, pageSize int) *Client {
	// Open Food Facts asks clients to stay around 10 search requests per
	// minute; the burst covers interactive bursts from one user.
	limiter := rate.NewLimiter(rate.Limit(10.0/60.0), 10)

	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		primaryBaseURL:  primaryBaseURL,
		fallbackBaseURL: fallbackBaseURL,
		pageSize:        pageSize,
		rateLimiter:     limiter,
	}
}

// SetDebug toggles request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// Search issues a text search against the endpoint selected by locale and
// returns the raw records as delivered. An empty page is a valid result;
// transport, HTTP, and decode failures come back as errors for the caller
// to absorb.
func (c *Client) Search(ctx context.Context, query string, locale domain.Locale) ([]domain.RawProduct, error) {
	params := url.Values{}
	params.Add("search_terms", query)
	params.Add("search_simple", "1")
	params.Add("action", "process")
	params.Add("json", "1")
	params.Add("page_size", fmt.Sprintf("%d", c.pageSize))
	params.Add("fields", searchFields)

	reqURL := fmt.Sprintf("%s/api/v2/search?%s", c.baseFor(locale), params.Encode())

	if c.debug {
		log.Printf("[OFF] Search locale=%s query=%q", locale, query)
	}

	var response struct {
		Products []domain.RawProduct `json:"products"`
	}
	if err := c.getJSON(ctx, reqURL, &response); err != nil {
		return nil, err
	}

	if c.debug {
		log.Printf("[OFF] Search locale=%s query=%q -> %d products", locale, query, len(response.Products))
	}
	return response.Products, nil
}

// LookupByCode fetches a single product by barcode from the world endpoint.
// Invalid codes short-circuit before any network call.
func (c *Client) LookupByCode(ctx context.Context, barcode string) (domain.RawProduct, error) {
	if !domain.IsValidBarcode(barcode) {
		return nil, domain.ErrInvalidBarcode
	}

	reqURL := fmt.Sprintf("%s/api/v2/product/%s.json", c.fallbackBaseURL, barcode)

	var response struct {
		Status  int               `json:"status"`
		Product domain.RawProduct `json:"product"`
	}
	if err := c.getJSON(ctx, reqURL, &response); err != nil {
		return nil, err
	}

	if response.Status != 1 || response.Product == nil {
		return nil, domain.ErrProductNotFound
	}
	return response.Product, nil
}

// SearchCountry lists products tagged with the given country.
func (c *Client) SearchCountry(ctx context.Context, country string) ([]domain.RawProduct, error) {
	params := url.Values{}
	params.Add("tagtype_0", "countries")
	params.Add("tag_contains_0", "contains")
	params.Add("tag_0", country)
	params.Add("json", "1")
	params.Add("page_size", fmt.Sprintf("%d", c.pageSize))
	params.Add("fields", searchFields)

	reqURL := fmt.Sprintf("%s/api/v2/search?%s", c.fallbackBaseURL, params.Encode())

	var response struct {
		Products []domain.RawProduct `json:"products"`
	}
	if err := c.getJSON(ctx, reqURL, &response); err != nil {
		return nil, err
	}
	return response.Products, nil
}

func (c *Client) baseFor(locale domain.Locale) string {
	if locale == domain.LocaleFallback {
		return c.fallbackBaseURL
	}
	return c.primaryBaseURL
}

// getJSON executes a GET request and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, reqURL string, out any) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Applimenta/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrProductNotFound
	}
	if resp.StatusCode != http.StatusOK {
		if c.debug {
			log.Printf("[OFF] Request failed - URL: %s, Status: %d", reqURL, resp.StatusCode)
		}
		return fmt.Errorf("%w: status %d", domain.ErrRemoteUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
