// Package safety adapts the external openFDA drug-label service. Lookups
// run through a circuit breaker with a short timeout and are memoized in a
// bounded LRU cache; any failure is absorbed into a fixed default payload,
// so a lookup can never fail or block the surrounding computation beyond
// its timeout.
package safety

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sony/gobreaker"

	"github.com/medfinder/medfinder-api/entities"
	"github.com/medfinder/medfinder-api/interfaces"
	"github.com/medfinder/medfinder-api/logging"
	"github.com/medfinder/medfinder-api/metrics"
)

// Compile-time check to ensure Client implements interfaces.SafetyClient
var _ interfaces.SafetyClient = (*Client)(nil)

// Client looks up drug-label metadata with caching and a circuit breaker
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *lru.Cache[string, entities.SafetyInfo]
	breaker    *gobreaker.CircuitBreaker
	cacheHits  atomic.Uint64
}

// NewClient creates a safety-info client. cacheSize bounds the number of
// distinct generic names memoized for the life of the process.
func NewClient(baseURL string, timeout time.Duration, cacheSize int) (*Client, error) {
	cache, err := lru.New[string, entities.SafetyInfo](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create safety cache: %w", err)
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openfda",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logging.Warn("Circuit breaker state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	})

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		cache:      cache,
		breaker:    breaker,
	}, nil
}

// DefaultSafetyInfo is the payload substituted on any lookup failure.
func DefaultSafetyInfo(genericName string) entities.SafetyInfo {
	return entities.SafetyInfo{
		Warnings:          []string{"Consult your doctor"},
		ActiveIngredients: []string{genericName},
		Manufacturers:     []string{"Various"},
		Purpose:           []string{"Prescription medication"},
	}
}

// Lookup returns safety metadata for a generic name. The external answer is
// treated as stable, so results (including substituted defaults) are cached
// per generic name. Lookup never returns an error.
func (c *Client) Lookup(ctx context.Context, genericName string) entities.SafetyInfo {
	if info, ok := c.cache.Get(genericName); ok {
		c.cacheHits.Add(1)
		return info
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx, genericName)
	})

	var info entities.SafetyInfo
	if err != nil {
		logging.Warn("Safety lookup failed, using default payload", "generic_name", genericName, "error", err)
		metrics.SafetyLookupFallbacks.Inc()
		info = DefaultSafetyInfo(genericName)
	} else {
		info = result.(entities.SafetyInfo)
	}

	c.cache.Add(genericName, info)
	return info
}

// CacheStats reports cache hits and current size.
func (c *Client) CacheStats() (uint64, int) {
	return c.cacheHits.Load(), c.cache.Len()
}

// labelResponse mirrors the slice of the openFDA payload we consume
type labelResponse struct {
	Results []struct {
		Warnings []string `json:"warnings"`
		Purpose  []string `json:"purpose"`
		OpenFDA  struct {
			SubstanceName    []string `json:"substance_name"`
			ManufacturerName []string `json:"manufacturer_name"`
		} `json:"openfda"`
	} `json:"results"`
}

// fetch performs one drug-label query against the external service
func (c *Client) fetch(ctx context.Context, genericName string) (entities.SafetyInfo, error) {
	endpoint := fmt.Sprintf("%s/drug/label.json?search=%s&limit=1",
		c.baseURL, url.QueryEscape("openfda.generic_name:"+genericName))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.SafetyInfo{}, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entities.SafetyInfo{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entities.SafetyInfo{}, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return entities.SafetyInfo{}, fmt.Errorf("failed to read response: %w", err)
	}

	var parsed labelResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return entities.SafetyInfo{}, fmt.Errorf("malformed payload: %w", err)
	}

	if len(parsed.Results) == 0 {
		return entities.SafetyInfo{}, fmt.Errorf("no results for %s", genericName)
	}

	result := parsed.Results[0]
	return entities.SafetyInfo{
		Warnings:          firstOrDefault(result.Warnings, "No warnings"),
		ActiveIngredients: listOrDefault(result.OpenFDA.SubstanceName, genericName),
		Manufacturers:     firstOrDefault(result.OpenFDA.ManufacturerName, "Various"),
		Purpose:           firstOrDefault(result.Purpose, "Prescription medication"),
	}, nil
}

// firstOrDefault keeps at most the first element, substituting a default
// when the field is missing from the payload
func firstOrDefault(values []string, fallback string) []string {
	if len(values) == 0 {
		return []string{fallback}
	}
	return values[:1]
}

// listOrDefault keeps the whole list, substituting a single default entry
func listOrDefault(values []string, fallback string) []string {
	if len(values) == 0 {
		return []string{fallback}
	}
	return values
}
