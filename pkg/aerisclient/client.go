// Package aerisclient provides the entry point for creating Aeris API
// clients.
package aerisclient

import (
	"fmt"
	"strings"

	"github.com/aerisweather/aerisweather-api-go/internal/client"
	"github.com/aerisweather/aerisweather-api-go/internal/constants"
	"github.com/aerisweather/aerisweather-api-go/pkg/aeris"
)

// New creates a new Aeris API client from the given configuration.
//
// ClientID and ClientSecret are required. BaseURL defaults to the production
// Aeris API; it may be overridden to point at a caching proxy, which must
// preserve the path, query, and body semantics of the real API.
func New(config *aeris.Config) (aeris.Client, error) {
	if config == nil {
		return nil, aeris.ErrConfigRequired
	}

	if config.ClientID == "" {
		return nil, aeris.ErrClientIDRequired
	}

	if config.ClientSecret == "" {
		return nil, aeris.ErrClientSecretRequired
	}

	// Copy before normalizing so the caller's config is not mutated.
	normalized := *config
	normalized.BaseURL = normalizeBaseURL(config.BaseURL)

	aerisClient, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return aerisClient, nil
}

// NewWithCredentials creates a new client for the production Aeris API.
func NewWithCredentials(clientID, clientSecret string) (aeris.Client, error) {
	return New(&aeris.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
	})
}

// normalizeBaseURL applies the default base URL, trims a trailing slash, and
// adds "https://" when no scheme is present.
func normalizeBaseURL(baseURL string) string {
	if baseURL == "" {
		return constants.DefaultBaseURL
	}

	normalized := strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(normalized, "http://") && !strings.HasPrefix(normalized, "https://") {
		normalized = "https://" + normalized
	}

	return normalized
}
