// Package client implements the aeris.Client facade and the typed endpoint
// clients behind it.
package client

import (
	"net/url"

	internalhttp "github.com/aerisweather/aerisweather-api-go/internal/http"
	"github.com/aerisweather/aerisweather-api-go/pkg/aeris"
)

// Client implements the aeris.Client interface. It is stateless beyond the
// configuration captured at construction.
type Client struct {
	httpClient *internalhttp.Client

	conditions aeris.ConditionsClient
	airQuality aeris.AirQualityClient
}

// New creates a new Aeris API client from validated configuration. The base
// URL in config is expected to be normalized already; aerisclient.New takes
// care of both.
func New(config *aeris.Config) (*Client, error) {
	if config == nil {
		return nil, aeris.ErrConfigRequired
	}

	if config.ClientID == "" {
		return nil, aeris.ErrClientIDRequired
	}

	if config.ClientSecret == "" {
		return nil, aeris.ErrClientSecretRequired
	}

	httpOpts := createHTTPClientOptions(config)
	httpClient := internalhttp.NewClient(config.BaseURL, config.ClientID, config.ClientSecret, httpOpts...)

	client := &Client{
		httpClient: httpClient,
	}

	client.conditions = NewConditionsClient(httpClient)
	client.airQuality = NewAirQualityClient(httpClient)

	return client, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *aeris.Config) []internalhttp.Option {
	var httpOpts []internalhttp.Option

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, internalhttp.WithHTTPClient(config.HTTPClient))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, internalhttp.WithDebug(true))
	}

	return httpOpts
}

// HTTP returns the raw HTTP surface with base URL and credentials
// pre-injected.
func (c *Client) HTTP() aeris.HTTPDoer {
	return c.httpClient
}

// Conditions returns the conditions endpoint client.
func (c *Client) Conditions() aeris.ConditionsClient {
	return c.conditions
}

// AirQuality returns the air quality endpoint client.
func (c *Client) AirQuality() aeris.AirQualityClient {
	return c.airQuality
}

// queryValues converts optional query parameters to url.Values.
func queryValues(params *aeris.QueryParams) url.Values {
	if params == nil {
		return nil
	}

	return params.ToValues()
}
