package aeris

import (
	"context"
	"net/http"
	"net/url"
)

// HTTPDoer is the raw HTTP surface of an Aeris API client. Requests made
// through it are issued against the configured base URL with client_id and
// client_secret already injected into the query string. Responses are
// returned for any status code; the error return is reserved for
// transport-level failures.
type HTTPDoer interface {
	Get(ctx context.Context, path string, params url.Values) (*HTTPResponse, error)
	Post(ctx context.Context, path string, params url.Values, body interface{}) (*HTTPResponse, error)
}

// ConditionsClient provides access to the Aeris conditions endpoint.
type ConditionsClient interface {
	// Get queries conditions for a single location, e.g. "55344",
	// "minneapolis,mn", or "44.96,-93.27".
	Get(ctx context.Context, location string, params *QueryParams) (*Response[Conditions], error)
	// Route queries conditions along a route of places.
	Route(ctx context.Context, route Route, params *QueryParams) (*Response[Conditions], error)
}

// AirQualityClient provides access to the Aeris air quality endpoint.
type AirQualityClient interface {
	// Get queries air quality for a single location or station ID.
	Get(ctx context.Context, id string, params *QueryParams) (*Response[AirQuality], error)
	// Closest queries the air quality observations closest to the place
	// given in params.
	Closest(ctx context.Context, params *QueryParams) (*Response[AirQuality], error)
	// Search queries air quality observations matching the criteria in params.
	Search(ctx context.Context, params *QueryParams) (*Response[AirQuality], error)
	// Within queries air quality observations within the region given in params.
	Within(ctx context.Context, params *QueryParams) (*Response[AirQuality], error)
	// Route queries air quality along a route of places.
	Route(ctx context.Context, route Route, params *QueryParams) (*Response[AirQuality], error)
}

// Client is the facade over the Aeris API. Implementations hold only
// immutable configuration; a single Client is safe for concurrent use to the
// extent the underlying http.Client is.
type Client interface {
	// HTTP returns the raw HTTP surface with base URL and credentials
	// pre-injected.
	HTTP() HTTPDoer
	Conditions() ConditionsClient
	AirQuality() AirQualityClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building an aeris.Client.
//
// ClientID and ClientSecret are required; everything else is optional.
// Configuration is copied at construction time and never mutated afterward.
type Config struct {
	// ClientID: Aeris client ID, sent as the client_id query parameter on
	// every request.
	ClientID string
	// ClientSecret: Aeris client secret, sent as the client_secret query
	// parameter on every request.
	ClientSecret string

	// BaseURL: base URL for the Aeris API. Defaults to
	// "https://api.aerisapi.com". May be overridden to point at a caching
	// proxy; the override must preserve the path, query, and body semantics
	// of the real API, which the client has no way to verify.
	BaseURL string

	// HTTPClient: underlying transport. Defaults to a pooled client.
	// Timeouts, TLS configuration, and connection pooling are configured
	// here; the SDK adds nothing on top.
	HTTPClient *http.Client

	// UserAgent: overrides the default User-Agent header.
	UserAgent string

	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
}
