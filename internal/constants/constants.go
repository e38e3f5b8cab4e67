package constants

import "time"

// API endpoint defaults.
const (
	// DefaultBaseURL is the production Aeris API base URL. It may be
	// overridden to point at a caching proxy that preserves the API's
	// path and query semantics.
	DefaultBaseURL = "https://api.aerisapi.com"

	// DefaultUserAgent is sent with every request unless overridden.
	DefaultUserAgent = "aerisweather-api-go/1.0"
)

// Endpoint paths.
const (
	// PathConditions is the conditions endpoint path.
	PathConditions = "conditions"

	// PathAirQuality is the air quality endpoint path.
	PathAirQuality = "airquality"
)

// Endpoint actions shared between endpoints.
const (
	// ActionClosest queries the observation closest to a place.
	ActionClosest = "closest"

	// ActionSearch queries observations matching search criteria.
	ActionSearch = "search"

	// ActionWithin queries observations within a bounded region.
	ActionWithin = "within"

	// ActionRoute queries observations along a route of places.
	ActionRoute = "route"
)

// Authentication query parameter names.
const (
	// ParamClientID carries the Aeris client ID on every request.
	ParamClientID = "client_id"

	// ParamClientSecret carries the Aeris client secret on every request.
	ParamClientSecret = "client_secret"
)

// HTTP timeouts used by example programs. The SDK itself configures no
// timeout; callers supply one on their own http.Client.
const (
	// ExampleHTTPTimeout is a reasonable timeout for example programs.
	ExampleHTTPTimeout = 30 * time.Second
)

// DateTimeISOLayout is the layout of Aeris dateTimeISO fields,
// e.g. "2022-04-27T13:00:00-05:00".
const DateTimeISOLayout = "2006-01-02T15:04:05-07:00"
