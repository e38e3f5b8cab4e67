package aeris

import (
	"encoding/json"
	"net/http"
)

// HTTPResponse is the raw result of a request made through the HTTP surface.
// The body is fully read and owned by the caller.
type HTTPResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Response represents a decoded Aeris API response envelope. The API wraps
// every payload as {"success": ..., "error": ..., "response": ...}; Data
// holds the decoded response entries. A null response decodes to an empty
// slice and a single-object response to a one-element slice.
type Response[T any] struct {
	// HTTP is the underlying HTTP response, retained so callers can inspect
	// status code and headers.
	HTTP *HTTPResponse `json:"-" yaml:"-"`

	Success bool      `json:"success"         yaml:"success"`
	Error   *APIError `json:"error,omitempty" yaml:"error,omitempty"`
	Data    []T       `json:"response"        yaml:"response"`
}

// Location describes a latitude/longitude pair returned by the API.
type Location struct {
	Lat  float64 `json:"lat"  yaml:"lat"`
	Long float64 `json:"long" yaml:"long"`
}

// Place describes the place an observation belongs to. State is empty for
// countries without state subdivisions.
type Place struct {
	Name    string `json:"name"            yaml:"name"`
	State   string `json:"state,omitempty" yaml:"state,omitempty"`
	Country string `json:"country"         yaml:"country"`
}

// RelativeTo describes the position of the observation location relative to
// the requested location. It is returned by the closest action and sometimes
// by within.
type RelativeTo struct {
	Lat        float64 `json:"lat"        yaml:"lat"`
	Long       float64 `json:"long"       yaml:"long"`
	Bearing    int     `json:"bearing"    yaml:"bearing"`
	BearingENG string  `json:"bearingENG" yaml:"bearingENG"`
	DistanceKM float64 `json:"distanceKM" yaml:"distanceKM"`
	DistanceMI float64 `json:"distanceMI" yaml:"distanceMI"`
}

// Geometry is the geometry of a GeoJSON feature. Coordinates are kept raw
// because their shape depends on the geometry type.
type Geometry struct {
	Type        string          `json:"type"        yaml:"type"`
	Coordinates json.RawMessage `json:"coordinates" yaml:"-"`
}

// Feature is the GeoJSON feature wrapper the API uses for route action
// responses. The wrapped model is decoded out of properties.response; the
// remaining properties (e.g. the per-place request status) are retained.
type Feature struct {
	Type       string                     `json:"type"                 yaml:"type"`
	ID         string                     `json:"id,omitempty"         yaml:"id,omitempty"`
	Geometry   Geometry                   `json:"geometry"             yaml:"geometry"`
	Properties map[string]json.RawMessage `json:"properties,omitempty" yaml:"-"`
}

// RoutePlace is one place along a route submitted to a route action. The API
// accepts two variants: a parameter object describing the place with a place
// string (RoutePoint) and a GeoJSON feature carrying a Point or LineString
// geometry (RouteFeature).
type RoutePlace interface {
	routePlace()
}

// RoutePoint is a route place described by a place string.
type RoutePoint struct {
	// P describes the place, e.g. "55344", "minneapolis,mn", or
	// "44.96,-93.27".
	P string `json:"p" yaml:"p"`
	// ID optionally names the corresponding feature in the route response.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`
	// From optionally shifts the time period of interest for this place,
	// e.g. "+90minutes".
	From string `json:"from,omitempty" yaml:"from,omitempty"`
}

func (RoutePoint) routePlace() {}

// RouteFeature is a route place described by a GeoJSON Point or LineString
// geometry. Note GeoJSON orders coordinates (longitude, latitude).
type RouteFeature struct {
	Geometry Geometry
	// ID optionally names the corresponding feature in the route response.
	ID string
	// From optionally shifts the time period of interest for this place,
	// e.g. "+90minutes".
	From string
}

func (RouteFeature) routePlace() {}

// MarshalJSON serializes the place as the GeoJSON feature object the route
// action expects, with id and properties omitted when unset.
func (f RouteFeature) MarshalJSON() ([]byte, error) {
	feature := struct {
		Type       string            `json:"type"`
		ID         string            `json:"id,omitempty"`
		Geometry   Geometry          `json:"geometry"`
		Properties map[string]string `json:"properties,omitempty"`
	}{
		Type:     "Feature",
		ID:       f.ID,
		Geometry: f.Geometry,
	}

	if f.From != "" {
		feature.Properties = map[string]string{"from": f.From}
	}

	return json.Marshal(feature)
}

// PointGeometry builds a GeoJSON Point geometry for a route place.
func PointGeometry(long, lat float64) Geometry {
	coords, _ := json.Marshal([2]float64{long, lat})

	return Geometry{Type: "Point", Coordinates: coords}
}

// LineStringGeometry builds a GeoJSON LineString geometry from
// (longitude, latitude) pairs.
func LineStringGeometry(coordinates ...[2]float64) Geometry {
	coords, _ := json.Marshal(coordinates)

	return Geometry{Type: "LineString", Coordinates: coords}
}

// Route is the ordered list of places submitted to a route action. It is
// serialized as the JSON array the API expects as the POST body.
type Route []RoutePlace
