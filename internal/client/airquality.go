package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aerisweather/aerisweather-api-go/internal/constants"
	internalhttp "github.com/aerisweather/aerisweather-api-go/internal/http"
	"github.com/aerisweather/aerisweather-api-go/pkg/aeris"
)

// AirQualityClient implements the aeris.AirQualityClient interface.
type AirQualityClient struct {
	httpClient *internalhttp.Client
}

// NewAirQualityClient creates a new AirQualityClient.
func NewAirQualityClient(httpClient *internalhttp.Client) *AirQualityClient {
	return &AirQualityClient{
		httpClient: httpClient,
	}
}

// Get queries air quality for a single location or station ID.
func (c *AirQualityClient) Get(ctx context.Context, id string, params *aeris.QueryParams) (*aeris.Response[aeris.AirQuality], error) {
	if id == "" {
		return nil, aeris.ErrLocationRequired
	}

	path := constants.PathAirQuality + "/" + id

	resp, err := c.httpClient.Get(ctx, path, queryValues(params))
	if err != nil {
		return nil, fmt.Errorf("getting air quality: %w", err)
	}

	return decodeResponse(resp, decodeAirQualityEntry)
}

// Closest queries the air quality observations closest to the place given in
// params.
func (c *AirQualityClient) Closest(ctx context.Context, params *aeris.QueryParams) (*aeris.Response[aeris.AirQuality], error) {
	return c.action(ctx, constants.ActionClosest, params)
}

// Search queries air quality observations matching the criteria in params.
func (c *AirQualityClient) Search(ctx context.Context, params *aeris.QueryParams) (*aeris.Response[aeris.AirQuality], error) {
	return c.action(ctx, constants.ActionSearch, params)
}

// Within queries air quality observations within the region given in params.
func (c *AirQualityClient) Within(ctx context.Context, params *aeris.QueryParams) (*aeris.Response[aeris.AirQuality], error) {
	return c.action(ctx, constants.ActionWithin, params)
}

// Route queries air quality along a route of places. The route is POSTed as
// the JSON array the API expects.
func (c *AirQualityClient) Route(ctx context.Context, route aeris.Route, params *aeris.QueryParams) (*aeris.Response[aeris.AirQuality], error) {
	if len(route) == 0 {
		return nil, aeris.ErrEmptyRoute
	}

	path := constants.PathAirQuality + "/" + constants.ActionRoute

	resp, err := c.httpClient.Post(ctx, path, queryValues(params), route)
	if err != nil {
		return nil, fmt.Errorf("getting air quality route: %w", err)
	}

	return decodeResponse(resp, decodeAirQualityEntry)
}

func (c *AirQualityClient) action(ctx context.Context, action string, params *aeris.QueryParams) (*aeris.Response[aeris.AirQuality], error) {
	path := constants.PathAirQuality + "/" + action

	resp, err := c.httpClient.Get(ctx, path, queryValues(params))
	if err != nil {
		return nil, fmt.Errorf("getting air quality %s: %w", action, err)
	}

	return decodeResponse(resp, decodeAirQualityEntry)
}

// Wire representations of the air quality response documents.

type wireAirQuality struct {
	ID         *string                `json:"id"`
	Loc        *wireLocation          `json:"loc"`
	Place      *wirePlace             `json:"place"`
	Periods    []wireAirQualityPeriod `json:"periods"`
	Profile    *wireAirQualityProfile `json:"profile"`
	RelativeTo *wireRelativeTo        `json:"relativeTo"`
}

type wireAirQualityPeriod struct {
	DateTimeISO *string         `json:"dateTimeISO"`
	AQI         *int            `json:"aqi"`
	Category    *string         `json:"category"`
	Color       *string         `json:"color"`
	Method      *string         `json:"method"`
	Dominant    *string         `json:"dominant"`
	Pollutants  []wirePollutant `json:"pollutants"`
}

type wirePollutant struct {
	Type      *string  `json:"type"`
	Name      *string  `json:"name"`
	ValuePPB  *float64 `json:"valuePPB"`
	ValueUGM3 *float64 `json:"valueUGM3"`
	AQI       *int     `json:"aqi"`
	Category  *string  `json:"category"`
	Color     *string  `json:"color"`
	Method    *string  `json:"method"`
}

type wireAirQualitySource struct {
	Name *string `json:"name"`
}

type wireAirQualityProfile struct {
	TZ       *string                `json:"tz"`
	Sources  []wireAirQualitySource `json:"sources"`
	Stations []string               `json:"stations"`
}

// decodeAirQualityEntry decodes one air quality response entry, unwrapping
// the GeoJSON feature first when present.
func decodeAirQualityEntry(raw json.RawMessage) (aeris.AirQuality, error) {
	modelRaw, feature, err := unwrapGeoJSON(raw)
	if err != nil {
		return aeris.AirQuality{}, err
	}

	var wire wireAirQuality

	err = json.Unmarshal(modelRaw, &wire)
	if err != nil {
		return aeris.AirQuality{}, &aeris.DeserializationError{Field: "AirQuality", Reason: err.Error()}
	}

	var tracker fieldTracker

	result := aeris.AirQuality{
		ID:         deref(wire.ID),
		Loc:        decodeLocation(wire.Loc, &tracker, "AirQuality.loc"),
		Place:      decodePlace(wire.Place, &tracker, "AirQuality.place"),
		Profile:    decodeAirQualityProfile(wire.Profile, &tracker, "AirQuality.profile"),
		RelativeTo: decodeRelativeTo(wire.RelativeTo, &tracker, "AirQuality.relativeTo"),
		GeoJSON:    feature,
	}

	if wire.Periods == nil {
		tracker.record("AirQuality.periods")
	}

	for i := range wire.Periods {
		at := fmt.Sprintf("AirQuality.periods.%d", i)
		result.Periods = append(result.Periods, decodeAirQualityPeriod(&wire.Periods[i], &tracker, at))
	}

	if tracker.err != nil {
		return aeris.AirQuality{}, tracker.err
	}

	return result, nil
}

func decodeAirQualityPeriod(w *wireAirQualityPeriod, t *fieldTracker, at string) aeris.AirQualityPeriod {
	period := aeris.AirQualityPeriod{
		Timestamp: decodeTimestamp(t, w.DateTimeISO, at+".dateTimeISO"),
		AQI:       required(t, w.AQI, at+".aqi"),
		Category:  required(t, w.Category, at+".category"),
		Color:     required(t, w.Color, at+".color"),
		Method:    required(t, w.Method, at+".method"),
		Dominant:  required(t, w.Dominant, at+".dominant"),
	}

	if w.Pollutants == nil {
		t.record(at + ".pollutants")
	}

	for i := range w.Pollutants {
		pollutantAt := fmt.Sprintf("%s.pollutants.%d", at, i)
		period.Pollutants = append(period.Pollutants, decodePollutant(&w.Pollutants[i], t, pollutantAt, period.Method))
	}

	return period
}

// decodePollutant decodes one pollutant. Some actions omit the per-pollutant
// method; it then defaults to the surrounding period's method.
func decodePollutant(w *wirePollutant, t *fieldTracker, at, defaultMethod string) aeris.Pollutant {
	pollutant := aeris.Pollutant{
		Type:      required(t, w.Type, at+".type"),
		Name:      required(t, w.Name, at+".name"),
		ValuePPB:  w.ValuePPB,
		ValueUGM3: w.ValueUGM3,
		AQI:       required(t, w.AQI, at+".aqi"),
		Category:  required(t, w.Category, at+".category"),
		Color:     required(t, w.Color, at+".color"),
		Method:    deref(w.Method),
	}

	if pollutant.Method == "" {
		pollutant.Method = defaultMethod
	}

	return pollutant
}

func decodeAirQualityProfile(w *wireAirQualityProfile, t *fieldTracker, at string) aeris.AirQualityProfile {
	if w == nil {
		t.record(at)

		return aeris.AirQualityProfile{}
	}

	profile := aeris.AirQualityProfile{
		TZ: required(t, w.TZ, at+".tz"),
		// The API sometimes returns a null stations property; normalize it
		// to an empty slice.
		Stations: w.Stations,
	}

	if profile.Stations == nil {
		profile.Stations = []string{}
	}

	if w.Sources == nil {
		t.record(at + ".sources")
	}

	for i := range w.Sources {
		sourceAt := fmt.Sprintf("%s.sources.%d", at, i)
		profile.Sources = append(profile.Sources, aeris.AirQualitySource{
			Name: required(t, w.Sources[i].Name, sourceAt+".name"),
		})
	}

	return profile
}
