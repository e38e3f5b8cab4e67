package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aerisweather/aerisweather-api-go/internal/constants"
	internalhttp "github.com/aerisweather/aerisweather-api-go/internal/http"
	"github.com/aerisweather/aerisweather-api-go/pkg/aeris"
)

// ConditionsClient implements the aeris.ConditionsClient interface.
type ConditionsClient struct {
	httpClient *internalhttp.Client
}

// NewConditionsClient creates a new ConditionsClient.
func NewConditionsClient(httpClient *internalhttp.Client) *ConditionsClient {
	return &ConditionsClient{
		httpClient: httpClient,
	}
}

// Get queries conditions for a single location.
func (c *ConditionsClient) Get(ctx context.Context, location string, params *aeris.QueryParams) (*aeris.Response[aeris.Conditions], error) {
	if location == "" {
		return nil, aeris.ErrLocationRequired
	}

	path := constants.PathConditions + "/" + location

	resp, err := c.httpClient.Get(ctx, path, queryValues(params))
	if err != nil {
		return nil, fmt.Errorf("getting conditions: %w", err)
	}

	return decodeResponse(resp, decodeConditionsEntry)
}

// Route queries conditions along a route of places.
func (c *ConditionsClient) Route(ctx context.Context, route aeris.Route, params *aeris.QueryParams) (*aeris.Response[aeris.Conditions], error) {
	if len(route) == 0 {
		return nil, aeris.ErrEmptyRoute
	}

	path := constants.PathConditions + "/" + constants.ActionRoute

	resp, err := c.httpClient.Post(ctx, path, queryValues(params), route)
	if err != nil {
		return nil, fmt.Errorf("getting conditions route: %w", err)
	}

	return decodeResponse(resp, decodeConditionsEntry)
}

// Wire representations of the conditions response documents.

type wireConditions struct {
	ID         *string                `json:"id"`
	Loc        *wireLocation          `json:"loc"`
	Place      *wirePlace             `json:"place"`
	Periods    []wireConditionsPeriod `json:"periods"`
	Profile    *wireConditionsProfile `json:"profile"`
	RelativeTo *wireRelativeTo        `json:"relativeTo"`
}

type wireConditionsPeriod struct {
	DateTimeISO *string `json:"dateTimeISO"`

	TempC      *float64 `json:"tempC"`
	TempF      *float64 `json:"tempF"`
	FeelsLikeC *float64 `json:"feelslikeC"`
	FeelsLikeF *float64 `json:"feelslikeF"`

	DewpointC *float64 `json:"dewpointC"`
	DewpointF *float64 `json:"dewpointF"`
	Humidity  *int     `json:"humidity"`

	PressureMB *float64 `json:"pressureMB"`
	PressureIN *float64 `json:"pressureIN"`

	WindDir      *string  `json:"windDir"`
	WindDirDEG   *int     `json:"windDirDEG"`
	WindSpeedKPH *float64 `json:"windSpeedKPH"`
	WindSpeedMPH *float64 `json:"windSpeedMPH"`
	WindGustKPH  *float64 `json:"windGustKPH"`
	WindGustMPH  *float64 `json:"windGustMPH"`

	PrecipMM *float64 `json:"precipMM"`
	PrecipIN *float64 `json:"precipIN"`

	VisibilityKM *float64 `json:"visibilityKM"`
	VisibilityMI *float64 `json:"visibilityMI"`

	Sky *int `json:"sky"`

	Weather             *string `json:"weather"`
	WeatherCoded        *string `json:"weatherCoded"`
	WeatherPrimary      *string `json:"weatherPrimary"`
	WeatherPrimaryCoded *string `json:"weatherPrimaryCoded"`
	Icon                *string `json:"icon"`

	SolRadWM2 *int     `json:"solradWM2"`
	UVI       *float64 `json:"uvi"`
	IsDay     *bool    `json:"isDay"`
}

type wireConditionsProfile struct {
	TZ     *string `json:"tz"`
	TZName *string `json:"tzname"`
	ElevM  *int    `json:"elevM"`
	ElevFT *int    `json:"elevFT"`
}

// decodeConditionsEntry decodes one conditions response entry, unwrapping
// the GeoJSON feature first when present.
func decodeConditionsEntry(raw json.RawMessage) (aeris.Conditions, error) {
	modelRaw, feature, err := unwrapGeoJSON(raw)
	if err != nil {
		return aeris.Conditions{}, err
	}

	var wire wireConditions

	err = json.Unmarshal(modelRaw, &wire)
	if err != nil {
		return aeris.Conditions{}, &aeris.DeserializationError{Field: "Conditions", Reason: err.Error()}
	}

	var tracker fieldTracker

	result := aeris.Conditions{
		ID:         deref(wire.ID),
		Loc:        decodeLocation(wire.Loc, &tracker, "Conditions.loc"),
		Place:      decodePlace(wire.Place, &tracker, "Conditions.place"),
		Profile:    decodeConditionsProfile(wire.Profile, &tracker, "Conditions.profile"),
		RelativeTo: decodeRelativeTo(wire.RelativeTo, &tracker, "Conditions.relativeTo"),
		GeoJSON:    feature,
	}

	if wire.Periods == nil {
		tracker.record("Conditions.periods")
	}

	for i := range wire.Periods {
		at := fmt.Sprintf("Conditions.periods.%d", i)
		result.Periods = append(result.Periods, decodeConditionsPeriod(&wire.Periods[i], &tracker, at))
	}

	if tracker.err != nil {
		return aeris.Conditions{}, tracker.err
	}

	return result, nil
}

func decodeConditionsPeriod(w *wireConditionsPeriod, t *fieldTracker, at string) aeris.ConditionsPeriod {
	return aeris.ConditionsPeriod{
		Timestamp: decodeTimestamp(t, w.DateTimeISO, at+".dateTimeISO"),

		TempC:      required(t, w.TempC, at+".tempC"),
		TempF:      required(t, w.TempF, at+".tempF"),
		FeelsLikeC: required(t, w.FeelsLikeC, at+".feelslikeC"),
		FeelsLikeF: required(t, w.FeelsLikeF, at+".feelslikeF"),

		DewpointC: w.DewpointC,
		DewpointF: w.DewpointF,
		Humidity:  required(t, w.Humidity, at+".humidity"),

		PressureMB: w.PressureMB,
		PressureIN: w.PressureIN,

		WindDir:      required(t, w.WindDir, at+".windDir"),
		WindDirDEG:   required(t, w.WindDirDEG, at+".windDirDEG"),
		WindSpeedKPH: required(t, w.WindSpeedKPH, at+".windSpeedKPH"),
		WindSpeedMPH: required(t, w.WindSpeedMPH, at+".windSpeedMPH"),
		WindGustKPH:  w.WindGustKPH,
		WindGustMPH:  w.WindGustMPH,

		PrecipMM: w.PrecipMM,
		PrecipIN: w.PrecipIN,

		VisibilityKM: w.VisibilityKM,
		VisibilityMI: w.VisibilityMI,

		Sky: w.Sky,

		Weather:             required(t, w.Weather, at+".weather"),
		WeatherCoded:        deref(w.WeatherCoded),
		WeatherPrimary:      required(t, w.WeatherPrimary, at+".weatherPrimary"),
		WeatherPrimaryCoded: deref(w.WeatherPrimaryCoded),
		Icon:                required(t, w.Icon, at+".icon"),

		SolRadWM2: w.SolRadWM2,
		UVI:       w.UVI,
		IsDay:     required(t, w.IsDay, at+".isDay"),
	}
}

func decodeConditionsProfile(w *wireConditionsProfile, t *fieldTracker, at string) aeris.ConditionsProfile {
	if w == nil {
		t.record(at)

		return aeris.ConditionsProfile{}
	}

	return aeris.ConditionsProfile{
		TZ:     required(t, w.TZ, at+".tz"),
		TZName: deref(w.TZName),
		ElevM:  w.ElevM,
		ElevFT: w.ElevFT,
	}
}
