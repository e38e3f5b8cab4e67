package aeris

import "time"

// Conditions represents one conditions result returned by the API.
//
// For information about the fields of this model, consult the Aeris API
// conditions endpoint documentation:
// https://www.aerisweather.com/support/docs/api/reference/endpoints/conditions/
type Conditions struct {
	ID         string             `json:"id,omitempty"         yaml:"id,omitempty"`
	Loc        Location           `json:"loc"                  yaml:"loc"`
	Place      Place              `json:"place"                yaml:"place"`
	Periods    []ConditionsPeriod `json:"periods"              yaml:"periods"`
	Profile    ConditionsProfile  `json:"profile"              yaml:"profile"`
	RelativeTo *RelativeTo        `json:"relativeTo,omitempty" yaml:"relativeTo,omitempty"`

	// GeoJSON is set when the result came back wrapped in a GeoJSON feature,
	// which the API does for route action responses.
	GeoJSON *Feature `json:"-" yaml:"-"`
}

// ConditionsPeriod represents the observed or interpolated conditions for
// one period. Pointer fields are nil when the API reports null, which it
// does for measures that are unavailable at the observation site or time of
// day (e.g. solar radiation at night).
type ConditionsPeriod struct {
	Timestamp time.Time `json:"dateTimeISO" yaml:"dateTimeISO"`

	TempC      float64 `json:"tempC"      yaml:"tempC"`
	TempF      float64 `json:"tempF"      yaml:"tempF"`
	FeelsLikeC float64 `json:"feelslikeC" yaml:"feelslikeC"`
	FeelsLikeF float64 `json:"feelslikeF" yaml:"feelslikeF"`

	DewpointC *float64 `json:"dewpointC,omitempty" yaml:"dewpointC,omitempty"`
	DewpointF *float64 `json:"dewpointF,omitempty" yaml:"dewpointF,omitempty"`
	Humidity  int      `json:"humidity"            yaml:"humidity"`

	PressureMB *float64 `json:"pressureMB,omitempty" yaml:"pressureMB,omitempty"`
	PressureIN *float64 `json:"pressureIN,omitempty" yaml:"pressureIN,omitempty"`

	WindDir      string   `json:"windDir"                yaml:"windDir"`
	WindDirDEG   int      `json:"windDirDEG"             yaml:"windDirDEG"`
	WindSpeedKPH float64  `json:"windSpeedKPH"           yaml:"windSpeedKPH"`
	WindSpeedMPH float64  `json:"windSpeedMPH"           yaml:"windSpeedMPH"`
	WindGustKPH  *float64 `json:"windGustKPH,omitempty"  yaml:"windGustKPH,omitempty"`
	WindGustMPH  *float64 `json:"windGustMPH,omitempty"  yaml:"windGustMPH,omitempty"`

	PrecipMM *float64 `json:"precipMM,omitempty" yaml:"precipMM,omitempty"`
	PrecipIN *float64 `json:"precipIN,omitempty" yaml:"precipIN,omitempty"`

	VisibilityKM *float64 `json:"visibilityKM,omitempty" yaml:"visibilityKM,omitempty"`
	VisibilityMI *float64 `json:"visibilityMI,omitempty" yaml:"visibilityMI,omitempty"`

	Sky *int `json:"sky,omitempty" yaml:"sky,omitempty"`

	Weather             string `json:"weather"             yaml:"weather"`
	WeatherCoded        string `json:"weatherCoded"        yaml:"weatherCoded"`
	WeatherPrimary      string `json:"weatherPrimary"      yaml:"weatherPrimary"`
	WeatherPrimaryCoded string `json:"weatherPrimaryCoded" yaml:"weatherPrimaryCoded"`
	Icon                string `json:"icon"                yaml:"icon"`

	SolRadWM2 *int     `json:"solradWM2,omitempty" yaml:"solradWM2,omitempty"`
	UVI       *float64 `json:"uvi,omitempty"       yaml:"uvi,omitempty"`
	IsDay     bool     `json:"isDay"               yaml:"isDay"`
}

// ConditionsProfile describes the location the conditions apply to.
type ConditionsProfile struct {
	TZ     string `json:"tz"               yaml:"tz"`
	TZName string `json:"tzname,omitempty" yaml:"tzname,omitempty"`
	ElevM  *int   `json:"elevM,omitempty"  yaml:"elevM,omitempty"`
	ElevFT *int   `json:"elevFT,omitempty" yaml:"elevFT,omitempty"`
}
