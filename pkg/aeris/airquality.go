package aeris

import "time"

// AirQuality represents one air quality result returned by the API.
//
// For information about the fields of this model, consult the Aeris API air
// quality endpoint documentation:
// https://www.aerisweather.com/support/docs/api/reference/endpoints/airquality/
type AirQuality struct {
	// ID is the reporting station ID when the data comes from a single
	// station, empty otherwise.
	ID         string             `json:"id,omitempty"         yaml:"id,omitempty"`
	Loc        Location           `json:"loc"                  yaml:"loc"`
	Place      Place              `json:"place"                yaml:"place"`
	Periods    []AirQualityPeriod `json:"periods"              yaml:"periods"`
	Profile    AirQualityProfile  `json:"profile"              yaml:"profile"`
	RelativeTo *RelativeTo        `json:"relativeTo,omitempty" yaml:"relativeTo,omitempty"`

	// GeoJSON is set when the result came back wrapped in a GeoJSON feature,
	// which the API does for route action responses.
	GeoJSON *Feature `json:"-" yaml:"-"`
}

// AirQualityPeriod represents a single air quality observation.
type AirQualityPeriod struct {
	Timestamp  time.Time   `json:"dateTimeISO" yaml:"dateTimeISO"`
	AQI        int         `json:"aqi"         yaml:"aqi"`
	Category   string      `json:"category"    yaml:"category"`
	Color      string      `json:"color"       yaml:"color"`
	Method     string      `json:"method"      yaml:"method"`
	Dominant   string      `json:"dominant"    yaml:"dominant"`
	Pollutants []Pollutant `json:"pollutants"  yaml:"pollutants"`
}

// Pollutant represents the concentration of one pollutant within an
// observation. ValuePPB and ValueUGM3 are nil when the API reports no value
// in that unit (e.g. particle matter has no parts-per-billion measure).
type Pollutant struct {
	Type      string   `json:"type"                yaml:"type"`
	Name      string   `json:"name"                yaml:"name"`
	ValuePPB  *float64 `json:"valuePPB,omitempty"  yaml:"valuePPB,omitempty"`
	ValueUGM3 *float64 `json:"valueUGM3,omitempty" yaml:"valueUGM3,omitempty"`
	AQI       int      `json:"aqi"                 yaml:"aqi"`
	Category  string   `json:"category"            yaml:"category"`
	Color     string   `json:"color"               yaml:"color"`
	Method    string   `json:"method"              yaml:"method"`
}

// AirQualitySource names one provider of the air quality data.
type AirQualitySource struct {
	Name string `json:"name" yaml:"name"`
}

// AirQualityProfile describes the stations and sources behind a result.
type AirQualityProfile struct {
	TZ      string             `json:"tz"       yaml:"tz"`
	Sources []AirQualitySource `json:"sources"  yaml:"sources"`
	// Stations is never nil; the API's null normalizes to an empty slice.
	Stations []string `json:"stations" yaml:"stations"`
}
