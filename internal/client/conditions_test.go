package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerisweather/aerisweather-api-go/pkg/aeris"
)

// conditionsBody is a representative conditions/:id response.
const conditionsBody = `{
  "success": true,
  "error": null,
  "response": {
    "loc": {"lat": 44.86469, "long": -93.470186},
    "place": {"name": "eden prairie", "state": "mn", "country": "us"},
    "periods": [
      {
        "dateTimeISO": "2024-03-15T14:00:00-05:00",
        "tempC": 11.4,
        "tempF": 52.5,
        "feelslikeC": 9.8,
        "feelslikeF": 49.6,
        "dewpointC": 2.1,
        "dewpointF": 35.8,
        "humidity": 53,
        "pressureMB": 1016.5,
        "pressureIN": 30.02,
        "windDir": "NW",
        "windDirDEG": 315,
        "windSpeedKPH": 14.8,
        "windSpeedMPH": 9.2,
        "windGustKPH": 24.1,
        "windGustMPH": 15,
        "precipMM": 0,
        "precipIN": 0,
        "visibilityKM": 16.093,
        "visibilityMI": 10,
        "sky": 25,
        "weather": "Mostly Sunny",
        "weatherCoded": "::FW",
        "weatherPrimary": "Mostly Sunny",
        "weatherPrimaryCoded": "::FW",
        "icon": "fair.png",
        "solradWM2": 612,
        "uvi": 4,
        "isDay": true
      }
    ],
    "profile": {"tz": "America/Chicago", "tzname": "CDT", "elevM": 276, "elevFT": 906}
  }
}`

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestConditionsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/conditions/55344", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "test-id", r.URL.Query().Get("client_id"))
		assert.Equal(t, "test-secret", r.URL.Query().Get("client_secret"))

		_, _ = w.Write([]byte(conditionsBody))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	resp, err := client.Conditions().Get(context.Background(), "55344", nil)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
	require.NotNil(t, resp.HTTP)
	assert.Equal(t, http.StatusOK, resp.HTTP.StatusCode)

	// A single-object response decodes to a one-element slice.
	require.Len(t, resp.Data, 1)

	result := resp.Data[0]
	assert.InDelta(t, 44.86469, result.Loc.Lat, 0.0001)
	assert.Equal(t, aeris.Place{Name: "eden prairie", State: "mn", Country: "us"}, result.Place)
	assert.Equal(t, "America/Chicago", result.Profile.TZ)
	assert.Equal(t, "CDT", result.Profile.TZName)
	require.NotNil(t, result.Profile.ElevM)
	assert.Equal(t, 276, *result.Profile.ElevM)

	require.Len(t, result.Periods, 1)
	period := result.Periods[0]

	wantTime := time.Date(2024, 3, 15, 14, 0, 0, 0, time.FixedZone("", -5*60*60))
	assert.True(t, period.Timestamp.Equal(wantTime))
	assert.InDelta(t, 11.4, period.TempC, 0.0001)
	assert.InDelta(t, 52.5, period.TempF, 0.0001)
	assert.InDelta(t, 9.8, period.FeelsLikeC, 0.0001)
	assert.Equal(t, 53, period.Humidity)
	assert.Equal(t, "NW", period.WindDir)
	assert.Equal(t, 315, period.WindDirDEG)
	assert.InDelta(t, 14.8, period.WindSpeedKPH, 0.0001)
	require.NotNil(t, period.WindGustMPH)
	assert.InDelta(t, 15, *period.WindGustMPH, 0.0001)
	require.NotNil(t, period.DewpointC)
	assert.InDelta(t, 2.1, *period.DewpointC, 0.0001)
	require.NotNil(t, period.PressureMB)
	assert.InDelta(t, 1016.5, *period.PressureMB, 0.0001)
	require.NotNil(t, period.Sky)
	assert.Equal(t, 25, *period.Sky)
	assert.Equal(t, "Mostly Sunny", period.Weather)
	assert.Equal(t, "::FW", period.WeatherCoded)
	assert.Equal(t, "fair.png", period.Icon)
	require.NotNil(t, period.SolRadWM2)
	assert.Equal(t, 612, *period.SolRadWM2)
	require.NotNil(t, period.UVI)
	assert.InDelta(t, 4, *period.UVI, 0.0001)
	assert.True(t, period.IsDay)
}

func TestConditionsClient_GetNullMeasures(t *testing.T) {
	// Nighttime observation with null solar radiation and missing optional
	// measures.
	body := `{
	  "success": true,
	  "error": null,
	  "response": {
	    "loc": {"lat": 44.86469, "long": -93.470186},
	    "place": {"name": "eden prairie", "state": "mn", "country": "us"},
	    "periods": [
	      {
	        "dateTimeISO": "2024-03-15T23:00:00-05:00",
	        "tempC": 3.2,
	        "tempF": 37.8,
	        "feelslikeC": 1.1,
	        "feelslikeF": 34,
	        "dewpointC": null,
	        "dewpointF": null,
	        "humidity": 71,
	        "windDir": "N",
	        "windDirDEG": 0,
	        "windSpeedKPH": 6.4,
	        "windSpeedMPH": 4,
	        "weather": "Clear",
	        "weatherPrimary": "Clear",
	        "icon": "clearn.png",
	        "solradWM2": null,
	        "uvi": null,
	        "isDay": false
	      }
	    ],
	    "profile": {"tz": "America/Chicago"}
	  }
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	resp, err := client.Conditions().Get(context.Background(), "55344", nil)
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	require.Len(t, resp.Data[0].Periods, 1)

	period := resp.Data[0].Periods[0]
	assert.Nil(t, period.DewpointC)
	assert.Nil(t, period.SolRadWM2)
	assert.Nil(t, period.UVI)
	assert.Nil(t, period.Sky)
	assert.False(t, period.IsDay)
	assert.Empty(t, period.WeatherCoded)
}

func TestConditionsClient_GetValidation(t *testing.T) {
	client := newTestClient("http://127.0.0.1:0")

	resp, err := client.Conditions().Get(context.Background(), "", nil)
	require.ErrorIs(t, err, aeris.ErrLocationRequired)
	assert.Nil(t, resp)
}

func TestConditionsClient_QueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "1", query.Get("limit"))
		assert.Equal(t, "periods.tempC,periods.dateTimeISO", query.Get("fields"))

		_, _ = w.Write([]byte(`{"success": true, "error": null, "response": null}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	params := aeris.NewQueryParams().
		WithLimit(1).
		WithFields("periods.tempC", "periods.dateTimeISO")

	resp, err := client.Conditions().Get(context.Background(), "55344", params)
	require.NoError(t, err)
	assert.Empty(t, resp.Data)
}

func TestConditionsClient_MissingRequiredField(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name: "missing temperature",
			body: `{
			  "success": true,
			  "error": null,
			  "response": {
			    "loc": {"lat": 44.86, "long": -93.47},
			    "place": {"name": "eden prairie", "state": "mn", "country": "us"},
			    "periods": [
			      {
			        "dateTimeISO": "2024-03-15T14:00:00-05:00",
			        "tempF": 52.5,
			        "feelslikeC": 9.8,
			        "feelslikeF": 49.6,
			        "humidity": 53,
			        "windDir": "NW",
			        "windDirDEG": 315,
			        "windSpeedKPH": 14.8,
			        "windSpeedMPH": 9.2,
			        "weather": "Mostly Sunny",
			        "weatherPrimary": "Mostly Sunny",
			        "icon": "fair.png",
			        "isDay": true
			      }
			    ],
			    "profile": {"tz": "America/Chicago"}
			  }
			}`,
			wantField: "Conditions.periods.0.tempC",
		},
		{
			name: "missing place name",
			body: `{
			  "success": true,
			  "error": null,
			  "response": {
			    "loc": {"lat": 44.86, "long": -93.47},
			    "place": {"state": "mn", "country": "us"},
			    "periods": [],
			    "profile": {"tz": "America/Chicago"}
			  }
			}`,
			wantField: "Conditions.place.name",
		},
		{
			name: "malformed timestamp",
			body: `{
			  "success": true,
			  "error": null,
			  "response": {
			    "loc": {"lat": 44.86, "long": -93.47},
			    "place": {"name": "eden prairie", "state": "mn", "country": "us"},
			    "periods": [
			      {
			        "dateTimeISO": "not-a-timestamp",
			        "tempC": 11.4,
			        "tempF": 52.5,
			        "feelslikeC": 9.8,
			        "feelslikeF": 49.6,
			        "humidity": 53,
			        "windDir": "NW",
			        "windDirDEG": 315,
			        "windSpeedKPH": 14.8,
			        "windSpeedMPH": 9.2,
			        "weather": "Mostly Sunny",
			        "weatherPrimary": "Mostly Sunny",
			        "icon": "fair.png",
			        "isDay": true
			      }
			    ],
			    "profile": {"tz": "America/Chicago"}
			  }
			}`,
			wantField: "Conditions.periods.0.dateTimeISO",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newTestClient(server.URL)

			resp, err := client.Conditions().Get(context.Background(), "55344", nil)
			require.Error(t, err)
			assert.Nil(t, resp)

			deserErr := &aeris.DeserializationError{}
			require.True(t, errors.As(err, &deserErr))
			assert.Equal(t, tt.wantField, deserErr.Field)
		})
	}
}

func TestConditionsClient_Route(t *testing.T) {
	body := `{
	  "success": true,
	  "error": null,
	  "response": [
	    {
	      "type": "Feature",
	      "id": "0",
	      "geometry": {"type": "Point", "coordinates": [-93.2668, 44.9739]},
	      "properties": {
	        "request": {"id": "0", "skipped": false, "success": true, "error": null},
	        "response": {
	          "loc": {"lat": 44.9739, "long": -93.2668},
	          "place": {"name": "minneapolis", "state": "mn", "country": "us"},
	          "periods": [
	            {
	              "dateTimeISO": "2024-03-15T14:00:00-05:00",
	              "tempC": 11.4,
	              "tempF": 52.5,
	              "feelslikeC": 9.8,
	              "feelslikeF": 49.6,
	              "humidity": 53,
	              "windDir": "NW",
	              "windDirDEG": 315,
	              "windSpeedKPH": 14.8,
	              "windSpeedMPH": 9.2,
	              "weather": "Mostly Sunny",
	              "weatherPrimary": "Mostly Sunny",
	              "icon": "fair.png",
	              "isDay": true
	            }
	          ],
	          "profile": {"tz": "America/Chicago"}
	        }
	      }
	    }
	  ]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/conditions/route", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	resp, err := client.Conditions().Route(context.Background(), aeris.Route{aeris.RoutePoint{P: "minneapolis,mn"}}, nil)
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)

	result := resp.Data[0]
	assert.Equal(t, "minneapolis", result.Place.Name)
	require.NotNil(t, result.GeoJSON)
	assert.Equal(t, "0", result.GeoJSON.ID)
}
