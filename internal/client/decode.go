package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aerisweather/aerisweather-api-go/internal/constants"
	"github.com/aerisweather/aerisweather-api-go/pkg/aeris"
)

// fieldTracker records the first deserialization failure encountered while
// mapping a wire object into a model. First error wins so the reported field
// path points at the earliest offending field.
type fieldTracker struct {
	err error
}

func (t *fieldTracker) record(field string) {
	if t.err == nil {
		t.err = &aeris.DeserializationError{Field: field}
	}
}

func (t *fieldTracker) recordReason(field, reason string) {
	if t.err == nil {
		t.err = &aeris.DeserializationError{Field: field, Reason: reason}
	}
}

// required dereferences a wire field, recording a deserialization error on
// the tracker when the field is absent from the payload.
func required[T any](t *fieldTracker, v *T, field string) T {
	if v == nil {
		t.record(field)

		var zero T

		return zero
	}

	return *v
}

// deref returns the value of an optional wire field or its zero value.
func deref[T any](v *T) T {
	if v == nil {
		var zero T

		return zero
	}

	return *v
}

// envelope mirrors the wrapper the Aeris API puts around every payload.
type envelope struct {
	Success  *bool           `json:"success"`
	Error    *envelopeError  `json:"error"`
	Response json.RawMessage `json:"response"`
}

type envelopeError struct {
	Code        *string `json:"code"`
	Description *string `json:"description"`
}

// decodeEnvelope parses the response envelope and splits the response
// payload into individual raw entries. A null response yields no entries and
// a single-object response yields one.
func decodeEnvelope(resp *aeris.HTTPResponse) (bool, *aeris.APIError, []json.RawMessage, error) {
	var env envelope

	err := json.Unmarshal(resp.Body, &env)
	if err != nil {
		return false, nil, nil, &aeris.DeserializationError{Field: "envelope", Reason: err.Error()}
	}

	if env.Success == nil {
		return false, nil, nil, &aeris.DeserializationError{Field: "success"}
	}

	var apiErr *aeris.APIError

	if env.Error != nil {
		var tracker fieldTracker

		apiErr = &aeris.APIError{
			Code:        required(&tracker, env.Error.Code, "error.code"),
			Description: required(&tracker, env.Error.Description, "error.description"),
		}

		if tracker.err != nil {
			return false, nil, nil, tracker.err
		}
	}

	entries, err := splitResponse(env.Response)
	if err != nil {
		return false, nil, nil, err
	}

	return *env.Success, apiErr, entries, nil
}

func splitResponse(raw json.RawMessage) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var entries []json.RawMessage

		err := json.Unmarshal(trimmed, &entries)
		if err != nil {
			return nil, &aeris.DeserializationError{Field: "response", Reason: err.Error()}
		}

		return entries, nil
	}

	return []json.RawMessage{trimmed}, nil
}

// unwrapGeoJSON detects the GeoJSON feature wrapper the API uses for route
// action responses. When present, the wrapped model document is extracted
// from properties.response and the surrounding feature is returned; other
// entries pass through unchanged.
func unwrapGeoJSON(raw json.RawMessage) (json.RawMessage, *aeris.Feature, error) {
	var probe struct {
		Type *string `json:"type"`
	}

	err := json.Unmarshal(raw, &probe)
	if err != nil || probe.Type == nil || *probe.Type != "Feature" {
		return raw, nil, nil
	}

	var feature aeris.Feature

	err = json.Unmarshal(raw, &feature)
	if err != nil {
		return nil, nil, &aeris.DeserializationError{Field: "Feature", Reason: err.Error()}
	}

	model, ok := feature.Properties["response"]
	if !ok {
		return nil, nil, &aeris.DeserializationError{Field: "Feature.properties.response"}
	}

	delete(feature.Properties, "response")

	return model, &feature, nil
}

// decodeTimestamp parses an Aeris dateTimeISO field.
func decodeTimestamp(t *fieldTracker, s *string, field string) time.Time {
	if s == nil {
		t.record(field)

		return time.Time{}
	}

	parsed, err := time.Parse(constants.DateTimeISOLayout, *s)
	if err != nil {
		t.recordReason(field, err.Error())

		return time.Time{}
	}

	return parsed
}

// Wire representations of objects shared between endpoints. Required fields
// are pointers so a missing field is distinguishable from a zero value.

type wireLocation struct {
	Lat  *float64 `json:"lat"`
	Long *float64 `json:"long"`
}

func decodeLocation(w *wireLocation, t *fieldTracker, at string) aeris.Location {
	if w == nil {
		t.record(at)

		return aeris.Location{}
	}

	return aeris.Location{
		Lat:  required(t, w.Lat, at+".lat"),
		Long: required(t, w.Long, at+".long"),
	}
}

type wirePlace struct {
	Name    *string `json:"name"`
	State   *string `json:"state"`
	Country *string `json:"country"`
}

func decodePlace(w *wirePlace, t *fieldTracker, at string) aeris.Place {
	if w == nil {
		t.record(at)

		return aeris.Place{}
	}

	return aeris.Place{
		Name:    required(t, w.Name, at+".name"),
		State:   deref(w.State),
		Country: required(t, w.Country, at+".country"),
	}
}

type wireRelativeTo struct {
	Lat        *float64 `json:"lat"`
	Long       *float64 `json:"long"`
	Bearing    *int     `json:"bearing"`
	BearingENG *string  `json:"bearingENG"`
	DistanceKM *float64 `json:"distanceKM"`
	DistanceMI *float64 `json:"distanceMI"`
}

// decodeRelativeTo decodes the relativeTo object, which only appears on
// closest (and sometimes within) action responses.
func decodeRelativeTo(w *wireRelativeTo, t *fieldTracker, at string) *aeris.RelativeTo {
	if w == nil {
		return nil
	}

	return &aeris.RelativeTo{
		Lat:        required(t, w.Lat, at+".lat"),
		Long:       required(t, w.Long, at+".long"),
		Bearing:    required(t, w.Bearing, at+".bearing"),
		BearingENG: required(t, w.BearingENG, at+".bearingENG"),
		DistanceKM: required(t, w.DistanceKM, at+".distanceKM"),
		DistanceMI: required(t, w.DistanceMI, at+".distanceMI"),
	}
}

// decodeResponse maps a raw HTTP response into a typed envelope. Non-2xx
// statuses and non-warning API errors are returned as errors; warnings are
// carried on the envelope alongside whatever data was returned.
func decodeResponse[T any](resp *aeris.HTTPResponse, decodeEntry func(json.RawMessage) (T, error)) (*aeris.Response[T], error) {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &aeris.HTTPStatusError{StatusCode: resp.StatusCode, Body: resp.Body}
	}

	success, apiErr, entries, err := decodeEnvelope(resp)
	if err != nil {
		return nil, err
	}

	if apiErr != nil && !apiErr.IsWarning() {
		return nil, fmt.Errorf("aeris api error: %w", apiErr)
	}

	result := &aeris.Response[T]{
		HTTP:    resp,
		Success: success,
		Error:   apiErr,
		Data:    make([]T, 0, len(entries)),
	}

	for _, entry := range entries {
		model, err := decodeEntry(entry)
		if err != nil {
			return nil, err
		}

		result.Data = append(result.Data, model)
	}

	return result, nil
}
