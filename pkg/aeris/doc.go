// Package aeris provides types, interfaces, and helpers for working with
// version 1 of the Aeris Weather API.
//
// # Overview
//
// The aeris package defines the response models (e.g., Conditions,
// AirQuality), the envelope type returned by every endpoint call, and the
// interfaces for endpoint-oriented clients (ConditionsClient,
// AirQualityClient). A concrete implementation of these clients is provided
// by the aerisclient package, which wires configuration and transport. Most
// consumers should import aerisclient to construct a client and then interact
// with the endpoint interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//	  "os"
//
//	  "github.com/aerisweather/aerisweather-api-go/pkg/aeris"
//	  "github.com/aerisweather/aerisweather-api-go/pkg/aerisclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := aerisclient.NewWithCredentials(
//	    os.Getenv("AERIS_CLIENT_ID"),
//	    os.Getenv("AERIS_CLIENT_SECRET"),
//	  )
//	  if err != nil { log.Fatal(err) }
//
//	  resp, err := cli.Conditions().Get(ctx, "55344", nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = resp.Data
//	}
//
// # Authentication
//
// The Aeris API authenticates with a client ID and client secret supplied as
// query parameters. The client injects both on every request, including
// requests made through the raw HTTP surface returned by Client.HTTP.
// Credentials are conventionally supplied via the AERIS_CLIENT_ID and
// AERIS_CLIENT_SECRET environment variables; reading them is the caller's
// responsibility, not the SDK's.
//
// # Errors
//
// Transport errors propagate unchanged from the underlying http.Client, with
// no retries. Non-2xx statuses on typed endpoint calls are reported as
// *HTTPStatusError. API-level errors reported inside a 2xx envelope are
// carried as *APIError; helpers such as IsInvalidClient and IsNoDataWarning
// make it easy to branch on common cases. A response body that does not match
// the expected model shape is reported as *DeserializationError identifying
// the offending field.
//
// # Timeouts
//
// The SDK implements no timeout of its own. Configure deadlines either on the
// http.Client passed in Config.HTTPClient or on the context passed to each
// call.
package aeris
