package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aerishttp "github.com/aerisweather/aerisweather-api-go/internal/http"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("credentials injected on every request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/conditions/55344", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "id1", request.URL.Query().Get("client_id"))
			assert.Equal(t, "secret1", request.URL.Query().Get("client_secret"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{"success": true})
		}))
		defer server.Close()

		client := aerishttp.NewClient(server.URL, "id1", "secret1")

		resp, err := client.Do(context.Background(), &aerishttp.Request{
			Method: "GET",
			Path:   "conditions/55344",
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("query parameters preserved alongside credentials", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			query := request.URL.Query()
			assert.Equal(t, "50mi", query.Get("radius"))
			assert.Equal(t, "2", query.Get("limit"))
			assert.Equal(t, "id1", query.Get("client_id"))
			assert.Equal(t, "secret1", query.Get("client_secret"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := aerishttp.NewClient(server.URL, "id1", "secret1")

		resp, err := client.Do(context.Background(), &aerishttp.Request{
			Method: "GET",
			Path:   "/airquality/closest",
			Query:  url.Values{"radius": []string{"50mi"}, "limit": []string{"2"}},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body []map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			require.Len(t, body, 1)
			assert.Equal(t, "55344", body[0]["p"])

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := aerishttp.NewClient(server.URL, "id1", "secret1")

		resp, err := client.Do(context.Background(), &aerishttp.Request{
			Method: "POST",
			Path:   "/airquality/route",
			Body:   []map[string]string{{"p": "55344"}},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("non-2xx status returned without error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusForbidden)
			_, _ = writer.Write([]byte(`{"success":false}`))
		}))
		defer server.Close()

		client := aerishttp.NewClient(server.URL, "id1", "secret1")

		resp, err := client.Do(context.Background(), &aerishttp.Request{
			Method: "GET",
			Path:   "/conditions/nowhere",
		})
		require.NoError(t, err)
		assert.Equal(t, 403, resp.StatusCode)
		assert.JSONEq(t, `{"success":false}`, string(resp.Body))
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := aerishttp.NewClient(server.URL, "id1", "secret1")

		resp, err := client.Do(context.Background(), &aerishttp.Request{
			Method: "GET",
			Path:   "/conditions/55344",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("transport error propagated without retry", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
		}))
		server.Close()

		client := aerishttp.NewClient(server.URL, "id1", "secret1")

		resp, err := client.Do(context.Background(), &aerishttp.Request{
			Method: "GET",
			Path:   "/conditions/55344",
		})
		require.Error(t, err)
		assert.Nil(t, resp)
		assert.Equal(t, 0, attempts)
	})
}

func TestClient_GetAndPost(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "id1", request.URL.Query().Get("client_id"))

		switch request.Method {
		case "GET":
			assert.Equal(t, "/conditions/55344", request.URL.Path)
		case "POST":
			assert.Equal(t, "/airquality/route", request.URL.Path)
		}

		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := aerishttp.NewClient(server.URL, "id1", "secret1")

	resp, err := client.Get(context.Background(), "conditions/55344", nil)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = client.Post(context.Background(), "airquality/route", nil, []map[string]string{{"p": "55344"}})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestClient_UserAgent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "my-weather-app/2.0", request.Header.Get("User-Agent"))
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := aerishttp.NewClient(server.URL, "id1", "secret1",
		aerishttp.WithUserAgent("my-weather-app/2.0"))

	_, err := client.Get(context.Background(), "conditions/55344", nil)
	require.NoError(t, err)
}

func TestClient_DebugLoggingRedactsSecret(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	logger := &MockLogger{}
	client := aerishttp.NewClient(server.URL, "id1", "super-secret",
		aerishttp.WithLogger(logger),
		aerishttp.WithDebug(true))

	_, err := client.Get(context.Background(), "conditions/55344", nil)
	require.NoError(t, err)

	require.NotEmpty(t, logger.logs)

	for _, entry := range logger.logs {
		fields, ok := entry["fields"].(map[string]interface{})
		require.True(t, ok)

		loggedURL, ok := fields["url"].(string)
		if !ok {
			continue
		}

		assert.NotContains(t, loggedURL, "super-secret")
		assert.Contains(t, loggedURL, "client_id=id1")
		assert.True(t, strings.Contains(loggedURL, "client_secret=REDACTED"))
	}
}
