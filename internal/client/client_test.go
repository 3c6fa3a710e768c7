package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "github.com/cristianoliveira/holiday-explorer/internal/errors"
	"github.com/cristianoliveira/holiday-explorer/internal/holiday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, status int, body string, seen *http.Request) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			*seen = *r.Clone(context.Background())
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestURLPassesValuesThrough(t *testing.T) {
	c := New("http://example.com/api/holidays/", time.Second)
	assert.Equal(t, "http://example.com/api/holidays/?country=US&year=2024",
		c.URL(holiday.Criteria{Country: "US", Year: "2024"}))

	withQuery := New("http://example.com/api?lang=en", time.Second)
	assert.Equal(t, "http://example.com/api?lang=en&country=GB&year=2025",
		withQuery.URL(holiday.Criteria{Country: "GB", Year: "2025"}))
}

func TestFetchSuccess(t *testing.T) {
	var seen http.Request
	srv := newServer(t, http.StatusOK, `{"success": true, "source": "AbstractAPI", "holidays": [
		{"name": "Christmas Day", "date_year": "2024", "date_month": "12", "date_day": "25", "country": "US"}
	]}`, &seen)

	c := New(srv.URL+"/api/holidays/", time.Second)
	ctx := ContextWithRequestID(context.Background(), "req-1")
	resp, err := c.Fetch(ctx, holiday.Criteria{Country: "US", Year: "2024"})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "AbstractAPI", resp.Source)
	require.Len(t, resp.Holidays, 1)
	assert.Equal(t, holiday.Int(25), resp.Holidays[0].DateDay)

	assert.Equal(t, http.MethodGet, seen.Method)
	assert.Equal(t, "/api/holidays/", seen.URL.Path)
	assert.Equal(t, "US", seen.URL.Query().Get("country"))
	assert.Equal(t, "2024", seen.URL.Query().Get("year"))
	assert.Equal(t, "req-1", seen.Header.Get(RequestIDHeader))
	assert.Equal(t, "application/json", seen.Header.Get("Accept"))
	assert.Contains(t, seen.Header.Get("User-Agent"), "holiday-explorer/")
}

func TestFetchDecodesFailureBodyOnServerError(t *testing.T) {
	srv := newServer(t, http.StatusInternalServerError,
		`{"success": false, "error": "All API sources failed. Last error: 404"}`, nil)

	c := New(srv.URL, time.Second)
	resp, err := c.Fetch(context.Background(), holiday.Criteria{Country: "US", Year: "2024"})

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "All API sources failed. Last error: 404", resp.Error)
}

func TestFetchMalformedBodyIsTransportError(t *testing.T) {
	srv := newServer(t, http.StatusBadGateway, `<html>bad gateway</html>`, nil)

	c := New(srv.URL, time.Second)
	_, err := c.Fetch(context.Background(), holiday.Criteria{Country: "US", Year: "2024"})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindTransport, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "status 502")
}

func TestFetchUnreachableIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(url, time.Second)
	_, err := c.Fetch(context.Background(), holiday.Criteria{Country: "US", Year: "2024"})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindTransport, apperrors.KindOf(err))
	assert.Equal(t, apperrors.MsgTransport, apperrors.UserMessage(err))
}

func TestFetchTimeoutIsTransportError(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := New(srv.URL, 50*time.Millisecond)
	_, err := c.Fetch(context.Background(), holiday.Criteria{Country: "US", Year: "2024"})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindTransport, apperrors.KindOf(err))
}

func TestWithHTTPClientOption(t *testing.T) {
	hc := &http.Client{Timeout: 3 * time.Second}
	c := New("http://example.com", 0, WithHTTPClient(hc), WithHTTPClient(nil))

	assert.Same(t, hc, c.httpClient)
}

func TestNewDefaultsTimeout(t *testing.T) {
	c := New("http://example.com", 0)
	assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)
}

func TestRequestIDFromEmptyContext(t *testing.T) {
	assert.Equal(t, "", RequestIDFromContext(context.Background()))
}
