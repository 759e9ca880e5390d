package geocode

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Utrecht", r.URL.Query().Get("name"))
		assert.Equal(t, "nl", r.URL.Query().Get("language"))
		assert.Equal(t, "3", r.URL.Query().Get("count"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": [
			{"id": 2745912, "name": "Utrecht", "latitude": 52.09, "longitude": 5.12,
			 "country": "Nederland", "country_code": "NL", "admin1": "Utrecht",
			 "timezone": "Europe/Amsterdam", "population": 361966}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, testLogger())
	places, err := c.Search(context.Background(), "Utrecht", "nl", 3)
	require.NoError(t, err)
	require.Len(t, places, 1)

	p := places[0]
	assert.Equal(t, int64(2745912), p.ID)
	assert.Equal(t, "Utrecht", p.Name)
	assert.Equal(t, 52.09, p.Lat)
	assert.Equal(t, 5.12, p.Lon)
	assert.Equal(t, "NL", p.CountryCode)
	assert.Equal(t, int64(361966), p.Population)
}

func TestSearchNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, testLogger())
	places, err := c.Search(context.Background(), "Xyzzy", "en", 5)
	require.NoError(t, err)
	assert.Empty(t, places)
}

func TestSearchDefaultLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("count"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, testLogger())
	_, err := c.Search(context.Background(), "Breda", "en", 0)
	require.NoError(t, err)
}

func TestSearchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, testLogger())
	_, err := c.Search(context.Background(), "Breda", "en", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
