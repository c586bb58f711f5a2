package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(url string) *Client {
	return NewClient(url, 5*time.Second, zerolog.Nop())
}

func TestFetch_TrimsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_, err := w.Write([]byte(" +14°C Partly cloudy \n"))
		require.NoError(t, err)
	}))
	defer srv.Close()

	got, err := testClient(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "+14°C Partly cloudy", got)
}

func TestFetch_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Fetch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadStatus)
}

func TestFetch_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := testClient(srv.URL).Fetch(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrBadStatus)
}

func TestFetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 20*time.Millisecond, zerolog.Nop())
	_, err := c.Fetch(context.Background())
	require.Error(t, err)
}

// TestFetch_FallbackMapping mirrors how the caller consumes the result:
// any error collapses to the fixed fallback string.
func TestFetch_FallbackMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	text, err := testClient(srv.URL).Fetch(context.Background())
	if err != nil {
		text = Fallback
	}
	assert.Equal(t, "Weather unavailable", text)
}
