package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blslogistica/cargoflow/internal/client"
)

// TestStatusError verifies that a non-2xx response surfaces as a StatusError
// carrying the status code and the raw body text.
func TestStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid token"}`))
	}))
	defer server.Close()

	err := client.New(server.URL).Get(context.Background(), "choferes", nil)

	var statusErr *client.StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusUnauthorized, statusErr.Code)
	require.Contains(t, statusErr.Body, "Invalid token")
	require.Contains(t, statusErr.Error(), "status 401")
}

// TestNonJSONSuccess verifies that a 2xx response without a JSON content type
// counts as success with no decoded payload.
func TestNonJSONSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	var dst []struct{}
	err := client.New(server.URL).Get(context.Background(), "choferes", &dst)

	require.NoError(t, err)
	require.Empty(t, dst)
}

// TestLogin_setsBearerToken verifies that Login stores the returned token and
// that subsequent requests carry it as a Bearer header.
func TestLogin_setsBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"token":"tok123","user":{"email":"admin@example.com"}}`))
		case "/api/choferes":
			gotAuth = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	c := client.New(server.URL)
	require.NoError(t, c.Login(context.Background(), "admin@example.com", "secret"))
	require.Equal(t, "tok123", c.Token)

	require.NoError(t, c.Get(context.Background(), "choferes", nil))
	require.Equal(t, "Bearer tok123", gotAuth)
}

// TestGetRaw verifies that raw downloads return the body bytes untouched and
// still surface non-2xx statuses as StatusError.
func TestGetRaw(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/informes/viajes-excel" {
			w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
			w.Write([]byte{0x50, 0x4b, 0x03, 0x04})
			return
		}
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	c := client.New(server.URL)

	data, err := c.GetRaw(context.Background(), "informes/viajes-excel")
	require.NoError(t, err)
	require.Equal(t, []byte{0x50, 0x4b, 0x03, 0x04}, data)

	_, err = c.GetRaw(context.Background(), "informes/missing")
	var statusErr *client.StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusNotFound, statusErr.Code)
}
