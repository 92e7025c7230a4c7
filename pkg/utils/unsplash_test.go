package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUnsplashClient(server *httptest.Server) *UnsplashClient {
	client := NewUnsplashClient("test-key")
	client.baseURL = server.URL
	return client
}

func TestSearchImageReturnsFirstHit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Client-ID test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "Lisbon", r.URL.Query().Get("query"))
		assert.Equal(t, "1", r.URL.Query().Get("per_page"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"urls":{"regular":"https://images.example/lisbon.jpg"}}]}`))
	}))
	defer server.Close()

	image, err := newTestUnsplashClient(server).SearchImage(context.Background(), "Lisbon")
	require.NoError(t, err)
	assert.Equal(t, "https://images.example/lisbon.jpg", image)
}

func TestSearchImageNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	image, err := newTestUnsplashClient(server).SearchImage(context.Background(), "nowhere")
	require.NoError(t, err)
	assert.Empty(t, image)
}

func TestSearchImageUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := newTestUnsplashClient(server).SearchImage(context.Background(), "Lisbon")
	assert.Error(t, err)
}
