package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ImageSearchInterface resolves a free-text query to a single representative
// image URL. An empty string with a nil error means no match was found.
type ImageSearchInterface interface {
	SearchImage(ctx context.Context, query string) (string, error)
}

type UnsplashClient struct {
	httpClient *http.Client
	accessKey  string
	baseURL    string
}

func NewUnsplashClient(accessKey string) *UnsplashClient {
	return &UnsplashClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		accessKey:  accessKey,
		baseURL:    "https://api.unsplash.com",
	}
}

type unsplashSearchResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
	} `json:"results"`
}

// SearchImage returns the first hit of the Unsplash photo search for query.
func (u *UnsplashClient) SearchImage(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", "1")

	endpoint := fmt.Sprintf("%s/search/photos?%s", u.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("unsplash: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+u.accessKey)

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("unsplash: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unsplash: unexpected status %d", resp.StatusCode)
	}

	var parsed unsplashSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("unsplash: %w", err)
	}

	if len(parsed.Results) == 0 {
		return "", nil
	}
	return parsed.Results[0].URLs.Regular, nil
}
