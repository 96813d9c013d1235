package disclosure

import (
	"net/http"
)

const baseURL = "https://ac-api-server.vercel.app"

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=disclosure_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// APIClient is a client for the disclosure server.
type APIClient struct {
	// baseURL is the base URL for the API.
	baseURL string
	// httpClient performs the requests.
	httpClient HTTPClient
	// header contains headers to be sent with each request.
	header http.Header
}

// APIClientOption is a configuration option for the disclosure API client.
type APIClientOption func(*APIClient)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) APIClientOption {
	return func(c *APIClient) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithHTTPClient sets the HTTP client for the API.
func WithHTTPClient(httpClient HTTPClient) APIClientOption {
	return func(c *APIClient) {
		c.httpClient = httpClient
	}
}

// WithHeader sets additional headers to be sent with each request.
func WithHeader(header http.Header) APIClientOption {
	return func(c *APIClient) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

// NewAPIClient creates a new disclosure API client.
func NewAPIClient(key string, options ...APIClientOption) (*APIClient, error) {
	var apiClient = &APIClient{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		header:     http.Header{},
	}
	if key != "" {
		// The server authenticates each call by this header.
		apiClient.header.Set("x-api-key", key)
	}
	apiClient.header.Set("Content-Type", "application/json")
	for _, option := range options {
		option(apiClient)
	}
	return apiClient, nil
}
