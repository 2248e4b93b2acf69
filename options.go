package voicerelay

import (
	"net/http"
	"time"

	"github.com/voicerelay/client-go/internal/api"
)

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	apiOpts    []api.Option
	httpClient *http.Client
}

// WithBaseURL points the client at a relay other than the default local one.
func WithBaseURL(url string) Option {
	return func(o *clientOptions) {
		o.apiOpts = append(o.apiOpts, api.WithBaseURL(url))
	}
}

// WithTimeout sets the per-request timeout. The default is 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.apiOpts = append(o.apiOpts, api.WithTimeout(timeout))
	}
}

// WithRetries sets how many times transient failures are retried.
func WithRetries(retries int) Option {
	return func(o *clientOptions) {
		o.apiOpts = append(o.apiOpts, api.WithRetries(retries))
	}
}

// WithRetryOn sets the HTTP status codes that count as transient.
func WithRetryOn(statusCodes []int) Option {
	return func(o *clientOptions) {
		o.apiOpts = append(o.apiOpts, api.WithRetryOn(statusCodes))
	}
}

// WithHTTPClient replaces the underlying HTTP client, for custom transports
// or proxies.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}
