package uber

import (
	"net/http"
	"strings"
	"time"
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client used for API and token requests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout sets the HTTP client timeout. A client passed through
// WithHTTPClient is copied, never modified.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			hc := *c.httpClient
			hc.Timeout = timeout
			c.httpClient = &hc
		}
	}
}

// WithBaseURL points resource requests at a different API host.
// A trailing slash is added when missing.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL == "" {
			return
		}
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		c.settings.BaseURL = baseURL
	}
}

// WithAPIVersion changes the default API version used when a request
// does not name one.
func WithAPIVersion(version string) Option {
	return func(c *Client) {
		if version != "" {
			c.settings.APIVersion = version
		}
	}
}

// WithOAuthEndpoints overrides the authorize and token endpoints.
// Empty values keep the defaults.
func WithOAuthEndpoints(authorizeURL, accessTokenURL string) Option {
	return func(c *Client) {
		if authorizeURL != "" {
			c.settings.AuthorizeURL = authorizeURL
		}
		if accessTokenURL != "" {
			c.settings.AccessTokenURL = accessTokenURL
		}
	}
}
