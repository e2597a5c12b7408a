package uber

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Client represents an Uber API client
type Client struct {
	settings   Settings
	httpClient *http.Client
	logger     zerolog.Logger

	// mu guards the session tokens and the redirect URI.
	mu           sync.RWMutex
	accessToken  string
	refreshToken string

	Products   *ProductsService
	Estimates  *EstimatesService
	Promotions *PromotionsService
	User       *UserService
}

// NewClient creates a new Uber client. Credentials are not checked and no
// request is made until an operation is called.
func NewClient(cfg Config, logger zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		settings: Settings{
			ClientID:       cfg.ClientID,
			ClientSecret:   cfg.ClientSecret,
			ServerToken:    cfg.ServerToken,
			RedirectURI:    cfg.RedirectURI,
			Name:           cfg.Name,
			BaseURL:        DefaultBaseURL,
			APIVersion:     DefaultAPIVersion,
			AuthorizeURL:   DefaultAuthorizeURL,
			AccessTokenURL: DefaultAccessTokenURL,
		},
		httpClient:   &http.Client{Timeout: defaultTimeout},
		logger:       logger,
		accessToken:  cfg.AccessToken,
		refreshToken: cfg.RefreshToken,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.Products = &ProductsService{client: c}
	c.Estimates = &EstimatesService{client: c}
	c.Promotions = &PromotionsService{client: c}
	c.User = &UserService{client: c}

	return c
}

// Settings returns a copy of the effective configuration.
func (c *Client) Settings() Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings
}

// AccessToken returns the stored user access token, if any.
func (c *Client) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

// RefreshToken returns the stored refresh token, if any.
func (c *Client) RefreshToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.refreshToken
}

// Get performs an authenticated GET against the resource API and returns
// the JSON body exactly as the server sent it.
func (c *Client) Get(ctx context.Context, r Request) (json.RawMessage, error) {
	requestURL, authKind := c.buildURL(r)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if name := c.settings.Name; name != "" {
		req.Header.Set("User-Agent", name)
	}

	c.logger.Debug().
		Str("path", r.Path).
		Str("api_version", c.versionFor(r)).
		Str("auth", authKind).
		Msg("Making Uber API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug().
		Str("path", r.Path).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Msg("Uber API response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, body)
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidResponse, r.Path)
	}

	return json.RawMessage(body), nil
}

// buildURL resolves the request URL and reports which credential it carries.
func (c *Client) buildURL(r Request) (string, string) {
	params := url.Values{}
	for k, v := range r.Params {
		params[k] = append([]string(nil), v...)
	}

	// Exactly one credential per request.
	params.Del("access_token")
	params.Del("server_token")

	authKind := "server_token"
	if r.AccessToken != "" {
		params.Set("access_token", r.AccessToken)
		authKind = "access_token"
	} else {
		params.Set("server_token", c.settings.ServerToken)
	}

	u := c.settings.BaseURL + c.versionFor(r) + "/" + strings.TrimPrefix(r.Path, "/")
	return u + "?" + params.Encode(), authKind
}

func (c *Client) versionFor(r Request) string {
	if r.APIVersion != "" {
		return r.APIVersion
	}
	return c.settings.APIVersion
}

// newAPIError builds an APIError, preferring the API's own message field.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: status,
		Message:    http.StatusText(status),
		Body:       string(body),
	}

	var payload struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		apiErr.Message = payload.Message
		if payload.Code != "" {
			apiErr.Message = payload.Code + ": " + payload.Message
		}
	}

	return apiErr
}
