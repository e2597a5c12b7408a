package uber

import (
	"context"
	"encoding/json"
	"net/url"
)

// API defines the interface for Uber operations
type API interface {
	// AuthorizeURL builds the OAuth2 authorization URL
	AuthorizeURL(scope []string, redirectURI string) (string, error)

	// Authorize exchanges a grant for a token pair and stores it
	Authorize(ctx context.Context, grant Grant) (Session, error)

	// Get performs a raw GET against the resource API
	Get(ctx context.Context, r Request) (json.RawMessage, error)
}

// Resources groups the typed resource operations, for callers that want to
// substitute them in tests.
type Resources interface {
	ListProducts(ctx context.Context, params url.Values) (json.RawMessage, error)
	ProductDetails(ctx context.Context, productID string) (json.RawMessage, error)
	PriceEstimates(ctx context.Context, params url.Values) (json.RawMessage, error)
	TimeEstimates(ctx context.Context, params url.Values) (json.RawMessage, error)
	Promotion(ctx context.Context, params url.Values) (json.RawMessage, error)
	Profile(ctx context.Context, accessToken string) (json.RawMessage, error)
	History(ctx context.Context, accessToken string) (json.RawMessage, error)
}

var (
	_ API       = (*Client)(nil)
	_ Resources = (*Client)(nil)
)

// ListProducts is shorthand for c.Products.List.
func (c *Client) ListProducts(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.Products.List(ctx, params)
}

// ProductDetails is shorthand for c.Products.Details.
func (c *Client) ProductDetails(ctx context.Context, productID string) (json.RawMessage, error) {
	return c.Products.Details(ctx, productID)
}

// PriceEstimates is shorthand for c.Estimates.Price.
func (c *Client) PriceEstimates(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.Estimates.Price(ctx, params)
}

// TimeEstimates is shorthand for c.Estimates.Time.
func (c *Client) TimeEstimates(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.Estimates.Time(ctx, params)
}

// Promotion is shorthand for c.Promotions.Get.
func (c *Client) Promotion(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.Promotions.Get(ctx, params)
}

// Profile returns the profile for accessToken, falling back to the stored
// token when accessToken is empty.
func (c *Client) Profile(ctx context.Context, accessToken string) (json.RawMessage, error) {
	if accessToken == "" {
		return c.User.ProfileWithStoredToken(ctx)
	}
	return c.User.ProfileWithToken(ctx, accessToken)
}

// History is shorthand for c.User.History.
func (c *Client) History(ctx context.Context, accessToken string) (json.RawMessage, error) {
	return c.User.History(ctx, accessToken)
}
