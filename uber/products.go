package uber

import (
	"context"
	"encoding/json"
	"net/url"
)

// ProductsService covers the products endpoints.
type ProductsService struct {
	client *Client
}

// List returns the products available at a location. params must carry
// latitude and longitude.
func (s *ProductsService) List(ctx context.Context, params url.Values) (json.RawMessage, error) {
	if err := requireParams(params, locationKeys...); err != nil {
		return nil, err
	}
	return s.client.Get(ctx, Request{Path: "products", Params: params})
}

// Details returns a single product.
func (s *ProductsService) Details(ctx context.Context, productID string) (json.RawMessage, error) {
	if productID == "" {
		return nil, ErrInvalidParameters
	}
	return s.client.Get(ctx, Request{Path: "products/" + url.PathEscape(productID)})
}
