package uber

import (
	"context"
	"encoding/json"
	"net/url"
)

// PromotionsService covers the promotions endpoint.
type PromotionsService struct {
	client *Client
}

// Get returns the promotion offered to new users for a trip.
func (s *PromotionsService) Get(ctx context.Context, params url.Values) (json.RawMessage, error) {
	if err := requireParams(params, tripKeys...); err != nil {
		return nil, err
	}
	return s.client.Get(ctx, Request{Path: "promotions", Params: params})
}
