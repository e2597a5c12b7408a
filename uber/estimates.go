package uber

import (
	"context"
	"encoding/json"
	"net/url"
)

// EstimatesService covers the price and time estimate endpoints. Both take
// start_latitude, start_longitude, end_latitude and end_longitude.
type EstimatesService struct {
	client *Client
}

// Price returns price estimates for a trip.
func (s *EstimatesService) Price(ctx context.Context, params url.Values) (json.RawMessage, error) {
	if err := requireParams(params, tripKeys...); err != nil {
		return nil, err
	}
	return s.client.Get(ctx, Request{Path: "estimates/price", Params: params})
}

// Time returns pickup time estimates for a trip.
func (s *EstimatesService) Time(ctx context.Context, params url.Values) (json.RawMessage, error) {
	if err := requireParams(params, tripKeys...); err != nil {
		return nil, err
	}
	return s.client.Get(ctx, Request{Path: "estimates/time", Params: params})
}
