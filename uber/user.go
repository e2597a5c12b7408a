package uber

import (
	"context"
	"encoding/json"
)

// UserService covers endpoints that act on behalf of a user and so always
// need an access token.
type UserService struct {
	client *Client
}

// ProfileWithStoredToken returns the profile of the user whose access token
// is stored on the client.
func (s *UserService) ProfileWithStoredToken(ctx context.Context) (json.RawMessage, error) {
	return s.ProfileWithToken(ctx, s.client.AccessToken())
}

// ProfileWithToken returns the profile of the user owning accessToken.
func (s *UserService) ProfileWithToken(ctx context.Context, accessToken string) (json.RawMessage, error) {
	if accessToken == "" {
		return nil, ErrInvalidAccessToken
	}
	return s.client.Get(ctx, Request{Path: "me", APIVersion: DefaultAPIVersion, AccessToken: accessToken})
}

// History returns the ride history of the user owning accessToken. There is
// no fallback to the stored token.
func (s *UserService) History(ctx context.Context, accessToken string) (json.RawMessage, error) {
	if accessToken == "" {
		return nil, ErrInvalidAccessToken
	}
	return s.client.Get(ctx, Request{Path: "history", APIVersion: HistoryAPIVersion, AccessToken: accessToken})
}
