package uber

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
)

// AuthorizeURL builds the URL a user visits to grant the application the
// given scopes. A non-empty redirectURI replaces the configured redirect
// URI for this and every later call. Query parameters are emitted in sorted
// key order; their order is not part of the contract.
func (c *Client) AuthorizeURL(scope []string, redirectURI string) (string, error) {
	if scope == nil {
		return "", &ScopeError{Reason: "Scope is not an array"}
	}
	if len(scope) == 0 {
		return "", &ScopeError{Reason: "Scope is empty"}
	}

	if redirectURI != "" {
		c.mu.Lock()
		c.settings.RedirectURI = redirectURI
		c.mu.Unlock()
	}

	// Uber expects comma separated scopes, oauth2 would join with spaces.
	return c.oauthConfig().AuthCodeURL("",
		oauth2.SetAuthURLParam("scope", strings.Join(scope, ",")),
	), nil
}

// Authorize exchanges an authorization code or a refresh token for a new
// token pair. On success the pair replaces the tokens stored on the client.
// Errors from the token endpoint are returned unmodified.
func (c *Client) Authorize(ctx context.Context, grant Grant) (Session, error) {
	hasCode := grant.AuthorizationCode != ""
	hasRefresh := grant.RefreshToken != ""
	if hasCode == hasRefresh {
		return Session{}, ErrMissingGrant
	}

	cfg := c.oauthConfig()
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	var (
		token     *oauth2.Token
		err       error
		grantType = "authorization_code"
	)
	if hasCode {
		token, err = cfg.Exchange(ctx, grant.AuthorizationCode)
	} else {
		grantType = "refresh_token"
		token, err = cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: grant.RefreshToken}).Token()
	}
	if err != nil {
		c.logger.Debug().Err(err).Str("grant_type", grantType).Msg("Token exchange failed")
		return Session{}, err
	}

	session := sessionFromToken(token)

	c.mu.Lock()
	c.accessToken = session.AccessToken
	c.refreshToken = session.RefreshToken
	c.mu.Unlock()

	c.logger.Debug().
		Str("grant_type", grantType).
		Str("scope", session.Scope).
		Time("expiry", session.Expiry).
		Msg("Stored new Uber session")

	return session, nil
}

// oauthConfig snapshots the settings into an oauth2 configuration.
func (c *Client) oauthConfig() *oauth2.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return &oauth2.Config{
		ClientID:     c.settings.ClientID,
		ClientSecret: c.settings.ClientSecret,
		RedirectURL:  c.settings.RedirectURI,
		Endpoint: oauth2.Endpoint{
			AuthURL:   c.settings.AuthorizeURL,
			TokenURL:  c.settings.AccessTokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

func sessionFromToken(token *oauth2.Token) Session {
	s := Session{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		Expiry:       token.Expiry,
	}
	if scope, ok := token.Extra("scope").(string); ok {
		s.Scope = scope
	}
	return s
}

// String never includes the tokens themselves.
func (s Session) String() string {
	return fmt.Sprintf("Session{type=%s scope=%q expiry=%s}", s.TokenType, s.Scope, s.Expiry.Format("2006-01-02T15:04:05Z07:00"))
}
