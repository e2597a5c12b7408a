// Package uber provides a client for the Uber ride-hailing REST API.
//
// The client is a thin layer: each operation validates its required
// parameters, issues a single GET and returns the JSON body untouched.
// OAuth2 authorization-code and refresh-token exchanges are delegated to
// golang.org/x/oauth2.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client := uber.NewClient(uber.Config{
//		ClientID:     "client-id",
//		ClientSecret: "client-secret",
//		ServerToken:  "server-token",
//		RedirectURI:  "http://localhost/callback",
//	}, logger)
//
//	// Server token authenticated calls
//	products, err := client.Products.List(ctx, uber.LocationParams(37.7759792, -122.41823))
//
//	// User authenticated calls
//	authURL, err := client.AuthorizeURL([]string{"profile", "history"}, "")
//	session, err := client.Authorize(ctx, uber.Grant{AuthorizationCode: code})
//	profile, err := client.User.ProfileWithStoredToken(ctx)
//	history, err := client.User.History(ctx, session.AccessToken)
//
// # Authentication
//
// Every resource request carries exactly one credential query parameter:
// access_token when the call acts for a user, server_token otherwise.
// Tokens obtained through Authorize are stored on the client and guarded
// for concurrent use; a Get that is already in flight keeps the token it
// started with.
//
// # Error Handling
//
// Validation failures are reported before any network traffic:
//
//   - ErrInvalidScope: AuthorizeURL called with a nil or empty scope list
//   - ErrMissingGrant: Authorize called without exactly one grant
//   - ErrInvalidParameters: a required resource parameter is missing
//   - ErrInvalidAccessToken: a user call has no access token
//
// Transport and token endpoint failures are returned unmodified. Non-2xx
// API responses become *APIError:
//
//	var apiErr *uber.APIError
//	if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
//		// refresh the session
//	}
package uber
