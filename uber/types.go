package uber

import (
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the root of the resource API.
	DefaultBaseURL = "https://api.uber.com/"
	// DefaultAPIVersion is used when a request does not name a version.
	DefaultAPIVersion = "v1"
	// DefaultAuthorizeURL is the OAuth2 authorization endpoint.
	DefaultAuthorizeURL = "https://login.uber.com/oauth/authorize"
	// DefaultAccessTokenURL is the OAuth2 token endpoint.
	DefaultAccessTokenURL = "https://login.uber.com/oauth/token"

	// HistoryAPIVersion is the API version serving the ride history endpoint.
	HistoryAPIVersion = "v1.1"

	defaultTimeout = 30 * time.Second
)

// Config holds the credentials a Client is constructed with.
type Config struct {
	ClientID     string
	ClientSecret string
	ServerToken  string
	RedirectURI  string
	// Name is a free-form application label, sent as the User-Agent.
	Name string

	// Optional tokens from an earlier authorization.
	AccessToken  string
	RefreshToken string
}

// Settings is a snapshot of the effective client configuration.
type Settings struct {
	ClientID       string
	ClientSecret   string
	ServerToken    string
	RedirectURI    string
	Name           string
	BaseURL        string
	APIVersion     string
	AuthorizeURL   string
	AccessTokenURL string
}

// Grant selects the OAuth2 grant used by Authorize. Exactly one field
// must be set.
type Grant struct {
	AuthorizationCode string
	RefreshToken      string
}

// Session is the token pair issued by a successful Authorize call.
type Session struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	Expiry       time.Time
	Scope        string
}

// Request describes a single GET against the resource API.
type Request struct {
	// Path is relative to the versioned base, e.g. "products".
	Path string
	// APIVersion overrides the client default when non-empty.
	APIVersion string
	Params     url.Values
	// AccessToken authenticates the call as a user. When empty the
	// client's server token is sent instead.
	AccessToken string
}
