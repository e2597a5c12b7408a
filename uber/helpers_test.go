package uber

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
)

var testConfig = Config{
	ClientID:     "CLIENTIDCLIENTIDCLIENTIDCLIENT",
	ClientSecret: "CLIENTSECRETCLIENTSECRETCLIENTSECRETCLIE",
	ServerToken:  "SERVERTOKENSERVERTOKENSERVERTOKENSERVERT",
	RedirectURI:  "http://localhost/callback",
	Name:         "go uber wrapper",
}

var tokenResponse = map[string]any{
	"access_token":  "EE1IDxytP04tJ767GbjH7ED9PpGmYvL",
	"token_type":    "Bearer",
	"expires_in":    2592000,
	"refresh_token": "Zx8fJ8qdSRRseIVlsGgtgQ4wnZBehr",
	"scope":         "profile history",
}

// newTestClient returns a client whose API and token endpoints both point
// at server.
func newTestClient(t *testing.T, server *httptest.Server, cfg Config) *Client {
	t.Helper()
	return NewClient(cfg, zerolog.Nop(),
		WithBaseURL(server.URL),
		WithOAuthEndpoints(server.URL+"/oauth/authorize", server.URL+"/oauth/token"),
		WithHTTPClient(server.Client()),
	)
}

// tripwire returns a server that fails the test if it receives any request.
func tripwire(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request: %s %s", r.Method, r.URL.String())
		http.Error(w, "unexpected", http.StatusTeapot)
	}))
	t.Cleanup(server.Close)
	return server
}

// routeServer serves fixed JSON bodies by path and counts requests.
type routeServer struct {
	*httptest.Server
	hits     atomic.Int32
	requests chan *http.Request
}

func newRouteServer(t *testing.T, routes map[string]any) *routeServer {
	t.Helper()
	rs := &routeServer{requests: make(chan *http.Request, 16)}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs.hits.Add(1)
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		select {
		case rs.requests <- r:
		default:
		}

		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "Not found", "code": "not_found"})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(rs.Server.Close)
	return rs
}

// lastRequest returns the most recent request the server recorded.
func (rs *routeServer) lastRequest(t *testing.T) *http.Request {
	t.Helper()
	var last *http.Request
	for {
		select {
		case r := <-rs.requests:
			last = r
		default:
			if last == nil {
				t.Fatal("no request recorded")
			}
			return last
		}
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}
