package twitterclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// newTestClient spins up a mock API backend and points a fresh client at it.
func newTestClient(t *testing.T, method AuthMethod, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := New(Credentials{
		APIKey:            "test-key",
		APISecret:         "test-secret",
		AccessToken:       "test-access-token",
		AccessTokenSecret: "test-access-secret",
		BearerToken:       "test-bearer-token",
	}, method)
	client.SetBaseUrl(server.URL)
	return client
}

func jsonResponse(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func TestNewFallsBackToBearerOnUnrecognizedMethod(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		jsonResponse(w, `{"data":[{"id":"20","text":"probe"}]}`)
	})

	// any unknown selector gets the bearer-token handle, not an error
	client := newTestClient(t, AuthMethod("made-up"), handler)

	ok := client.VerifyCredentials(context.Background())
	assert.True(t, ok)
	assert.Equal(t, "Bearer test-bearer-token", gotAuth)
}

func TestAuthMethodAccessor(t *testing.T) {
	client := New(Credentials{BearerToken: "b"}, AUTH_OAUTH2_APP)
	assert.Equal(t, AUTH_OAUTH2_APP, client.AuthMethod())
}
