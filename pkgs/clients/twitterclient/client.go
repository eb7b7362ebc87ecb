package twitterclient

import (
	"github.com/dghubble/oauth1"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/WangWilly/xLens/pkgs/utils"
)

////////////////////////////////////////////////////////////////////////////////

// AuthMethod selects which credential subset signs outbound calls.
type AuthMethod string

const (
	AUTH_OAUTH2_APP  AuthMethod = "oauth2-app"
	AUTH_OAUTH1      AuthMethod = "oauth1"
	AUTH_OAUTH2_USER AuthMethod = "oauth2-user"
)

// Credentials holds the five platform credentials read from the environment.
type Credentials struct {
	APIKey            string
	APISecret         string
	AccessToken       string
	AccessTokenSecret string
	BearerToken       string
}

////////////////////////////////////////////////////////////////////////////////

// Client wraps the X v2 API behind normalized read operations. Failures
// never surface as errors; they are logged, recorded in the rate limit map
// when the response carries quota headers, and converted to benign results.
type Client struct {
	apiClient  *resty.Client
	readClient *resty.Client
	authMethod AuthMethod
	baseUrl    string
	rateLimits *utils.SyncMap[string, RateLimitSnapshot]
}

func New(creds Credentials, method AuthMethod) *Client {
	return &Client{
		apiClient:  buildRestyClient(creds, method),
		readClient: buildRestyClient(creds, method),
		authMethod: method,
		baseUrl:    API_HOST,
		rateLimits: utils.NewSyncMap[string, RateLimitSnapshot](),
	}
}

// buildRestyClient builds an authenticated HTTP handle. oauth1 signs with
// the four user-context credentials; every other selector, recognized or
// not, falls back to bearer-token auth.
func buildRestyClient(creds Credentials, method AuthMethod) *resty.Client {
	if method == AUTH_OAUTH1 {
		cfg := oauth1.NewConfig(creds.APIKey, creds.APISecret)
		token := oauth1.NewToken(creds.AccessToken, creds.AccessTokenSecret)
		return resty.NewWithClient(cfg.Client(oauth1.NoContext, token))
	}
	return resty.New().SetAuthToken(creds.BearerToken)
}

////////////////////////////////////////////////////////////////////////////////

func (c *Client) SetLogger(logger *log.Logger) {
	c.apiClient.SetLogger(logger)
	c.readClient.SetLogger(logger)
}

// SetBaseUrl points the client at a different API host.
func (c *Client) SetBaseUrl(baseUrl string) {
	c.baseUrl = baseUrl
}

func (c *Client) AuthMethod() AuthMethod {
	return c.authMethod
}

////////////////////////////////////////////////////////////////////////////////

// opLogger tags every log line of one operation with the logical operation
// name and a fresh request id.
func opLogger(op string) *log.Entry {
	return log.WithFields(log.Fields{
		"caller":     "Client." + op,
		"request_id": uuid.NewString(),
	})
}

// handleFailure logs a failed call and, when the response carries complete
// rate limit headers, overwrites the snapshot for the operation.
func (c *Client) handleFailure(op string, logger *log.Entry, resp *resty.Response, err error) {
	if err != nil {
		logger.Warnln("request failed:", err)
		return
	}
	c.recordRateLimit(op, resp)
	logger.WithField("status", resp.StatusCode()).Warnln("request failed:", resp.Status())
}
