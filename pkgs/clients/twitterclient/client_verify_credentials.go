package twitterclient

import (
	"context"
	"net/url"

	"github.com/tidwall/gjson"
)

// VerifyCredentials probes the platform to confirm the configured
// credentials are live. Under oauth1 it resolves the authenticated account
// via /2/users/me and succeeds iff a profile comes back. Bearer-token
// methods cannot resolve "self", so they issue a cheap tweet lookup instead
// and treat any non-error response as confirmation.
func (c *Client) VerifyCredentials(ctx context.Context) bool {
	const op = "VerifyCredentials"
	logger := opLogger(op)

	if c.authMethod == AUTH_OAUTH1 {
		resp, err := c.apiClient.R().SetContext(ctx).Get(c.buildUsersMeUrl())
		if err != nil || resp.IsError() {
			c.handleFailure(op, logger, resp, err)
			return false
		}
		return gjson.GetBytes(resp.Body(), "data.id").Exists()
	}

	resp, err := c.readClient.R().SetContext(ctx).Get(c.buildProbeUrl())
	if err != nil || resp.IsError() {
		c.handleFailure(op, logger, resp, err)
		return false
	}
	return true
}

// buildUsersMeUrl constructs the "who am I" URL, available to user-context
// credentials only.
func (c *Client) buildUsersMeUrl() string {
	params := url.Values{}
	params.Set("user.fields", USER_FIELDS)

	u, _ := url.Parse(c.baseUrl + API_USERS_ME)
	u.RawQuery = params.Encode()
	return u.String()
}

// buildProbeUrl constructs the tweets-by-ids lookup used as a known-cheap
// read-only probe.
func (c *Client) buildProbeUrl() string {
	params := url.Values{}
	params.Set("ids", PROBE_TWEET_ID)

	u, _ := url.Parse(c.baseUrl + API_TWEETS_LOOKUP)
	u.RawQuery = params.Encode()
	return u.String()
}
