package twitterclient

import (
	"context"
	"net/url"

	"github.com/tidwall/gjson"
)

// GetUser retrieves a user profile by handle. Any failure is logged and
// reported as nil; callers cannot tell "not found" from a transport error
// through the result alone.
func (c *Client) GetUser(ctx context.Context, username string) *UserProfile {
	const op = "GetUser"
	logger := opLogger(op)

	if username == "" {
		logger.Warnln("empty username")
		return nil
	}

	requestUrl := c.buildUserByUsernameUrl(username)
	resp, err := c.readClient.R().SetContext(ctx).Get(requestUrl)
	if err != nil || resp.IsError() {
		c.handleFailure(op, logger, resp, err)
		return nil
	}

	user := gjson.GetBytes(resp.Body(), "data")
	if !user.Exists() {
		logger.Debugln("no user in response")
		return nil
	}

	profile := parseUserJson(user)
	return &profile
}

// buildUserByUsernameUrl constructs the URL for fetching a user by handle.
func (c *Client) buildUserByUsernameUrl(username string) string {
	params := url.Values{}
	params.Set("user.fields", USER_FIELDS)

	u, _ := url.Parse(c.baseUrl + API_USER_BY_USERNAME + url.PathEscape(username))
	u.RawQuery = params.Encode()
	return u.String()
}
