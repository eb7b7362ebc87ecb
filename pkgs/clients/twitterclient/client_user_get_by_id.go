package twitterclient

import (
	"context"
	"net/url"

	"github.com/tidwall/gjson"
)

// GetUserById retrieves a user profile by platform id. Failures are logged
// and reported as nil.
func (c *Client) GetUserById(ctx context.Context, userId string) *UserProfile {
	const op = "GetUserById"
	logger := opLogger(op)

	if userId == "" {
		logger.Warnln("empty user id")
		return nil
	}

	requestUrl := c.buildUserByIdUrl(userId)
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

// buildUserByIdUrl constructs the URL for fetching a user by id.
func (c *Client) buildUserByIdUrl(userId string) string {
	params := url.Values{}
	params.Set("user.fields", USER_FIELDS)

	u, _ := url.Parse(c.baseUrl + API_USER_BY_ID + url.PathEscape(userId))
	u.RawQuery = params.Encode()
	return u.String()
}
