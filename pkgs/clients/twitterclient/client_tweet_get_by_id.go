package twitterclient

import (
	"context"
	"net/url"

	"github.com/tidwall/gjson"
)

// GetTweet retrieves a single tweet by id. Failures are logged and reported
// as nil.
func (c *Client) GetTweet(ctx context.Context, tweetId string) *Tweet {
	const op = "GetTweet"
	logger := opLogger(op)

	if tweetId == "" {
		logger.Warnln("empty tweet id")
		return nil
	}

	requestUrl := c.buildTweetByIdUrl(tweetId)
	resp, err := c.readClient.R().SetContext(ctx).Get(requestUrl)
	if err != nil || resp.IsError() {
		c.handleFailure(op, logger, resp, err)
		return nil
	}

	body := resp.Body()
	data := gjson.GetBytes(body, "data")
	if !data.Exists() {
		logger.Debugln("no tweet in response")
		return nil
	}

	tweet := parseTweetJson(data, parseIncludedMedia(body))
	return &tweet
}

// buildTweetByIdUrl constructs the single-tweet URL with the full field and
// expansion shape.
func (c *Client) buildTweetByIdUrl(tweetId string) string {
	params := url.Values{}
	params.Set("tweet.fields", TWEET_FIELDS)
	params.Set("media.fields", MEDIA_FIELDS)
	params.Set("expansions", EXPANSIONS)

	u, _ := url.Parse(c.baseUrl + API_TWEET_BY_ID + url.PathEscape(tweetId))
	u.RawQuery = params.Encode()
	return u.String()
}
