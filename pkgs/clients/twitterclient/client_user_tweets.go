package twitterclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/WangWilly/xLens/pkgs/utils"
)

////////////////////////////////////////////////////////////////////////////////

// TweetListOptions tunes a timeline fetch. The zero value asks for the
// default page size with no cursor and no time bounds.
type TweetListOptions struct {
	MaxResults      int
	PaginationToken string
	TimeRange       utils.TimeRange
}

////////////////////////////////////////////////////////////////////////////////

// GetUserTweets retrieves one page of a user's recent tweets. Failures are
// logged and reported as an empty page with ResultCount 0.
func (c *Client) GetUserTweets(ctx context.Context, userId string, opts TweetListOptions) Page[Tweet] {
	const op = "GetUserTweets"
	logger := opLogger(op)

	if userId == "" {
		logger.Warnln("empty user id")
		return emptyPage[Tweet]()
	}

	requestUrl := c.buildUserTweetsUrl(userId, opts)
	resp, err := c.readClient.R().SetContext(ctx).Get(requestUrl)
	if err != nil || resp.IsError() {
		c.handleFailure(op, logger, resp, err)
		return emptyPage[Tweet]()
	}

	return parseTweetPage(resp.Body())
}

// buildUserTweetsUrl constructs the timeline URL with pagination and time
// range parameters.
func (c *Client) buildUserTweetsUrl(userId string, opts TweetListOptions) string {
	params := url.Values{}
	params.Set("tweet.fields", TWEET_FIELDS)
	params.Set("media.fields", MEDIA_FIELDS)
	params.Set("expansions", EXPANSIONS)

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = DEFAULT_PAGE_SIZE_FOR_TWEETS
	}
	params.Set("max_results", strconv.Itoa(maxResults))

	if opts.PaginationToken != "" {
		params.Set("pagination_token", opts.PaginationToken)
	}
	if !opts.TimeRange.Begin.IsZero() {
		params.Set("start_time", opts.TimeRange.Begin.UTC().Format(time.RFC3339))
	}
	if !opts.TimeRange.End.IsZero() {
		params.Set("end_time", opts.TimeRange.End.UTC().Format(time.RFC3339))
	}

	u, _ := url.Parse(c.baseUrl + fmt.Sprintf(API_USER_TWEETS, url.PathEscape(userId)))
	u.RawQuery = params.Encode()
	return u.String()
}
