package twitterclient

import (
	"context"
	"net/url"
	"strconv"
)

////////////////////////////////////////////////////////////////////////////////

// SearchOptions tunes a recent-search fetch. The zero value asks for the
// default page size from the start of the result set.
type SearchOptions struct {
	MaxResults int
	NextToken  string
}

////////////////////////////////////////////////////////////////////////////////

// SearchTweets runs a recent-search query and returns one page of matching
// tweets. No matches and outright failures both come back as an empty page
// with ResultCount 0; the Items slice is never nil.
func (c *Client) SearchTweets(ctx context.Context, query string, opts SearchOptions) Page[Tweet] {
	const op = "SearchTweets"
	logger := opLogger(op)

	if query == "" {
		logger.Warnln("empty query")
		return emptyPage[Tweet]()
	}

	requestUrl := c.buildSearchUrl(query, opts)
	resp, err := c.readClient.R().SetContext(ctx).Get(requestUrl)
	if err != nil || resp.IsError() {
		c.handleFailure(op, logger, resp, err)
		return emptyPage[Tweet]()
	}

	return parseTweetPage(resp.Body())
}

// buildSearchUrl constructs the recent-search URL.
func (c *Client) buildSearchUrl(query string, opts SearchOptions) string {
	params := url.Values{}
	params.Set("query", query)
	params.Set("tweet.fields", TWEET_FIELDS)
	params.Set("media.fields", MEDIA_FIELDS)
	params.Set("expansions", EXPANSIONS)

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = DEFAULT_PAGE_SIZE_FOR_TWEETS
	}
	params.Set("max_results", strconv.Itoa(maxResults))

	if opts.NextToken != "" {
		params.Set("next_token", opts.NextToken)
	}

	u, _ := url.Parse(c.baseUrl + API_SEARCH_RECENT)
	u.RawQuery = params.Encode()
	return u.String()
}
