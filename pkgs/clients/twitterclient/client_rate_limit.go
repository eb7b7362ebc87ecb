package twitterclient

import (
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

////////////////////////////////////////////////////////////////////////////////

// RateLimitSnapshot is the most recent quota state observed for one logical
// operation, learned opportunistically from failed responses. It is never
// polled proactively.
type RateLimitSnapshot struct {
	Operation string
	Limit     int
	Remaining int
	ResetAt   time.Time
}

////////////////////////////////////////////////////////////////////////////////

// recordRateLimit reads the x-rate-limit headers off a failed response and
// overwrites the snapshot stored under the logical operation name. A
// response missing any of the three headers leaves the map untouched.
func (c *Client) recordRateLimit(op string, resp *resty.Response) {
	if resp == nil {
		return
	}

	header := resp.Header()
	limit := header.Get(HEADER_RATE_LIMIT_LIMIT)
	remaining := header.Get(HEADER_RATE_LIMIT_REMAINING)
	reset := header.Get(HEADER_RATE_LIMIT_RESET)
	if limit == "" || remaining == "" || reset == "" {
		return
	}

	limitNum, err := strconv.Atoi(limit)
	if err != nil {
		return
	}
	remainingNum, err := strconv.Atoi(remaining)
	if err != nil {
		return
	}
	resetNum, err := strconv.ParseInt(reset, 10, 64)
	if err != nil {
		return
	}

	c.rateLimits.Store(op, RateLimitSnapshot{
		Operation: op,
		Limit:     limitNum,
		Remaining: remainingNum,
		ResetAt:   time.Unix(resetNum, 0),
	})
}

////////////////////////////////////////////////////////////////////////////////

// GetRateLimitInfo returns the most recent snapshot recorded for the given
// logical operation name, e.g. "GetUserTweets".
func (c *Client) GetRateLimitInfo(op string) (RateLimitSnapshot, bool) {
	return c.rateLimits.Load(op)
}

// GetAllRateLimits returns every tracked snapshot, in no particular order.
func (c *Client) GetAllRateLimits() []RateLimitSnapshot {
	entries := c.rateLimits.Range()
	res := make([]RateLimitSnapshot, 0, len(entries))
	for _, entry := range entries {
		res = append(res, entry.Value)
	}
	return res
}
