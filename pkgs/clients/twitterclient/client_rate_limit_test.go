package twitterclient

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rateLimitedHandler(limit, remaining int, reset int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HEADER_RATE_LIMIT_LIMIT, strconv.Itoa(limit))
		w.Header().Set(HEADER_RATE_LIMIT_REMAINING, strconv.Itoa(remaining))
		w.Header().Set(HEADER_RATE_LIMIT_RESET, strconv.FormatInt(reset, 10))
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}
}

func TestRateLimitSnapshotRecordedPerOperation(t *testing.T) {
	reset := time.Now().Add(15 * time.Minute).Unix()
	mux := http.NewServeMux()
	mux.HandleFunc("/2/users/42/tweets", rateLimitedHandler(15, 0, reset))
	mux.HandleFunc("/2/tweets/search/recent", rateLimitedHandler(450, 3, reset+60))
	client := newTestClient(t, AUTH_OAUTH2_APP, mux)

	page := client.GetUserTweets(context.Background(), "42", TweetListOptions{})
	assert.Empty(t, page.Items)

	snapshot, ok := client.GetRateLimitInfo("GetUserTweets")
	require.True(t, ok)
	assert.Equal(t, "GetUserTweets", snapshot.Operation)
	assert.Equal(t, 15, snapshot.Limit)
	assert.Equal(t, 0, snapshot.Remaining)
	assert.True(t, snapshot.ResetAt.Equal(time.Unix(reset, 0)))

	// a second failing operation lands under its own name
	client.SearchTweets(context.Background(), "golang", SearchOptions{})

	searchSnapshot, ok := client.GetRateLimitInfo("SearchTweets")
	require.True(t, ok)
	assert.Equal(t, 450, searchSnapshot.Limit)
	assert.Equal(t, 3, searchSnapshot.Remaining)

	// and does not clobber the first one
	snapshot, ok = client.GetRateLimitInfo("GetUserTweets")
	require.True(t, ok)
	assert.Equal(t, 15, snapshot.Limit)

	assert.Len(t, client.GetAllRateLimits(), 2)
}

func TestRateLimitSnapshotOverwritten(t *testing.T) {
	reset := time.Now().Add(time.Minute).Unix()
	calls := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		rateLimitedHandler(15, 15-calls, reset)(w, r)
	})
	client := newTestClient(t, AUTH_OAUTH2_APP, handler)

	client.GetUserTweets(context.Background(), "42", TweetListOptions{})
	client.GetUserTweets(context.Background(), "42", TweetListOptions{})

	snapshot, ok := client.GetRateLimitInfo("GetUserTweets")
	require.True(t, ok)
	assert.Equal(t, 13, snapshot.Remaining)
}

func TestFailureWithoutRateLimitHeadersRecordsNothing(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	client := newTestClient(t, AUTH_OAUTH2_APP, handler)

	client.GetUserTweets(context.Background(), "42", TweetListOptions{})

	_, ok := client.GetRateLimitInfo("GetUserTweets")
	assert.False(t, ok)
	assert.Empty(t, client.GetAllRateLimits())
}

func TestSuccessRecordsNoSnapshot(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HEADER_RATE_LIMIT_LIMIT, "15")
		w.Header().Set(HEADER_RATE_LIMIT_REMAINING, "14")
		w.Header().Set(HEADER_RATE_LIMIT_RESET, "1700000000")
		jsonResponse(w, `{"meta":{"result_count":0}}`)
	})
	client := newTestClient(t, AUTH_OAUTH2_APP, handler)

	client.GetUserTweets(context.Background(), "42", TweetListOptions{})

	// snapshots are learned from failures only
	assert.Empty(t, client.GetAllRateLimits())
}
