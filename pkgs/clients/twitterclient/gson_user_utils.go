package twitterclient

import (
	"time"

	"github.com/tidwall/gjson"
)

////////////////////////////////////////////////////////////////////////////////

// parseUserJson maps a v2 user object into a UserProfile. Counters and
// strings absent upstream are zero-filled, never left out.
func parseUserJson(user gjson.Result) UserProfile {
	metrics := user.Get("public_metrics")
	return UserProfile{
		Id:             user.Get("id").String(),
		Username:       user.Get("username").String(),
		DisplayName:    user.Get("name").String(),
		Bio:            user.Get("description").String(),
		AvatarUrl:      user.Get("profile_image_url").String(),
		FollowersCount: int(metrics.Get("followers_count").Int()),
		FollowingCount: int(metrics.Get("following_count").Int()),
		TweetCount:     int(metrics.Get("tweet_count").Int()),
		Verified:       user.Get("verified").Bool(),
		CreatedAt:      parseTimeOrNow(user.Get("created_at")),
	}
}

////////////////////////////////////////////////////////////////////////////////

// parseTimeOrNow parses an RFC3339 timestamp, falling back to the current
// time when the value is absent or malformed. The fallback is lossy on
// purpose; a wrong-but-present timestamp beats a hole in the model.
func parseTimeOrNow(v gjson.Result) time.Time {
	if !v.Exists() {
		return time.Now()
	}
	t, err := time.Parse(time.RFC3339, v.String())
	if err != nil {
		return time.Now()
	}
	return t
}
