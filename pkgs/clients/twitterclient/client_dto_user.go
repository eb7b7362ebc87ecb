package twitterclient

import "time"

// UserProfile is the normalized shape of a platform account. Counters
// default to 0, strings to "", Verified to false; CreatedAt falls back to
// the mapping time when the upstream value is absent or unparsable.
type UserProfile struct {
	Id             string
	Username       string // handle, without the @
	DisplayName    string
	Bio            string
	AvatarUrl      string
	FollowersCount int
	FollowingCount int
	TweetCount     int
	Verified       bool
	CreatedAt      time.Time
}

// Title returns a formatted string with the user's display name and handle.
func (user *UserProfile) Title() string {
	return user.DisplayName + "(@" + user.Username + ")"
}
