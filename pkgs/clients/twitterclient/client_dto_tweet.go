package twitterclient

import "time"

////////////////////////////////////////////////////////////////////////////////

// Tweet is the normalized shape of a single post. Instances are built only
// by mapping raw payloads and are not mutated afterwards.
type Tweet struct {
	Id         string
	Text       string
	AuthorId   string
	CreatedAt  time.Time
	Metrics    TweetMetrics
	Media      []MediaAttachment // nil when no media key resolves
	References []ReferencedTweet // nil when the payload carries none
}

// TweetMetrics holds the engagement counters of a tweet. Counters absent
// upstream are zero-filled, each one independently.
type TweetMetrics struct {
	Likes       int
	Reposts     int
	Replies     int
	Impressions int
	Quotes      int
	Bookmarks   int
}

// MediaAttachment describes one image/video/gif attached to a tweet.
type MediaAttachment struct {
	Kind       string // photo / video / animated_gif, copied verbatim
	Url        string
	PreviewUrl string
	Width      int
	Height     int
	DurationMs int
}

// ReferencedTweet is a cross-reference to another tweet. Kind is copied
// verbatim, unrecognized values included.
type ReferencedTweet struct {
	Kind string // replied_to / quoted / retweeted
	Id   string
}

////////////////////////////////////////////////////////////////////////////////

// Page is one page of results plus opaque cursor metadata. Cursor tokens
// are never parsed or produced locally.
type Page[T any] struct {
	Items         []T
	NextToken     string
	PreviousToken string
	ResultCount   int
}

func emptyPage[T any]() Page[T] {
	return Page[T]{Items: []T{}}
}
