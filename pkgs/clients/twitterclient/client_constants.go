package twitterclient

// API Base Configuration
const (
	API_HOST = "https://api.twitter.com"
)

// v2 Endpoint Constants
const (
	API_USERS_ME         = "/2/users/me"
	API_USER_BY_USERNAME = "/2/users/by/username/" // + username
	API_USER_BY_ID       = "/2/users/"             // + id
	API_USER_TWEETS      = "/2/users/%s/tweets"
	API_TWEET_BY_ID      = "/2/tweets/" // + id
	API_TWEETS_LOOKUP    = "/2/tweets"
	API_SEARCH_RECENT    = "/2/tweets/search/recent"
)

// Requested field sets, sent verbatim on every read
const (
	TWEET_FIELDS = "id,text,author_id,created_at,public_metrics,attachments,referenced_tweets"
	USER_FIELDS  = "id,username,name,description,profile_image_url,public_metrics,verified,created_at"
	MEDIA_FIELDS = "media_key,type,url,preview_image_url,width,height,duration_ms"
	EXPANSIONS   = "attachments.media_keys"
)

// Default Values
const (
	DEFAULT_PAGE_SIZE_FOR_TWEETS = 100

	// a well-known tweet id, used as the cheap credential probe under
	// bearer-token auth
	PROBE_TWEET_ID = "20"
)

// Rate limit header keys
const (
	HEADER_RATE_LIMIT_LIMIT     = "x-rate-limit-limit"
	HEADER_RATE_LIMIT_REMAINING = "x-rate-limit-remaining"
	HEADER_RATE_LIMIT_RESET     = "x-rate-limit-reset"
)
