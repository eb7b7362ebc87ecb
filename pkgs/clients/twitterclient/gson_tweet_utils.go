package twitterclient

import (
	"github.com/tidwall/gjson"
)

////////////////////////////////////////////////////////////////////////////////

// parseTweetJson maps a v2 tweet object into a Tweet, resolving media keys
// against the included media index. Keys without a matching include are
// skipped.
func parseTweetJson(tweet gjson.Result, mediaByKey map[string]MediaAttachment) Tweet {
	res := Tweet{
		Id:        tweet.Get("id").String(),
		Text:      tweet.Get("text").String(),
		AuthorId:  tweet.Get("author_id").String(),
		CreatedAt: parseTimeOrNow(tweet.Get("created_at")),
		Metrics:   parseTweetMetrics(tweet.Get("public_metrics")),
	}

	if keys := tweet.Get("attachments.media_keys"); keys.Exists() {
		for _, key := range keys.Array() {
			if m, ok := mediaByKey[key.String()]; ok {
				res.Media = append(res.Media, m)
			}
		}
	}

	// the References field stays nil when the payload has no
	// referenced_tweets at all
	if refs := tweet.Get("referenced_tweets"); refs.Exists() {
		for _, ref := range refs.Array() {
			res.References = append(res.References, ReferencedTweet{
				Kind: ref.Get("type").String(),
				Id:   ref.Get("id").String(),
			})
		}
	}

	return res
}

// parseTweetMetrics zero-fills every counter missing upstream, each one
// independently.
func parseTweetMetrics(metrics gjson.Result) TweetMetrics {
	return TweetMetrics{
		Likes:       int(metrics.Get("like_count").Int()),
		Reposts:     int(metrics.Get("retweet_count").Int()),
		Replies:     int(metrics.Get("reply_count").Int()),
		Impressions: int(metrics.Get("impression_count").Int()),
		Quotes:      int(metrics.Get("quote_count").Int()),
		Bookmarks:   int(metrics.Get("bookmark_count").Int()),
	}
}

////////////////////////////////////////////////////////////////////////////////

// parseIncludedMedia indexes the includes.media payload by media key.
func parseIncludedMedia(body []byte) map[string]MediaAttachment {
	media := gjson.GetBytes(body, "includes.media")
	if !media.Exists() {
		return nil
	}

	res := make(map[string]MediaAttachment)
	for _, m := range media.Array() {
		key := m.Get("media_key").String()
		if key == "" {
			continue
		}
		res[key] = MediaAttachment{
			Kind:       m.Get("type").String(),
			Url:        m.Get("url").String(),
			PreviewUrl: m.Get("preview_image_url").String(),
			Width:      int(m.Get("width").Int()),
			Height:     int(m.Get("height").Int()),
			DurationMs: int(m.Get("duration_ms").Int()),
		}
	}
	return res
}

////////////////////////////////////////////////////////////////////////////////

// parseTweetPage maps a list-shaped response (data array plus meta) into a
// Page. An empty data array still yields a valid zero-count page, and a
// next_token supplied by the platform is preserved even then.
func parseTweetPage(body []byte) Page[Tweet] {
	page := Page[Tweet]{Items: []Tweet{}}
	mediaByKey := parseIncludedMedia(body)

	data := gjson.GetBytes(body, "data")
	if data.IsArray() {
		for _, t := range data.Array() {
			page.Items = append(page.Items, parseTweetJson(t, mediaByKey))
		}
	}

	meta := gjson.GetBytes(body, "meta")
	page.NextToken = meta.Get("next_token").String()
	page.PreviousToken = meta.Get("previous_token").String()
	page.ResultCount = int(meta.Get("result_count").Int())
	if page.ResultCount == 0 && len(page.Items) > 0 {
		page.ResultCount = len(page.Items)
	}
	return page
}
