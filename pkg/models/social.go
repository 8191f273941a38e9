package models

import "time"

// Platform identifies the source social network of a post collection.
type Platform string

const (
	PlatformTwitter   Platform = "twitter"
	PlatformInstagram Platform = "instagram"
)

// Engagement counter names. Which counters a post actually carries is
// platform-dependent; the per-platform schema lives with the analytics engine.
const (
	CounterLikes    = "likes"
	CounterRetweets = "retweets"
	CounterReplies  = "replies"
	CounterComments = "comments"
)

// Post is the normalized, platform-agnostic post representation every
// analyzer consumes. Counters values are always >= 0 and Hashtags are
// lowercase, without the leading '#'.
type Post struct {
	ID          string         `json:"id"`
	PublishedAt time.Time      `json:"published_at"`
	Text        string         `json:"text"`
	Counters    map[string]int `json:"counters"`
	Hashtags    []string       `json:"hashtags"`

	// Content classification hints. HasURLs/HasHashtags/HasMentions are
	// populated for Twitter posts from structured entities; MediaType is
	// populated for Instagram posts (IMAGE, VIDEO, CAROUSEL_ALBUM).
	HasURLs     bool   `json:"has_urls"`
	HasHashtags bool   `json:"has_hashtags"`
	HasMentions bool   `json:"has_mentions"`
	MediaType   string `json:"media_type,omitempty"`
}

// Account is the normalized account the posts belong to.
type Account struct {
	Username       string `json:"username"`
	FollowerCount  int    `json:"follower_count"`
	FollowingCount int    `json:"following_count"`
	// MediaCount is the platform-reported total post count, independent of
	// how many posts were fetched. Zero when the platform does not report it.
	MediaCount int `json:"media_count"`
}
