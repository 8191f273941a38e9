package models

// Raw Twitter API v2 payload shapes, as returned by the users and tweets
// endpoints with the public_metrics and entities fields requested.

// TwitterPublicMetrics mirrors the public_metrics object on users and tweets.
type TwitterPublicMetrics struct {
	FollowersCount int `json:"followers_count,omitempty"`
	FollowingCount int `json:"following_count,omitempty"`
	TweetCount     int `json:"tweet_count,omitempty"`
	LikeCount      int `json:"like_count,omitempty"`
	RetweetCount   int `json:"retweet_count,omitempty"`
	ReplyCount     int `json:"reply_count,omitempty"`
	QuoteCount     int `json:"quote_count,omitempty"`
}

// TwitterUser is one user object from GET /2/users/by/username/:username.
type TwitterUser struct {
	ID            string                `json:"id"`
	Username      string                `json:"username"`
	Name          string                `json:"name"`
	Description   string                `json:"description,omitempty"`
	Verified      bool                  `json:"verified,omitempty"`
	CreatedAt     string                `json:"created_at,omitempty"`
	PublicMetrics *TwitterPublicMetrics `json:"public_metrics,omitempty"`
}

// TweetHashtagEntity is one hashtag entry inside a tweet's entities.
type TweetHashtagEntity struct {
	Tag string `json:"tag"`
}

// TweetURLEntity is one URL entry inside a tweet's entities.
type TweetURLEntity struct {
	URL         string `json:"url"`
	ExpandedURL string `json:"expanded_url,omitempty"`
}

// TweetMentionEntity is one mention entry inside a tweet's entities.
type TweetMentionEntity struct {
	Username string `json:"username"`
}

// TweetEntities mirrors the entities object on a tweet.
type TweetEntities struct {
	Hashtags []TweetHashtagEntity `json:"hashtags,omitempty"`
	URLs     []TweetURLEntity     `json:"urls,omitempty"`
	Mentions []TweetMentionEntity `json:"mentions,omitempty"`
}

// Tweet is one tweet object from GET /2/users/:id/tweets.
type Tweet struct {
	ID            string                `json:"id"`
	Text          string                `json:"text"`
	CreatedAt     string                `json:"created_at"`
	PublicMetrics *TwitterPublicMetrics `json:"public_metrics,omitempty"`
	Entities      *TweetEntities        `json:"entities,omitempty"`
}
