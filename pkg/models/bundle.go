package models

import "time"

// Stats is the scalar summary section of an analytics bundle. The shape is
// uniform across platforms: counters a platform cannot report are present
// and zero, never omitted.
type Stats struct {
	TotalPosts       int     `json:"total_posts"`
	FollowerCount    int     `json:"follower_count"`
	FollowingCount   int     `json:"following_count"`
	TotalLikes       int     `json:"total_likes"`
	TotalRetweets    int     `json:"total_retweets"`
	TotalReplies     int     `json:"total_replies"`
	TotalComments    int     `json:"total_comments"`
	AvgEngagement    float64 `json:"avg_engagement"`
	TotalImpressions int     `json:"total_impressions"`
	MediaCount       int     `json:"media_count"`
}

// TimeSeries holds two parallel ordered sequences: date labels (YYYY-MM-DD,
// ascending) and the mean per-post engagement for each date. Dates with no
// posts do not appear.
type TimeSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// Histogram holds the posting-time-of-day histogram: always exactly 24
// buckets labelled "00:00".."23:00", zero-filled.
type Histogram struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

// HashtagCount is one entry of the frequency ranking. Hashtag carries the
// leading '#'.
type HashtagCount struct {
	Hashtag string `json:"hashtag"`
	Count   int    `json:"count"`
}

// HashtagPerformance is one entry of the performance ranking. AvgEngagement
// is rounded to two decimal places.
type HashtagPerformance struct {
	Hashtag       string  `json:"hashtag"`
	Count         int     `json:"count"`
	AvgEngagement float64 `json:"avg_engagement"`
}

// HashtagReport combines both hashtag rankings.
type HashtagReport struct {
	TopHashtags []HashtagCount       `json:"top_hashtags"`
	Performance []HashtagPerformance `json:"hashtag_performance"`
}

// WordCount is one entry of the word frequency ranking.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// ContentTypeCount is one bucket of the content-type classification.
type ContentTypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// ContentReport combines word frequency and content-type classification.
type ContentReport struct {
	WordFrequency []WordCount        `json:"word_frequency"`
	ContentTypes  []ContentTypeCount `json:"content_types"`
}

// AnalyticsBundle is the complete analytics output for one request. The
// optional sections are present only when the corresponding analysis kind
// was requested.
type AnalyticsBundle struct {
	Platform    Platform       `json:"platform"`
	Username    string         `json:"username"`
	Stats       Stats          `json:"stats"`
	Engagement  *TimeSeries    `json:"engagement_data,omitempty"`
	Hashtags    *HashtagReport `json:"hashtag_data,omitempty"`
	Timing      *Histogram     `json:"timing_data,omitempty"`
	Content     *ContentReport `json:"content_data,omitempty"`
	GeneratedAt time.Time      `json:"analysis_timestamp"`
	// Error is set only when the whole request degraded to an empty bundle.
	Error string `json:"error,omitempty"`
}
