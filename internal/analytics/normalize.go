package analytics

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"socialscope/pkg/models"
)

// MalformedInputError reports a raw post or account missing a field the
// aggregator requires. It fails the whole request; the caller receives the
// zero-valued bundle with the error string attached.
type MalformedInputError struct {
	Field string
	ID    string
}

func (e *MalformedInputError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("malformed input: missing %s", e.Field)
	}
	return fmt.Sprintf("malformed input: missing %s on post %s", e.Field, e.ID)
}

var captionHashtagRe = regexp.MustCompile(`#(\w+)`)

// Instagram timestamps come back as "2006-01-02T15:04:05+0000"; Twitter uses
// proper RFC3339 with fractional seconds.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
}

func parseTimestamp(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		ts, err := time.Parse(layout, value)
		if err == nil {
			return ts, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// normalizeTwitter shapes raw Twitter user and tweet payloads into the
// common post representation.
func normalizeTwitter(user models.TwitterUser, tweets []models.Tweet) (models.Account, []models.Post, error) {
	if user.PublicMetrics == nil {
		return models.Account{}, nil, &MalformedInputError{Field: "public_metrics"}
	}

	account := models.Account{
		Username:       user.Username,
		FollowerCount:  user.PublicMetrics.FollowersCount,
		FollowingCount: user.PublicMetrics.FollowingCount,
	}

	posts := make([]models.Post, 0, len(tweets))
	for _, tweet := range tweets {
		if tweet.CreatedAt == "" {
			return models.Account{}, nil, &MalformedInputError{Field: "created_at", ID: tweet.ID}
		}
		if tweet.PublicMetrics == nil {
			return models.Account{}, nil, &MalformedInputError{Field: "public_metrics", ID: tweet.ID}
		}
		publishedAt, err := parseTimestamp(tweet.CreatedAt)
		if err != nil {
			return models.Account{}, nil, &MalformedInputError{Field: "created_at", ID: tweet.ID}
		}

		post := models.Post{
			ID:          tweet.ID,
			PublishedAt: publishedAt,
			Text:        tweet.Text,
			Counters: map[string]int{
				models.CounterLikes:    tweet.PublicMetrics.LikeCount,
				models.CounterRetweets: tweet.PublicMetrics.RetweetCount,
				models.CounterReplies:  tweet.PublicMetrics.ReplyCount,
			},
		}
		if tweet.Entities != nil {
			post.HasURLs = len(tweet.Entities.URLs) > 0
			post.HasHashtags = len(tweet.Entities.Hashtags) > 0
			post.HasMentions = len(tweet.Entities.Mentions) > 0
			for _, h := range tweet.Entities.Hashtags {
				post.Hashtags = append(post.Hashtags, strings.ToLower(h.Tag))
			}
		}
		posts = append(posts, post)
	}

	return account, posts, nil
}

// normalizeInstagram shapes raw Instagram profile and media payloads into
// the common post representation. Hashtags are parsed out of the caption
// since the Graph API has no structured entity data.
func normalizeInstagram(user models.InstagramUser, media []models.InstagramMedia) (models.Account, []models.Post, error) {
	account := models.Account{
		Username:   user.Username,
		MediaCount: user.MediaCount,
	}
	if account.MediaCount == 0 {
		account.MediaCount = len(media)
	}

	posts := make([]models.Post, 0, len(media))
	for _, m := range media {
		if m.Timestamp == "" {
			return models.Account{}, nil, &MalformedInputError{Field: "timestamp", ID: m.ID}
		}
		publishedAt, err := parseTimestamp(m.Timestamp)
		if err != nil {
			return models.Account{}, nil, &MalformedInputError{Field: "timestamp", ID: m.ID}
		}

		mediaType := m.MediaType
		if mediaType == "" {
			mediaType = "UNKNOWN"
		}

		post := models.Post{
			ID:          m.ID,
			PublishedAt: publishedAt,
			Text:        m.Caption,
			Counters: map[string]int{
				models.CounterLikes:    m.LikeCount,
				models.CounterComments: m.CommentsCount,
			},
			MediaType: mediaType,
		}
		for _, match := range captionHashtagRe.FindAllStringSubmatch(strings.ToLower(m.Caption), -1) {
			post.Hashtags = append(post.Hashtags, match[1])
		}
		posts = append(posts, post)
	}

	return account, posts, nil
}
