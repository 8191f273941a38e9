package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialscope/pkg/logging"
	"socialscope/pkg/models"
)

func testEngine() *Engine {
	return NewEngine(logging.NewLogger())
}

func allKinds() KindSet {
	return NewKindSet([]string{"engagement", "hashtags", "timing", "content"})
}

func twitterUser(followers, following int) models.TwitterUser {
	return models.TwitterUser{
		ID:       "u1",
		Username: "testuser",
		PublicMetrics: &models.TwitterPublicMetrics{
			FollowersCount: followers,
			FollowingCount: following,
		},
	}
}

func tweet(id, createdAt, text string, likes, retweets, replies int, entities *models.TweetEntities) models.Tweet {
	return models.Tweet{
		ID:        id,
		Text:      text,
		CreatedAt: createdAt,
		PublicMetrics: &models.TwitterPublicMetrics{
			LikeCount:    likes,
			RetweetCount: retweets,
			ReplyCount:   replies,
		},
		Entities: entities,
	}
}

func TestAggregateTwitter_EmptyInputIsNotAnError(t *testing.T) {
	bundle := testEngine().AggregateTwitter(twitterUser(100, 50), nil, allKinds())

	assert.Empty(t, bundle.Error)
	assert.Equal(t, 0, bundle.Stats.TotalPosts)
	require.NotNil(t, bundle.Engagement)
	assert.Empty(t, bundle.Engagement.Labels)
	require.NotNil(t, bundle.Hashtags)
	assert.Empty(t, bundle.Hashtags.TopHashtags)
	require.NotNil(t, bundle.Content)
	assert.Empty(t, bundle.Content.WordFrequency)
}

func TestAggregateTwitter_MalformedInputDegradesWithError(t *testing.T) {
	tweets := []models.Tweet{
		{ID: "t1", Text: "no timestamp", PublicMetrics: &models.TwitterPublicMetrics{LikeCount: 1}},
	}
	bundle := testEngine().AggregateTwitter(twitterUser(100, 50), tweets, allKinds())

	assert.NotEmpty(t, bundle.Error)
	assert.Equal(t, 0, bundle.Stats.TotalPosts)
	require.NotNil(t, bundle.Timing)
	assert.Empty(t, bundle.Timing.Labels)
}

func TestAggregateTwitter_OnlyRequestedSectionsPresent(t *testing.T) {
	tweets := []models.Tweet{
		tweet("t1", "2024-03-01T10:00:00Z", "hello world", 5, 1, 0, nil),
	}
	bundle := testEngine().AggregateTwitter(twitterUser(100, 50), tweets, NewKindSet([]string{"engagement"}))

	assert.NotNil(t, bundle.Engagement)
	assert.Nil(t, bundle.Hashtags)
	assert.Nil(t, bundle.Timing)
	assert.Nil(t, bundle.Content)
}

// Scenario: three tweets on the same date with likes 1, 2, 3 produce a
// single series point with the mean engagement 2.0.
func TestAggregateTwitter_EngagementSeriesMean(t *testing.T) {
	tweets := []models.Tweet{
		tweet("t1", "2024-03-01T08:00:00Z", "", 1, 0, 0, nil),
		tweet("t2", "2024-03-01T12:00:00Z", "", 2, 0, 0, nil),
		tweet("t3", "2024-03-01T20:00:00Z", "", 3, 0, 0, nil),
	}
	bundle := testEngine().AggregateTwitter(twitterUser(1000, 10), tweets, NewKindSet([]string{"engagement"}))

	require.NotNil(t, bundle.Engagement)
	require.Equal(t, []string{"2024-03-01"}, bundle.Engagement.Labels)
	require.Equal(t, []float64{2.0}, bundle.Engagement.Values)
}

func TestAggregateTwitter_TimingHistogramSumsToTotalPosts(t *testing.T) {
	tweets := []models.Tweet{
		tweet("t1", "2024-03-01T08:15:00Z", "", 1, 0, 0, nil),
		tweet("t2", "2024-03-01T08:45:00Z", "", 2, 0, 0, nil),
		tweet("t3", "2024-03-02T23:59:59Z", "", 3, 0, 0, nil),
	}
	bundle := testEngine().AggregateTwitter(twitterUser(1000, 10), tweets, NewKindSet([]string{"timing"}))

	require.NotNil(t, bundle.Timing)
	require.Len(t, bundle.Timing.Labels, 24)
	require.Len(t, bundle.Timing.Values, 24)
	assert.Equal(t, "00:00", bundle.Timing.Labels[0])
	assert.Equal(t, "23:00", bundle.Timing.Labels[23])

	sum := 0
	for _, v := range bundle.Timing.Values {
		sum += v
	}
	assert.Equal(t, bundle.Stats.TotalPosts, sum)
	assert.Equal(t, 2, bundle.Timing.Values[8])
	assert.Equal(t, 1, bundle.Timing.Values[23])
}

// Scenario: hashtags ai, AI, ml across posts with engagement totals 10, 20,
// 30. Case folding merges ai/AI; performance averages per occurrence.
func TestAggregateTwitter_HashtagRankings(t *testing.T) {
	tweets := []models.Tweet{
		tweet("t1", "2024-03-01T08:00:00Z", "#ai post", 10, 0, 0, &models.TweetEntities{
			Hashtags: []models.TweetHashtagEntity{{Tag: "ai"}},
		}),
		tweet("t2", "2024-03-02T09:00:00Z", "#AI post", 20, 0, 0, &models.TweetEntities{
			Hashtags: []models.TweetHashtagEntity{{Tag: "AI"}},
		}),
		tweet("t3", "2024-03-03T10:00:00Z", "#ml post", 30, 0, 0, &models.TweetEntities{
			Hashtags: []models.TweetHashtagEntity{{Tag: "ml"}},
		}),
	}
	bundle := testEngine().AggregateTwitter(twitterUser(1000, 10), tweets, NewKindSet([]string{"hashtags"}))

	require.NotNil(t, bundle.Hashtags)
	require.Len(t, bundle.Hashtags.TopHashtags, 2)
	assert.Equal(t, models.HashtagCount{Hashtag: "#ai", Count: 2}, bundle.Hashtags.TopHashtags[0])
	assert.Equal(t, models.HashtagCount{Hashtag: "#ml", Count: 1}, bundle.Hashtags.TopHashtags[1])

	require.Len(t, bundle.Hashtags.Performance, 2)
	assert.Equal(t, models.HashtagPerformance{Hashtag: "#ml", Count: 1, AvgEngagement: 30.0}, bundle.Hashtags.Performance[0])
	assert.Equal(t, models.HashtagPerformance{Hashtag: "#ai", Count: 2, AvgEngagement: 15.0}, bundle.Hashtags.Performance[1])
}

func TestAggregateTwitter_StatsEngagementRate(t *testing.T) {
	tweets := []models.Tweet{
		tweet("t1", "2024-03-01T08:00:00Z", "", 10, 5, 5, nil),
		tweet("t2", "2024-03-02T09:00:00Z", "", 20, 5, 5, nil),
	}
	bundle := testEngine().AggregateTwitter(twitterUser(100, 42), tweets, NewKindSet(nil))

	assert.Equal(t, 2, bundle.Stats.TotalPosts)
	assert.Equal(t, 100, bundle.Stats.FollowerCount)
	assert.Equal(t, 42, bundle.Stats.FollowingCount)
	assert.Equal(t, 30, bundle.Stats.TotalLikes)
	assert.Equal(t, 10, bundle.Stats.TotalRetweets)
	assert.Equal(t, 10, bundle.Stats.TotalReplies)
	// (50 / 2 / 100) * 100
	assert.InDelta(t, 25.0, bundle.Stats.AvgEngagement, 1e-9)
	// Uniform shape: Instagram-only counters are present and zero.
	assert.Equal(t, 0, bundle.Stats.TotalComments)
	assert.Equal(t, 0, bundle.Stats.TotalImpressions)
}

func TestAggregateTwitter_ZeroFollowersNoDivisionError(t *testing.T) {
	tweets := []models.Tweet{
		tweet("t1", "2024-03-01T08:00:00Z", "", 10, 0, 0, nil),
	}
	bundle := testEngine().AggregateTwitter(twitterUser(0, 0), tweets, NewKindSet(nil))

	assert.Zero(t, bundle.Stats.AvgEngagement)
	assert.Empty(t, bundle.Error)
}

func instagramMedia(id, timestamp, mediaType, caption string, likes, comments int) models.InstagramMedia {
	return models.InstagramMedia{
		ID:            id,
		MediaType:     mediaType,
		Caption:       caption,
		Timestamp:     timestamp,
		LikeCount:     likes,
		CommentsCount: comments,
	}
}

func TestAggregateInstagram_Stats(t *testing.T) {
	user := models.InstagramUser{ID: "1", Username: "insta", MediaCount: 50}
	media := []models.InstagramMedia{
		instagramMedia("m1", "2024-03-01T08:00:00+0000", "IMAGE", "", 10, 2),
		instagramMedia("m2", "2024-03-02T09:00:00+0000", "VIDEO", "", 20, 8),
	}
	bundle := testEngine().AggregateInstagram(user, media, NewKindSet(nil))

	assert.Equal(t, models.PlatformInstagram, bundle.Platform)
	assert.Equal(t, "insta", bundle.Username)
	assert.Equal(t, 2, bundle.Stats.TotalPosts)
	assert.Equal(t, 30, bundle.Stats.TotalLikes)
	assert.Equal(t, 10, bundle.Stats.TotalComments)
	assert.Equal(t, 50, bundle.Stats.MediaCount)
	// (30 + 10) / 2 posts
	assert.InDelta(t, 20.0, bundle.Stats.AvgEngagement, 1e-9)
	// No follower data from the Basic Display API.
	assert.Equal(t, 0, bundle.Stats.FollowerCount)
	assert.Equal(t, 0, bundle.Stats.TotalRetweets)
}

// Scenario: VIDEO twice and IMAGE once ranks VIDEO first.
func TestAggregateInstagram_ContentTypes(t *testing.T) {
	user := models.InstagramUser{ID: "1", Username: "insta"}
	media := []models.InstagramMedia{
		instagramMedia("m1", "2024-03-01T08:00:00+0000", "IMAGE", "", 1, 0),
		instagramMedia("m2", "2024-03-01T09:00:00+0000", "VIDEO", "", 1, 0),
		instagramMedia("m3", "2024-03-01T10:00:00+0000", "VIDEO", "", 1, 0),
	}
	bundle := testEngine().AggregateInstagram(user, media, NewKindSet([]string{"content"}))

	require.NotNil(t, bundle.Content)
	require.Equal(t, []models.ContentTypeCount{
		{Type: "VIDEO", Count: 2},
		{Type: "IMAGE", Count: 1},
	}, bundle.Content.ContentTypes)
}

func TestAggregateInstagram_CaptionHashtags(t *testing.T) {
	user := models.InstagramUser{ID: "1", Username: "insta"}
	media := []models.InstagramMedia{
		instagramMedia("m1", "2024-03-01T08:00:00+0000", "IMAGE", "Sunset walk #Photography #nature", 10, 0),
		instagramMedia("m2", "2024-03-02T08:00:00+0000", "IMAGE", "More shots #photography", 20, 0),
	}
	bundle := testEngine().AggregateInstagram(user, media, NewKindSet([]string{"hashtags"}))

	require.NotNil(t, bundle.Hashtags)
	require.Len(t, bundle.Hashtags.TopHashtags, 2)
	assert.Equal(t, models.HashtagCount{Hashtag: "#photography", Count: 2}, bundle.Hashtags.TopHashtags[0])
	assert.Equal(t, models.HashtagCount{Hashtag: "#nature", Count: 1}, bundle.Hashtags.TopHashtags[1])
}

func TestEmptyBundleShape(t *testing.T) {
	bundle := testEngine().EmptyBundle("boom")

	assert.EqualValues(t, "unknown", bundle.Platform)
	assert.Equal(t, "unknown", bundle.Username)
	assert.Equal(t, "boom", bundle.Error)
	require.NotNil(t, bundle.Engagement)
	require.NotNil(t, bundle.Hashtags)
	require.NotNil(t, bundle.Timing)
	require.NotNil(t, bundle.Content)
	assert.False(t, bundle.GeneratedAt.IsZero())
}
