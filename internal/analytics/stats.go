package analytics

import "socialscope/pkg/models"

// buildStats computes the scalar summary section. The output shape is
// identical for both platforms; counters a platform does not report stay
// zero. TotalImpressions is always zero, the basic APIs do not expose it.
func buildStats(platform models.Platform, account models.Account, posts []models.Post) models.Stats {
	stats := models.Stats{
		TotalPosts:     len(posts),
		FollowerCount:  account.FollowerCount,
		FollowingCount: account.FollowingCount,
	}

	for _, post := range posts {
		stats.TotalLikes += post.Counters[models.CounterLikes]
		stats.TotalRetweets += post.Counters[models.CounterRetweets]
		stats.TotalReplies += post.Counters[models.CounterReplies]
		stats.TotalComments += post.Counters[models.CounterComments]
	}

	switch platform {
	case models.PlatformTwitter:
		// Engagement rate relative to audience size, as a percentage.
		if stats.TotalPosts > 0 && stats.FollowerCount > 0 {
			totalEngagement := stats.TotalLikes + stats.TotalRetweets + stats.TotalReplies
			stats.AvgEngagement = float64(totalEngagement) / float64(stats.TotalPosts) / float64(stats.FollowerCount) * 100
		}
	case models.PlatformInstagram:
		stats.MediaCount = account.MediaCount
		// Plain likes+comments per post; follower counts are not available
		// from the Basic Display API.
		if stats.TotalPosts > 0 {
			totalEngagement := stats.TotalLikes + stats.TotalComments
			stats.AvgEngagement = float64(totalEngagement) / float64(stats.TotalPosts)
		}
	}

	return stats
}
