package analytics

import (
	"math"
	"sort"

	"socialscope/pkg/models"
)

const topHashtagLimit = 10

type tagAccumulator struct {
	count           int
	totalEngagement int
}

// hashtagReport ranks hashtags by frequency and by average engagement. A
// post contributes its full engagement total to every tag it carries. Ties
// keep first-encountered order (stable sort).
func hashtagReport(posts []models.Post, schema counterSchema) *models.HashtagReport {
	accumulators := make(map[string]*tagAccumulator)
	var order []string

	for _, post := range posts {
		engagement := schema.engagement(post)
		for _, tag := range post.Hashtags {
			acc, ok := accumulators[tag]
			if !ok {
				acc = &tagAccumulator{}
				accumulators[tag] = acc
				order = append(order, tag)
			}
			acc.count++
			acc.totalEngagement += engagement
		}
	}

	top := make([]models.HashtagCount, 0, len(order))
	for _, tag := range order {
		top = append(top, models.HashtagCount{Hashtag: "#" + tag, Count: accumulators[tag].count})
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].Count > top[j].Count })
	if len(top) > topHashtagLimit {
		top = top[:topHashtagLimit]
	}

	// Sort on the unrounded average; rounding happens on output only.
	type perfEntry struct {
		tag   string
		count int
		avg   float64
	}
	entries := make([]perfEntry, 0, len(order))
	for _, tag := range order {
		acc := accumulators[tag]
		entries = append(entries, perfEntry{
			tag:   tag,
			count: acc.count,
			avg:   float64(acc.totalEngagement) / float64(acc.count),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].avg > entries[j].avg })
	if len(entries) > topHashtagLimit {
		entries = entries[:topHashtagLimit]
	}

	performance := make([]models.HashtagPerformance, 0, len(entries))
	for _, entry := range entries {
		performance = append(performance, models.HashtagPerformance{
			Hashtag:       "#" + entry.tag,
			Count:         entry.count,
			AvgEngagement: round2(entry.avg),
		})
	}

	return &models.HashtagReport{TopHashtags: top, Performance: performance}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
