package analytics

import "socialscope/pkg/models"

// counterSchema lists the engagement counters a platform reports. A post's
// engagement total is the sum over exactly these counters, so platform
// differences stay configuration data instead of forked code paths.
type counterSchema []string

var platformCounters = map[models.Platform]counterSchema{
	models.PlatformTwitter:   {models.CounterLikes, models.CounterRetweets, models.CounterReplies},
	models.PlatformInstagram: {models.CounterLikes, models.CounterComments},
}

// engagement returns the post's engagement total under this schema.
func (s counterSchema) engagement(p models.Post) int {
	total := 0
	for _, name := range s {
		total += p.Counters[name]
	}
	return total
}
