package analytics

import (
	"fmt"
	"sort"

	"socialscope/pkg/models"
)

const dateLayout = "2006-01-02"

// engagementSeries groups posts by calendar date and emits the mean per-post
// engagement for each date, labels sorted ascending. Dates without posts do
// not appear.
func engagementSeries(posts []models.Post, schema counterSchema) *models.TimeSeries {
	daily := make(map[string][]int)
	for _, post := range posts {
		date := post.PublishedAt.Format(dateLayout)
		daily[date] = append(daily[date], schema.engagement(post))
	}

	labels := make([]string, 0, len(daily))
	for date := range daily {
		labels = append(labels, date)
	}
	sort.Strings(labels)

	values := make([]float64, 0, len(labels))
	for _, date := range labels {
		total := 0
		for _, engagement := range daily[date] {
			total += engagement
		}
		values = append(values, float64(total)/float64(len(daily[date])))
	}

	return &models.TimeSeries{Labels: labels, Values: values}
}

// timingHistogram counts posts per hour of day. All 24 buckets are always
// present, zero-filled.
func timingHistogram(posts []models.Post) *models.Histogram {
	var counts [24]int
	for _, post := range posts {
		counts[post.PublishedAt.Hour()]++
	}

	labels := make([]string, 24)
	values := make([]int, 24)
	for hour := 0; hour < 24; hour++ {
		labels[hour] = fmt.Sprintf("%02d:00", hour)
		values[hour] = counts[hour]
	}

	return &models.Histogram{Labels: labels, Values: values}
}
