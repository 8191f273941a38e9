// Package export flattens analytics bundles into downloadable files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"socialscope/pkg/models"
)

// utf8BOM lets Excel detect the encoding of the Japanese column headers.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// statRow pairs a stats field with its export label, in fixed output order.
type statRow struct {
	label string
	value func(models.Stats) string
}

var statRows = []statRow{
	{"total_posts", func(s models.Stats) string { return strconv.Itoa(s.TotalPosts) }},
	{"follower_count", func(s models.Stats) string { return strconv.Itoa(s.FollowerCount) }},
	{"following_count", func(s models.Stats) string { return strconv.Itoa(s.FollowingCount) }},
	{"total_likes", func(s models.Stats) string { return strconv.Itoa(s.TotalLikes) }},
	{"total_retweets", func(s models.Stats) string { return strconv.Itoa(s.TotalRetweets) }},
	{"total_replies", func(s models.Stats) string { return strconv.Itoa(s.TotalReplies) }},
	{"total_comments", func(s models.Stats) string { return strconv.Itoa(s.TotalComments) }},
	{"avg_engagement", func(s models.Stats) string { return formatFloat(s.AvgEngagement) }},
	{"total_impressions", func(s models.Stats) string { return strconv.Itoa(s.TotalImpressions) }},
	{"media_count", func(s models.Stats) string { return strconv.Itoa(s.MediaCount) }},
}

// WriteCSV flattens a bundle into CSV: the stats block first, then the
// engagement time series if present. The output starts with a UTF-8 BOM so
// spreadsheet tools render the Japanese headers correctly.
func WriteCSV(w io.Writer, bundle models.AnalyticsBundle) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	cw := csv.NewWriter(w)

	records := [][]string{{"統計", "値"}}
	for _, row := range statRows {
		records = append(records, []string{row.label, row.value(bundle.Stats)})
	}

	if bundle.Engagement != nil && len(bundle.Engagement.Labels) > 0 {
		records = append(records, []string{"", ""})
		records = append(records, []string{"日付", "エンゲージメント"})
		for i, label := range bundle.Engagement.Labels {
			value := 0.0
			if i < len(bundle.Engagement.Values) {
				value = bundle.Engagement.Values[i]
			}
			records = append(records, []string{label, formatFloat(value)})
		}
	}

	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// Filename builds the download name for a bundle export.
func Filename(bundle models.AnalyticsBundle) string {
	return fmt.Sprintf("%s_%s_analytics.csv", bundle.Platform, bundle.Username)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
