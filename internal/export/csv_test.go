package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialscope/pkg/models"
)

func TestWriteCSV_StartsWithBOM(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, models.AnalyticsBundle{}))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte{0xEF, 0xBB, 0xBF}))
}

func TestWriteCSV_StatsBlock(t *testing.T) {
	bundle := models.AnalyticsBundle{
		Platform: models.PlatformTwitter,
		Username: "acme",
		Stats: models.Stats{
			TotalPosts:    3,
			FollowerCount: 100,
			TotalLikes:    42,
			AvgEngagement: 1.25,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, bundle))

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(buf.String(), "\ufeff")), "\n")
	require.Len(t, lines, 11) // header plus ten stat rows

	assert.Equal(t, "統計,値", lines[0])
	assert.Equal(t, "total_posts,3", lines[1])
	assert.Equal(t, "follower_count,100", lines[2])
	assert.Equal(t, "total_likes,42", lines[4])
	assert.Equal(t, "avg_engagement,1.25", lines[8])
	assert.Equal(t, "media_count,0", lines[10])
}

func TestWriteCSV_EngagementBlockAfterBlankRow(t *testing.T) {
	bundle := models.AnalyticsBundle{
		Platform: models.PlatformTwitter,
		Username: "acme",
		Engagement: &models.TimeSeries{
			Labels: []string{"2024-03-01", "2024-03-02"},
			Values: []float64{2, 3.5},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, bundle))

	out := strings.TrimPrefix(buf.String(), "\ufeff")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 15)

	assert.Equal(t, ",", lines[11])
	assert.Equal(t, "日付,エンゲージメント", lines[12])
	assert.Equal(t, "2024-03-01,2", lines[13])
	assert.Equal(t, "2024-03-02,3.5", lines[14])
}

func TestWriteCSV_EmptyEngagementOmitsBlock(t *testing.T) {
	bundle := models.AnalyticsBundle{
		Engagement: &models.TimeSeries{Labels: []string{}, Values: []float64{}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, bundle))

	assert.NotContains(t, buf.String(), "日付")
}

func TestWriteCSV_ValueIndexBeyondValues(t *testing.T) {
	bundle := models.AnalyticsBundle{
		Engagement: &models.TimeSeries{
			Labels: []string{"2024-03-01", "2024-03-02"},
			Values: []float64{1.5},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, bundle))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "2024-03-02,0", lines[len(lines)-1])
}

func TestFilename(t *testing.T) {
	bundle := models.AnalyticsBundle{Platform: models.PlatformInstagram, Username: "acme"}
	assert.Equal(t, "instagram_acme_analytics.csv", Filename(bundle))
}
