package analytics

import (
	"regexp"
	"sort"
	"strings"

	"socialscope/pkg/models"
)

const (
	wordFrequencyPool  = 20
	wordFrequencyLimit = 10
)

var (
	noiseRe = regexp.MustCompile(`http\S+|www\S+|@\w+|#\w+`)
	wordRe  = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)
)

// Twitter content buckets, in declared order. A post lands in exactly one
// bucket, first match wins. The with_media bucket is declared but never
// incremented; the basic API payload carries no media entities to detect.
var twitterContentBuckets = []string{
	"with_media",
	"with_urls",
	"with_hashtags",
	"with_mentions",
	"text_only",
}

// wordFrequency tokenizes post text with URLs, mentions and hashtags
// stripped, counts runs of 3+ letters, takes the top 20 by count, drops stop
// words and keeps the first 10. Ties keep first-encountered order.
func wordFrequency(posts []models.Post, stopWords map[string]struct{}) []models.WordCount {
	counts := make(map[string]int)
	var order []string

	for _, post := range posts {
		clean := noiseRe.ReplaceAllString(strings.ToLower(post.Text), "")
		for _, word := range wordRe.FindAllString(clean, -1) {
			if _, seen := counts[word]; !seen {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	ranked := make([]models.WordCount, 0, len(order))
	for _, word := range order {
		ranked = append(ranked, models.WordCount{Word: word, Count: counts[word]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if len(ranked) > wordFrequencyPool {
		ranked = ranked[:wordFrequencyPool]
	}

	filtered := make([]models.WordCount, 0, wordFrequencyLimit)
	for _, wc := range ranked {
		if _, stop := stopWords[wc.Word]; stop {
			continue
		}
		filtered = append(filtered, wc)
		if len(filtered) == wordFrequencyLimit {
			break
		}
	}

	return filtered
}

// twitterContentTypes classifies each post into a single bucket with
// first-match priority: URLs, then hashtags, then mentions, then text only.
// All declared buckets are emitted, including zero counts.
func twitterContentTypes(posts []models.Post) []models.ContentTypeCount {
	counts := make(map[string]int, len(twitterContentBuckets))
	for _, post := range posts {
		switch {
		case post.HasURLs:
			counts["with_urls"]++
		case post.HasHashtags:
			counts["with_hashtags"]++
		case post.HasMentions:
			counts["with_mentions"]++
		default:
			counts["text_only"]++
		}
	}

	out := make([]models.ContentTypeCount, 0, len(twitterContentBuckets))
	for _, bucket := range twitterContentBuckets {
		out = append(out, models.ContentTypeCount{
			Type:  bucketLabel(bucket),
			Count: counts[bucket],
		})
	}
	return out
}

// instagramContentTypes counts posts per literal media_type value, highest
// count first, ties in first-seen order. Unobserved values are absent.
func instagramContentTypes(posts []models.Post) []models.ContentTypeCount {
	counts := make(map[string]int)
	var order []string
	for _, post := range posts {
		if _, seen := counts[post.MediaType]; !seen {
			order = append(order, post.MediaType)
		}
		counts[post.MediaType]++
	}

	out := make([]models.ContentTypeCount, 0, len(order))
	for _, mediaType := range order {
		out = append(out, models.ContentTypeCount{Type: mediaType, Count: counts[mediaType]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// contentReport builds the word-frequency ranking plus the platform's
// content-type classification.
func contentReport(platform models.Platform, posts []models.Post, stopWords map[string]struct{}) *models.ContentReport {
	report := &models.ContentReport{
		WordFrequency: wordFrequency(posts, stopWords),
	}
	switch platform {
	case models.PlatformTwitter:
		report.ContentTypes = twitterContentTypes(posts)
	case models.PlatformInstagram:
		report.ContentTypes = instagramContentTypes(posts)
	default:
		report.ContentTypes = []models.ContentTypeCount{}
	}
	return report
}

// bucketLabel renders a bucket name for display: "with_urls" -> "With Urls".
func bucketLabel(bucket string) string {
	parts := strings.Split(bucket, "_")
	for i, part := range parts {
		if part != "" {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}
