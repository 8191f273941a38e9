package analytics

import (
	"time"

	"socialscope/pkg/logging"
	"socialscope/pkg/models"
)

// Kind names one analysis section a caller can request.
type Kind string

const (
	KindEngagement Kind = "engagement"
	KindHashtags   Kind = "hashtags"
	KindTiming     Kind = "timing"
	KindContent    Kind = "content"
)

// KindSet is the set of requested analysis kinds. Unknown names are ignored.
type KindSet map[Kind]bool

// NewKindSet builds a KindSet from raw request strings.
func NewKindSet(names []string) KindSet {
	set := make(KindSet, len(names))
	for _, name := range names {
		set[Kind(name)] = true
	}
	return set
}

// Engine is the analytics aggregation engine. It is stateless per request
// and safe for concurrent use; stop words and per-platform counter schemas
// are configuration injected at construction.
type Engine struct {
	logger    logging.Logger
	stopWords map[string]struct{}
}

// Option configures an Engine.
type Option func(*Engine)

// WithStopWords overrides the default stop-word set.
func WithStopWords(words []string) Option {
	return func(e *Engine) {
		e.stopWords = make(map[string]struct{}, len(words))
		for _, w := range words {
			e.stopWords[w] = struct{}{}
		}
	}
}

// NewEngine creates an analytics engine.
func NewEngine(logger logging.Logger, opts ...Option) *Engine {
	e := &Engine{logger: logger}
	WithStopWords(defaultStopWords)(e)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AggregateTwitter runs the requested analyses over one Twitter account's
// tweets. It never fails past this boundary: malformed input degrades to
// the empty bundle with the error attached.
func (e *Engine) AggregateTwitter(user models.TwitterUser, tweets []models.Tweet, kinds KindSet) models.AnalyticsBundle {
	if len(tweets) == 0 {
		return e.EmptyBundle("")
	}

	account, posts, err := normalizeTwitter(user, tweets)
	if err != nil {
		e.logger.WithError(err).Error("Failed to normalize Twitter data")
		return e.EmptyBundle(err.Error())
	}

	return e.aggregate(models.PlatformTwitter, account, posts, kinds)
}

// AggregateInstagram runs the requested analyses over one Instagram
// account's media.
func (e *Engine) AggregateInstagram(user models.InstagramUser, media []models.InstagramMedia, kinds KindSet) models.AnalyticsBundle {
	if len(media) == 0 {
		return e.EmptyBundle("")
	}

	account, posts, err := normalizeInstagram(user, media)
	if err != nil {
		e.logger.WithError(err).Error("Failed to normalize Instagram data")
		return e.EmptyBundle(err.Error())
	}

	return e.aggregate(models.PlatformInstagram, account, posts, kinds)
}

// aggregate assembles the bundle section by section. Each requested section
// is computed independently; a failure inside one section degrades that
// section to its empty shape and the rest of the bundle proceeds.
func (e *Engine) aggregate(platform models.Platform, account models.Account, posts []models.Post, kinds KindSet) models.AnalyticsBundle {
	schema := platformCounters[platform]

	bundle := models.AnalyticsBundle{
		Platform:    platform,
		Username:    account.Username,
		Stats:       buildStats(platform, account, posts),
		GeneratedAt: time.Now(),
	}

	if kinds[KindEngagement] {
		bundle.Engagement = runSection(e, "engagement", emptyTimeSeries, func() *models.TimeSeries {
			return engagementSeries(posts, schema)
		})
	}
	if kinds[KindHashtags] {
		bundle.Hashtags = runSection(e, "hashtags", emptyHashtagReport, func() *models.HashtagReport {
			return hashtagReport(posts, schema)
		})
	}
	if kinds[KindTiming] {
		bundle.Timing = runSection(e, "timing", emptyHistogram, func() *models.Histogram {
			return timingHistogram(posts)
		})
	}
	if kinds[KindContent] {
		bundle.Content = runSection(e, "content", emptyContentReport, func() *models.ContentReport {
			return contentReport(platform, posts, e.stopWords)
		})
	}

	return bundle
}

// runSection isolates one analysis section: a panic inside the section is
// recovered, logged, and replaced by the section's empty shape so the other
// sections still complete.
func runSection[T any](e *Engine, name string, empty func() T, fn func() T) (result T) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.WithFields(logging.Fields{
				"section": name,
				"panic":   r,
			}).Error("Analysis section failed")
			result = empty()
		}
	}()
	return fn()
}

// EmptyBundle returns the zero-valued bundle with every section in its empty
// shape. errMsg is attached only for request-level failures; an empty input
// post set is not an error.
func (e *Engine) EmptyBundle(errMsg string) models.AnalyticsBundle {
	return models.AnalyticsBundle{
		Platform:    "unknown",
		Username:    "unknown",
		Stats:       models.Stats{},
		Engagement:  emptyTimeSeries(),
		Hashtags:    emptyHashtagReport(),
		Timing:      emptyHistogram(),
		Content:     emptyContentReport(),
		GeneratedAt: time.Now(),
		Error:       errMsg,
	}
}

func emptyTimeSeries() *models.TimeSeries {
	return &models.TimeSeries{Labels: []string{}, Values: []float64{}}
}

func emptyHistogram() *models.Histogram {
	return &models.Histogram{Labels: []string{}, Values: []int{}}
}

func emptyHashtagReport() *models.HashtagReport {
	return &models.HashtagReport{
		TopHashtags: []models.HashtagCount{},
		Performance: []models.HashtagPerformance{},
	}
}

func emptyContentReport() *models.ContentReport {
	return &models.ContentReport{
		WordFrequency: []models.WordCount{},
		ContentTypes:  []models.ContentTypeCount{},
	}
}
