package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"socialscope/internal/analytics"
	"socialscope/internal/export"
	"socialscope/internal/metrics"
	"socialscope/pkg/api/common"
	api "socialscope/pkg/api/socialscope"
	"socialscope/pkg/clients/instagram"
	"socialscope/pkg/clients/twitter"
	"socialscope/pkg/logging"
	"socialscope/pkg/models"
)

// TwitterFetcher pulls one account's profile and recent tweets.
type TwitterFetcher interface {
	FetchAccountData(ctx context.Context, username string, lookbackDays, maxTweets int) (*models.TwitterUser, []models.Tweet, error)
}

// InstagramFetcher pulls the configured account's profile and recent media.
type InstagramFetcher interface {
	FetchAccountData(ctx context.Context, limit int) (*models.InstagramUser, []models.InstagramMedia, error)
}

var (
	twitterClient   TwitterFetcher
	instagramClient InstagramFetcher
	engine          *analytics.Engine
	logger          logging.Logger
	serviceMetrics  *metrics.Metrics
	maxTweets       = 100
)

// Init initializes the handlers package with platform clients, the
// aggregation engine and metrics
func Init(tw TwitterFetcher, ig InstagramFetcher, eng *analytics.Engine, log logging.Logger, m *metrics.Metrics) {
	twitterClient = tw
	instagramClient = ig
	engine = eng
	logger = log
	serviceMetrics = m
}

// SetMaxTweets overrides the per-request tweet fetch cap.
func SetMaxTweets(n int) {
	if n > 0 {
		maxTweets = n
	}
}

// Analyze handles POST /api/v1/analyze: fetch the account's recent posts
// from the requested platform and run the requested analyses over them.
func Analyze(c *gin.Context) {
	start := time.Now()

	var req api.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.PeriodDays <= 0 {
		req.PeriodDays = api.DefaultPeriodDays
	}
	if len(req.AnalysisTypes) == 0 {
		req.AnalysisTypes = api.DefaultAnalysisTypes
	}
	kinds := analytics.NewKindSet(req.AnalysisTypes)

	defer func() {
		if serviceMetrics != nil {
			serviceMetrics.AnalysisDuration.WithLabelValues(req.Platform).Observe(time.Since(start).Seconds())
		}
	}()

	var bundle models.AnalyticsBundle
	switch models.Platform(req.Platform) {
	case models.PlatformTwitter:
		user, tweets, err := twitterClient.FetchAccountData(c.Request.Context(), req.Username, req.PeriodDays, maxTweets)
		if err != nil {
			platformError(c, req.Platform, err)
			return
		}
		recordPlatformRequest(req.Platform, "success")
		bundle = engine.AggregateTwitter(*user, tweets, kinds)

	case models.PlatformInstagram:
		user, media, err := instagramClient.FetchAccountData(c.Request.Context(), maxTweets)
		if err != nil {
			platformError(c, req.Platform, err)
			return
		}
		recordPlatformRequest(req.Platform, "success")
		bundle = engine.AggregateInstagram(*user, media, kinds)

	default:
		c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: "Unsupported platform: " + req.Platform})
		return
	}

	if serviceMetrics != nil {
		status := "success"
		if bundle.Error != "" {
			status = "degraded"
		}
		serviceMetrics.Analyses.WithLabelValues(req.Platform, status).Inc()
	}

	c.JSON(http.StatusOK, bundle)
}

// ExportCSV handles POST /api/v1/export/csv: flatten a previously returned
// bundle into a CSV download.
func ExportCSV(c *gin.Context) {
	var req api.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if serviceMetrics != nil {
			serviceMetrics.Exports.WithLabelValues("error").Inc()
		}
		c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: "Invalid request body"})
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, req.Bundle); err != nil {
		logger.WithError(err).Error("Failed to export bundle to CSV")
		if serviceMetrics != nil {
			serviceMetrics.Exports.WithLabelValues("error").Inc()
		}
		c.JSON(http.StatusInternalServerError, common.ErrorResponse{Error: "Export failed"})
		return
	}

	if serviceMetrics != nil {
		serviceMetrics.Exports.WithLabelValues("success").Inc()
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.Filename(req.Bundle)+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// platformError maps upstream platform failures onto HTTP statuses.
func platformError(c *gin.Context, platform string, err error) {
	recordPlatformRequest(platform, "error")

	logger.WithFields(logging.Fields{
		"platform": platform,
		"error":    err,
	}).Error("Platform fetch failed")

	switch {
	case errors.Is(err, twitter.ErrNotFound):
		c.JSON(http.StatusNotFound, common.ErrorResponse{Error: "User not found"})
	case errors.Is(err, twitter.ErrRateLimited) || errors.Is(err, instagram.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, common.ErrorResponse{Error: "Platform rate limit exceeded"})
	case errors.Is(err, twitter.ErrUnauthorized) || errors.Is(err, instagram.ErrUnauthorized):
		c.JSON(http.StatusBadGateway, common.ErrorResponse{Error: "Platform credentials rejected"})
	default:
		c.JSON(http.StatusBadGateway, common.ErrorResponse{Error: "Failed to fetch platform data"})
	}
}

func recordPlatformRequest(platform, status string) {
	if serviceMetrics != nil {
		serviceMetrics.PlatformRequests.WithLabelValues(platform, status).Inc()
	}
}
