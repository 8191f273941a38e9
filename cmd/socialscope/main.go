package main

import (
	"socialscope/internal/analytics"
	"socialscope/internal/handlers"
	"socialscope/internal/metrics"
	"socialscope/pkg/clients/instagram"
	"socialscope/pkg/clients/twitter"
	"socialscope/pkg/config"
	"socialscope/pkg/logging"
	"socialscope/pkg/monitoring"
	"socialscope/pkg/server"
	"socialscope/pkg/version"
)

func main() {
	// Setup logger
	logger := logging.NewLoggerWithService("socialscope")

	// Load environment variables
	config.LoadEnv(logger)

	logger.Info("Starting SocialScope (Social Analytics API)")

	twitterToken := config.GetEnv("TWITTER_BEARER_TOKEN", "")
	instagramToken := config.GetEnv("INSTAGRAM_ACCESS_TOKEN", "")
	if twitterToken == "" {
		logger.Warn("TWITTER_BEARER_TOKEN not set, Twitter analysis will fail")
	}
	if instagramToken == "" {
		logger.Warn("INSTAGRAM_ACCESS_TOKEN not set, Instagram analysis will use demo data")
	}

	// Platform API clients
	twitterClient := twitter.NewClient(twitterToken)
	instagramClient := instagram.NewClient(instagramToken)

	// Setup monitoring
	healthChecker := monitoring.NewHealthChecker("socialscope", version.Version)
	metricsCollector := monitoring.NewMetricsCollector("socialscope", version.Version, version.GitCommit)

	// Add health checks
	healthChecker.AddCheck("twitter_token", monitoring.PlatformTokenHealthCheck("twitter", twitterToken))
	healthChecker.AddCheck("instagram_token", monitoring.PlatformTokenHealthCheck("instagram", instagramToken))

	// Create custom analysis metrics
	serviceMetrics := &metrics.Metrics{
		Analyses:         metricsCollector.NewCounter("analyses_total", "Analyses executed", []string{"platform", "status"}),
		AnalysisDuration: metricsCollector.NewHistogram("analysis_duration_seconds", "Analysis duration", []string{"platform"}, nil),
		PlatformRequests: metricsCollector.NewCounter("platform_requests_total", "Platform API fetches", []string{"platform", "status"}),
		Exports:          metricsCollector.NewCounter("export_requests_total", "CSV export requests", []string{"status"}),
	}

	// Aggregation engine
	engine := analytics.NewEngine(logger)

	// Initialize handlers
	handlers.Init(twitterClient, instagramClient, engine, logger, serviceMetrics)
	handlers.SetMaxTweets(config.GetEnvInt("TWITTER_MAX_TWEETS", 100))

	// Setup router with unified monitoring
	router := server.SetupServiceRouter(logger, "socialscope", healthChecker, metricsCollector)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/analyze", handlers.Analyze)
		v1.POST("/export/csv", handlers.ExportCSV)
	}

	// Start HTTP server with graceful shutdown
	serverConfig := server.DefaultConfig("socialscope", "18080")
	if err := server.Start(serverConfig, router, logger); err != nil {
		logger.WithError(err).Fatal("Server startup failed")
	}
}
