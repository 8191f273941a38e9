package socialscope

import (
	"socialscope/pkg/models"
)

// AnalyzeRequest is the body of POST /api/v1/analyze.
type AnalyzeRequest struct {
	Platform      string   `json:"platform" binding:"required"`
	Username      string   `json:"username" binding:"required"`
	PeriodDays    int      `json:"period_days"`
	AnalysisTypes []string `json:"analysis_types"`
}

// AnalyzeResponse represents the response from Analyze
type AnalyzeResponse = models.AnalyticsBundle

// ExportRequest is the body of POST /api/v1/export/csv. It carries a
// previously returned bundle back to the service for flattening.
type ExportRequest struct {
	Bundle models.AnalyticsBundle `json:"bundle" binding:"required"`
}

// DefaultPeriodDays is applied when a request omits period_days.
const DefaultPeriodDays = 30

// DefaultAnalysisTypes is applied when a request omits analysis_types.
var DefaultAnalysisTypes = []string{"engagement", "hashtags", "timing", "content"}
