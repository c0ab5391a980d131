package client

import (
	"context"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"community-moderation-api/internal/metrics"
)

// SafetyClient checks text against the OpenAI moderation endpoint.
// Guests' content must pass this check before anything is persisted;
// unlike the revalidation hook this is NOT fire-and-forget - an error
// here propagates to the caller.
type SafetyClient struct {
	api     *openai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewSafetyClient creates a new moderation-endpoint client
func NewSafetyClient(apiKey, model string, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) *SafetyClient {
	return &SafetyClient{
		api:     openai.NewClient(apiKey),
		model:   model,
		timeout: timeout,
		logger:  logger,
		metrics: m,
	}
}

// Check classifies the text. Returns (false, category) when the endpoint
// flags it; the category string is surfaced to the caller as the
// rejection reason.
func (c *SafetyClient) Check(ctx context.Context, text string) (bool, string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	startTime := time.Now()
	resp, err := c.api.Moderations(ctx, openai.ModerationRequest{
		Input: text,
		Model: c.model,
	})
	duration := time.Since(startTime)

	statusCode := 200
	if err != nil {
		statusCode = 0
	}
	if c.metrics != nil {
		c.metrics.RecordExternalAPICall("/v1/moderations", "POST", statusCode, duration, err)
	}

	if err != nil {
		c.logger.Error("Moderation endpoint call failed",
			zap.Error(err),
			zap.Duration("duration", duration))
		return false, "", err
	}

	if len(resp.Results) == 0 {
		c.logger.Warn("Moderation endpoint returned no results")
		return true, "", nil
	}

	result := resp.Results[0]
	if !result.Flagged {
		return true, "", nil
	}

	reason := flaggedCategories(result.Categories)
	c.logger.Info("Content flagged by moderation endpoint",
		zap.String("categories", reason),
		zap.Duration("duration", duration))
	return false, reason, nil
}

// flaggedCategories renders the triggered categories as a short
// comma-joined string for the rejection reason
func flaggedCategories(c openai.ResultCategories) string {
	var hit []string
	if c.Hate {
		hit = append(hit, "hate")
	}
	if c.HateThreatening {
		hit = append(hit, "hate/threatening")
	}
	if c.Harassment {
		hit = append(hit, "harassment")
	}
	if c.HarassmentThreatening {
		hit = append(hit, "harassment/threatening")
	}
	if c.SelfHarm {
		hit = append(hit, "self-harm")
	}
	if c.SelfHarmIntent {
		hit = append(hit, "self-harm/intent")
	}
	if c.SelfHarmInstructions {
		hit = append(hit, "self-harm/instructions")
	}
	if c.Sexual {
		hit = append(hit, "sexual")
	}
	if c.SexualMinors {
		hit = append(hit, "sexual/minors")
	}
	if c.Violence {
		hit = append(hit, "violence")
	}
	if c.ViolenceGraphic {
		hit = append(hit, "violence/graphic")
	}
	if len(hit) == 0 {
		return "flagged"
	}
	return strings.Join(hit, ",")
}

// NoOpSafetyClient accepts everything. Used when no API key is
// configured (local development).
type NoOpSafetyClient struct{}

func NewNoOpSafetyClient() *NoOpSafetyClient {
	return &NoOpSafetyClient{}
}

func (c *NoOpSafetyClient) Check(ctx context.Context, text string) (bool, string, error) {
	return true, "", nil
}
