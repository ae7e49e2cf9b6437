// Package ai implements the generation backend: prompt construction and
// calls to the Anthropic API for design briefs and structured model output.
package ai

import (
	"fmt"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"golang.org/x/time/rate"
)

// Model constants. Briefs are short-form text work and run on the cheaper
// model; geometry generation needs the stronger one.
//
// Environment variable overrides:
// - FORMA_MODEL: model for structured geometry generation
// - FORMA_MODEL_BRIEF: model for design brief generation
const (
	ModelDefault = "claude-sonnet-4-5-20250929"
	ModelBrief   = "claude-3-5-haiku-20241022"
)

// FailurePrefix marks a soft failure from the description generator. The
// description entry point reports generation-quality failures as a sentinel
// string rather than an error; the plan executor detects the prefix and
// converts it into a task failure. The structured entry point returns real
// errors and no sentinel.
const FailurePrefix = "Failed:"

// DefaultRequestsPerMinute caps API calls across all plans sharing one
// client.
const DefaultRequestsPerMinute = 20

// GetModel returns the geometry-generation model, honoring FORMA_MODEL.
func GetModel() string {
	if model := os.Getenv("FORMA_MODEL"); model != "" {
		return model
	}
	return ModelDefault
}

// GetBriefModel returns the brief-generation model, honoring
// FORMA_MODEL_BRIEF.
func GetBriefModel() string {
	if model := os.Getenv("FORMA_MODEL_BRIEF"); model != "" {
		return model
	}
	return ModelBrief
}

// Client calls the Anthropic API on behalf of the plan executor. A single
// client may serve multiple concurrently running plans; the rate limiter is
// shared.
type Client struct {
	api        anthropic.Client
	model      string
	briefModel string
	retry      RetryConfig
	limiter    *rate.Limiter
}

// Config holds client configuration.
type Config struct {
	APIKey            string // If empty, read from ANTHROPIC_API_KEY
	Model             string // Geometry model (default: GetModel())
	BriefModel        string // Brief model (default: GetBriefModel())
	Retry             RetryConfig
	RequestsPerMinute int // 0 means DefaultRequestsPerMinute
}

// NewClient creates a generation client.
func NewClient(cfg Config) (*Client, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY not set")
		}
	}

	model := cfg.Model
	if model == "" {
		model = GetModel()
	}
	briefModel := cfg.BriefModel
	if briefModel == "" {
		briefModel = GetBriefModel()
	}

	retry := cfg.Retry
	if retry.MaxRetries == 0 {
		retry = DefaultRetryConfig()
	}

	rpm := cfg.RequestsPerMinute
	if rpm == 0 {
		rpm = DefaultRequestsPerMinute
	}

	return &Client{
		api:        anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:      model,
		briefModel: briefModel,
		retry:      retry,
		limiter:    rate.NewLimiter(rate.Limit(float64(rpm)/60.0), rpm),
	}, nil
}
