package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"github.com/lemerle/medassist/internal/chat"
	appconfig "github.com/lemerle/medassist/internal/config"
	"github.com/lemerle/medassist/pkg/logging"
)

// BuildChatClient picks the chat completion backend from LLM_PROVIDER.
// The other provider, when configured, becomes the fallback. A nil client
// with a nil error means the chat widget is disabled.
// The returned cleanup func is never nil.
func BuildChatClient(ctx context.Context, cfg *appconfig.Config, awsCfg aws.Config, logger *logging.Logger) (chat.Client, func(), error) {
	noop := func() {}
	if cfg == nil {
		return nil, noop, fmt.Errorf("bootstrap: config is required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var bedrock, gemini chat.Client
	cleanup := noop
	if strings.TrimSpace(cfg.BedrockModelID) != "" {
		bedrock = chat.NewBedrockClient(bedrockruntime.NewFromConfig(awsCfg), cfg.BedrockModelID)
	}
	if strings.TrimSpace(cfg.GeminiAPIKey) != "" {
		client, err := chat.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModelID)
		if err != nil {
			return nil, noop, fmt.Errorf("bootstrap: %w", err)
		}
		gemini = client
		cleanup = func() {
			if err := client.Close(); err != nil {
				logger.Warn("failed to close gemini client", "error", err)
			}
		}
	}

	var primary, fallback chat.Client
	switch cfg.LLMProvider {
	case "gemini":
		primary, fallback = gemini, bedrock
	case "none", "off":
		logger.Info("chat widget disabled by configuration")
		cleanup()
		return nil, noop, nil
	default:
		primary, fallback = bedrock, gemini
	}

	switch {
	case primary != nil && fallback != nil:
		logger.Info("chat enabled with fallback", "provider", cfg.LLMProvider)
		return chat.NewFallbackClient(primary, fallback, logger), cleanup, nil
	case primary != nil:
		logger.Info("chat enabled", "provider", cfg.LLMProvider)
		return primary, cleanup, nil
	case fallback != nil:
		logger.Warn("primary chat provider not configured; using fallback only", "provider", cfg.LLMProvider)
		return fallback, cleanup, nil
	default:
		logger.Warn("no chat provider configured; chat widget disabled")
		return nil, noop, nil
	}
}
