package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/lemerle/medassist/internal/locale"
	"github.com/lemerle/medassist/internal/observability/metrics"
	"github.com/lemerle/medassist/pkg/logging"
)

var tracer = otel.Tracer("medassist.internal.chat")

var (
	// ErrUnavailable means no provider is configured.
	ErrUnavailable = errors.New("chat: no language model configured")
	// ErrInvalidInput means the history contains a role the widget never sends.
	ErrInvalidInput = errors.New("chat: invalid message history")
)

// greeting is sent when the widget opens with an empty history.
const greeting = "Hello"

type Config struct {
	Provider     string
	Model        string
	BusinessName string
	MaxTokens    int32
	HistoryLimit int
}

// Service builds the localized prompt and forwards the conversation.
type Service struct {
	client  Client
	cfg     Config
	catalog *locale.Catalog
	metrics *metrics.SiteMetrics
	logger  *logging.Logger
}

// NewService accepts a nil client; Reply then returns ErrUnavailable.
func NewService(client Client, cfg Config, catalog *locale.Catalog, m *metrics.SiteMetrics, logger *logging.Logger) *Service {
	if catalog == nil {
		catalog = locale.Default()
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = 20
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 512
	}
	if cfg.Provider == "" {
		cfg.Provider = "unknown"
	}
	return &Service{client: client, cfg: cfg, catalog: catalog, metrics: m, logger: logger}
}

func (s *Service) Available() bool {
	return s.client != nil
}

// SystemPrompt is the instruction sent ahead of every conversation.
func (s *Service) SystemPrompt(lang locale.Locale) string {
	return s.catalog.Format(lang, locale.KeyChatSystemPrompt, s.cfg.BusinessName)
}

// prepareHistory keeps the last limit turns, drops blank ones, merges
// consecutive turns of the same role and makes sure the first turn is the
// user's.
func prepareHistory(history []Message, limit int) ([]Message, error) {
	cleaned := make([]Message, 0, len(history))
	for _, msg := range history {
		role := strings.ToLower(strings.TrimSpace(msg.Role))
		if role != RoleUser && role != RoleAssistant {
			return nil, ErrInvalidInput
		}
		content := strings.TrimSpace(msg.Content)
		if content == "" {
			continue
		}
		cleaned = append(cleaned, Message{Role: role, Content: content})
	}
	if limit > 0 && len(cleaned) > limit {
		cleaned = cleaned[len(cleaned)-limit:]
	}
	for len(cleaned) > 0 && cleaned[0].Role != RoleUser {
		cleaned = cleaned[1:]
	}

	merged := make([]Message, 0, len(cleaned))
	for _, msg := range cleaned {
		if n := len(merged); n > 0 && merged[n-1].Role == msg.Role {
			merged[n-1].Content += "\n" + msg.Content
			continue
		}
		merged = append(merged, msg)
	}
	if len(merged) == 0 {
		merged = append(merged, Message{Role: RoleUser, Content: greeting})
	}
	return merged, nil
}

// Reply returns the assistant's next message.
func (s *Service) Reply(ctx context.Context, history []Message, lang locale.Locale) (string, error) {
	if s.client == nil {
		return "", ErrUnavailable
	}
	messages, err := prepareHistory(history, s.cfg.HistoryLimit)
	if err != nil {
		return "", err
	}

	ctx, span := tracer.Start(ctx, "chat.reply", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("chat.provider", s.cfg.Provider),
		attribute.String("chat.locale", string(lang)),
		attribute.Int("chat.turns", len(messages)),
	)

	start := time.Now()
	resp, err := s.client.Complete(ctx, Request{
		Model:       s.cfg.Model,
		System:      []string{s.SystemPrompt(lang)},
		Messages:    messages,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: 0.7,
	})
	elapsed := time.Since(start).Seconds()
	if err != nil {
		s.metrics.ObserveChat(s.cfg.Provider, "error", elapsed)
		span.RecordError(err)
		span.SetStatus(codes.Error, "completion failed")
		return "", err
	}
	s.metrics.ObserveChat(s.cfg.Provider, "ok", elapsed)
	s.logger.Debug("chat completion",
		"provider", s.cfg.Provider,
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens,
		"stop_reason", resp.StopReason,
	)
	return resp.Text, nil
}
