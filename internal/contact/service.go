package contact

import (
	"context"

	"github.com/lemerle/medassist/internal/apperr"
	"github.com/lemerle/medassist/internal/locale"
	"github.com/lemerle/medassist/internal/observability/metrics"
	"github.com/lemerle/medassist/pkg/logging"
)

// Notifier forwards new messages to the office.
type Notifier interface {
	ContactReceived(ctx context.Context, msg *Message) error
}

// Service validates and stores contact messages.
type Service struct {
	repo     Repository
	notifier Notifier
	metrics  *metrics.SiteMetrics
	logger   *logging.Logger
}

func NewService(repo Repository, notifier Notifier, m *metrics.SiteMetrics, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{repo: repo, notifier: notifier, metrics: m, logger: logger}
}

// Submit stores the message, then notifies best-effort.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*Message, error) {
	if err := req.Validate(); err != nil {
		s.metrics.ObserveSubmission("contact", "invalid")
		return nil, err
	}
	msg, err := s.repo.Create(ctx, &req)
	if err != nil {
		s.metrics.ObserveSubmission("contact", "error")
		return nil, apperr.Store("create contact", locale.KeyContactFailed, err)
	}
	s.metrics.ObserveSubmission("contact", "stored")
	s.logger.Info("contact message stored", "id", msg.ID)

	if s.notifier != nil {
		if err := s.notifier.ContactReceived(ctx, msg); err != nil {
			s.logger.Warn("contact notification failed", "id", msg.ID, "error", err)
		}
	}
	return msg, nil
}
