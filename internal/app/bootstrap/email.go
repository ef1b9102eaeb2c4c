package bootstrap

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"

	appconfig "github.com/lemerle/medassist/internal/config"
	"github.com/lemerle/medassist/internal/notify"
	"github.com/lemerle/medassist/pkg/logging"
)

// BuildEmailSender selects SendGrid, SES or the logging stub from EMAIL_PROVIDER.
// Misconfigured providers degrade to the stub so bookings never fail on email.
func BuildEmailSender(cfg *appconfig.Config, awsCfg aws.Config, logger *logging.Logger) notify.EmailSender {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg == nil {
		return notify.NewStubEmailSender(logger)
	}

	switch cfg.EmailProvider {
	case "sendgrid":
		sender := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.EmailFrom,
			FromName:  cfg.EmailFromName,
		}, logger)
		if sender != nil {
			logger.Info("email provider configured", "provider", "sendgrid")
			return sender
		}
		logger.Warn("SENDGRID_API_KEY missing; falling back to stub email sender")
	case "ses":
		if cfg.EmailFrom != "" {
			logger.Info("email provider configured", "provider", "ses")
			return notify.NewSESSender(sesv2.NewFromConfig(awsCfg), notify.SESConfig{
				FromEmail: cfg.EmailFrom,
				FromName:  cfg.EmailFromName,
			}, logger)
		}
		logger.Warn("EMAIL_FROM missing; falling back to stub email sender")
	}
	return notify.NewStubEmailSender(logger)
}
