package notify

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/lemerle/medassist/internal/appointments"
	"github.com/lemerle/medassist/internal/contact"
	"github.com/lemerle/medassist/internal/locale"
	"github.com/lemerle/medassist/pkg/logging"
)

// Config controls who receives what.
type Config struct {
	BusinessName string
	InboxEmail   string
}

// Service turns site events into emails.
type Service struct {
	email   EmailSender
	catalog *locale.Catalog
	cfg     Config
	logger  *logging.Logger
}

func NewService(email EmailSender, catalog *locale.Catalog, cfg Config, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	if catalog == nil {
		catalog = locale.Default()
	}
	if cfg.BusinessName == "" {
		cfg.BusinessName = DefaultFromName
	}
	return &Service{email: email, catalog: catalog, cfg: cfg, logger: logger}
}

// AppointmentBooked sends the patient a confirmation in their language.
func (s *Service) AppointmentBooked(ctx context.Context, appt *appointments.Appointment, lang locale.Locale) error {
	if s.email == nil || appt == nil || appt.Email == "" {
		return nil
	}
	body := s.catalog.Format(lang, locale.KeyBookingEmailBody,
		appt.Name, appt.Date, shortClock(appt.Time), s.cfg.BusinessName)

	err := s.email.Send(ctx, EmailMessage{
		To:      appt.Email,
		ToName:  appt.Name,
		Subject: s.catalog.Text(lang, locale.KeyBookingEmailSubject),
		Body:    body,
		HTML:    formatHTML(body, lang),
	})
	if err != nil {
		return fmt.Errorf("notify: booking confirmation: %w", err)
	}
	return nil
}

// ContactReceived forwards a contact message to the office inbox. It is a
// no-op when no inbox is configured.
func (s *Service) ContactReceived(ctx context.Context, msg *contact.Message) error {
	if s.email == nil || s.cfg.InboxEmail == "" || msg == nil {
		return nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\nEmail: %s\n", msg.Name, msg.Email)
	if msg.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", msg.Phone)
	}
	fmt.Fprintf(&b, "\n%s\n", msg.Message)

	err := s.email.Send(ctx, EmailMessage{
		To:      s.cfg.InboxEmail,
		ToName:  s.cfg.BusinessName,
		Subject: s.catalog.Format(locale.French, locale.KeyContactEmailSubject, msg.Name),
		Body:    b.String(),
	})
	if err != nil {
		return fmt.Errorf("notify: contact forward: %w", err)
	}
	return nil
}

// shortClock trims seconds from a persisted HH:MM:SS time.
func shortClock(clock string) string {
	if len(clock) == len("15:04:05") {
		return clock[:5]
	}
	return clock
}

func formatHTML(text string, lang locale.Locale) string {
	dir := "ltr"
	if lang.IsRTL() {
		dir = "rtl"
	}
	paragraphs := strings.Split(text, "\n\n")
	var b strings.Builder
	fmt.Fprintf(&b, `<div dir="%s" lang="%s">`, dir, lang)
	for _, p := range paragraphs {
		b.WriteString("<p>")
		b.WriteString(strings.ReplaceAll(html.EscapeString(p), "\n", "<br>"))
		b.WriteString("</p>")
	}
	b.WriteString("</div>")
	return b.String()
}
