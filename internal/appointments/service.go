package appointments

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/lemerle/medassist/internal/apperr"
	"github.com/lemerle/medassist/internal/locale"
	"github.com/lemerle/medassist/internal/observability/metrics"
	"github.com/lemerle/medassist/pkg/logging"
)

var tracer = otel.Tracer("medassist.internal.appointments")

// Notifier is told about every accepted booking.
type Notifier interface {
	AppointmentBooked(ctx context.Context, appt *Appointment, lang locale.Locale) error
}

// Service validates and books appointments.
type Service struct {
	repo     Repository
	schedule *Schedule
	interval time.Duration
	notifier Notifier
	metrics  *metrics.SiteMetrics
	logger   *logging.Logger
	now      func() time.Time
}

type Option func(*Service)

// WithNotifier sends a confirmation after each booking.
func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

func WithMetrics(m *metrics.SiteMetrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithLogger(l *logging.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithSlotInterval sets the step used by Availability.
func WithSlotInterval(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithClock overrides time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(repo Repository, schedule *Schedule, opts ...Option) *Service {
	if repo == nil {
		panic("appointments: repository required")
	}
	if schedule == nil {
		schedule = NewSchedule(time.UTC)
	}
	s := &Service{
		repo:     repo,
		schedule: schedule,
		interval: 30 * time.Minute,
		logger:   logging.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate runs every rule that does not need the datastore and returns the
// appointment that would be stored.
func (s *Service) Validate(req BookRequest) (*Appointment, error) {
	req.normalize()
	if err := req.checkFields(); err != nil {
		return nil, err
	}
	slot, err := s.schedule.ParseSlot(req.Date, req.Time)
	if err != nil {
		return nil, err
	}
	if err := s.schedule.Check(slot, s.now()); err != nil {
		return nil, err
	}
	serviceID, err := strconv.ParseInt(string(req.Service), 10, 64)
	if err != nil || serviceID <= 0 {
		return nil, apperr.Validation("service", locale.KeyUnknownService)
	}
	return &Appointment{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Date:      FormatDate(slot),
		Time:      FormatClock(slot),
		ServiceID: serviceID,
		Message:   req.Message,
	}, nil
}

// Book validates req and stores it if the slot is free.
func (s *Service) Book(ctx context.Context, req BookRequest, lang locale.Locale) (*Appointment, error) {
	ctx, span := tracer.Start(ctx, "appointments.book")
	defer span.End()

	appt, err := s.Validate(req)
	if err != nil {
		s.metrics.ObserveBooking("invalid")
		span.SetStatus(codes.Error, "validation")
		return nil, err
	}
	span.SetAttributes(
		attribute.String("appointment.date", appt.Date),
		attribute.String("appointment.time", appt.Time),
		attribute.Int64("appointment.service_id", appt.ServiceID),
	)

	taken, err := s.repo.Exists(ctx, appt.Date, appt.Time)
	if err != nil {
		s.metrics.ObserveBooking("error")
		span.RecordError(err)
		return nil, apperr.Store("check slot", locale.KeyBookingFailed, err)
	}
	if taken {
		s.metrics.ObserveBooking("conflict")
		return nil, apperr.Conflict(locale.KeySlotTaken, appt.Date+" "+appt.Time)
	}

	if err := s.repo.Insert(ctx, appt); err != nil {
		switch {
		case errors.Is(err, ErrSlotTaken):
			s.metrics.ObserveBooking("conflict")
			return nil, apperr.Conflict(locale.KeySlotTaken, appt.Date+" "+appt.Time)
		case errors.Is(err, ErrUnknownService):
			s.metrics.ObserveBooking("invalid")
			return nil, apperr.Validation("service", locale.KeyUnknownService)
		default:
			s.metrics.ObserveBooking("error")
			span.RecordError(err)
			span.SetStatus(codes.Error, "insert failed")
			return nil, apperr.Store("insert", locale.KeyBookingFailed, err)
		}
	}
	s.metrics.ObserveBooking("booked")
	s.logger.Info("appointment booked", "id", appt.ID, "date", appt.Date, "time", appt.Time, "service_id", appt.ServiceID)

	if s.notifier != nil {
		if err := s.notifier.AppointmentBooked(ctx, appt, lang); err != nil {
			s.logger.Warn("booking confirmation failed", "id", appt.ID, "error", err)
		}
	}
	return appt, nil
}

// Availability lists the open HH:MM slots on date.
func (s *Service) Availability(ctx context.Context, date string) ([]string, error) {
	day, err := s.schedule.ParseDate(date)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if day.Before(s.schedule.StartOfDay(now)) {
		return nil, apperr.Validation("date", locale.KeyPastDate)
	}
	booked, err := s.repo.BookedTimes(ctx, FormatDate(day))
	if err != nil {
		return nil, apperr.Store("list booked", locale.KeyServerError, err)
	}
	return s.schedule.OpenSlots(day, s.interval, booked, now), nil
}

// ServiceOptions lists the services offered in the booking form.
func (s *Service) ServiceOptions(ctx context.Context) ([]ServiceOption, error) {
	options, err := s.repo.ServiceOptions(ctx)
	if err != nil {
		return nil, apperr.Store("list services", locale.KeyServerError, err)
	}
	return options, nil
}
