package appointments

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemerle/medassist/internal/apperr"
	"github.com/lemerle/medassist/internal/locale"
	"github.com/lemerle/medassist/pkg/logging"
)

func fixedClock() time.Time { return time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC) }

func newTestService(repo Repository, opts ...Option) *Service {
	opts = append([]Option{WithClock(fixedClock), WithLogger(logging.New("error"))}, opts...)
	return NewService(repo, NewSchedule(time.UTC), opts...)
}

func validRequest() BookRequest {
	return BookRequest{
		Name:    "A",
		Email:   "a@x.com",
		Phone:   "123",
		Date:    "2025-06-02",
		Time:    "09:00",
		Service: "1",
	}
}

type countingRepo struct {
	Repository
	calls int
}

func (c *countingRepo) Exists(ctx context.Context, date, clock string) (bool, error) {
	c.calls++
	return c.Repository.Exists(ctx, date, clock)
}

func (c *countingRepo) Insert(ctx context.Context, appt *Appointment) error {
	c.calls++
	return c.Repository.Insert(ctx, appt)
}

type failingRepo struct {
	Repository
	existsErr error
	insertErr error
}

func (f failingRepo) Exists(context.Context, string, string) (bool, error) {
	return false, f.existsErr
}

func (f failingRepo) Insert(context.Context, *Appointment) error {
	return f.insertErr
}

type recordingNotifier struct {
	mu   sync.Mutex
	got  []*Appointment
	lang locale.Locale
	err  error
}

func (n *recordingNotifier) AppointmentBooked(_ context.Context, appt *Appointment, lang locale.Locale) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.got = append(n.got, appt)
	n.lang = lang
	return n.err
}

func TestBookEndToEnd(t *testing.T) {
	repo := NewInMemoryRepository(ServiceOption{ID: 1})
	svc := newTestService(repo)

	appt, err := svc.Book(context.Background(), validRequest(), locale.French)
	require.NoError(t, err)
	assert.NotEmpty(t, appt.ID)
	assert.Equal(t, "09:00:00", appt.Time)
	assert.Equal(t, 1, repo.Count())

	_, err = svc.Book(context.Background(), validRequest(), locale.French)
	requireKey(t, err, apperr.KindConflict, locale.KeySlotTaken)
	assert.Equal(t, 1, repo.Count())
}

func TestBookConflictOnlyForExactSlot(t *testing.T) {
	repo := NewInMemoryRepository(ServiceOption{ID: 1})
	svc := newTestService(repo)
	_, err := svc.Book(context.Background(), validRequest(), locale.English)
	require.NoError(t, err)

	again := validRequest()
	again.Time = "09:00:00"
	_, err = svc.Book(context.Background(), again, locale.English)
	requireKey(t, err, apperr.KindConflict, locale.KeySlotTaken)

	later := validRequest()
	later.Time = "09:30"
	_, err = svc.Book(context.Background(), later, locale.English)
	assert.NoError(t, err)
	assert.Equal(t, 2, repo.Count())
}

func TestBookConcurrentSameSlot(t *testing.T) {
	repo := NewInMemoryRepository(ServiceOption{ID: 1})
	svc := newTestService(repo)

	const n = 25
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Book(context.Background(), validRequest(), locale.French)
		}(i)
	}
	wg.Wait()

	var ok, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case apperr.KindOf(err) == apperr.KindConflict:
			conflicts++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, conflicts)
	assert.Equal(t, 1, repo.Count())
}

func TestBookValidationNeverTouchesStore(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BookRequest)
		key    locale.Key
	}{
		{"missing name", func(r *BookRequest) { r.Name = " " }, locale.KeyMissingFields},
		{"missing service", func(r *BookRequest) { r.Service = "" }, locale.KeyMissingFields},
		{"bad email", func(r *BookRequest) { r.Email = "not-an-email" }, locale.KeyInvalidEmail},
		{"display name email", func(r *BookRequest) { r.Email = "Bob <bob@x.com>" }, locale.KeyInvalidEmail},
		{"unparseable date", func(r *BookRequest) { r.Date = "tomorrow" }, locale.KeyInvalidDateTime},
		{"past day", func(r *BookRequest) { r.Date = "2025-05-30" }, locale.KeyPastDate},
		{"sunday", func(r *BookRequest) { r.Date = "2025-06-08" }, locale.KeyInvalidDateTime},
		{"after hours", func(r *BookRequest) { r.Time = "17:00" }, locale.KeyInvalidDateTime},
		{"non-numeric service", func(r *BookRequest) { r.Service = "massage" }, locale.KeyUnknownService},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &countingRepo{Repository: NewInMemoryRepository(ServiceOption{ID: 1})}
			svc := newTestService(repo)
			req := validRequest()
			tt.mutate(&req)

			_, err := svc.Book(context.Background(), req, locale.French)
			requireKey(t, err, apperr.KindValidation, tt.key)
			assert.Zero(t, repo.calls)
		})
	}
}

func TestBookUnknownServiceFromStore(t *testing.T) {
	svc := newTestService(NewInMemoryRepository(ServiceOption{ID: 1}))
	req := validRequest()
	req.Service = "42"
	_, err := svc.Book(context.Background(), req, locale.French)
	requireKey(t, err, apperr.KindValidation, locale.KeyUnknownService)
}

func TestBookStoreFailures(t *testing.T) {
	boom := errors.New("db down")

	_, err := newTestService(failingRepo{existsErr: boom}).Book(context.Background(), validRequest(), locale.French)
	requireKey(t, err, apperr.KindStore, locale.KeyBookingFailed)
	assert.ErrorIs(t, err, boom)

	_, err = newTestService(failingRepo{insertErr: boom}).Book(context.Background(), validRequest(), locale.French)
	requireKey(t, err, apperr.KindStore, locale.KeyBookingFailed)

	_, err = newTestService(failingRepo{insertErr: ErrSlotTaken}).Book(context.Background(), validRequest(), locale.French)
	requireKey(t, err, apperr.KindConflict, locale.KeySlotTaken)
}

func TestBookNotifies(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := newTestService(NewInMemoryRepository(ServiceOption{ID: 1}), WithNotifier(notifier))

	_, err := svc.Book(context.Background(), validRequest(), locale.Arabic)
	require.NoError(t, err)
	require.Len(t, notifier.got, 1)
	assert.Equal(t, locale.Arabic, notifier.lang)
}

func TestBookSucceedsWhenNotificationFails(t *testing.T) {
	notifier := &recordingNotifier{err: errors.New("smtp timeout")}
	repo := NewInMemoryRepository(ServiceOption{ID: 1})
	svc := newTestService(repo, WithNotifier(notifier))

	_, err := svc.Book(context.Background(), validRequest(), locale.English)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.Count())
}

func TestAvailability(t *testing.T) {
	repo := NewInMemoryRepository(ServiceOption{ID: 1})
	svc := newTestService(repo, WithSlotInterval(time.Hour))
	_, err := svc.Book(context.Background(), validRequest(), locale.French)
	require.NoError(t, err)

	slots, err := svc.Availability(context.Background(), "2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"}, slots)

	_, err = svc.Availability(context.Background(), "2025-05-31")
	requireKey(t, err, apperr.KindValidation, locale.KeyPastDate)

	_, err = svc.Availability(context.Background(), "31/05/2025")
	requireKey(t, err, apperr.KindValidation, locale.KeyInvalidDateTime)
}

func TestServiceOptions(t *testing.T) {
	svc := newTestService(NewInMemoryRepository(
		ServiceOption{ID: 2, TitleEN: "Home care"},
		ServiceOption{ID: 1, TitleEN: "Nursing"},
	))
	options, err := svc.ServiceOptions(context.Background())
	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.Equal(t, int64(1), options[0].ID)
}
