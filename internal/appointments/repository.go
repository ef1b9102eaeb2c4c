package appointments

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrSlotTaken is returned when the (date, time) pair is already booked.
	ErrSlotTaken = errors.New("appointments: slot already booked")

	// ErrUnknownService is returned when the service id has no matching row.
	ErrUnknownService = errors.New("appointments: unknown service")
)

// Repository persists appointments. Insert must be atomic with respect to
// the (date, time) uniqueness rule.
type Repository interface {
	Exists(ctx context.Context, date, clock string) (bool, error)
	Insert(ctx context.Context, appt *Appointment) error
	BookedTimes(ctx context.Context, date string) ([]string, error)
	ServiceOptions(ctx context.Context) ([]ServiceOption, error)
}

// InMemoryRepository keeps appointments in a map guarded by a mutex.
type InMemoryRepository struct {
	mu       sync.RWMutex
	bySlot   map[string]*Appointment
	services map[int64]ServiceOption
}

// NewInMemoryRepository seeds the repository with the bookable services.
func NewInMemoryRepository(services ...ServiceOption) *InMemoryRepository {
	r := &InMemoryRepository{
		bySlot:   make(map[string]*Appointment),
		services: make(map[int64]ServiceOption, len(services)),
	}
	for _, svc := range services {
		r.services[svc.ID] = svc
	}
	return r
}

func slotKey(date, clock string) string {
	return date + "T" + clock
}

func (r *InMemoryRepository) Exists(ctx context.Context, date, clock string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.bySlot[slotKey(date, clock)]
	return ok, nil
}

func (r *InMemoryRepository) Insert(ctx context.Context, appt *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.services[appt.ServiceID]; !ok {
		return ErrUnknownService
	}
	key := slotKey(appt.Date, appt.Time)
	if _, ok := r.bySlot[key]; ok {
		return ErrSlotTaken
	}
	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	appt.CreatedAt = time.Now().UTC()
	stored := *appt
	r.bySlot[key] = &stored
	return nil
}

func (r *InMemoryRepository) BookedTimes(ctx context.Context, date string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []string
	for _, appt := range r.bySlot {
		if appt.Date == date {
			out = append(out, appt.Time)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *InMemoryRepository) ServiceOptions(ctx context.Context) ([]ServiceOption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ServiceOption, 0, len(r.services))
	for _, svc := range r.services {
		out = append(out, svc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Count returns the number of stored appointments.
func (r *InMemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bySlot)
}
