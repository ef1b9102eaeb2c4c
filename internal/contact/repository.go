package contact

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for contact message storage.
type Repository interface {
	Create(ctx context.Context, req *SubmitRequest) (*Message, error)
}

// InMemoryRepository keeps messages in memory for tests and local runs.
type InMemoryRepository struct {
	mu       sync.RWMutex
	messages []*Message
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Create(ctx context.Context, req *SubmitRequest) (*Message, error) {
	msg := &Message{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}
	r.mu.Lock()
	r.messages = append(r.messages, msg)
	r.mu.Unlock()
	return msg, nil
}

// All returns a snapshot of the stored messages.
func (r *InMemoryRepository) All() []Message {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Message, 0, len(r.messages))
	for _, m := range r.messages {
		out = append(out, *m)
	}
	return out
}
