// Package reviews accepts testimonials submitted through the review form.
package reviews

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lemerle/medassist/internal/apperr"
	"github.com/lemerle/medassist/internal/locale"
)

// Review is a stored testimonial.
type Review struct {
	ID        int64     `json:"id"`
	Quote     string    `json:"quote"`
	Author    string    `json:"author"`
	Star      int       `json:"star"`
	CreatedAt time.Time `json:"created_at"`
}

// SubmitRequest is the body of POST /api/ReviewForm.
type SubmitRequest struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Star   int    `json:"star"`
}

// Validate requires every field and a 1-5 star rating.
func (r *SubmitRequest) Validate() error {
	r.Quote = strings.TrimSpace(r.Quote)
	r.Author = strings.TrimSpace(r.Author)
	if r.Quote == "" || r.Author == "" || r.Star == 0 {
		return apperr.Validation("", locale.KeyReviewMissingFields)
	}
	if r.Star < 1 || r.Star > 5 {
		return apperr.Validation("star", locale.KeyReviewInvalidStar)
	}
	return nil
}

type Repository interface {
	Create(ctx context.Context, req *SubmitRequest) (*Review, error)
}

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository writes to the testimonials table.
type PostgresRepository struct {
	pool rowQuerier
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	if pool == nil {
		panic("reviews: pgx pool required")
	}
	return &PostgresRepository{pool: pool}
}

func newPostgresRepositoryWithExec(exec rowQuerier) *PostgresRepository {
	if exec == nil {
		panic("reviews: exec required")
	}
	return &PostgresRepository{pool: exec}
}

func (r *PostgresRepository) Create(ctx context.Context, req *SubmitRequest) (*Review, error) {
	query := `
		INSERT INTO testimonials (quote, author, star)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	review := &Review{Quote: req.Quote, Author: req.Author, Star: req.Star}
	if err := r.pool.QueryRow(ctx, query, req.Quote, req.Author, req.Star).
		Scan(&review.ID, &review.CreatedAt); err != nil {
		return nil, fmt.Errorf("reviews: insert failed: %w", err)
	}
	return review, nil
}

type InMemoryRepository struct {
	mu      sync.Mutex
	nextID  int64
	reviews []Review
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Create(ctx context.Context, req *SubmitRequest) (*Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	review := Review{
		ID:        r.nextID,
		Quote:     req.Quote,
		Author:    req.Author,
		Star:      req.Star,
		CreatedAt: time.Now().UTC(),
	}
	r.reviews = append(r.reviews, review)
	return &review, nil
}

func (r *InMemoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reviews)
}
