package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/lemerle/medassist/internal/locale"
)

// Repository reads the localized reference data behind the public pages.
type Repository interface {
	Services(ctx context.Context, lang locale.Locale) ([]Service, error)
	AppointmentServices(ctx context.Context) ([]AppointmentService, error)
	TeamMembers(ctx context.Context, lang locale.Locale) ([]TeamMember, error)
	PricingPlans(ctx context.Context, lang locale.Locale) ([]PricingPlan, error)
	Equipment(ctx context.Context, lang locale.Locale) ([]EquipmentRow, error)
	Partners(ctx context.Context) ([]Partner, error)
	BlogPosts(ctx context.Context, lang locale.Locale) ([]BlogPost, error)
	BlogPost(ctx context.Context, lang locale.Locale, id int64) (*BlogPost, error)
	Testimonials(ctx context.Context) ([]Testimonial, error)
}

// SQLRepository runs on database/sql. Localized columns are suffixed with
// the locale code, which is always one of the Supported values.
type SQLRepository struct {
	db *sql.DB
}

func NewSQLRepository(db *sql.DB) *SQLRepository {
	if db == nil {
		panic("content: sql db required")
	}
	return &SQLRepository{db: db}
}

func col(name string, lang locale.Locale) string {
	return fmt.Sprintf("%s_%s", name, lang)
}

func (r *SQLRepository) Services(ctx context.Context, lang locale.Locale) ([]Service, error) {
	query := fmt.Sprintf(
		`SELECT %s, %s, image, date_creation, %s FROM services ORDER BY id`,
		col("title", lang), col("description", lang), col("features", lang),
	)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("content: query services: %w", err)
	}
	defer rows.Close()

	services := make([]Service, 0)
	for rows.Next() {
		var (
			svc      Service
			created  time.Time
			features []string
		)
		if err := rows.Scan(&svc.Title, &svc.Description, &svc.Image, &created, pq.Array(&features)); err != nil {
			return nil, fmt.Errorf("content: scan service: %w", err)
		}
		svc.DateCreation = created.Format("2006-01-02")
		svc.Features = nonNil(features)
		services = append(services, svc)
	}
	return services, rows.Err()
}

func (r *SQLRepository) AppointmentServices(ctx context.Context) ([]AppointmentService, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title_fr, title_en, title_ar FROM services ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("content: query appointment services: %w", err)
	}
	defer rows.Close()

	out := make([]AppointmentService, 0)
	for rows.Next() {
		var s AppointmentService
		if err := rows.Scan(&s.ID, &s.TitleFR, &s.TitleEN, &s.TitleAR); err != nil {
			return nil, fmt.Errorf("content: scan appointment service: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// TeamMembers falls back to the base name when no localized name is stored.
func (r *SQLRepository) TeamMembers(ctx context.Context, lang locale.Locale) ([]TeamMember, error) {
	query := fmt.Sprintf(
		`SELECT COALESCE(NULLIF(%s, ''), name), %s, %s, image FROM team_members ORDER BY id`,
		col("name", lang), col("role", lang), col("bio", lang),
	)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("content: query team members: %w", err)
	}
	defer rows.Close()

	members := make([]TeamMember, 0)
	for rows.Next() {
		var m TeamMember
		if err := rows.Scan(&m.Name, &m.Role, &m.Bio, &m.Image); err != nil {
			return nil, fmt.Errorf("content: scan team member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *SQLRepository) PricingPlans(ctx context.Context, lang locale.Locale) ([]PricingPlan, error) {
	query := fmt.Sprintf(
		`SELECT %s, %s, price_monthly, price_yearly, popular, %s FROM pricing_plans ORDER BY id`,
		col("name", lang), col("description", lang), col("features", lang),
	)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("content: query pricing plans: %w", err)
	}
	defer rows.Close()

	plans := make([]PricingPlan, 0)
	for rows.Next() {
		var (
			p        PricingPlan
			features []string
		)
		if err := rows.Scan(&p.Name, &p.Description, &p.Price.Monthly, &p.Price.Yearly, &p.Popular, pq.Array(&features)); err != nil {
			return nil, fmt.Errorf("content: scan pricing plan: %w", err)
		}
		p.Features = nonNil(features)
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (r *SQLRepository) Equipment(ctx context.Context, lang locale.Locale) ([]EquipmentRow, error) {
	query := fmt.Sprintf(
		`SELECT %s, %s, %s, image, %s FROM equipment ORDER BY id`,
		col("type", lang), col("name", lang), col("description", lang), col("features", lang),
	)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("content: query equipment: %w", err)
	}
	defer rows.Close()

	out := make([]EquipmentRow, 0)
	for rows.Next() {
		var (
			e        EquipmentRow
			features []string
		)
		if err := rows.Scan(&e.Type, &e.Name, &e.Description, &e.Image, pq.Array(&features)); err != nil {
			return nil, fmt.Errorf("content: scan equipment: %w", err)
		}
		e.Features = nonNil(features)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *SQLRepository) Partners(ctx context.Context) ([]Partner, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, logo FROM partners ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("content: query partners: %w", err)
	}
	defer rows.Close()

	partners := make([]Partner, 0)
	for rows.Next() {
		var p Partner
		if err := rows.Scan(&p.Name, &p.Logo); err != nil {
			return nil, fmt.Errorf("content: scan partner: %w", err)
		}
		partners = append(partners, p)
	}
	return partners, rows.Err()
}

func blogQuery(lang locale.Locale) string {
	return fmt.Sprintf(
		`SELECT id, %s, %s, published_on, author, category, image, slug FROM blog_posts`,
		col("title", lang), col("excerpt", lang),
	)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBlogPost(row scanner) (BlogPost, error) {
	var (
		p         BlogPost
		published time.Time
	)
	if err := row.Scan(&p.ID, &p.Title, &p.Excerpt, &published, &p.Author, &p.Category, &p.Image, &p.Slug); err != nil {
		return BlogPost{}, err
	}
	p.Date = published.Format("2006-01-02")
	return p, nil
}

func (r *SQLRepository) BlogPosts(ctx context.Context, lang locale.Locale) ([]BlogPost, error) {
	rows, err := r.db.QueryContext(ctx, blogQuery(lang)+` ORDER BY published_on DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("content: query blog posts: %w", err)
	}
	defer rows.Close()

	posts := make([]BlogPost, 0)
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("content: scan blog post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// BlogPost returns nil without error when no post has that id.
func (r *SQLRepository) BlogPost(ctx context.Context, lang locale.Locale, id int64) (*BlogPost, error) {
	p, err := scanBlogPost(r.db.QueryRowContext(ctx, blogQuery(lang)+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("content: query blog post: %w", err)
	}
	return &p, nil
}

func (r *SQLRepository) Testimonials(ctx context.Context) ([]Testimonial, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT quote, author, star FROM testimonials ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("content: query testimonials: %w", err)
	}
	defer rows.Close()

	items := make([]Testimonial, 0)
	for rows.Next() {
		var t Testimonial
		if err := rows.Scan(&t.Quote, &t.Author, &t.Star); err != nil {
			return nil, fmt.Errorf("content: scan testimonial: %w", err)
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
