package content

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/lemerle/medassist/internal/locale"
	"github.com/lemerle/medassist/internal/observability/metrics"
	"github.com/lemerle/medassist/pkg/logging"
)

// Pages assembles the localized page payloads, reading through the cache
// when one is configured.
type Pages struct {
	repo    Repository
	cache   Cache
	ttl     time.Duration
	catalog *locale.Catalog
	metrics *metrics.SiteMetrics
	logger  *logging.Logger
}

type PagesConfig struct {
	Cache   Cache
	TTL     time.Duration
	Catalog *locale.Catalog
	Metrics *metrics.SiteMetrics
	Logger  *logging.Logger
}

func NewPages(repo Repository, cfg PagesConfig) *Pages {
	if repo == nil {
		panic("content: repository required")
	}
	if cfg.Catalog == nil {
		cfg.Catalog = locale.Default()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	if cfg.TTL <= 0 {
		cfg.TTL = time.Hour
	}
	return &Pages{
		repo:    repo,
		cache:   cfg.Cache,
		ttl:     cfg.TTL,
		catalog: cfg.Catalog,
		metrics: cfg.Metrics,
		logger:  cfg.Logger,
	}
}

func cacheKey(resource string, parts ...string) string {
	return strings.Join(append([]string{resource}, parts...), ":")
}

// cached returns the value under key, loading and storing it on a miss.
// Cache failures are logged and never fail the request.
func cached[T any](ctx context.Context, p *Pages, resource, key string, load func(context.Context) (T, error)) (T, error) {
	if p.cache != nil {
		data, ok, err := p.cache.Get(ctx, key)
		switch {
		case err != nil:
			p.logger.Warn("content cache read failed", "key", key, "error", err)
		case ok:
			var v T
			if err := json.Unmarshal(data, &v); err == nil {
				p.metrics.ObserveCache(resource, true)
				return v, nil
			}
			p.logger.Warn("content cache entry unreadable", "key", key)
		}
		p.metrics.ObserveCache(resource, false)
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}
	if p.cache != nil {
		if data, err := json.Marshal(v); err == nil {
			if err := p.cache.Set(ctx, key, data, p.ttl); err != nil {
				p.logger.Warn("content cache write failed", "key", key, "error", err)
			}
		}
	}
	return v, nil
}

func (p *Pages) Services(ctx context.Context, lang locale.Locale) (ServicesPage, error) {
	return cached(ctx, p, "services", cacheKey("services", string(lang)), func(ctx context.Context) (ServicesPage, error) {
		services, err := p.repo.Services(ctx, lang)
		if err != nil {
			return ServicesPage{}, err
		}
		return ServicesPage{
			Title:    p.catalog.Text(lang, locale.KeyServicesTitle),
			Subtitle: p.catalog.Text(lang, locale.KeyServicesSubtitle),
			Services: services,
		}, nil
	})
}

func (p *Pages) AppointmentServices(ctx context.Context) ([]AppointmentService, error) {
	return cached(ctx, p, "appointment-services", cacheKey("appointment-services"), p.repo.AppointmentServices)
}

func (p *Pages) Team(ctx context.Context, lang locale.Locale) (TeamPage, error) {
	return cached(ctx, p, "team-members", cacheKey("team-members", string(lang)), func(ctx context.Context) (TeamPage, error) {
		members, err := p.repo.TeamMembers(ctx, lang)
		if err != nil {
			return TeamPage{}, err
		}
		return TeamPage{
			TeamTitle:    p.catalog.Text(lang, locale.KeyTeamTitle),
			TeamSubtitle: p.catalog.Text(lang, locale.KeyTeamSubtitle),
			Members:      members,
		}, nil
	})
}

func (p *Pages) Pricing(ctx context.Context, lang locale.Locale) (PricingPage, error) {
	return cached(ctx, p, "pricing", cacheKey("pricing", string(lang)), func(ctx context.Context) (PricingPage, error) {
		plans, err := p.repo.PricingPlans(ctx, lang)
		if err != nil {
			return PricingPage{}, err
		}
		cta := p.catalog.Text(lang, locale.KeyPricingCTA)
		for i := range plans {
			plans[i].CTA = cta
		}
		return PricingPage{
			Title:    p.catalog.Text(lang, locale.KeyPricingTitle),
			Subtitle: p.catalog.Text(lang, locale.KeyPricingSubtitle),
			PricingToggle: PricingToggle{
				Monthly: p.catalog.Text(lang, locale.KeyPricingMonthly),
				Yearly:  p.catalog.Text(lang, locale.KeyPricingYearly),
			},
			Plans:      plans,
			Disclaimer: p.catalog.Text(lang, locale.KeyPricingDisclaimer),
		}, nil
	})
}

func (p *Pages) Equipment(ctx context.Context, lang locale.Locale) (EquipmentPage, error) {
	return cached(ctx, p, "equipment", cacheKey("equipment", string(lang)), func(ctx context.Context) (EquipmentPage, error) {
		rows, err := p.repo.Equipment(ctx, lang)
		if err != nil {
			return EquipmentPage{}, err
		}
		return EquipmentPage{
			Title:      p.catalog.Text(lang, locale.KeyEquipmentTitle),
			Subtitle:   p.catalog.Text(lang, locale.KeyEquipmentSubtitle),
			Categories: GroupEquipment(rows),
		}, nil
	})
}

// GroupEquipment buckets rows by lower-cased trimmed type, keeping the
// order in which each category first appears.
func GroupEquipment(rows []EquipmentRow) []EquipmentCategory {
	categories := make([]EquipmentCategory, 0)
	index := make(map[string]int)
	for _, row := range rows {
		name := strings.ToLower(strings.TrimSpace(row.Type))
		i, ok := index[name]
		if !ok {
			i = len(categories)
			index[name] = i
			categories = append(categories, EquipmentCategory{Name: name})
		}
		categories[i].Items = append(categories[i].Items, row.EquipmentItem)
	}
	return categories
}

func (p *Pages) Partners(ctx context.Context) ([]Partner, error) {
	return cached(ctx, p, "partners", cacheKey("partners"), p.repo.Partners)
}

func (p *Pages) BlogPosts(ctx context.Context, lang locale.Locale) ([]BlogPost, error) {
	return cached(ctx, p, "blog-posts", cacheKey("blog-posts", string(lang)), func(ctx context.Context) ([]BlogPost, error) {
		return p.repo.BlogPosts(ctx, lang)
	})
}

// BlogPost returns nil when the id is unknown.
func (p *Pages) BlogPost(ctx context.Context, lang locale.Locale, id int64) (*BlogPost, error) {
	key := cacheKey("blog-posts", string(lang), strconv.FormatInt(id, 10))
	return cached(ctx, p, "blog-posts", key, func(ctx context.Context) (*BlogPost, error) {
		return p.repo.BlogPost(ctx, lang, id)
	})
}

func (p *Pages) Testimonials(ctx context.Context, lang locale.Locale) (TestimonialsPage, error) {
	// Not cached: new reviews show up immediately.
	items, err := p.repo.Testimonials(ctx)
	if err != nil {
		return TestimonialsPage{}, err
	}
	return TestimonialsPage{
		Title:    p.catalog.Text(lang, locale.KeyTestimonialsTitle),
		Subtitle: p.catalog.Text(lang, locale.KeyTestimonialsSubtitle),
		Items:    items,
	}, nil
}
