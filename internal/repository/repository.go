package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/roach88/contacts/internal/contact"
	"github.com/roach88/contacts/internal/source"
)

// ErrIllegalState is returned when a successful fetch leaves no cache to
// serve from. It signals a defect, not a recoverable condition.
var ErrIllegalState = errors.New("illegal state")

// Repository is the data API consumed by the view-models.
type Repository interface {
	GetContacts(ctx context.Context) ([]contact.Contact, error)
	GetContact(ctx context.Context, id string) (contact.Contact, error)
	SaveContact(ctx context.Context, c contact.Contact)
	UpdateContact(ctx context.Context, c contact.Contact) error
	DeleteContact(ctx context.Context, id string) error
	DeleteAllContacts(ctx context.Context) error
}

// Cached implements [Repository] with a cache-aside layer over a
// [source.DataSource].
type Cached struct {
	source  source.DataSource
	logger  *slog.Logger
	metrics *Metrics

	// cache is nil until first populated.
	cache atomic.Pointer[sync.Map]

	saves sync.WaitGroup
}

var _ Repository = (*Cached)(nil)

// Option configures a [Cached] repository.
type Option func(*Cached)

// WithLogger sets the logger used for cache and background-save events.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Cached) { r.logger = logger }
}

// WithMetrics sets the counters updated by the repository.
func WithMetrics(m *Metrics) Option {
	return func(r *Cached) { r.metrics = m }
}

func NewCached(src source.DataSource, opts ...Option) *Cached {
	r := &Cached{source: src}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.New(slog.DiscardHandler)
	}
	if r.metrics == nil {
		r.metrics = NewMetrics()
	}
	return r
}

// GetContacts returns all contacts ordered by name.
func (r *Cached) GetContacts(ctx context.Context) ([]contact.Contact, error) {
	if cached := snapshot(r.cache.Load()); len(cached) > 0 {
		r.metrics.listHits.Inc()
		return cached, nil
	}
	r.metrics.listMisses.Inc()

	fetched, err := r.source.GetContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch contacts from local data source: %w", err)
	}
	r.refresh(fetched)

	m := r.cache.Load()
	if m == nil {
		return nil, ErrIllegalState
	}
	return snapshot(m), nil
}

// GetContact returns the contact stored under id.
func (r *Cached) GetContact(ctx context.Context, id string) (contact.Contact, error) {
	if m := r.cache.Load(); m != nil {
		if v, ok := m.Load(id); ok {
			r.metrics.getHits.Inc()
			return v.(contact.Contact), nil
		}
	}
	r.metrics.getMisses.Inc()

	c, err := r.source.GetContact(ctx, id)
	if err != nil {
		return contact.Contact{}, fmt.Errorf("fetch contact from local data source: %w", err)
	}
	r.populated().Store(c.ID, c)
	return c, nil
}

// SaveContact caches c and issues the store write in the background.
// The write outlives cancellation of ctx.
func (r *Cached) SaveContact(ctx context.Context, c contact.Contact) {
	r.populated().Store(c.ID, c)

	bg := context.WithoutCancel(ctx)
	r.saves.Add(1)
	go func() {
		defer r.saves.Done()
		if err := r.source.SaveContact(bg, c); err != nil {
			r.metrics.saveFailures.Inc()
			r.logger.Warn("background save failed", "id", c.ID, "err", err)
		}
	}()
}

// UpdateContact replaces the stored contact with the same ID. The cached
// entry is replaced only if it is already cached.
func (r *Cached) UpdateContact(ctx context.Context, c contact.Contact) error {
	if err := r.source.UpdateContact(ctx, c); err != nil {
		return fmt.Errorf("update contact %s: %w", c.ID, err)
	}
	if m := r.cache.Load(); m != nil {
		if _, ok := m.Load(c.ID); ok {
			m.Store(c.ID, c)
		}
	}
	return nil
}

// DeleteContact removes the contact stored under id.
func (r *Cached) DeleteContact(ctx context.Context, id string) error {
	if err := r.source.DeleteContact(ctx, id); err != nil {
		return fmt.Errorf("delete contact %s: %w", id, err)
	}
	if m := r.cache.Load(); m != nil {
		m.Delete(id)
	}
	return nil
}

// DeleteAllContacts removes every contact.
func (r *Cached) DeleteAllContacts(ctx context.Context) error {
	if err := r.source.DeleteAllContacts(ctx); err != nil {
		return fmt.Errorf("delete all contacts: %w", err)
	}
	if m := r.cache.Load(); m != nil {
		m.Clear()
	}
	return nil
}

// Wait blocks until all background saves have completed.
func (r *Cached) Wait() {
	r.saves.Wait()
}

// refresh replaces the cache contents with contacts.
func (r *Cached) refresh(contacts []contact.Contact) {
	m := r.populated()
	m.Clear()
	for _, c := range contacts {
		m.Store(c.ID, c)
	}
	r.metrics.refreshes.Inc()
	r.logger.Debug("contacts cache refreshed", "count", len(contacts))
}

// populated returns the cache, creating it if it does not exist yet.
func (r *Cached) populated() *sync.Map {
	if m := r.cache.Load(); m != nil {
		return m
	}
	r.cache.CompareAndSwap(nil, new(sync.Map))
	return r.cache.Load()
}

// snapshot returns the cached contacts sorted by name.
// A nil cache yields nil.
func snapshot(m *sync.Map) []contact.Contact {
	if m == nil {
		return nil
	}
	contacts := []contact.Contact{}
	m.Range(func(_, value any) bool {
		contacts = append(contacts, value.(contact.Contact))
		return true
	})
	contact.SortByName(contacts)
	return contacts
}

// Metrics returns the counters updated by the repository.
func (r *Cached) Metrics() *Metrics {
	return r.metrics
}
