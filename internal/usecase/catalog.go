package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/aalvaropc/tourbook/internal/domain"
	"github.com/aalvaropc/tourbook/internal/ports"
	"github.com/aalvaropc/tourbook/internal/repository"
)

// Catalog is one session over the tour collection: an in-memory repository
// backed by a TourStore. Every mutation is flushed to the store right away.
// When a flush fails, memory stays the source of truth and the error is returned.
type Catalog struct {
	repo  *repository.Repository
	store ports.TourStore
	log   *slog.Logger
}

type CatalogOption func(*Catalog)

func WithLogger(l *slog.Logger) CatalogOption {
	return func(c *Catalog) {
		if l != nil {
			c.log = l
		}
	}
}

func NewCatalog(store ports.TourStore, opts ...CatalogOption) *Catalog {
	c := &Catalog{
		repo:  repository.New(),
		store: store,
		log:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open replaces the in-memory contents with what the store holds. Missing and
// corrupt stores both leave the catalog empty; the status tells them apart.
func (c *Catalog) Open(ctx context.Context) (domain.LoadResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.LoadResult{}, err
	}

	res, err := c.store.Load()
	if err != nil {
		c.log.Error("catalog.load.failed", "err", err)
		c.repo.Replace(nil)
		return res, err
	}

	c.repo.Replace(res.Tours)

	switch res.Status {
	case domain.LoadCorrupt:
		c.log.Warn("catalog.load.corrupt", "err", res.Cause)
	case domain.LoadNotFound:
		c.log.Info("catalog.load.empty")
	default:
		c.log.Info("catalog.load.ok", "tours", c.repo.Count())
	}
	return res, nil
}

func (c *Catalog) List() []domain.Tour {
	return c.repo.List()
}

func (c *Catalog) Count() int {
	return c.repo.Count()
}

// Get is 1-based.
func (c *Catalog) Get(index int) (domain.Tour, error) {
	return c.repo.GetAt(index)
}

// Add validates the tour, appends it and flushes.
func (c *Catalog) Add(ctx context.Context, t domain.Tour) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if !t.Variant.Valid() {
		return &domain.ValidationError{Field: "type", Reason: "unknown tour type", Input: string(t.Variant)}
	}

	c.repo.Add(t)
	c.log.Info("catalog.add", "id", t.ID, "type", string(t.Variant), "cost", t.Cost)
	return c.Save(ctx)
}

// Delete removes the tour at a 1-based index and flushes.
func (c *Catalog) Delete(ctx context.Context, index int) (domain.Tour, error) {
	removed, err := c.repo.RemoveAt(index)
	if err != nil {
		return domain.Tour{}, err
	}
	c.log.Info("catalog.delete", "index", index, "id", removed.ID)
	return removed, c.Save(ctx)
}

// Save flushes the full sequence.
func (c *Catalog) Save(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.store.Save(c.repo.List()); err != nil {
		c.log.Error("catalog.save.failed", "err", err, "tours", c.repo.Count())
		return err
	}
	return nil
}
