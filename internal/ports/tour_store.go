package ports

import "github.com/aalvaropc/tourbook/internal/domain"

// TourStore persists the full ordered tour sequence to a backing store.
type TourStore interface {
	Save(tours []domain.Tour) error
	// Load never propagates a parse failure: corrupt data yields LoadCorrupt.
	Load() (domain.LoadResult, error)
}
