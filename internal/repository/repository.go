// Package repository holds the in-memory, ordered tour collection of a session.
//
// Insertion order is display order and the basis of 1-based indexes.
// Callers validate before Add; the repository does not.
package repository

import "github.com/aalvaropc/tourbook/internal/domain"

type Repository struct {
	tours []domain.Tour
}

func New(tours ...domain.Tour) *Repository {
	r := &Repository{tours: make([]domain.Tour, 0, len(tours))}
	r.tours = append(r.tours, tours...)
	return r
}

func (r *Repository) Add(t domain.Tour) {
	r.tours = append(r.tours, t)
}

// List returns a copy in insertion order.
func (r *Repository) List() []domain.Tour {
	out := make([]domain.Tour, len(r.tours))
	copy(out, r.tours)
	return out
}

// GetAt is 1-based.
func (r *Repository) GetAt(index int) (domain.Tour, error) {
	if err := r.checkIndex(index); err != nil {
		return domain.Tour{}, err
	}
	return r.tours[index-1], nil
}

// RemoveAt is 1-based; later entries shift down by one.
func (r *Repository) RemoveAt(index int) (domain.Tour, error) {
	if err := r.checkIndex(index); err != nil {
		return domain.Tour{}, err
	}
	removed := r.tours[index-1]
	r.tours = append(r.tours[:index-1], r.tours[index:]...)
	return removed, nil
}

func (r *Repository) Count() int {
	return len(r.tours)
}

// Replace swaps the whole sequence, e.g. after a reload.
func (r *Repository) Replace(tours []domain.Tour) {
	r.tours = make([]domain.Tour, len(tours))
	copy(r.tours, tours)
}

func (r *Repository) checkIndex(index int) error {
	if index < 1 || index > len(r.tours) {
		return &domain.IndexError{Index: index, Count: len(r.tours)}
	}
	return nil
}
