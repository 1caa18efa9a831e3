package usecase

import (
	"math"

	"github.com/aalvaropc/tourbook/internal/domain"
)

// TourDraft is a tour under construction in the "new tour" flow.
// Cost can only be set through ComputeCost.
type TourDraft struct {
	tour domain.Tour
}

// CreateTour starts an unvalidated draft. An empty name defaults to the variant label.
func CreateTour(v domain.Variant, name string) *TourDraft {
	return &TourDraft{tour: domain.NewTour(v, name)}
}

func (d *TourDraft) SetDurationUnit(isInHours bool) {
	d.tour.IsInHours = isInHours
}

// SetDuration parses a positive real number; the draft is unchanged on error.
func (d *TourDraft) SetDuration(value string) error {
	f, err := domain.ParseDuration(value)
	if err != nil {
		return err
	}
	d.tour.Duration = f
	return nil
}

// SetStops parses a non-negative integer; the draft is unchanged on error.
func (d *TourDraft) SetStops(value string) error {
	n, err := domain.ParseStops(value)
	if err != nil {
		return err
	}
	d.tour.Stops = n
	return nil
}

// ComputeCost validates the draft, applies SelectCost and stores the result.
func (d *TourDraft) ComputeCost(method domain.CostMethod) (float64, error) {
	if method != domain.CostDurationOnly && method != domain.CostDurationAndStops {
		return 0, &domain.ValidationError{Field: "cost method", Reason: "unknown method", Input: method.String()}
	}
	if err := d.tour.Validate(); err != nil {
		return 0, err
	}
	cost := SelectCost(d.tour, method)
	if math.IsInf(cost, 0) || math.IsNaN(cost) {
		return 0, &domain.ValidationError{Field: "cost", Reason: domain.ReasonNotFinite}
	}
	d.tour.Cost = cost
	return d.tour.Cost, nil
}

// Tour returns a copy of the draft's current state.
func (d *TourDraft) Tour() domain.Tour {
	return d.tour
}

// SelectCost applies the pricing policy. Hour-based tours are always priced by
// hours and never include stops, whatever method was picked.
func SelectCost(t domain.Tour, method domain.CostMethod) float64 {
	if t.IsInHours {
		return domain.CalculateCostInHours(t.Duration)
	}
	if method == domain.CostDurationAndStops {
		return domain.CalculateCostByDurationAndStops(t.Duration, t.Stops)
	}
	return domain.CalculateCostByDuration(t.Duration)
}
