package domain

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

const (
	ReasonDurationNotPositive = "duration<=0"
	ReasonStopsNegative       = "stops<0"
	ReasonNotANumber          = "not a number"
	ReasonNotAnInteger        = "not an integer"
	ReasonNotFinite           = "not finite"
	ReasonControlChars        = "control characters"
)

const (
	costPerDay  = 100
	costPerStop = 50
	costPerHour = 5
)

// Tour is a single planned trip. Variant is fixed at construction.
// Cost is derived by the cost formulas below and is never user-entered.
type Tour struct {
	ID        string
	Variant   Variant
	Name      string
	Duration  float64
	Stops     int
	IsInHours bool
	Cost      float64
}

// NewTour returns an unvalidated skeleton. An empty name defaults to the variant label.
func NewTour(v Variant, name string) Tour {
	name = strings.TrimSpace(name)
	if name == "" {
		name = v.Label()
	}
	return Tour{
		ID:      uuid.NewString(),
		Variant: v,
		Name:    name,
	}
}

// Validate fails when duration <= 0 or stops < 0. stops == 0 is valid.
// Duration and cost must also be finite, and the name single-line text.
func (t Tour) Validate() error {
	if !(t.Duration > 0) {
		return &ValidationError{Field: "duration", Reason: ReasonDurationNotPositive}
	}
	if math.IsInf(t.Duration, 0) {
		return &ValidationError{Field: "duration", Reason: ReasonNotFinite}
	}
	if t.Stops < 0 {
		return &ValidationError{Field: "stops", Reason: ReasonStopsNegative}
	}
	if math.IsNaN(t.Cost) || math.IsInf(t.Cost, 0) {
		return &ValidationError{Field: "cost", Reason: ReasonNotFinite}
	}
	if hasControlChars(t.Name) {
		return &ValidationError{Field: "name", Reason: ReasonControlChars, Input: t.Name}
	}
	return nil
}

// ParseName trims s and rejects control characters, which the XML store cannot carry.
// An empty result is allowed; NewTour then falls back to the variant label.
func ParseName(s string) (string, error) {
	name := strings.TrimSpace(s)
	if hasControlChars(name) {
		return "", &ValidationError{Field: "name", Reason: ReasonControlChars, Input: s}
	}
	return name, nil
}

func hasControlChars(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) >= 0
}

func (t Tour) PlanningMessage() string {
	return t.Variant.PlanningMessage()
}

// UnitLabel is "hours" or "days".
func (t Tour) UnitLabel() string {
	if t.IsInHours {
		return "hours"
	}
	return "days"
}

func CalculateCostByDuration(duration float64) float64 {
	return duration * costPerDay
}

func CalculateCostByDurationAndStops(duration float64, stops int) float64 {
	return duration*costPerDay + float64(stops)*costPerStop
}

func CalculateCostInHours(hours float64) float64 {
	return hours * costPerHour
}

// CostMethod is the user's pricing choice for day-based tours.
type CostMethod int

const (
	CostDurationOnly CostMethod = iota + 1
	CostDurationAndStops
)

func (m CostMethod) String() string {
	switch m {
	case CostDurationOnly:
		return "duration"
	case CostDurationAndStops:
		return "duration+stops"
	default:
		return "unknown"
	}
}

// ParseCostMethod accepts "1"/"2" (menu numbers) or "duration"/"duration+stops".
func ParseCostMethod(s string) (CostMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "duration", "duration-only":
		return CostDurationOnly, nil
	case "2", "duration+stops", "duration-and-stops", "stops":
		return CostDurationAndStops, nil
	default:
		return 0, &ValidationError{Field: "cost method", Reason: "unknown method", Input: s}
	}
}

// ParseDuration parses a positive real number. A decimal comma is accepted.
func ParseDuration(s string) (float64, error) {
	in := strings.TrimSpace(s)
	f, err := strconv.ParseFloat(strings.ReplaceAll(in, ",", "."), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &ValidationError{Field: "duration", Reason: ReasonNotANumber, Input: s}
	}
	if f <= 0 {
		return 0, &ValidationError{Field: "duration", Reason: ReasonDurationNotPositive, Input: s}
	}
	return f, nil
}

// ParseStops parses a non-negative integer.
func ParseStops(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &ValidationError{Field: "stops", Reason: ReasonNotAnInteger, Input: s}
	}
	if n < 0 {
		return 0, &ValidationError{Field: "stops", Reason: ReasonStopsNegative, Input: s}
	}
	return n, nil
}
