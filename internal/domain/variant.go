package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Variant is the fixed category tag of a Tour. It is also the discriminator
// written next to every stored record.
type Variant string

const (
	VariantExcursion      Variant = "Excursion"
	VariantHiking         Variant = "Hiking"
	VariantCruise         Variant = "Cruise"
	VariantSafari         Variant = "Safari"
	VariantHorseRiding    Variant = "HorseRiding"
	VariantCycling        Variant = "Cycling"
	VariantMotorcycleTour Variant = "MotorcycleTour"
	VariantTrainTour      Variant = "TrainTour"
	VariantAirTour        Variant = "AirTour"
)

type variantInfo struct {
	label   string
	labelUK string
	plan    string
}

// Menu order matters: ParseVariant accepts 1-based positions in this slice.
var variants = []Variant{
	VariantExcursion,
	VariantHiking,
	VariantCruise,
	VariantSafari,
	VariantHorseRiding,
	VariantCycling,
	VariantMotorcycleTour,
	VariantTrainTour,
	VariantAirTour,
}

var variantTable = map[Variant]variantInfo{
	VariantExcursion: {
		label:   "Excursion",
		labelUK: "Екскурсія",
		plan:    "Planning an excursion: sightseeing tour.",
	},
	VariantHiking: {
		label:   "Hiking",
		labelUK: "Піший похід",
		plan:    "Planning a hike: building a route with stops.",
	},
	VariantCruise: {
		label:   "Cruise",
		labelUK: "Круїз",
		plan:    "Planning a cruise: city visits and on-board entertainment.",
	},
	VariantSafari: {
		label:   "Safari",
		labelUK: "Сафари",
		plan:    "Planning a safari: wildlife and exotic places.",
	},
	VariantHorseRiding: {
		label:   "Horse riding",
		labelUK: "Кінний маршрут",
		plan:    "Planning a horse ride: routes for riders.",
	},
	VariantCycling: {
		label:   "Cycling",
		labelUK: "Велосипедний маршрут",
		plan:    "Planning a cycling route: the best path for cyclists.",
	},
	VariantMotorcycleTour: {
		label:   "Motorcycle tour",
		labelUK: "Мотоциклетний маршрут",
		plan:    "Planning a motorcycle route: speed and adventure.",
	},
	VariantTrainTour: {
		label:   "Train tour",
		labelUK: "Залізнична подорож",
		plan:    "Planning a train journey: routes by rail.",
	},
	VariantAirTour: {
		label:   "Air tour",
		labelUK: "Авіаційний маршрут",
		plan:    "Planning an air tour: travel by plane.",
	},
}

// Variants returns all variants in menu order.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants)
	return out
}

func (v Variant) Valid() bool {
	_, ok := variantTable[v]
	return ok
}

// Label is the human-readable category name.
func (v Variant) Label() string {
	if info, ok := variantTable[v]; ok {
		return info.label
	}
	return string(v)
}

// LabelUK is the category name in Ukrainian.
func (v Variant) LabelUK() string {
	if info, ok := variantTable[v]; ok {
		return info.labelUK
	}
	return string(v)
}

// PlanningMessage returns the fixed planning text for the variant.
func (v Variant) PlanningMessage() string {
	if info, ok := variantTable[v]; ok {
		return info.plan
	}
	return "Planning a tour..."
}

// ParseVariant accepts a discriminator ("HorseRiding"), a label ("horse riding"),
// a snake/kebab form ("horse-riding") or a 1-based menu number ("5").
func ParseVariant(s string) (Variant, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return "", fmt.Errorf("tour type is required")
	}

	if n, err := strconv.Atoi(in); err == nil {
		if n >= 1 && n <= len(variants) {
			return variants[n-1], nil
		}
		return "", fmt.Errorf("tour type number %d out of range [1, %d]", n, len(variants))
	}

	key := normalizeVariantKey(in)
	for _, v := range variants {
		if normalizeVariantKey(string(v)) == key || normalizeVariantKey(v.Label()) == key {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown tour type %q", s)
}

func normalizeVariantKey(s string) string {
	r := strings.NewReplacer(" ", "", "_", "", "-", "")
	return strings.ToLower(r.Replace(s))
}
