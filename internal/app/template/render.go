// Package template renders the {{field}} row templates used when listing tours.
package template

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aalvaropc/tourbook/internal/domain"
)

// RenderString replaces {{key}} placeholders with vars values.
// It returns an error if a key is missing or a placeholder is malformed.
func RenderString(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", invalidTemplate("unclosed template expression")
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", invalidTemplate("empty template expression")
		}

		value, ok := vars[key]
		if !ok {
			return "", invalidTemplate(fmt.Sprintf("unknown field %q", key))
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

// TourVars exposes a tour to a row template. index is 1-based.
func TourVars(index int, t domain.Tour, currency string) map[string]string {
	return map[string]string{
		"index":    strconv.Itoa(index),
		"id":       t.ID,
		"name":     t.Name,
		"variant":  t.Variant.Label(),
		"type":     string(t.Variant),
		"duration": FormatNumber(t.Duration),
		"unit":     t.UnitLabel(),
		"stops":    strconv.Itoa(t.Stops),
		"cost":     FormatNumber(t.Cost),
		"currency": currency,
		"plan":     t.PlanningMessage(),
	}
}

// RenderTour renders one catalog row.
func RenderTour(tmpl string, index int, t domain.Tour, currency string) (string, error) {
	return RenderString(tmpl, TourVars(index, t, currency))
}

// FormatNumber prints whole numbers without a fraction and others in shortest form.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func invalidTemplate(msg string) error {
	return &domain.OpError{
		Op:   "template.render",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("%s: %w", msg, domain.ErrInvalidConfig),
	}
}
