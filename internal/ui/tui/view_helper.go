package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/tourbook/internal/app/template"
	"github.com/aalvaropc/tourbook/internal/domain"
)

const maxRowLen = 120

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// renderRows falls back to the default row layout if the configured one is broken.
func renderRows(tours []domain.Tour, cfg domain.Config) string {
	if len(tours) == 0 {
		return "(no saved tours)"
	}

	tmpl := cfg.Display.RowTemplate
	if strings.TrimSpace(tmpl) == "" {
		tmpl = domain.DefaultRowTemplate
	}
	currency := currencyOf(cfg)

	var b strings.Builder
	for i, t := range tours {
		line, err := template.RenderTour(tmpl, i+1, t, currency)
		if err != nil {
			line, _ = template.RenderTour(domain.DefaultRowTemplate, i+1, t, currency)
		}
		b.WriteString(clampString(line, maxRowLen))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderDetail(index int, t domain.Tour, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s\n\n", index, t.Name)
	fmt.Fprintf(&b, "Type:     %s (%s)\n", t.Variant.Label(), t.Variant.LabelUK())
	fmt.Fprintf(&b, "Duration: %s %s\n", template.FormatNumber(t.Duration), t.UnitLabel())
	fmt.Fprintf(&b, "Stops:    %d\n", t.Stops)
	fmt.Fprintf(&b, "Cost:     %s %s\n\n", template.FormatNumber(t.Cost), currency)
	b.WriteString(t.PlanningMessage())
	return b.String()
}

func currencyOf(cfg domain.Config) string {
	if c := strings.TrimSpace(cfg.Display.Currency); c != "" {
		return c
	}
	return domain.DefaultConfig().Display.Currency
}

func methodLabel(t domain.Tour, method domain.CostMethod) string {
	switch {
	case t.IsInHours:
		return "hourly rate (stops not counted)"
	case method == domain.CostDurationAndStops:
		return "by duration and stops"
	default:
		return "by duration"
	}
}
