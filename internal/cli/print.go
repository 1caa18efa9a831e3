package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aalvaropc/tourbook/internal/app/template"
	"github.com/aalvaropc/tourbook/internal/domain"
)

type tourJSON struct {
	Index    int     `json:"index"`
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	Duration float64 `json:"duration"`
	Unit     string  `json:"unit"`
	Stops    int     `json:"stops"`
	Cost     float64 `json:"cost"`
	Currency string  `json:"currency"`
}

func toTourJSON(index int, t domain.Tour, cfg domain.Config) tourJSON {
	return tourJSON{
		Index:    index,
		ID:       t.ID,
		Type:     string(t.Variant),
		Name:     t.Name,
		Duration: t.Duration,
		Unit:     t.UnitLabel(),
		Stops:    t.Stops,
		Cost:     t.Cost,
		Currency: cfg.Display.Currency,
	}
}

func printTours(w io.Writer, tours []domain.Tour, cfg domain.Config, format string) error {
	switch format {
	case "json":
		out := make([]tourJSON, 0, len(tours))
		for i, t := range tours {
			out = append(out, toTourJSON(i+1, t, cfg))
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "pretty", "":
		if len(tours) == 0 {
			fmt.Fprintln(w, "(no saved tours)")
			return nil
		}
		for i, t := range tours {
			line, err := template.RenderTour(cfg.Display.RowTemplate, i+1, t, cfg.Display.Currency)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, line)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printTourDetail(w io.Writer, index int, t domain.Tour, cfg domain.Config, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toTourJSON(index, t, cfg))
	case "pretty", "":
		fmt.Fprintf(w, "Tour:     %s\n", t.Name)
		fmt.Fprintf(w, "Type:     %s (%s)\n", t.Variant.Label(), t.Variant.LabelUK())
		fmt.Fprintf(w, "Duration: %s %s\n", template.FormatNumber(t.Duration), t.UnitLabel())
		fmt.Fprintf(w, "Stops:    %d\n", t.Stops)
		fmt.Fprintf(w, "Cost:     %s %s\n", template.FormatNumber(t.Cost), cfg.Display.Currency)
		fmt.Fprintf(w, "Plan:     %s\n", t.PlanningMessage())
		if index > 0 {
			fmt.Fprintf(w, "Index:    %d\n", index)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

// printSelected renders rows keeping their catalog numbers.
func printSelected(w io.Writer, indexes []int, tours []domain.Tour, cfg domain.Config) error {
	if len(tours) == 0 {
		fmt.Fprintln(w, "(no matching tours)")
		return nil
	}
	for i, t := range tours {
		line, err := template.RenderTour(cfg.Display.RowTemplate, indexes[i], t, cfg.Display.Currency)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, line)
	}
	return nil
}
