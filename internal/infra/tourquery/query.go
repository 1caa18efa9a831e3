// Package tourquery evaluates JSONPath expressions against the catalog.
//
// The document is the JSON projection of the tour list:
//
//	[{"index":1,"id":"...","type":"Hiking","name":"...","duration":3,"stops":2,"in_hours":false,"cost":400}, ...]
//
// index is the 1-based position used by show/delete.
package tourquery

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/tourbook/internal/domain"
)

type row struct {
	Index    int     `json:"index"`
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	Duration float64 `json:"duration"`
	Stops    int     `json:"stops"`
	InHours  bool    `json:"in_hours"`
	Cost     float64 `json:"cost"`
}

// Document builds the generic JSON value jsonpath operates on.
func Document(tours []domain.Tour) (any, error) {
	rows := make([]row, 0, len(tours))
	for i, t := range tours {
		rows = append(rows, row{
			Index:    i + 1,
			ID:       t.ID,
			Type:     string(t.Variant),
			Name:     t.Name,
			Duration: t.Duration,
			Stops:    t.Stops,
			InHours:  t.IsInHours,
			Cost:     t.Cost,
		})
	}

	b, err := json.Marshal(rows)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Query evaluates expr and returns the raw jsonpath result.
func Query(tours []domain.Tour, expr string) (any, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, &domain.OpError{
			Op:   "tourquery.query",
			Kind: domain.KindValidation,
			Err:  fmt.Errorf("empty jsonpath expression"),
		}
	}

	doc, err := Document(tours)
	if err != nil {
		return nil, &domain.OpError{Op: "tourquery.document", Kind: domain.KindValidation, Err: err}
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "tourquery.query",
			Kind: domain.KindValidation,
			Err:  fmt.Errorf("jsonpath %q: %w", expr, err),
		}
	}
	return val, nil
}

// Select evaluates a filter expression and maps the matching rows back to
// their 1-based indexes, e.g. `$[?(@.type == "Hiking")]`.
func Select(tours []domain.Tour, expr string) ([]int, error) {
	val, err := Query(tours, expr)
	if err != nil {
		return nil, err
	}

	items, ok := val.([]any)
	if !ok {
		items = []any{val}
	}

	out := make([]int, 0, len(items))
	for _, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			return nil, &domain.OpError{
				Op:   "tourquery.select",
				Kind: domain.KindValidation,
				Err:  fmt.Errorf("jsonpath %q does not select whole tours", expr),
			}
		}
		idx, ok := m["index"].(float64)
		if !ok {
			return nil, &domain.OpError{
				Op:   "tourquery.select",
				Kind: domain.KindValidation,
				Err:  fmt.Errorf("jsonpath %q: selected value has no index", expr),
			}
		}
		out = append(out, int(idx))
	}
	return out, nil
}

// Format renders a query result: scalars as plain text, everything else as indented JSON.
func Format(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "null", nil
	case string:
		return t, nil
	case float64, bool:
		return fmt.Sprint(t), nil
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
