package tourquery

import (
	"strings"
	"testing"

	"github.com/aalvaropc/tourbook/internal/domain"
)

func sample() []domain.Tour {
	return []domain.Tour{
		{ID: "a", Variant: domain.VariantHiking, Name: "Carpathians", Duration: 3, Stops: 2, Cost: 400},
		{ID: "b", Variant: domain.VariantAirTour, Name: "Sky", Duration: 5, IsInHours: true, Cost: 25},
		{ID: "c", Variant: domain.VariantHiking, Name: "Crimea", Duration: 1, Cost: 100},
	}
}

func TestQuery_Names(t *testing.T) {
	val, err := Query(sample(), "$[*].name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	arr, ok := val.([]any)
	if !ok || len(arr) != 3 {
		t.Fatalf("expected 3 names, got %#v", val)
	}
	if arr[0] != "Carpathians" || arr[2] != "Crimea" {
		t.Fatalf("unexpected names %#v", arr)
	}
}

func TestQuery_Scalar(t *testing.T) {
	val, err := Query(sample(), "$[1].cost")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != float64(25) {
		t.Fatalf("expected 25, got %#v", val)
	}
}

func TestQuery_EmptyExpression(t *testing.T) {
	_, err := Query(sample(), "  ")
	if !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestQuery_InvalidExpression(t *testing.T) {
	_, err := Query(sample(), "$[?(@.cost >")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSelect_Filter(t *testing.T) {
	got, err := Select(sample(), `$[?(@.type == "Hiking")]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Fatalf("expected [1 3], got %v", got)
	}
}

func TestSelect_RejectsNonTourValues(t *testing.T) {
	_, err := Select(sample(), "$[*].name")
	if err == nil || !strings.Contains(err.Error(), "whole tours") {
		t.Fatalf("expected whole-tours error, got %v", err)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, "null"},
		{"x", "x"},
		{float64(2.5), "2.5"},
		{true, "true"},
	}
	for _, c := range cases {
		got, err := Format(c.in)
		if err != nil || got != c.want {
			t.Errorf("Format(%#v) = %q, %v; want %q", c.in, got, err, c.want)
		}
	}

	out, err := Format([]any{"a", "b"})
	if err != nil || !strings.Contains(out, "\"a\"") {
		t.Fatalf("expected JSON array, got %q %v", out, err)
	}
}
