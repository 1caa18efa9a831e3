package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aalvaropc/tourbook/internal/domain"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"duration not positive", &domain.ValidationError{Field: "duration", Reason: domain.ReasonDurationNotPositive, Input: "0"}, "Duration must be greater than zero"},
		{"duration not a number", &domain.ValidationError{Field: "duration", Reason: domain.ReasonNotANumber, Input: "abc"}, "Enter a number for duration"},
		{"stops negative", &domain.ValidationError{Field: "stops", Reason: domain.ReasonStopsNegative, Input: "-1"}, "Stops cannot be negative"},
		{"stops not integer", fmt.Errorf("wrapped: %w", &domain.ValidationError{Field: "stops", Reason: domain.ReasonNotAnInteger, Input: "1.5"}), "Enter a whole number for stops"},
		{"cost not finite", &domain.ValidationError{Field: "cost", Reason: domain.ReasonNotFinite}, "The cost is too large"},
		{"control chars", &domain.ValidationError{Field: "name", Reason: domain.ReasonControlChars, Input: "a\x01"}, "The name cannot contain control characters"},
		{"index", &domain.IndexError{Index: 7, Count: 2}, "Invalid number"},
		{"persist write", &domain.OpError{Op: "tourstore.write", Kind: domain.KindPersist, Err: errors.New("disk full")}, "Could not save tours (see logs)"},
		{"persist read", &domain.OpError{Op: "tourstore.read", Kind: domain.KindPersist, Err: errors.New("permission denied")}, "Could not read saved tours (see logs)"},
		{"corrupt", &domain.OpError{Op: "tourstore.decode", Kind: domain.KindCorrupt, Path: "/tmp/x/tours.yaml", Err: domain.ErrCorrupt}, "Saved tours in tours.yaml are unreadable"},
		{"query validation", &domain.OpError{Op: "tourquery.query", Kind: domain.KindValidation, Err: errors.New("bad")}, "Invalid input"},
		{"workspace not found", &domain.OpError{Op: "workspacefinder.findroot", Kind: domain.KindNotFound, Err: domain.ErrNotFound}, "Workspace not found"},
		{"yaml with line", &domain.OpError{Op: "workspacefinder.loadconfig", Kind: domain.KindInvalidConfig, Path: "/w/tourbook.yaml", Err: errors.New("yaml: line 3: did not find expected key")}, "Invalid YAML at tourbook.yaml line 3"},
		{"invalid config", &domain.OpError{Op: "cli.config", Kind: domain.KindInvalidConfig, Err: errors.New("unknown format")}, "Invalid config"},
		{"cancelled", context.Canceled, "Cancelled"},
		{"unknown", errors.New("boom"), "Unexpected error (see logs)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := userMessage(tt.err); got != tt.want {
				t.Fatalf("userMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadNotice(t *testing.T) {
	if got := loadNotice(domain.LoadResult{Status: domain.LoadOK}); got != "" {
		t.Fatalf("expected no notice for ok store, got %q", got)
	}
	if got := loadNotice(domain.LoadResult{Status: domain.LoadNotFound}); got != "No saved tours yet" {
		t.Fatalf("unexpected not-found notice %q", got)
	}
	if got := loadNotice(domain.LoadResult{Status: domain.LoadCorrupt}); got == "" {
		t.Fatal("expected a notice for a corrupt store")
	}
}

func TestClampString(t *testing.T) {
	if got := clampString("Екскурсія", 3); got != "Екс…" {
		t.Fatalf("unexpected clamp %q", got)
	}
	if got := clampString("short", 10); got != "short" {
		t.Fatalf("unexpected clamp %q", got)
	}
	if got := clampString("x", 0); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
