package tui

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/tourbook/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindNotFound:
			if strings.Contains(oe.Op, "workspacefinder.findroot") {
				return "Workspace not found"
			}
			return "Not found"

		case domain.KindPersist:
			if strings.Contains(oe.Op, "read") {
				return "Could not read saved tours (see logs)"
			}
			return "Could not save tours (see logs)"

		case domain.KindCorrupt:
			return "Saved tours in " + baseOr(oe.Path, "the store") + " are unreadable"

		case domain.KindValidation:
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				return validationMessage(ve)
			}
			return "Invalid input"

		case domain.KindInvalidConfig:
			base := baseOr(oe.Path, "config")

			line := extractLine(err.Error())
			if line != "" {
				return "Invalid YAML at " + base + " line " + line
			}

			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid config"

		default:
			return "Unexpected error (see logs)"
		}
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return validationMessage(ve)
	}
	var ie *domain.IndexError
	if errors.As(err, &ie) {
		return "Invalid number"
	}
	if errors.Is(err, context.Canceled) {
		return "Cancelled"
	}

	if looksLikeYAMLProblem(err.Error()) {
		line := extractLine(err.Error())
		if line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

func validationMessage(ve *domain.ValidationError) string {
	switch ve.Reason {
	case domain.ReasonDurationNotPositive:
		return "Duration must be greater than zero"
	case domain.ReasonStopsNegative:
		return "Stops cannot be negative"
	case domain.ReasonNotANumber:
		return "Enter a number for " + ve.Field
	case domain.ReasonNotAnInteger:
		return "Enter a whole number for " + ve.Field
	case domain.ReasonNotFinite:
		return "The " + ve.Field + " is too large"
	case domain.ReasonControlChars:
		return "The " + ve.Field + " cannot contain control characters"
	}
	return "Invalid " + ve.Field
}

// loadNotice is shown on the first screen after opening the store.
func loadNotice(res domain.LoadResult) string {
	switch res.Status {
	case domain.LoadCorrupt:
		return "Saved tours could not be read; starting with an empty catalog"
	case domain.LoadNotFound:
		return "No saved tours yet"
	}
	return ""
}

func baseOr(path, fallback string) string {
	if strings.TrimSpace(path) == "" {
		return fallback
	}
	return filepath.Base(path)
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
