// Package dates turns natural-language date expressions into ISO calendar dates
// and validates them chronologically. Normalization and validation are separate
// steps: normalization never rejects a past date, validation never parses.
package dates

import (
	"context"
	"regexp"
	"strings"
	"time"
)

const isoLayout = "2006-01-02"

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Delegate resolves complex date expressions ("next Friday", "24th August")
// relative to a reference date. Implemented by the NLU layer.
type Delegate interface {
	NormalizeDate(ctx context.Context, expression string, referenceNow time.Time) (string, error)
}

// Normalizer maps date text to YYYY-MM-DD. ISO input short-circuits locally;
// everything else goes through the delegate.
type Normalizer struct {
	Delegate Delegate
}

// Normalize returns the ISO date for text, or ok=false when the expression
// cannot be understood. No past/future checking happens here.
func (n *Normalizer) Normalize(ctx context.Context, text string, referenceNow time.Time) (string, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(text))
	if trimmed == "" {
		return "", false
	}

	if isoDateRe.MatchString(trimmed) {
		parsed, err := time.Parse(isoLayout, trimmed)
		if err != nil {
			return "", false
		}
		return parsed.Format(isoLayout), true
	}

	if n.Delegate == nil {
		return "", false
	}
	result, err := n.Delegate.NormalizeDate(ctx, trimmed, referenceNow)
	if err != nil {
		return "", false
	}
	result = strings.TrimSpace(result)
	if !isoDateRe.MatchString(result) {
		return "", false
	}
	if _, err := time.Parse(isoLayout, result); err != nil {
		return "", false
	}
	return result, true
}

// InvalidDateError carries the user-facing reason a date pair was rejected.
type InvalidDateError struct {
	Reason string
}

func (e *InvalidDateError) Error() string { return e.Reason }

// ValidateDates checks the chronological constraints on already-normalized
// dates: departure not before today, return (when present) not before
// departure. Today itself is a valid departure day.
func ValidateDates(depart, returnDate string, now time.Time) error {
	departDay, err := time.Parse(isoLayout, depart)
	if err != nil {
		return &InvalidDateError{Reason: "Invalid date format. Please use a valid date."}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if departDay.Before(today) {
		return &InvalidDateError{Reason: "That date has passed. Please give a current or future date."}
	}

	if returnDate != "" {
		returnDay, err := time.Parse(isoLayout, returnDate)
		if err != nil {
			return &InvalidDateError{Reason: "Invalid date format. Please use a valid date."}
		}
		if returnDay.Before(departDay) {
			return &InvalidDateError{Reason: "Return date must be on or after departure date."}
		}
	}

	return nil
}
