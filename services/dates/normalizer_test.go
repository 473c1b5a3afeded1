package dates

import (
	"context"
	"errors"
	"testing"
	"time"
)

type delegateFunc func(ctx context.Context, expression string, referenceNow time.Time) (string, error)

func (f delegateFunc) NormalizeDate(ctx context.Context, expression string, referenceNow time.Time) (string, error) {
	return f(ctx, expression, referenceNow)
}

func TestNormalizeISOFastPath(t *testing.T) {
	// Delegate must never be consulted for ISO input.
	n := &Normalizer{Delegate: delegateFunc(func(context.Context, string, time.Time) (string, error) {
		t.Fatal("delegate called for ISO input")
		return "", nil
	})}

	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "iso passthrough", input: "2025-09-10", want: "2025-09-10", wantOK: true},
		{name: "iso with whitespace", input: "  2025-09-10 ", want: "2025-09-10", wantOK: true},
		{name: "not a calendar date", input: "2025-02-30", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := n.Normalize(context.Background(), tt.input, now)
			if ok != tt.wantOK {
				t.Fatalf("Normalize(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeDelegate(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		reply    string
		replyErr error
		wantOK   bool
		want     string
	}{
		{name: "well-formed delegate result", reply: "2025-12-01", wantOK: true, want: "2025-12-01"},
		{name: "result with whitespace", reply: " 2025-12-01\n", wantOK: true, want: "2025-12-01"},
		{name: "delegate could not parse", reply: "INVALID", wantOK: false},
		{name: "delegate returned prose", reply: "the date is 2025-12-01", wantOK: false},
		{name: "delegate returned bad calendar date", reply: "2025-13-40", wantOK: false},
		{name: "delegate errored", replyErr: errors.New("timeout"), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &Normalizer{Delegate: delegateFunc(func(context.Context, string, time.Time) (string, error) {
				return tt.reply, tt.replyErr
			})}
			got, ok := n.Normalize(context.Background(), "next friday", now)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeWithoutDelegate(t *testing.T) {
	n := &Normalizer{}
	if _, ok := n.Normalize(context.Background(), "next friday", time.Now()); ok {
		t.Fatal("natural-language input without a delegate must be unresolved")
	}
}

func TestValidateDates(t *testing.T) {
	now := time.Date(2025, 9, 1, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		depart     string
		returnDate string
		wantReason string
	}{
		{name: "future one-way", depart: "2025-09-10"},
		{name: "today is valid", depart: "2025-09-01"},
		{name: "past departure", depart: "2025-08-31", wantReason: "That date has passed. Please give a current or future date."},
		{name: "return before departure", depart: "2025-09-10", returnDate: "2025-09-05", wantReason: "Return date must be on or after departure date."},
		{name: "same-day return", depart: "2025-09-10", returnDate: "2025-09-10"},
		{name: "valid round trip", depart: "2025-09-10", returnDate: "2025-09-17"},
		{name: "garbage departure", depart: "not-a-date", wantReason: "Invalid date format. Please use a valid date."},
		{name: "garbage return", depart: "2025-09-10", returnDate: "soonish", wantReason: "Invalid date format. Please use a valid date."},
		{name: "past departure wins over bad range", depart: "2025-08-01", returnDate: "2025-07-01", wantReason: "That date has passed. Please give a current or future date."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDates(tt.depart, tt.returnDate, now)
			if tt.wantReason == "" {
				if err != nil {
					t.Fatalf("ValidateDates(%q, %q) = %v, want nil", tt.depart, tt.returnDate, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("ValidateDates(%q, %q) = nil, want %q", tt.depart, tt.returnDate, tt.wantReason)
			}
			var invalid *InvalidDateError
			if !errors.As(err, &invalid) {
				t.Fatalf("error type = %T, want *InvalidDateError", err)
			}
			if invalid.Reason != tt.wantReason {
				t.Fatalf("reason = %q, want %q", invalid.Reason, tt.wantReason)
			}
		})
	}
}
