package iata

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode string
		wantOK   bool
	}{
		{name: "metro city", input: "London", wantCode: "LON", wantOK: true},
		{name: "metro city two words", input: "New York", wantCode: "NYC", wantOK: true},
		{name: "metro city uppercase", input: "PARIS", wantCode: "PAR", wantOK: true},
		{name: "specific airport", input: "Heathrow", wantCode: "LHR", wantOK: true},
		{name: "airport code passthrough", input: "JFK", wantCode: "JFK", wantOK: true},
		{name: "lowercase code passthrough", input: "lhr", wantCode: "LHR", wantOK: true},
		{name: "unknown code passes through as-is", input: "xyz", wantCode: "XYZ", wantOK: true},
		{name: "whitespace trimmed", input: "  london  ", wantCode: "LON", wantOK: true},
		{name: "substring match", input: "london city airport", wantCode: "LON", wantOK: true},
		{name: "metro beats airport on substring", input: "new york jfk area", wantCode: "NYC", wantOK: true},
		{name: "pakistani airport", input: "Lahore", wantCode: "LHE", wantOK: true},
		{name: "unresolvable", input: "Zzqqx", wantCode: "", wantOK: false},
		{name: "empty", input: "", wantCode: "", wantOK: false},
		{name: "blank", input: "   ", wantCode: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := Resolve(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("Resolve(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if code != tt.wantCode {
				t.Fatalf("Resolve(%q) = %q, want %q", tt.input, code, tt.wantCode)
			}
		})
	}
}

// Canonical codes must round-trip unchanged: resolving a resolver output is a
// no-op. Guards against tables ever mapping a code to a different code.
func TestResolveIdempotent(t *testing.T) {
	for _, name := range KnownPlaceNames() {
		code, ok := Resolve(name)
		if !ok {
			t.Fatalf("known name %q did not resolve", name)
		}
		again, ok := Resolve(code)
		if !ok || again != code {
			t.Fatalf("Resolve(%q) = %q, %v; want %q round-trip", code, again, ok, code)
		}
	}
}
