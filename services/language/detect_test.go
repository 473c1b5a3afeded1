package language

import "testing"

func TestToBCP47(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "bare english", input: "en", want: "en-US"},
		{name: "bare urdu", input: "ur", want: "ur-PK"},
		{name: "uppercase code", input: "FR", want: "fr-FR"},
		{name: "already tagged", input: "ar-SA", want: "ar-SA"},
		{name: "unknown code", input: "xx", want: "en-US"},
		{name: "empty", input: "", want: "en-US"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToBCP47(tt.input); got != tt.want {
				t.Fatalf("ToBCP47(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPrimary(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "en-US", want: "en"},
		{input: "ur-PK", want: "ur"},
		{input: "en", want: "en"},
		{input: "ZH-CN", want: "zh"},
	}

	for _, tt := range tests {
		if got := Primary(tt.input); got != tt.want {
			t.Fatalf("Primary(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "english sentence", input: "I want to fly to London next Friday", want: "en-US", wantOK: true},
		{name: "too short", input: "k", wantOK: false},
		{name: "empty", input: "   ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := d.Detect(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("Detect(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if tt.wantOK && got != tt.want {
				t.Fatalf("Detect(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
