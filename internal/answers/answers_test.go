package answers

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
		correct   string
		want      bool
	}{
		{"exact", "2x", "2x", true},
		{"case insensitive", "2X", "2x", true},
		{"trims whitespace", "  2x  ", "2x", true},
		{"different form rejected", "2*x", "2x", false},
		{"wrong answer", "3x", "2x", false},
		{"empty never matches", "", "2x", false},
		{"whitespace-only never matches", "   ", "2x", false},
		{"inner spacing significant", "9x² + 2", "9x²+2", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.submitted, tt.correct); got != tt.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.submitted, tt.correct, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  Cos(X) "); got != "cos(x)" {
		t.Errorf("Normalize = %q, want %q", got, "cos(x)")
	}
}
