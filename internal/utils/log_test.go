package utils

import "testing"

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		limit  int
		expect string
	}{
		{
			name:   "returns empty when limit non-positive",
			input:  "Senior Data Scientist",
			limit:  0,
			expect: "",
		},
		{
			name:   "shorter than limit",
			input:  "PhD",
			limit:  10,
			expect: "PhD",
		},
		{
			name:   "truncates and adds ellipsis",
			input:  "Certified AWS Solutions Architect",
			limit:  9,
			expect: "Certified...",
		},
		{
			name:   "trims surrounding whitespace",
			input:  "  resume  ",
			limit:  5,
			expect: "resum...",
		},
		{
			name:   "counts runes, not bytes",
			input:  "日本語の履歴書",
			limit:  3,
			expect: "日本語...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateForLog(tt.input, tt.limit); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestPreview(t *testing.T) {
	t.Parallel()

	input := "\n    Sarah Johnson\n    Senior Data Scientist\n\n    EDUCATION:"
	if got := Preview(input, 100); got != "Sarah Johnson Senior Data Scientist EDUCATION:" {
		t.Fatalf("unexpected preview %q", got)
	}

	if got := Preview(input, 5); got != "Sarah..." {
		t.Fatalf("unexpected truncated preview %q", got)
	}
}
