package resume

import "testing"

func TestExtractText_RejectsNonPDF(t *testing.T) {
	if _, err := ExtractText([]byte("definitely not a pdf")); err == nil {
		t.Fatal("expected error for non-PDF bytes")
	}
}

func TestExtractText_RejectsEmpty(t *testing.T) {
	if _, err := ExtractText(nil); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"space runs collapse", "Jane   Doe\t\tEngineer", "Jane Doe Engineer"},
		{"newlines survive", "Summary\nBuilds systems", "Summary\nBuilds systems"},
		{"non-breaking spaces become plain", "Jane Doe   Engineer", "Jane Doe Engineer"},
		{"surrounding whitespace trimmed", "  Jane Doe  ", "Jane Doe"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizeWhitespace(tc.in); got != tc.want {
				t.Fatalf("normalizeWhitespace(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
