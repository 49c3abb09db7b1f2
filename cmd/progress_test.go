package cmd

import (
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"shorter than max", "algebra", 20, "algebra"},
		{"exactly max", "sets", 4, "sets"},
		{"ascii cut", "thermodynamics", 6, "thermo"},
		{"multibyte cut keeps whole runes", "μαθηματικά", 4, "μαθη"},
		{"emoji cut", "🧮🧮🧮", 2, "🧮🧮"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.max)
			if got != tt.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Fatalf("truncate produced invalid UTF-8: %q", got)
			}
		})
	}
}
