package countries

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func newTestNormalizer() (*Normalizer, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	return NewNormalizer(logger), &buf
}

func TestNormalizeAlpha2Passthrough(t *testing.T) {
	n, _ := newTestNormalizer()

	tests := []struct {
		input string
		want  string
	}{
		{"US", "US"},
		{"us", "US"},
		{"De", "DE"},
		{"gb", "GB"},
		{"zz", "ZZ"}, // not a real code, but 2 letters = already-a-code by contract
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := n.Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeCountryNames(t *testing.T) {
	n, _ := newTestNormalizer()

	tests := []struct {
		input string
		want  string
	}{
		{"United States", "US"},
		{"Germany", "DE"},
		{"germany", "DE"},
		{"France", "FR"},
		{"United Kingdom", "GB"},
		{"Canada", "CA"},
		{"United State", "US"}, // typo, resolved by fuzzy fallback
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := n.Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeUnrecognizedPassesThrough(t *testing.T) {
	n, buf := newTestNormalizer()

	got := n.Normalize("Nowhereland")
	if got != "Nowhereland" {
		t.Errorf("Normalize(Nowhereland) = %q, want input returned verbatim", got)
	}
	if !strings.Contains(buf.String(), "could not resolve country") {
		t.Errorf("expected a warning to be logged, got: %s", buf.String())
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	n, _ := newTestNormalizer()

	// Empty country must not panic and must come back unchanged.
	if got := n.Normalize(""); got != "" {
		t.Errorf("Normalize(\"\") = %q, want \"\"", got)
	}
}

func TestNormalizeNeverMutatesResolvedCase(t *testing.T) {
	n, _ := newTestNormalizer()

	// Same input twice yields the same output: no hidden state.
	first := n.Normalize("Germany")
	second := n.Normalize("Germany")
	if first != second {
		t.Errorf("Normalize not deterministic: %q vs %q", first, second)
	}
}
