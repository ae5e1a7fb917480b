// Package countries resolves free-form country strings to ISO 3166-1
// alpha-2 codes for outbound shipment addresses.
package countries

import (
	"log/slog"
	"sort"
	"strings"
	"unicode"

	ref "github.com/biter777/countries"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Normalizer converts country names to 2-letter codes. Resolution is
// total: input that cannot be resolved is returned verbatim with a
// warning, so address mapping never blocks on an unrecognized country.
type Normalizer struct {
	logger *slog.Logger

	// Reference list built once from the ISO registry.
	names  []string
	byName map[string]ref.CountryCode
}

// NewNormalizer builds the reference country table.
func NewNormalizer(logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}

	all := ref.All()
	n := &Normalizer{
		logger: logger,
		names:  make([]string, 0, len(all)),
		byName: make(map[string]ref.CountryCode, len(all)),
	}
	for _, c := range all {
		if !c.IsValid() {
			continue
		}
		name := c.String()
		n.names = append(n.names, name)
		n.byName[strings.ToLower(name)] = c
	}
	return n
}

// Normalize resolves a country string to its alpha-2 code.
//
//   - 2-letter alphabetic input is treated as an existing code and
//     uppercased without any lookup.
//   - Otherwise the registry is consulted by name, then by fuzzy match.
//   - On a miss the input is returned unchanged and a warning is logged.
func (n *Normalizer) Normalize(country string) string {
	trimmed := strings.TrimSpace(country)

	if isAlpha2(trimmed) {
		return strings.ToUpper(trimmed)
	}

	// Registry lookup covers official names and common aliases
	// ("United States", "USA", "Germany", ...).
	if code := ref.ByName(trimmed); code != ref.Unknown && code.IsValid() {
		return code.Alpha2()
	}

	if code, ok := n.fuzzyMatch(trimmed); ok {
		return code
	}

	n.logger.Warn("could not resolve country to alpha-2 code", slog.String("country", country))
	return country
}

// fuzzyMatch ranks the reference names against the input and returns
// the closest match's alpha-2 code.
func (n *Normalizer) fuzzyMatch(input string) (string, bool) {
	if input == "" {
		return "", false
	}

	ranks := fuzzy.RankFindNormalizedFold(input, n.names)
	if len(ranks) == 0 {
		return "", false
	}
	sort.Sort(ranks)

	code, ok := n.byName[strings.ToLower(ranks[0].Target)]
	if !ok {
		return "", false
	}
	return code.Alpha2(), true
}

// isAlpha2 reports whether s is exactly two ASCII letters.
func isAlpha2(s string) bool {
	if len(s) != 2 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
