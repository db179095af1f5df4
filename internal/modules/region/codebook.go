// README: Canonical region names and the persisted region codebook.
package region

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"karvon/internal/translit"
)

// ErrUnknownRegion marks a canonical region name absent from the codebook's
// vocabulary. Surfaced to the caller as a client error.
var ErrUnknownRegion = errors.New("unknown region")

// Canonical reduces free-form user input ("Toshkent,Chorsu") to the
// canonical region form: the part before the first comma, transliterated to
// Cyrillic and lowercased.
func Canonical(raw string) string {
	part := raw
	if i := strings.Index(part, ","); i >= 0 {
		part = part[:i]
	}
	return strings.ToLower(translit.LatinToCyrillic(strings.TrimSpace(part)))
}

// Codebook maps canonical region names to stable integer identifiers.
// Identifiers follow the deterministic sort order of the vocabulary, never
// insertion order, so a codebook rebuilt from the same vocabulary assigns
// the same identifiers. The fitted codebook is persisted next to the price
// model trained with it; serving must load that artifact rather than refit.
type Codebook struct {
	Names []string
	Index map[string]int
}

// BuildCodebook fits a codebook over the given region names. Names are
// lowercased and deduplicated; identifiers are positions in the sorted
// vocabulary.
func BuildCodebook(names []string) *Codebook {
	seen := make(map[string]struct{}, len(names))
	uniq := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		uniq = append(uniq, n)
	}
	sort.Strings(uniq)

	index := make(map[string]int, len(uniq))
	for i, n := range uniq {
		index[n] = i
	}
	return &Codebook{Names: uniq, Index: index}
}

// Encode returns the identifier for a canonical region name.
func (c *Codebook) Encode(name string) (int, error) {
	id, ok := c.Index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownRegion, name)
	}
	return id, nil
}

// Len returns the vocabulary size.
func (c *Codebook) Len() int {
	return len(c.Names)
}
