// README: Latin→Cyrillic transliteration for Uzbek place names.
package translit

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// exceptions maps whole place names whose sounds do not decompose
// letter-by-letter. Keys are lowercase; hits bypass the rule table.
var exceptions = map[string]string{
	"fargʻona":   "Фарғона",
	"farg'ona":   "Фарғона",
	"fargona":    "Фарғона",
	"toshkent":   "Тошкент",
	"samarkand":  "Самарқанд",
	"samarqand":  "Самарқанд",
	"shahrisabz": "Шаҳрисабз",
	"qarshi":     "Қарши",
	"namangan":   "Наманган",
	"andijon":    "Андижон",
}

// apostrophes are the glyphs accepted as the Uzbek modifier mark. All are
// interchangeable: after o/g they form ў/ғ, on their own they are elided.
var apostrophes = []string{"’", "'", "ʻ", "‘", "`"}

type rule struct {
	from string
	to   string
}

// rules is ordered longest-from first so digraphs win over their component
// letters ("sh" must not become с+ҳ).
var rules []rule

func init() {
	base := map[string]string{
		"yo": "ё", "yu": "ю", "ya": "я", "ye": "е",
		"sh": "ш", "ch": "ч", "ng": "нг",
		"a": "а", "b": "б", "d": "д", "e": "э", "f": "ф",
		"g": "г", "h": "ҳ", "i": "и", "j": "ж", "k": "к",
		"l": "л", "m": "м", "n": "н", "o": "о", "p": "п",
		"q": "қ", "r": "р", "s": "с", "t": "т", "u": "у",
		"v": "в", "x": "х", "y": "й", "z": "з",
	}
	for _, ap := range apostrophes {
		base["o"+ap] = "ў"
		base["g"+ap] = "ғ"
		base[ap] = ""
	}

	for from, to := range base {
		rules = append(rules, rule{from, to})
		if upper := strings.ToUpper(from); upper != from {
			rules = append(rules, rule{upper, strings.ToUpper(to)})
		}
		if title := capitalizeFirst(from); title != from && title != strings.ToUpper(from) {
			rules = append(rules, rule{title, capitalizeFirst(to)})
		}
	}
	sort.Slice(rules, func(i, j int) bool {
		if len(rules[i].from) != len(rules[j].from) {
			return len(rules[i].from) > len(rules[j].from)
		}
		return rules[i].from < rules[j].from
	})
}

// LatinToCyrillic converts a Latin-script Uzbek place name to Cyrillic.
// The scan is a single left-to-right pass over the input, so substituted
// output can never be converted twice. Characters without a rule pass
// through unchanged. The result is title-cased: first letter upper, rest
// lower, whatever the input casing was.
func LatinToCyrillic(text string) string {
	s := strings.TrimSpace(text)
	if s == "" {
		return s
	}

	if repl, ok := exceptions[strings.ToLower(s)]; ok {
		return repl
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		matched := false
		for _, r := range rules {
			if strings.HasPrefix(s[i:], r.from) {
				b.WriteString(r.to)
				i += len(r.from)
				matched = true
				break
			}
		}
		if !matched {
			_, size := utf8.DecodeRuneInString(s[i:])
			b.WriteString(s[i : i+size])
			i += size
		}
	}

	return capitalizeLower(b.String())
}

// capitalizeFirst upper-cases the first rune only.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// capitalizeLower upper-cases the first rune and lower-cases the rest.
func capitalizeLower(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
