// Package match resolves a food phrase to a catalog entry.
//
// Rules are tried in priority order and the first hit wins:
//
//  1. the phrase equals a food's canonical name
//  2. the phrase equals one of a food's aliases
//  3. the phrase contains one of a food's aliases
//
// Within a rule, catalog order breaks ties. Comparison is case-insensitive
// and accent-insensitive. There is no fuzzy matching.
package match

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/cognicore/nutri/pkg/nutri/catalog"
)

// Kind records which rule produced a match.
type Kind int

const (
	None Kind = iota
	Name
	Alias
	Substring
)

func (k Kind) String() string {
	switch k {
	case Name:
		return "name"
	case Alias:
		return "alias"
	case Substring:
		return "substring"
	default:
		return "none"
	}
}

// MarshalText renders the kind as its lowercase name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a kind written by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "name":
		*k = Name
	case "alias":
		*k = Alias
	case "substring":
		*k = Substring
	case "none", "":
		*k = None
	default:
		return fmt.Errorf("unknown match kind %q", text)
	}
	return nil
}

// Matcher is an index over a catalog. It is read-only after New and safe
// for concurrent use.
type Matcher struct {
	cat       *catalog.Catalog
	byName    map[string]int
	byAlias   map[string]int
	aliases   [][]string // folded aliases per catalog position
	wholeWord bool
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithWholeWord restricts substring matching to aliases that appear as
// whole words in the phrase, so "eggplant" no longer matches "egg".
func WithWholeWord(on bool) Option {
	return func(m *Matcher) { m.wholeWord = on }
}

// New indexes cat.
func New(cat *catalog.Catalog, opts ...Option) *Matcher {
	m := &Matcher{
		cat:     cat,
		byName:  make(map[string]int, cat.Len()),
		byAlias: make(map[string]int),
		aliases: make([][]string, cat.Len()),
	}
	for _, opt := range opts {
		opt(m)
	}

	for i := 0; i < cat.Len(); i++ {
		item := cat.At(i)
		if key := Fold(item.Name); key != "" {
			if _, seen := m.byName[key]; !seen {
				m.byName[key] = i
			}
		}
		for _, a := range item.Aliases {
			key := Fold(a)
			if key == "" {
				continue
			}
			if _, seen := m.byAlias[key]; !seen {
				m.byAlias[key] = i
			}
			m.aliases[i] = append(m.aliases[i], key)
		}
	}
	return m
}

// Match finds the food for phrase. A nil item with Kind None is the normal
// no-match outcome.
func (m *Matcher) Match(phrase string) (*catalog.FoodItem, Kind) {
	p := Fold(phrase)
	if p == "" {
		return nil, None
	}
	if i, ok := m.byName[p]; ok {
		return m.cat.At(i), Name
	}
	if i, ok := m.byAlias[p]; ok {
		return m.cat.At(i), Alias
	}
	for i, aliases := range m.aliases {
		for _, a := range aliases {
			if m.contains(p, a) {
				return m.cat.At(i), Substring
			}
		}
	}
	return nil, None
}

func (m *Matcher) contains(phrase, alias string) bool {
	if !m.wholeWord {
		return strings.Contains(phrase, alias)
	}
	return containsWord(phrase, alias)
}

// containsWord reports whether word occurs in s bounded by non-alphanumeric
// runes or the ends of s.
func containsWord(s, word string) bool {
	for start := 0; start <= len(s)-len(word); {
		i := strings.Index(s[start:], word)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(word)
		if boundaryBefore(s, i) && boundaryAfter(s, end) {
			return true
		}
		start = i + 1
	}
	return false
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// Fold lowercases s, strips diacritics and collapses whitespace.
func Fold(s string) string {
	stripAccents := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(stripAccents, strings.ToLower(s))
	if err != nil {
		folded = strings.ToLower(s)
	}
	return strings.Join(strings.Fields(folded), " ")
}
