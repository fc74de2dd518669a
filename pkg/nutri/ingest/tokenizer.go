package ingest

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/cognicore/nutri/pkg/nutri/units"
)

// Token is one ingredient line split into amount, unit and food phrase.
type Token struct {
	Original   string     `json:"original"`
	Amount     float64    `json:"amount"`
	Unit       units.Unit `json:"unit"`
	FoodPhrase string     `json:"food"`
}

var (
	// amountPattern recognizes, in order: mixed numbers ("1 1/2"), unicode
	// fractions with an optional whole part ("1½", "¼"), and plain numbers,
	// fractions or ranges ("2", "0.5", "1/2", "1-2", "1 – 2").
	amountPattern = regexp.MustCompile(`^(?:(\d+)\s+(\d+/\d+)|(\d*)([½⅓⅔¼¾⅕⅖⅗⅘⅙⅚⅛⅜⅝⅞])|([\d./]+)(?:\s*[-–]\s*([\d./]+))?)\s*`)

	parenPattern = regexp.MustCompile(`\([^)]*\)`)
)

// MaxAmount is the largest amount accepted on a line. Larger values are
// treated like any other unparseable amount.
const MaxAmount = 1e6

var vulgarFractions = map[string]float64{
	"½": 1.0 / 2, "⅓": 1.0 / 3, "⅔": 2.0 / 3, "¼": 1.0 / 4, "¾": 3.0 / 4,
	"⅕": 1.0 / 5, "⅖": 2.0 / 5, "⅗": 3.0 / 5, "⅘": 4.0 / 5,
	"⅙": 1.0 / 6, "⅚": 5.0 / 6,
	"⅛": 1.0 / 8, "⅜": 3.0 / 8, "⅝": 5.0 / 8, "⅞": 7.0 / 8,
}

// Parse splits a single ingredient line. It never fails: a line with no
// recognizable amount gets amount 1, an unknown unit becomes units.Count,
// and the food phrase falls back to the whole line.
func Parse(line string) Token {
	original := strings.TrimSpace(line)
	remaining := strings.ToLower(original)

	amount, rest := parseAmount(remaining)
	unit, rest := parseUnit(rest)

	phrase := cleanPhrase(rest)
	if phrase == "" {
		phrase = collapseSpaces(remaining)
	}

	return Token{
		Original:   original,
		Amount:     amount,
		Unit:       unit,
		FoodPhrase: phrase,
	}
}

// parseAmount consumes a leading amount. Anything unparseable, not
// positive, or above MaxAmount yields 1.
func parseAmount(s string) (float64, string) {
	m := amountPattern.FindStringSubmatch(s)
	if m == nil {
		return 1, s
	}
	rest := s[len(m[0]):]

	var amount float64
	var ok bool
	switch {
	case m[1] != "":
		whole, okWhole := parseNumber(m[1])
		frac, okFrac := parseNumber(m[2])
		amount, ok = whole+frac, okWhole && okFrac
	case m[4] != "":
		amount, ok = vulgarFractions[m[4]], true
		if m[3] != "" {
			whole, okWhole := parseNumber(m[3])
			amount, ok = amount+whole, okWhole
		}
	case m[6] != "":
		low, okLow := parseNumber(m[5])
		high, okHigh := parseNumber(m[6])
		amount, ok = (low+high)/2, okLow && okHigh
	default:
		amount, ok = parseNumber(m[5])
	}

	if !ok || !(amount > 0) || amount > MaxAmount {
		return 1, rest
	}
	return amount, rest
}

// parseNumber accepts a decimal ("2", "0.5", ".5") or a simple fraction ("3/4").
func parseNumber(s string) (float64, bool) {
	if num, den, isFrac := strings.Cut(s, "/"); isFrac {
		n, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, false
		}
		d, err := strconv.ParseFloat(den, 64)
		if err != nil || d == 0 {
			return 0, false
		}
		return n / d, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseUnit consumes a leading unit word. The word only counts as a unit
// when more text follows it, so "2 g" alone keeps "g" as the food phrase.
func parseUnit(s string) (units.Unit, string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return units.Count, s
	}
	rest := strings.TrimSpace(s[i:])
	if rest == "" {
		return units.Count, s
	}
	u, ok := units.Parse(s[:i])
	if !ok {
		return units.Count, s
	}
	return u, rest
}

// cleanPhrase drops parenthetical notes and everything after the first
// comma, then normalizes whitespace. Parentheses go first so that a comma
// inside a note ("(8 oz, packed) brown sugar") does not cut the food name.
func cleanPhrase(s string) string {
	s = parenPattern.ReplaceAllString(s, " ")
	if i := strings.IndexByte(s, ','); i >= 0 {
		s = s[:i]
	}
	return collapseSpaces(s)
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
