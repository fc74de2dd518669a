// Package ingest turns raw recipe text into ingredient tokens.
package ingest

import "strings"

// SplitLines splits raw text on newlines and drops blank lines.
// Surrounding whitespace is trimmed from each kept line.
func SplitLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// ParseAll tokenizes every non-blank line of raw in order.
func ParseAll(raw string) []Token {
	lines := SplitLines(raw)
	tokens := make([]Token, 0, len(lines))
	for _, line := range lines {
		tokens = append(tokens, Parse(line))
	}
	return tokens
}
