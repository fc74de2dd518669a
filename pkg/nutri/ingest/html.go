package ingest

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blockElements end a line of text when extracting from non-list markup.
var blockElements = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Br: true, atom.Tr: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Li: true, atom.Dt: true, atom.Dd: true,
}

// LinesFromHTML extracts ingredient lines from an HTML page. When the page
// has list items, each <li> becomes one line; otherwise block elements
// separate lines. Script and style content is ignored.
func LinesFromHTML(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var items []string
	var findItems func(*html.Node)
	findItems = func(n *html.Node) {
		if n.Type == html.ElementNode && skipped(n) {
			return
		}
		if n.Type == html.ElementNode && n.DataAtom == atom.Li {
			if text := collapseSpaces(textOf(n)); text != "" {
				items = append(items, text)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			findItems(c)
		}
	}
	findItems(doc)
	if len(items) > 0 {
		return items, nil
	}

	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			if skipped(n) {
				return
			}
			if blockElements[n.DataAtom] {
				buf.WriteByte('\n')
				defer buf.WriteByte('\n')
			}
		case html.TextNode:
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(doc)

	var lines []string
	for _, line := range SplitLines(buf.String()) {
		if line = collapseSpaces(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

func skipped(n *html.Node) bool {
	return n.DataAtom == atom.Script || n.DataAtom == atom.Style || n.DataAtom == atom.Head
}

func textOf(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skipped(n) {
			return
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}
