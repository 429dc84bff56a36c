// Package htmldoc extracts hyperlinks from font description documents.
//
// Description files in the google-fonts tree are hand-written HTML and are
// frequently malformed or truncated. Parsing is therefore best-effort: the
// parser recovers what it can and extraction simply yields no link in the
// worst case, never an error.
package htmldoc

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FirstLink parses r as UTF-8 HTML and returns the target of the first
// anchor, in document order, whose href contains hostSubstr. The boolean
// is false when no anchor matches.
func FirstLink(r io.Reader, hostSubstr string) (string, bool) {
	doc, err := html.Parse(r)
	if err != nil {
		// html.Parse only fails when the underlying reader fails;
		// malformed markup is recovered silently.
		return "", false
	}
	return firstLink(doc, hostSubstr)
}

func firstLink(n *html.Node, hostSubstr string) (string, bool) {
	if href, ok := anchorTarget(n); ok && strings.Contains(href, hostSubstr) {
		return href, true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if href, ok := firstLink(c, hostSubstr); ok {
			return href, true
		}
	}
	return "", false
}

// anchorTarget reports whether n is an anchor element carrying a
// resolvable target, and returns that target.
func anchorTarget(n *html.Node) (string, bool) {
	if n.Type != html.ElementNode || n.DataAtom != atom.A {
		return "", false
	}
	for _, attr := range n.Attr {
		if attr.Key == "href" {
			return attr.Val, true
		}
	}
	return "", false
}
