// Package goquery implements cleantext.Extractor on top of
// PuerkitoBio/goquery and golang.org/x/net/html.
//
// Extraction is a fixed sequence of committed passes: parse, read metadata
// from the full tree, clone the content scope, prune invisible and
// boilerplate subtrees, annotate structural elements as literal text
// tokens, then collect and normalize the remaining text.
package goquery

import (
	"strings"

	cleantext "github.com/Mjeezuz/clean-text-extractor"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Ensure Extractor implements cleantext.Extractor at compile time.
var _ cleantext.Extractor = (*Extractor)(nil)

// Extractor converts raw HTML into annotated plain text.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML fetched from pageURL. Parsing is best-effort:
// unclosed tags, missing quotes and other malformed constructs degrade
// gracefully rather than failing the call.
func (e *Extractor) Extract(pageURL, rawHTML string) (*cleantext.Result, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, cleantext.Errorf(cleantext.EINVALID, "parse HTML: %v", err)
	}

	// Metadata comes from the full document and must be read before any
	// mutation. The scope is a deep clone, so the two views can never
	// observe each other's changes.
	meta := metadataFrom(doc, pageURL)

	scope := cloneNode(scopeNode(doc))
	prune(scope)
	annotate(scope)

	body := cleantext.Normalize(collectText(scope))

	return &cleantext.Result{Meta: meta, Body: body}, nil
}

// collectText walks the annotated tree and joins the remaining text nodes
// with a single space. A space joiner keeps inline elements (<b>, <em>, ...)
// from fracturing words across lines; all intentional line breaks were
// already inserted as literal newlines by the annotation passes.
func collectText(root *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			parts = append(parts, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return strings.Join(parts, " ")
}
