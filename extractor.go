package cleantext

import "strings"

// Metadata holds page metadata read from the full, unscoped document.
// It is independent of scope narrowing: mutating the content subtree must
// never change what the header reports.
type Metadata struct {
	// Path is the percent-decoded path component of the page URL.
	// Defaults to "/" when the URL has no path.
	Path string

	// Title is the trimmed text of the document's <title> element,
	// empty when absent.
	Title string

	// Description is the content attribute of the first
	// <meta name="description">, falling back to <meta name="og:description">,
	// empty when neither is present.
	Description string
}

// Header renders the metadata header block. Each line is emitted only when
// its source value is non-empty; the path always is.
func (m Metadata) Header() string {
	lines := []string{"#URL_PATH: " + m.Path}
	if m.Title != "" {
		lines = append(lines, "#TITLE: "+m.Title)
	}
	if m.Description != "" {
		lines = append(lines, "#META_DESC: "+m.Description)
	}
	return strings.Join(lines, "\n")
}

// Result holds the extracted content of an HTML page.
type Result struct {
	// Meta is derived from the full document, before any scope narrowing.
	Meta Metadata

	// Body is the annotated, whitespace-normalized text of the page's
	// content scope.
	Body string
}

// Extractor converts raw HTML into annotated plain text.
type Extractor interface {
	// Extract processes raw HTML fetched from pageURL and returns the
	// page metadata together with the normalized body text. Malformed
	// markup degrades gracefully and never fails the call.
	Extract(pageURL, rawHTML string) (*Result, error)
}
