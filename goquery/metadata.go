package goquery

import (
	"net/url"
	"strings"

	cleantext "github.com/Mjeezuz/clean-text-extractor"
	"github.com/PuerkitoBio/goquery"
)

// metadataFrom derives header metadata from the full, unscoped document.
// The URL path is percent-decoded and defaults to "/". The description
// falls back from <meta name="description"> to <meta name="og:description">.
func metadataFrom(doc *goquery.Document, pageURL string) cleantext.Metadata {
	meta := cleantext.Metadata{Path: "/"}

	if u, err := url.Parse(pageURL); err == nil && u.Path != "" {
		meta.Path = u.Path
	}

	meta.Title = strings.TrimSpace(doc.Find("title").First().Text())

	if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		meta.Description = strings.TrimSpace(desc)
	}
	if meta.Description == "" {
		if desc, ok := doc.Find(`meta[name="og:description"]`).First().Attr("content"); ok {
			meta.Description = strings.TrimSpace(desc)
		}
	}

	return meta
}
