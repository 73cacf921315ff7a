package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// scopeNode picks the subtree used for body-text processing: the first
// <main> element if any exist, else <body>, else the document root.
// Scoping suppresses navigation/sidebar boilerplate commonly present
// outside <main>.
func scopeNode(doc *goquery.Document) *html.Node {
	if sel := doc.Find("main"); len(sel.Nodes) > 0 {
		return sel.Nodes[0]
	}
	if sel := doc.Find("body"); len(sel.Nodes) > 0 {
		return sel.Nodes[0]
	}
	return doc.Nodes[0]
}

// cloneNode deep-copies a subtree. The annotation passes mutate the scope in
// place, and the clone guarantees those mutations never reach the original
// document that metadata is read from.
func cloneNode(n *html.Node) *html.Node {
	clone := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		clone.Attr = append([]html.Attribute(nil), n.Attr...)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		clone.AppendChild(cloneNode(c))
	}
	return clone
}
