package goquery

import "golang.org/x/net/html"

// invisibleTags are elements whose text is never rendered. Visibility is a
// static tag denylist; CSS-based detection (display:none and friends) is
// out of scope.
var invisibleTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"img":      true,
	"svg":      true,
	"iframe":   true,
	"head":     true,
	"title":    true,
}

// boilerplateTags are removed unconditionally at any nesting depth. This is
// a content policy rather than a visibility rule: navigation and footer
// regions rarely carry body content worth keeping.
var boilerplateTags = map[string]bool{
	"header": true,
	"footer": true,
}

// prune removes, root-and-subtree, every invisible or boilerplate element
// below n. Must run before any text is read from the tree, otherwise
// invisible text would leak into the output.
func prune(n *html.Node) {
	var next *html.Node
	for c := n.FirstChild; c != nil; c = next {
		next = c.NextSibling
		if c.Type == html.ElementNode && (invisibleTags[c.Data] || boilerplateTags[c.Data]) {
			n.RemoveChild(c)
			continue
		}
		prune(c)
	}
}
