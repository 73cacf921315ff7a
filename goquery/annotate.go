package goquery

import (
	"strconv"
	"strings"

	cleantext "github.com/Mjeezuz/clean-text-extractor"
	"golang.org/x/net/html"
)

// headingLevels maps heading tags to their rendered level. h5/h6 are left
// alone and flow through as plain text.
var headingLevels = map[string]int{
	"h1": 1,
	"h2": 2,
	"h3": 3,
	"h4": 4,
}

// annotate rewrites structural elements into literal text tokens, in five
// committed passes: headings, list items, anchors, paragraphs, line breaks.
// Each pass replaces matched nodes in document order, so a later pass
// consuming a nested construct sees the already-flattened single-line text
// of the earlier pass and no token ever embeds a raw newline.
func annotate(root *html.Node) {
	replaceEach(root, isHeading, func(n *html.Node) string {
		level := headingLevels[n.Data]
		return "\n\n**[H" + strconv.Itoa(level) + "] " + innerText(n) + "**\n\n"
	})
	replaceEach(root, isTag("li"), func(n *html.Node) string {
		return "- " + innerText(n) + "\n"
	})
	replaceEach(root, isTag("a"), func(n *html.Node) string {
		return "#" + innerText(n)
	})
	replaceEach(root, isTag("p"), func(n *html.Node) string {
		return innerText(n) + "\n\n"
	})
	replaceEach(root, isTag("br"), func(n *html.Node) string {
		return "\n"
	})
}

func isHeading(n *html.Node) bool {
	_, ok := headingLevels[n.Data]
	return ok
}

func isTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Data == tag }
}

// replaceEach substitutes every matching element below root with the text
// produced by token. Matches are collected up front in document order;
// replacing an outer match detaches any nested matches, whose later
// replacement then mutates an unreachable subtree and stays invisible.
func replaceEach(root *html.Node, match func(*html.Node) bool, token func(*html.Node) string) {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	for _, n := range found {
		replaceWithText(n, token(n))
	}
}

// replaceWithText swaps a node's entire subtree for a single text node.
func replaceWithText(n *html.Node, text string) {
	parent := n.Parent
	if parent == nil {
		return
	}
	parent.InsertBefore(&html.Node{Type: html.TextNode, Data: text}, n)
	parent.RemoveChild(n)
}

// innerText is the node's descendant text joined with single spaces and
// collapsed: no embedded newlines, no leading/trailing whitespace. Tokens
// committed by an earlier pass are already text nodes here, so their
// newlines collapse into the single-line form.
func innerText(n *html.Node) string {
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
	walk(n)
	return cleantext.CollapseSpace(strings.Join(parts, " "))
}
