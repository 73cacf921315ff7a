// Package cleantext converts an HTML page into a compact, layout-annotated
// plain-text representation suitable for language-model consumption. It
// fetches a URL, narrows the document to its main content, strips
// non-visible and boilerplate elements, rewrites structural elements
// (headings, lists, links, paragraphs, line breaks) into literal text
// tokens, and prepends a metadata header derived from the full document.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, fs/).
package cleantext
