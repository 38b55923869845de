// Package htmldoc provides HTML document parsing and navigation.
//
// It wraps golang.org/x/net/html with the small set of operations the
// normalizer consumes: parsing documents and fragments, selecting elements
// by tag in document order, attribute lookup, text extraction, and
// serializing an element back to HTML.
package htmldoc

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// Document provides access to a parsed HTML tree.
type Document struct {
	root     *html.Node
	title    string
	metadata map[string]string
}

// Parse parses a complete HTML document. The underlying parser is lenient:
// malformed markup yields a best-effort tree rather than an error.
func Parse(text string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return nil, errors.Wrap(err, "parsing HTML")
	}

	doc := &Document{
		root:     root,
		metadata: make(map[string]string),
	}
	doc.extractHead(root)

	return doc, nil
}

// ParseFragment parses an HTML fragment, such as a serialized table cell.
// The parser hoists stray content into a synthetic body; callers are
// expected to navigate from Root by tag rather than rely on the fragment's
// outer element surviving.
func ParseFragment(fragment string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return nil, errors.Wrap(err, "parsing HTML fragment")
	}

	return &Document{
		root:     root,
		metadata: make(map[string]string),
	}, nil
}

// Root returns the root node of the parsed tree.
func (d *Document) Root() *html.Node {
	return d.root
}

// Title returns the contents of the document's <title> element, if any.
func (d *Document) Title() string {
	return d.title
}

// Metadata returns the name/content pairs of the document's <meta> tags.
func (d *Document) Metadata() map[string]string {
	return d.metadata
}

// extractHead extracts the title and meta tags from the head element.
func (d *Document) extractHead(n *html.Node) {
	if n.Type == html.ElementNode && n.Data == "head" {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "title":
				d.title = strings.TrimSpace(Text(c))
			case "meta":
				name, content := "", ""
				for _, attr := range c.Attr {
					switch attr.Key {
					case "name", "property":
						name = attr.Val
					case "content":
						content = attr.Val
					}
				}
				if name != "" && content != "" {
					d.metadata[name] = content
				}
			}
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.extractHead(c)
	}
}

// Render serializes an element back to its HTML string.
func Render(n *html.Node) (string, error) {
	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		return "", errors.Wrap(err, "rendering HTML")
	}
	return sb.String(), nil
}
