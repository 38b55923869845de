package htmldoc

import (
	"strings"

	"golang.org/x/net/html"
)

// Tables returns the table elements beneath n in document order, without
// descending into a found table's own subtree. Tables nested inside the
// returned tables are reached separately through recursion on their
// enclosing cells.
func Tables(n *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.ElementNode && c.Data == "table" {
			out = append(out, c)
			return
		}
		for ch := c.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		walk(ch)
	}
	return out
}

// Rows returns the tr elements belonging to the given table in document
// order. Rows of tables nested inside the table's cells are excluded; those
// belong to the nested table's own normalization.
func Rows(table *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.ElementNode {
			switch c.Data {
			case "table":
				return
			case "tr":
				out = append(out, c)
				return
			}
		}
		for ch := c.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	for ch := table.FirstChild; ch != nil; ch = ch.NextSibling {
		walk(ch)
	}
	return out
}

// Cells returns the direct td and th children of a tr in document order.
func Cells(tr *html.Node) []*html.Node {
	var out []*html.Node
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			out = append(out, c)
		}
	}
	return out
}

// Attr returns the value of the named attribute on n.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Text returns the concatenation of all descendant text nodes of n in
// document order. Boundaries are left untouched; callers trim as needed.
func Text(n *html.Node) string {
	var sb strings.Builder
	collectText(n, "", &sb)
	return sb.String()
}

// TextExcluding is Text, skipping any descendant subtree rooted at an
// element with the given tag name.
func TextExcluding(n *html.Node, skipTag string) string {
	var sb strings.Builder
	collectText(n, skipTag, &sb)
	return sb.String()
}

func collectText(n *html.Node, skipTag string, sb *strings.Builder) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			sb.WriteString(c.Data)
		case html.ElementNode:
			if skipTag != "" && c.Data == skipTag {
				continue
			}
			collectText(c, skipTag, sb)
		}
	}
}
