package browser

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// extractText flattens an HTML document to visible text. Script, style and
// similar non-content elements are skipped; runs of whitespace collapse to
// single spaces.
func extractText(rawHTML string) (string, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var builder strings.Builder
	collectText(doc, &builder)
	return strings.Join(strings.Fields(builder.String()), " "), nil
}

func collectText(n *html.Node, builder *strings.Builder) {
	if n.Type == html.CommentNode {
		return
	}
	if n.Type == html.ElementNode && isNonContentElement(strings.ToLower(n.Data)) {
		return
	}
	if n.Type == html.TextNode {
		builder.WriteString(n.Data)
		builder.WriteByte(' ')
		return
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, builder)
	}
}

func isNonContentElement(tag string) bool {
	switch tag {
	case "script", "style", "noscript", "template", "head", "iframe", "svg":
		return true
	}
	return false
}
