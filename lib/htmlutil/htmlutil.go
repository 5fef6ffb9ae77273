package htmlutil

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// StrippedStrings returns the whitespace-trimmed text nodes below node in
// document order, dropping the ones that are empty after trimming. Comments
// and the bodies of script and style elements are not text.
func StrippedStrings(node *html.Node) []string {
	var out []string
	strippedStringsRecursive(node, &out)
	return out
}

func strippedStringsRecursive(node *html.Node, out *[]string) {
	if node == nil {
		return
	}
	switch node.Type {
	case html.TextNode:
		text := strings.TrimSpace(node.Data)
		if text != "" {
			*out = append(*out, text)
		}
		return
	case html.CommentNode:
		return
	case html.ElementNode:
		if node.DataAtom == atom.Script || node.DataAtom == atom.Style {
			return
		}
	}
	child := node.FirstChild
	for child != nil {
		strippedStringsRecursive(child, out)
		child = child.NextSibling
	}
}

// JoinText joins the stripped strings of every node in sel with sep.
func JoinText(sel *goquery.Selection, sep string) string {
	var parts []string
	for _, n := range sel.Nodes {
		parts = append(parts, StrippedStrings(n)...)
	}
	return strings.Join(parts, sep)
}

// TrimmedText is the text of sel with leading and trailing whitespace removed.
func TrimmedText(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.Text())
}
