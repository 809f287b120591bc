// Package htmlparse builds ast trees from raw HTML fragments.
package htmlparse

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/kilianc/fritz2html/internal/fritz2html/ast"
)

// ErrUnsupportedMarkup is returned for parsed nodes that have no ast counterpart.
var ErrUnsupportedMarkup = errors.New("unsupported markup")

type Options struct {
	// KeepWhitespace keeps whitespace-only text nodes and does not trim text.
	KeepWhitespace bool
	// Minify collapses insignificant whitespace before parsing.
	Minify bool
}

// Parse parses src and returns the top-level nodes in document order.
// Fragments are parsed in a context matching their first start tag, so table
// parts such as <tr> or <td> survive. Markup starting with <html> or <body>
// is parsed as a whole document and keeps those elements.
func Parse(r io.Reader, opts Options) ([]ast.Node, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if opts.Minify {
		src, err = minifyMarkup(src)
		if err != nil {
			return nil, fmt.Errorf("minify: %w", err)
		}
	}

	var roots []*html.Node
	switch first := firstStartTag(src); first {
	case atom.Html, atom.Body:
		roots, err = parseDocument(src, first)
	default:
		roots, err = html.ParseFragment(bytes.NewReader(src), fragmentContext(first))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML fragment: %w", err)
	}

	var out []ast.Node
	for _, n := range roots {
		node, ok, err := convert(n, opts)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, node)
		}
	}
	return out, nil
}

// ParseString is Parse for in-memory markup.
func ParseString(src string, opts Options) ([]ast.Node, error) {
	return Parse(strings.NewReader(src), opts)
}

// convert maps n to an ast node. ok is false for nodes that are dropped.
func convert(n *html.Node, opts Options) (node ast.Node, ok bool, err error) {
	switch n.Type {
	case html.ElementNode:
		tag := ast.Tag{Name: n.Data}
		for _, a := range n.Attr {
			tag.Attrs = append(tag.Attrs, convertAttr(a))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			child, ok, err := convert(c, opts)
			if err != nil {
				return nil, false, err
			}
			if ok {
				tag.Children = append(tag.Children, child)
			}
		}
		return tag, true, nil
	case html.TextNode:
		text := n.Data
		if !opts.KeepWhitespace {
			text = strings.TrimSpace(text)
			if text == "" {
				return nil, false, nil
			}
		}
		return ast.Text{Value: text}, true, nil
	case html.CommentNode:
		return ast.Comment{Value: strings.TrimSpace(n.Data)}, true, nil
	case html.DoctypeNode:
		return nil, false, nil
	default:
		return nil, false, fmt.Errorf("%w: node type %d %q", ErrUnsupportedMarkup, n.Type, n.Data)
	}
}

// convertAttr treats an empty value as a presence attribute; the tokenizer
// reports `disabled` and `disabled=""` identically.
func convertAttr(a html.Attribute) ast.Attr {
	key := a.Key
	if a.Namespace != "" {
		key = a.Namespace + ":" + a.Key
	}
	if a.Val == "" {
		return ast.Attr{Key: key, Kind: ast.AttrBool}
	}
	return ast.Attr{Key: key, Kind: ast.AttrString, Value: a.Val}
}
