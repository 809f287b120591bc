package htmlparse

import (
	"bytes"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// firstStartTag returns the atom of the first start tag in src, or 0 when
// there is none or it is not a known HTML element.
func firstStartTag(src []byte) atom.Atom {
	z := html.NewTokenizer(bytes.NewReader(src))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return 0
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			return atom.Lookup(name)
		}
	}
}

// fragmentContext picks the element a fragment is parsed inside of. Table
// parts are dropped by the tree builder anywhere but in their own section.
func fragmentContext(first atom.Atom) *html.Node {
	ctx := atom.Body
	switch first {
	case atom.Tr:
		ctx = atom.Tbody
	case atom.Td, atom.Th:
		ctx = atom.Tr
	case atom.Tbody, atom.Thead, atom.Tfoot, atom.Caption, atom.Colgroup:
		ctx = atom.Table
	case atom.Col:
		ctx = atom.Colgroup
	}
	return &html.Node{Type: html.ElementNode, Data: ctx.String(), DataAtom: ctx}
}

// parseDocument parses src as a full document. For <html> it returns the
// document's children (comments, the html element); for <body> only the body
// element, without the html and head the tree builder adds around it.
func parseDocument(src []byte, first atom.Atom) ([]*html.Node, error) {
	doc, err := html.Parse(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	if first == atom.Body {
		if body := findElement(doc, atom.Body); body != nil {
			return []*html.Node{body}, nil
		}
		return nil, nil
	}
	var roots []*html.Node
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		roots = append(roots, c)
	}
	return roots, nil
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}
