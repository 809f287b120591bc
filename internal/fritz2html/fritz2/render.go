package fritz2

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kilianc/fritz2html/internal/fritz2html/ast"
)

// DefaultIndent is the indent unit used by the zero Renderer.
const DefaultIndent = "    "

// ErrUnsupportedNode is returned for node types other than Tag, Text and Comment.
var ErrUnsupportedNode = errors.New("unsupported node kind")

// Renderer turns ast nodes into fritz2 builder code.
type Renderer struct {
	// Indent is repeated once per nesting level. Empty means DefaultIndent.
	Indent string
}

// Render renders nodes with the default Renderer.
func Render(nodes []ast.Node) (string, error) {
	return Renderer{}.Render(nodes)
}

// RenderNode renders a single node with the default Renderer.
func RenderNode(n ast.Node, indent int) (string, error) {
	return Renderer{}.RenderNode(n, indent)
}

// Render renders each root at indent level 0, one per line.
// An empty slice renders to the empty string.
func (r Renderer) Render(nodes []ast.Node) (string, error) {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		s, err := r.RenderNode(n, 0)
		if err != nil {
			return "", err
		}
		out = append(out, s)
	}
	return strings.Join(out, "\n"), nil
}

// RenderNode renders n with its first line indented by indent levels.
func (r Renderer) RenderNode(n ast.Node, indent int) (string, error) {
	switch t := n.(type) {
	case ast.Text:
		return r.pad(indent) + `+ """` + t.Value + `"""`, nil
	case ast.Comment:
		return r.pad(indent) + "/* " + t.Value + " */", nil
	case ast.Tag:
		return r.renderTag(t, indent)
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedNode, n)
	}
}

func (r Renderer) renderTag(tag ast.Tag, indent int) (string, error) {
	var ctorAttrs, bodyAttrs []ast.Attr
	for _, a := range tag.Attrs {
		if isConstructorAttribute(a.Key) {
			ctorAttrs = append(ctorAttrs, a)
		} else {
			bodyAttrs = append(bodyAttrs, a)
		}
	}

	ident, args := tagIdentifier(strings.ToLower(tag.Name))
	args = append(args, constructorArgs(ctorAttrs)...)

	var sb strings.Builder
	sb.WriteString(r.pad(indent))
	sb.WriteString(ident)
	if len(args) > 0 {
		sb.WriteString("(")
		sb.WriteString(strings.Join(args, ", "))
		sb.WriteString(")")
	}
	sb.WriteString(" {")

	if isInline(tag.Children, bodyAttrs) {
		child, err := r.RenderNode(tag.Children[0], 0)
		if err != nil {
			return "", err
		}
		sb.WriteString(" ")
		sb.WriteString(child)
		sb.WriteString(" }")
		return sb.String(), nil
	}

	sb.WriteString("\n")
	for _, a := range bodyAttrs {
		sb.WriteString(r.pad(indent + 1))
		sb.WriteString(attributeStatement(a))
		sb.WriteString("\n")
	}
	for _, c := range tag.Children {
		child, err := r.RenderNode(c, indent+1)
		if err != nil {
			return "", err
		}
		sb.WriteString(child)
		sb.WriteString("\n")
	}
	sb.WriteString(r.pad(indent))
	sb.WriteString("}")
	return sb.String(), nil
}

// isInline reports whether a tag collapses to a single line: its only child
// is text and there is nothing to put in the body besides it.
func isInline(children []ast.Node, bodyAttrs []ast.Attr) bool {
	if len(children) != 1 || len(bodyAttrs) != 0 {
		return false
	}
	_, ok := children[0].(ast.Text)
	return ok
}

// tagIdentifier resolves the builder name for a lowercased tag name. Unknown
// tags go through custom(), which takes the tag name as its first argument.
func tagIdentifier(lowerName string) (string, []string) {
	switch {
	case reservedIdentifiers[lowerName]:
		return escapeIdentifier(lowerName), nil
	case !isKnownTag(lowerName):
		return customTag, []string{quote(lowerName)}
	default:
		return lowerName, nil
	}
}

func (r Renderer) pad(level int) string {
	unit := r.Indent
	if unit == "" {
		unit = DefaultIndent
	}
	return strings.Repeat(unit, level)
}
