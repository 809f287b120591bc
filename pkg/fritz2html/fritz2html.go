// Package fritz2html converts HTML fragments into fritz2 builder code.
package fritz2html

import (
	"bytes"
	"log/slog"

	"github.com/kilianc/fritz2html/internal/fritz2html/ast"
	"github.com/kilianc/fritz2html/internal/fritz2html/fritz2"
	"github.com/kilianc/fritz2html/internal/fritz2html/htmlparse"
	"github.com/kilianc/fritz2html/internal/logging"
)

// Tree types accepted by ConvertNodes.
type (
	Node    = ast.Node
	Tag     = ast.Tag
	Text    = ast.Text
	Comment = ast.Comment
	Attr    = ast.Attr
)

const (
	AttrBool   = ast.AttrBool
	AttrString = ast.AttrString
)

// ErrUnsupportedNode is returned when a tree holds a node the renderer can not convert.
var ErrUnsupportedNode = fritz2.ErrUnsupportedNode

type converter struct {
	indent string
	parse  htmlparse.Options
	logger *slog.Logger
}

// Option configures Convert.
type Option func(*converter)

// WithIndent sets the indent unit repeated once per nesting level.
func WithIndent(indent string) Option {
	return func(c *converter) {
		c.indent = indent
	}
}

// WithKeepWhitespace keeps whitespace-only text nodes and untrimmed text.
func WithKeepWhitespace(keep bool) Option {
	return func(c *converter) {
		c.parse.KeepWhitespace = keep
	}
}

// WithMinify collapses insignificant whitespace before parsing.
func WithMinify(minify bool) Option {
	return func(c *converter) {
		c.parse.Minify = minify
	}
}

// WithLogger sets a structured logger for debug tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *converter) {
		c.logger = logger
	}
}

func newConverter(opts []Option) *converter {
	c := &converter{indent: fritz2.DefaultIndent, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert parses src as an HTML fragment and returns the equivalent fritz2
// code, one top-level block per root node. Empty input yields "".
func Convert(src []byte, opts ...Option) (string, error) {
	c := newConverter(opts)
	nodes, err := c.parseFragment(src)
	if err != nil {
		return "", err
	}
	return c.render(nodes)
}

// Parse builds the tree for an HTML fragment without rendering it.
func Parse(src []byte, opts ...Option) ([]Node, error) {
	return newConverter(opts).parseFragment(src)
}

func (c *converter) parseFragment(src []byte) ([]ast.Node, error) {
	nodes, err := htmlparse.Parse(bytes.NewReader(src), c.parse)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("parsed fragment", "bytes", len(src), "roots", len(nodes))
	return nodes, nil
}

// ConvertNodes renders an already built tree.
func ConvertNodes(nodes []Node, opts ...Option) (string, error) {
	return newConverter(opts).render(nodes)
}

func (c *converter) render(nodes []ast.Node) (string, error) {
	out, err := fritz2.Renderer{Indent: c.indent}.Render(nodes)
	if err != nil {
		c.logger.Debug("render failed", "error", err)
		return "", err
	}
	c.logger.Debug("rendered fragment", "roots", len(nodes), "bytes", len(out))
	return out, nil
}
