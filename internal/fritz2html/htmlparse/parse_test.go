package htmlparse

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/kilianc/fritz2html/internal/fritz2html/ast"
)

func str(key, value string) ast.Attr {
	return ast.Attr{Key: key, Kind: ast.AttrString, Value: value}
}

func flag(key string) ast.Attr {
	return ast.Attr{Key: key, Kind: ast.AttrBool}
}

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		src  string
		opts Options
		want []ast.Node
	}{
		{
			name: "element with text",
			src:  `<div class="box">Hi</div>`,
			want: []ast.Node{ast.Tag{Name: "div", Attrs: []ast.Attr{str("class", "box")}, Children: []ast.Node{ast.Text{Value: "Hi"}}}},
		},
		{
			name: "whitespace between tags is dropped",
			src:  "<ul>\n  <li>a</li>\n  <li> b </li>\n</ul>",
			want: []ast.Node{ast.Tag{Name: "ul", Children: []ast.Node{
				ast.Tag{Name: "li", Children: []ast.Node{ast.Text{Value: "a"}}},
				ast.Tag{Name: "li", Children: []ast.Node{ast.Text{Value: "b"}}},
			}}},
		},
		{
			name: "keep whitespace",
			src:  "<p> a </p>",
			opts: Options{KeepWhitespace: true},
			want: []ast.Node{ast.Tag{Name: "p", Children: []ast.Node{ast.Text{Value: " a "}}}},
		},
		{
			name: "comment body is trimmed",
			src:  "<!-- note -->",
			want: []ast.Node{ast.Comment{Value: "note"}},
		},
		{
			name: "several roots",
			src:  "<b>x</b>tail<!--c-->",
			want: []ast.Node{
				ast.Tag{Name: "b", Children: []ast.Node{ast.Text{Value: "x"}}},
				ast.Text{Value: "tail"},
				ast.Comment{Value: "c"},
			},
		},
		{
			name: "empty values are presence attributes",
			src:  `<input disabled value="">`,
			want: []ast.Node{ast.Tag{Name: "input", Attrs: []ast.Attr{flag("disabled"), flag("value")}}},
		},
		{
			name: "doctype is skipped",
			src:  "<!DOCTYPE html><p>x</p>",
			want: []ast.Node{ast.Tag{Name: "p", Children: []ast.Node{ast.Text{Value: "x"}}}},
		},
		{
			name: "names are lowercased",
			src:  `<DIV ID="a"></DIV>`,
			want: []ast.Node{ast.Tag{Name: "div", Attrs: []ast.Attr{str("id", "a")}}},
		},
		{
			name: "custom element",
			src:  `<foo-bar data-x="1">t</foo-bar>`,
			want: []ast.Node{ast.Tag{Name: "foo-bar", Attrs: []ast.Attr{str("data-x", "1")}, Children: []ast.Node{ast.Text{Value: "t"}}}},
		},
		{
			name: "namespaced attribute",
			src:  `<svg><use xlink:href="#icon"></use></svg>`,
			want: []ast.Node{ast.Tag{Name: "svg", Children: []ast.Node{
				ast.Tag{Name: "use", Attrs: []ast.Attr{str("xlink:href", "#icon")}},
			}}},
		},
		{
			name: "minify collapses spaces and keeps comments",
			src:  "<div>\n   <span>a    b</span>\n   <!-- keep -->\n</div>",
			opts: Options{Minify: true},
			want: []ast.Node{ast.Tag{Name: "div", Children: []ast.Node{
				ast.Tag{Name: "span", Children: []ast.Node{ast.Text{Value: "a b"}}},
				ast.Comment{Value: "keep"},
			}}},
		},
		{
			name: "table row",
			src:  `<tr><td colspan="2">x</td></tr>`,
			want: []ast.Node{ast.Tag{Name: "tr", Children: []ast.Node{
				ast.Tag{Name: "td", Attrs: []ast.Attr{str("colspan", "2")}, Children: []ast.Node{ast.Text{Value: "x"}}},
			}}},
		},
		{
			name: "table cells",
			src:  "<td>a</td><th>b</th>",
			want: []ast.Node{
				ast.Tag{Name: "td", Children: []ast.Node{ast.Text{Value: "a"}}},
				ast.Tag{Name: "th", Children: []ast.Node{ast.Text{Value: "b"}}},
			},
		},
		{
			name: "table section after comment",
			src:  `<!-- rows --><tbody><tr><td rowspan="3">y</td></tr></tbody>`,
			want: []ast.Node{
				ast.Comment{Value: "rows"},
				ast.Tag{Name: "tbody", Children: []ast.Node{
					ast.Tag{Name: "tr", Children: []ast.Node{
						ast.Tag{Name: "td", Attrs: []ast.Attr{str("rowspan", "3")}, Children: []ast.Node{ast.Text{Value: "y"}}},
					}},
				}},
			},
		},
		{
			name: "column",
			src:  `<col span="2">`,
			want: []ast.Node{ast.Tag{Name: "col", Attrs: []ast.Attr{str("span", "2")}}},
		},
		{
			name: "whole document keeps html head and body",
			src:  "<!DOCTYPE html><html lang=\"en\"><head><title>T</title></head><body><p>x</p></body></html>",
			want: []ast.Node{ast.Tag{Name: "html", Attrs: []ast.Attr{str("lang", "en")}, Children: []ast.Node{
				ast.Tag{Name: "head", Children: []ast.Node{
					ast.Tag{Name: "title", Children: []ast.Node{ast.Text{Value: "T"}}},
				}},
				ast.Tag{Name: "body", Children: []ast.Node{
					ast.Tag{Name: "p", Children: []ast.Node{ast.Text{Value: "x"}}},
				}},
			}}},
		},
		{
			name: "body keeps its element only",
			src:  `<body class="page"><p>x</p></body>`,
			want: []ast.Node{ast.Tag{Name: "body", Attrs: []ast.Attr{str("class", "page")}, Children: []ast.Node{
				ast.Tag{Name: "p", Children: []ast.Node{ast.Text{Value: "x"}}},
			}}},
		},
		{
			name: "empty input",
			src:  "  \n ",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseString(tt.src, tt.opts)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.src, diff)
			}
		})
	}
}

func TestParse_Gomponents(t *testing.T) {
	src := render(t, h.Div(h.ID("main"),
		h.A(h.Href("/x"), g.Text("Go")),
		h.Input(h.Type("checkbox"), h.Disabled()),
		g.El("foo-bar", g.Attr("data-x", "1")),
	))

	got, err := ParseString(src, Options{})
	require.NoError(t, err)

	want := []ast.Node{ast.Tag{Name: "div", Attrs: []ast.Attr{str("id", "main")}, Children: []ast.Node{
		ast.Tag{Name: "a", Attrs: []ast.Attr{str("href", "/x")}, Children: []ast.Node{ast.Text{Value: "Go"}}},
		ast.Tag{Name: "input", Attrs: []ast.Attr{str("type", "checkbox"), flag("disabled")}},
		ast.Tag{Name: "foo-bar", Attrs: []ast.Attr{str("data-x", "1")}},
	}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestConvert_Unsupported(t *testing.T) {
	_, _, err := convert(&html.Node{Type: html.RawNode, Data: "<x>"}, Options{})
	assert.ErrorIs(t, err, ErrUnsupportedMarkup)
}

func TestFirstStartTag(t *testing.T) {
	assert.Equal(t, atom.Tr, firstStartTag([]byte("  <!-- c --><tr><td>x</td></tr>")))
	assert.Equal(t, atom.Br, firstStartTag([]byte("text<br/>")))
	assert.Equal(t, atom.Atom(0), firstStartTag([]byte("just text")))
	assert.Equal(t, atom.Atom(0), firstStartTag([]byte("<foo-bar>x</foo-bar>")))
	assert.Equal(t, "body", fragmentContext(0).Data)
	assert.Equal(t, "tbody", fragmentContext(atom.Tr).Data)
}
