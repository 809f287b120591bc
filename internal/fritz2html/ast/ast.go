package ast

// Node is one of Tag, Text or Comment.
type Node interface {
	node()
}

type Text struct {
	Value string
}

func (Text) node() {}

// Comment holds the comment body without the <!-- --> delimiters.
type Comment struct {
	Value string
}

func (Comment) node() {}

type AttrKind int

const (
	AttrBool AttrKind = iota
	AttrString
)

type Attr struct {
	Key  string
	Kind AttrKind
	// Value is the literal string for AttrString, ignored for AttrBool.
	Value string
}

// HasValue reports whether the attribute carries a value, even an empty one.
func (a Attr) HasValue() bool {
	return a.Kind == AttrString
}

type Tag struct {
	Name     string
	Attrs    []Attr
	Children []Node
}

func (Tag) node() {}
