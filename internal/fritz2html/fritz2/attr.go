package fritz2

import (
	"strings"

	"github.com/kilianc/fritz2html/internal/fritz2html/ast"
)

var literalEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, `$`, `\$`)

// quote returns s as a Kotlin string literal without templates.
func quote(s string) string {
	return `"` + literalEscaper.Replace(s) + `"`
}

// constructorArgs renders class and id as builder parameters. A lone class
// value is passed positionally.
func constructorArgs(attrs []ast.Attr) []string {
	if len(attrs) == 1 && attrs[0].Key == "class" && attrs[0].HasValue() {
		return []string{quote(attrs[0].Value)}
	}
	args := make([]string, 0, len(attrs))
	for _, a := range attrs {
		name := strings.ToLower(a.Key)
		if name == "class" {
			name = "baseClass"
		}
		if !a.HasValue() {
			args = append(args, name+" = true")
			continue
		}
		args = append(args, name+" = "+quote(a.Value))
	}
	return args
}

// attributeStatement renders a body attribute as a fritz2 setter call, or as
// a generic attr() call when fritz2 has no setter for it.
func attributeStatement(a ast.Attr) string {
	name, ok := lookupAttribute(a.Key)
	if !ok {
		return dataAttribute(a)
	}
	setter := escapeIdentifier(name)
	if name == "class" {
		setter = "className"
	}
	if !a.HasValue() {
		return setter + `("true")`
	}
	value := quote(a.Value)
	if isUnquoted(name) {
		value = a.Value
	}
	return setter + "(" + value + ")"
}

func dataAttribute(a ast.Attr) string {
	if a.HasValue() && a.Value != "" {
		return "attr(" + quote(a.Key) + ", " + quote(a.Value) + ")"
	}
	return "attr(" + quote(a.Key) + `, true, trueValue = "")`
}
