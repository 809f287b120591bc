package fritz2

import "golang.org/x/text/cases"

// customTag is the generic builder used for tags fritz2 does not know.
const customTag = "custom"

// knownTags includes "custom" itself, so an authored <custom> element maps to
// the bare custom builder without a name argument.
var knownTags = set(
	"a", "abbr", "address", "area", "article", "aside", "audio",
	"b", "bdi", "bdo", "blockquote", "br", "button",
	"canvas", "caption", "cite", "code", "col", "colgroup", "command", "custom",
	"data", "datalist", "dd", "del", "details", "dfn", "dialog", "div", "dl", "dt",
	"em", "embed",
	"fieldset", "figcaption", "figure", "footer", "form",
	"h1", "h2", "h3", "h4", "h5", "h6", "header", "hr",
	"i", "iframe", "img", "input", "ins",
	"kbd",
	"label", "legend", "li",
	"main", "map", "mark", "meter",
	"nav", "noscript",
	"ol", "optgroup", "option", "output",
	"p", "param", "path", "picture", "pre", "progress",
	"q", "quote",
	"rp", "rt", "ruby",
	"s", "samp", "script", "section", "select", "small", "span", "strong", "sub", "summary", "sup", "svg",
	"table", "tbody", "td", "textarea", "tfoot", "th", "thead", "time", "tr", "track",
	"u", "ul",
	"video",
	"wbr",
)

// knownAttributes are fritz2 attribute setters in their DSL casing. "class"
// only reaches the body when authored in another case, e.g. CLASS, and is
// rendered through the className setter.
var knownAttributes = []string{
	"fill", "xmlns", "d", "for", "class",
	"abbr", "accept", "acceptCharset", "action", "align", "allowFullscreen", "allowUserMedia",
	"alt", "async", "autocomplete", "autofocus", "autoplay",
	"charset", "checked", "className", "cite", "colSpan", "cols", "controls", "coords",
	"crossOrigin", "currentTime",
	"dateTime", "defaultChecked", "defaultMuted", "defaultPlaybackRate", "defaultSelected",
	"defaultValue", "dirName",
	"formAction", "formEnctype", "formMethod", "formNoValidate", "formTarget",
	"maxLength", "minLength", "noValidate",
	"playbackRate", "playsInline",
	"referrerPolicy", "returnValue", "rowSpan",
	"selectedIndex", "typeMustMatch", "useMap", "viewBox",
	"data", "default", "defer", "disabled", "download",
	"encoding", "enctype", "event",
	"hash", "headers", "height", "high", "host", "hostname", "href", "hreflang",
	"indeterminate", "inputMode", "isMap",
	"kind",
	"label", "length", "loop", "low",
	"max", "method", "min", "multiple", "muted",
	"name", "nonce",
	"open", "optimum",
	"password", "pathname", "pattern", "ping", "placeholder", "port", "poster", "preload", "protocol",
	"rel", "required", "reversed", "rows",
	"scope", "search", "selected", "readOnly", "shape", "size", "sizes", "span",
	"src", "srcdoc", "srclang", "srcset", "start", "step",
	"target", "type",
	"username",
	"value", "volume",
	"width", "wrap",
}

// unquotedAttributes take numeric or boolean values in fritz2.
var unquotedAttributes = set(
	"colSpan", "cols", "height", "length", "maxLength", "minLength", "rowSpan",
	"rows", "selectedIndex", "size", "span", "start", "value", "width",
)

var constructorAttributes = set("class", "id")

// reservedIdentifiers are Kotlin hard keywords.
var reservedIdentifiers = set(
	"as", "break", "class", "continue", "do", "else", "false", "for", "fun",
	"if", "in", "interface", "is", "null", "object", "package", "return",
	"super", "this", "throw", "true", "try", "typealias", "typeof", "val",
	"var", "when", "while",
)

// attributeIndex maps the case fold of each known attribute to its DSL name.
var attributeIndex = func() map[string]string {
	m := make(map[string]string, len(knownAttributes))
	for _, name := range knownAttributes {
		m[fold(name)] = name
	}
	return m
}()

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// fold uses a fresh Caser per call; Casers are stateful and not safe to share.
func fold(s string) string {
	return cases.Fold().String(s)
}

func isKnownTag(lowerName string) bool {
	return knownTags[lowerName]
}

// lookupAttribute finds the fritz2 setter for an HTML attribute name, ignoring case.
func lookupAttribute(htmlName string) (string, bool) {
	name, ok := attributeIndex[fold(htmlName)]
	return name, ok
}

func isUnquoted(name string) bool {
	return unquotedAttributes[name]
}

func isConstructorAttribute(htmlName string) bool {
	return constructorAttributes[htmlName]
}

// escapeIdentifier wraps Kotlin keywords in backticks.
func escapeIdentifier(ident string) string {
	if reservedIdentifiers[ident] {
		return "`" + ident + "`"
	}
	return ident
}
