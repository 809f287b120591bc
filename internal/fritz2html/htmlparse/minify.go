package htmlparse

import (
	"sync"

	"github.com/tdewolff/minify/v2"
	mhtml "github.com/tdewolff/minify/v2/html"
)

var (
	minifier *minify.M
	once     sync.Once
)

// getMinifier returns an HTML minifier that only drops whitespace: comments,
// quotes, end tags and default attribute values all survive so the parsed
// tree keeps every node and attribute.
func getMinifier() *minify.M {
	once.Do(func() {
		minifier = minify.New()
		minifier.Add("text/html", &mhtml.Minifier{
			KeepComments:        true,
			KeepDefaultAttrVals: true,
			KeepDocumentTags:    true,
			KeepEndTags:         true,
			KeepQuotes:          true,
		})
	})
	return minifier
}

func minifyMarkup(src []byte) ([]byte, error) {
	return getMinifier().Bytes("text/html", src)
}
