package svgdoc

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

const closingTag = "</svg>"

// RootTagSpan returns the byte offsets [start, end) of the first <svg>
// opening tag.
func RootTagSpan(doc string) (int, int, bool) {
	z := html.NewTokenizer(strings.NewReader(doc))
	offset := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return 0, 0, false
		}
		// Raw must be measured before TagName touches the buffer.
		size := len(z.Raw())
		if tt == html.StartTagToken || tt == html.SelfClosingTagToken {
			name, _ := z.TagName()
			if string(name) == "svg" {
				return offset, offset + size, true
			}
		}
		offset += size
	}
}

// SetRootHeight rewrites the height attribute of the root <svg> opening tag
// only. It reports false, leaving doc untouched, when the root tag carries no
// height attribute.
func SetRootHeight(doc string, height int) (string, bool) {
	start, end, ok := RootTagSpan(doc)
	if !ok {
		return doc, false
	}
	tag := doc[start:end]
	loc := heightAttrPattern.FindStringSubmatchIndex(tag)
	if loc == nil {
		return doc, false
	}
	rewritten := tag[:loc[3]] + strconv.Itoa(height) + tag[loc[4]:]
	return doc[:start] + rewritten + doc[end:], true
}

// InsertBeforeClose places fragment, followed by a newline, directly in front
// of the first closing </svg> tag.
func InsertBeforeClose(doc, fragment string) (string, error) {
	idx := strings.Index(doc, closingTag)
	if idx < 0 {
		return doc, fmt.Errorf("%w: no closing %s tag", ErrMalformedDocument, closingTag)
	}
	return doc[:idx] + fragment + "\n" + doc[idx:], nil
}
