package svgdoc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ErrMalformedDocument reports a document missing an anchor the footer cannot
// do without.
var ErrMalformedDocument = errors.New("malformed SVG document")

// ViewBox is the declared coordinate rectangle of the document.
type ViewBox struct {
	MinX   float64
	MinY   float64
	Width  float64
	Height float64
}

// ParseViewBox reads the first viewBox attribute of doc.
func ParseViewBox(doc string) (ViewBox, error) {
	match := viewBoxPattern.FindStringSubmatch(doc)
	if match == nil {
		return ViewBox{}, fmt.Errorf("%w: no viewBox found in SVG", ErrMalformedDocument)
	}
	fields := splitViewBox(match[1])
	if len(fields) != 4 {
		return ViewBox{}, fmt.Errorf("%w: viewBox %q has %d values, want 4", ErrMalformedDocument, match[1], len(fields))
	}

	var values [4]float64
	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return ViewBox{}, fmt.Errorf("%w: viewBox value %q is not a number", ErrMalformedDocument, field)
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return ViewBox{}, fmt.Errorf("%w: viewBox value %q is not finite", ErrMalformedDocument, field)
		}
		values[i] = value
	}
	return ViewBox{MinX: values[0], MinY: values[1], Width: values[2], Height: values[3]}, nil
}

// SetViewBoxHeight replaces the height component of the first viewBox
// attribute, keeping the other three values as authored.
func SetViewBoxHeight(doc string, height int) (string, error) {
	loc := viewBoxPattern.FindStringSubmatchIndex(doc)
	if loc == nil {
		return doc, fmt.Errorf("%w: no viewBox found in SVG", ErrMalformedDocument)
	}
	fields := splitViewBox(doc[loc[2]:loc[3]])
	if len(fields) != 4 {
		return doc, fmt.Errorf("%w: viewBox has %d values, want 4", ErrMalformedDocument, len(fields))
	}
	fields[3] = strconv.Itoa(height)
	return doc[:loc[2]] + strings.Join(fields, " ") + doc[loc[3]:], nil
}

func splitViewBox(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}
