package svgdoc_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"snkfooter/internal/svgdoc"
	"snkfooter/internal/testsupport"
)

func TestParseViewBox(t *testing.T) {
	got, err := svgdoc.ParseViewBox(testsupport.SnakeSVG(82100))
	if err != nil {
		t.Fatalf("ParseViewBox returned error: %v", err)
	}
	want := svgdoc.ViewBox{MinX: 0, MinY: 0, Width: 880, Height: 180}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("viewBox mismatch (-want +got):\n%s", diff)
	}
}

func TestParseViewBoxNegativeOriginAndCommas(t *testing.T) {
	got, err := svgdoc.ParseViewBox(`<svg viewBox="-16,-32, 880.5 180">`)
	if err != nil {
		t.Fatalf("ParseViewBox returned error: %v", err)
	}
	want := svgdoc.ViewBox{MinX: -16, MinY: -32, Width: 880.5, Height: 180}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("viewBox mismatch (-want +got):\n%s", diff)
	}
}

func TestParseViewBoxMalformed(t *testing.T) {
	cases := map[string]string{
		"missing":     `<svg width="10" height="10"></svg>`,
		"too few":     `<svg viewBox="0 0 880"></svg>`,
		"not numeric": `<svg viewBox="0 0 wide 180"></svg>`,
		"NaN":         `<svg viewBox="0 0 880 NaN"></svg>`,
		"Inf":         `<svg viewBox="0 0 Inf 180"></svg>`,
		"-Infinity":   `<svg viewBox="-Infinity 0 880 180"></svg>`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svgdoc.ParseViewBox(doc)
			if !errors.Is(err, svgdoc.ErrMalformedDocument) {
				t.Fatalf("expected ErrMalformedDocument, got %v", err)
			}
		})
	}
}

func TestFindGridBounds(t *testing.T) {
	got, ok := svgdoc.FindGridBounds(testsupport.SnakeSVG(82100))
	if !ok {
		t.Fatal("expected grid bounds")
	}
	if diff := cmp.Diff(svgdoc.GridBounds{Left: 16, Right: 844}, got); diff != "" {
		t.Fatalf("bounds mismatch (-want +got):\n%s", diff)
	}
	if got.Width() != 828 {
		t.Fatalf("unexpected width %d", got.Width())
	}
}

func TestFindGridBoundsWithoutCells(t *testing.T) {
	if _, ok := svgdoc.FindGridBounds(`<svg></svg>`); ok {
		t.Fatal("expected no bounds for a document without rects")
	}
	// rect without an x attribute is not a cell
	if _, ok := svgdoc.FindGridBounds(`<svg><rect width="10" height="7"/></svg>`); ok {
		t.Fatal("expected no bounds for rects without x")
	}
}

func TestExtractAnimationDuration(t *testing.T) {
	if got := svgdoc.ExtractAnimationDuration(testsupport.SnakeSVG(75000)); got != 75000 {
		t.Fatalf("expected 75000, got %d", got)
	}
	if got := svgdoc.ExtractAnimationDuration(`<svg><rect/></svg>`); got != svgdoc.FallbackDurationMS {
		t.Fatalf("expected fallback %d, got %d", svgdoc.FallbackDurationMS, got)
	}
	if got := svgdoc.ExtractAnimationDuration(`<style>.c{animation: none 99999999999999999999999ms}</style>`); got != svgdoc.FallbackDurationMS {
		t.Fatalf("expected fallback for overflowing duration, got %d", got)
	}
}

func TestFindAnimationDurationReportsSource(t *testing.T) {
	ms, ok := svgdoc.FindAnimationDuration(`<style>.s{animation: none 1200ms linear infinite}</style>`)
	if !ok || ms != 1200 {
		t.Fatalf("expected (1200, true), got (%d, %v)", ms, ok)
	}
	if _, ok := svgdoc.FindAnimationDuration(`<style>.s{animation: snake 1200ms}</style>`); ok {
		t.Fatal("expected no match without the none keyword")
	}
}

func TestSetViewBoxHeight(t *testing.T) {
	got, err := svgdoc.SetViewBoxHeight(testsupport.SnakeSVG(82100), 250)
	if err != nil {
		t.Fatalf("SetViewBoxHeight returned error: %v", err)
	}
	if !strings.Contains(got, `viewBox="0 0 880 250"`) {
		t.Fatalf("viewBox not rewritten: %s", got)
	}
}

func TestRootTagSpan(t *testing.T) {
	doc := testsupport.NestedHeightSVG()
	start, end, ok := svgdoc.RootTagSpan(doc)
	if !ok {
		t.Fatal("expected root tag")
	}
	tag := doc[start:end]
	if !strings.HasPrefix(tag, "<svg ") || !strings.HasSuffix(tag, ">") {
		t.Fatalf("unexpected span %q", tag)
	}
	if !strings.Contains(tag, `viewBox="-16 -32 880 180"`) {
		t.Fatalf("span does not cover root attributes: %q", tag)
	}
}

func TestSetRootHeightLeavesNestedElements(t *testing.T) {
	doc := testsupport.NestedHeightSVG()
	got, ok := svgdoc.SetRootHeight(doc, 250)
	if !ok {
		t.Fatal("expected root height rewrite")
	}
	if !strings.Contains(got, `width="880" height="250"`) {
		t.Fatalf("root height not rewritten: %s", got)
	}
	if strings.Count(got, `height="12"`) != 2 || !strings.Contains(got, `height="7"`) {
		t.Fatalf("nested heights changed: %s", got)
	}
}

func TestSetRootHeightWithoutAttribute(t *testing.T) {
	doc := `<svg viewBox="0 0 10 10"><rect height="3"/></svg>`
	got, ok := svgdoc.SetRootHeight(doc, 80)
	if ok {
		t.Fatal("expected no rewrite without a root height attribute")
	}
	if got != doc {
		t.Fatalf("document changed: %s", got)
	}
}

func TestInsertBeforeClose(t *testing.T) {
	got, err := svgdoc.InsertBeforeClose("<svg>\n</svg>", "  <g/>")
	if err != nil {
		t.Fatalf("InsertBeforeClose returned error: %v", err)
	}
	if got != "<svg>\n  <g/>\n</svg>" {
		t.Fatalf("unexpected result %q", got)
	}
	if _, err := svgdoc.InsertBeforeClose("<svg>", "<g/>"); !errors.Is(err, svgdoc.ErrMalformedDocument) {
		t.Fatalf("expected ErrMalformedDocument, got %v", err)
	}
}
