package footer_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"snkfooter/internal/footer"
	"snkfooter/internal/svgdoc"
)

func TestComputeLayoutAlignsWithGrid(t *testing.T) {
	vb := svgdoc.ViewBox{Width: 880, Height: 180}
	got := footer.ComputeLayout(vb, &svgdoc.GridBounds{Left: 16, Right: 844})
	want := footer.Layout{
		Rows:           5,
		FooterHeight:   70,
		OriginalHeight: 180,
		NewHeight:      250,
		StartX:         16,
		StartY:         199,
		AddressX:       16,
		HexX:           70,
		ASCIIX:         334,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeLayoutWithoutGrid(t *testing.T) {
	got := footer.ComputeLayout(svgdoc.ViewBox{MinY: -32, Width: 880, Height: 180}, nil)
	if got.StartX != 0 || got.AddressX != 0 {
		t.Fatalf("expected fallback left edge 0, got %+v", got)
	}
	if got.HexX != 54 || got.ASCIIX != 318 {
		t.Fatalf("unexpected column offsets: hex=%d ascii=%d", got.HexX, got.ASCIIX)
	}
	if got.StartY != 167 {
		t.Fatalf("expected baseline at 167, got %v", got.StartY)
	}
}

func TestFooterHeight(t *testing.T) {
	if got := footer.FooterHeight(len(footer.GenesisRows)); got != 70 {
		t.Fatalf("expected 70, got %d", got)
	}
}

func TestRowY(t *testing.T) {
	layout := footer.ComputeLayout(svgdoc.ViewBox{Height: 180.5}, nil)
	want := []int{199, 210, 221, 232, 243}
	for i, y := range want {
		if got := layout.RowY(i); got != y {
			t.Fatalf("row %d: expected y=%d, got %d", i, y, got)
		}
	}
}

func TestGenerateReveal(t *testing.T) {
	layout := footer.ComputeLayout(svgdoc.ViewBox{Width: 880, Height: 180}, &svgdoc.GridBounds{Left: 16, Right: 844})
	fragment, err := footer.Generate(layout, 75000)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	for _, want := range []string{
		"@keyframes genesis-reveal",
		"0%, 5% { clip-path: inset(0 100% 0 0); }",
		"95%, 100% { clip-path: inset(0 0% 0 0); }",
		"animation: genesis-reveal 75000ms linear infinite;",
		"font-size: 9px;",
		"white-space: pre;",
		".genesis-addr { fill: #565f89; }",
		".genesis-hex { fill: #a9b1d6; }",
		".genesis-ascii { fill: #F7931A; }",
		footer.Marker,
	} {
		if !strings.Contains(fragment, want) {
			t.Fatalf("fragment missing %q:\n%s", want, fragment)
		}
	}
	if footer.CountMarkers(fragment) != 1 {
		t.Fatalf("expected exactly one marker, got %d", footer.CountMarkers(fragment))
	}
}

func TestGenerateRows(t *testing.T) {
	layout := footer.ComputeLayout(svgdoc.ViewBox{Width: 880, Height: 180}, &svgdoc.GridBounds{Left: 16, Right: 844})
	fragment, err := footer.Generate(layout, 82100)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if got := strings.Count(fragment, "<text "); got != 15 {
		t.Fatalf("expected 15 text runs, got %d", got)
	}
	first := `    <text class="genesis-line genesis-addr" x="16" y="199">00000080</text>`
	if !strings.Contains(fragment, first) {
		t.Fatalf("fragment missing first address run:\n%s", fragment)
	}
	last := fmt.Sprintf(`<text class="genesis-line genesis-ascii" x="334" y="243">%s</text>`, footer.GenesisRows[4].ASCII)
	if !strings.Contains(fragment, last) {
		t.Fatalf("fragment missing last ascii run:\n%s", fragment)
	}
	if !strings.Contains(fragment, `>lor on brink of </text>`) {
		t.Fatal("trailing whitespace in ascii column was not preserved")
	}
	if !strings.HasPrefix(fragment, "\n  <style") || !strings.HasSuffix(fragment, "\n  </g>") {
		t.Fatalf("unexpected fragment framing: %q", fragment)
	}
}

func TestParseMode(t *testing.T) {
	for input, want := range map[string]footer.Mode{
		"light": footer.ModeLight,
		"DARK":  footer.ModeDark,
		"Dark":  footer.ModeDark,
	} {
		got, err := footer.ParseMode(input)
		if err != nil {
			t.Fatalf("ParseMode(%q) returned error: %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseMode(%q) = %q, want %q", input, got, want)
		}
	}

	if _, err := footer.ParseMode(" dark "); err == nil {
		t.Fatal("expected padded mode to be rejected")
	}

	_, err := footer.ParseMode("Sepia")
	var modeErr *footer.InvalidModeError
	if !errors.As(err, &modeErr) {
		t.Fatalf("expected InvalidModeError, got %v", err)
	}
	if err.Error() != "mode must be 'light' or 'dark', got 'sepia'" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
