package footer

import (
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/net/html"
)

// Marker identifies a document that already carries the footer.
const Marker = `class="genesis-block"`

// HasMarker reports whether doc was already patched.
func HasMarker(doc string) bool {
	return strings.Contains(doc, Marker)
}

// CountMarkers returns how many footers doc carries.
func CountMarkers(doc string) int {
	return strings.Count(doc, Marker)
}

const fragmentSource = `
  <style type="text/css">
    @keyframes genesis-reveal {
      0%, 5% { clip-path: inset(0 100% 0 0); }
      95%, 100% { clip-path: inset(0 0% 0 0); }
    }
    .genesis-block {
      animation: genesis-reveal {{.DurationMS}}ms linear infinite;
    }
    .genesis-line {
      font-family: 'Courier New', Courier, monospace;
      font-size: {{.FontSize}}px;
      white-space: pre;
    }
    .genesis-addr { fill: {{.Palette.Address}}; }
    .genesis-hex { fill: {{.Palette.Hex}}; }
    .genesis-ascii { fill: {{.Palette.ASCII}}; }
  </style>
  <g class="genesis-block">
{{- range .Lines}}
    <text class="genesis-line genesis-addr" x="{{.AddressX}}" y="{{.Y}}">{{escape .Address}}</text>
    <text class="genesis-line genesis-hex" x="{{.HexX}}" y="{{.Y}}">{{escape .Hex}}</text>
    <text class="genesis-line genesis-ascii" x="{{.ASCIIX}}" y="{{.Y}}">{{escape .ASCII}}</text>
{{- end}}
  </g>`

var fragmentTemplate = template.Must(template.New("footer").
	Funcs(template.FuncMap{"escape": html.EscapeString}).
	Parse(fragmentSource))

type fragmentLine struct {
	Row
	Y        int
	AddressX int
	HexX     int
	ASCIIX   int
}

type fragmentData struct {
	DurationMS int
	FontSize   int
	Palette    Palette
	Lines      []fragmentLine
}

// Generate renders the reveal style block and the positioned dump rows. The
// reveal runs for durationMS so it loops with the snake.
func Generate(layout Layout, durationMS int) (string, error) {
	data := fragmentData{
		DurationMS: durationMS,
		FontSize:   FontSize,
		Palette:    DefaultPalette,
		Lines:      make([]fragmentLine, 0, len(GenesisRows)),
	}
	for i, row := range GenesisRows {
		data.Lines = append(data.Lines, fragmentLine{
			Row:      row,
			Y:        layout.RowY(i),
			AddressX: layout.AddressX,
			HexX:     layout.HexX,
			ASCIIX:   layout.ASCIIX,
		})
	}

	var b strings.Builder
	if err := fragmentTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render footer: %w", err)
	}
	return b.String(), nil
}
