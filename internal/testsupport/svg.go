package testsupport

import "fmt"

// SnakeSVG returns a minimal snk-style document: viewBox "0 0 880 180",
// root height 180, cells at x=16 and x=832 and a loop of durationMS.
func SnakeSVG(durationMS int) string {
	return fmt.Sprintf(`<svg viewBox="0 0 880 180" width="880" height="180" xmlns="http://www.w3.org/2000/svg">
  <style>.c{animation:none %dms linear infinite}</style>
  <rect class="c" x="16" y="26" width="12" height="12"/>
  <rect class="c" x="832" y="110" width="12" height="12"/>
</svg>`, durationMS)
}

// NestedHeightSVG returns a document with a prolog, a non-zero viewBox
// origin and nested elements carrying their own height attributes.
func NestedHeightSVG() string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="880" height="180" viewBox="-16 -32 880 180">
  <style>.s{animation:none 75000ms linear infinite}</style>
  <rect class="c" x="40" y="26" width="12" height="12" rx="2"/>
  <rect class="c" x="100" y="26" width="12" height="12" rx="2"/>
  <g transform="translate(4 4)"><rect width="10" height="7"/></g>
</svg>`
}
