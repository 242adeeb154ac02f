package svgdoc

import "regexp"

var (
	viewBoxPattern    = regexp.MustCompile(`viewBox="([^"]+)"`)
	cellXPattern      = regexp.MustCompile(`<rect[^>]*\sx="(\d+)"`)
	durationPattern   = regexp.MustCompile(`animation:\s*none\s+(\d+)ms`)
	heightAttrPattern = regexp.MustCompile(`(\sheight\s*=\s*")[^"]*(")`)
)
