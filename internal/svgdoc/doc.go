// Package svgdoc locates and rewrites the handful of structural anchors the
// footer needs inside a Platane/snk contribution snake SVG.
//
// Extraction is deliberately shallow: attributes are found with targeted
// regular expressions and first-match semantics, and only the root <svg>
// opening tag is located with a real tokenizer so height rewrites cannot
// leak into nested elements. Documents that do not follow the snk shape are
// not supported.
package svgdoc
