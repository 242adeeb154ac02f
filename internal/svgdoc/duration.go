package svgdoc

import "strconv"

// FallbackDurationMS is the snake loop length used when the document does not
// declare one.
const FallbackDurationMS = 82100

// FindAnimationDuration returns the loop length declared by snk's
// "animation: none <N>ms" rule.
func FindAnimationDuration(doc string) (int, bool) {
	match := durationPattern.FindStringSubmatch(doc)
	if match == nil {
		return 0, false
	}
	ms, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return ms, true
}

// ExtractAnimationDuration is FindAnimationDuration with FallbackDurationMS
// substituted when nothing usable is declared.
func ExtractAnimationDuration(doc string) int {
	if ms, ok := FindAnimationDuration(doc); ok {
		return ms
	}
	return FallbackDurationMS
}
