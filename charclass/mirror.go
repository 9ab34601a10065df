package charclass

import (
	ucd "github.com/benoitkugler/textlayout/unicodedata"
)

// Mirror returns the mirrored glyph substitute of a code-point, e.g. ')'
// for '('. Code-points without a mirror image are returned unchanged.
func Mirror(r rune) rune {
	if m, ok := ucd.LookupMirrorChar(r); ok {
		return m
	}
	return r
}
