// Package resolver produces display values and detail strings for raw token
// values, following token-to-token references exactly one hop.
package resolver

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/tokencatalog/tcls/internal/catalog"
)

// RemPixelRatio is the project-wide rem to pixel conversion ratio.
// Tests pin this value: conversions in candidate details and hover payloads
// must both use it.
const RemPixelRatio = 16

// referencePattern matches a raw value that is, in its entirety, a reference
// to another token's rendered name.
var referencePattern = regexp.MustCompile(`^var\((--[A-Za-z0-9-]+)\)$`)

// remPattern extracts the numeric magnitude of a rem value
var remPattern = regexp.MustCompile(`(-?\d*\.?\d+)rem`)

// Resolution is the display form of a raw token value
type Resolution struct {
	// Value is the resolved display value: the referenced token's raw value
	// for references, the input otherwise
	Value string

	// Detail is the human-readable value string, including the reference
	// arrow and pixel conversion where they apply
	Detail string
}

// Resolve computes the display value and detail string for a raw token value.
// Pure function of the catalog and the input; never returns an error.
//
// References resolve exactly one hop: when the referenced token's own value
// is itself a reference, that inner reference is reported verbatim,
// unexpanded. Unknown references fall back to the original string unchanged.
func Resolve(cat *catalog.Catalog, raw string) Resolution {
	if m := referencePattern.FindStringSubmatch(raw); m != nil {
		resolved := raw
		if ref := cat.Lookup(m[1]); ref != nil {
			resolved = ref.Value
		}

		detail := raw
		if resolved != raw {
			detail = fmt.Sprintf("%s → %s", raw, resolved)
		}
		if px, ok := pixelEquivalent(resolved); ok {
			detail = fmt.Sprintf("%s (%s)", detail, px)
		}
		return Resolution{Value: resolved, Detail: detail}
	}

	detail := raw
	if px, ok := pixelEquivalent(raw); ok {
		detail = fmt.Sprintf("%s (%s)", raw, px)
	}
	return Resolution{Value: raw, Detail: detail}
}

// pixelEquivalent converts a rem magnitude found in the value to pixels.
// Literal zero values get no conversion.
func pixelEquivalent(value string) (string, bool) {
	m := remPattern.FindStringSubmatch(value)
	if m == nil {
		return "", false
	}

	rem, err := strconv.ParseFloat(m[1], 64)
	if err != nil || rem == 0 {
		return "", false
	}

	px := strconv.FormatFloat(rem*RemPixelRatio, 'f', -1, 64)
	return px + "px", true
}

// IsReference reports whether a raw value is a whole-string token reference
func IsReference(raw string) bool {
	return referencePattern.MatchString(raw)
}

// ReferenceName returns the rendered name a reference points at,
// or "" when the value is not a reference.
func ReferenceName(raw string) string {
	if m := referencePattern.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return ""
}
