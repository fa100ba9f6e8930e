// Package classify narrows completion candidates to token groups whose
// pattern matches the CSS property being authored.
package classify

import (
	"regexp"

	"github.com/tokencatalog/tcls/internal/catalog"
	"github.com/tokencatalog/tcls/internal/collections"
)

// groupPatterns maps each token group to the CSS property vocabulary that
// makes it contextually relevant. The table is static configuration data,
// not behavior attached to group values.
//
// Patterns deliberately overlap: a line mentioning "border" matches both the
// border and color groups, because border properties legitimately accept
// tokens from both categories.
var groupPatterns = map[catalog.Group]*regexp.Regexp{
	catalog.GroupColor:       regexp.MustCompile(`color|background|shadow|border|column-rule|filter|opacity|outline|text-decoration`),
	catalog.GroupSpace:       regexp.MustCompile(`margin|padding|gap|top|left|right|bottom|inset`),
	catalog.GroupFont:        regexp.MustCompile(`font|line-height|letter-spacing`),
	catalog.GroupShadow:      regexp.MustCompile(`shadow`),
	catalog.GroupWidth:       regexp.MustCompile(`width`),
	catalog.GroupHeight:      regexp.MustCompile(`height`),
	catalog.GroupBorder:      regexp.MustCompile(`border|outline`),
	catalog.GroupMotion:      regexp.MustCompile(`animation|transition`),
	catalog.GroupBreakpoints: regexp.MustCompile(`media|breakpoint`),
	catalog.GroupZIndex:      regexp.MustCompile(`z-index`),
	catalog.GroupText:        regexp.MustCompile(`font|text`),
}

// Classify returns the set of groups whose pattern matches anywhere in the
// line. Matching is case-sensitive and runs over the entire line text, since
// the line may still be incomplete. An empty set means "no contextual
// narrowing available", not "no completions".
func Classify(lineText string) collections.Set[catalog.Group] {
	matched := collections.NewSet[catalog.Group]()
	for group, pattern := range groupPatterns {
		if pattern.MatchString(lineText) {
			matched.Add(group)
		}
	}
	return matched
}

// Groups returns the matching groups in enumeration order, for callers that
// need deterministic iteration.
func Groups(lineText string) []catalog.Group {
	matched := Classify(lineText)
	groups := make([]catalog.Group, 0, len(matched))
	for _, g := range catalog.Groups {
		if matched.Has(g) {
			groups = append(groups, g)
		}
	}
	return groups
}
