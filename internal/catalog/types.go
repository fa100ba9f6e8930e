package catalog

import "fmt"

// Group classifies tokens by the CSS domain they belong to.
// Groups are a fixed enumeration: they carry identity only, no behavior.
type Group int

const (
	GroupColor Group = iota
	GroupSpace
	GroupFont
	GroupShadow
	GroupWidth
	GroupHeight
	GroupBorder
	GroupMotion
	GroupBreakpoints
	GroupZIndex
	GroupText
)

// Groups lists every group in enumeration order.
var Groups = []Group{
	GroupColor,
	GroupSpace,
	GroupFont,
	GroupShadow,
	GroupWidth,
	GroupHeight,
	GroupBorder,
	GroupMotion,
	GroupBreakpoints,
	GroupZIndex,
	GroupText,
}

var groupNames = map[Group]string{
	GroupColor:       "color",
	GroupSpace:       "space",
	GroupFont:        "font",
	GroupShadow:      "shadow",
	GroupWidth:       "width",
	GroupHeight:      "height",
	GroupBorder:      "border",
	GroupMotion:      "motion",
	GroupBreakpoints: "breakpoints",
	GroupZIndex:      "zIndex",
	GroupText:        "text",
}

var groupsByName = func() map[string]Group {
	m := make(map[string]Group, len(groupNames))
	for g, name := range groupNames {
		m[name] = g
	}
	return m
}()

// String returns the group's dataset name (e.g. "color", "zIndex")
func (g Group) String() string {
	if name, ok := groupNames[g]; ok {
		return name
	}
	return fmt.Sprintf("Group(%d)", int(g))
}

// ParseGroup resolves a dataset group name to its Group value
func ParseGroup(name string) (Group, error) {
	g, ok := groupsByName[name]
	if !ok {
		return 0, fmt.Errorf("unknown token group: %q", name)
	}
	return g, nil
}

// Token is the identity record for one design token
type Token struct {
	// Name is the token's catalog identifier (e.g. "color-bg-fill"),
	// alphanumeric and hyphens, without the leading "--"
	Name string

	// Group is the semantic category the token belongs to
	Group Group

	// Value is the raw value: either a literal CSS value (e.g. "0.25rem",
	// "#fff") or a reference to another token ("var(--other-token)")
	Value string

	// Description is optional documentation for the token
	Description string

	// prefix is the catalog-wide CSS variable prefix, set at build time
	prefix string
}

// CSSVariableName returns the token's rendered custom-property name,
// e.g. "--color-bg-fill" or "--ds-color-bg-fill" with a "ds" prefix.
// The transform is deterministic and reversible: reference strings found in
// document text round-trip to catalog entries through Catalog.Lookup.
func (t *Token) CSSVariableName() string {
	if t.prefix != "" {
		return "--" + t.prefix + "-" + t.Name
	}
	return "--" + t.Name
}

// RawGroup is one group of token definitions as declared in the input
// dataset, in declaration order.
type RawGroup struct {
	Name   string
	Tokens []RawToken
}

// RawToken is one token definition as declared in the input dataset
type RawToken struct {
	Name        string
	Value       string
	Description string
}
