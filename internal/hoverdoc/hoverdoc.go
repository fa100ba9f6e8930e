// Package hoverdoc locates the token reference under a cursor and resolves
// its display information.
package hoverdoc

import (
	"github.com/tokencatalog/tcls/internal/catalog"
	"github.com/tokencatalog/tcls/internal/cssref"
	"github.com/tokencatalog/tcls/internal/resolver"
)

// Info is the hover payload for a token reference
type Info struct {
	// Name is the token's rendered custom-property name
	Name string

	// Description is the token's documentation, possibly empty
	Description string

	// Detail is the resolved value string from the value resolver
	Detail string

	// Start and End are the byte offsets of the enclosing var() reference
	// within the line
	Start int
	End   int
}

// Locate finds the var() reference whose span contains the cursor offset and
// resolves it against the catalog. Returns nil when the cursor rests on no
// reference, or when the referenced name is not in the catalog; neither is
// an error.
//
// When spans could pathologically overlap, the first occurrence in
// left-to-right order wins.
func Locate(cat *catalog.Catalog, lineText string, offset int) *Info {
	for _, ref := range cssref.Scan(lineText) {
		if !ref.Contains(offset) {
			continue
		}

		tok := cat.Lookup(ref.Name)
		if tok == nil {
			return nil
		}

		return &Info{
			Name:        tok.CSSVariableName(),
			Description: tok.Description,
			Detail:      resolver.Resolve(cat, tok.Value).Detail,
			Start:       ref.Start,
			End:         ref.End,
		}
	}
	return nil
}
