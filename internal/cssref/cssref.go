// Package cssref scans document text for var() references to custom
// properties, without parsing CSS into an AST.
package cssref

import "regexp"

// referencePattern matches a complete var() reference. A reference that does
// not close its parenthesis is malformed and simply produces no match.
var referencePattern = regexp.MustCompile(`var\((--[A-Za-z0-9-]+)\)`)

// Reference is one var() occurrence within a line
type Reference struct {
	// Name is the referenced custom-property name, including the "--"
	Name string

	// Start is the byte offset of the "v" of var(
	Start int

	// End is the byte offset just past the closing parenthesis
	End int
}

// Contains reports whether the cursor offset falls within the reference's
// span, inclusive at both edges.
func (r Reference) Contains(offset int) bool {
	return offset >= r.Start && offset <= r.End
}

// Scan returns every var() reference in the line, in left-to-right order
func Scan(line string) []Reference {
	matches := referencePattern.FindAllStringSubmatchIndex(line, -1)
	if matches == nil {
		return nil
	}

	refs := make([]Reference, 0, len(matches))
	for _, m := range matches {
		refs = append(refs, Reference{
			Name:  line[m[2]:m[3]],
			Start: m[0],
			End:   m[1],
		})
	}
	return refs
}
