package catalog

import (
	"fmt"
	"regexp"
)

// namePattern is the token naming convention: alphanumeric segments joined by
// single hyphens, no leading "--".
var namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*(-[A-Za-z0-9]+)*$`)

// Options configures catalog construction
type Options struct {
	// Prefix is an optional CSS variable prefix applied to every token's
	// rendered name (e.g. "ds" renders "--ds-color-bg-fill")
	Prefix string
}

// Catalog is the immutable in-memory index of token definitions.
// It is built exactly once at service start and is safe for unlimited
// concurrent readers afterward.
type Catalog struct {
	order   []*Token
	byGroup map[Group][]*Token
	byName  map[string]*Token
	indexes map[string]int
}

// Build normalizes raw group definitions into a Catalog.
// It fails on any token name that breaks the naming convention and on any
// duplicate rendered name across groups. These are startup invariant
// violations: no partial catalog is ever returned.
func Build(groups []RawGroup, opts Options) (*Catalog, error) {
	c := &Catalog{
		byGroup: make(map[Group][]*Token),
		byName:  make(map[string]*Token),
		indexes: make(map[string]int),
	}

	for _, rg := range groups {
		group, err := ParseGroup(rg.Name)
		if err != nil {
			return nil, err
		}

		for _, rt := range rg.Tokens {
			if !namePattern.MatchString(rt.Name) {
				return nil, fmt.Errorf("invalid token name %q in group %s", rt.Name, group)
			}

			token := &Token{
				Name:        rt.Name,
				Group:       group,
				Value:       rt.Value,
				Description: rt.Description,
				prefix:      opts.Prefix,
			}

			rendered := token.CSSVariableName()
			if _, exists := c.byName[rendered]; exists {
				return nil, fmt.Errorf("duplicate token name %q", rendered)
			}

			c.indexes[rendered] = len(c.order)
			c.order = append(c.order, token)
			c.byGroup[group] = append(c.byGroup[group], token)
			c.byName[rendered] = token
		}
	}

	return c, nil
}

// All returns every token in stable declaration order: group declaration
// order, then token declaration order within the group.
func (c *Catalog) All() []*Token {
	return c.order
}

// ByGroup returns the tokens belonging to the given group, in declaration order
func (c *Catalog) ByGroup(g Group) []*Token {
	return c.byGroup[g]
}

// Lookup finds a token by its rendered custom-property name
// (e.g. "--color-bg-fill"). Returns nil when no token matches.
func (c *Catalog) Lookup(renderedName string) *Token {
	return c.byName[renderedName]
}

// Index returns the token's position in declaration order, used as the
// deterministic tie-break when ordering completion candidates. Returns -1
// for names not in the catalog.
func (c *Catalog) Index(renderedName string) int {
	if i, ok := c.indexes[renderedName]; ok {
		return i
	}
	return -1
}

// Len returns the number of tokens in the catalog
func (c *Catalog) Len() int {
	return len(c.order)
}
