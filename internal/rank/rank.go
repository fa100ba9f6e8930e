// Package rank filters, scores, and orders completion candidates for a
// partially typed custom-property reference.
package rank

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tokencatalog/tcls/internal/catalog"
	"github.com/tokencatalog/tcls/internal/classify"
	"github.com/tokencatalog/tcls/internal/resolver"
)

// trigger is the two-hyphen marker that gates completion
const trigger = "--"

// InsertionStyle selects what a completion inserts. It is a fixed
// per-deployment configuration choice, not a runtime toggle.
type InsertionStyle int

const (
	// InsertVarReference inserts the full wrapped reference: var(--name)
	InsertVarReference InsertionStyle = iota

	// InsertBareName inserts the bare custom-property name: --name
	InsertBareName
)

// Options configures the ranker's two variant flags
type Options struct {
	Style InsertionStyle

	// ExtendedRanking enables contextual relevance scoring. When disabled,
	// candidates keep catalog declaration order.
	ExtendedRanking bool
}

// Candidate is one completion candidate, computed fresh per request and
// discarded after the response.
type Candidate struct {
	// Label is the token's rendered custom-property name
	Label string

	// InsertText is the literal text to insert, per the insertion style
	InsertText string

	// Detail is the resolved value string from the value resolver
	Detail string

	// Documentation is the token's description
	Documentation string

	// SortKey orders candidates: a monotonically-decreasing transform of the
	// relevance score, tie-broken by catalog declaration index
	SortKey string

	// Score is the contextual relevance score
	Score int

	// Token is the underlying catalog entry
	Token *catalog.Token
}

// Rank produces the ordered completion candidates for a cursor position.
//
// Completions are only offered once the text before the cursor contains the
// two-hyphen marker; otherwise the result is empty. The partial fragment
// after the last marker filters candidates case-insensitively. Contextually
// relevant groups from the classifier narrow the candidate pool; when no
// group matches, or the fragment empties the contextual pool, the whole
// catalog is considered.
func Rank(cat *catalog.Catalog, lineToCursor, fullLine string, opts Options) []Candidate {
	at := strings.LastIndex(lineToCursor, trigger)
	if at < 0 {
		return nil
	}
	fragment := lineToCursor[at+len(trigger):]

	pool := contextualPool(cat, fullLine)
	filtered := filterByFragment(pool, fragment)

	// The fragment may rule out every contextually relevant token while the
	// wider catalog still matches; fall back to the whole catalog then.
	if len(filtered) == 0 && len(pool) < cat.Len() {
		filtered = filterByFragment(cat.All(), fragment)
	}
	if len(filtered) == 0 {
		return nil
	}

	candidates := make([]Candidate, 0, len(filtered))
	for _, tok := range filtered {
		label := tok.CSSVariableName()

		score := 0
		if opts.ExtendedRanking {
			score = relevance(fullLine, label)
		}

		candidates = append(candidates, Candidate{
			Label:         label,
			InsertText:    insertText(label, opts.Style),
			Detail:        resolver.Resolve(cat, tok.Value).Detail,
			Documentation: tok.Description,
			SortKey:       sortKey(score, cat.Index(label)),
			Score:         score,
			Token:         tok,
		})
	}

	// Stable sort keeps declaration order for equal scores, giving a
	// deterministic total order
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return candidates
}

// contextualPool is the union of tokens from every matched group, in catalog
// declaration order, falling back to the entire catalog when nothing matches.
func contextualPool(cat *catalog.Catalog, fullLine string) []*catalog.Token {
	matched := classify.Classify(fullLine)
	if len(matched) == 0 {
		return cat.All()
	}

	var pool []*catalog.Token
	for _, tok := range cat.All() {
		if matched.Has(tok.Group) {
			pool = append(pool, tok)
		}
	}
	return pool
}

// filterByFragment keeps tokens whose rendered label contains the fragment,
// case-insensitively. An empty fragment keeps everything.
func filterByFragment(pool []*catalog.Token, fragment string) []*catalog.Token {
	if fragment == "" {
		return pool
	}

	needle := strings.ToLower(fragment)
	var kept []*catalog.Token
	for _, tok := range pool {
		if strings.Contains(strings.ToLower(tok.CSSVariableName()), needle) {
			kept = append(kept, tok)
		}
	}
	return kept
}

// relevance scores a candidate label against the property being authored:
// +100 when the label contains the whole property name (hyphens stripped
// from both sides), +50 for each property-name part appearing in the label.
func relevance(fullLine, label string) int {
	property := fullLine
	if colon := strings.Index(fullLine, ":"); colon >= 0 {
		property = fullLine[:colon]
	}
	property = strings.TrimSpace(property)
	if property == "" {
		return 0
	}

	score := 0
	if strings.Contains(stripHyphens(label), stripHyphens(property)) {
		score += 100
	}
	for _, part := range strings.Split(property, "-") {
		if part != "" && strings.Contains(label, part) {
			score += 50
		}
	}
	return score
}

func stripHyphens(s string) string {
	return strings.ReplaceAll(s, "-", "")
}

func insertText(label string, style InsertionStyle) string {
	if style == InsertBareName {
		return label
	}
	return fmt.Sprintf("var(%s)", label)
}

// sortKey renders a string that ascends as the score descends, tie-broken by
// declaration index, so clients sorting lexically reproduce our order.
func sortKey(score, index int) string {
	return fmt.Sprintf("%05d-%05d", 99999-score, index)
}
