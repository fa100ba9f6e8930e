// Package completion implements the textDocument/completion handler for
// token custom-property references.
package completion

import (
	"bytes"
	"text/template"

	"github.com/mazznoer/csscolorparser"
	"github.com/tokencatalog/tcls/internal/collections"
	"github.com/tokencatalog/tcls/internal/log"
	"github.com/tokencatalog/tcls/internal/position"
	"github.com/tokencatalog/tcls/internal/rank"
	"github.com/tokencatalog/tcls/internal/resolver"
	"github.com/tokencatalog/tcls/lsp/types"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// supportedLanguages are the document language IDs completion serves.
// Styled-component and vue blocks report the embedded stylesheet language.
var supportedLanguages = collections.NewSet(
	"css", "scss", "less", "sass",
	"javascriptreact", "typescriptreact", "vue",
)

var candidateDocTemplate = template.Must(template.New("candidateDoc").Parse(`# {{.Label}}
{{if .Documentation}}
{{.Documentation}}
{{end}}
**Value**: ` + "`{{.Detail}}`"))

// Completion handles the textDocument/completion request
func Completion(req *types.RequestContext, params *protocol.CompletionParams) (any, error) {
	uri := params.TextDocument.URI
	pos := params.Position

	log.Debug("Completion requested: %s at line %d, char %d", uri, pos.Line, pos.Character)

	doc := req.Server.Document(uri)
	if doc == nil {
		return nil, nil
	}

	if !supportedLanguages.Has(doc.LanguageID()) {
		return nil, nil
	}

	cat := req.Server.Catalog()
	if cat == nil {
		return nil, nil
	}

	fullLine, ok := doc.Line(int(pos.Line))
	if !ok {
		return nil, nil
	}

	cursor := position.UTF16ToByteOffset(fullLine, int(pos.Character))
	lineToCursor := fullLine[:cursor]

	cfg := req.Server.GetConfig()
	opts := rank.Options{
		Style:           rank.InsertVarReference,
		ExtendedRanking: cfg.ExtendedRanking,
	}
	if cfg.InsertionStyle == types.InsertionStyleBare {
		opts.Style = rank.InsertBareName
	}

	candidates := rank.Rank(cat, lineToCursor, fullLine, opts)
	if len(candidates) == 0 {
		return nil, nil
	}

	items := make([]protocol.CompletionItem, 0, len(candidates))
	for _, candidate := range candidates {
		items = append(items, completionItem(candidate))
	}

	log.Debug("Returning %d completion items", len(items))

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// completionItem converts one ranked candidate into a protocol item
func completionItem(candidate rank.Candidate) protocol.CompletionItem {
	kind := protocol.CompletionItemKindVariable
	if isColorValue(candidate) {
		kind = protocol.CompletionItemKindColor
	}

	item := protocol.CompletionItem{
		Label:      candidate.Label,
		Kind:       &kind,
		InsertText: strPtr(candidate.InsertText),
		SortText:   strPtr(candidate.SortKey),
		FilterText: strPtr(candidate.Label),
		Detail:     strPtr(candidate.Detail),
	}

	if doc, err := renderCandidateDoc(candidate); err == nil {
		item.Documentation = protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: doc,
		}
	} else {
		log.Warn("Failed to render documentation for %s: %v", candidate.Label, err)
	}

	return item
}

// isColorValue reports whether the candidate's resolved value parses as a
// CSS color, which upgrades the completion kind to Color so editors show a
// swatch next to the label
func isColorValue(candidate rank.Candidate) bool {
	if candidate.Token == nil {
		return false
	}
	if resolver.IsReference(candidate.Token.Value) {
		return false
	}
	_, err := csscolorparser.Parse(candidate.Token.Value)
	return err == nil
}

// renderCandidateDoc renders the markdown documentation for a candidate
func renderCandidateDoc(candidate rank.Candidate) (string, error) {
	var buf bytes.Buffer
	if err := candidateDocTemplate.Execute(&buf, candidate); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func strPtr(s string) *string {
	return &s
}
