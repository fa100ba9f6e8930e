// Package hover implements the textDocument/hover handler for token
// custom-property references.
package hover

import (
	"bytes"
	"text/template"

	"github.com/tokencatalog/tcls/internal/hoverdoc"
	"github.com/tokencatalog/tcls/internal/log"
	"github.com/tokencatalog/tcls/internal/position"
	"github.com/tokencatalog/tcls/lsp/types"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

var hoverDocTemplate = template.Must(template.New("hoverDoc").Parse(`# {{.Name}}
{{if .Description}}
{{.Description}}
{{end}}
**Value**: ` + "`{{.Detail}}`"))

// Hover handles the textDocument/hover request. It serves documentation for
// the var() token reference under the cursor, if any.
func Hover(req *types.RequestContext, params *protocol.HoverParams) (*protocol.Hover, error) {
	uri := params.TextDocument.URI
	pos := params.Position

	log.Debug("Hover requested: %s at line %d, char %d", uri, pos.Line, pos.Character)

	doc := req.Server.Document(uri)
	if doc == nil {
		return nil, nil
	}

	cat := req.Server.Catalog()
	if cat == nil {
		return nil, nil
	}

	line, ok := doc.Line(int(pos.Line))
	if !ok {
		return nil, nil
	}

	offset := position.UTF16ToByteOffset(line, int(pos.Character))

	info := hoverdoc.Locate(cat, line, offset)
	if info == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	if err := hoverDocTemplate.Execute(&buf, info); err != nil {
		return nil, err
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: buf.String(),
		},
		Range: &protocol.Range{
			Start: protocol.Position{
				Line:      pos.Line,
				Character: position.ByteOffsetToUTF16Uint32(line, info.Start),
			},
			End: protocol.Position{
				Line:      pos.Line,
				Character: position.ByteOffsetToUTF16Uint32(line, info.End),
			},
		},
	}, nil
}
