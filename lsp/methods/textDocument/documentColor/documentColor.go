// Package documentcolor implements the textDocument/documentColor and
// colorPresentation handlers. Color swatches are derived by scanning every
// line for var() references and resolving them against the catalog.
package documentcolor

import (
	"fmt"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"github.com/tokencatalog/tcls/internal/catalog"
	"github.com/tokencatalog/tcls/internal/cssref"
	"github.com/tokencatalog/tcls/internal/log"
	"github.com/tokencatalog/tcls/internal/position"
	"github.com/tokencatalog/tcls/internal/resolver"
	"github.com/tokencatalog/tcls/lsp/types"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// DocumentColor handles the textDocument/documentColor request
func DocumentColor(req *types.RequestContext, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	uri := params.TextDocument.URI

	log.Debug("DocumentColor requested: %s", uri)

	doc := req.Server.Document(uri)
	if doc == nil {
		return nil, nil
	}

	cat := req.Server.Catalog()
	if cat == nil {
		return nil, nil
	}

	var colors []protocol.ColorInformation

	for lineNum, line := range strings.Split(doc.Content(), "\n") {
		for _, ref := range cssref.Scan(line) {
			token := cat.Lookup(ref.Name)
			if token == nil {
				continue
			}
			if token.Group != catalog.GroupColor {
				continue
			}

			// One hop through a reference, same as hover
			resolved := resolver.Resolve(cat, token.Value).Value
			color, err := parseColor(resolved)
			if err != nil {
				req.AddWarning(fmt.Errorf("color token %s (value: %s): %w", ref.Name, resolved, err))
				continue
			}

			colors = append(colors, protocol.ColorInformation{
				Range: protocol.Range{
					Start: protocol.Position{
						Line:      uint32(lineNum),
						Character: position.ByteOffsetToUTF16Uint32(line, ref.Start),
					},
					End: protocol.Position{
						Line:      uint32(lineNum),
						Character: position.ByteOffsetToUTF16Uint32(line, ref.End),
					},
				},
				Color: *color,
			})
		}
	}

	log.Debug("Found %d colors", len(colors))

	return colors, nil
}

// ColorPresentation handles the textDocument/colorPresentation request.
// Returns token names whose color value matches the requested color.
func ColorPresentation(req *types.RequestContext, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	log.Debug("ColorPresentation requested: %s", params.TextDocument.URI)

	cat := req.Server.Catalog()
	if cat == nil {
		return nil, nil
	}

	requested := csscolorparser.Color{
		R: float64(params.Color.Red),
		G: float64(params.Color.Green),
		B: float64(params.Color.Blue),
		A: float64(params.Color.Alpha),
	}
	requestedHex := requested.HexString() // Includes alpha if < 1.0

	var presentations []protocol.ColorPresentation

	for _, token := range cat.ByGroup(catalog.GroupColor) {
		resolved := resolver.Resolve(cat, token.Value).Value
		parsed, err := csscolorparser.Parse(strings.TrimSpace(resolved))
		if err != nil {
			continue
		}

		if parsed.HexString() == requestedHex {
			presentations = append(presentations, protocol.ColorPresentation{
				Label: token.CSSVariableName(),
			})
		}
	}

	log.Debug("Found %d matching color tokens", len(presentations))

	return presentations, nil
}

// parseColor parses a CSS color string into a protocol.Color
func parseColor(value string) (*protocol.Color, error) {
	parsed, err := csscolorparser.Parse(strings.TrimSpace(value))
	if err != nil {
		return nil, fmt.Errorf("unsupported color format: %s", value)
	}

	return &protocol.Color{
		Red:   protocol.Decimal(parsed.R),
		Green: protocol.Decimal(parsed.G),
		Blue:  protocol.Decimal(parsed.B),
		Alpha: protocol.Decimal(parsed.A),
	}, nil
}
