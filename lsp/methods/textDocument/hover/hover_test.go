package hover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tokencatalog/tcls/lsp/testutil"
	"github.com/tokencatalog/tcls/lsp/types"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func requestHover(t *testing.T, ctx *testutil.MockServerContext, content string, line, char uint32) *protocol.Hover {
	t.Helper()
	require.NoError(t, ctx.DocumentManager().DidOpen("file:///test.css", "css", 1, content))
	req := types.NewRequestContext(ctx, &glsp.Context{})

	result, err := Hover(req, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: "file:///test.css"},
			Position:     protocol.Position{Line: line, Character: char},
		},
	})
	require.NoError(t, err)
	return result
}

func TestHoverOnReference(t *testing.T) {
	ctx := testutil.NewMockServerContextWithCatalog()

	// Cursor inside var(--space-100)
	hover := requestHover(t, ctx, "a { margin: var(--space-100); }", 0, 20)
	require.NotNil(t, hover)

	content, ok := hover.Contents.(protocol.MarkupContent)
	require.True(t, ok)
	assert.Contains(t, content.Value, "# --space-100")
	assert.Contains(t, content.Value, "`0.25rem (4px)`")

	require.NotNil(t, hover.Range)
	assert.Equal(t, uint32(12), hover.Range.Start.Character)
	assert.Equal(t, uint32(28), hover.Range.End.Character)
}

func TestHoverOneHopReference(t *testing.T) {
	ctx := testutil.NewMockServerContextWithCatalog()

	hover := requestHover(t, ctx, "h1 { font-size: var(--text-body); }", 0, 24)
	require.NotNil(t, hover)

	content, ok := hover.Contents.(protocol.MarkupContent)
	require.True(t, ok)
	assert.Contains(t, content.Value, "# --text-body")
	assert.Contains(t, content.Value, "var(--font-size-100) → 1rem (16px)")
}

func TestHoverOutsideReference(t *testing.T) {
	ctx := testutil.NewMockServerContextWithCatalog()

	hover := requestHover(t, ctx, "a { margin: var(--space-100); }", 0, 4)
	assert.Nil(t, hover)
}

func TestHoverUnknownToken(t *testing.T) {
	ctx := testutil.NewMockServerContextWithCatalog()

	hover := requestHover(t, ctx, "a { margin: var(--nope); }", 0, 18)
	assert.Nil(t, hover)
}

func TestHoverMissingDocument(t *testing.T) {
	ctx := testutil.NewMockServerContextWithCatalog()
	req := types.NewRequestContext(ctx, &glsp.Context{})

	result, err := Hover(req, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: "file:///missing.css"},
			Position:     protocol.Position{Line: 0, Character: 0},
		},
	})
	require.NoError(t, err)
	assert.Nil(t, result)
}
