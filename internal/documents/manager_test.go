package documents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDidOpenAndGet(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.DidOpen("file:///a.css", "css", 1, "body {}"))

	doc := m.Get("file:///a.css")
	require.NotNil(t, doc)
	assert.Equal(t, "css", doc.LanguageID())
	assert.Equal(t, "body {}", doc.Content())
	assert.Equal(t, 1, doc.Version())
}

func TestDidClose(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.DidOpen("file:///a.css", "css", 1, ""))
	require.NoError(t, m.DidClose("file:///a.css"))
	assert.Nil(t, m.Get("file:///a.css"))

	assert.Error(t, m.DidClose("file:///missing.css"))
}

func TestDidChangeFullUpdate(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.DidOpen("file:///a.css", "css", 1, "old"))

	err := m.DidChange("file:///a.css", 2, []protocol.TextDocumentContentChangeEvent{
		{Text: "new content"},
	})
	require.NoError(t, err)
	assert.Equal(t, "new content", m.Get("file:///a.css").Content())
}

func TestDidChangeIncremental(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.DidOpen("file:///a.css", "css", 1, "margin: ;"))

	err := m.DidChange("file:///a.css", 2, []protocol.TextDocumentContentChangeEvent{
		{
			Range: &protocol.Range{
				Start: protocol.Position{Line: 0, Character: 8},
				End:   protocol.Position{Line: 0, Character: 8},
			},
			Text: "var(--space-100)",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "margin: var(--space-100);", m.Get("file:///a.css").Content())
}

func TestDidChangeMultiLine(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.DidOpen("file:///a.css", "css", 1, "a {\n  color: red;\n}"))

	err := m.DidChange("file:///a.css", 2, []protocol.TextDocumentContentChangeEvent{
		{
			Range: &protocol.Range{
				Start: protocol.Position{Line: 1, Character: 9},
				End:   protocol.Position{Line: 1, Character: 12},
			},
			Text: "blue",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "a {\n  color: blue;\n}", m.Get("file:///a.css").Content())
}

func TestDidChangeStaleVersionRejected(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.DidOpen("file:///a.css", "css", 5, "content"))

	err := m.DidChange("file:///a.css", 3, []protocol.TextDocumentContentChangeEvent{
		{Text: "stale"},
	})
	assert.Error(t, err)
	assert.Equal(t, "content", m.Get("file:///a.css").Content())
}

func TestDocumentLine(t *testing.T) {
	doc := NewDocument("file:///a.css", "css", 1, "first\nsecond\nthird")

	line, ok := doc.Line(1)
	assert.True(t, ok)
	assert.Equal(t, "second", line)

	_, ok = doc.Line(3)
	assert.False(t, ok)

	_, ok = doc.Line(-1)
	assert.False(t, ok)
}
