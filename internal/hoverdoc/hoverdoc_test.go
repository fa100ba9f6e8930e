package hoverdoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokencatalog/tcls/internal/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Build([]catalog.RawGroup{
		{
			Name: "space",
			Tokens: []catalog.RawToken{
				{Name: "space-100", Value: "0.25rem", Description: "Base spacing unit"},
				{Name: "space-200", Value: "0.5rem"},
			},
		},
		{
			Name: "font",
			Tokens: []catalog.RawToken{
				{Name: "font-size-100", Value: "1rem"},
			},
		},
		{
			Name: "text",
			Tokens: []catalog.RawToken{
				{Name: "text-body", Value: "var(--font-size-100)", Description: "Body copy size"},
			},
		},
	}, catalog.Options{})
	require.NoError(t, err)
	return c
}

func TestLocateInsideReference(t *testing.T) {
	cat := testCatalog(t)
	line := "margin: var(--space-100);"
	offset := strings.Index(line, "--space-100") + 3

	info := Locate(cat, line, offset)
	require.NotNil(t, info)
	assert.Equal(t, "--space-100", info.Name)
	assert.Equal(t, "Base spacing unit", info.Description)
	assert.Equal(t, "0.25rem (4px)", info.Detail)
	assert.Equal(t, "var(--space-100)", line[info.Start:info.End])
}

func TestLocateOutsideReference(t *testing.T) {
	cat := testCatalog(t)
	line := "margin: var(--space-100);"

	assert.Nil(t, Locate(cat, line, 0))
	assert.Nil(t, Locate(cat, line, len(line)))
}

func TestLocateUnknownReference(t *testing.T) {
	cat := testCatalog(t)
	line := "margin: var(--does-not-exist);"
	offset := strings.Index(line, "--does") + 2

	assert.Nil(t, Locate(cat, line, offset))
}

func TestLocateResolvesOneHop(t *testing.T) {
	cat := testCatalog(t)
	line := "font-size: var(--text-body);"
	offset := strings.Index(line, "--text-body") + 2

	info := Locate(cat, line, offset)
	require.NotNil(t, info)
	assert.Equal(t, "--text-body", info.Name)
	assert.Equal(t, "var(--font-size-100) → 1rem (16px)", info.Detail)
}

func TestLocateFirstOfMultiple(t *testing.T) {
	cat := testCatalog(t)
	line := "padding: var(--space-100) var(--space-200);"

	first := Locate(cat, line, strings.Index(line, "--space-100"))
	require.NotNil(t, first)
	assert.Equal(t, "--space-100", first.Name)

	second := Locate(cat, line, strings.Index(line, "--space-200"))
	require.NotNil(t, second)
	assert.Equal(t, "--space-200", second.Name)
}

func TestLocateMalformedReference(t *testing.T) {
	cat := testCatalog(t)
	assert.Nil(t, Locate(cat, "margin: var(--space-100", 12))
}
