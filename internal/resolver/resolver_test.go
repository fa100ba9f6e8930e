package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokencatalog/tcls/internal/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Build([]catalog.RawGroup{
		{
			Name: "font",
			Tokens: []catalog.RawToken{
				{Name: "font-size-100", Value: "1rem"},
			},
		},
		{
			Name: "text",
			Tokens: []catalog.RawToken{
				{Name: "text-body", Value: "var(--font-size-100)"},
				{Name: "text-chain", Value: "var(--text-body)"},
			},
		},
		{
			Name: "color",
			Tokens: []catalog.RawToken{
				{Name: "color-bg-fill", Value: "#ffffff"},
			},
		},
		{
			Name: "space",
			Tokens: []catalog.RawToken{
				{Name: "space-0", Value: "0rem"},
				{Name: "space-100", Value: "0.25rem"},
			},
		},
	}, catalog.Options{})
	require.NoError(t, err)
	return c
}

func TestResolveLiteral(t *testing.T) {
	cat := testCatalog(t)

	res := Resolve(cat, "#ffffff")
	assert.Equal(t, "#ffffff", res.Value)
	assert.Equal(t, "#ffffff", res.Detail)
}

func TestResolveLiteralRem(t *testing.T) {
	cat := testCatalog(t)

	res := Resolve(cat, "1rem")
	assert.Equal(t, "1rem", res.Value)
	assert.Equal(t, "1rem (16px)", res.Detail)

	res = Resolve(cat, "0.25rem")
	assert.Equal(t, "0.25rem (4px)", res.Detail)
}

func TestResolveZeroRemNoConversion(t *testing.T) {
	cat := testCatalog(t)

	res := Resolve(cat, "0rem")
	assert.Equal(t, "0rem", res.Detail)
}

func TestResolveReference(t *testing.T) {
	cat := testCatalog(t)

	res := Resolve(cat, "var(--font-size-100)")
	assert.Equal(t, "1rem", res.Value)
	assert.Equal(t, "var(--font-size-100) → 1rem (16px)", res.Detail)
}

func TestResolveReferenceWithoutConvertibleUnit(t *testing.T) {
	cat := testCatalog(t)

	res := Resolve(cat, "var(--color-bg-fill)")
	assert.Equal(t, "#ffffff", res.Value)
	assert.Equal(t, "var(--color-bg-fill) → #ffffff", res.Detail)
}

func TestResolveOneHopOnly(t *testing.T) {
	cat := testCatalog(t)

	// Referencing a token whose own value is a reference reports the inner
	// reference verbatim, unexpanded.
	res := Resolve(cat, "var(--text-chain)")
	assert.Equal(t, "var(--font-size-100)", res.Value)
	assert.Equal(t, "var(--text-chain) → var(--font-size-100)", res.Detail)
}

func TestResolveUnknownReferenceIdentityFallback(t *testing.T) {
	cat := testCatalog(t)

	res := Resolve(cat, "var(--does-not-exist)")
	assert.Equal(t, "var(--does-not-exist)", res.Value)
	assert.Equal(t, "var(--does-not-exist)", res.Detail)
}

func TestIsReference(t *testing.T) {
	assert.True(t, IsReference("var(--space-100)"))
	assert.False(t, IsReference("1rem"))
	assert.False(t, IsReference("var(--space-100) solid"))
	assert.False(t, IsReference("var(--space-100"))
}

func TestReferenceName(t *testing.T) {
	assert.Equal(t, "--space-100", ReferenceName("var(--space-100)"))
	assert.Equal(t, "", ReferenceName("0.25rem"))
}
