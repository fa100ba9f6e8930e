package lsp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tokencatalog/tcls/internal/documents"
	"github.com/tokencatalog/tcls/lsp/types"
)

func newTestServer() *Server {
	return &Server{
		documents: documents.NewManager(),
		config:    types.DefaultConfig(),
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCatalogFromConfig(t *testing.T) {
	t.Run("falls back to the built-in catalog", func(t *testing.T) {
		s := newTestServer()

		require.NoError(t, s.LoadCatalogFromConfig())
		require.NotNil(t, s.Catalog())
		assert.Greater(t, s.Catalog().Len(), 50)
	})

	t.Run("loads explicit JSON catalog files", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "my-tokens.json", `{
			// brand palette
			"color": {
				"color-brand": { "value": "#663399", "description": "Brand purple" }
			}
		}`)

		s := newTestServer()
		s.SetRootPath(dir)
		cfg := s.GetConfig()
		cfg.CatalogFiles = []string{"my-tokens.json"}
		s.SetConfig(cfg)

		require.NoError(t, s.LoadCatalogFromConfig())
		require.NotNil(t, s.Catalog())
		assert.Equal(t, 1, s.Catalog().Len())
		assert.NotNil(t, s.Catalog().Lookup("--color-brand"))
	})

	t.Run("loads explicit YAML catalog files", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "tokens.yaml", "space:\n  space-100: 0.25rem\n")

		s := newTestServer()
		s.SetRootPath(dir)
		cfg := s.GetConfig()
		cfg.CatalogFiles = []string{"tokens.yaml"}
		s.SetConfig(cfg)

		require.NoError(t, s.LoadCatalogFromConfig())
		assert.NotNil(t, s.Catalog().Lookup("--space-100"))
	})

	t.Run("applies the configured prefix", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "tokens.yaml", "space:\n  space-100: 0.25rem\n")

		s := newTestServer()
		s.SetRootPath(dir)
		cfg := s.GetConfig()
		cfg.CatalogFiles = []string{"tokens.yaml"}
		cfg.Prefix = "ds"
		s.SetConfig(cfg)

		require.NoError(t, s.LoadCatalogFromConfig())
		assert.NotNil(t, s.Catalog().Lookup("--ds-space-100"))
		assert.Nil(t, s.Catalog().Lookup("--space-100"))
	})

	t.Run("fails on a missing catalog file", func(t *testing.T) {
		s := newTestServer()
		s.SetRootPath(t.TempDir())
		cfg := s.GetConfig()
		cfg.CatalogFiles = []string{"nope.json"}
		s.SetConfig(cfg)

		err := s.LoadCatalogFromConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nope.json")
	})

	t.Run("fails on an invalid token name", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "tokens.json", `{"color": {"--color-bad": "#fff"}}`)

		s := newTestServer()
		s.SetRootPath(dir)
		cfg := s.GetConfig()
		cfg.CatalogFiles = []string{"tokens.json"}
		s.SetConfig(cfg)

		require.Error(t, s.LoadCatalogFromConfig())
	})

	t.Run("fails on duplicate names across files", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.json", `{"color": {"color-brand": "#fff"}}`)
		writeFile(t, dir, "b.json", `{"color": {"color-brand": "#000"}}`)

		s := newTestServer()
		s.SetRootPath(dir)
		cfg := s.GetConfig()
		cfg.CatalogFiles = []string{"a.json", "b.json"}
		s.SetConfig(cfg)

		require.Error(t, s.LoadCatalogFromConfig())
	})

	t.Run("auto-discovers catalog files in the workspace", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "styles/brand.tokens.json", `{"color": {"color-brand": "#663399"}}`)

		s := newTestServer()
		s.SetRootPath(dir)

		require.NoError(t, s.LoadCatalogFromConfig())
		assert.NotNil(t, s.Catalog().Lookup("--color-brand"))
	})

	t.Run("discovery skips node_modules and hidden directories", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "node_modules/pkg/tokens.json", `{"color": {"color-vendored": "#fff"}}`)
		writeFile(t, dir, ".cache/tokens.json", `{"color": {"color-cached": "#fff"}}`)

		s := newTestServer()
		s.SetRootPath(dir)

		// Nothing discoverable, so the built-in catalog loads
		require.NoError(t, s.LoadCatalogFromConfig())
		assert.Nil(t, s.Catalog().Lookup("--color-vendored"))
		assert.Nil(t, s.Catalog().Lookup("--color-cached"))
	})
}

func TestLoadCatalogFile(t *testing.T) {
	t.Run("rejects unknown extensions", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "tokens.toml", "")

		_, err := loadCatalogFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported catalog file extension")
	})

	t.Run("accepts jsonc", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "tokens.jsonc", `{
			// comment
			"space": {"space-100": "0.25rem"},
		}`)

		groups, err := loadCatalogFile(path)
		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.Equal(t, "space", groups[0].Name)
	})
}
