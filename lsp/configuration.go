package lsp

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tokencatalog/tcls/internal/catalog"
	"github.com/tokencatalog/tcls/internal/log"
	"github.com/tokencatalog/tcls/lsp/types"
)

// LoadCatalogFromConfig builds the token catalog from the current
// configuration. Resolution order: explicit catalogFiles, then workspace
// auto-discovery, then the built-in catalog. Any load or validation error
// fails the whole build so the server can refuse to initialize, rather
// than serving a partial catalog.
func (s *Server) LoadCatalogFromConfig() error {
	cfg := s.GetConfig()
	opts := catalog.Options{Prefix: cfg.Prefix}

	files := cfg.CatalogFiles
	if len(files) == 0 {
		discovered, err := s.discoverCatalogFiles()
		if err != nil {
			return fmt.Errorf("catalog auto-discovery: %w", err)
		}
		files = discovered
	}

	if len(files) == 0 {
		log.Info("No catalog files configured or discovered, using built-in catalog")
		cat, err := catalog.Default(opts)
		if err != nil {
			return fmt.Errorf("built-in catalog: %w", err)
		}
		s.SetCatalog(cat)
		log.Info("Loaded %d tokens from the built-in catalog", cat.Len())
		return nil
	}

	var groups []catalog.RawGroup
	for _, file := range files {
		path := file
		if !filepath.IsAbs(path) {
			path = filepath.Join(s.RootPath(), path)
		}
		fileGroups, err := loadCatalogFile(path)
		if err != nil {
			return fmt.Errorf("catalog file %s: %w", file, err)
		}
		groups = append(groups, fileGroups...)
		log.Info("Loaded %d groups from %s", len(fileGroups), file)
	}

	cat, err := catalog.Build(groups, opts)
	if err != nil {
		return fmt.Errorf("catalog validation: %w", err)
	}

	s.SetCatalog(cat)
	log.Info("Loaded %d tokens from %d catalog files", cat.Len(), len(files))
	return nil
}

// loadCatalogFile reads and parses a single catalog file by extension
func loadCatalogFile(path string) ([]catalog.RawGroup, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return catalog.ParseJSON(content)
	case ".yaml", ".yml":
		return catalog.ParseYAML(content)
	default:
		return nil, fmt.Errorf("unsupported catalog file extension %q", filepath.Ext(path))
	}
}

// discoverCatalogFiles searches the workspace root for catalog files
// matching the well-known naming patterns. Results are absolute paths,
// deduplicated and sorted for deterministic load order.
func (s *Server) discoverCatalogFiles() ([]string, error) {
	root := s.RootPath()
	if root == "" {
		return nil, nil
	}

	fsys := os.DirFS(root)
	seen := make(map[string]bool)
	var matches []string

	for _, pattern := range types.AutoDiscoverPatterns {
		found, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}
		for _, rel := range found {
			if skipDiscoveredPath(rel) {
				continue
			}
			abs := filepath.Join(root, filepath.FromSlash(rel))
			if !seen[abs] {
				seen[abs] = true
				matches = append(matches, abs)
			}
		}
	}

	sort.Strings(matches)
	return matches, nil
}

// skipDiscoveredPath filters out vendored and hidden directories
func skipDiscoveredPath(rel string) bool {
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if part == "node_modules" || strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}
