package testutil

import (
	"github.com/tokencatalog/tcls/internal/catalog"
	"github.com/tokencatalog/tcls/internal/documents"
	"github.com/tokencatalog/tcls/lsp/types"
	"github.com/tliron/glsp"
)

// MockServerContext implements types.ServerContext for testing.
// It provides a minimal implementation with configurable behavior via callback functions.
type MockServerContext struct {
	docs        *documents.Manager
	catalog     *catalog.Catalog
	rootURI     string
	rootPath    string
	config      types.ServerConfig
	glspContext *glsp.Context

	// Optional callbacks for custom behavior in tests
	LoadCatalogFunc func() error

	// Tracking flags for tests that need to verify methods were called
	LoadCatalogCalled bool
}

// NewMockServerContext creates a new mock server context with default behavior
func NewMockServerContext() *MockServerContext {
	return &MockServerContext{
		docs:     documents.NewManager(),
		config:   types.DefaultConfig(),
		rootURI:  "",
		rootPath: "",
	}
}

// NewMockServerContextWithCatalog creates a mock with the built-in catalog
// loaded, for handler tests that need real tokens.
func NewMockServerContextWithCatalog() *MockServerContext {
	m := NewMockServerContext()
	cat, err := catalog.Default(catalog.Options{})
	if err != nil {
		panic(err)
	}
	m.catalog = cat
	return m
}

// Document returns the document with the given URI
func (m *MockServerContext) Document(uri string) *documents.Document {
	return m.docs.Get(uri)
}

// DocumentManager returns the document manager
func (m *MockServerContext) DocumentManager() *documents.Manager {
	return m.docs
}

// AllDocuments returns all tracked documents
func (m *MockServerContext) AllDocuments() []*documents.Document {
	return m.docs.GetAll()
}

// Catalog returns the token catalog
func (m *MockServerContext) Catalog() *catalog.Catalog {
	return m.catalog
}

// SetCatalog replaces the token catalog
func (m *MockServerContext) SetCatalog(cat *catalog.Catalog) {
	m.catalog = cat
}

// LoadCatalogFromConfig loads the catalog from configuration
func (m *MockServerContext) LoadCatalogFromConfig() error {
	m.LoadCatalogCalled = true
	if m.LoadCatalogFunc != nil {
		return m.LoadCatalogFunc()
	}
	if m.catalog == nil {
		cat, err := catalog.Default(catalog.Options{Prefix: m.config.Prefix})
		if err != nil {
			return err
		}
		m.catalog = cat
	}
	return nil
}

// RootURI returns the workspace root URI
func (m *MockServerContext) RootURI() string {
	return m.rootURI
}

// RootPath returns the workspace root path
func (m *MockServerContext) RootPath() string {
	return m.rootPath
}

// SetRootURI sets the workspace root URI
func (m *MockServerContext) SetRootURI(uri string) {
	m.rootURI = uri
}

// SetRootPath sets the workspace root path
func (m *MockServerContext) SetRootPath(path string) {
	m.rootPath = path
}

// GetConfig returns the server configuration
func (m *MockServerContext) GetConfig() types.ServerConfig {
	return m.config
}

// SetConfig sets the server configuration
func (m *MockServerContext) SetConfig(config types.ServerConfig) {
	m.config = config
}

// GLSPContext returns the GLSP context
func (m *MockServerContext) GLSPContext() *glsp.Context {
	return m.glspContext
}

// SetGLSPContext sets the GLSP context
func (m *MockServerContext) SetGLSPContext(ctx *glsp.Context) {
	m.glspContext = ctx
}
