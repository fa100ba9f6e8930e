package types

import (
	"github.com/tokencatalog/tcls/internal/catalog"
	"github.com/tokencatalog/tcls/internal/documents"
	"github.com/tliron/glsp"
)

// ServerContext provides all dependencies needed for LSP handlers.
// This unified context eliminates handler-specific interfaces and enables
// dependency injection for testing.
type ServerContext interface {
	// Document operations
	Document(uri string) *documents.Document
	DocumentManager() *documents.Manager
	AllDocuments() []*documents.Document

	// Catalog operations. The catalog is built exactly once at startup and
	// is immutable afterward; Catalog returns nil before initialization.
	Catalog() *catalog.Catalog
	SetCatalog(cat *catalog.Catalog)
	LoadCatalogFromConfig() error

	// Workspace operations
	RootURI() string
	RootPath() string
	SetRootURI(uri string)
	SetRootPath(path string)

	// Configuration
	GetConfig() ServerConfig
	SetConfig(config ServerConfig)

	// LSP context (for client notifications)
	GLSPContext() *glsp.Context
	SetGLSPContext(ctx *glsp.Context)
}
