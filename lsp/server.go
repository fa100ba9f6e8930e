package lsp

import (
	"sync"

	"github.com/tokencatalog/tcls/internal/catalog"
	"github.com/tokencatalog/tcls/internal/documents"
	"github.com/tokencatalog/tcls/lsp/methods/lifecycle"
	"github.com/tokencatalog/tcls/lsp/methods/textDocument"
	"github.com/tokencatalog/tcls/lsp/methods/textDocument/completion"
	documentcolor "github.com/tokencatalog/tcls/lsp/methods/textDocument/documentColor"
	"github.com/tokencatalog/tcls/lsp/methods/textDocument/hover"
	"github.com/tokencatalog/tcls/lsp/methods/workspace"
	"github.com/tokencatalog/tcls/lsp/types"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

// Verify that Server implements ServerContext interface
var _ types.ServerContext = (*Server)(nil)

// Server represents the Token Catalog Language Server
type Server struct {
	documents  *documents.Manager
	glspServer *server.Server
	context    *glsp.Context
	catalog    *catalog.Catalog
	rootURI    string             // Workspace root URI
	rootPath   string             // Workspace root path (file system)
	config     types.ServerConfig // Server configuration
	configMu   sync.RWMutex       // Protects config, catalog, context and root from concurrent access
}

// NewServer creates a new Token Catalog LSP server
func NewServer() (*Server, error) {
	s := &Server{
		documents: documents.NewManager(),
		config:    types.DefaultConfig(),
	}

	// Create the GLSP server with our handlers wrapped with middleware
	protocolHandler := protocol.Handler{
		Initialize:                      method(s, "initialize", lifecycle.Initialize),
		Initialized:                     notify(s, "initialized", lifecycle.Initialized),
		Shutdown:                        noParam(s, "shutdown", lifecycle.Shutdown),
		SetTrace:                        notify(s, "$/setTrace", lifecycle.SetTrace),
		WorkspaceDidChangeConfiguration: notify(s, "workspace/didChangeConfiguration", workspace.DidChangeConfiguration),
		TextDocumentDidOpen:             notify(s, "textDocument/didOpen", textDocument.DidOpen),
		TextDocumentDidChange:           notify(s, "textDocument/didChange", textDocument.DidChange),
		TextDocumentDidClose:            notify(s, "textDocument/didClose", textDocument.DidClose),
		TextDocumentHover:               method(s, "textDocument/hover", hover.Hover),
		TextDocumentCompletion:          method(s, "textDocument/completion", completion.Completion),
		TextDocumentColor:               method(s, "textDocument/documentColor", documentcolor.DocumentColor),
		TextDocumentColorPresentation:   method(s, "textDocument/colorPresentation", documentcolor.ColorPresentation),
	}

	s.glspServer = server.NewServer(&protocolHandler, "token-catalog-language-server", false)

	return s, nil
}

// RunStdio starts the LSP server using stdio transport
func (s *Server) RunStdio() error {
	return s.glspServer.RunStdio()
}

// ServerContext interface implementation

// Document returns the document with the given URI
func (s *Server) Document(uri string) *documents.Document {
	return s.documents.Get(uri)
}

// DocumentManager returns the document manager
func (s *Server) DocumentManager() *documents.Manager {
	return s.documents
}

// AllDocuments returns all tracked documents
func (s *Server) AllDocuments() []*documents.Document {
	return s.documents.GetAll()
}

// Catalog returns the token catalog. Nil until initialize succeeds.
func (s *Server) Catalog() *catalog.Catalog {
	s.configMu.RLock()
	defer s.configMu.RUnlock()
	return s.catalog
}

// SetCatalog replaces the token catalog
func (s *Server) SetCatalog(cat *catalog.Catalog) {
	s.configMu.Lock()
	defer s.configMu.Unlock()
	s.catalog = cat
}

// RootURI returns the workspace root URI
func (s *Server) RootURI() string {
	s.configMu.RLock()
	defer s.configMu.RUnlock()
	return s.rootURI
}

// RootPath returns the workspace root filesystem path
func (s *Server) RootPath() string {
	s.configMu.RLock()
	defer s.configMu.RUnlock()
	return s.rootPath
}

// SetRootURI stores the workspace root URI
func (s *Server) SetRootURI(uri string) {
	s.configMu.Lock()
	defer s.configMu.Unlock()
	s.rootURI = uri
}

// SetRootPath stores the workspace root filesystem path
func (s *Server) SetRootPath(path string) {
	s.configMu.Lock()
	defer s.configMu.Unlock()
	s.rootPath = path
}

// GetConfig returns the current server configuration
func (s *Server) GetConfig() types.ServerConfig {
	s.configMu.RLock()
	defer s.configMu.RUnlock()
	return s.config
}

// SetConfig updates the server configuration
func (s *Server) SetConfig(config types.ServerConfig) {
	s.configMu.Lock()
	defer s.configMu.Unlock()
	s.config = config
}

// GLSPContext returns the stored glsp context, if any
func (s *Server) GLSPContext() *glsp.Context {
	s.configMu.RLock()
	defer s.configMu.RUnlock()
	return s.context
}

// SetGLSPContext stores the glsp context for later notifications
func (s *Server) SetGLSPContext(ctx *glsp.Context) {
	s.configMu.Lock()
	defer s.configMu.Unlock()
	s.context = ctx
}
