package lifecycle

import (
	"fmt"

	"github.com/tokencatalog/tcls/internal/log"
	"github.com/tokencatalog/tcls/internal/uriutil"
	"github.com/tokencatalog/tcls/lsp/methods/workspace"
	"github.com/tokencatalog/tcls/lsp/types"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Initialize handles the LSP initialize request. The token catalog is
// built here, exactly once; a catalog that fails to load or validate
// fails the whole initialize so the client sees a hard error instead of
// a server with silently missing tokens.
func Initialize(req *types.RequestContext, params *protocol.InitializeParams) (any, error) {
	clientName := "unknown"
	if params.ClientInfo != nil {
		clientName = params.ClientInfo.Name
	}

	log.Info("Initializing for client: %s", clientName)

	// Store the workspace root
	if params.RootURI != nil {
		req.Server.SetRootURI(*params.RootURI)
		req.Server.SetRootPath(uriutil.URIToPath(*params.RootURI))
		log.Info("Workspace root: %s", req.Server.RootPath())
	} else if params.RootPath != nil {
		req.Server.SetRootPath(*params.RootPath)
		req.Server.SetRootURI(uriutil.PathToURI(*params.RootPath))
		log.Info("Workspace root (from rootPath): %s", req.Server.RootPath())
	}

	// Initialization options use the same shape as didChangeConfiguration
	// settings, so clients can configure the server either way
	if params.InitializationOptions != nil {
		config, err := workspace.ParseConfiguration(params.InitializationOptions)
		if err != nil {
			log.Warn("Invalid initialization options, using defaults: %v", err)
		} else {
			req.Server.SetConfig(config)
		}
	}

	if err := req.Server.LoadCatalogFromConfig(); err != nil {
		return nil, fmt.Errorf("failed to load token catalog: %w", err)
	}

	syncKind := protocol.TextDocumentSyncKindIncremental
	capabilities := protocol.ServerCapabilities{
		TextDocumentSync: protocol.TextDocumentSyncOptions{
			OpenClose: boolPtr(true),
			Change:    &syncKind,
		},
		HoverProvider: true,
		CompletionProvider: &protocol.CompletionOptions{
			TriggerCharacters: []string{"-"},
		},
		ColorProvider: true,
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    "token-catalog-language-server",
			Version: strPtr("1.0.0"),
		},
	}, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func strPtr(s string) *string {
	return &s
}
