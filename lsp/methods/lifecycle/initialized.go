package lifecycle

import (
	"github.com/tokencatalog/tcls/internal/log"
	"github.com/tokencatalog/tcls/lsp/types"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Initialized handles the LSP initialized notification
func Initialized(req *types.RequestContext, params *protocol.InitializedParams) error {
	log.Info("Server initialized")

	// Store context for later use (client notifications)
	req.Server.SetGLSPContext(req.GLSP)

	return nil
}
