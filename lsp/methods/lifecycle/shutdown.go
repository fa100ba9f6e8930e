package lifecycle

import (
	"github.com/tokencatalog/tcls/internal/log"
	"github.com/tokencatalog/tcls/lsp/types"
)

// Shutdown handles the LSP shutdown request
func Shutdown(req *types.RequestContext) error {
	log.Info("Server shutting down")
	return nil
}
