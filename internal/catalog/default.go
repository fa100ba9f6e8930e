package catalog

import (
	_ "embed"
	"fmt"
)

// defaultDataset is the built-in token catalog, used when no catalog files
// are configured or discovered in the workspace.
//
//go:embed default_tokens.json
var defaultDataset []byte

// Default builds the catalog from the embedded default dataset
func Default(opts Options) (*Catalog, error) {
	groups, err := ParseJSON(defaultDataset)
	if err != nil {
		return nil, fmt.Errorf("embedded default dataset: %w", err)
	}
	return Build(groups, opts)
}
