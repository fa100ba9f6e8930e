package types

// Insertion style names accepted in configuration
const (
	// InsertionStyleVar inserts a full wrapped reference: var(--name)
	InsertionStyleVar = "var"

	// InsertionStyleBare inserts the bare custom-property name: --name
	InsertionStyleBare = "bare"
)

// ServerConfig represents the server configuration
type ServerConfig struct {
	// CatalogFiles specifies token catalog files to load (JSON, JSONC or
	// YAML). Relative paths resolve against the workspace root.
	// If empty, falls back to auto-discovery, then to the built-in catalog.
	CatalogFiles []string `json:"catalogFiles"`

	// Prefix is the CSS variable prefix applied to every token's rendered
	// name. Example: "ds" renders "--ds-color-bg-fill".
	Prefix string `json:"prefix"`

	// InsertionStyle selects what completions insert: "var" (wrapped
	// reference) or "bare" (property name only). A per-deployment choice.
	InsertionStyle string `json:"insertionStyle"`

	// ExtendedRanking enables contextual relevance scoring of completion
	// candidates. When false, candidates keep catalog declaration order.
	ExtendedRanking bool `json:"extendedRanking"`
}

// DefaultConfig returns the default server configuration
func DefaultConfig() ServerConfig {
	return ServerConfig{
		CatalogFiles:    nil, // Empty = auto-discover, then built-in catalog
		Prefix:          "",
		InsertionStyle:  InsertionStyleVar,
		ExtendedRanking: true,
	}
}

// AutoDiscoverPatterns are the glob patterns used to auto-discover catalog
// files when CatalogFiles is not explicitly configured.
var AutoDiscoverPatterns = []string{
	"**/tokens.json",
	"**/*.tokens.json",
	"**/design-tokens.json",
	"**/tokens.yaml",
	"**/*.tokens.yaml",
	"**/design-tokens.yaml",
	"**/tokens.yml",
	"**/*.tokens.yml",
	"**/design-tokens.yml",
}
