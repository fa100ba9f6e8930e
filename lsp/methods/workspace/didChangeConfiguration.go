package workspace

import (
	"encoding/json"
	"fmt"

	"github.com/tokencatalog/tcls/internal/log"
	"github.com/tokencatalog/tcls/lsp/types"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// DidChangeConfiguration handles the workspace/didChangeConfiguration
// notification. Only presentation settings (insertion style, extended
// ranking) take effect at runtime. The catalog is built once at initialize
// and stays fixed, so changes to catalogFiles or prefix require a restart.
func DidChangeConfiguration(req *types.RequestContext, params *protocol.DidChangeConfigurationParams) error {
	log.Info("Configuration changed")

	config, err := ParseConfiguration(params.Settings)
	if err != nil {
		log.Warn("Failed to parse configuration, keeping current settings: %v", err)
		return nil
	}

	current := req.Server.GetConfig()

	if config.Prefix != current.Prefix || !equalStrings(config.CatalogFiles, current.CatalogFiles) {
		log.Warn("catalogFiles and prefix changes take effect on restart")
	}

	current.InsertionStyle = config.InsertionStyle
	current.ExtendedRanking = config.ExtendedRanking
	req.Server.SetConfig(current)

	log.Info("Updated settings: insertionStyle=%s extendedRanking=%t",
		current.InsertionStyle, current.ExtendedRanking)

	return nil
}

// ParseConfiguration parses the configuration object sent by the client.
// Missing or malformed settings fall back to defaults.
func ParseConfiguration(settings any) (types.ServerConfig, error) {
	config := types.DefaultConfig()

	if settings == nil {
		return config, nil
	}

	settingsMap, ok := settings.(map[string]any)
	if !ok {
		return config, fmt.Errorf("settings is not a map")
	}

	// Settings arrive nested under the server's configuration section
	var ourSettings any
	if val, exists := settingsMap["tokenCatalogLanguageServer"]; exists {
		ourSettings = val
	} else if val, exists := settingsMap["token-catalog-language-server"]; exists {
		ourSettings = val
	} else {
		return config, nil
	}

	// Convert to JSON and back to parse into struct
	jsonBytes, err := json.Marshal(ourSettings)
	if err != nil {
		return config, fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := json.Unmarshal(jsonBytes, &config); err != nil {
		return config, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	if config.InsertionStyle != types.InsertionStyleVar && config.InsertionStyle != types.InsertionStyleBare {
		return types.DefaultConfig(), fmt.Errorf("invalid insertionStyle %q", config.InsertionStyle)
	}

	return config, nil
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
