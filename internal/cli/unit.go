package cli

import (
	"fmt"
	"strings"

	"github.com/atuluttam/productpersist/internal/config"
	"github.com/atuluttam/productpersist/internal/utils"
)

// loadUnitInfo reads the config file when present and falls back to the
// built-in persistence unit otherwise.
func loadUnitInfo(path string) (*config.UnitInfo, error) {
	if !utils.FileExists(path) {
		return config.DefaultUnitInfo(), nil
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// parseProperties turns key=value flags into factory properties
func parseProperties(pairs []string) (map[string]string, error) {
	props := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid property %q, expected key=value", pair)
		}
		props[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return props, nil
}
