package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Schema modes applied to the managed entities when a factory is created
const (
	SchemaNone       = "none"
	SchemaValidate   = "validate"
	SchemaUpdate     = "update"
	SchemaCreate     = "create"
	SchemaCreateDrop = "create-drop"
)

var schemaModes = map[string]bool{
	SchemaNone:       true,
	SchemaValidate:   true,
	SchemaUpdate:     true,
	SchemaCreate:     true,
	SchemaCreateDrop: true,
}

// UnitInfo describes a persistence unit: where the store lives, which
// entities it manages and how the connection pool is sized.
type UnitInfo struct {
	UnitName        string   `yaml:"unit_name"`
	DatabaseURL     string   `yaml:"database_url"`
	Entities        []string `yaml:"entities"`
	SchemaMode      string   `yaml:"schema_mode"`
	ShowSQL         bool     `yaml:"show_sql"`
	MaxOpenConns    int      `yaml:"max_open_conns"`
	MaxIdleConns    int      `yaml:"max_idle_conns"`
	ConnMaxLifetime string   `yaml:"conn_max_lifetime"`
}

// DefaultUnitInfo returns the built-in persistence unit
func DefaultUnitInfo() *UnitInfo {
	return &UnitInfo{
		UnitName:        "product-unit",
		DatabaseURL:     "sqlite://products.db",
		Entities:        []string{"Product"},
		SchemaMode:      SchemaUpdate,
		ShowSQL:         false,
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: "30m",
	}
}

func LoadConfig(configPath string) (*UnitInfo, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Keys missing from the file keep their built-in values
	cfg := DefaultUnitInfo()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Resolve relative sqlite paths against the config file location
	if path, ok := strings.CutPrefix(cfg.DatabaseURL, "sqlite://"); ok {
		if path != ":memory:" && !filepath.IsAbs(path) {
			cfg.DatabaseURL = "sqlite://" + filepath.Join(filepath.Dir(configPath), path)
		}
	}

	return cfg, nil
}

// ApplyProperties overrides unit settings with runtime properties, keyed by
// the same names used in the config file.
func (c *UnitInfo) ApplyProperties(props map[string]string) error {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := props[key]
		switch key {
		case "unit_name":
			c.UnitName = value
		case "database_url":
			c.DatabaseURL = value
		case "entities":
			c.Entities = splitList(value)
		case "schema_mode":
			c.SchemaMode = value
		case "show_sql":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid value for show_sql: %q", value)
			}
			c.ShowSQL = b
		case "max_open_conns":
			n, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid value for max_open_conns: %q", value)
			}
			c.MaxOpenConns = n
		case "max_idle_conns":
			n, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid value for max_idle_conns: %q", value)
			}
			c.MaxIdleConns = n
		case "conn_max_lifetime":
			c.ConnMaxLifetime = value
		default:
			return fmt.Errorf("unknown property: %s", key)
		}
	}
	return nil
}

func (c *UnitInfo) Validate() error {
	if c.UnitName == "" {
		return fmt.Errorf("unit_name is required")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("database_url is required")
	}
	if c.Driver() == "" {
		return fmt.Errorf("unsupported database URL: %s", c.DatabaseURL)
	}
	if len(c.Entities) == 0 {
		return fmt.Errorf("entities must list at least one entity")
	}
	if !schemaModes[c.SchemaMode] {
		return fmt.Errorf("unknown schema_mode: %q", c.SchemaMode)
	}
	if c.MaxOpenConns < 0 {
		return fmt.Errorf("max_open_conns must not be negative")
	}
	if c.MaxIdleConns < 0 {
		return fmt.Errorf("max_idle_conns must not be negative")
	}
	if _, err := c.Lifetime(); err != nil {
		return err
	}
	return nil
}

// Driver reports which dialect the database URL selects, or "" when the
// scheme is not supported.
func (c *UnitInfo) Driver() string {
	switch {
	case strings.HasPrefix(c.DatabaseURL, "postgres://"), strings.HasPrefix(c.DatabaseURL, "postgresql://"):
		return "postgres"
	case strings.HasPrefix(c.DatabaseURL, "sqlite://"):
		return "sqlite"
	}
	return ""
}

// Lifetime parses ConnMaxLifetime; an empty value means connections are
// reused forever.
func (c *UnitInfo) Lifetime() (time.Duration, error) {
	if c.ConnMaxLifetime == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.ConnMaxLifetime)
	if err != nil {
		return 0, fmt.Errorf("invalid conn_max_lifetime: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("conn_max_lifetime must not be negative")
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
