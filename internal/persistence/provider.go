package persistence

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/atuluttam/productpersist/internal/config"
	"github.com/atuluttam/productpersist/internal/registry"
	"github.com/atuluttam/productpersist/internal/schema"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Provider builds session factories for the entities in its registry
type Provider struct {
	registry  *registry.Registry
	logOutput io.Writer
}

// NewProvider creates a provider over the given entity registry
func NewProvider(reg *registry.Registry) *Provider {
	return &Provider{
		registry:  reg,
		logOutput: os.Stdout,
	}
}

// SetLogOutput redirects SQL and warning logs
func (p *Provider) SetLogOutput(w io.Writer) {
	p.logOutput = w
}

// CreateFactory opens the store described by info, with props overriding
// individual settings, and bootstraps the schema. info is not modified.
func (p *Provider) CreateFactory(info *config.UnitInfo, props map[string]string) (*Factory, error) {
	cfg := *info
	cfg.Entities = append([]string(nil), info.Entities...)
	if err := cfg.ApplyProperties(props); err != nil {
		return nil, fmt.Errorf("invalid properties: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid persistence unit %q: %w", cfg.UnitName, err)
	}

	managed, err := p.registry.Select(cfg.Entities)
	if err != nil {
		return nil, fmt.Errorf("invalid persistence unit %q: %w", cfg.UnitName, err)
	}

	db, err := connectDB(&cfg, p.logOutput)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	lifetime, _ := cfg.Lifetime()
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(lifetime)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	exporter := schema.NewExporter(db, managed, cfg.SchemaMode)
	if err := exporter.Apply(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("schema bootstrap failed: %w", err)
	}

	return newFactory(db, cfg, managed, exporter), nil
}

// connectDB opens the database selected by the URL scheme
func connectDB(cfg *config.UnitInfo, out io.Writer) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: newLogger(out, cfg.ShowSQL)}

	switch cfg.Driver() {
	case "postgres":
		return gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
	case "sqlite":
		path := strings.TrimPrefix(cfg.DatabaseURL, "sqlite://")
		return gorm.Open(sqlite.Open(path), gormCfg)
	}
	return nil, fmt.Errorf("unsupported database URL: %s", cfg.DatabaseURL)
}

// newLogger logs every statement when showSQL is set, otherwise only
// warnings and slow queries.
func newLogger(out io.Writer, showSQL bool) logger.Interface {
	level := logger.Warn
	if showSQL {
		level = logger.Info
	}
	return logger.New(log.New(out, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
