package schema

import (
	"fmt"

	"github.com/atuluttam/productpersist/internal/config"
	"github.com/atuluttam/productpersist/internal/registry"
	"gorm.io/gorm"
)

// Exporter applies a schema mode to the tables of the managed entities
type Exporter struct {
	db       *gorm.DB
	registry *registry.Registry
	mode     string
}

// NewExporter creates a new schema exporter
func NewExporter(db *gorm.DB, registry *registry.Registry, mode string) *Exporter {
	return &Exporter{
		db:       db,
		registry: registry,
		mode:     mode,
	}
}

// Mode returns the schema mode
func (e *Exporter) Mode() string {
	return e.mode
}

// Apply brings the tables in line with the schema mode. It runs once, when a
// factory is created.
func (e *Exporter) Apply() error {
	switch e.mode {
	case config.SchemaNone:
		return nil
	case config.SchemaValidate:
		return e.validate()
	case config.SchemaUpdate:
		return e.update()
	case config.SchemaCreate, config.SchemaCreateDrop:
		if err := e.drop(); err != nil {
			return err
		}
		return e.update()
	}
	return fmt.Errorf("unknown schema mode: %q", e.mode)
}

// Teardown drops the tables when the mode is create-drop; other modes leave
// the store untouched.
func (e *Exporter) Teardown() error {
	if e.mode != config.SchemaCreateDrop {
		return nil
	}
	return e.drop()
}

// MissingTables returns the names of entities whose table does not exist
func (e *Exporter) MissingTables() []string {
	var missing []string
	migrator := e.db.Migrator()
	for _, entity := range e.registry.All() {
		if !migrator.HasTable(entity.New()) {
			missing = append(missing, entity.Name)
		}
	}
	return missing
}

func (e *Exporter) validate() error {
	if missing := e.MissingTables(); len(missing) > 0 {
		return fmt.Errorf("schema validation failed: missing tables for %v", missing)
	}
	return nil
}

func (e *Exporter) update() error {
	for _, entity := range e.registry.All() {
		if err := e.db.AutoMigrate(entity.New()); err != nil {
			return fmt.Errorf("failed to create table for %s: %w", entity.Name, err)
		}
	}
	return nil
}

func (e *Exporter) drop() error {
	migrator := e.db.Migrator()
	for _, entity := range e.registry.All() {
		if err := migrator.DropTable(entity.New()); err != nil {
			return fmt.Errorf("failed to drop table for %s: %w", entity.Name, err)
		}
	}
	return nil
}
