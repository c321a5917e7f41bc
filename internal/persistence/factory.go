package persistence

import (
	"errors"
	"fmt"
	"sync"

	"github.com/atuluttam/productpersist/internal/config"
	"github.com/atuluttam/productpersist/internal/registry"
	"github.com/atuluttam/productpersist/internal/schema"
	"gorm.io/gorm"
)

// Factory owns the connection pool of one persistence unit and hands out
// sessions against it.
type Factory struct {
	db       *gorm.DB
	info     config.UnitInfo
	registry *registry.Registry
	exporter *schema.Exporter
	schemas  *sync.Map
	closed   bool
}

func newFactory(db *gorm.DB, info config.UnitInfo, reg *registry.Registry, exporter *schema.Exporter) *Factory {
	return &Factory{
		db:       db,
		info:     info,
		registry: reg,
		exporter: exporter,
		schemas:  &sync.Map{},
	}
}

// NewSession opens a session with an empty persistence context
func (f *Factory) NewSession() (*Session, error) {
	if f.closed {
		return nil, ErrFactoryClosed
	}
	return newSession(f), nil
}

// UnitInfo returns the resolved settings the factory was created with
func (f *Factory) UnitInfo() config.UnitInfo {
	return f.info
}

// DB returns the underlying database handle
func (f *Factory) DB() *gorm.DB {
	return f.db
}

func (f *Factory) IsOpen() bool {
	return !f.closed
}

// Close drops create-drop tables and releases the connection pool
func (f *Factory) Close() error {
	if f.closed {
		return ErrFactoryClosed
	}
	f.closed = true

	var errs []error
	if err := f.exporter.Teardown(); err != nil {
		errs = append(errs, fmt.Errorf("schema teardown failed: %w", err))
	}
	sqlDB, err := f.db.DB()
	if err != nil {
		errs = append(errs, fmt.Errorf("failed to access connection pool: %w", err))
	} else if err := sqlDB.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close connection pool: %w", err))
	}
	return errors.Join(errs...)
}
