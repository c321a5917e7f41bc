package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/atuluttam/productpersist/internal/config"
	"github.com/atuluttam/productpersist/internal/entities"
	"github.com/atuluttam/productpersist/internal/persistence"
)

// DefaultProduct is the product stored when the caller does not pick one
func DefaultProduct() *entities.Product {
	return &entities.Product{ID: 101, Name: "Laptop"}
}

// SaveProduct stores product in a single unit of work: it creates a
// factory, opens a session, persists the product, commits and closes
// everything again. There is no retry; the first failure is returned.
func SaveProduct(provider *persistence.Provider, info *config.UnitInfo, props map[string]string, product *entities.Product, out io.Writer) (err error) {
	factory, err := provider.CreateFactory(info, props)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := factory.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close factory: %w", cerr))
		}
	}()

	session, err := factory.NewSession()
	if err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close session: %w", cerr))
		}
	}()

	tx := session.Transaction()
	if err := tx.Begin(); err != nil {
		return err
	}
	if err := session.Persist(product); err != nil {
		return fmt.Errorf("failed to persist product %d: %w", product.ID, err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	fmt.Fprintln(out, "Product saved successfully.")
	return nil
}
