package persistence

import "errors"

var (
	ErrFactoryClosed        = errors.New("session factory is closed")
	ErrSessionClosed        = errors.New("session is closed")
	ErrTransactionActive    = errors.New("transaction already active")
	ErrTransactionNotActive = errors.New("transaction not active")
	ErrTransactionRequired  = errors.New("no active transaction")
	ErrInvalidEntity        = errors.New("entity must be a non-nil pointer to a struct")
	ErrUnknownEntity        = errors.New("unknown entity")
	ErrMissingIdentifier    = errors.New("entity identifier must be assigned before persist")
	ErrEntityExists         = errors.New("an entity with the same identifier is already managed")
)
