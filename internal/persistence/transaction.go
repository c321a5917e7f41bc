package persistence

import (
	"fmt"

	"gorm.io/gorm"
)

// Transaction is the unit of work of a session
type Transaction struct {
	session *Session
	tx      *gorm.DB
}

func (t *Transaction) IsActive() bool {
	return t.tx != nil
}

// Begin starts a database transaction
func (t *Transaction) Begin() error {
	if t.session.closed {
		return ErrSessionClosed
	}
	if t.IsActive() {
		return ErrTransactionActive
	}
	tx := t.session.factory.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	t.tx = tx
	return nil
}

// Commit flushes pending inserts and commits. Any failure rolls the
// transaction back before the error is returned.
func (t *Transaction) Commit() error {
	if !t.IsActive() {
		return ErrTransactionNotActive
	}
	if err := t.session.Flush(); err != nil {
		t.rollback()
		return fmt.Errorf("commit failed: %w", err)
	}
	err := t.tx.Commit().Error
	t.tx = nil
	if err != nil {
		t.session.detachAll()
		return fmt.Errorf("commit failed: %w", err)
	}
	return nil
}

// Rollback discards the transaction and everything persisted in it
func (t *Transaction) Rollback() error {
	if !t.IsActive() {
		return ErrTransactionNotActive
	}
	if err := t.rollback(); err != nil {
		return fmt.Errorf("rollback failed: %w", err)
	}
	return nil
}

func (t *Transaction) rollback() error {
	err := t.tx.Rollback().Error
	t.tx = nil
	t.session.detachAll()
	return err
}
