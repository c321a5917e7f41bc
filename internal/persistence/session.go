package persistence

import (
	"context"
	"fmt"
	"reflect"

	"gorm.io/gorm/schema"
)

// Session tracks the entities persisted through it and writes them in its
// transaction. A Session is not safe for concurrent use.
type Session struct {
	factory *Factory
	tx      *Transaction
	managed map[string]interface{}
	pending []interface{}
	closed  bool
}

func newSession(f *Factory) *Session {
	s := &Session{
		factory: f,
		managed: make(map[string]interface{}),
	}
	s.tx = &Transaction{session: s}
	return s
}

// Transaction returns the session's unit of work
func (s *Session) Transaction() *Transaction {
	return s.tx
}

// Persist makes entity managed; it is inserted when the transaction is
// flushed or committed. entity must be a pointer to a registered struct with
// its identifier already set.
func (s *Session) Persist(entity interface{}) error {
	if s.closed {
		return ErrSessionClosed
	}
	if !s.tx.IsActive() {
		return ErrTransactionRequired
	}
	if !isStructPointer(entity) {
		return fmt.Errorf("%w: got %T", ErrInvalidEntity, entity)
	}
	if !s.factory.registry.Has(entity) {
		return fmt.Errorf("%w: %T", ErrUnknownEntity, entity)
	}

	key, err := s.identify(entity)
	if err != nil {
		return err
	}
	if existing, ok := s.managed[key]; ok {
		if existing == entity {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrEntityExists, key)
	}

	s.managed[key] = entity
	s.pending = append(s.pending, entity)
	return nil
}

// Flush writes pending inserts in persist order without committing
func (s *Session) Flush() error {
	if s.closed {
		return ErrSessionClosed
	}
	if !s.tx.IsActive() {
		return ErrTransactionRequired
	}
	for len(s.pending) > 0 {
		entity := s.pending[0]
		if err := s.tx.tx.Create(entity).Error; err != nil {
			return fmt.Errorf("failed to insert %T: %w", entity, err)
		}
		s.pending = s.pending[1:]
	}
	return nil
}

// Contains reports whether entity is managed by this session
func (s *Session) Contains(entity interface{}) bool {
	if s.closed || !isStructPointer(entity) {
		return false
	}
	key, err := s.identify(entity)
	if err != nil {
		return false
	}
	return s.managed[key] == entity
}

func (s *Session) IsOpen() bool {
	return !s.closed
}

// Close rolls back an active transaction and detaches all entities
func (s *Session) Close() error {
	if s.closed {
		return ErrSessionClosed
	}
	var err error
	if s.tx.IsActive() {
		err = s.tx.Rollback()
	}
	s.detachAll()
	s.closed = true
	return err
}

func (s *Session) detachAll() {
	s.managed = make(map[string]interface{})
	s.pending = nil
}

// identify returns the persistence context key of entity: its table and
// primary key value.
func (s *Session) identify(entity interface{}) (string, error) {
	sch, err := schema.Parse(entity, s.factory.schemas, s.factory.db.NamingStrategy)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEntity, err)
	}
	field := sch.PrioritizedPrimaryField
	if field == nil {
		return "", fmt.Errorf("%w: %s has no primary key", ErrInvalidEntity, sch.Name)
	}
	id, zero := field.ValueOf(context.Background(), reflect.ValueOf(entity))
	if zero {
		return "", fmt.Errorf("%w: %s.%s", ErrMissingIdentifier, sch.Name, field.Name)
	}
	return fmt.Sprintf("%s#%v", sch.Table, id), nil
}

func isStructPointer(v interface{}) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && !rv.IsNil() && rv.Elem().Kind() == reflect.Struct
}
