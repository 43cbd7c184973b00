// Package store is the persistent record layer: four named records, each
// read and written wholesale. There are no partial updates, no migrations
// and no versioning — every write replaces the entire record.
//
// The raw bytes live behind a Driver (memory, file, redis or sqlite); the
// Store adds JSON record semantics on top:
//
//	st, _ := store.Open()
//	var cart []models.CartItem
//	ok, err := st.ReadRecord(store.KeyCart, &cart) // ok=false → use the default
//	err = st.WriteRecord(store.KeyCart, cart)
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shashiranjanraj/quickstationery/config"
	"github.com/shashiranjanraj/quickstationery/pkg/event"
)

// Record keys. The qs_ prefix is kept from the original shop so a state dump
// reads the same way.
const (
	KeyUsers       = "qs_users"
	KeyCurrentUser = "qs_current_user"
	KeyCart        = "qs_cart"
	KeyLastOrder   = "qs_last_order"
)

// Keys lists every record key, in a fixed order.
func Keys() []string {
	return []string{KeyUsers, KeyCurrentUser, KeyCart, KeyLastOrder}
}

// EventRecordWritten fires on every record write; the payload is the key.
const EventRecordWritten = "store.record.written"

// ErrRecordParse reports a stored record that no longer unmarshals into its
// expected shape. Callers decide whether to surface it or fall back to the
// record's default.
var ErrRecordParse = errors.New("store: record parse failure")

// Driver is the raw whole-record key-value layer underneath a Store.
// A Read with ok=false means the record is absent (not an error).
type Driver interface {
	Read(key string) (value []byte, ok bool, err error)
	Write(key string, value []byte) error
	Delete(key string) error
}

// Store wraps a Driver with JSON record semantics.
type Store struct {
	driver Driver
}

// New wraps an explicit driver. Tests use this with the memory driver.
func New(driver Driver) *Store {
	return &Store{driver: driver}
}

// Open builds a Store with the driver selected by STORE_DRIVER.
func Open() (*Store, error) {
	switch config.StoreDriver() {
	case "memory":
		return New(NewMemoryDriver()), nil
	case "redis":
		d, err := NewRedisDriver()
		if err != nil {
			return nil, err
		}
		return New(d), nil
	case "sqlite":
		d, err := NewSQLiteDriver(config.StoreSQLiteDSN())
		if err != nil {
			return nil, err
		}
		return New(d), nil
	default:
		return New(NewFileDriver(config.StoreRoot())), nil
	}
}

// ReadRecord reads key into dest. Returns (false, nil) when the record is
// absent so the caller can apply the record's default. Malformed stored data
// is reported as ErrRecordParse with the cause attached.
func (s *Store) ReadRecord(key string, dest interface{}) (bool, error) {
	raw, ok, err := s.driver.Read(key)
	if err != nil {
		return false, fmt.Errorf("store: read %s: %w", key, err)
	}
	if !ok || len(raw) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrRecordParse, key, err)
	}
	return true, nil
}

// WriteRecord serializes value and replaces the whole record, then announces
// the write so dependent listeners (badge metrics, logging) can react.
func (s *Store) WriteRecord(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("store: marshal %s: %w", key, err)
	}
	if err := s.driver.Write(key, raw); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}

	event.Fire(EventRecordWritten, key)
	return nil
}

// DeleteRecord removes a record entirely; subsequent reads see the default.
func (s *Store) DeleteRecord(key string) error {
	if err := s.driver.Delete(key); err != nil {
		return fmt.Errorf("store: delete %s: %w", key, err)
	}
	return nil
}

// Reset deletes every known record. Used by the store:reset CLI command.
func (s *Store) Reset() error {
	for _, key := range Keys() {
		if err := s.DeleteRecord(key); err != nil {
			return err
		}
	}
	return nil
}
