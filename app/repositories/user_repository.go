// Package repositories gives each persisted record a typed access layer over
// the record store. Every method reads or rewrites its record wholesale.
package repositories

import (
	"strings"

	"github.com/shashiranjanraj/quickstationery/app/models"
	"github.com/shashiranjanraj/quickstationery/app/store"
	"github.com/shashiranjanraj/quickstationery/pkg/collection"
)

// UserRepository handles the user directory record.
type UserRepository struct {
	store *store.Store
}

func NewUserRepository(st *store.Store) *UserRepository {
	return &UserRepository{store: st}
}

// All returns the full user directory; an absent record is an empty directory.
func (r *UserRepository) All() ([]models.User, error) {
	var users []models.User
	if _, err := r.store.ReadRecord(store.KeyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FindByEmail looks up a user by normalized email.
func (r *UserRepository) FindByEmail(email string) (models.User, bool, error) {
	users, err := r.All()
	if err != nil {
		return models.User{}, false, err
	}

	normalized := NormalizeEmail(email)
	user, ok := collection.First(users, func(u models.User) bool {
		return u.Email == normalized
	})
	return user, ok, nil
}

// Create appends a user and rewrites the directory.
// Uniqueness is the caller's concern (the auth service checks it under lock).
func (r *UserRepository) Create(user models.User) error {
	users, err := r.All()
	if err != nil {
		return err
	}
	return r.store.WriteRecord(store.KeyUsers, append(users, user))
}

// NormalizeEmail lowercases and trims an email for directory comparisons.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
