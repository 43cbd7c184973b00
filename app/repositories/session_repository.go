package repositories

import (
	"github.com/shashiranjanraj/quickstationery/app/models"
	"github.com/shashiranjanraj/quickstationery/app/store"
)

// SessionRepository handles the current-user record: a weak reference into
// the user directory, absent when anonymous.
type SessionRepository struct {
	store *store.Store
}

func NewSessionRepository(st *store.Store) *SessionRepository {
	return &SessionRepository{store: st}
}

// Current returns the signed-in user, or nil when anonymous.
func (r *SessionRepository) Current() (*models.User, error) {
	var user *models.User
	ok, err := r.store.ReadRecord(store.KeyCurrentUser, &user)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return user, nil
}

// SetCurrent stores user as the session pointer; nil clears the session.
func (r *SessionRepository) SetCurrent(user *models.User) error {
	if user == nil {
		return r.store.DeleteRecord(store.KeyCurrentUser)
	}
	return r.store.WriteRecord(store.KeyCurrentUser, user)
}
