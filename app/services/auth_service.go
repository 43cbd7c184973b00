package services

import (
	"errors"
	"sync"

	"github.com/shashiranjanraj/quickstationery/app/models"
	"github.com/shashiranjanraj/quickstationery/app/repositories"
	"github.com/shashiranjanraj/quickstationery/pkg/event"
)

// Auth events; payload is the user's normalized email.
const (
	EventUserRegistered = "user.registered"
	EventUserLoggedIn   = "user.logged_in"
)

var (
	// ErrDuplicateEmail is returned by Signup when the email is already in
	// the directory (compared case-insensitively).
	ErrDuplicateEmail = errors.New("auth: an account with this email already exists")

	// ErrInvalidCredentials is returned by Login when no directory entry has
	// both the given email and password.
	ErrInvalidCredentials = errors.New("auth: incorrect email or password")
)

// AuthService maintains the user directory and the current-user pointer.
//
// Credentials are compared in plain text against client-readable storage;
// the shop has no security model and is not meant to grow one.
type AuthService struct {
	mu       sync.Mutex
	users    *repositories.UserRepository
	sessions *repositories.SessionRepository
}

func NewAuthService(users *repositories.UserRepository, sessions *repositories.SessionRepository) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

// Signup normalizes the email, rejects duplicates, appends the user to the
// directory and signs them in. The directory is untouched on failure.
func (s *AuthService) Signup(name, email, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized := repositories.NormalizeEmail(email)

	_, exists, err := s.users.FindByEmail(normalized)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrDuplicateEmail
	}

	user := models.User{Name: name, Email: normalized, Password: password}
	if err := s.users.Create(user); err != nil {
		return models.User{}, err
	}
	if err := s.sessions.SetCurrent(&user); err != nil {
		return models.User{}, err
	}

	event.Fire(EventUserRegistered, user.Email)
	return user, nil
}

// Login matches normalized email plus plaintext password against the
// directory and sets the session on success.
func (s *AuthService) Login(email, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok, err := s.users.FindByEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if !ok || user.Password != password {
		return models.User{}, ErrInvalidCredentials
	}

	if err := s.sessions.SetCurrent(&user); err != nil {
		return models.User{}, err
	}

	event.Fire(EventUserLoggedIn, user.Email)
	return user, nil
}

// Logout clears the session. Logging out while anonymous is harmless.
func (s *AuthService) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions.SetCurrent(nil)
}

// Current returns the signed-in user, or nil when anonymous.
func (s *AuthService) Current() (*models.User, error) {
	return s.sessions.Current()
}
