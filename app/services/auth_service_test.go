package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/quickstationery/app/repositories"
	"github.com/shashiranjanraj/quickstationery/app/services"
	"github.com/shashiranjanraj/quickstationery/app/store"
)

func newAuth(t *testing.T) (*services.AuthService, *repositories.UserRepository) {
	t.Helper()
	st := store.New(store.NewMemoryDriver())
	users := repositories.NewUserRepository(st)
	sessions := repositories.NewSessionRepository(st)
	return services.NewAuthService(users, sessions), users
}

func TestSignupCreatesUserAndSignsIn(t *testing.T) {
	auth, users := newAuth(t)

	user, err := auth.Signup("Asha", "Asha@Example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email, "email must be lowercase-normalized")

	current, err := auth.Current()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "asha@example.com", current.Email)

	all, err := users.All()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSignupDuplicateEmailLeavesDirectoryUntouched(t *testing.T) {
	auth, users := newAuth(t)

	_, err := auth.Signup("Asha", "asha@example.com", "secret")
	require.NoError(t, err)

	// Case-insensitively equal email must be rejected.
	_, err = auth.Signup("Other", "ASHA@example.com", "different")
	require.ErrorIs(t, err, services.ErrDuplicateEmail)

	all, err := users.All()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Asha", all[0].Name)
}

func TestLoginMatchesEmailAndPassword(t *testing.T) {
	auth, _ := newAuth(t)

	_, err := auth.Signup("Asha", "asha@example.com", "secret")
	require.NoError(t, err)
	require.NoError(t, auth.Logout())

	_, err = auth.Login("asha@example.com", "wrong")
	require.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, err = auth.Login("nobody@example.com", "secret")
	require.ErrorIs(t, err, services.ErrInvalidCredentials)

	user, err := auth.Login("ASHA@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Asha", user.Name)

	current, err := auth.Current()
	require.NoError(t, err)
	require.NotNil(t, current)
}

func TestLogoutClearsSession(t *testing.T) {
	auth, _ := newAuth(t)

	_, err := auth.Signup("Asha", "asha@example.com", "secret")
	require.NoError(t, err)

	require.NoError(t, auth.Logout())

	current, err := auth.Current()
	require.NoError(t, err)
	assert.Nil(t, current)

	// Logout while anonymous stays a no-op.
	require.NoError(t, auth.Logout())
}

func TestFailedLoginDoesNotSignIn(t *testing.T) {
	auth, _ := newAuth(t)

	_, err := auth.Login("ghost@example.com", "pw")
	require.ErrorIs(t, err, services.ErrInvalidCredentials)

	current, err := auth.Current()
	require.NoError(t, err)
	assert.Nil(t, current)
}
