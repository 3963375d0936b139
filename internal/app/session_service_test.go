package app

import (
	"context"
	"errors"
	"testing"

	"pinkguard_bot/internal/domain/slot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthenticator struct {
	err   error
	calls int
}

func (a *stubAuthenticator) Login(context.Context, string, string) error {
	a.calls++
	return a.err
}

func TestSessionService_Lifecycle(t *testing.T) {
	slots := newMemorySlots()
	auth := &stubAuthenticator{}
	sessions := NewSessionService(slots, auth, testLogger())
	ctx := context.Background()

	_, err := sessions.Current(ctx, 5)
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	require.NoError(t, sessions.Login(ctx, 5, " jane@example.com ", "secret"))
	email, err := sessions.Current(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", email)

	require.NoError(t, sessions.Logout(ctx, 5))
	_, err = sessions.Current(ctx, 5)
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	require.NoError(t, sessions.Logout(ctx, 5), "logout without a session is fine")
}

func TestSessionService_LoginValidatesBeforeCallingBackend(t *testing.T) {
	auth := &stubAuthenticator{}
	sessions := NewSessionService(newMemorySlots(), auth, testLogger())

	err := sessions.Login(context.Background(), 5, "jane@example.com", "  ")
	assert.ErrorIs(t, err, ErrMissingCredentials)
	err = sessions.Login(context.Background(), 5, "", "secret")
	assert.ErrorIs(t, err, ErrMissingCredentials)
	assert.Zero(t, auth.calls)
}

func TestSessionService_FailedLoginKeepsNoSession(t *testing.T) {
	slots := newMemorySlots()
	rejected := errors.New("Invalid credentials")
	sessions := NewSessionService(slots, &stubAuthenticator{err: rejected}, testLogger())

	err := sessions.Login(context.Background(), 5, "jane@example.com", "wrong")
	assert.ErrorIs(t, err, rejected)
	_, ok := slots.values[slotKey{5, slot.KeyUserEmail}]
	assert.False(t, ok)
}
