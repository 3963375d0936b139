// internal/app/session_service.go
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pinkguard_bot/internal/domain/slot"

	"github.com/sirupsen/logrus"
)

var ErrMissingCredentials = fmt.Errorf("email and password are required")
var ErrNotLoggedIn = fmt.Errorf("no active session")

// Authenticator checks credentials against the account backend.
type Authenticator interface {
	Login(ctx context.Context, email, password string) error
}

// SessionService owns the per-chat session. A chat has no session until a
// successful Login and loses it on Logout.
type SessionService struct {
	slots  slot.Repository
	auth   Authenticator
	logger *logrus.Entry
}

func NewSessionService(slots slot.Repository, auth Authenticator, logger *logrus.Entry) *SessionService {
	return &SessionService{
		slots:  slots,
		auth:   auth,
		logger: logger.WithField("component", "session_service"),
	}
}

// Current returns the email of the logged-in account, or ErrNotLoggedIn.
func (s *SessionService) Current(ctx context.Context, ownerID int64) (string, error) {
	email, err := s.slots.Get(ctx, ownerID, slot.KeyUserEmail)
	if err != nil {
		if errors.Is(err, slot.ErrSlotNotFound) {
			return "", ErrNotLoggedIn
		}
		return "", fmt.Errorf("failed to read session: %w", err)
	}
	if email == "" {
		return "", ErrNotLoggedIn
	}
	return email, nil
}

// Login verifies the credentials and, on success, opens the session.
// Authenticator errors are returned unchanged so callers can tell a
// rejection from an unreachable backend.
func (s *SessionService) Login(ctx context.Context, ownerID int64, email, password string) error {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return ErrMissingCredentials
	}

	logCtx := s.logger.WithField("owner_id", ownerID)
	if err := s.auth.Login(ctx, email, password); err != nil {
		logCtx.WithError(err).Info("Login failed")
		return err
	}

	if err := s.slots.Put(ctx, ownerID, slot.KeyUserEmail, email); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	logCtx.Info("Session opened")
	return nil
}

// Logout closes the session. Logging out without a session is not an error.
func (s *SessionService) Logout(ctx context.Context, ownerID int64) error {
	if err := s.slots.Delete(ctx, ownerID, slot.KeyUserEmail); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.logger.WithField("owner_id", ownerID).Info("Session closed")
	return nil
}
