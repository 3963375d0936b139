// internal/app/date_store.go
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"pinkguard_bot/internal/domain/cycle"
	"pinkguard_bot/internal/domain/slot"

	"github.com/sirupsen/logrus"
)

// DateStore keeps a chat's cycle history in its periods slot as a JSON array
// of date tokens.
type DateStore struct {
	slots  slot.Repository
	logger *logrus.Entry
}

func NewDateStore(slots slot.Repository, logger *logrus.Entry) *DateStore {
	return &DateStore{
		slots:  slots,
		logger: logger.WithField("component", "date_store"),
	}
}

// Read returns the stored history in ascending order. A missing or corrupted
// value yields an empty history; only storage failures are returned as errors.
func (s *DateStore) Read(ctx context.Context, ownerID int64) (cycle.History, error) {
	raw, err := s.slots.Get(ctx, ownerID, slot.KeyPeriods)
	if err != nil {
		if errors.Is(err, slot.ErrSlotNotFound) {
			return cycle.History{}, nil
		}
		return nil, fmt.Errorf("failed to read periods slot for owner %d: %w", ownerID, err)
	}

	history, err := decodeHistory(raw)
	if err != nil {
		s.logger.WithError(err).WithField("owner_id", ownerID).Warn("Stored periods could not be parsed, treating history as empty")
		return cycle.History{}, nil
	}
	return history, nil
}

// Write replaces the stored history with h.
func (s *DateStore) Write(ctx context.Context, ownerID int64, h cycle.History) error {
	payload, err := json.Marshal(h.Tokens())
	if err != nil {
		return fmt.Errorf("failed to encode periods: %w", err)
	}
	if err := s.slots.Put(ctx, ownerID, slot.KeyPeriods, string(payload)); err != nil {
		return fmt.Errorf("failed to write periods slot for owner %d: %w", ownerID, err)
	}
	return nil
}

// Append inserts d, keeps the history ascending and persists it.
func (s *DateStore) Append(ctx context.Context, ownerID int64, d cycle.Date) (cycle.History, error) {
	current, err := s.Read(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	updated := current.Insert(d)
	if err := s.Write(ctx, ownerID, updated); err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{
		"owner_id": ownerID,
		"date":     d.String(),
		"records":  len(updated),
	}).Debug("Cycle start appended")
	return updated, nil
}

func decodeHistory(raw string) (cycle.History, error) {
	var tokens []string
	if err := json.Unmarshal([]byte(raw), &tokens); err != nil {
		return nil, err
	}
	h := make(cycle.History, 0, len(tokens))
	for _, tok := range tokens {
		d, err := cycle.ParseDate(tok)
		if err != nil {
			return nil, err
		}
		h = append(h, d)
	}
	return h.Sorted(), nil
}
