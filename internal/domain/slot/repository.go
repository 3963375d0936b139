// internal/domain/slot/repository.go
package slot

import (
	"context"
	"fmt"
)

// Well-known slot keys.
const (
	KeyPeriods   = "pinkguard_periods"
	KeyUserEmail = "userEmail"
)

var ErrSlotNotFound = fmt.Errorf("slot not found")

// Repository is a per-owner key-value store. Each (owner, key) pair holds one
// opaque value that is replaced as a whole on every write.
type Repository interface {
	// Get returns ErrSlotNotFound when nothing is stored.
	Get(ctx context.Context, ownerID int64, key string) (string, error)
	Put(ctx context.Context, ownerID int64, key string, value string) error
	// Delete is a no-op when nothing is stored.
	Delete(ctx context.Context, ownerID int64, key string) error
	// ListOwners returns every owner that has a value under key.
	ListOwners(ctx context.Context, key string) ([]int64, error)
}
