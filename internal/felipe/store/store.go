package store

import (
	"context"
	"errors"

	"github.com/wramaba/felipe/internal/felipe/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable. There is no in-memory caching in front of it: every operation
// reads and writes through the store.
type Store interface {
	Users() Users
	Cases() Cases

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login and duplicate checks.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email is already registered.
	CreateUser(ctx context.Context, u domain.User) error
}

type Cases interface {
	// ListCasesByOwner returns the owner's cases in insertion order.
	ListCasesByOwner(ctx context.Context, ownerID string) ([]domain.Case, error)

	// GetCaseForOwner returns a case only when it exists AND belongs to
	// ownerID. Both a missing case and someone else's case come back as
	// ErrNotFound so existence never leaks across owners.
	GetCaseForOwner(ctx context.Context, ownerID, caseID string) (domain.Case, error)

	// CreateCase inserts a new case. Returns ErrAlreadyExists when the
	// case_number collides with an existing one.
	CreateCase(ctx context.Context, c domain.Case) error

	// UpdateCase persists the full record for the given case id and owner.
	// Returns ErrNotFound under the same opacity rule as GetCaseForOwner.
	UpdateCase(ctx context.Context, c domain.Case) error

	// DeleteCaseForOwner permanently removes a case. No tombstone.
	DeleteCaseForOwner(ctx context.Context, ownerID, caseID string) error

	// MaxCaseSequence returns the highest numeric suffix among case numbers
	// starting with prefix, or 0 when none exist. Deleted cases leave gaps
	// behind; the sequence only ever moves forward.
	MaxCaseSequence(ctx context.Context, prefix string) (int64, error)

	// CountCases counts every case in the system.
	CountCases(ctx context.Context) (int64, error)

	// CountCasesByOwner counts the owner's cases.
	CountCasesByOwner(ctx context.Context, ownerID string) (int64, error)

	// CountCasesByOwnerAndStatus counts the owner's cases with the status.
	CountCasesByOwnerAndStatus(ctx context.Context, ownerID, status string) (int64, error)

	// CountCasesByOwnerAndPriority counts the owner's cases with the priority.
	CountCasesByOwnerAndPriority(ctx context.Context, ownerID, priority string) (int64, error)
}
