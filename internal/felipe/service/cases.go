package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wramaba/felipe/internal/felipe/domain"
	"github.com/wramaba/felipe/internal/felipe/store"
	"github.com/wramaba/felipe/pkg/idx"
)

// ErrCaseNotFound covers both a case id that does not exist and one that
// belongs to another user. The two are deliberately indistinguishable so
// existence never leaks across owners.
var ErrCaseNotFound = errors.New("case not found")

const (
	defaultStatus       = "active"
	defaultInvestigator = "Sistema"

	// caseNumberAttempts bounds the retry loop when two concurrent
	// creations race to the same sequence number. The UNIQUE constraint on
	// case_number rejects the loser, which re-reads the maximum (now
	// including the winner's row) and tries the next number.
	caseNumberAttempts = 3
)

type CaseService struct {
	Store store.Store
}

type CreateCaseParams struct {
	Title       string
	Defendant   string
	CrimeType   string
	Priority    string
	Description string
}

// List returns the owner's cases in insertion order. No pagination.
func (s *CaseService) List(ctx context.Context, ownerID string) ([]domain.Case, error) {
	return s.Store.Cases().ListCasesByOwner(ctx, ownerID)
}

// Create assigns a new id and the next sequential case number, applies the
// fixed defaults and persists the record. The number is one past the highest
// suffix already present for the year, NOT a row count: deletes leave gaps in
// the sequence rather than shrinking it back onto numbers still in use. The
// read-then-insert runs inside a transaction and the case_number column is
// UNIQUE, so a concurrent create that lands on the same number fails cleanly
// and re-reads a maximum that now includes the winner.
func (s *CaseService) Create(ctx context.Context, ownerID string, p CreateCaseParams) (domain.Case, error) {
	var created domain.Case

	for attempt := 0; attempt < caseNumberAttempts; attempt++ {
		err := s.Store.WithTx(ctx, func(tx store.Tx) error {
			now := time.Now().UTC()
			prefix := fmt.Sprintf("FIS-%d-", now.Year())

			seq, err := tx.Cases().MaxCaseSequence(ctx, prefix)
			if err != nil {
				return fmt.Errorf("max case sequence: %w", err)
			}

			created = domain.Case{
				ID:           idx.New().String(),
				CaseNumber:   fmt.Sprintf("%s%03d", prefix, seq+1),
				Title:        p.Title,
				Defendant:    p.Defendant,
				CrimeType:    p.CrimeType,
				Status:       defaultStatus,
				Priority:     p.Priority,
				Description:  p.Description,
				Investigator: defaultInvestigator,
				UserID:       ownerID,
				CreatedAt:    now,
				UpdatedAt:    now,
			}

			return tx.Cases().CreateCase(ctx, created)
		})
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, store.ErrAlreadyExists) {
			return domain.Case{}, err
		}
	}

	return domain.Case{}, fmt.Errorf("create case: exhausted %d case number attempts", caseNumberAttempts)
}

// Update applies a partial update: only non-nil fields of upd change, and
// updated_at is always refreshed. A foreign or missing case id fails with
// ErrCaseNotFound.
func (s *CaseService) Update(ctx context.Context, ownerID, caseID string, upd domain.CaseUpdate) (domain.Case, error) {
	var updated domain.Case

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		c, err := tx.Cases().GetCaseForOwner(ctx, ownerID, caseID)
		if err != nil {
			return err
		}

		upd.Apply(&c)
		c.UpdatedAt = time.Now().UTC()

		if err := tx.Cases().UpdateCase(ctx, c); err != nil {
			return err
		}

		updated = c
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Case{}, ErrCaseNotFound
		}
		return domain.Case{}, err
	}

	return updated, nil
}

// Delete permanently removes the case. Immediate and irreversible; same
// ownership-opacity rule as Update.
func (s *CaseService) Delete(ctx context.Context, ownerID, caseID string) error {
	err := s.Store.Cases().DeleteCaseForOwner(ctx, ownerID, caseID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrCaseNotFound
	}
	return err
}
