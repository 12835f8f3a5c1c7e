package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/wramaba/felipe/internal/felipe/domain"
	"github.com/wramaba/felipe/internal/felipe/store"
)

type casesRepo struct {
	db querier
}

const caseColumns = `id, case_number, title, defendant, crime_type, status, priority,
	progress, description, investigator, evidence_count, witness_count,
	next_hearing, user_id, created_at, updated_at`

func (r *casesRepo) ListCasesByOwner(ctx context.Context, ownerID string) ([]domain.Case, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+caseColumns+` FROM cases WHERE user_id = ? ORDER BY rowid`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cases := []domain.Case{}
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, rows.Err()
}

func (r *casesRepo) GetCaseForOwner(ctx context.Context, ownerID, caseID string) (domain.Case, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+caseColumns+` FROM cases WHERE id = ? AND user_id = ?`, caseID, ownerID)
	return scanCase(row)
}

func (r *casesRepo) CreateCase(ctx context.Context, c domain.Case) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cases (id, case_number, title, defendant, crime_type, status, priority,
			progress, description, investigator, evidence_count, witness_count,
			next_hearing, user_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.CaseNumber, c.Title, c.Defendant, c.CrimeType, c.Status, c.Priority,
		c.Progress, c.Description, c.Investigator, c.EvidenceCount, c.WitnessCount,
		nullTime(c.NextHearing), c.UserID, c.CreatedAt, c.UpdatedAt,
	)
	return mapConflict(err)
}

func (r *casesRepo) UpdateCase(ctx context.Context, c domain.Case) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE cases SET title = ?, defendant = ?, crime_type = ?, status = ?, priority = ?,
			progress = ?, description = ?, investigator = ?, evidence_count = ?,
			witness_count = ?, next_hearing = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		c.Title, c.Defendant, c.CrimeType, c.Status, c.Priority,
		c.Progress, c.Description, c.Investigator, c.EvidenceCount,
		c.WitnessCount, nullTime(c.NextHearing), c.UpdatedAt,
		c.ID, c.UserID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *casesRepo) DeleteCaseForOwner(ctx context.Context, ownerID, caseID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM cases WHERE id = ? AND user_id = ?`, caseID, ownerID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *casesRepo) MaxCaseSequence(ctx context.Context, prefix string) (int64, error) {
	// substr is 1-based; the CAST tolerates suffixes past three digits.
	return r.count(ctx,
		`SELECT COALESCE(MAX(CAST(substr(case_number, ?) AS INTEGER)), 0)
		 FROM cases WHERE case_number LIKE ? || '%'`,
		len(prefix)+1, prefix)
}

func (r *casesRepo) CountCases(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM cases`)
}

func (r *casesRepo) CountCasesByOwner(ctx context.Context, ownerID string) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM cases WHERE user_id = ?`, ownerID)
}

func (r *casesRepo) CountCasesByOwnerAndStatus(ctx context.Context, ownerID, status string) (int64, error) {
	return r.count(ctx,
		`SELECT COUNT(*) FROM cases WHERE user_id = ? AND status = ?`, ownerID, status)
}

func (r *casesRepo) CountCasesByOwnerAndPriority(ctx context.Context, ownerID, priority string) (int64, error) {
	return r.count(ctx,
		`SELECT COUNT(*) FROM cases WHERE user_id = ? AND priority = ?`, ownerID, priority)
}

func (r *casesRepo) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// requireRow maps a zero-row UPDATE/DELETE to ErrNotFound. Because the query
// filters on both id and owner, a foreign owner's case is indistinguishable
// from a missing one.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func scanCase(row rowScanner) (domain.Case, error) {
	var (
		c           domain.Case
		nextHearing sql.NullTime
	)
	err := row.Scan(
		&c.ID, &c.CaseNumber, &c.Title, &c.Defendant, &c.CrimeType, &c.Status, &c.Priority,
		&c.Progress, &c.Description, &c.Investigator, &c.EvidenceCount, &c.WitnessCount,
		&nextHearing, &c.UserID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return domain.Case{}, mapNotFound(err)
	}
	if nextHearing.Valid {
		t := nextHearing.Time
		c.NextHearing = &t
	}
	return c, nil
}
