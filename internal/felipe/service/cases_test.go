package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/wramaba/felipe/internal/felipe/domain"
	"github.com/wramaba/felipe/internal/felipe/store"
	"github.com/wramaba/felipe/pkg/idx"
)

func newTestUser(t *testing.T, st store.Store, email string) domain.User {
	t.Helper()

	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: "hash",
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), user))
	return user
}

func TestCreateCaseAssignsSequentialNumbers(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	owner := newTestUser(t, st, "fiscal@example.com")
	svc := &CaseService{Store: st}

	year := time.Now().UTC().Year()

	first, err := svc.Create(ctx, owner.ID, CreateCaseParams{Title: "Robo agravado"})
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("FIS-%d-001", year), first.CaseNumber)
	require.Equal(t, "active", first.Status)
	require.Equal(t, "Sistema", first.Investigator)
	require.Equal(t, owner.ID, first.UserID)

	second, err := svc.Create(ctx, owner.ID, CreateCaseParams{Title: "Estafa"})
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("FIS-%d-002", year), second.CaseNumber)
}

func TestCaseNumberingIsGlobalAcrossOwners(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	alice := newTestUser(t, st, "alice@example.com")
	bob := newTestUser(t, st, "bob@example.com")
	svc := &CaseService{Store: st}

	year := time.Now().UTC().Year()

	_, err := svc.Create(ctx, alice.ID, CreateCaseParams{Title: "Caso A"})
	require.NoError(t, err)

	second, err := svc.Create(ctx, bob.ID, CreateCaseParams{Title: "Caso B"})
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("FIS-%d-002", year), second.CaseNumber)
}

func TestCreateCaseAfterDeleteSkipsUsedNumbers(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	owner := newTestUser(t, st, "fiscal@example.com")
	svc := &CaseService{Store: st}

	year := time.Now().UTC().Year()

	first, err := svc.Create(ctx, owner.ID, CreateCaseParams{Title: "Caso 1"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, owner.ID, CreateCaseParams{Title: "Caso 2"})
	require.NoError(t, err)

	// Deleting an older case leaves a gap; the sequence must keep moving
	// forward past 002, never back onto it.
	require.NoError(t, svc.Delete(ctx, owner.ID, first.ID))

	third, err := svc.Create(ctx, owner.ID, CreateCaseParams{Title: "Caso 3"})
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("FIS-%d-003", year), third.CaseNumber)
}

func TestCreateCaseAvoidsExistingNumbers(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	owner := newTestUser(t, st, "fiscal@example.com")
	svc := &CaseService{Store: st}

	year := time.Now().UTC().Year()

	// A pre-existing high number (imported record, earlier deploy) must not
	// collide with the next generated one.
	now := time.Now().UTC()
	seeded := domain.Case{
		ID:         idx.New().String(),
		CaseNumber: fmt.Sprintf("FIS-%d-007", year),
		Title:      "Caso importado",
		Status:     "active",
		UserID:     owner.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, st.Cases().CreateCase(ctx, seeded))

	created, err := svc.Create(ctx, owner.ID, CreateCaseParams{Title: "Caso nuevo"})
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("FIS-%d-008", year), created.CaseNumber)
	require.NotEqual(t, seeded.CaseNumber, created.CaseNumber)
}

func TestUpdateCaseAppliesOnlySuppliedFields(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	owner := newTestUser(t, st, "fiscal@example.com")
	svc := &CaseService{Store: st}

	created, err := svc.Create(ctx, owner.ID, CreateCaseParams{
		Title:     "Robo agravado",
		Defendant: "J. Perez",
		Priority:  "high",
	})
	require.NoError(t, err)

	newStatus := "completed"
	newProgress := 100
	updated, err := svc.Update(ctx, owner.ID, created.ID, domain.CaseUpdate{
		Status:   &newStatus,
		Progress: &newProgress,
	})
	require.NoError(t, err)

	require.Equal(t, "completed", updated.Status)
	require.Equal(t, 100, updated.Progress)
	// Untouched fields keep their values.
	require.Equal(t, "Robo agravado", updated.Title)
	require.Equal(t, "J. Perez", updated.Defendant)
	require.Equal(t, "high", updated.Priority)
	require.Equal(t, created.CaseNumber, updated.CaseNumber)
	require.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	// Changes are persisted.
	got, err := st.Cases().GetCaseForOwner(ctx, owner.ID, created.ID)
	require.NoError(t, err)
	require.Equal(t, "completed", got.Status)
}

func TestUpdateForeignCaseLooksMissing(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	alice := newTestUser(t, st, "alice@example.com")
	bob := newTestUser(t, st, "bob@example.com")
	svc := &CaseService{Store: st}

	created, err := svc.Create(ctx, alice.ID, CreateCaseParams{Title: "Caso de Alice"})
	require.NoError(t, err)

	title := "hijacked"
	_, err = svc.Update(ctx, bob.ID, created.ID, domain.CaseUpdate{Title: &title})
	require.ErrorIs(t, err, ErrCaseNotFound)

	// The case is untouched.
	got, err := st.Cases().GetCaseForOwner(ctx, alice.ID, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Caso de Alice", got.Title)
}

func TestDeleteCase(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	alice := newTestUser(t, st, "alice@example.com")
	bob := newTestUser(t, st, "bob@example.com")
	svc := &CaseService{Store: st}

	created, err := svc.Create(ctx, alice.ID, CreateCaseParams{Title: "Caso de Alice"})
	require.NoError(t, err)

	t.Run("foreign case looks missing", func(t *testing.T) {
		err := svc.Delete(ctx, bob.ID, created.ID)
		require.ErrorIs(t, err, ErrCaseNotFound)
	})

	t.Run("owner can delete", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, alice.ID, created.ID))

		_, err := st.Cases().GetCaseForOwner(ctx, alice.ID, created.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("deleting again reports missing", func(t *testing.T) {
		err := svc.Delete(ctx, alice.ID, created.ID)
		require.ErrorIs(t, err, ErrCaseNotFound)
	})
}

func TestListCasesIsOwnerScoped(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	alice := newTestUser(t, st, "alice@example.com")
	bob := newTestUser(t, st, "bob@example.com")
	svc := &CaseService{Store: st}

	_, err := svc.Create(ctx, alice.ID, CreateCaseParams{Title: "Caso 1"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, alice.ID, CreateCaseParams{Title: "Caso 2"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, bob.ID, CreateCaseParams{Title: "Caso de Bob"})
	require.NoError(t, err)

	cases, err := svc.List(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, cases, 2)
	require.Equal(t, "Caso 1", cases[0].Title)
	require.Equal(t, "Caso 2", cases[1].Title)
}
