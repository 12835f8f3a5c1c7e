package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wramaba/felipe/internal/felipe/domain"
)

func TestDashboardSummary(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	owner := newTestUser(t, st, "fiscal@example.com")
	other := newTestUser(t, st, "other@example.com")

	cases := &CaseService{Store: st}
	svc := &DashboardService{Store: st}

	mk := func(ownerID, status, priority string) {
		t.Helper()
		created, err := cases.Create(ctx, ownerID, CreateCaseParams{Title: "Caso", Priority: priority})
		require.NoError(t, err)
		if status != created.Status {
			_, err = cases.Update(ctx, ownerID, created.ID, domain.CaseUpdate{Status: &status})
			require.NoError(t, err)
		}
	}

	mk(owner.ID, "active", "medium")
	mk(owner.ID, "active", "high")
	mk(owner.ID, "active", "low")
	mk(owner.ID, "completed", "medium")
	mk(owner.ID, "archived", "critical")

	// Another user's cases never leak into the summary.
	mk(other.ID, "active", "critical")

	stats, err := svc.Summary(ctx, owner.ID)
	require.NoError(t, err)

	require.Equal(t, int64(5), stats.TotalCases)
	require.Equal(t, int64(3), stats.ActiveCases)
	require.Equal(t, int64(0), stats.PendingCases)
	require.Equal(t, int64(1), stats.CompletedCases)
	// Critical counts by priority, independent of status.
	require.Equal(t, int64(1), stats.CriticalCases)
}

func TestDashboardSummaryEmpty(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	owner := newTestUser(t, st, "fiscal@example.com")
	svc := &DashboardService{Store: st}

	stats, err := svc.Summary(ctx, owner.ID)
	require.NoError(t, err)
	require.Equal(t, domain.DashboardStats{}, stats)
}
