package service

import (
	"context"
	"fmt"

	"github.com/wramaba/felipe/internal/felipe/domain"
	"github.com/wramaba/felipe/internal/felipe/store"
)

// DashboardService computes per-owner case counts. Pure read-side
// aggregation, recomputed on every call; nothing is cached or maintained
// incrementally.
type DashboardService struct {
	Store store.Store
}

func (s *DashboardService) Summary(ctx context.Context, ownerID string) (domain.DashboardStats, error) {
	cases := s.Store.Cases()

	total, err := cases.CountCasesByOwner(ctx, ownerID)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("count total: %w", err)
	}

	var byStatus [3]int64
	for i, status := range []string{"active", "pending", "completed"} {
		n, err := cases.CountCasesByOwnerAndStatus(ctx, ownerID, status)
		if err != nil {
			return domain.DashboardStats{}, fmt.Errorf("count %s: %w", status, err)
		}
		byStatus[i] = n
	}

	critical, err := cases.CountCasesByOwnerAndPriority(ctx, ownerID, "critical")
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("count critical: %w", err)
	}

	return domain.DashboardStats{
		TotalCases:     total,
		ActiveCases:    byStatus[0],
		PendingCases:   byStatus[1],
		CompletedCases: byStatus[2],
		CriticalCases:  critical,
	}, nil
}
