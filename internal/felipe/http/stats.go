package http

import (
	"net/http"

	"github.com/wramaba/felipe/internal/felipe/service"
	"github.com/wramaba/felipe/pkg/httpx"
	"github.com/wramaba/felipe/pkg/slogx"
)

type StatsHandler struct {
	DashboardService *service.DashboardService
}

// HandleDashboard handles GET /stats/dashboard
//
//	@Summary		Dashboard counters
//	@Description	Aggregated case counters scoped to the authenticated user.
//	@Tags			Stats
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	domain.DashboardStats	"total_cases, active_cases, pending_cases, completed_cases, critical_cases"
//	@Failure		401	{object}	httpx.ErrorResponse	"detail"
//	@Failure		500	{object}	httpx.ErrorResponse	"detail"
//	@Router			/stats/dashboard [get].
func (h *StatsHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	stats, err := h.DashboardService.Summary(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		log.Error("failed to aggregate dashboard stats", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, stats)
}
