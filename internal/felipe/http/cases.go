package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/wramaba/felipe/internal/felipe/domain"
	"github.com/wramaba/felipe/internal/felipe/service"
	"github.com/wramaba/felipe/pkg/httpx"
	"github.com/wramaba/felipe/pkg/slogx"
)

// CasesHandler handles the case CRUD endpoints. Every handler reads the
// authenticated owner from the request context; the service layer scopes all
// store access by it.
type CasesHandler struct {
	CaseService *service.CaseService
}

// HandleList handles GET /cases
//
//	@Summary		List cases
//	@Description	Returns all cases owned by the authenticated user, in insertion order.
//	@Tags			Cases
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		domain.Case
//	@Failure		401	{object}	httpx.ErrorResponse	"detail"
//	@Failure		500	{object}	httpx.ErrorResponse	"detail"
//	@Router			/cases [get].
func (h *CasesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	cases, err := h.CaseService.List(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		log.Error("failed to list cases", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to list cases")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, cases)
}

// HandleCreate handles POST /cases
//
//	@Summary		Create a case
//	@Description	Creates a case with the next sequential case number. Status starts as "active".
//	@Tags			Cases
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateCaseRequest	true	"Case fields"
//	@Success		200		{object}	domain.Case
//	@Failure		400		{object}	httpx.ErrorResponse	"detail"
//	@Failure		401		{object}	httpx.ErrorResponse	"detail"
//	@Failure		500		{object}	httpx.ErrorResponse	"detail"
//	@Router			/cases [post].
func (h *CasesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req CreateCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		httpx.WriteError(w, http.StatusBadRequest, "title is required")
		return
	}

	created, err := h.CaseService.Create(ctx, httpx.UserIDFromCtx(ctx), service.CreateCaseParams{
		Title:       req.Title,
		Defendant:   req.Defendant,
		CrimeType:   req.CrimeType,
		Priority:    req.Priority,
		Description: req.Description,
	})
	if err != nil {
		log.Error("failed to create case", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to create case")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, created)
}

// HandleUpdate handles PUT /cases/{id}
//
//	@Summary		Update a case
//	@Description	Partial update: only fields present in the body change; updated_at is always refreshed.
//	@Tags			Cases
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Case ID"
//	@Param			request	body		domain.CaseUpdate	true	"Fields to change"
//	@Success		200		{object}	domain.Case
//	@Failure		400		{object}	httpx.ErrorResponse	"detail"
//	@Failure		401		{object}	httpx.ErrorResponse	"detail"
//	@Failure		404		{object}	httpx.ErrorResponse	"detail"
//	@Failure		500		{object}	httpx.ErrorResponse	"detail"
//	@Router			/cases/{id} [put].
func (h *CasesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var upd domain.CaseUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}

	updated, err := h.CaseService.Update(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"), upd)
	if err != nil {
		if errors.Is(err, service.ErrCaseNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "case not found")
			return
		}
		log.Error("failed to update case", "error", err, "case_id", r.PathValue("id"))
		httpx.WriteError(w, http.StatusInternalServerError, "failed to update case")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, updated)
}

// HandleDelete handles DELETE /cases/{id}
//
//	@Summary		Delete a case
//	@Description	Permanently deletes a case. No tombstone, no undo.
//	@Tags			Cases
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string			true	"Case ID"
//	@Success		200	{object}	MessageResponse	"message"
//	@Failure		401	{object}	httpx.ErrorResponse	"detail"
//	@Failure		404	{object}	httpx.ErrorResponse	"detail"
//	@Failure		500	{object}	httpx.ErrorResponse	"detail"
//	@Router			/cases/{id} [delete].
func (h *CasesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	err := h.CaseService.Delete(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrCaseNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "case not found")
			return
		}
		log.Error("failed to delete case", "error", err, "case_id", r.PathValue("id"))
		httpx.WriteError(w, http.StatusInternalServerError, "failed to delete case")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, MessageResponse{Message: "case deleted"})
}
