package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/wramaba/felipe/internal/felipe/service"
	"github.com/wramaba/felipe/pkg/httpx"
	"github.com/wramaba/felipe/pkg/slogx"
)

// maxUploadBytes bounds document uploads. The analyzer only forwards a short
// prefix anyway, so there is no reason to buffer huge files.
const maxUploadBytes = 10 << 20 // 10 MiB

// AIHandler proxies chat and document analysis to the external generation
// service.
type AIHandler struct {
	AIService *service.AIService
}

// HandleChat handles POST /ai/chat
//
//	@Summary		Chat with the legal assistant
//	@Description	Forwards the query to the generation service with a fixed domain instruction and relays its answer.
//	@Tags			AI
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ChatRequest		true	"query, optional context and model"
//	@Success		200		{object}	ChatResponse	"response"
//	@Failure		400		{object}	httpx.ErrorResponse	"detail"
//	@Failure		401		{object}	httpx.ErrorResponse	"detail"
//	@Failure		500		{object}	httpx.ErrorResponse	"detail"
//	@Router			/ai/chat [post].
func (h *AIHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		httpx.WriteError(w, http.StatusBadRequest, "query is required")
		return
	}

	response, err := h.AIService.Chat(ctx, req.Query, req.Model, req.Context)
	if err != nil {
		log.Error("ai chat failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "AI service error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, ChatResponse{Response: response})
}

// HandleAnalyzeDocument handles POST /ai/analyze-document
//
//	@Summary		Analyze a document
//	@Description	Reads the uploaded file as best-effort text, forwards a bounded prefix for analysis and relays a summary.
//	@Tags			AI
//	@Security		BearerAuth
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"Document to analyze"
//	@Param			case_id	formData	string	false	"Related case id (informational)"
//	@Success		200		{object}	domain.DocumentAnalysis	"summary, keyPoints, issues, confidence, filename"
//	@Failure		400		{object}	httpx.ErrorResponse	"detail"
//	@Failure		401		{object}	httpx.ErrorResponse	"detail"
//	@Failure		500		{object}	httpx.ErrorResponse	"detail"
//	@Router			/ai/analyze-document [post].
func (h *AIHandler) HandleAnalyzeDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "failed to read file")
		return
	}

	// case_id is accepted for API parity but only logged.
	if caseID := r.FormValue("case_id"); caseID != "" {
		log = log.With("case_id", caseID)
	}

	analysis, err := h.AIService.AnalyzeDocument(ctx, data, header.Filename)
	if err != nil {
		log.Error("document analysis failed", "error", err, "filename", header.Filename)
		httpx.WriteError(w, http.StatusInternalServerError, "AI service error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, analysis)
}
