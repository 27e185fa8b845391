package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/newmo-oss/ergo"

	"github.com/bejranonda/ThaiGov2569/internal/domain/entity"
	"github.com/bejranonda/ThaiGov2569/internal/usecase"
)

// Handler bundles every API handler.
type Handler struct {
	askQuestionUC   *usecase.AskQuestionUseCase
	recordSessionUC *usecase.RecordSessionUseCase
	getAggregateUC  *usecase.GetAggregateUseCase
}

// NewHandler creates a Handler.
func NewHandler(
	askQuestionUC *usecase.AskQuestionUseCase,
	recordSessionUC *usecase.RecordSessionUseCase,
	getAggregateUC *usecase.GetAggregateUseCase,
) *Handler {
	return &Handler{
		askQuestionUC:   askQuestionUC,
		recordSessionUC: recordSessionUC,
		getAggregateUC:  getAggregateUC,
	}
}

// ============================================================================
// Request types
// ============================================================================

// ChatRequest is one parliamentary debate question.
type ChatRequest struct {
	Message   string            `json:"message"`
	Coalition []string          `json:"coalition"`
	Cabinet   map[string]string `json:"cabinet"`
	Policies  []string          `json:"policies"`
}

// ============================================================================
// Handler implementations
// ============================================================================

// Chat answers a debate question with the PM and opposition personas.
// POST /api/chat
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	slog.Info("Chat: request received")

	if r.Method != http.MethodPost {
		slog.Warn("Chat: method not allowed", slog.String("method", r.Method))
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Chat: failed to parse request body", slog.Any("error", err))
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Message == "" {
		slog.Warn("Chat: message is empty")
		respondError(w, http.StatusBadRequest, "message is required")
		return
	}
	if len(req.Coalition) == 0 {
		slog.Warn("Chat: coalition is empty")
		respondError(w, http.StatusBadRequest, "coalition is required")
		return
	}

	slog.Info("Chat: answering question",
		slog.Int("coalitionSize", len(req.Coalition)),
		slog.Int("policyCount", len(req.Policies)))

	output, err := h.askQuestionUC.Execute(r.Context(), usecase.AskQuestionInput{
		Message:   req.Message,
		Coalition: req.Coalition,
		Cabinet:   req.Cabinet,
		Policies:  req.Policies,
	})
	if err != nil {
		slog.Error("Chat: use case failed", slog.Any("error", err))
		handleError(w, err)
		return
	}

	slog.Info("Chat: answered",
		slog.String("ministry", output.Ministry),
		slog.String("pmSource", output.Responses[0].AISource),
		slog.String("oppositionSource", output.Responses[1].AISource))
	respondJSON(w, http.StatusOK, output)
}

// Stats records a finished session (POST) or serves the public
// aggregate (GET).
// POST /api/stats, GET /api/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.recordStats(w, r)
	case http.MethodGet:
		h.getStats(w, r)
	default:
		slog.Warn("Stats: method not allowed", slog.String("method", r.Method))
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *Handler) recordStats(w http.ResponseWriter, r *http.Request) {
	slog.Info("Stats: record request received")

	var record entity.SessionRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		slog.Error("Stats: failed to parse request body", slog.Any("error", err))
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if record.SessionID == "" {
		record.SessionID = uuid.New().String()
	}

	if err := h.recordSessionUC.Execute(r.Context(), &record); err != nil {
		slog.Error("Stats: use case failed",
			slog.String("sessionId", record.SessionID),
			slog.Any("error", err))
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"sessionId": record.SessionID,
	})
}

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	slog.Info("Stats: aggregate request received")

	agg, err := h.getAggregateUC.Execute(r.Context())
	if err != nil {
		slog.Error("Stats: use case failed", slog.Any("error", err))
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, agg)
}

// Health reports liveness.
// GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ============================================================================
// Utility functions
// ============================================================================

// handleError maps an error to the matching HTTP response.
func handleError(w http.ResponseWriter, err error) {
	var attrs []any
	attrs = append(attrs, slog.Any("error", err))

	for attr := range ergo.AttrsAll(err) {
		attrs = append(attrs, attr)
	}

	switch {
	case errors.Is(err, entity.ErrPartyNotFound):
		slog.Warn("handleError: party not found", attrs...)
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, entity.ErrPolicyNotFound):
		slog.Warn("handleError: policy not found", attrs...)
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, entity.ErrMinistryNotFound):
		slog.Warn("handleError: ministry not found", attrs...)
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, entity.ErrNoPrimeMinister):
		slog.Warn("handleError: no prime minister", attrs...)
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, entity.ErrNoOpposition):
		slog.Warn("handleError: no opposition", attrs...)
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, entity.ErrInvalidSession):
		slog.Warn("handleError: invalid session record", attrs...)
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, entity.ErrBelowMajority):
		slog.Warn("handleError: coalition below majority", attrs...)
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, entity.ErrPolicyBudgetExceeded):
		slog.Warn("handleError: policy budget exceeded", attrs...)
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, entity.ErrStoreNotConfigured):
		slog.Error("handleError: store not configured", attrs...)
		respondError(w, http.StatusInternalServerError, err.Error())
	case errors.Is(err, entity.ErrProviderNotConfigured):
		slog.Error("handleError: no AI provider configured", attrs...)
		respondError(w, http.StatusBadGateway, err.Error())
	case errors.Is(err, entity.ErrAllProvidersFailed):
		slog.Error("handleError: all AI providers failed", attrs...)
		respondError(w, http.StatusBadGateway, err.Error())
	default:
		slog.Error("handleError: internal error", attrs...)
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// respondJSON writes a JSON response.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}

// HandleCORS handles CORS preflight requests.
func HandleCORS(w http.ResponseWriter, r *http.Request) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}
