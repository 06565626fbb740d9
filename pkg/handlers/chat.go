package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/asiet-labs/festbot/pkg/logging"
	"github.com/asiet-labs/festbot/pkg/stats"
)

// maxMessageLength caps the chat message before it reaches the engine.
const maxMessageLength = 500

// Responder is the conversational engine behind POST /chat.
type Responder interface {
	Respond(ctx context.Context, utterance string) string
}

// DurationObserver receives request latencies. *metrics.Metrics satisfies it.
type DurationObserver interface {
	ObserveRequestDuration(d time.Duration)
}

// ChatRequest is the POST /chat body.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the POST /chat reply.
type ChatResponse struct {
	Reply     string `json:"reply"`
	RequestID string `json:"request_id"`
}

// ChatHandler serves the chat endpoint.
type ChatHandler struct {
	responder Responder
	tracker   *stats.Tracker
	durations DurationObserver
	logger    *zap.Logger
}

// NewChatHandler creates a ChatHandler. tracker and durations may be nil.
func NewChatHandler(responder Responder, tracker *stats.Tracker, durations DurationObserver, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		responder: responder,
		tracker:   tracker,
		durations: durations,
		logger:    logger.Named("chat_handler"),
	}
}

// RegisterRoutes registers the chat handler's routes on the given mux.
func (h *ChatHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /chat", h.Chat)
}

// Chat handles POST /chat requests.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "bad_request", "body must be JSON with a message field")
		return
	}

	if len(req.Message) > maxMessageLength {
		req.Message = req.Message[:maxMessageLength]
	}

	start := time.Now()
	reply := h.responder.Respond(r.Context(), req.Message)
	elapsed := time.Since(start)

	if h.tracker != nil {
		h.tracker.RecordResponseTime(elapsed)
	}
	if h.durations != nil {
		h.durations.ObserveRequestDuration(elapsed)
	}

	h.logger.Debug("chat request",
		zap.String("request_id", requestID),
		zap.String("message", logging.SanitizeMessage(req.Message)),
		zap.Duration("elapsed", elapsed))

	if err := WriteJSON(w, http.StatusOK, ChatResponse{Reply: reply, RequestID: requestID}); err != nil {
		h.logger.Error("Failed to encode chat response", zap.Error(err))
	}
}
