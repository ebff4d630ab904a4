package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dugoutlabs/dugout/internal/usecase"
)

type Handler struct {
	editor    *usecase.EditorService
	logger    *slog.Logger
	validator *validator.Validate
}

func NewHandler(editor *usecase.EditorService, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		editor:    editor,
		logger:    logger,
		validator: validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

type teamRefPayload struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name"`
}

type openSessionRequest struct {
	Home teamRefPayload `json:"home" validate:"required"`
	Away teamRefPayload `json:"away" validate:"required"`
}

// OpenSession hydrates (or returns) the editor session for a game and
// responds with both teams' full views.
func (h *Handler) OpenSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.OpenSession")
	defer span.End()

	gameID := strings.TrimSpace(r.PathValue("gameID"))

	var req openSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	sess, err := h.editor.Session(ctx, gameID,
		usecase.TeamRef{ID: req.Home.ID, Name: req.Home.Name},
		usecase.TeamRef{ID: req.Away.ID, Name: req.Away.Name},
	)
	if err != nil {
		h.logger.WarnContext(ctx, "open editor session failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	dto, err := sessionToDTO(sess)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, dto)
}

// CloseSession discards a game's editor state.
func (h *Handler) CloseSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CloseSession")
	defer span.End()

	gameID := strings.TrimSpace(r.PathValue("gameID"))
	h.editor.EndSession(gameID)
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "closed"})
}

func (h *Handler) session(r *http.Request) (*usecase.Session, error) {
	gameID := strings.TrimSpace(r.PathValue("gameID"))
	sess, ok := h.editor.Get(gameID)
	if !ok {
		return nil, fmt.Errorf("%w: no editor session for game %s", usecase.ErrNotFound, gameID)
	}
	return sess, nil
}

func roleFromPath(r *http.Request) (usecase.TeamRole, error) {
	role := usecase.TeamRole(strings.TrimSpace(r.PathValue("role")))
	if !role.Valid() {
		return "", fmt.Errorf("%w: team role must be home or away, got %q", usecase.ErrInvalidInput, string(role))
	}
	return role, nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
