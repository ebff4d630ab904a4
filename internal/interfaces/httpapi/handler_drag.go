package httpapi

import (
	"net/http"

	"github.com/dugoutlabs/dugout/internal/usecase"
)

type dragStartRequest struct {
	Role     string `json:"role" validate:"required,oneof=home away"`
	PlayerID string `json:"playerId" validate:"required"`
	Origin   string `json:"origin" validate:"required,oneof=roster lineup bench"`
}

// DragStart begins a pointer drag for one player.
func (h *Handler) DragStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DragStart")
	defer span.End()

	sess, err := h.session(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req dragStartRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := sess.DragStart(usecase.TeamRole(req.Role), req.PlayerID, usecase.Container(req.Origin)); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.respondTeamView(w, r, sess, usecase.TeamRole(req.Role))
}

type dragTargetRequest struct {
	Container string `json:"container" validate:"omitempty,oneof=roster lineup bench"`
}

// DragOver updates the hovered container, feeding the drop preview. An
// empty container means the pointer left every zone.
func (h *Handler) DragOver(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DragOver")
	defer span.End()

	sess, err := h.session(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req dragTargetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	role := sess.Drag().Role
	sess.DragOver(usecase.Container(req.Container))

	if role.Valid() {
		h.respondTeamView(w, r, sess, role)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, nil)
}

// DragEnd drops the dragged player on a container, dispatching the
// matching editor intent. Dropping outside every zone cancels.
func (h *Handler) DragEnd(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DragEnd")
	defer span.End()

	sess, err := h.session(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req dragTargetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	role := sess.Drag().Role
	if err := sess.DragEnd(ctx, usecase.Container(req.Container)).Wait(); err != nil {
		h.logger.WarnContext(ctx, "drag drop failed",
			"game_id", sess.GameID(), "role", role, "error", err)
		writeError(ctx, w, err)
		return
	}

	if role.Valid() {
		h.respondTeamView(w, r, sess, role)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, nil)
}
