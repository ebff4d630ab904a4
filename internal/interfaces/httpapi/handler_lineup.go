package httpapi

import (
	"net/http"
	"strings"

	"github.com/dugoutlabs/dugout/internal/domain/position"
)

// GetTeamView returns the derived roster, lineup and bench zones.
func (h *Handler) GetTeamView(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamView")
	defer span.End()

	sess, err := h.session(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	role, err := roleFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	h.respondTeamView(w, r, sess, role)
}

// GetValidity reports whether every required fielding position is
// covered by the current lineup.
func (h *Handler) GetValidity(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetValidity")
	defer span.End()

	sess, err := h.session(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	role, err := roleFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	validity, err := sess.LineupValidity(role)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, validityToDTO(validity))
}

type reorderRequest struct {
	From int `json:"from" validate:"min=0"`
	To   int `json:"to" validate:"min=0"`
}

// ReorderLineup moves one batting slot to a new index.
func (h *Handler) ReorderLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReorderLineup")
	defer span.End()

	sess, err := h.session(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	role, err := roleFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req reorderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := sess.ReorderLineup(role, req.From, req.To); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.respondTeamView(w, r, sess, role)
}

type setPositionRequest struct {
	Position string `json:"position" validate:"required"`
}

// SetPosition assigns a fielding position to a lineup player.
func (h *Handler) SetPosition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetPosition")
	defer span.End()

	sess, err := h.session(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	role, err := roleFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req setPositionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	if err := sess.SetLineupPosition(role, playerID, position.Position(req.Position)); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.respondTeamView(w, r, sess, role)
}

// SaveLineup persists the team's working lineup.
func (h *Handler) SaveLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveLineup")
	defer span.End()

	sess, err := h.session(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	role, err := roleFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := sess.SaveLineup(ctx, role); err != nil {
		h.logger.WarnContext(ctx, "save lineup failed",
			"game_id", sess.GameID(), "role", role, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.respondTeamView(w, r, sess, role)
}
