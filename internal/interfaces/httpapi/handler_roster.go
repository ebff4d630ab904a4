package httpapi

import (
	"net/http"
	"strings"
)

type addPlayerRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
	Bench    bool   `json:"bench"`
	Index    *int   `json:"index" validate:"omitempty,min=0"`
}

// AddPlayer activates a roster player for the game. The membership
// write settles before the response so the caller sees the final state.
func (h *Handler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddPlayer")
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

	var req addPlayerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := sess.AddPlayerToGame(ctx, role, req.PlayerID, req.Bench, req.Index).Wait(); err != nil {
		h.logger.WarnContext(ctx, "add player failed",
			"game_id", sess.GameID(), "role", role, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.respondTeamView(w, r, sess, role)
}

// RemovePlayer deactivates a game player, dropping any lineup slot.
func (h *Handler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemovePlayer")
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

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	if err := sess.RemovePlayerFromGame(ctx, role, playerID).Wait(); err != nil {
		h.logger.WarnContext(ctx, "remove player failed",
			"game_id", sess.GameID(), "role", role, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.respondTeamView(w, r, sess, role)
}

// MoveToBench pulls a lineup player onto the bench.
func (h *Handler) MoveToBench(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MoveToBench")
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

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	if err := sess.MovePlayerToBench(role, playerID); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.respondTeamView(w, r, sess, role)
}

type moveToLineupRequest struct {
	Index *int `json:"index" validate:"omitempty,min=0"`
}

// MoveToLineup places a benched game player into the batting order.
func (h *Handler) MoveToLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MoveToLineup")
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

	var req moveToLineupRequest
	if r.ContentLength > 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeError(ctx, w, err)
			return
		}
	}

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	if err := sess.MovePlayerToLineup(role, playerID, req.Index); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.respondTeamView(w, r, sess, role)
}
