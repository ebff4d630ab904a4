package httpapi

import (
	"net/http"

	"github.com/dugoutlabs/dugout/internal/domain/lineup"
	"github.com/dugoutlabs/dugout/internal/domain/position"
	"github.com/dugoutlabs/dugout/internal/usecase"
)

type syncRosterAddRequest struct {
	Role     string `json:"role" validate:"required,oneof=home away"`
	PlayerID string `json:"playerId" validate:"required"`
}

// ApplySyncRosterAdd folds in a roster addition announced by another
// client watching the same game.
func (h *Handler) ApplySyncRosterAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApplySyncRosterAdd")
	defer span.End()

	sess, err := h.session(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req syncRosterAddRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := sess.ApplyRemoteRosterAdd(usecase.TeamRole(req.Role), req.PlayerID); err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "applied"})
}

type syncEntryPayload struct {
	PlayerID     string `json:"playerId" validate:"required"`
	BattingOrder int    `json:"battingOrder" validate:"min=1"`
	Position     string `json:"position" validate:"required"`
}

type syncLineupRequest struct {
	Role    string             `json:"role" validate:"required,oneof=home away"`
	Entries []syncEntryPayload `json:"entries" validate:"dive"`
}

// ApplySyncLineup replaces a team's lineup with one saved by another
// client. The replacement counts as already persisted.
func (h *Handler) ApplySyncLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApplySyncLineup")
	defer span.End()

	sess, err := h.session(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req syncLineupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	entries := make([]lineup.Entry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, lineup.Entry{
			PlayerID:     e.PlayerID,
			BattingOrder: e.BattingOrder,
			Position:     position.Position(e.Position),
		})
	}

	if err := sess.ApplyRemoteLineup(usecase.TeamRole(req.Role), lineup.Lineup{Entries: entries}); err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "applied"})
}
