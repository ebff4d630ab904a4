package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/dugoutlabs/dugout/internal/usecase"
)

func decodeJSON(r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// respondTeamView is the common tail of every mutation handler: the
// client always gets the team's refreshed view back.
func (h *Handler) respondTeamView(w http.ResponseWriter, r *http.Request, sess *usecase.Session, role usecase.TeamRole) {
	ctx := r.Context()

	view, err := sess.TeamView(role)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teamViewToDTO(view))
}
