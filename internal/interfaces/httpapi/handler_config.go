package httpapi

import (
	"net/http"

	"github.com/dugoutlabs/dugout/internal/domain/gameconfig"
)

type configDTO struct {
	Config gameconfig.Configuration `json:"config"`
	Dirty  bool                     `json:"dirty"`
}

// GetConfig returns the working configuration document and whether
// local edits are still unpersisted.
func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetConfig")
	defer span.End()

	sess, err := h.session(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, configDTO{
		Config: sess.Config(),
		Dirty:  sess.ConfigDirty(),
	})
}

// ReplaceConfig applies a whole-document configuration edit. The save
// itself is debounced and happens in the background.
func (h *Handler) ReplaceConfig(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReplaceConfig")
	defer span.End()

	sess, err := h.session(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var doc gameconfig.Configuration
	if err := decodeJSON(r, &doc); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := sess.UpdateConfig(func(cfg *gameconfig.Configuration) { *cfg = doc }); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, configDTO{
		Config: sess.Config(),
		Dirty:  sess.ConfigDirty(),
	})
}

// RetryConfigSave forces an immediate configuration save, the manual
// retry for when the debounced autosave has given up.
func (h *Handler) RetryConfigSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RetryConfigSave")
	defer span.End()

	sess, err := h.session(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	sess.RetrySaveConfig()
	writeSuccess(ctx, w, http.StatusOK, configDTO{
		Config: sess.Config(),
		Dirty:  sess.ConfigDirty(),
	})
}
