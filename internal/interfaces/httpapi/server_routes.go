package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerEditorRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/games/{gameID}/editor/session", handler.OpenSession)
	mux.HandleFunc("DELETE /v1/games/{gameID}/editor/session", handler.CloseSession)

	mux.HandleFunc("GET /v1/games/{gameID}/editor/teams/{role}", handler.GetTeamView)
	mux.HandleFunc("GET /v1/games/{gameID}/editor/teams/{role}/validity", handler.GetValidity)

	mux.HandleFunc("POST /v1/games/{gameID}/editor/teams/{role}/players", handler.AddPlayer)
	mux.HandleFunc("DELETE /v1/games/{gameID}/editor/teams/{role}/players/{playerID}", handler.RemovePlayer)
	mux.HandleFunc("POST /v1/games/{gameID}/editor/teams/{role}/players/{playerID}/bench", handler.MoveToBench)
	mux.HandleFunc("POST /v1/games/{gameID}/editor/teams/{role}/players/{playerID}/lineup", handler.MoveToLineup)
	mux.HandleFunc("PUT /v1/games/{gameID}/editor/teams/{role}/players/{playerID}/position", handler.SetPosition)

	mux.HandleFunc("POST /v1/games/{gameID}/editor/teams/{role}/lineup/reorder", handler.ReorderLineup)
	mux.HandleFunc("POST /v1/games/{gameID}/editor/teams/{role}/lineup/save", handler.SaveLineup)

	mux.HandleFunc("GET /v1/games/{gameID}/editor/config", handler.GetConfig)
	mux.HandleFunc("PUT /v1/games/{gameID}/editor/config", handler.ReplaceConfig)
	mux.HandleFunc("POST /v1/games/{gameID}/editor/config/retry-save", handler.RetryConfigSave)

	mux.HandleFunc("POST /v1/games/{gameID}/editor/drag/start", handler.DragStart)
	mux.HandleFunc("POST /v1/games/{gameID}/editor/drag/over", handler.DragOver)
	mux.HandleFunc("POST /v1/games/{gameID}/editor/drag/end", handler.DragEnd)
}

func registerSyncRoutes(mux *http.ServeMux, handler *Handler, syncToken string) {
	mux.Handle("POST /v1/internal/sync/games/{gameID}/roster-add",
		RequireSyncToken(syncToken, http.HandlerFunc(handler.ApplySyncRosterAdd)))
	mux.Handle("POST /v1/internal/sync/games/{gameID}/lineup",
		RequireSyncToken(syncToken, http.HandlerFunc(handler.ApplySyncLineup)))
}
