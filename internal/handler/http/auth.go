package http

import (
	"net/http"

	"github.com/MKhiriev/go-mail-sync/internal/app"
	"github.com/MKhiriev/go-mail-sync/internal/logger"
	"github.com/MKhiriev/go-mail-sync/internal/utils"
)

func (h *Handler) oauthCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query()
	if providerError := query.Get("error"); providerError != "" {
		log.Error().
			Str("func", "*Handler.oauthCallback").
			Str("error", providerError).
			Str("description", query.Get("error_description")).
			Msg(app.MsgAuthorizationDenied)
		http.Error(w, app.MsgAuthorizationDenied, http.StatusBadRequest)
		return
	}

	callback, err := h.services.AuthService.HandleOAuthCallback(ctx, query.Get("code"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.oauthCallback").Msg(app.MsgCallbackFailed)
		http.Error(w, app.MsgCallbackFailed, statusFromError(err))
		return
	}

	log.Debug().Str("email", callback.Email).Str("user_id", callback.UserID).Msg("mailbox linked")

	utils.WriteJSON(w, callback, http.StatusOK)
}
