package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-mail-sync/internal/app"
	"github.com/MKhiriev/go-mail-sync/internal/logger"
	"github.com/MKhiriev/go-mail-sync/internal/utils"
	"github.com/MKhiriev/go-mail-sync/models"
)

type syncResponse struct {
	Message string `json:"message"`
}

func (h *Handler) syncEmails(w http.ResponseWriter, r *http.Request) {
	h.syncResource(w, r, models.ResourceMessages)
}

func (h *Handler) syncMailbox(w http.ResponseWriter, r *http.Request) {
	h.syncResource(w, r, models.ResourceFolders)
}

func (h *Handler) syncResource(w http.ResponseWriter, r *http.Request, resourceType models.ResourceType) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.syncResource").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	if request.UserID == "" {
		log.Error().Str("func", "*Handler.syncResource").Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.SyncService.SyncResource(ctx, request.UserID, resourceType); err != nil {
		log.Err(err).
			Str("func", "*Handler.syncResource").
			Str("user_id", request.UserID).
			Str("resource_type", string(resourceType)).
			Msg(app.MsgSyncFailed)
		http.Error(w, app.MsgSyncFailed, statusFromError(err))
		return
	}

	log.Debug().Str("user_id", request.UserID).Str("resource_type", string(resourceType)).Msg("resource synchronized")

	utils.WriteJSON(w, syncResponse{Message: app.MsgSynchronized}, http.StatusOK)
}
