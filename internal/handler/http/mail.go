package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-mail-sync/internal/app"
	"github.com/MKhiriev/go-mail-sync/internal/logger"
	"github.com/MKhiriev/go-mail-sync/internal/utils"
	"github.com/MKhiriev/go-mail-sync/models"
)

func (h *Handler) fetchEmails(w http.ResponseWriter, r *http.Request) {
	h.fetchResource(w, r, models.ResourceMessages)
}

func (h *Handler) fetchMailbox(w http.ResponseWriter, r *http.Request) {
	h.fetchResource(w, r, models.ResourceFolders)
}

func (h *Handler) fetchResource(w http.ResponseWriter, r *http.Request, resourceType models.ResourceType) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID := chi.URLParam(r, "userID")
	if userID == "" {
		log.Error().Str("func", "*Handler.fetchResource").Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	page := queryInt(r, "page")
	pageSize := queryInt(r, "pageSize")

	records, err := h.services.MailService.FetchRecords(ctx, userID, resourceType, page, pageSize)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.fetchResource").
			Str("user_id", userID).
			Str("resource_type", string(resourceType)).
			Msg(app.MsgFetchFailed)
		http.Error(w, app.MsgFetchFailed, statusFromError(err))
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

// queryInt reads an integer query parameter, returning 0 when the parameter
// is absent or malformed. The service layer substitutes its own defaults.
func queryInt(r *http.Request, name string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}
