package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-mail-sync/internal/app"
	"github.com/MKhiriev/go-mail-sync/internal/logger"
	"github.com/MKhiriev/go-mail-sync/internal/utils"
)

type createAccountRequest struct {
	Email string `json:"email"`
}

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.createAccount").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	account, err := h.services.UserService.CreateAccount(ctx, request.Email)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createAccount").Msg(app.MsgAccountCreationFailed)
		http.Error(w, app.MsgAccountCreationFailed, statusFromError(err))
		return
	}

	log.Debug().Str("email", account.Email).Str("user_id", account.UserID).Msg("account created")

	utils.WriteJSON(w, account, http.StatusCreated)
}
