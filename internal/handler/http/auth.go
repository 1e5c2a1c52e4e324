package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/xmppfed/go-keyhub/internal/app"
	"github.com/xmppfed/go-keyhub/internal/logger"
	"github.com/xmppfed/go-keyhub/internal/service"
	"github.com/xmppfed/go-keyhub/internal/store"
	"github.com/xmppfed/go-keyhub/internal/utils"
	"github.com/xmppfed/go-keyhub/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSONProvided)
		http.Error(w, app.MsgInvalidJSONProvided, http.StatusBadRequest)
		return
	}

	publisher, err := h.services.Auth.Register(ctx, request)
	if err != nil {
		log.Err(err).Msg("publisher registration failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	token, err := h.services.Auth.CreateToken(ctx, publisher)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSONProvided)
		http.Error(w, app.MsgInvalidJSONProvided, http.StatusBadRequest)
		return
	}

	publisher, err := h.services.Auth.Login(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoPublisherWasFound) || errors.Is(err, service.ErrWrongPassword):
			// One answer for both, so login responses do not reveal which
			// JIDs have accounts.
			log.Err(err).Str("jid", request.JID).Msg("no publisher was found/wrong password")
			http.Error(w, app.MsgInvalidJIDPassword, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Str("jid", request.JID).Msg("publisher login failed")
			http.Error(w, err.Error(), statusFromError(err))
			return
		}
	}

	log.Debug().Int64("id", publisher.ID).Str("jid", publisher.JID).Msg("publisher successfully logged in")

	token, err := h.services.Auth.CreateToken(ctx, publisher)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}
