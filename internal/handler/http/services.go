package http

import (
	"net/http"

	"github.com/xmppfed/go-keyhub/internal/app"
	"github.com/xmppfed/go-keyhub/internal/extdisco"
	"github.com/xmppfed/go-keyhub/internal/logger"
	"github.com/xmppfed/go-keyhub/internal/utils"
	"github.com/xmppfed/go-keyhub/internal/xmltree"
)

func (h *Handler) getServices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	publisherID, ok := utils.GetPublisherIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	// The optional type query parameter narrows the listing to one service
	// type, e.g. /api/services?type=turn.
	iq, err := h.services.Discovery.Services(ctx, publisherID, r.URL.Query().Get("type"))
	if err != nil {
		log.Err(err).Msg("error getting services")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writer := xmltree.NewWriter()
	iq.WriteXML(writer)
	utils.WriteXML(w, writer.String(), http.StatusOK)
}

func (h *Handler) postServices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	publisherID, ok := utils.GetPublisherIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	el, err := xmltree.Parse(r.Body)
	if err != nil {
		log.Err(err).Msg(app.MsgInvalidXMLProvided)
		http.Error(w, app.MsgInvalidXMLProvided, http.StatusBadRequest)
		return
	}

	if !extdisco.IsServicesIQ(el) {
		log.Error().Str("tag", el.Tag).Str("ns", el.Namespace).Msg("body is not a services document")
		http.Error(w, app.MsgBodyIsNotServicesDocument, http.StatusBadRequest)
		return
	}

	var iq extdisco.ServicesIQ
	iq.Parse(el)

	if err := h.services.Discovery.Apply(ctx, publisherID, iq); err != nil {
		log.Err(err).Msg("error applying service changes")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
