package http

import (
	"encoding/base64"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/xmppfed/go-keyhub/internal/app"
	"github.com/xmppfed/go-keyhub/internal/logger"
	"github.com/xmppfed/go-keyhub/internal/omemo"
	"github.com/xmppfed/go-keyhub/internal/utils"
	"github.com/xmppfed/go-keyhub/internal/xmltree"
	"github.com/xmppfed/go-keyhub/models"
)

// deviceIDFromURL parses and range-checks the {deviceID} URL parameter.
func deviceIDFromURL(r *http.Request) (uint32, error) {
	raw := chi.URLParam(r, "deviceID")

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id < 1 || id > math.MaxInt32 {
		return 0, ErrInvalidDeviceID
	}

	return uint32(id), nil
}

func (h *Handler) getDeviceList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	publisherID, ok := utils.GetPublisherIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	list, err := h.services.Keys.DeviceList(ctx, publisherID)
	if err != nil {
		log.Err(err).Msg("error getting device list")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writer := xmltree.NewWriter()
	list.WriteXML(writer)
	utils.WriteXML(w, writer.String(), http.StatusOK)
}

func (h *Handler) putDeviceList(w http.ResponseWriter, r *http.Request) {
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

	if !omemo.IsDeviceList(el) {
		log.Error().Str("tag", el.Tag).Str("ns", el.Namespace).Msg("body is not a device list")
		http.Error(w, app.MsgBodyIsNotDeviceList, http.StatusBadRequest)
		return
	}

	var list omemo.DeviceList
	list.Parse(el)

	if err := h.services.Keys.PublishDeviceList(ctx, publisherID, list); err != nil {
		log.Err(err).Msg("error publishing device list")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getBundle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	publisherID, ok := utils.GetPublisherIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	deviceID, err := deviceIDFromURL(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	bundle, err := h.services.Keys.Bundle(ctx, publisherID, deviceID)
	if err != nil {
		log.Err(err).Uint32("device_id", deviceID).Msg("error getting bundle")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writer := xmltree.NewWriter()
	bundle.WriteXML(writer)
	utils.WriteXML(w, writer.String(), http.StatusOK)
}

func (h *Handler) putBundle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	publisherID, ok := utils.GetPublisherIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	deviceID, err := deviceIDFromURL(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	el, err := xmltree.Parse(r.Body)
	if err != nil {
		log.Err(err).Msg(app.MsgInvalidXMLProvided)
		http.Error(w, app.MsgInvalidXMLProvided, http.StatusBadRequest)
		return
	}

	if !omemo.IsDeviceBundle(el) {
		log.Error().Str("tag", el.Tag).Str("ns", el.Namespace).Msg("body is not a device bundle")
		http.Error(w, app.MsgBodyIsNotDeviceBundle, http.StatusBadRequest)
		return
	}

	var bundle omemo.DeviceBundle
	bundle.Parse(el)

	if err := h.services.Keys.PublishBundle(ctx, publisherID, deviceID, bundle); err != nil {
		log.Err(err).Uint32("device_id", deviceID).Msg("error publishing bundle")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) takePreKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	publisherID, ok := utils.GetPublisherIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	deviceID, err := deviceIDFromURL(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	keyID, data, err := h.services.Keys.TakePreKey(ctx, publisherID, deviceID)
	if err != nil {
		log.Err(err).Uint32("device_id", deviceID).Msg("error taking pre-key")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	// The handed-out key uses the same pk element as the bundle's prekeys
	// section, so consumers reuse the bundle codec.
	writer := xmltree.NewWriter()
	writer.StartElement("pk")
	writer.DefaultNamespace(omemo.NS)
	writer.Attribute("id", strconv.FormatUint(uint64(keyID), 10))
	writer.CharData(base64.StdEncoding.EncodeToString(data))
	writer.EndElement()
	utils.WriteXML(w, writer.String(), http.StatusOK)
}

func (h *Handler) preKeyCount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	publisherID, ok := utils.GetPublisherIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	deviceID, err := deviceIDFromURL(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	count, err := h.services.Keys.PreKeyCount(ctx, publisherID, deviceID)
	if err != nil {
		log.Err(err).Uint32("device_id", deviceID).Msg("error counting pre-keys")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.PreKeyCountResponse{DeviceID: deviceID, Count: count}, http.StatusOK)
}
