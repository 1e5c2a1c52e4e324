// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-keyhub Authors

package client

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/xmppfed/go-keyhub/internal/extdisco"
	"github.com/xmppfed/go-keyhub/internal/omemo"
	"github.com/xmppfed/go-keyhub/internal/stanza"
	"github.com/xmppfed/go-keyhub/internal/store"
	"github.com/xmppfed/go-keyhub/internal/xmltree"
	"github.com/xmppfed/go-keyhub/models"
)

var errNotLoggedIn = errors.New("not logged in, run login first")

func (a *App) register(ctx context.Context, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return errors.New("usage: register <jid> <password> [name]")
	}

	request := models.RegisterRequest{JID: args[0], Password: args[1]}
	if len(args) == 3 {
		request.Name = args[2]
	}

	if err := a.server.Register(ctx, request); err != nil {
		return fmt.Errorf("register: %w", err)
	}

	a.saveSession(ctx, request.JID)
	fmt.Fprintln(a.out, "registered and logged in as "+titleStyle.Render(request.JID))
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: login <jid> <password>")
	}

	request := models.LoginRequest{JID: args[0], Password: args[1]}
	if err := a.server.Login(ctx, request); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	a.saveSession(ctx, request.JID)
	fmt.Fprintln(a.out, "logged in as "+titleStyle.Render(request.JID))
	return nil
}

func (a *App) logout(ctx context.Context) error {
	if err := a.cache.DeleteSession(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	a.session = store.ClientSession{}
	fmt.Fprintln(a.out, "logged out")
	return nil
}

func (a *App) whoami() error {
	if a.session.JID == "" {
		return errNotLoggedIn
	}

	fmt.Fprintln(a.out, titleStyle.Render(a.session.JID))
	return nil
}

func (a *App) devices(ctx context.Context) error {
	list, err := a.server.DeviceList(ctx)
	if err != nil {
		return a.showCachedDocument(ctx, store.DeviceListDocument, err)
	}

	writer := xmltree.NewWriter()
	list.WriteXML(writer)
	a.cacheDocument(ctx, store.DeviceListDocument, writer.String())

	fmt.Fprintln(a.out, titleStyle.Render(fmt.Sprintf("devices (%d)", len(list))))
	for _, device := range list {
		label := device.Label
		if label == "" {
			label = labelStyle.Render("(no label)")
		}
		fmt.Fprintf(a.out, "  %-10d %s\n", device.ID, label)
	}
	return nil
}

func (a *App) publishDevices(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: publish-devices <file|->")
	}

	payload, kindName, err := a.decodeDocument(args[0])
	if err != nil {
		return fmt.Errorf("publish-devices: %w", err)
	}

	list, ok := payload.(*omemo.DeviceList)
	if !ok {
		return fmt.Errorf("publish-devices: document is %s, not a device list", kindName)
	}

	if err = a.server.PublishDeviceList(ctx, *list); err != nil {
		return fmt.Errorf("publish-devices: %w", err)
	}

	fmt.Fprintf(a.out, "published device list with %d device(s)\n", len(*list))
	return nil
}

func (a *App) bundle(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: bundle <device-id>")
	}
	deviceID, err := parseDeviceID(args[0])
	if err != nil {
		return err
	}

	bundle, err := a.server.Bundle(ctx, deviceID)
	if err != nil {
		return a.showCachedDocument(ctx, store.BundleDocumentKind(deviceID), err)
	}

	writer := xmltree.NewWriter()
	bundle.WriteXML(writer)
	a.cacheDocument(ctx, store.BundleDocumentKind(deviceID), writer.String())

	fmt.Fprintln(a.out, titleStyle.Render(fmt.Sprintf("bundle for device %d", deviceID)))
	fmt.Fprintf(a.out, "  %s %s\n", labelStyle.Render("identity key:"), base64.StdEncoding.EncodeToString(bundle.PublicIdentityKey))
	fmt.Fprintf(a.out, "  %s %d\n", labelStyle.Render("signed pre-key id:"), bundle.SignedPublicPreKeyID)

	ids := make([]uint32, 0, len(bundle.PublicPreKeys))
	for id := range bundle.PublicPreKeys {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fmt.Fprintf(a.out, "  %s %d %v\n", labelStyle.Render("pre-keys:"), len(ids), ids)
	return nil
}

func (a *App) publishBundle(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: publish-bundle <device-id> <file|->")
	}
	deviceID, err := parseDeviceID(args[0])
	if err != nil {
		return err
	}

	payload, kindName, err := a.decodeDocument(args[1])
	if err != nil {
		return fmt.Errorf("publish-bundle: %w", err)
	}

	bundle, ok := payload.(*omemo.DeviceBundle)
	if !ok {
		return fmt.Errorf("publish-bundle: document is %s, not a device bundle", kindName)
	}

	if err = a.server.PublishBundle(ctx, deviceID, *bundle); err != nil {
		return fmt.Errorf("publish-bundle: %w", err)
	}

	fmt.Fprintf(a.out, "published bundle for device %d with %d pre-key(s)\n", deviceID, len(bundle.PublicPreKeys))
	return nil
}

func (a *App) takePreKey(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: take-prekey <device-id>")
	}
	deviceID, err := parseDeviceID(args[0])
	if err != nil {
		return err
	}

	keyID, data, err := a.server.TakePreKey(ctx, deviceID)
	if err != nil {
		return fmt.Errorf("take-prekey: %w", err)
	}

	fmt.Fprintf(a.out, "%s %d\n", labelStyle.Render("pre-key id:"), keyID)
	fmt.Fprintln(a.out, base64.StdEncoding.EncodeToString(data))
	return nil
}

func (a *App) preKeyCount(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: prekey-count <device-id>")
	}
	deviceID, err := parseDeviceID(args[0])
	if err != nil {
		return err
	}

	count, err := a.server.PreKeyCount(ctx, deviceID)
	if err != nil {
		return fmt.Errorf("prekey-count: %w", err)
	}

	fmt.Fprintf(a.out, "device %d has %d pre-key(s) left\n", deviceID, count)
	return nil
}

func (a *App) services(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return errors.New("usage: services [type]")
	}
	serviceType := ""
	if len(args) == 1 {
		serviceType = args[0]
	}

	iq, err := a.server.Services(ctx, serviceType)
	if err != nil {
		if serviceType != "" {
			return fmt.Errorf("services: %w", err)
		}
		return a.showCachedDocument(ctx, store.ServicesDocument, err)
	}

	// Only the unfiltered listing is cached; a filtered view would shadow
	// entries of other types on the next offline read.
	if serviceType == "" {
		writer := xmltree.NewWriter()
		iq.WriteXML(writer)
		a.cacheDocument(ctx, store.ServicesDocument, writer.String())
	}

	fmt.Fprintln(a.out, titleStyle.Render(fmt.Sprintf("services (%d)", len(iq.Services))))
	for _, service := range iq.Services {
		fmt.Fprintf(a.out, "  %s\n", renderService(service))
	}
	return nil
}

func (a *App) pushServices(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: push-services <file|->")
	}

	payload, kindName, err := a.decodeDocument(args[0])
	if err != nil {
		return fmt.Errorf("push-services: %w", err)
	}

	iq, ok := payload.(*extdisco.ServicesIQ)
	if !ok {
		return fmt.Errorf("push-services: document is %s, not a services document", kindName)
	}

	if err = a.server.PushServices(ctx, *iq); err != nil {
		return fmt.Errorf("push-services: %w", err)
	}

	fmt.Fprintf(a.out, "pushed %d service change(s)\n", len(iq.Services))
	return nil
}

// renderService formats one service entry as a single line, appending only
// the optional fields that are present.
func renderService(service extdisco.ExternalService) string {
	line := fmt.Sprintf("%-24s %s", service.Host, service.Type)
	if service.Port != nil {
		line += fmt.Sprintf(" port=%d", *service.Port)
	}
	if service.Transport != nil {
		line += fmt.Sprintf(" transport=%s", service.Transport.String())
	}
	if service.Expires != nil {
		line += " expires=" + service.Expires.UTC().Format(time.RFC3339)
	}
	if service.Restricted != nil && *service.Restricted {
		line += " restricted"
	}
	return line
}

// decodeDocument reads path's content and classifies it against the known
// payload kinds, returning the parsed payload and the matched kind name.
// Callers assert the concrete payload type they expect.
func (a *App) decodeDocument(path string) (stanza.Payload, string, error) {
	body, err := a.readDocument(path)
	if err != nil {
		return nil, "", err
	}

	el, err := xmltree.ParseString(string(body))
	if err != nil {
		return nil, "", err
	}

	kind, ok := a.registry.Classify(el)
	if !ok {
		return nil, "", fmt.Errorf("unrecognised document root <%s>", el.Tag)
	}

	payload := kind.New()
	payload.Parse(el)
	return payload, kind.Name, nil
}

// cacheDocument stores a fetched document for offline reads. Failures are
// logged, not returned, since the fetch itself already succeeded.
func (a *App) cacheDocument(ctx context.Context, kind, body string) {
	if a.session.JID == "" {
		return
	}

	document := store.CachedDocument{Kind: kind, JID: a.session.JID, Body: body}
	if err := a.cache.SaveDocument(ctx, document); err != nil {
		a.logger.Err(err).Str("kind", kind).Msg("failed to cache document")
	}
}

// showCachedDocument falls back to the last fetched copy after a failed
// server read. When no copy exists the original fetch error is returned.
func (a *App) showCachedDocument(ctx context.Context, kind string, fetchErr error) error {
	if a.session.JID == "" {
		return fetchErr
	}

	document, err := a.cache.GetDocument(ctx, kind, a.session.JID)
	if err != nil {
		return fetchErr
	}

	fmt.Fprintln(a.out, warnStyle.Render(fmt.Sprintf(
		"server request failed (%v), showing cached copy from %s",
		fetchErr, document.FetchedAt.UTC().Format(time.RFC3339))))
	fmt.Fprintln(a.out, document.Body)
	return nil
}

func parseDeviceID(raw string) (uint32, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id < 1 || id > math.MaxInt32 {
		return 0, fmt.Errorf("invalid device id %q", raw)
	}
	return uint32(id), nil
}
