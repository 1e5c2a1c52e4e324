package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/xmppfed/go-keyhub/internal/config"
	"github.com/xmppfed/go-keyhub/internal/extdisco"
	"github.com/xmppfed/go-keyhub/internal/logger"
	"github.com/xmppfed/go-keyhub/internal/omemo"
	"github.com/xmppfed/go-keyhub/internal/utils"
	"github.com/xmppfed/go-keyhub/internal/xmltree"
	"github.com/xmppfed/go-keyhub/models"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the underlying client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// authed returns a request with the stored bearer token attached.
func (h *httpServerAdapter) authed(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+h.Token())
}

func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

func (h *httpServerAdapter) DeviceList(ctx context.Context) (omemo.DeviceList, error) {
	resp, err := h.authed(ctx).Get("/api/devices")
	if err != nil {
		return nil, fmt.Errorf("device list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	el, err := xmltree.ParseString(string(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("device list response: %w", err)
	}
	if !omemo.IsDeviceList(el) {
		return nil, fmt.Errorf("device list response: unexpected element <%s>", el.Tag)
	}

	var list omemo.DeviceList
	list.Parse(el)
	return list, nil
}

func (h *httpServerAdapter) PublishDeviceList(ctx context.Context, list omemo.DeviceList) error {
	writer := xmltree.NewWriter()
	list.WriteXML(writer)

	resp, err := h.authed(ctx).
		SetHeader("Content-Type", "application/xml").
		SetBody(writer.String()).
		Put("/api/devices")
	if err != nil {
		return fmt.Errorf("publish device list request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Bundle(ctx context.Context, deviceID uint32) (omemo.DeviceBundle, error) {
	resp, err := h.authed(ctx).Get(bundlePath(deviceID))
	if err != nil {
		return omemo.DeviceBundle{}, fmt.Errorf("bundle request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return omemo.DeviceBundle{}, err
	}

	el, err := xmltree.ParseString(string(resp.Body()))
	if err != nil {
		return omemo.DeviceBundle{}, fmt.Errorf("bundle response: %w", err)
	}
	if !omemo.IsDeviceBundle(el) {
		return omemo.DeviceBundle{}, fmt.Errorf("bundle response: unexpected element <%s>", el.Tag)
	}

	var bundle omemo.DeviceBundle
	bundle.Parse(el)
	return bundle, nil
}

func (h *httpServerAdapter) PublishBundle(ctx context.Context, deviceID uint32, bundle omemo.DeviceBundle) error {
	writer := xmltree.NewWriter()
	bundle.WriteXML(writer)

	resp, err := h.authed(ctx).
		SetHeader("Content-Type", "application/xml").
		SetBody(writer.String()).
		Put(bundlePath(deviceID))
	if err != nil {
		return fmt.Errorf("publish bundle request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) TakePreKey(ctx context.Context, deviceID uint32) (uint32, []byte, error) {
	resp, err := h.authed(ctx).Post(bundlePath(deviceID) + "/prekey")
	if err != nil {
		return 0, nil, fmt.Errorf("take pre-key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, nil, err
	}

	el, err := xmltree.ParseString(string(resp.Body()))
	if err != nil {
		return 0, nil, fmt.Errorf("take pre-key response: %w", err)
	}
	if el.Tag != "pk" {
		return 0, nil, fmt.Errorf("take pre-key response: unexpected element <%s>", el.Tag)
	}

	keyID := xmltree.LenientUint32(el.Attribute("id"))
	return keyID, xmltree.LenientBase64(el.Text()), nil
}

func (h *httpServerAdapter) PreKeyCount(ctx context.Context, deviceID uint32) (int, error) {
	resp, err := h.authed(ctx).Get(bundlePath(deviceID) + "/prekeys/count")
	if err != nil {
		return 0, fmt.Errorf("pre-key count request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	var count models.PreKeyCountResponse
	if err := json.Unmarshal(resp.Body(), &count); err != nil {
		return 0, fmt.Errorf("pre-key count response: %w", err)
	}

	return count.Count, nil
}

func (h *httpServerAdapter) Services(ctx context.Context, serviceType string) (extdisco.ServicesIQ, error) {
	request := h.authed(ctx)
	if serviceType != "" {
		request.SetQueryParam("type", serviceType)
	}

	resp, err := request.Get("/api/services")
	if err != nil {
		return extdisco.ServicesIQ{}, fmt.Errorf("services request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return extdisco.ServicesIQ{}, err
	}

	el, err := xmltree.ParseString(string(resp.Body()))
	if err != nil {
		return extdisco.ServicesIQ{}, fmt.Errorf("services response: %w", err)
	}
	if !extdisco.IsServicesIQ(el) {
		return extdisco.ServicesIQ{}, fmt.Errorf("services response: unexpected element <%s>", el.Tag)
	}

	var iq extdisco.ServicesIQ
	iq.Parse(el)
	return iq, nil
}

func (h *httpServerAdapter) PushServices(ctx context.Context, iq extdisco.ServicesIQ) error {
	writer := xmltree.NewWriter()
	iq.WriteXML(writer)

	resp, err := h.authed(ctx).
		SetHeader("Content-Type", "application/xml").
		SetBody(writer.String()).
		Post("/api/services")
	if err != nil {
		return fmt.Errorf("push services request: %w", err)
	}

	return mapHTTPError(resp)
}

func bundlePath(deviceID uint32) string {
	return "/api/bundles/" + strconv.FormatUint(uint64(deviceID), 10)
}
