package client

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/xmppfed/go-keyhub/internal/adapter"
	"github.com/xmppfed/go-keyhub/internal/extdisco"
	"github.com/xmppfed/go-keyhub/internal/logger"
	"github.com/xmppfed/go-keyhub/internal/mock"
	"github.com/xmppfed/go-keyhub/internal/omemo"
	"github.com/xmppfed/go-keyhub/internal/stanza"
	"github.com/xmppfed/go-keyhub/internal/store"
	"github.com/xmppfed/go-keyhub/models"
)

// ─────────────────────────────────────────────
// Mock: store.CacheRepository
// ─────────────────────────────────────────────

type mockCacheRepository struct {
	saveSessionFn   func(ctx context.Context, session store.ClientSession) error
	getSessionFn    func(ctx context.Context) (store.ClientSession, error)
	deleteSessionFn func(ctx context.Context) error
	saveDocumentFn  func(ctx context.Context, document store.CachedDocument) error
	getDocumentFn   func(ctx context.Context, kind, jid string) (store.CachedDocument, error)
}

func (m *mockCacheRepository) SaveSession(ctx context.Context, session store.ClientSession) error {
	if m.saveSessionFn != nil {
		return m.saveSessionFn(ctx, session)
	}
	return nil
}

func (m *mockCacheRepository) GetSession(ctx context.Context) (store.ClientSession, error) {
	if m.getSessionFn != nil {
		return m.getSessionFn(ctx)
	}
	return store.ClientSession{}, store.ErrLocalSessionNotFound
}

func (m *mockCacheRepository) DeleteSession(ctx context.Context) error {
	if m.deleteSessionFn != nil {
		return m.deleteSessionFn(ctx)
	}
	return nil
}

func (m *mockCacheRepository) SaveDocument(ctx context.Context, document store.CachedDocument) error {
	if m.saveDocumentFn != nil {
		return m.saveDocumentFn(ctx, document)
	}
	return nil
}

func (m *mockCacheRepository) GetDocument(ctx context.Context, kind, jid string) (store.CachedDocument, error) {
	if m.getDocumentFn != nil {
		return m.getDocumentFn(ctx, kind, jid)
	}
	return store.CachedDocument{}, store.ErrDocumentNotCached
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestApp(server adapter.ServerAdapter, cache store.CacheRepository) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &App{
		server:   server,
		cache:    cache,
		registry: stanza.NewRegistry(append(omemo.Kinds(), extdisco.Kinds()...)...),
		logger:   logger.Nop(),
		in:       strings.NewReader(""),
		out:      out,
	}, out
}

func sessionCache(jid, token string) *mockCacheRepository {
	return &mockCacheRepository{
		getSessionFn: func(ctx context.Context) (store.ClientSession, error) {
			return store.ClientSession{JID: jid, Token: token}, nil
		},
	}
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestRun_NoCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, out := newTestApp(mock.NewMockServerAdapter(ctrl), &mockCacheRepository{})

	err := app.Run(context.Background(), nil)

	require.Error(t, err)
	assert.Contains(t, out.String(), "keyhub client")
}

func TestRun_UnknownCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, _ := newTestApp(mock.NewMockServerAdapter(ctrl), &mockCacheRepository{})

	err := app.Run(context.Background(), []string{"frobnicate"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "frobnicate")
}

func TestRun_RestoresPersistedSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := mock.NewMockServerAdapter(ctrl)
	server.EXPECT().SetToken("persisted-token")

	app, out := newTestApp(server, sessionCache("alice@example.org", "persisted-token"))

	err := app.Run(context.Background(), []string{"whoami"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "alice@example.org")
}

func TestWhoami_NotLoggedIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, _ := newTestApp(mock.NewMockServerAdapter(ctrl), &mockCacheRepository{})

	err := app.Run(context.Background(), []string{"whoami"})

	assert.ErrorIs(t, err, errNotLoggedIn)
}

func TestLogin_PersistsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := mock.NewMockServerAdapter(ctrl)
	server.EXPECT().Login(gomock.Any(), models.LoginRequest{JID: "alice@example.org", Password: "secret"}).Return(nil)
	server.EXPECT().Token().Return("fresh-token")

	var saved store.ClientSession
	cache := &mockCacheRepository{
		saveSessionFn: func(ctx context.Context, session store.ClientSession) error {
			saved = session
			return nil
		},
	}

	app, out := newTestApp(server, cache)

	err := app.Run(context.Background(), []string{"login", "alice@example.org", "secret"})

	require.NoError(t, err)
	assert.Equal(t, store.ClientSession{JID: "alice@example.org", Token: "fresh-token"}, saved)
	assert.Contains(t, out.String(), "logged in as")
}

func TestLogin_ServerRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := mock.NewMockServerAdapter(ctrl)
	server.EXPECT().Login(gomock.Any(), gomock.Any()).Return(adapter.ErrUnauthorized)

	app, _ := newTestApp(server, &mockCacheRepository{})

	err := app.Run(context.Background(), []string{"login", "alice@example.org", "wrong"})

	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestRegister_PersistsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := mock.NewMockServerAdapter(ctrl)
	server.EXPECT().Register(gomock.Any(), models.RegisterRequest{
		JID:      "alice@example.org",
		Password: "secret",
		Name:     "Alice",
	}).Return(nil)
	server.EXPECT().Token().Return("fresh-token")

	var saved store.ClientSession
	cache := &mockCacheRepository{
		saveSessionFn: func(ctx context.Context, session store.ClientSession) error {
			saved = session
			return nil
		},
	}

	app, _ := newTestApp(server, cache)

	err := app.Run(context.Background(), []string{"register", "alice@example.org", "secret", "Alice"})

	require.NoError(t, err)
	assert.Equal(t, "alice@example.org", saved.JID)
}

func TestLogout_DropsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deleted := false
	cache := &mockCacheRepository{
		deleteSessionFn: func(ctx context.Context) error {
			deleted = true
			return nil
		},
	}

	app, out := newTestApp(mock.NewMockServerAdapter(ctrl), cache)

	err := app.Run(context.Background(), []string{"logout"})

	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Contains(t, out.String(), "logged out")
}

func TestDevices_RendersAndCachesList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := mock.NewMockServerAdapter(ctrl)
	server.EXPECT().SetToken("tok")
	server.EXPECT().DeviceList(gomock.Any()).Return(omemo.DeviceList{
		{ID: 12, Label: "phone"},
		{ID: 34},
	}, nil)

	cache := sessionCache("alice@example.org", "tok")
	var cached store.CachedDocument
	cache.saveDocumentFn = func(ctx context.Context, document store.CachedDocument) error {
		cached = document
		return nil
	}

	app, out := newTestApp(server, cache)

	err := app.Run(context.Background(), []string{"devices"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "12")
	assert.Contains(t, out.String(), "phone")

	assert.Equal(t, store.DeviceListDocument, cached.Kind)
	assert.Equal(t, "alice@example.org", cached.JID)
	assert.Equal(t,
		`<devices xmlns="urn:xmpp:omemo:2"><device id="12" label="phone"/><device id="34"/></devices>`,
		cached.Body)
}

func TestDevices_FallsBackToCacheWhenServerIsDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := mock.NewMockServerAdapter(ctrl)
	server.EXPECT().SetToken("tok")
	server.EXPECT().DeviceList(gomock.Any()).Return(nil, errors.New("connection refused"))

	cache := sessionCache("alice@example.org", "tok")
	cache.getDocumentFn = func(ctx context.Context, kind, jid string) (store.CachedDocument, error) {
		require.Equal(t, store.DeviceListDocument, kind)
		require.Equal(t, "alice@example.org", jid)
		return store.CachedDocument{
			Kind:      kind,
			JID:       jid,
			Body:      `<devices xmlns="urn:xmpp:omemo:2"><device id="12"/></devices>`,
			FetchedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		}, nil
	}

	app, out := newTestApp(server, cache)

	err := app.Run(context.Background(), []string{"devices"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "cached copy")
	assert.Contains(t, out.String(), `<device id="12"/>`)
}

func TestDevices_FetchFailsWithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetchErr := errors.New("connection refused")

	server := mock.NewMockServerAdapter(ctrl)
	server.EXPECT().SetToken("tok")
	server.EXPECT().DeviceList(gomock.Any()).Return(nil, fetchErr)

	app, _ := newTestApp(server, sessionCache("alice@example.org", "tok"))

	err := app.Run(context.Background(), []string{"devices"})

	assert.ErrorIs(t, err, fetchErr)
}

func TestPublishDevices_FromStdin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := mock.NewMockServerAdapter(ctrl)
	server.EXPECT().SetToken("tok")
	server.EXPECT().PublishDeviceList(gomock.Any(), omemo.DeviceList{
		{ID: 12, Label: "phone"},
		{ID: 34, Label: "laptop"},
	}).Return(nil)

	app, out := newTestApp(server, sessionCache("alice@example.org", "tok"))
	app.in = strings.NewReader(
		`<devices xmlns="urn:xmpp:omemo:2"><device id="12" label="phone"/><device id="34" label="laptop"/></devices>`)

	err := app.Run(context.Background(), []string{"publish-devices", "-"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "2 device(s)")
}

func TestPublishDevices_RejectsWrongRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := mock.NewMockServerAdapter(ctrl)
	server.EXPECT().SetToken("tok")

	app, _ := newTestApp(server, sessionCache("alice@example.org", "tok"))
	app.in = strings.NewReader(`<services xmlns="urn:xmpp:extdisco:2"/>`)

	err := app.Run(context.Background(), []string{"publish-devices", "-"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a device list")
}

func TestPublishBundle_RejectsDeviceListDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := mock.NewMockServerAdapter(ctrl)
	server.EXPECT().SetToken("tok")

	app, _ := newTestApp(server, sessionCache("alice@example.org", "tok"))
	app.in = strings.NewReader(`<devices xmlns="urn:xmpp:omemo:2"><device id="12"/></devices>`)

	err := app.Run(context.Background(), []string{"publish-bundle", "12", "-"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a device bundle")
}

func TestPublishDevices_RejectsUnknownRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := mock.NewMockServerAdapter(ctrl)
	server.EXPECT().SetToken("tok")

	app, _ := newTestApp(server, sessionCache("alice@example.org", "tok"))
	app.in = strings.NewReader(`<unknown xmlns="urn:example:other"/>`)

	err := app.Run(context.Background(), []string{"publish-devices", "-"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognised document root")
}

func TestTakePreKey_PrintsKeyMaterial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := mock.NewMockServerAdapter(ctrl)
	server.EXPECT().SetToken("tok")
	server.EXPECT().TakePreKey(gomock.Any(), uint32(12)).Return(uint32(10), []byte{0x04}, nil)

	app, out := newTestApp(server, sessionCache("alice@example.org", "tok"))

	err := app.Run(context.Background(), []string{"take-prekey", "12"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "10")
	assert.Contains(t, out.String(), "BA==")
}

func TestTakePreKey_Exhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := mock.NewMockServerAdapter(ctrl)
	server.EXPECT().SetToken("tok")
	server.EXPECT().TakePreKey(gomock.Any(), uint32(12)).Return(uint32(0), nil, adapter.ErrGone)

	app, _ := newTestApp(server, sessionCache("alice@example.org", "tok"))

	err := app.Run(context.Background(), []string{"take-prekey", "12"})

	assert.ErrorIs(t, err, adapter.ErrGone)
}

func TestParseDeviceID(t *testing.T) {
	tests := []struct {
		raw     string
		want    uint32
		wantErr bool
	}{
		{raw: "1", want: 1},
		{raw: "2147483647", want: 2147483647},
		{raw: "0", wantErr: true},
		{raw: "-1", wantErr: true},
		{raw: "2147483648", wantErr: true},
		{raw: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseDeviceID(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestServices_TypeFilterIsForwardedAndNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	port := 3478
	server := mock.NewMockServerAdapter(ctrl)
	server.EXPECT().SetToken("tok")
	server.EXPECT().Services(gomock.Any(), "turn").Return(extdisco.ServicesIQ{
		Services: []extdisco.ExternalService{{Host: "turn.example.org", Type: "turn", Port: &port}},
	}, nil)

	cache := sessionCache("alice@example.org", "tok")
	cache.saveDocumentFn = func(ctx context.Context, document store.CachedDocument) error {
		t.Error("filtered listing must not be cached")
		return nil
	}

	app, out := newTestApp(server, cache)

	err := app.Run(context.Background(), []string{"services", "turn"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "turn.example.org")
	assert.Contains(t, out.String(), "port=3478")
}

func TestPushServices_ParsesActions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := mock.NewMockServerAdapter(ctrl)
	server.EXPECT().SetToken("tok")
	server.EXPECT().PushServices(gomock.Any(), gomock.Any()).Return(nil)

	app, out := newTestApp(server, sessionCache("alice@example.org", "tok"))
	app.in = strings.NewReader(`<services xmlns="urn:xmpp:extdisco:2">` +
		`<service host="turn.example.org" type="turn" action="delete" port="3478"/>` +
		`</services>`)

	err := app.Run(context.Background(), []string{"push-services", "-"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "1 service change(s)")
}
