// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-keyhub Authors

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xmppfed/go-keyhub/internal/logger"
	"github.com/xmppfed/go-keyhub/internal/mock"
	"github.com/xmppfed/go-keyhub/internal/service"
	"github.com/xmppfed/go-keyhub/internal/utils"
	"go.uber.org/mock/gomock"
)

// newTestHandler wires a Handler around gomock service mocks. Tests set
// expectations on whichever mock their endpoint touches.
func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, *mock.MockAuthService, *mock.MockKeyDistributionService, *mock.MockDiscoveryService) {
	t.Helper()

	auth := mock.NewMockAuthService(ctrl)
	keys := mock.NewMockKeyDistributionService(ctrl)
	discovery := mock.NewMockDiscoveryService(ctrl)

	h := NewHandler(&service.Services{
		Auth:      auth,
		Keys:      keys,
		Discovery: discovery,
	}, logger.Nop())

	return h, auth, keys, discovery
}

// doAuthed runs an authenticated request against a bare handler func with
// the publisher id already planted in the context, bypassing the auth
// middleware.
func doAuthed(t *testing.T, handlerFunc http.HandlerFunc, method, target, body string, publisherID int64) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	r := httptest.NewRequest(method, target, reader)
	r = r.WithContext(context.WithValue(r.Context(), utils.PublisherIDCtxKey, publisherID))

	w := httptest.NewRecorder()
	handlerFunc(w, r)
	return w
}

func TestNewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newTestHandler(t, ctrl)
	require.NotNil(t, h)
	require.NotNil(t, h.Init())
}
