package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmppfed/go-keyhub/internal/extdisco"
	"github.com/xmppfed/go-keyhub/internal/service"
	"go.uber.org/mock/gomock"
)

func TestGetServices_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, discovery := newTestHandler(t, ctrl)

	port := 3478
	iq := extdisco.ServicesIQ{Services: []extdisco.ExternalService{
		{Host: "turn.example.com", Type: "turn", Port: &port},
	}}
	discovery.EXPECT().Services(gomock.Any(), int64(7), "").Return(iq, nil)

	w := doAuthed(t, h.getServices, http.MethodGet, "/api/services", "", 7)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/xml", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `<services xmlns="urn:xmpp:extdisco:2">`)
	assert.Contains(t, w.Body.String(), `host="turn.example.com"`)
	assert.Contains(t, w.Body.String(), `port="3478"`)
}

func TestGetServices_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, discovery := newTestHandler(t, ctrl)
	discovery.EXPECT().Services(gomock.Any(), int64(7), "").Return(extdisco.ServicesIQ{}, nil)

	w := doAuthed(t, h.getServices, http.MethodGet, "/api/services", "", 7)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `<services xmlns="urn:xmpp:extdisco:2"/>`, w.Body.String())
}

func TestGetServices_TypeFilterForwarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, discovery := newTestHandler(t, ctrl)
	discovery.EXPECT().Services(gomock.Any(), int64(7), "turn").Return(extdisco.ServicesIQ{}, nil)

	w := doAuthed(t, h.getServices, http.MethodGet, "/api/services?type=turn", "", 7)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPostServices_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, discovery := newTestHandler(t, ctrl)

	discovery.EXPECT().Apply(gomock.Any(), int64(7), gomock.Any()).
		DoAndReturn(func(_ any, _ int64, iq extdisco.ServicesIQ) error {
			require.Len(t, iq.Services, 2)
			assert.Equal(t, "turn.example.com", iq.Services[0].Host)
			require.NotNil(t, iq.Services[1].Action)
			assert.Equal(t, extdisco.ActionDelete, *iq.Services[1].Action)
			return nil
		})

	body := `<services xmlns="urn:xmpp:extdisco:2">` +
		`<service host="turn.example.com" type="turn"/>` +
		`<service host="old.example.com" type="stun" action="delete"/>` +
		`</services>`
	w := doAuthed(t, h.postServices, http.MethodPost, "/api/services", body, 7)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestPostServices_WrongRootElement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newTestHandler(t, ctrl)

	w := doAuthed(t, h.postServices, http.MethodPost, "/api/services", `<devices xmlns="urn:xmpp:omemo:2"/>`, 7)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostServices_ValidationRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, discovery := newTestHandler(t, ctrl)
	discovery.EXPECT().Apply(gomock.Any(), int64(7), gomock.Any()).Return(service.ErrValidationFailed)

	body := `<services xmlns="urn:xmpp:extdisco:2"><service host="" type="turn"/></services>`
	w := doAuthed(t, h.postServices, http.MethodPost, "/api/services", body, 7)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
