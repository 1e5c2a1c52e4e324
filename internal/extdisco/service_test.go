package extdisco

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xmppfed/go-keyhub/internal/xmltree"
)

func mustParse(t *testing.T, s string) *xmltree.Element {
	t.Helper()
	el, err := xmltree.ParseString(s)
	require.NoError(t, err)
	return el
}

func serialize(p interface{ WriteXML(*xmltree.Writer) }) string {
	w := xmltree.NewWriter()
	p.WriteXML(w)
	return w.String()
}

func ptr[T any](v T) *T { return &v }

func TestActionStrings(t *testing.T) {
	for _, tt := range []struct {
		action Action
		text   string
	}{
		{ActionAdd, "add"},
		{ActionDelete, "delete"},
		{ActionModify, "modify"},
	} {
		assert.Equal(t, tt.text, tt.action.String())

		got, ok := ActionFromString(tt.text)
		require.True(t, ok)
		assert.Equal(t, tt.action, got)
	}

	_, ok := ActionFromString("bogus")
	assert.False(t, ok)
	_, ok = ActionFromString("")
	assert.False(t, ok)
}

func TestTransportStrings(t *testing.T) {
	for _, tt := range []struct {
		transport Transport
		text      string
	}{
		{TransportTCP, "tcp"},
		{TransportUDP, "udp"},
	} {
		assert.Equal(t, tt.text, tt.transport.String())

		got, ok := TransportFromString(tt.text)
		require.True(t, ok)
		assert.Equal(t, tt.transport, got)
	}

	_, ok := TransportFromString("sctp")
	assert.False(t, ok)
}

func TestIsExternalService(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want bool
	}{
		{name: "host and type", xml: `<service host="h" type="turn"/>`, want: true},
		{name: "missing type", xml: `<service host="h"/>`, want: false},
		{name: "missing host", xml: `<service type="turn"/>`, want: false},
		{name: "empty type", xml: `<service host="h" type=""/>`, want: false},
		{name: "wrong tag", xml: `<services host="h" type="turn"/>`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsExternalService(mustParse(t, tt.xml)))
		})
	}
}

func TestExternalService_ParseAllAttributes(t *testing.T) {
	var s ExternalService
	s.Parse(mustParse(t, `<service host="turn.example.com" type="turn"
		action="modify" expires="2026-09-01T10:00:00.000Z" name="relay"
		password="p" port="3478" restricted="1" transport="udp" username="u"/>`))

	assert.Equal(t, "turn.example.com", s.Host)
	assert.Equal(t, "turn", s.Type)

	require.NotNil(t, s.Action)
	assert.Equal(t, ActionModify, *s.Action)

	require.NotNil(t, s.Expires)
	assert.True(t, s.Expires.Equal(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)))

	assert.Equal(t, ptr("relay"), s.Name)
	assert.Equal(t, ptr("p"), s.Password)
	assert.Equal(t, ptr(3478), s.Port)
	assert.Equal(t, ptr(true), s.Restricted)
	assert.Equal(t, ptr("u"), s.Username)

	require.NotNil(t, s.Transport)
	assert.Equal(t, TransportUDP, *s.Transport)
}

func TestExternalService_ParseAbsentOptionalsStayNil(t *testing.T) {
	var s ExternalService
	s.Parse(mustParse(t, `<service host="h" type="stun"/>`))

	assert.Nil(t, s.Action)
	assert.Nil(t, s.Expires)
	assert.Nil(t, s.Name)
	assert.Nil(t, s.Password)
	assert.Nil(t, s.Port)
	assert.Nil(t, s.Restricted)
	assert.Nil(t, s.Transport)
	assert.Nil(t, s.Username)
}

func TestExternalService_PresentEmptyDiffersFromAbsent(t *testing.T) {
	var s ExternalService
	s.Parse(mustParse(t, `<service host="h" type="t" name="" password=""/>`))

	// present-but-empty yields a present empty value, not nil
	assert.Equal(t, ptr(""), s.Name)
	assert.Equal(t, ptr(""), s.Password)
	assert.Nil(t, s.Username)
}

func TestExternalService_ActionCollapsesAbsentAndInvalid(t *testing.T) {
	var withBogus ExternalService
	withBogus.Parse(mustParse(t, `<service host="h" type="t" action="bogus"/>`))

	var withoutAction ExternalService
	withoutAction.Parse(mustParse(t, `<service host="h" type="t"/>`))

	// bogus and absent decode to the same state
	assert.Equal(t, withoutAction, withBogus)
	assert.Nil(t, withBogus.Action)
}

func TestExternalService_TransportCollapsesAbsentAndInvalid(t *testing.T) {
	var s ExternalService
	s.Parse(mustParse(t, `<service host="h" type="t" transport="carrier-pigeon"/>`))
	assert.Nil(t, s.Transport)
}

func TestExternalService_RestrictedNeverAbsentWhenPresent(t *testing.T) {
	var s ExternalService
	s.Parse(mustParse(t, `<service host="h" type="t" restricted="false"/>`))
	assert.Equal(t, ptr(false), s.Restricted)

	s = ExternalService{}
	s.Parse(mustParse(t, `<service host="h" type="t" restricted="maybe"/>`))
	// any non-"true"/"1" text maps to present false, never to absent
	assert.Equal(t, ptr(false), s.Restricted)

	s = ExternalService{}
	s.Parse(mustParse(t, `<service host="h" type="t" restricted="1"/>`))
	assert.Equal(t, ptr(true), s.Restricted)
}

func TestExternalService_MalformedPortDegradesToZero(t *testing.T) {
	var s ExternalService
	s.Parse(mustParse(t, `<service host="h" type="t" port="not-a-port"/>`))
	assert.Equal(t, ptr(0), s.Port)
}

func TestExternalService_WriteXML(t *testing.T) {
	s := ExternalService{
		Host:      "turn.example.com",
		Type:      "turn",
		Port:      ptr(3478),
		Transport: ptr(TransportUDP),
		Username:  ptr("u"),
		Password:  ptr("p"),
	}

	assert.Equal(t,
		`<service host="turn.example.com" type="turn" password="p" port="3478" transport="udp" username="u"/>`,
		serialize(&s))
}

func TestExternalService_EmptyRequiredFieldSerializesToNoAttribute(t *testing.T) {
	s := ExternalService{Host: "", Type: "stun"}
	assert.Equal(t, `<service type="stun"/>`, serialize(&s))
}

func TestExternalService_RestrictedSerializesLiteral(t *testing.T) {
	s := ExternalService{Host: "h", Type: "t", Restricted: ptr(false)}
	assert.Equal(t, `<service host="h" type="t" restricted="false"/>`, serialize(&s))

	s.Restricted = ptr(true)
	assert.Equal(t, `<service host="h" type="t" restricted="true"/>`, serialize(&s))
}

func TestExternalService_ExpiresSerializesISOWithMillis(t *testing.T) {
	s := ExternalService{
		Host:    "h",
		Type:    "t",
		Expires: ptr(time.Date(2026, 9, 1, 10, 0, 0, 500_000_000, time.UTC)),
	}
	assert.Equal(t, `<service host="h" type="t" expires="2026-09-01T10:00:00.500Z"/>`, serialize(&s))
}

func TestExternalService_RoundTripIdempotence(t *testing.T) {
	expires := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   ExternalService
	}{
		{name: "required only", in: ExternalService{Host: "h", Type: "stun"}},
		{
			name: "all optionals present",
			in: ExternalService{
				Host:       "turn.example.com",
				Type:       "turn",
				Action:     ptr(ActionAdd),
				Expires:    &expires,
				Name:       ptr("relay"),
				Password:   ptr("p"),
				Port:       ptr(3478),
				Restricted: ptr(true),
				Transport:  ptr(TransportTCP),
				Username:   ptr("u"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out ExternalService
			out.Parse(mustParse(t, serialize(&tt.in)))

			if tt.in.Expires != nil {
				require.NotNil(t, out.Expires)
				assert.True(t, out.Expires.Equal(*tt.in.Expires))
				out.Expires = tt.in.Expires
			}
			assert.Equal(t, tt.in, out)
		})
	}
}
