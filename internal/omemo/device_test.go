package omemo

import (
	"testing"

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

func TestIsDeviceElement(t *testing.T) {
	assert.True(t, IsDeviceElement(mustParse(t, `<device xmlns="urn:xmpp:omemo:2" id="1"/>`)))
	assert.False(t, IsDeviceElement(mustParse(t, `<device xmlns="urn:other" id="1"/>`)))
	assert.False(t, IsDeviceElement(mustParse(t, `<devices xmlns="urn:xmpp:omemo:2"/>`)))
	assert.False(t, IsDeviceElement(nil))
}

func TestDeviceElement_Parse(t *testing.T) {
	tests := []struct {
		name      string
		xml       string
		wantID    uint32
		wantLabel string
	}{
		{name: "id and label", xml: `<device id="1" label="Phone"/>`, wantID: 1, wantLabel: "Phone"},
		{name: "no label", xml: `<device id="2"/>`, wantID: 2, wantLabel: ""},
		{name: "missing id", xml: `<device label="Tablet"/>`, wantID: 0, wantLabel: "Tablet"},
		{name: "malformed id", xml: `<device id="abc"/>`, wantID: 0, wantLabel: ""},
		{name: "full uint32 range", xml: `<device id="4294967295"/>`, wantID: 4294967295, wantLabel: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d DeviceElement
			d.Parse(mustParse(t, tt.xml))
			assert.Equal(t, tt.wantID, d.ID)
			assert.Equal(t, tt.wantLabel, d.Label)
		})
	}
}

func TestDeviceElement_WriteXML(t *testing.T) {
	d := DeviceElement{ID: 1, Label: "Phone"}
	assert.Equal(t, `<device id="1" label="Phone"/>`, serialize(&d))

	// id is always written, label only when non-empty
	d = DeviceElement{ID: 0}
	assert.Equal(t, `<device id="0"/>`, serialize(&d))
}

func TestDeviceElement_RoundTrip(t *testing.T) {
	in := DeviceElement{ID: 4294967295, Label: "Laptop"}

	var out DeviceElement
	out.Parse(mustParse(t, serialize(&in)))
	assert.Equal(t, in, out)
}

func TestDeviceElement_EmptyLabelBecomesAbsentAfterRoundTrip(t *testing.T) {
	in := DeviceElement{ID: 5, Label: ""}
	xml := serialize(&in)
	assert.Equal(t, `<device id="5"/>`, xml)

	var out DeviceElement
	out.Parse(mustParse(t, xml))
	assert.Equal(t, uint32(5), out.ID)
	assert.Equal(t, "", out.Label)
}

func TestDeviceElement_EqualComparesOnlyID(t *testing.T) {
	a := DeviceElement{ID: 7, Label: "Phone"}
	b := DeviceElement{ID: 7, Label: "Tablet"}
	c := DeviceElement{ID: 8, Label: "Phone"}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestIsDeviceList(t *testing.T) {
	assert.True(t, IsDeviceList(mustParse(t, `<devices xmlns="urn:xmpp:omemo:2"/>`)))
	assert.False(t, IsDeviceList(mustParse(t, `<devices xmlns="urn:other"/>`)))
	assert.False(t, IsDeviceList(mustParse(t, `<bundle xmlns="urn:xmpp:omemo:2"/>`)))
}

func TestDeviceList_Parse(t *testing.T) {
	var l DeviceList
	l.Parse(mustParse(t, `<devices xmlns="urn:xmpp:omemo:2">
		<device id="3" label="Phone"/>
		<unrelated/>
		<device id="1"/>
		<device id="3"/>
	</devices>`))

	require.Len(t, l, 3)
	assert.Equal(t, DeviceElement{ID: 3, Label: "Phone"}, l[0])
	assert.Equal(t, DeviceElement{ID: 1}, l[1])
	assert.Equal(t, DeviceElement{ID: 3}, l[2])
}

func TestDeviceList_RoundTripPreservesOrderAndDuplicates(t *testing.T) {
	for _, in := range []DeviceList{
		nil,
		{{ID: 1, Label: "Phone"}},
		{{ID: 2}, {ID: 1}, {ID: 2}, {ID: 3, Label: "x"}},
	} {
		var out DeviceList
		out.Parse(mustParse(t, serialize(&in)))

		require.Len(t, out, len(in))
		for i := range in {
			assert.Equal(t, in[i], out[i])
		}
	}
}

func TestDeviceList_WriteXML(t *testing.T) {
	l := DeviceList{{ID: 1, Label: "Phone"}, {ID: 2}}
	assert.Equal(t,
		`<devices xmlns="urn:xmpp:omemo:2"><device id="1" label="Phone"/><device id="2"/></devices>`,
		serialize(&l))
}
