package stanza

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xmppfed/go-keyhub/internal/xmltree"
)

const fakeNS = "urn:test:fake"

// fakePayload is a minimal payload used to exercise the container contract
// without pulling in a real codec.
type fakePayload struct {
	Value string
}

func isFakePayload(el *xmltree.Element) bool {
	return el != nil && el.Tag == "fake" && el.Namespace == fakeNS
}

func (f *fakePayload) Parse(el *xmltree.Element) {
	f.Value = el.Attribute("value")
}

func (f *fakePayload) WriteXML(w *xmltree.Writer) {
	w.StartElement("fake")
	w.DefaultNamespace(fakeNS)
	w.OptionalAttribute("value", f.Value)
	w.EndElement()
}

func mustParse(t *testing.T, s string) *xmltree.Element {
	t.Helper()
	el, err := xmltree.ParseString(s)
	require.NoError(t, err)
	return el
}

func TestIsEnvelope(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want bool
	}{
		{name: "single matching child", xml: `<iq><fake xmlns="urn:test:fake"/></iq>`, want: true},
		{name: "no children", xml: `<iq/>`, want: false},
		{name: "two children", xml: `<iq><fake xmlns="urn:test:fake"/><fake xmlns="urn:test:fake"/></iq>`, want: false},
		{name: "wrong child type", xml: `<iq><other xmlns="urn:test:fake"/></iq>`, want: false},
		{name: "wrong child namespace", xml: `<iq><fake xmlns="urn:other"/></iq>`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEnvelope(mustParse(t, tt.xml), isFakePayload))
		})
	}
}

func TestEnvelope_ParseDelegatesToFirstChild(t *testing.T) {
	env := &Envelope{Payload: &fakePayload{}}
	env.Parse(mustParse(t, `<iq><fake xmlns="urn:test:fake" value="a"/><fake xmlns="urn:test:fake" value="b"/></iq>`))

	assert.Equal(t, "a", env.Payload.(*fakePayload).Value)
}

func TestEnvelope_WriteXMLProducesNoWrapper(t *testing.T) {
	env := &Envelope{Payload: &fakePayload{Value: "v"}}

	w := xmltree.NewWriter()
	env.WriteXML(w)

	assert.Equal(t, `<fake xmlns="urn:test:fake" value="v"/>`, w.String())
}

func TestIsItem(t *testing.T) {
	assert.True(t, IsItem(mustParse(t, `<item><fake xmlns="urn:test:fake"/></item>`), isFakePayload))
	assert.True(t, IsItem(mustParse(t, `<item id="current"/>`), isFakePayload))
	assert.False(t, IsItem(mustParse(t, `<item><other xmlns="urn:test:fake"/></item>`), isFakePayload))
	assert.False(t, IsItem(mustParse(t, `<item><fake xmlns="urn:test:fake"/><fake xmlns="urn:test:fake"/></item>`), isFakePayload))
}

func TestItem_Attributes(t *testing.T) {
	var it Item
	it.ParseAttributes(mustParse(t, `<item id="current" publisher="user@example.com"/>`))

	assert.Equal(t, "current", it.ID)
	assert.Equal(t, "user@example.com", it.Publisher)

	w := xmltree.NewWriter()
	w.StartElement("item")
	it.WriteAttributes(w)
	w.EndElement()
	assert.Equal(t, `<item id="current" publisher="user@example.com"/>`, w.String())
}

func TestRegistry_Classify(t *testing.T) {
	reg := NewRegistry(Kind{
		Name:  "fake",
		Match: isFakePayload,
		New:   func() Payload { return &fakePayload{} },
	})

	k, ok := reg.Classify(mustParse(t, `<fake xmlns="urn:test:fake"/>`))
	require.True(t, ok)
	assert.Equal(t, "fake", k.Name)

	_, ok = reg.Classify(mustParse(t, `<other xmlns="urn:test:fake"/>`))
	assert.False(t, ok)
}

func TestRegistry_Decode(t *testing.T) {
	reg := NewRegistry(Kind{
		Name:  "fake",
		Match: isFakePayload,
		New:   func() Payload { return &fakePayload{} },
	})

	p, ok := reg.Decode(mustParse(t, `<fake xmlns="urn:test:fake" value="hi"/>`))
	require.True(t, ok)
	assert.Equal(t, "hi", p.(*fakePayload).Value)
}

func TestRegistry_DecodeEnvelope(t *testing.T) {
	reg := NewRegistry(Kind{
		Name:  "fake",
		Match: isFakePayload,
		New:   func() Payload { return &fakePayload{} },
	})

	p, ok := reg.DecodeEnvelope(mustParse(t, `<iq><fake xmlns="urn:test:fake" value="x"/></iq>`))
	require.True(t, ok)
	assert.Equal(t, "x", p.(*fakePayload).Value)

	_, ok = reg.DecodeEnvelope(mustParse(t, `<iq/>`))
	assert.False(t, ok)

	_, ok = reg.DecodeEnvelope(mustParse(t, `<iq><fake xmlns="urn:test:fake"/><fake xmlns="urn:test:fake"/></iq>`))
	assert.False(t, ok)
}
