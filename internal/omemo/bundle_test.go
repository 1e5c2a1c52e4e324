package omemo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDeviceBundle(t *testing.T) {
	assert.True(t, IsDeviceBundle(mustParse(t, `<bundle xmlns="urn:xmpp:omemo:2"/>`)))
	assert.False(t, IsDeviceBundle(mustParse(t, `<bundle xmlns="urn:other"/>`)))
	assert.False(t, IsDeviceBundle(mustParse(t, `<devices xmlns="urn:xmpp:omemo:2"/>`)))
}

func TestDeviceBundle_ParseFull(t *testing.T) {
	var b DeviceBundle
	b.Parse(mustParse(t, `<bundle xmlns="urn:xmpp:omemo:2">
		<ik>aWRlbnRpdHk=</ik>
		<spk id="7">c2lnbmVk</spk>
		<spks>c2ln</spks>
		<prekeys>
			<pk id="1">a2V5MQ==</pk>
			<pk id="2">a2V5Mg==</pk>
		</prekeys>
	</bundle>`))

	assert.Equal(t, []byte("identity"), b.PublicIdentityKey)
	assert.Equal(t, uint32(7), b.SignedPublicPreKeyID)
	assert.Equal(t, []byte("signed"), b.SignedPublicPreKey)
	assert.Equal(t, []byte("sig"), b.SignedPublicPreKeySignature)

	require.Len(t, b.PublicPreKeys, 2)
	assert.Equal(t, []byte("key1"), b.PublicPreKeys[1])
	assert.Equal(t, []byte("key2"), b.PublicPreKeys[2])
}

func TestDeviceBundle_ParseMissingChildrenDefaults(t *testing.T) {
	var b DeviceBundle
	b.Parse(mustParse(t, `<bundle xmlns="urn:xmpp:omemo:2"><ik>aGVsbG8=</ik><spks></spks></bundle>`))

	assert.Equal(t, []byte("hello"), b.PublicIdentityKey)
	assert.Equal(t, uint32(0), b.SignedPublicPreKeyID)
	assert.Empty(t, b.SignedPublicPreKey)
	assert.Empty(t, b.SignedPublicPreKeySignature)
	assert.Empty(t, b.PublicPreKeys)
}

func TestDeviceBundle_SerializeMaterializesAbsentSPK(t *testing.T) {
	var b DeviceBundle
	b.Parse(mustParse(t, `<bundle xmlns="urn:xmpp:omemo:2"><ik>aGVsbG8=</ik><spks></spks></bundle>`))

	out := serialize(&b)
	assert.Contains(t, out, `<spk id="0"></spk>`)
	assert.Contains(t, out, `<ik>aGVsbG8=</ik>`)
	assert.Contains(t, out, `<spks></spks>`)
	assert.Contains(t, out, `<prekeys/>`)
}

func TestDeviceBundle_WriteXMLUnconditionalAndSorted(t *testing.T) {
	var b DeviceBundle
	b.AddPublicPreKey(20, []byte("t"))
	b.AddPublicPreKey(3, []byte("u"))
	b.AddPublicPreKey(100, []byte("v"))

	// pre-keys are serialized in ascending id order regardless of insertion
	// order, keeping output deterministic across runs
	want := `<bundle xmlns="urn:xmpp:omemo:2">` +
		`<ik></ik><spk id="0"></spk><spks></spks>` +
		`<prekeys><pk id="3">dQ==</pk><pk id="20">dA==</pk><pk id="100">dg==</pk></prekeys>` +
		`</bundle>`
	assert.Equal(t, want, serialize(&b))
	assert.Equal(t, want, serialize(&b))
}

func TestDeviceBundle_RoundTrip(t *testing.T) {
	in := DeviceBundle{
		PublicIdentityKey:           []byte("identity"),
		SignedPublicPreKey:          []byte("signed"),
		SignedPublicPreKeyID:        7,
		SignedPublicPreKeySignature: []byte("sig"),
	}
	in.AddPublicPreKey(1, []byte("key1"))
	in.AddPublicPreKey(2, []byte("key2"))

	var out DeviceBundle
	out.Parse(mustParse(t, serialize(&in)))

	assert.Equal(t, in.PublicIdentityKey, out.PublicIdentityKey)
	assert.Equal(t, in.SignedPublicPreKey, out.SignedPublicPreKey)
	assert.Equal(t, in.SignedPublicPreKeyID, out.SignedPublicPreKeyID)
	assert.Equal(t, in.SignedPublicPreKeySignature, out.SignedPublicPreKeySignature)
	assert.Equal(t, in.PublicPreKeys, out.PublicPreKeys)
}

func TestDeviceBundle_ParseDuplicatePreKeyIDsLastWins(t *testing.T) {
	var b DeviceBundle
	b.Parse(mustParse(t, `<bundle xmlns="urn:xmpp:omemo:2">
		<prekeys><pk id="1">Zmlyc3Q=</pk><pk id="1">c2Vjb25k</pk></prekeys>
	</bundle>`))

	require.Len(t, b.PublicPreKeys, 1)
	assert.Equal(t, []byte("second"), b.PublicPreKeys[1])
}

func TestDeviceBundle_AddAndRemovePublicPreKey(t *testing.T) {
	var b DeviceBundle

	b.AddPublicPreKey(1, []byte("a"))
	b.AddPublicPreKey(1, []byte("b"))
	assert.Equal(t, []byte("b"), b.PublicPreKeys[1])

	b.RemovePublicPreKey(1)
	assert.Empty(t, b.PublicPreKeys)

	// removing an absent id is a no-op, also on a nil map
	var empty DeviceBundle
	empty.RemovePublicPreKey(42)
}

func TestDeviceBundle_MalformedBase64DegradesToEmpty(t *testing.T) {
	var b DeviceBundle
	b.Parse(mustParse(t, `<bundle xmlns="urn:xmpp:omemo:2"><ik>*** not base64 ***</ik></bundle>`))
	assert.Empty(t, b.PublicIdentityKey)
}
