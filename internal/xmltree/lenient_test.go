package xmltree

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLenientUint32(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want uint32
	}{
		{name: "plain", in: "42", want: 42},
		{name: "zero", in: "0", want: 0},
		{name: "empty", in: "", want: 0},
		{name: "malformed", in: "abc", want: 0},
		{name: "negative", in: "-5", want: 0},
		{name: "above int32 max", in: "4294967295", want: 4294967295},
		{name: "above uint32 max", in: "4294967296", want: 0},
		{name: "trailing garbage", in: "7x", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LenientUint32(tt.in))
		})
	}
}

func TestLenientInt(t *testing.T) {
	assert.Equal(t, 3478, LenientInt("3478"))
	assert.Equal(t, -1, LenientInt("-1"))
	assert.Equal(t, 0, LenientInt(""))
	assert.Equal(t, 0, LenientInt("port"))
}

func TestLenientBool(t *testing.T) {
	assert.True(t, LenientBool("true"))
	assert.True(t, LenientBool("1"))
	assert.False(t, LenientBool("false"))
	assert.False(t, LenientBool("0"))
	assert.False(t, LenientBool("maybe"))
	assert.False(t, LenientBool(""))
	assert.False(t, LenientBool("TRUE"))
}

func TestLenientBase64(t *testing.T) {
	assert.Equal(t, []byte("hello"), LenientBase64("aGVsbG8="))
	assert.Empty(t, LenientBase64(""))
	assert.Empty(t, LenientBase64("!!not base64!!"))
}

func TestLenientDateTime(t *testing.T) {
	got := LenientDateTime("2026-03-01T12:30:45.500+01:00")
	want := time.Date(2026, 3, 1, 12, 30, 45, 500_000_000, time.FixedZone("", 3600))
	assert.True(t, got.Equal(want))

	// seconds-only precision is accepted too
	assert.False(t, LenientDateTime("2026-03-01T12:30:45Z").IsZero())

	assert.True(t, LenientDateTime("").IsZero())
	assert.True(t, LenientDateTime("yesterday").IsZero())
}

func TestFormatDateTime(t *testing.T) {
	in := time.Date(2026, 3, 1, 11, 30, 45, 500_000_000, time.UTC)
	assert.Equal(t, "2026-03-01T12:30:45.500Z", FormatDateTime(in.Add(time.Hour)))

	// non-UTC inputs are normalized to UTC
	local := time.Date(2026, 3, 1, 12, 30, 45, 500_000_000, time.FixedZone("CET", 3600))
	assert.Equal(t, "2026-03-01T11:30:45.500Z", FormatDateTime(local))

	// formatting then parsing yields the same instant
	rt := LenientDateTime(FormatDateTime(in))
	assert.True(t, rt.Equal(in))
}
