package xmltree

import (
	"encoding/base64"
	"strconv"
	"time"
)

// Lenient conversions implement the degrade-to-default policy shared by all
// payload codecs: malformed or absent wire text is converted to the zero
// value of the target type, never to an error. Codecs call these helpers
// instead of coercing inline so the policy itself stays testable.

// LenientUint32 converts decimal text to a uint32, returning 0 for malformed
// or out-of-range text. The full [0, 2^32-1] range is accepted.
func LenientUint32(s string) uint32 {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint32(v)
}

// LenientInt converts decimal text to an int, returning 0 for malformed text.
func LenientInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

// LenientBool reports whether s is one of the two accepted true spellings.
// Any other text, including malformed text, is false.
func LenientBool(s string) bool {
	return s == "true" || s == "1"
}

// LenientBase64 decodes standard base64 text, returning empty bytes for
// malformed input. Empty text decodes to empty bytes.
func LenientBase64(s string) []byte {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return []byte{}
	}
	return b
}

// dateTimeMillis is the ISO-8601 profile used on the wire: second fractions
// to millisecond precision, explicit offset.
const dateTimeMillis = "2006-01-02T15:04:05.000Z07:00"

// LenientDateTime parses ISO-8601 text with or without fractional seconds,
// returning the zero time for malformed text.
func LenientDateTime(s string) time.Time {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	return time.Time{}
}

// FormatDateTime renders t in the wire's ISO-8601-with-milliseconds profile,
// normalized to UTC.
func FormatDateTime(t time.Time) string {
	return t.UTC().Format(dateTimeMillis)
}
