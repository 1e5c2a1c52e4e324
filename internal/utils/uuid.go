package utils

import "github.com/google/uuid"

// UUIDGenerator produces the trace identifiers attached to inbound requests
// that arrive without an X-Trace-ID header.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string. Version 7 ids embed a timestamp, so
// trace ids sort by request arrival in log storage. When the v7 source
// fails the id degrades to a random v4, never an error.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
