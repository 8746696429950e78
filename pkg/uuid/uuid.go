// Package uuid provides UUID v7 generation.
// UUID v7 is sortable by timestamp, which keeps conversation and message ids
// in insertion order under a btree index.
package uuid

import (
	"crypto/rand"
	"fmt"
	"time"
)

// UUID represents a UUID v7 identifier.
type UUID [16]byte

// NewV7 generates a new UUID v7 (draft-ietf-uuidrev-rfc4122bis):
// 48 bits of UNIX milliseconds, then version/variant bits over random data.
func NewV7() UUID {
	var u UUID

	now := time.Now().UnixMilli()
	u[0] = byte(now >> 40)
	u[1] = byte(now >> 32)
	u[2] = byte(now >> 24)
	u[3] = byte(now >> 16)
	u[4] = byte(now >> 8)
	u[5] = byte(now)

	// Bytes 6-15 are random; crypto/rand failing means the process is in
	// much deeper trouble than id generation.
	if _, err := rand.Read(u[6:]); err != nil {
		panic(fmt.Sprintf("uuid: crypto/rand unavailable: %v", err))
	}

	u[6] = 0x70 | (u[6] & 0x0f) // version 7
	u[7] = 0x80 | (u[7] & 0x3f) // RFC 4122 variant

	return u
}

// NewString generates a new UUID v7 in standard textual form.
func NewString() string {
	return NewV7().String()
}

// String returns the UUID as xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx.
func (u UUID) String() string {
	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		u[0:4],
		u[4:6],
		u[6:8],
		u[8:10],
		u[10:16],
	)
}
