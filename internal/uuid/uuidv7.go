package uuid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	googleuuid "github.com/google/uuid"
)

// Generator issues UUIDv7 strings that sort strictly after every value it
// issued before, even within the same millisecond or if the clock steps back.
//
// Format (RFC 9562):
// - 48 bits: Unix timestamp in milliseconds
// - 4 bits: version (0111 = 7)
// - 12 bits: sequence counter within the millisecond
// - 2 bits: variant (10)
// - 62 bits: random data
type Generator struct {
	mu     sync.Mutex
	now    func() time.Time
	lastMS uint64
	seq    uint16
}

// NewGenerator creates a Generator reading time from now. A nil now uses time.Now.
func NewGenerator(now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now}
}

// Next returns the next identifier.
func (g *Generator) Next() string {
	g.mu.Lock()
	ms := uint64(g.now().UnixMilli())
	if ms > g.lastMS {
		g.lastMS = ms
		g.seq = 0
	} else {
		g.seq++
		if g.seq > 0x0fff {
			// Counter exhausted: borrow the next millisecond.
			g.lastMS++
			g.seq = 0
		}
	}
	ms, seq := g.lastMS, g.seq
	g.mu.Unlock()

	var uuid [16]byte
	binary.BigEndian.PutUint64(uuid[0:8], ms<<16)

	if _, err := rand.Read(uuid[8:]); err != nil {
		// Fallback to standard UUIDv4 if random generation fails
		return googleuuid.New().String()
	}

	// Version 7 plus the 12-bit sequence.
	uuid[6] = 0x70 | byte(seq>>8)
	uuid[7] = byte(seq)

	// Set variant (2 bits) to 10
	uuid[8] = (uuid[8] & 0x3f) | 0x80

	return formatUUID(uuid)
}

var defaultGenerator = NewGenerator(nil)

// New generates a new time-ordered UUIDv7 from the process-wide generator.
func New() string {
	return defaultGenerator.Next()
}

// formatUUID formats a 16-byte array as a UUID string
func formatUUID(uuid [16]byte) string {
	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		binary.BigEndian.Uint32(uuid[0:4]),
		binary.BigEndian.Uint16(uuid[4:6]),
		binary.BigEndian.Uint16(uuid[6:8]),
		binary.BigEndian.Uint16(uuid[8:10]),
		uuid[10:16],
	)
}
