package session

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
	"time"
)

// Session IDs are ULIDs: 26 Crockford Base32 characters, a 48-bit
// millisecond timestamp followed by 80 random bits, so they sort by
// creation time.

const crockford = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

type ulidSource struct {
	mu      sync.Mutex
	now     func() time.Time
	lastTS  uint64
	lastSeq uint16
}

var ids = &ulidSource{now: time.Now}

func newSessionID() string { return ids.next() }

func (u *ulidSource) next() string {
	u.mu.Lock()
	defer u.mu.Unlock()

	ts := uint64(u.now().UnixMilli())
	if ts == u.lastTS {
		u.lastSeq++
	} else {
		u.lastTS = ts
		u.lastSeq = 0
	}

	var b [16]byte
	binary.BigEndian.PutUint16(b[0:2], uint16(ts>>32))
	binary.BigEndian.PutUint32(b[2:6], uint32(ts))
	rand.Read(b[6:])
	// The sequence keeps IDs from one millisecond in creation order.
	binary.BigEndian.PutUint16(b[6:8], u.lastSeq)

	return encodeULID(b)
}

// encodeULID writes the 128 bits of b as 26 base32 digits, most
// significant first. The leading digit carries the top 3 bits.
func encodeULID(b [16]byte) string {
	hi := binary.BigEndian.Uint64(b[:8])
	lo := binary.BigEndian.Uint64(b[8:])
	var out [26]byte
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = crockford[lo&31]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return string(out[:])
}
