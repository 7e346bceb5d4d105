package user

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"regexp"
	"time"
)

// ValidID matches the identifier format the collection expects:
// 24 lowercase hex characters, the first 8 encoding creation time
// in unix seconds, the remaining 16 random.
var ValidID = regexp.MustCompile(`^[0-9a-f]{24}$`)

// IDGenerator — стратегия генерации идентификаторов записей.
// Identifiers are assigned on the client, not by the store; the store is
// not assumed to enforce uniqueness. Collisions need 8 random bytes to
// coincide within the same second and are treated as statistically
// negligible.
type IDGenerator struct {
	now    func() time.Time
	random func(b []byte) (int, error)
}

// NewIDGenerator creates a generator backed by the system clock and
// crypto/rand.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{
		now:    time.Now,
		random: rand.Read,
	}
}

// NewID produces a fresh identifier and asserts its format. A format
// failure can only mean a broken generator, but the invariant is checked
// on every call and surfaces as ErrInvalidID.
func (g *IDGenerator) NewID() (string, error) {
	var ts [4]byte
	binary.BigEndian.PutUint32(ts[:], uint32(g.now().Unix()))

	var suffix [8]byte
	if _, err := g.random(suffix[:]); err != nil {
		return "", fmt.Errorf("read random suffix: %w", err)
	}

	id := hex.EncodeToString(ts[:]) + hex.EncodeToString(suffix[:])
	if !ValidID.MatchString(id) {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return id, nil
}

// IDTime extracts the creation time encoded in the identifier prefix.
func IDTime(id string) (time.Time, error) {
	if !ValidID.MatchString(id) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	raw, err := hex.DecodeString(id[:8])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	secs := binary.BigEndian.Uint32(raw)
	return time.Unix(int64(secs), 0), nil
}
