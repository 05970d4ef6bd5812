package image

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yoshikazuuu/img-host/internal/config"
)

// KeyGenerator derives object storage keys from uploaded filenames.
//
// The default scheme appends the low-order 8 hex digits of the wall-clock
// nanosecond timestamp, so two uploads of the same filename at different
// instants get different keys. It is deliberately not collision-proof:
// uploads landing on the same truncated timestamp derive the same key and
// the later write overwrites the earlier one. KEY_MODE=random swaps the
// suffix for 8 hex digits of a random UUID.
type KeyGenerator struct {
	random bool
	now    func() time.Time
}

// NewKeyGenerator creates a generator for the given config.KeyMode value.
func NewKeyGenerator(mode string) *KeyGenerator {
	return &KeyGenerator{
		random: mode == config.KeyModeRandom,
		now:    time.Now,
	}
}

// DeriveKey builds the storage key for an uploaded filename:
// base + "-" + suffix + ext. A filename without a dot gets no extension.
func (g *KeyGenerator) DeriveKey(filename string) string {
	// Strip any client-supplied directory components so the key stays a
	// single path segment.
	filename = filepath.Base(filename)
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)
	return fmt.Sprintf("%s-%s%s", base, g.suffix(), ext)
}

func (g *KeyGenerator) suffix() string {
	if g.random {
		u := uuid.New()
		return fmt.Sprintf("%x", u[:4])
	}
	ts := fmt.Sprintf("%016x", g.now().UnixNano())
	return ts[len(ts)-8:]
}
