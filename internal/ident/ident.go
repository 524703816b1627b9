// Package ident generates collision-resistant identifiers for new records.
package ident

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// New returns an id of the form <prefix>_<unix-ms>_<random>. The millisecond
// timestamp keeps ids roughly sortable; the random suffix guards against
// collisions within the same millisecond.
func New(prefix string) string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand failing means the platform is broken; fall back to
		// the timestamp alone rather than returning an error to callers.
		return fmt.Sprintf("%s_%d", prefix, time.Now().UnixMilli())
	}
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), hex.EncodeToString(b[:]))
}
