// Package cache provides the response cache used by the property list and
// search endpoints. Keys are hashes of the normalized request so any two
// equivalent requests share an entry; every property mutation invalidates
// the whole prefix.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
	Invalidate(ctx context.Context, prefix string)
}

// Key hashes the given parts under a prefix, e.g.
// Key("property", "search", body) -> "property:ab12...".
func Key(prefix string, parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "&")))
	return prefix + ":" + hex.EncodeToString(sum[:])
}
