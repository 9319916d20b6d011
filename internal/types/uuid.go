package types

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// Prefixes for generated identifiers, one per entity.
const (
	UUID_PREFIX_COST_ITEM    = "item"
	UUID_PREFIX_PROJECT      = "proj"
	UUID_PREFIX_SELECTION    = "sel"
	UUID_PREFIX_CONFIRMATION = "conf"
	UUID_PREFIX_REQUEST      = "req"
)

// GenerateUUID returns a lowercase ULID.
func GenerateUUID() string {
	return strings.ToLower(ulid.MustNew(ulid.Timestamp(time.Now().UTC()), rand.Reader).String())
}

// GenerateUUIDWithPrefix returns a ULID prefixed with the entity tag,
// e.g. "proj_01hx...".
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}
