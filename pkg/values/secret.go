package values

import (
	"strings"

	"github.com/google/uuid"
)

// SecretSource produces generated default values for secrets (session keys,
// signing material). It is an injected capability rather than implicit
// global randomness so tests can substitute a deterministic generator.
type SecretSource func() string

// RandomSecret generates an opaque secret from two concatenated random
// UUIDs, keeping the result free of characters that need quoting in the
// common config formats.
func RandomSecret() string {
	a := strings.ReplaceAll(uuid.NewString(), "-", "")
	b := strings.ReplaceAll(uuid.NewString(), "-", "")
	return a + b
}
