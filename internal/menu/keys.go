package menu

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// Domain prefix for group key digests. Version suffix enables future
// algorithm migration without colliding with old keys.
const groupKeyDomain = "zonemenu/group-key/v1"

// GroupKey derives the stable key for a group from its label:
// "group:<slug>:<digest>". The label is NFC-normalized first so that
// visually identical labels produce identical keys regardless of how the
// definition file encoded them.
//
// Known limitation: the key follows the label. Renaming a group changes its
// key and orphans any saved configuration that referenced it. Definitions
// can avoid that by assigning an explicit id (see ExplicitGroupKey).
func GroupKey(label string) string {
	normalized := norm.NFC.String(label)

	h := sha256.New()
	h.Write([]byte(groupKeyDomain))
	h.Write([]byte{0x00})
	h.Write([]byte(normalized))
	digest := hex.EncodeToString(h.Sum(nil))[:32]

	return "group:" + Slug(normalized) + ":" + digest
}

// ExplicitGroupKey builds the key for a group that declares its own id.
// Stable across label renames.
func ExplicitGroupKey(id string) string {
	return "group:" + Slug(id)
}

// FallbackKey returns an opaque key for an element with no stable identity.
// Not stable across reloads; configuration saved against such a key is
// orphaned on the next discovery run.
func FallbackKey() string {
	return "unknown:" + uuid.NewString()
}

// Slug lowercases s and collapses every run of non-alphanumeric characters
// into a single hyphen.
func Slug(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingHyphen := false
	for _, r := range strings.ToLower(norm.NFC.String(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}
	return b.String()
}
