package utils

import (
	"encoding/hex"
	"hash"
	"sync"

	"github.com/MKhiriev/memclip/models"
	"golang.org/x/crypto/blake2b"
)

// contentIDLength is the length of a hex-encoded BLAKE2b-256 digest.
const contentIDLength = 2 * blake2b.Size256

// hasherPool is a package-level pool of reusable unkeyed BLAKE2b-256 hash
// instances.
//
// Purpose:
//   - Avoid repeated allocations of new hash.Hash instances
//   - Reduce GC pressure when large clipboard payloads are addressed
var hasherPool = sync.Pool{
	New: func() any {
		// New256 only fails for keys longer than 64 bytes
		h, _ := blake2b.New256(nil)
		return h
	},
}

// ContentIDOf computes the content address of data: the lowercase hex
// BLAKE2b-256 digest, using a hasher pulled from the pool.
//
// Behavior:
//   - Retrieves a hash.Hash instance from sync.Pool
//   - Resets it, writes the data, computes the sum
//   - Resets again and returns it to the pool
//
// Example usage:
//
//	id := utils.ContentIDOf([]byte("copied text"))
func ContentIDOf(data []byte) models.ContentID {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return models.ContentID(hex.EncodeToString(sum))
}

// IsContentID reports whether s is a well-formed content address: exactly 64
// lowercase hex characters.
func IsContentID(s string) bool {
	if len(s) != contentIDLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
