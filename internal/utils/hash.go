package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HashHeader is the HTTP header carrying the hex-encoded HMAC-SHA256 of the
// request body.
const HashHeader = "HashSHA256"

// Hasher provides keyed HMAC-SHA256 hashing of request bodies.
// Hash instances are pooled per key so that concurrent requests do not
// allocate a fresh HMAC on every call.
//
// A Hasher with an empty key is disabled: Enabled reports false and callers
// skip signing and verification.
type Hasher struct {
	hashKey []byte
	pool    sync.Pool
}

// NewHasher creates a Hasher for hashKey.
//
// Example usage:
//
//	h := utils.NewHasher("my-secret-key")
//	sig := h.Sign(body)
func NewHasher(hashKey string) *Hasher {
	key := []byte(hashKey)
	h := &Hasher{hashKey: key}
	h.pool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, key)
		},
	}
	return h
}

// Enabled reports whether a non-empty key was configured.
func (h *Hasher) Enabled() bool {
	return h != nil && len(h.hashKey) > 0
}

// Sum computes the raw HMAC-SHA256 digest of data using a pooled hash.
func (h *Hasher) Sum(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	mac.Write(data)
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return sum
}

// Sign returns the hex-encoded HMAC-SHA256 of data.
func (h *Hasher) Sign(data []byte) string {
	return hex.EncodeToString(h.Sum(data))
}

// Verify reports whether signature is the hex-encoded HMAC-SHA256 of data.
// The comparison runs in constant time.
func (h *Hasher) Verify(data []byte, signature string) bool {
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(got, h.Sum(data))
}

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Unlike Hasher, this function creates a new HMAC instance on each call.
// Suitable for one-off hashing, for example in tests.
//
// Example usage:
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	mac := hmac.New(sha256.New, []byte(hashKey))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}
