package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool holds HMAC-SHA256 instances keyed with the shared hash key.
// It must be initialised with InitHasherPool before Hash, SignBody or
// VerifyBody are used.
var hasherPool sync.Pool

// InitHasherPool keys every pooled hasher with hashKey. Calling it again
// replaces the pool, so only one key is active per process.
func InitHasherPool(hashKey string) {
	key := []byte(hashKey)
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, key)
		},
	}
}

// Hash returns the HMAC-SHA256 of data under the pooled key.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// SignBody returns the hex HMAC-SHA256 of body, the value of the HashSHA256
// header.
func SignBody(body []byte) string {
	return hex.EncodeToString(Hash(body))
}

// VerifyBody reports whether signature is the hex HMAC-SHA256 of body. The
// comparison runs in constant time.
func VerifyBody(body []byte, signature string) bool {
	got, err := hex.DecodeString(signature)
	if err != nil || len(got) == 0 {
		return false
	}
	return hmac.Equal(got, Hash(body))
}

// HashString is the pool-free form of SignBody for one-off use with an
// explicit key.
func HashString(data string, hashKey string) string {
	h := hmac.New(sha256.New, []byte(hashKey))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
