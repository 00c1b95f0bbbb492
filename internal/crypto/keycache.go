// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"sync"

	"github.com/MKhiriev/go-sealed-table/models"
)

// KeyCache memoises derived keys by (password, salt, iterations) so that a
// batch of envelopes sealed under the same password pays the PBKDF2 cost
// once.
//
// The cache is an explicit object owned by the caller; there is no
// process-wide instance. Passwords are never stored, only their SHA-256
// digest. Keys returned by [KeyCache.Get] belong to the cache: callers must
// not zero or modify them, and must not use them after [KeyCache.Purge].
type KeyCache struct {
	svc    EnvelopeService
	locker sync.Locker
	keys   map[keyCacheEntry]models.DerivedKey
}

type keyCacheEntry struct {
	password   [sha256.Size]byte
	salt       string
	iterations int
}

type noopLocker struct{}

func (noopLocker) Lock()   {}
func (noopLocker) Unlock() {}

// NewKeyCache creates an empty cache deriving through svc. locker guards the
// internal map; pass nil when the cache is confined to one goroutine.
func NewKeyCache(svc EnvelopeService, locker sync.Locker) *KeyCache {
	if locker == nil {
		locker = noopLocker{}
	}
	return &KeyCache{
		svc:    svc,
		locker: locker,
		keys:   make(map[keyCacheEntry]models.DerivedKey),
	}
}

// Get returns the cached key for the triple, deriving it on a miss.
// Derivation runs outside the lock; when two callers race on the same
// triple the first stored key wins and the other one is zeroed.
func (c *KeyCache) Get(password, salt []byte, iterations int) (models.DerivedKey, error) {
	entry := keyCacheEntry{
		password:   sha256.Sum256(password),
		salt:       string(salt),
		iterations: iterations,
	}

	c.locker.Lock()
	key, ok := c.keys[entry]
	c.locker.Unlock()
	if ok {
		return key, nil
	}

	derived, err := c.svc.DeriveKey(password, salt, iterations)
	if err != nil {
		return models.DerivedKey{}, err
	}

	c.locker.Lock()
	defer c.locker.Unlock()
	if existing, ok := c.keys[entry]; ok {
		derived.Zero()
		return existing, nil
	}
	c.keys[entry] = derived

	return derived, nil
}

// Len reports the number of cached keys.
func (c *KeyCache) Len() int {
	c.locker.Lock()
	defer c.locker.Unlock()
	return len(c.keys)
}

// Purge zeroes every cached key and empties the cache.
func (c *KeyCache) Purge() {
	c.locker.Lock()
	defer c.locker.Unlock()
	for entry, key := range c.keys {
		key.Zero()
		delete(c.keys, entry)
	}
}
