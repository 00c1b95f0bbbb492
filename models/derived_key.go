// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "runtime"

// DerivedKey is a 32-byte AES key produced once from (password, salt,
// iterations) and reused across many encrypt/decrypt calls.
//
// The value is owned by the caller: nothing in this module caches or zeroes
// it implicitly. Call Zero when the key is no longer needed. Sharing one
// DerivedKey between goroutines is safe for reading; synchronising Zero with
// concurrent users is the caller's job.
type DerivedKey struct {
	// Key is the raw AES-256 key material.
	Key []byte

	// Salt is the KDF salt the key was derived with. It is written into
	// every envelope so the password path can decrypt it as well.
	Salt []byte

	// Iterations is the PBKDF2 iteration count used for derivation.
	Iterations int
}

// Zero overwrites the key material with zeros.
func (k *DerivedKey) Zero() {
	for i := range k.Key {
		k.Key[i] = 0
	}
	runtime.KeepAlive(k.Key)
}
