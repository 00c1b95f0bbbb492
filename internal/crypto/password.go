// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// PasswordHasher produces and checks Argon2id password verifiers in PHC
// string form:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
//
// Verifiers are stored next to sealed archives so that destructive
// operations can be authorised without decrypting the archive.
type PasswordHasher struct {
	// Argon2id tuning parameters.
	Time    uint32
	Memory  uint32
	Threads uint8
	KeyLen  uint32
}

// NewPasswordHasher returns a hasher with the OWASP recommended parameters:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes
func NewPasswordHasher() PasswordHasher {
	return PasswordHasher{
		Time:    1,
		Memory:  64 * 1024,
		Threads: 4,
		KeyLen:  32,
	}
}

// Hash returns a PHC-encoded verifier for password with a fresh random salt.
func (h PasswordHasher) Hash(password []byte) (string, error) {
	salt, err := randomBytes(rand.Reader, DefaultSaltSize)
	if err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	hash := argon2.IDKey(password, salt, h.Time, h.Memory, h.Threads, h.KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.Memory, h.Time, h.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// Verify reports whether password matches encoded. The parameters stored in
// encoded take precedence over the receiver's.
func (h PasswordHasher) Verify(password []byte, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return false, fmt.Errorf("%w: unexpected layout", ErrInvalidPasswordHash)
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false, fmt.Errorf("%w: unsupported version %q", ErrInvalidPasswordHash, parts[2])
	}

	var (
		memory, time uint32
		threads      uint8
	)
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false, fmt.Errorf("%w: parameters: %v", ErrInvalidPasswordHash, err)
	}
	if time == 0 || threads == 0 {
		return false, fmt.Errorf("%w: zero cost parameter", ErrInvalidPasswordHash)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("%w: salt: %v", ErrInvalidPasswordHash, err)
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(want) == 0 {
		return false, fmt.Errorf("%w: hash", ErrInvalidPasswordHash)
	}

	got := argon2.IDKey(password, salt, time, memory, threads, uint32(len(want)))
	defer zeroBytes(got)

	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
