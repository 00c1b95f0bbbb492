// Package crypto implements the password-based envelope that protects
// serialised tables: PBKDF2-HMAC-SHA256 key derivation, AES-256-GCM
// sealing, and the self-describing binary layout
//
//	u32 saltLength (LE) | salt | nonce (12) | ciphertext | tag (16)
//
// The package also provides a derived-key fast path, an explicit
// [KeyCache], X25519 key agreement and Argon2id password verifiers.
//
// Errors fall into two kinds, [ErrValidation] and [ErrAuthentication].
// The second never says why verification failed.
package crypto
