package crypto

import "github.com/MKhiriev/go-sealed-table/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/envelope_service_mock.go -package=mock

// EnvelopeService seals and opens password-protected envelopes.
//
// Scheme:
//
//	Key      = PBKDF2-HMAC-SHA256(password, salt, iterations, 32)
//	Sealed   = AES-256-GCM(Key, nonce, plaintext)          (ciphertext ‖ tag)
//	Envelope = len(salt) ‖ salt ‖ nonce ‖ ciphertext ‖ tag
//
// The service is stateless: every call is independent and safe for
// concurrent use.
type EnvelopeService interface {
	// Encrypt derives a key from password and salt and seals plaintext.
	// A nil salt is replaced by [DefaultSaltSize] random bytes; an explicit
	// salt must be [MinSaltSize]..[MaxSaltSize] bytes long.
	Encrypt(plaintext, password, salt []byte, iterations int) ([]byte, error)

	// Decrypt re-derives the key from the salt embedded in envelope and
	// opens it. A tag mismatch is reported as [ErrAuthentication].
	Decrypt(envelope, password []byte, iterations int) ([]byte, error)

	// DeriveKey runs the key derivation alone so that the PBKDF2 cost can be
	// paid once for many envelopes. The result is owned by the caller.
	DeriveKey(password, salt []byte, iterations int) (models.DerivedKey, error)

	// EncryptWithDerivedKey seals plaintext under key.Key and carries
	// key.Salt so the password path can open the result too.
	EncryptWithDerivedKey(plaintext []byte, key models.DerivedKey) ([]byte, error)

	// DecryptWithDerivedKey opens an envelope produced by either path.
	DecryptWithDerivedKey(envelope []byte, key models.DerivedKey) ([]byte, error)

	// PeekSalt returns a copy of the salt embedded in envelope without
	// decrypting anything.
	PeekSalt(envelope []byte) ([]byte, error)
}
