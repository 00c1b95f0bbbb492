package crypto

const (
	// KeySize is the size of the derived AES-256 key in bytes.
	KeySize = 32
	// NonceSize is the size of the AES-GCM nonce in bytes.
	NonceSize = 12
	// TagSize is the size of the AES-GCM authentication tag in bytes.
	TagSize = 16

	// DefaultSaltSize is the length of a salt generated when the caller
	// does not supply one.
	DefaultSaltSize = 16
	// MinSaltSize and MaxSaltSize bound an explicitly supplied salt.
	MinSaltSize = 8
	MaxSaltSize = 64

	// MinIterations and MaxIterations bound the PBKDF2 iteration count.
	MinIterations = 1000
	MaxIterations = 100000

	// saltLengthFieldSize is the width of the little-endian salt length
	// prefix that opens every envelope.
	saltLengthFieldSize = 4

	// hkdfInfo domain-separates keys derived from a key agreement.
	hkdfInfo = "go-sealed-table:x25519:v1"
)
