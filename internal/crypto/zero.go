package crypto

import "runtime"

// zeroBytes overwrites a byte slice with zeros.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// ZeroBytes overwrites b with zeros. It is exported for callers that hand
// secret buffers (passwords, decrypted documents) to this package.
func ZeroBytes(b []byte) {
	zeroBytes(b)
}
