// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"encoding/binary"
	"strings"
)

// Envelope is the parsed form of the binary envelope layout
//
//	u32 saltLength (little-endian) | salt | nonce (12) | ciphertext | tag (16)
//
// Slices returned by [ParseEnvelope] alias the input buffer.
type Envelope struct {
	Salt       []byte
	Nonce      []byte
	Ciphertext []byte
	Tag        []byte
}

// MarshalBinary lays the envelope out in wire order.
func (e Envelope) MarshalBinary() ([]byte, error) {
	if err := validateSalt(e.Salt); err != nil {
		return nil, err
	}
	if len(e.Nonce) != NonceSize {
		return nil, validationError(ErrMalformedEnvelope, "nonce size %d, want %d", len(e.Nonce), NonceSize)
	}
	if len(e.Tag) != TagSize {
		return nil, validationError(ErrMalformedEnvelope, "tag size %d, want %d", len(e.Tag), TagSize)
	}

	out := make([]byte, saltLengthFieldSize, saltLengthFieldSize+len(e.Salt)+NonceSize+len(e.Ciphertext)+TagSize)
	binary.LittleEndian.PutUint32(out, uint32(len(e.Salt)))
	out = append(out, e.Salt...)
	out = append(out, e.Nonce...)
	out = append(out, e.Ciphertext...)
	out = append(out, e.Tag...)
	return out, nil
}

// sealed returns ciphertext ‖ tag, the input expected by cipher.AEAD.Open.
func (e Envelope) sealed() []byte {
	out := make([]byte, 0, len(e.Ciphertext)+TagSize)
	out = append(out, e.Ciphertext...)
	return append(out, e.Tag...)
}

// ParseEnvelope splits raw envelope bytes into their parts. It fails with
// [ErrValidation] when the buffer is too short or the salt length prefix is
// out of range. The ciphertext may be empty.
func ParseEnvelope(data []byte) (Envelope, error) {
	if len(data) < saltLengthFieldSize {
		return Envelope{}, validationError(ErrMalformedEnvelope, "envelope is %d bytes, shorter than the salt length prefix", len(data))
	}

	saltLen := binary.LittleEndian.Uint32(data[:saltLengthFieldSize])
	if saltLen < MinSaltSize || saltLen > MaxSaltSize {
		return Envelope{}, validationError(ErrInvalidSaltLength, "envelope declares %d, want %d..%d", saltLen, MinSaltSize, MaxSaltSize)
	}

	rest := data[saltLengthFieldSize:]
	need := int(saltLen) + NonceSize + TagSize
	if len(rest) < need {
		return Envelope{}, validationError(ErrMalformedEnvelope, "envelope body is %d bytes, need at least %d", len(rest), need)
	}

	salt := rest[:saltLen]
	nonce := rest[saltLen : int(saltLen)+NonceSize]
	body := rest[int(saltLen)+NonceSize:]

	return Envelope{
		Salt:       salt,
		Nonce:      nonce,
		Ciphertext: body[:len(body)-TagSize],
		Tag:        body[len(body)-TagSize:],
	}, nil
}

// EncodeText wraps envelope bytes in standard padded base64.
func EncodeText(envelope []byte) string {
	return base64.StdEncoding.EncodeToString(envelope)
}

// DecodeText reverses [EncodeText]. Surrounding whitespace is ignored.
func DecodeText(text string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return nil, validationError(ErrMalformedEnvelope, "decode base64: %v", err)
	}
	return data, nil
}
