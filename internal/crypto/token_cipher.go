// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// ErrShortEncryptionSecret is returned by [NewTokenCipher] when the
// configured secret is shorter than 32 bytes. A short secret is a fatal
// configuration error: the process must not start with weak key material.
var ErrShortEncryptionSecret = errors.New("encryption secret must be at least 32 bytes long")

// ErrMalformedCiphertext is returned by Decrypt when a blob is not valid
// base64 or is shorter than the embedded nonce.
var ErrMalformedCiphertext = errors.New("malformed ciphertext")

// keyInfo domain-separates the derived key from any other use of the same
// secret.
const keyInfo = "go-mail-sync/token-cipher/v1"

// tokenCipher is the private implementation of [TokenCipher]. It seals
// tokens with AES-256-GCM under a key derived from the configured secret
// via HKDF-SHA256.
type tokenCipher struct {
	aead cipher.AEAD
}

// NewTokenCipher derives a 256-bit key from secret with HKDF-SHA256 and
// returns a [TokenCipher] sealing with AES-256-GCM.
//
// Returns [ErrShortEncryptionSecret] if secret is shorter than 32 bytes.
func NewTokenCipher(secret string) (TokenCipher, error) {
	if len(secret) < 32 {
		return nil, ErrShortEncryptionSecret
	}

	key := make([]byte, 32)
	kdf := hkdf.New(sha256.New, []byte(secret), nil, []byte(keyInfo))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("deriving cipher key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating AES cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}

	return &tokenCipher{aead: aead}, nil
}

// Encrypt implements [TokenCipher]. A random 12-byte nonce is prepended to
// the ciphertext so that Decrypt can locate it: blob = nonce ‖ ciphertext.
// The whole blob is base64-encoded for storage in a text column.
func (c *tokenCipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt implements [TokenCipher]. It splits the nonce off the blob
// produced by Encrypt and opens the remainder.
func (c *tokenCipher) Decrypt(ciphertext string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedCiphertext, err)
	}

	nonceSize := c.aead.NonceSize()
	if len(blob) < nonceSize {
		return "", ErrMalformedCiphertext
	}

	nonce, sealed := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("opening ciphertext: %w", err)
	}

	return string(plaintext), nil
}
