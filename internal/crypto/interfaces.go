package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/token_cipher_mock.go -package=mock

// TokenCipher encrypts and decrypts OAuth credential material at rest.
// It knows nothing about users, storage, or the network; its only job is to
// turn a plaintext token into an opaque blob and back.
//
// Ciphertexts are self-contained: everything needed for decryption except
// the key (i.e. the nonce) is embedded in the blob itself.
type TokenCipher interface {
	// Encrypt seals plaintext and returns a base64-encoded blob.
	Encrypt(plaintext string) (string, error)

	// Decrypt opens a blob produced by Encrypt and returns the plaintext.
	// Fails if the blob is malformed, truncated, or sealed under a
	// different key.
	Decrypt(ciphertext string) (string, error)
}
