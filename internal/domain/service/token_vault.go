// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// TokenVault encrypts provider tokens before they are persisted.
// The key never leaves the implementation.
type TokenVault interface {
	// Encrypt seals plaintext under a fresh random nonce.
	Encrypt(plaintext []byte) (ciphertext []byte, nonce []byte, err error)

	// Decrypt opens ciphertext. Any authentication failure yields errors.ErrDecryptionFailed.
	Decrypt(ciphertext []byte, nonce []byte) ([]byte, error)
}
