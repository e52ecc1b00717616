// Package crypto seals provider tokens at rest with AES-256-GCM.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"strings"

	"gateway/config"
	domainerrors "gateway/internal/domain/errors"
	"gateway/internal/domain/service"
	"gateway/internal/errors"
)

// KeySize is the master key length in bytes (AES-256).
const KeySize = 32

// Vault implements service.TokenVault.
type Vault struct {
	aead cipher.AEAD
}

// NewVault builds the vault from secretKey.masterKey.
func NewVault(cfg *config.Config) (service.TokenVault, error) {
	key, err := ParseMasterKey(cfg.SecretKey.MasterKey)
	if err != nil {
		return nil, err
	}

	return NewVaultFromKey(key)
}

// NewVaultFromKey builds a vault from a raw 32 byte key.
func NewVaultFromKey(key []byte) (*Vault, error) {
	if len(key) != KeySize {
		return nil, errors.Wrapf(domainerrors.ErrConfig, "master key must be %d bytes, got %d", KeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrConfig, err.Error())
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrConfig, err.Error())
	}

	return &Vault{aead: aead}, nil
}

// ParseMasterKey decodes "base64:<std>", "hex:<hex>" or bare standard base64.
// The error never includes the key material.
func ParseMasterKey(encoded string) ([]byte, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return nil, errors.Wrap(domainerrors.ErrConfig, "master key is empty")
	}

	var (
		key []byte
		err error
	)

	switch {
	case strings.HasPrefix(encoded, "hex:"):
		key, err = hex.DecodeString(strings.TrimPrefix(encoded, "hex:"))
	default:
		key, err = base64.StdEncoding.DecodeString(strings.TrimPrefix(encoded, "base64:"))
	}
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrConfig, "master key is not valid base64 or hex")
	}

	if len(key) != KeySize {
		return nil, errors.Wrapf(domainerrors.ErrConfig, "master key must decode to %d bytes, got %d", KeySize, len(key))
	}

	return key, nil
}

// Encrypt seals plaintext under a fresh 96-bit random nonce.
func (v *Vault) Encrypt(plaintext []byte) (ciphertext []byte, nonce []byte, err error) {
	nonce = make([]byte, v.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, errors.Wrap(err, "failed to generate nonce")
	}

	return v.aead.Seal(nil, nonce, plaintext, nil), nonce, nil
}

// Decrypt opens ciphertext. Tampering, a wrong key or a bad nonce all yield ErrDecryptionFailed.
func (v *Vault) Decrypt(ciphertext []byte, nonce []byte) ([]byte, error) {
	if len(nonce) != v.aead.NonceSize() {
		return nil, errors.Wrap(domainerrors.ErrDecryptionFailed, "nonce has wrong length")
	}

	plaintext, err := v.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrDecryptionFailed, "authentication tag mismatch")
	}

	return plaintext, nil
}
