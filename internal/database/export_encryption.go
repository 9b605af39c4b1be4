package database

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"
)

const (
	kdfScrypt = "scrypt"
	scryptN   = 1 << 15
	scryptR   = 8
	scryptP   = 1
	keyLen    = 32
	saltLen   = 16
)

type encryptedExport struct {
	Encrypted bool   `json:"encrypted"`
	KDF       string `json:"kdf"`
	Salt      string `json:"salt"`
	Nonce     string `json:"nonce"`
	Data      string `json:"data"`
}

func deriveKey(passphrase string, salt []byte) ([]byte, error) {
	return scrypt.Key([]byte(passphrase), salt, scryptN, scryptR, scryptP, keyLen)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func encryptData(payload []byte, passphrase string) ([]byte, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	key, err := deriveKey(passphrase, salt)
	if err != nil {
		return nil, err
	}
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	ciphertext := gcm.Seal(nil, nonce, payload, nil)
	wrapped := encryptedExport{
		Encrypted: true,
		KDF:       kdfScrypt,
		Salt:      base64.StdEncoding.EncodeToString(salt),
		Nonce:     base64.StdEncoding.EncodeToString(nonce),
		Data:      base64.StdEncoding.EncodeToString(ciphertext),
	}
	return json.MarshalIndent(wrapped, "", "  ")
}

// isEncrypted reports whether payload is an encryptData envelope.
func isEncrypted(payload []byte) (encryptedExport, bool) {
	var wrapped encryptedExport
	if err := json.Unmarshal(payload, &wrapped); err != nil {
		return wrapped, false
	}
	return wrapped, wrapped.Encrypted
}

func decryptData(wrapped encryptedExport, passphrase string) ([]byte, error) {
	if wrapped.KDF != kdfScrypt {
		return nil, fmt.Errorf("%w: unsupported kdf %q", ErrInvalidBackup, wrapped.KDF)
	}
	salt, err := base64.StdEncoding.DecodeString(wrapped.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: salt: %v", ErrInvalidBackup, err)
	}
	nonce, err := base64.StdEncoding.DecodeString(wrapped.Nonce)
	if err != nil {
		return nil, fmt.Errorf("%w: nonce: %v", ErrInvalidBackup, err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(wrapped.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: data: %v", ErrInvalidBackup, err)
	}
	key, err := deriveKey(passphrase, salt)
	if err != nil {
		return nil, err
	}
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, fmt.Errorf("%w: nonce size %d", ErrInvalidBackup, len(nonce))
	}
	plain, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return plain, nil
}
