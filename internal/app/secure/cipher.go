package secure

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Unavailable replaces secrets that cannot be decrypted.
const Unavailable = "[encrypted]"

const keySize = 32

var (
	ErrEmptyKey        = errors.New("encryption key is empty")
	ErrMalformedSecret = errors.New("malformed secret envelope")
	ErrBadPadding      = errors.New("invalid padding")
)

// Cipher encrypts short secrets with AES-256-CBC into "ivHex:cipherHex"
// envelopes.
type Cipher struct {
	block cipher.Block
}

// NewCipher pads the key with spaces or truncates it to 32 bytes.
func NewCipher(key string) (*Cipher, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	raw := []byte(key)
	if len(raw) < keySize {
		raw = append(raw, bytes.Repeat([]byte(" "), keySize-len(raw))...)
	}
	block, err := aes.NewCipher(raw[:keySize])
	if err != nil {
		return nil, fmt.Errorf("init aes: %w", err)
	}
	return &Cipher{block: block}, nil
}

func (c *Cipher) Encrypt(plaintext string) (string, error) {
	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("read iv: %w", err)
	}
	padded := pad([]byte(plaintext))
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(c.block, iv).CryptBlocks(out, padded)
	return hex.EncodeToString(iv) + ":" + hex.EncodeToString(out), nil
}

// Open decrypts an envelope produced by Encrypt.
func (c *Cipher) Open(envelope string) (string, error) {
	ivHex, dataHex, ok := strings.Cut(envelope, ":")
	if !ok {
		return "", ErrMalformedSecret
	}
	iv, err := hex.DecodeString(ivHex)
	if err != nil || len(iv) != aes.BlockSize {
		return "", ErrMalformedSecret
	}
	data, err := hex.DecodeString(dataHex)
	if err != nil || len(data) == 0 || len(data)%aes.BlockSize != 0 {
		return "", ErrMalformedSecret
	}
	out := make([]byte, len(data))
	cipher.NewCBCDecrypter(c.block, iv).CryptBlocks(out, data)
	plain, err := unpad(out)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

// Decrypt is Open that never fails: unreadable envelopes come back as
// Unavailable.
func (c *Cipher) Decrypt(envelope string) string {
	plain, err := c.Open(envelope)
	if err != nil {
		return Unavailable
	}
	return plain
}

func pad(data []byte) []byte {
	n := aes.BlockSize - len(data)%aes.BlockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(data []byte) ([]byte, error) {
	n := int(data[len(data)-1])
	if n == 0 || n > aes.BlockSize || n > len(data) {
		return nil, ErrBadPadding
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrBadPadding
		}
	}
	return data[:len(data)-n], nil
}
