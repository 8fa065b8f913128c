package secure

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	first, err := HashPassword("hunter22")
	require.NoError(t, err)
	second, err := HashPassword("hunter22")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "salt must differ between calls")
	salt, key, ok := strings.Cut(first, ":")
	require.True(t, ok)
	assert.Len(t, salt, saltLength*2)
	assert.Len(t, key, keyLength*2)
}

func TestVerifyPassword(t *testing.T) {
	stored, err := HashPassword("correct horse")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		stored   string
		want     bool
	}{
		{name: "Matching Password", password: "correct horse", stored: stored, want: true},
		{name: "Wrong Password", password: "battery staple", stored: stored, want: false},
		{name: "Empty Stored Value", password: "correct horse", stored: "", want: false},
		{name: "Missing Separator", password: "correct horse", stored: "abcdef", want: false},
		{name: "Non Hex Key", password: "correct horse", stored: "abcd:zzzz", want: false},
		{name: "Short Key", password: "correct horse", stored: "abcd:abcd", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerifyPassword(tt.password, tt.stored))
		})
	}
}

func TestCipher_RoundTrip(t *testing.T) {
	c, err := NewCipher("short-key")
	require.NoError(t, err)

	for _, plain := range []string{"", "p", "exactly16bytes!!", "a much longer in-game password with unicode ✓"} {
		first, err := c.Encrypt(plain)
		require.NoError(t, err)
		second, err := c.Encrypt(plain)
		require.NoError(t, err)

		assert.NotEqual(t, first, second, "iv must differ between calls")
		assert.Equal(t, plain, c.Decrypt(first))
		assert.Equal(t, plain, c.Decrypt(second))
	}
}

func TestCipher_Decrypt(t *testing.T) {
	c, err := NewCipher("zaiboost-test-key")
	require.NoError(t, err)
	other, err := NewCipher("another-key-entirely")
	require.NoError(t, err)

	envelope, err := c.Encrypt("genshin-pass")
	require.NoError(t, err)

	tests := []struct {
		name     string
		envelope string
	}{
		{name: "No Separator", envelope: "deadbeef"},
		{name: "Bad IV", envelope: "zz:00112233445566778899aabbccddeeff"},
		{name: "Short IV", envelope: "0011:00112233445566778899aabbccddeeff"},
		{name: "Partial Block", envelope: "00112233445566778899aabbccddeeff:0011"},
		{name: "Empty Payload", envelope: "00112233445566778899aabbccddeeff:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Open(tt.envelope)
			assert.Error(t, err)
			assert.Equal(t, Unavailable, c.Decrypt(tt.envelope))
		})
	}

	t.Run("Wrong Key", func(t *testing.T) {
		// a wrong key almost always breaks the padding; if it happens to
		// unpad cleanly the plaintext still differs
		assert.NotEqual(t, "genshin-pass", other.Decrypt(envelope))
	})
}

func TestNewCipher_EmptyKey(t *testing.T) {
	_, err := NewCipher("")
	assert.ErrorIs(t, err, ErrEmptyKey)
}
