package auth

import (
	"encoding/base64"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/argon2"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, CheckPasswordHash("correct horse battery stable", hash))
}

func TestHashPassword_Format(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=19456,t=2,p=1$"))
	assert.NotContains(t, hash, "hunter2hunter2")
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	h1, err := HashPassword("same password")
	require.NoError(t, err)
	h2, err := HashPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, CheckPasswordHash("same password", h1))
	assert.True(t, CheckPasswordHash("same password", h2))
}

func TestCheckPasswordHash_MalformedInput(t *testing.T) {
	cases := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"garbage", "not-a-hash"},
		{"wrong algorithm", "$argon2i$v=19$m=19456,t=2,p=1$c2FsdA$a2V5"},
		{"wrong version", "$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$a2V5"},
		{"missing sections", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA"},
		{"bad salt base64", "$argon2id$v=19$m=19456,t=2,p=1$!!!$a2V5"},
		{"bad key base64", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$!!!"},
		{"bcrypt hash", "$2a$10$N9qo8uLOickgx2ZMRZoMye"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, CheckPasswordHash("whatever", tc.encoded))
		})
	}
}

func TestCheckPasswordHash_StoredParams(t *testing.T) {
	// A hash produced under different (lower) cost parameters must still
	// verify, because verification re-derives with the stored params.
	salt := []byte("0123456789abcdef")
	key := argon2.IDKey([]byte("migration test"), salt, 1, 8*1024, 1, 32)
	legacy := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, 8*1024, 1, 1,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	assert.True(t, CheckPasswordHash("migration test", legacy))
	assert.False(t, CheckPasswordHash("wrong password", legacy))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("short7!"))
	assert.NoError(t, ValidatePassword("eightch8"))
	assert.NoError(t, ValidatePassword("a much longer passphrase"))
}
