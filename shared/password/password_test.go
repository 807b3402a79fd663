package password_test

import (
	"strings"
	"testing"

	"frontdesk/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "regular password", password: "Reception#2024"},
		{name: "unicode password", password: "kamar-tidur-ñ-日本"},
		{name: "empty password", password: "", wantErr: password.ErrEmptyPassword},
		{name: "longer than bcrypt accepts", password: strings.Repeat("a", 100), wantErr: password.ErrHashingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hash)

				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, tt.password, hash)

			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			assert.Equal(t, password.DefaultCost, cost)
		})
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("Reception#2024")
	require.NoError(t, err)

	second, err := password.Hash("Reception#2024")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NoError(t, password.Verify("Reception#2024", first))
	assert.NoError(t, password.Verify("Reception#2024", second))
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("Reception#2024")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  error
	}{
		{name: "match", password: "Reception#2024", hash: hash},
		{name: "mismatch", password: "reception#2024", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty hash", password: "Reception#2024", hash: "", wantErr: password.ErrInvalidPassword},
		{name: "malformed hash", password: "Reception#2024", hash: "not-a-bcrypt-hash", wantErr: password.ErrVerifyingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGenerateTemporary(t *testing.T) {
	first, err := password.GenerateTemporary(password.TemporaryLength)
	require.NoError(t, err)
	assert.Len(t, first, password.TemporaryLength)
	assert.False(t, strings.ContainsAny(first, "0O1lI"), "look-alike characters in %s", first)

	second, err := password.GenerateTemporary(0)
	require.NoError(t, err)
	assert.Len(t, second, password.TemporaryLength)
	assert.NotEqual(t, first, second)

	hash, err := password.Hash(first)
	require.NoError(t, err)
	assert.NoError(t, password.Verify(first, hash))
}
