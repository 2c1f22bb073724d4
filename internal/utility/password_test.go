package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_ComparePassword(t *testing.T) {
	hashed, err := HashPassword("MatKhau123")
	require.NoError(t, err)
	require.NotEqual(t, "MatKhau123", hashed)

	assert.True(t, ComparePassword(hashed, "MatKhau123"))
	assert.False(t, ComparePassword(hashed, "MatKhau124"))
	assert.False(t, ComparePassword(hashed, ""))
}

func TestComparePassword_InvalidHash(t *testing.T) {
	assert.False(t, ComparePassword("không-phải-bcrypt-hash", "MatKhau123"))
}
