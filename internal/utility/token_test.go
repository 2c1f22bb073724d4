package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vid_tube/internal/common"
)

const testSecret = "vid-tube-test-secret"

func TestCreateToken_ParseToken_RoundTrip(t *testing.T) {
	userID := "66d1f2a3b4c5d6e7f8a9b0c1"
	token, err := CreateToken(testSecret, userID, "chitoge", 15)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "chitoge", claims.Username)
	assert.Equal(t, userID, claims.Subject)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := CreateToken(testSecret, "66d1f2a3b4c5d6e7f8a9b0c1", "chitoge", 15)
	require.NoError(t, err)

	_, err = ParseToken("secret-khac", token)
	assert.Equal(t, common.ErrTokenInvalid, err)
}

func TestParseToken_Expired(t *testing.T) {
	// expiryMinutes âm tạo token đã hết hạn
	token, err := CreateToken(testSecret, "66d1f2a3b4c5d6e7f8a9b0c1", "chitoge", -5)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.Equal(t, common.ErrTokenExpired, err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken(testSecret, "không-phải-jwt")
	assert.Equal(t, common.ErrTokenInvalid, err)
}
