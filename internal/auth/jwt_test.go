package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishnukothappllii/Blogging-Platform/internal/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := auth.GenerateToken("secret", 42, "alice", auth.TokenDuration)
	require.NoError(t, err)

	claims, err := auth.ParseToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := auth.GenerateToken("secret", 42, "alice", auth.TokenDuration)
	require.NoError(t, err)

	_, err = auth.ParseToken("other", token)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := auth.GenerateToken("secret", 42, "alice", -time.Minute)
	require.NoError(t, err)

	_, err = auth.ParseToken("secret", token)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := auth.ParseToken("secret", "not-a-token")
	assert.Error(t, err)
}
