package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateVerifyRoundtrip(t *testing.T) {
	manager := NewManager("test-secret", 3600)

	tokenStr, err := manager.Generate("user-1", "owner", true)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	claims, err := manager.Verify(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "owner", claims.Role)
	assert.True(t, claims.Verified)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewManager("right-secret", 3600)
	verifier := NewManager("wrong-secret", 3600)

	tokenStr, err := issuer.Generate("user-1", "renter", false)
	require.NoError(t, err)

	_, err = verifier.Verify(tokenStr)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	manager := NewManager("test-secret", -60)

	tokenStr, err := manager.Generate("user-1", "renter", false)
	require.NoError(t, err)

	_, err = manager.Verify(tokenStr)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	manager := NewManager("test-secret", 3600)

	_, err := manager.Verify("not.a.token")
	assert.Error(t, err)
}
