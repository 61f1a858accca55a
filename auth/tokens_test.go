package auth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Terry-Diana/china-shop-sub000/models"
)

func TestInitSecretIsUsedForSigning(t *testing.T) {
	// env unset: only the configured key may sign or verify
	t.Setenv("JWT_SECRET", "")
	Init("configured-secret")
	t.Cleanup(func() { Init("") })

	token, err := IssueUserToken(models.User{ID: 7, Email: "jane@example.com"})
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, uint(7), claims.UserID)
	require.Equal(t, "user", claims.Role)

	// a token minted under one key must not verify under another
	Init("rotated-secret")
	_, err = ParseToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestEnvSecretFallback(t *testing.T) {
	Init("")
	t.Setenv("JWT_SECRET", "env-secret")

	token, err := IssueAdminToken(models.Admin{ID: 3, Email: "ops@example.com", Role: models.RoleSuperAdmin})
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, uint(3), claims.UserID)
	require.Equal(t, string(models.RoleSuperAdmin), claims.Role)
}
