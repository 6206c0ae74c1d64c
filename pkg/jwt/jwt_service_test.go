package jwt

import (
	"Recipe-Hub/domain"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewJWTServiceWithSecret("test-secret", time.Hour)

	token, err := svc.GenerateTokenUser("user-1", domain.RoleUser)
	require.NoError(t, err)

	id, role, err := svc.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
	assert.Equal(t, domain.RoleUser, role)
}

func TestGetUserIDByTokenErrors(t *testing.T) {
	svc := NewJWTServiceWithSecret("test-secret", time.Hour)

	_, _, err := svc.GetUserIDByToken("")
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)

	_, _, err = svc.GetUserIDByToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	other := NewJWTServiceWithSecret("other-secret", time.Hour)
	token, err := other.GenerateTokenUser("user-1", domain.RoleUser)
	require.NoError(t, err)
	_, _, err = svc.GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestExpiredToken(t *testing.T) {
	svc := NewJWTServiceWithSecret("test-secret", time.Minute).(*jwtService)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.GenerateTokenUser("user-1", domain.RoleUser)
	require.NoError(t, err)

	_, _, err = svc.GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestRejectsNoneAlgorithm(t *testing.T) {
	svc := NewJWTServiceWithSecret("test-secret", time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwtUserClaim{UserID: "user-1"})
	raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, _, err = svc.GetUserIDByToken(raw)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
