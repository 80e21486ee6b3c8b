package voat

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestDecodeAccessToken(t *testing.T) {
	t.Parallel()

	issued := time.Now().Truncate(time.Second)
	expires := issued.Add(time.Hour)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "testbot",
		Issuer:    "https://api.voat.co",
		IssuedAt:  jwt.NewNumericDate(issued),
		ExpiresAt: jwt.NewNumericDate(expires),
	})
	signed, err := token.SignedString([]byte("server-side-secret"))
	require.NoError(t, err)

	claims, err := DecodeAccessToken(signed)
	require.NoError(t, err)
	require.Equal(t, "testbot", claims.Subject)
	require.Equal(t, "https://api.voat.co", claims.Issuer)
	require.Equal(t, issued.Unix(), claims.IssuedAt.Unix())
	require.Equal(t, expires.Unix(), claims.ExpiresAt.Unix())
}

func TestDecodeAccessTokenGarbage(t *testing.T) {
	t.Parallel()

	_, err := DecodeAccessToken("not-a-jwt")
	require.Error(t, err)
}
