// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestJWTVerifier(t *testing.T) {
	secret := "super-secret"
	verifier := NewJWTVerifier(secret, "")

	t.Run("should return the subject and email of a valid token", func(t *testing.T) {
		token := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{
			"sub":   "user-1",
			"email": "inspector@example.com",
			"scope": "piles:write piles:read",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})

		session, err := verifier.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", session.GetUserID())
		assert.Equal(t, "inspector@example.com", session.GetEmail())
		assert.Equal(t, []string{"piles:write", "piles:read"}, session.GetScopes())
	})

	t.Run("should reject an expired token", func(t *testing.T) {
		token := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{
			"sub": "user-1",
			"exp": time.Now().Add(-time.Minute).Unix(),
		})

		_, err := verifier.VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("should reject a token without expiry", func(t *testing.T) {
		token := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{
			"sub": "user-1",
		})

		_, err := verifier.VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("should reject a token signed with another secret", func(t *testing.T) {
		token := sign(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{
			"sub": "user-1",
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		_, err := verifier.VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("should reject other signing methods", func(t *testing.T) {
		token := sign(t, jwt.SigningMethodHS512, []byte(secret), jwt.MapClaims{
			"sub": "user-1",
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		_, err := verifier.VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("should reject a token without subject", func(t *testing.T) {
		token := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		_, err := verifier.VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("should check the issuer if configured", func(t *testing.T) {
		withIssuer := NewJWTVerifier(secret, "https://auth.example.com")
		token := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{
			"sub": "user-1",
			"iss": "https://evil.example.com",
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		_, err := withIssuer.VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestNewJWTVerifier(t *testing.T) {
	assert.Nil(t, NewJWTVerifier("", ""))
}

func TestLooksLikeJWT(t *testing.T) {
	assert.True(t, LooksLikeJWT("aaa.bbb.ccc"))
	assert.False(t, LooksLikeJWT("ory_st_abcdef"))
}

func TestIsNoSession(t *testing.T) {
	assert.True(t, IsNoSession(NoSession))
	assert.True(t, IsNoSession(nil))
	assert.False(t, IsNoSession(NewSession("user-1", "", nil)))
}
