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
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/l3montree-dev/piletracker/shared"
)

var ErrInvalidToken = errors.New("invalid token")

// jwtVerifier validates HS256 signed tokens. The subject is the user id.
type jwtVerifier struct {
	secret []byte
	issuer string
}

var _ shared.TokenVerifier = &jwtVerifier{}

// NewJWTVerifier returns nil if no secret is configured.
func NewJWTVerifier(secret string, issuer string) *jwtVerifier {
	if secret == "" {
		return nil
	}
	return &jwtVerifier{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// LooksLikeJWT reports whether the token has the three dot separated parts of a JWS.
// Kratos session tokens never contain a dot.
func LooksLikeJWT(token string) bool {
	return strings.Count(token, ".") == 2
}

func (v *jwtVerifier) VerifyToken(token string) (shared.AuthSession, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	email, _ := claims["email"].(string)
	var scopes []string
	if scope, ok := claims["scope"].(string); ok {
		scopes = strings.Fields(scope)
	}

	return NewSession(subject, email, scopes), nil
}
