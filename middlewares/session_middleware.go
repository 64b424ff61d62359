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

package middlewares

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/l3montree-dev/piletracker/auth"
	"github.com/l3montree-dev/piletracker/shared"
	"github.com/l3montree-dev/piletracker/transformer"
	"github.com/labstack/echo/v4"
)

func getCookie(name string, cookies []*http.Cookie) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func cookieAuth(ctx context.Context, oryAPIClient shared.AdminClient, oryKratosSessionCookie string) (shared.AuthSession, error) {
	// check if we have a session
	unescaped, err := url.QueryUnescape(oryKratosSessionCookie)
	if err != nil {
		return nil, err
	}

	identity, err := oryAPIClient.GetIdentityFromCookie(ctx, unescaped)
	if err != nil {
		return nil, err
	}

	return auth.NewSession(identity.Id, transformer.IdentityToUserDTO(identity).Email, nil), nil
}

func bearerToken(req *http.Request) string {
	authorization := req.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(authorization, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return strings.TrimSpace(req.Header.Get("X-Session-Token"))
}

func tokenAuth(ctx context.Context, oryAPIClient shared.AdminClient, verifier shared.TokenVerifier, token string) (shared.AuthSession, error) {
	if verifier != nil && auth.LooksLikeJWT(token) {
		return verifier.VerifyToken(token)
	}

	identity, err := oryAPIClient.GetIdentityFromSessionToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return auth.NewSession(identity.Id, transformer.IdentityToUserDTO(identity).Email, nil), nil
}

// SessionMiddleware never rejects a request. Requests without valid credentials get
// auth.NoSession, RequireSession turns that into a 401.
func SessionMiddleware(oryAPIClient shared.AdminClient, verifier shared.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			var session shared.AuthSession
			var err error

			if token := bearerToken(ctx.Request()); token != "" {
				session, err = tokenAuth(ctx.Request().Context(), oryAPIClient, verifier, token)
			} else if cookie := getCookie("ory_kratos_session", ctx.Cookies()); cookie != nil {
				session, err = cookieAuth(ctx.Request().Context(), oryAPIClient, cookie.String())
			} else {
				shared.SetSession(ctx, auth.NoSession)
				return next(ctx)
			}

			if err != nil {
				// the group decides if a session is required
				slog.Warn("could not authenticate request", "err", err)
				shared.SetSession(ctx, auth.NoSession)
				return next(ctx)
			}

			shared.SetSession(ctx, session)
			return next(ctx)
		}
	}
}
