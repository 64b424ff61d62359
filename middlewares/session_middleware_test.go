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
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/l3montree-dev/piletracker/auth"
	"github.com/l3montree-dev/piletracker/mocks"
	"github.com/l3montree-dev/piletracker/shared"
	"github.com/labstack/echo/v4"
	"github.com/ory/client-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSessionMiddleware(t *testing.T) {
	t.Run("should set the session using a verified jwt", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer a.b.c")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		verifier := mocks.NewTokenVerifier(t)
		verifier.On("VerifyToken", "a.b.c").Return(auth.NewSession("user1", "user1@example.com", []string{"read", "write"}), nil)

		mw := SessionMiddleware(nil, verifier)

		var called bool
		handler := mw(func(ctx echo.Context) error {
			called = true
			sess := shared.GetSession(ctx)

			assert.Equal(t, "user1", sess.GetUserID())
			assert.Equal(t, "user1@example.com", sess.GetEmail())
			assert.ElementsMatch(t, []string{"read", "write"}, sess.GetScopes())
			return nil
		})

		_ = handler(c)
		assert.True(t, called)
	})

	t.Run("should set no session, if the jwt is invalid", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer a.b.c")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		verifier := mocks.NewTokenVerifier(t)
		verifier.On("VerifyToken", "a.b.c").Return(nil, auth.ErrInvalidToken)

		mw := SessionMiddleware(nil, verifier)

		var called bool
		handler := mw(func(ctx echo.Context) error {
			called = true
			assert.Equal(t, auth.NoSession, shared.GetSession(ctx))
			return nil
		})

		_ = handler(c)
		assert.True(t, called)
	})

	t.Run("should resolve opaque tokens against kratos", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Session-Token", "ory_st_abc")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		adminClient := mocks.NewAdminClient(t)
		adminClient.On("GetIdentityFromSessionToken", mock.Anything, "ory_st_abc").Return(client.Identity{
			Id:     "user3",
			Traits: map[string]any{"email": "inspector@example.com"},
		}, nil)

		verifier := mocks.NewTokenVerifier(t)
		mw := SessionMiddleware(adminClient, verifier)

		var called bool
		handler := mw(func(ctx echo.Context) error {
			called = true
			sess := shared.GetSession(ctx)
			assert.Equal(t, "user3", sess.GetUserID())
			assert.Equal(t, "inspector@example.com", sess.GetEmail())
			return nil
		})

		_ = handler(c)
		assert.True(t, called)
	})

	t.Run("should set no session, if kratos rejects the token", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer ory_st_abc")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		adminClient := mocks.NewAdminClient(t)
		adminClient.On("GetIdentityFromSessionToken", mock.Anything, "ory_st_abc").Return(client.Identity{}, errors.New("401 Unauthorized"))

		mw := SessionMiddleware(adminClient, nil)

		var called bool
		handler := mw(func(ctx echo.Context) error {
			called = true
			assert.True(t, auth.IsNoSession(shared.GetSession(ctx)))
			return nil
		})

		_ = handler(c)
		assert.True(t, called)
	})

	t.Run("should set the correct userID using cookie auth", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{
			Name:  "ory_kratos_session",
			Value: "session_cookie_value",
		})

		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		mockAdminClient := mocks.NewAdminClient(t)
		mockAdminClient.On("GetIdentityFromCookie", mock.Anything, "ory_kratos_session=session_cookie_value").Return(client.Identity{
			Id: "user2",
		}, nil)

		mw := SessionMiddleware(mockAdminClient, nil)

		var called bool
		handler := mw(func(ctx echo.Context) error {
			called = true
			assert.Equal(t, "user2", shared.GetSession(ctx).GetUserID())
			return nil
		})

		_ = handler(c)
		assert.True(t, called)
	})

	t.Run("should set no session without credentials", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		mw := SessionMiddleware(nil, nil)

		var called bool
		handler := mw(func(ctx echo.Context) error {
			called = true
			assert.Equal(t, auth.NoSession, shared.GetSession(ctx))
			return nil
		})

		_ = handler(c)
		assert.True(t, called)
	})
}
