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

package services

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/l3montree-dev/piletracker/dtos"
	"github.com/l3montree-dev/piletracker/mocks"
	"github.com/l3montree-dev/piletracker/shared"
	"github.com/ory/client-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestUserServiceCreateUser(t *testing.T) {
	t.Run("should return a conflict if the email is taken", func(t *testing.T) {
		adminClient := mocks.NewAdminClient(t)
		adminClient.On("CreateIdentity", mock.Anything, "jane@example.com", "Jane", "").Return(client.Identity{}, fmt.Errorf("kratos: %w", shared.ErrUserAlreadyExists))

		s := NewUserService(adminClient, mocks.NewSuperAdminRepository(t))
		_, err := s.CreateUser(context.Background(), dtos.CreateUserRequest{Email: " Jane@Example.com", Name: "Jane"})
		assert.Equal(t, http.StatusConflict, httpStatus(t, err))
	})

	t.Run("should return the created user", func(t *testing.T) {
		adminClient := mocks.NewAdminClient(t)
		adminClient.On("CreateIdentity", mock.Anything, "jane@example.com", "Jane", "secret123").Return(client.Identity{
			Id:     "user-1",
			Traits: map[string]any{"email": "jane@example.com", "name": "Jane"},
		}, nil)

		s := NewUserService(adminClient, mocks.NewSuperAdminRepository(t))
		user, err := s.CreateUser(context.Background(), dtos.CreateUserRequest{Email: "jane@example.com", Name: "Jane", Password: "secret123"})
		assert.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
		assert.Equal(t, "jane@example.com", user.Email)
	})
}

func TestUserServiceGetUsers(t *testing.T) {
	t.Run("should request the identities in chunks", func(t *testing.T) {
		ids := make([]string, 150)
		for i := range ids {
			ids[i] = fmt.Sprintf("user-%d", i)
		}

		adminClient := mocks.NewAdminClient(t)
		adminClient.On("ListUser", mock.Anything, mock.MatchedBy(func(r shared.ListUserRequest) bool {
			return len(r.IDs) == 100
		})).Return([]client.Identity{{Id: "user-0"}}, nil).Once()
		adminClient.On("ListUser", mock.Anything, mock.MatchedBy(func(r shared.ListUserRequest) bool {
			return len(r.IDs) == 50 && r.PageSize == 50
		})).Return([]client.Identity{{Id: "user-149"}}, nil).Once()

		s := NewUserService(adminClient, mocks.NewSuperAdminRepository(t))
		users, err := s.GetUsers(context.Background(), ids)
		assert.NoError(t, err)
		assert.Len(t, users, 2)
		assert.Contains(t, users, "user-149")
	})

	t.Run("should not call the identity provider without ids", func(t *testing.T) {
		s := NewUserService(mocks.NewAdminClient(t), mocks.NewSuperAdminRepository(t))
		users, err := s.GetUsers(context.Background(), nil)
		assert.NoError(t, err)
		assert.Empty(t, users)
	})
}

func TestUserServiceRevokeSuperAdmin(t *testing.T) {
	t.Run("should not allow revoking yourself", func(t *testing.T) {
		s := NewUserService(mocks.NewAdminClient(t), mocks.NewSuperAdminRepository(t))
		err := s.RevokeSuperAdmin(context.Background(), "admin", "admin")
		assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
		assert.ErrorIs(t, err, shared.ErrCannotRevokeSelf)
	})

	t.Run("should return not found if the user is no super admin", func(t *testing.T) {
		repository := mocks.NewSuperAdminRepository(t)
		repository.On("Revoke", mock.Anything, "user-1").Return(gorm.ErrRecordNotFound)

		s := NewUserService(mocks.NewAdminClient(t), repository)
		err := s.RevokeSuperAdmin(context.Background(), "user-1", "admin")
		assert.Equal(t, http.StatusNotFound, httpStatus(t, err))
	})

	t.Run("should revoke another super admin", func(t *testing.T) {
		repository := mocks.NewSuperAdminRepository(t)
		repository.On("Revoke", mock.Anything, "user-1").Return(nil)

		s := NewUserService(mocks.NewAdminClient(t), repository)
		assert.NoError(t, s.RevokeSuperAdmin(context.Background(), "user-1", "admin"))
	})
}
