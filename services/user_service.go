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
	"errors"
	"log/slog"
	"strings"

	"github.com/l3montree-dev/piletracker/database/models"
	"github.com/l3montree-dev/piletracker/dtos"
	"github.com/l3montree-dev/piletracker/shared"
	"github.com/l3montree-dev/piletracker/transformer"
	"github.com/l3montree-dev/piletracker/utils"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// kratos limits the amount of ids per list request
const identityChunkSize = 100

type userService struct {
	adminClient          shared.AdminClient
	superAdminRepository shared.SuperAdminRepository
}

var _ shared.UserService = &userService{}

func NewUserService(adminClient shared.AdminClient, superAdminRepository shared.SuperAdminRepository) *userService {
	return &userService{
		adminClient:          adminClient,
		superAdminRepository: superAdminRepository,
	}
}

func (s *userService) CreateUser(ctx context.Context, req dtos.CreateUserRequest) (dtos.UserDTO, error) {
	identity, err := s.adminClient.CreateIdentity(ctx, strings.ToLower(strings.TrimSpace(req.Email)), req.Name, req.Password)
	if err != nil {
		if errors.Is(err, shared.ErrUserAlreadyExists) {
			return dtos.UserDTO{}, echo.NewHTTPError(409, "a user with this email already exists").WithInternal(err)
		}
		return dtos.UserDTO{}, echo.NewHTTPError(502, "could not create user").WithInternal(err)
	}

	slog.Info("user created", "userID", identity.Id)
	return transformer.IdentityToUserDTO(identity), nil
}

func (s *userService) ListUsers(ctx context.Context, pageSize int64, pageToken string) ([]dtos.UserDTO, error) {
	identities, err := s.adminClient.ListUser(ctx, shared.ListUserRequest{
		PageSize:  pageSize,
		PageToken: pageToken,
	})
	if err != nil {
		return nil, echo.NewHTTPError(502, "could not list users").WithInternal(err)
	}
	return utils.Map(identities, transformer.IdentityToUserDTO), nil
}

// GetUsers returns the users by id. Unknown ids are missing in the result.
func (s *userService) GetUsers(ctx context.Context, ids []string) (map[string]dtos.UserDTO, error) {
	res := make(map[string]dtos.UserDTO, len(ids))
	for _, chunk := range utils.Chunk(ids, identityChunkSize) {
		identities, err := s.adminClient.ListUser(ctx, shared.ListUserRequest{
			IDs:      chunk,
			PageSize: int64(len(chunk)),
		})
		if err != nil {
			return res, err
		}
		for _, identity := range identities {
			res[identity.Id] = transformer.IdentityToUserDTO(identity)
		}
	}
	return res, nil
}

func (s *userService) IsSuperAdmin(userID string) (bool, error) {
	return s.superAdminRepository.IsSuperAdmin(userID)
}

func (s *userService) GrantSuperAdmin(ctx context.Context, userID string, grantedBy string) error {
	if err := s.superAdminRepository.Grant(nil, userID, grantedBy); err != nil {
		return echo.NewHTTPError(500, "could not grant super admin").WithInternal(err)
	}
	slog.Info("super admin granted", "userID", userID, "grantedBy", grantedBy)
	return nil
}

func (s *userService) RevokeSuperAdmin(ctx context.Context, userID string, revokedBy string) error {
	if userID == revokedBy {
		return echo.NewHTTPError(400, "you cannot revoke your own super admin role").WithInternal(shared.ErrCannotRevokeSelf)
	}

	if err := s.superAdminRepository.Revoke(nil, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "user is not a super admin").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not revoke super admin").WithInternal(err)
	}
	slog.Info("super admin revoked", "userID", userID, "revokedBy", revokedBy)
	return nil
}

func (s *userService) ListSuperAdmins() ([]models.SuperAdmin, error) {
	admins, err := s.superAdminRepository.List()
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not list super admins").WithInternal(err)
	}
	return admins, nil
}
