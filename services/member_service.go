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

	"github.com/google/uuid"
	"github.com/l3montree-dev/piletracker/database"
	"github.com/l3montree-dev/piletracker/database/models"
	"github.com/l3montree-dev/piletracker/dtos"
	"github.com/l3montree-dev/piletracker/shared"
	"github.com/l3montree-dev/piletracker/utils"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type memberService struct {
	userProjectRepository shared.UserProjectRepository
	userService           shared.UserService
}

var _ shared.MemberService = &memberService{}

func NewMemberService(userProjectRepository shared.UserProjectRepository, userService shared.UserService) *memberService {
	return &memberService{
		userProjectRepository: userProjectRepository,
		userService:           userService,
	}
}

// assignableRole rejects unknown roles and the owner role. ownership moves only through a transfer.
func assignableRole(role shared.Role) error {
	if !role.IsValid() {
		return echo.NewHTTPError(400, "invalid role").WithInternal(shared.ErrInvalidRole)
	}
	if role == shared.RoleOwner {
		return echo.NewHTTPError(400, "the owner role can only be transferred").WithInternal(shared.ErrOwnerRoleImmutable)
	}
	return nil
}

func (s *memberService) findMembership(userID string, projectID uuid.UUID) (models.UserProject, error) {
	membership, err := s.userProjectRepository.Find(nil, userID, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return membership, echo.NewHTTPError(404, "user is not a member of the project").WithInternal(shared.ErrNotMember)
		}
		return membership, echo.NewHTTPError(500, "could not read membership").WithInternal(err)
	}
	return membership, nil
}

func (s *memberService) Assign(ctx context.Context, projectID uuid.UUID, userID string, role shared.Role) (models.UserProject, error) {
	if err := assignableRole(role); err != nil {
		return models.UserProject{}, err
	}

	if _, err := s.userProjectRepository.Find(nil, userID, projectID); err == nil {
		return models.UserProject{}, echo.NewHTTPError(409, "user is already a member of the project").WithInternal(shared.ErrAlreadyMember)
	}

	membership := models.UserProject{
		UserID:    userID,
		ProjectID: projectID,
		Role:      string(role),
	}
	if err := s.userProjectRepository.Create(nil, &membership); err != nil {
		if database.IsDuplicateKeyError(err) {
			return models.UserProject{}, echo.NewHTTPError(409, "user is already a member of the project").WithInternal(errors.Join(shared.ErrAlreadyMember, err))
		}
		if database.IsForeignKeyError(err) {
			return models.UserProject{}, echo.NewHTTPError(404, "project not found").WithInternal(err)
		}
		return models.UserProject{}, echo.NewHTTPError(500, "could not assign user").WithInternal(err)
	}

	slog.Info("user assigned to project", "userID", userID, "projectID", projectID, "role", role)
	return membership, nil
}

func (s *memberService) UpdateRole(ctx context.Context, projectID uuid.UUID, userID string, role shared.Role) error {
	if err := assignableRole(role); err != nil {
		return err
	}

	membership, err := s.findMembership(userID, projectID)
	if err != nil {
		return err
	}
	if shared.Role(membership.Role) == shared.RoleOwner {
		return echo.NewHTTPError(400, "the owner role can only be transferred").WithInternal(shared.ErrOwnerRoleImmutable)
	}
	if membership.Role == string(role) {
		return nil
	}

	membership.Role = string(role)
	if err := s.userProjectRepository.Save(nil, &membership); err != nil {
		return echo.NewHTTPError(500, "could not update role").WithInternal(err)
	}
	return nil
}

func (s *memberService) Remove(ctx context.Context, projectID uuid.UUID, userID string) error {
	membership, err := s.findMembership(userID, projectID)
	if err != nil {
		return err
	}
	if shared.Role(membership.Role) == shared.RoleOwner {
		return echo.NewHTTPError(400, "the owner cannot be removed from the project").WithInternal(shared.ErrOwnerRoleImmutable)
	}

	if err := s.userProjectRepository.Remove(nil, userID, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "user is not a member of the project").WithInternal(shared.ErrNotMember)
		}
		return echo.NewHTTPError(500, "could not remove user").WithInternal(err)
	}

	slog.Info("user removed from project", "userID", userID, "projectID", projectID)
	return nil
}

// ListMembers enriches the memberships with name and email. Members are still listed
// when the identity provider is not reachable.
func (s *memberService) ListMembers(ctx context.Context, projectID uuid.UUID) ([]dtos.MemberDTO, error) {
	memberships, err := s.userProjectRepository.ListByProject(projectID)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not list members").WithInternal(err)
	}

	users, err := s.userService.GetUsers(ctx, utils.Map(memberships, func(m models.UserProject) string {
		return m.UserID
	}))
	if err != nil {
		slog.Warn("could not resolve member identities", "err", err, "projectID", projectID)
		users = map[string]dtos.UserDTO{}
	}

	return utils.Map(memberships, func(m models.UserProject) dtos.MemberDTO {
		user, ok := users[m.UserID]
		if !ok {
			user = dtos.UserDTO{ID: m.UserID}
		}
		return dtos.MemberDTO{
			UserDTO: user,
			Role:    m.Role,
		}
	}), nil
}

func (s *memberService) GetRole(userID string, projectID uuid.UUID) (shared.Role, error) {
	membership, err := s.userProjectRepository.Find(nil, userID, projectID)
	if err != nil {
		return "", err
	}
	return shared.Role(membership.Role), nil
}
