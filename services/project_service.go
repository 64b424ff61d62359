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
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/l3montree-dev/piletracker/database"
	"github.com/l3montree-dev/piletracker/database/models"
	"github.com/l3montree-dev/piletracker/dtos"
	"github.com/l3montree-dev/piletracker/shared"
	"github.com/l3montree-dev/piletracker/transformer"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// gives up after this many taken slugs. the unique index still protects against races.
const maxSlugAttempts = 100

type projectService struct {
	projectRepository     shared.ProjectRepository
	userProjectRepository shared.UserProjectRepository
	pileService           shared.PileService
	broker                shared.PubSubBroker
}

var _ shared.ProjectService = &projectService{}

func NewProjectService(projectRepository shared.ProjectRepository, userProjectRepository shared.UserProjectRepository, pileService shared.PileService, broker shared.PubSubBroker) *projectService {
	return &projectService{
		projectRepository:     projectRepository,
		userProjectRepository: userProjectRepository,
		pileService:           pileService,
		broker:                broker,
	}
}

func (s *projectService) uniqueSlug(tx shared.DB, name string) (string, error) {
	base := slug.Make(name)
	if base == "" {
		base = "project"
	}

	candidate := base
	for i := 1; i <= maxSlugAttempts; i++ {
		exists, err := s.projectRepository.SlugExists(tx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return "", fmt.Errorf("could not find a free slug for %s", base)
}

// Create stores the project and makes ownerID its owner.
func (s *projectService) Create(ctx context.Context, project *models.Project, ownerID string) error {
	project.OwnerID = ownerID

	err := s.projectRepository.Transaction(func(tx shared.DB) error {
		projectSlug, err := s.uniqueSlug(tx, project.Name)
		if err != nil {
			return err
		}
		project.Slug = projectSlug

		if err := s.projectRepository.Create(tx, project); err != nil {
			return err
		}

		return s.userProjectRepository.Create(tx, &models.UserProject{
			UserID:    ownerID,
			ProjectID: project.ID,
			Role:      string(shared.RoleOwner),
		})
	})
	if err != nil {
		if database.IsDuplicateKeyError(err) {
			return echo.NewHTTPError(409, "project with this slug already exists").WithInternal(err)
		}
		slog.Error("could not create project", "err", err, "projectName", project.Name)
		return echo.NewHTTPError(500, "could not create project").WithInternal(err)
	}

	slog.Info("project created", "projectSlug", project.Slug, "projectID", project.ID, "ownerID", ownerID)
	return nil
}

// Update applies the patch. A changed tolerance derives the status of every pile again inside the same transaction.
func (s *projectService) Update(ctx context.Context, userID string, project *models.Project, req dtos.ProjectPatchRequest) error {
	oldTolerance := project.Tolerance()
	if !transformer.ApplyProjectPatchRequestToModel(req, project) {
		return nil
	}

	rederived := 0
	err := s.projectRepository.Transaction(func(tx shared.DB) error {
		if err := s.projectRepository.Save(tx, project); err != nil {
			return err
		}

		if project.Tolerance() == oldTolerance {
			return nil
		}

		var err error
		rederived, err = s.pileService.RederiveStatuses(tx, *project, userID)
		return err
	})
	if err != nil {
		return echo.NewHTTPError(500, "could not update project").WithInternal(err)
	}

	if rederived > 0 {
		slog.Info("tolerance changed, piles rederived", "projectID", project.ID, "piles", rederived)
		if err := s.broker.Publish(ctx, shared.NewPileChangeMessage(project.ID.String(), shared.PilesRederived, map[string]any{"count": rederived})); err != nil {
			slog.Warn("could not publish pile change", "err", err, "projectID", project.ID)
		}
	}
	return nil
}

// Delete removes the project with every pile, event, invitation and membership. Nothing is removed if one step fails.
func (s *projectService) Delete(ctx context.Context, projectID uuid.UUID) error {
	err := s.projectRepository.Transaction(func(tx shared.DB) error {
		return s.projectRepository.DeleteCascade(tx, projectID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "project not found").WithInternal(err)
		}
		slog.Error("could not delete project", "err", err, "projectID", projectID)
		return echo.NewHTTPError(500, "could not delete project").WithInternal(err)
	}

	slog.Info("project deleted", "projectID", projectID)
	return nil
}

// ListForUser returns every project for super admins and the projects with a membership otherwise.
func (s *projectService) ListForUser(userID string, isSuperAdmin bool, pageInfo shared.PageInfo, search string) (shared.Paged[models.Project], error) {
	if isSuperAdmin {
		paged, err := s.projectRepository.ListAllPaged(pageInfo, search)
		if err != nil {
			return paged, echo.NewHTTPError(500, "could not list projects").WithInternal(err)
		}
		return paged, nil
	}

	projectIDs, err := s.userProjectRepository.ListProjectIDsByUser(userID)
	if err != nil {
		return shared.Paged[models.Project]{}, echo.NewHTTPError(500, "could not list projects").WithInternal(err)
	}
	if len(projectIDs) == 0 {
		return shared.NewPaged(pageInfo, 0, []models.Project{}), nil
	}

	paged, err := s.projectRepository.ListPaged(projectIDs, pageInfo, search)
	if err != nil {
		return paged, echo.NewHTTPError(500, "could not list projects").WithInternal(err)
	}
	return paged, nil
}

// TransferOwnership demotes the current owner to admin before promoting the new owner.
// The new owner does not need to be a member yet.
func (s *projectService) TransferOwnership(ctx context.Context, projectID uuid.UUID, newOwnerID string) error {
	project, err := s.projectRepository.Read(projectID)
	if err != nil {
		return echo.NewHTTPError(404, "project not found").WithInternal(err)
	}

	err = s.userProjectRepository.Transaction(func(tx shared.DB) error {
		owner, err := s.userProjectRepository.FindOwner(tx, projectID)
		switch {
		case err == nil:
			if owner.UserID == newOwnerID {
				return nil
			}
			// the partial unique index allows only one owner at a time
			owner.Role = string(shared.RoleAdmin)
			if err := s.userProjectRepository.Save(tx, &owner); err != nil {
				return err
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		membership, err := s.userProjectRepository.Find(tx, newOwnerID, projectID)
		switch {
		case err == nil:
			membership.Role = string(shared.RoleOwner)
			if err := s.userProjectRepository.Save(tx, &membership); err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := s.userProjectRepository.Create(tx, &models.UserProject{
				UserID:    newOwnerID,
				ProjectID: projectID,
				Role:      string(shared.RoleOwner),
			}); err != nil {
				return err
			}
		default:
			return err
		}

		project.OwnerID = newOwnerID
		return s.projectRepository.Save(tx, &project)
	})
	if err != nil {
		return echo.NewHTTPError(500, "could not transfer ownership").WithInternal(err)
	}

	slog.Info("ownership transferred", "projectID", projectID, "newOwnerID", newOwnerID)
	return nil
}
