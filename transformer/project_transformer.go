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

package transformer

import (
	"github.com/gosimple/slug"
	"github.com/l3montree-dev/piletracker/database/models"
	"github.com/l3montree-dev/piletracker/dtos"
	"github.com/l3montree-dev/piletracker/shared"
)

func ProjectCreateRequestToModel(projectCreate dtos.ProjectCreateRequest) models.Project {
	tolerance := models.DefaultEmbedmentTolerance
	if projectCreate.EmbedmentTolerance != nil {
		tolerance = *projectCreate.EmbedmentTolerance
	}

	return models.Project{
		Name:               projectCreate.Name,
		Slug:               slug.Make(projectCreate.Name),
		Description:        projectCreate.Description,
		Location:           projectCreate.Location,
		Latitude:           projectCreate.Latitude,
		Longitude:          projectCreate.Longitude,
		TotalProjectPiles:  projectCreate.TotalProjectPiles,
		EmbedmentTolerance: tolerance,
		TrackerSystem:      projectCreate.TrackerSystem,
		GeotechCompany:     projectCreate.GeotechCompany,
		OwnerID:            projectCreate.OwnerID,
	}
}

// ApplyProjectPatchRequestToModel returns true if anything changed.
// the slug stays stable on rename. links shared with the field crews keep working.
func ApplyProjectPatchRequestToModel(projectPatch dtos.ProjectPatchRequest, project *models.Project) bool {
	updated := false
	if projectPatch.Name != nil {
		project.Name = *projectPatch.Name
		updated = true
	}
	if projectPatch.Description != nil {
		project.Description = *projectPatch.Description
		updated = true
	}
	if projectPatch.Location != nil {
		project.Location = *projectPatch.Location
		updated = true
	}
	if projectPatch.Latitude != nil {
		project.Latitude = projectPatch.Latitude
		updated = true
	}
	if projectPatch.Longitude != nil {
		project.Longitude = projectPatch.Longitude
		updated = true
	}
	if projectPatch.TotalProjectPiles != nil {
		project.TotalProjectPiles = *projectPatch.TotalProjectPiles
		updated = true
	}
	if projectPatch.EmbedmentTolerance != nil {
		project.EmbedmentTolerance = *projectPatch.EmbedmentTolerance
		updated = true
	}
	if projectPatch.TrackerSystem != nil {
		project.TrackerSystem = *projectPatch.TrackerSystem
		updated = true
	}
	if projectPatch.GeotechCompany != nil {
		project.GeotechCompany = *projectPatch.GeotechCompany
		updated = true
	}
	if projectPatch.Settings != nil {
		project.Settings = *projectPatch.Settings
		updated = true
	}

	return updated
}

func ProjectModelToDTO(project models.Project) dtos.ProjectDTO {
	return dtos.ProjectDTO{
		ID:                 project.ID,
		Name:               project.Name,
		Slug:               project.Slug,
		Description:        project.Description,
		Location:           project.Location,
		Latitude:           project.Latitude,
		Longitude:          project.Longitude,
		TotalProjectPiles:  project.TotalProjectPiles,
		EmbedmentTolerance: project.EmbedmentTolerance,
		TrackerSystem:      project.TrackerSystem,
		GeotechCompany:     project.GeotechCompany,
		OwnerID:            project.OwnerID,
		Settings:           project.Settings,
		CreatedAt:          project.CreatedAt,
		UpdatedAt:          project.UpdatedAt,
	}
}

func ProjectModelToDetailsDTO(project models.Project, role shared.Role, permissions []shared.Permission) dtos.ProjectDetailsDTO {
	perms := make([]dtos.PermissionDTO, 0, len(permissions))
	for _, p := range permissions {
		perms = append(perms, dtos.PermissionDTO{
			Object: string(p.Object),
			Action: string(p.Action),
		})
	}

	return dtos.ProjectDetailsDTO{
		ProjectDTO:  ProjectModelToDTO(project),
		Role:        string(role),
		Permissions: perms,
	}
}
