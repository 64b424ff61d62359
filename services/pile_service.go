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
	"log/slog"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/piletracker/database"
	"github.com/l3montree-dev/piletracker/database/models"
	"github.com/l3montree-dev/piletracker/dtos"
	"github.com/l3montree-dev/piletracker/monitoring"
	"github.com/l3montree-dev/piletracker/shared"
	"github.com/l3montree-dev/piletracker/transformer"
	"github.com/l3montree-dev/piletracker/utils"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
)

type pileService struct {
	pileRepository      shared.PileRepository
	pileEventRepository shared.PileEventRepository
	broker              shared.PubSubBroker
}

var _ shared.PileService = &pileService{}

func NewPileService(pileRepository shared.PileRepository, pileEventRepository shared.PileEventRepository, broker shared.PubSubBroker) *pileService {
	return &pileService{
		pileRepository:      pileRepository,
		pileEventRepository: pileEventRepository,
		broker:              broker,
	}
}

// publish runs after the commit. a failed publish only delays the live view, the request still succeeds.
func (s *pileService) publish(ctx context.Context, projectID uuid.UUID, changeType shared.PileChangeType, payload any) {
	if err := s.broker.Publish(ctx, shared.NewPileChangeMessage(projectID.String(), changeType, payload)); err != nil {
		slog.Warn("could not publish pile change", "err", err, "projectID", projectID, "type", changeType)
	}
}

func duplicatePileError(err error) error {
	return echo.NewHTTPError(409, "a pile with this pile number already exists in the project").WithInternal(err)
}

func (s *pileService) Create(ctx context.Context, project models.Project, userID string, pile *models.Pile) error {
	pile.ProjectID = project.ID
	if pile.InspectorID == "" {
		pile.InspectorID = userID
	}
	pile.Recalculate(project.Tolerance())

	err := s.pileRepository.Transaction(func(tx shared.DB) error {
		if err := s.pileRepository.Create(tx, pile); err != nil {
			return err
		}
		return s.pileEventRepository.Create(tx, &models.PileEvent{
			PileID:    pile.ID,
			ProjectID: project.ID,
			UserID:    userID,
			Type:      models.PileEventTypeCreated,
			Changes: datatypes.JSONMap{
				"pileNumber": pile.PileNumber,
				"status":     pile.Status,
			},
		})
	})
	if err != nil {
		if database.IsDuplicateKeyError(err) {
			return duplicatePileError(err)
		}
		return echo.NewHTTPError(500, "could not create pile").WithInternal(err)
	}

	monitoring.PilesCreatedAmount.WithLabelValues(string(pile.Status)).Inc()
	s.publish(ctx, project.ID, shared.PileCreated, pile)
	return nil
}

// Update saves a pile the patch was already applied to. changes holds the patched fields,
// the derived fields are added here. Without any change nothing is written.
func (s *pileService) Update(ctx context.Context, project models.Project, userID string, pile *models.Pile, changes map[string]any) error {
	oldStatus := pile.Status
	oldDuration := pile.DurationSeconds
	pile.Recalculate(project.Tolerance())

	if changes == nil {
		changes = map[string]any{}
	}
	if pile.Status != oldStatus {
		changes["status"] = map[string]any{"from": oldStatus, "to": pile.Status}
	}
	if !reflect.DeepEqual(oldDuration, pile.DurationSeconds) {
		changes["durationSeconds"] = map[string]any{"from": oldDuration, "to": pile.DurationSeconds}
	}
	if len(changes) == 0 {
		return nil
	}

	err := s.pileRepository.Transaction(func(tx shared.DB) error {
		if err := s.pileRepository.Save(tx, pile); err != nil {
			return err
		}
		return s.pileEventRepository.Create(tx, &models.PileEvent{
			PileID:    pile.ID,
			ProjectID: project.ID,
			UserID:    userID,
			Type:      models.PileEventTypeUpdated,
			Changes:   changes,
		})
	})
	if err != nil {
		if database.IsDuplicateKeyError(err) {
			return duplicatePileError(err)
		}
		return echo.NewHTTPError(500, "could not update pile").WithInternal(err)
	}

	monitoring.PilesUpdatedAmount.WithLabelValues(string(pile.Status)).Inc()
	s.publish(ctx, project.ID, shared.PileUpdated, pile)
	return nil
}

// Delete soft deletes the pile. the purge daemon removes it later.
func (s *pileService) Delete(ctx context.Context, project models.Project, userID string, pile models.Pile) error {
	err := s.pileRepository.Transaction(func(tx shared.DB) error {
		if err := s.pileRepository.Delete(tx, pile.ID); err != nil {
			return err
		}
		return s.pileEventRepository.Create(tx, &models.PileEvent{
			PileID:    pile.ID,
			ProjectID: project.ID,
			UserID:    userID,
			Type:      models.PileEventTypeDeleted,
			Changes: datatypes.JSONMap{
				"pileNumber": pile.PileNumber,
			},
		})
	})
	if err != nil {
		return echo.NewHTTPError(500, "could not delete pile").WithInternal(err)
	}

	monitoring.PilesDeletedAmount.Inc()
	s.publish(ctx, project.ID, shared.PileDeleted, map[string]any{"id": pile.ID, "pileNumber": pile.PileNumber})
	return nil
}

// Import upserts the piles by pile number. For duplicated pile numbers the last row wins,
// rows equal to the stored pile are skipped.
func (s *pileService) Import(ctx context.Context, project models.Project, userID string, piles []models.Pile) (dtos.ImportResult, error) {
	start := time.Now()
	defer func() {
		monitoring.ImportDuration.Observe(time.Since(start).Seconds())
	}()

	result := dtos.ImportResult{Errors: []dtos.ImportRowError{}}
	unique := utils.UniqBy(piles, func(p models.Pile) string { return p.PileNumber })
	result.Skipped = len(piles) - len(unique)

	err := s.pileRepository.Transaction(func(tx shared.DB) error {
		existing, err := s.pileRepository.ListByPileNumbers(tx, project.ID, utils.Map(unique, func(p models.Pile) string {
			return p.PileNumber
		}))
		if err != nil {
			return err
		}
		byNumber := make(map[string]models.Pile, len(existing))
		for _, p := range existing {
			byNumber[p.PileNumber] = p
		}

		toSave := make([]models.Pile, 0, len(unique))
		events := make([]models.PileEvent, 0, len(unique))
		for _, pile := range unique {
			pile.ProjectID = project.ID
			changeType := "created"
			if stored, ok := byNumber[pile.PileNumber]; ok {
				if reflect.DeepEqual(transformer.PileModelToRequest(stored), transformer.PileModelToRequest(pile)) {
					result.Skipped++
					continue
				}
				pile.ID = stored.ID
				pile.CreatedAt = stored.CreatedAt
				pile.InspectorID = stored.InspectorID
				changeType = "updated"
				result.Updated++
			} else {
				pile.ID = uuid.New()
				result.Created++
			}
			if pile.InspectorID == "" {
				pile.InspectorID = userID
			}
			pile.Recalculate(project.Tolerance())

			toSave = append(toSave, pile)
			events = append(events, models.PileEvent{
				PileID:    pile.ID,
				ProjectID: project.ID,
				UserID:    userID,
				Type:      models.PileEventTypeImported,
				Changes: datatypes.JSONMap{
					"pileNumber": pile.PileNumber,
					"status":     pile.Status,
					"result":     changeType,
				},
			})
		}

		if len(toSave) == 0 {
			return nil
		}
		if err := s.pileRepository.SaveBatch(tx, toSave); err != nil {
			return err
		}
		return s.pileEventRepository.CreateBatch(tx, events)
	})
	if err != nil {
		if database.IsDuplicateKeyError(err) {
			return result, duplicatePileError(err)
		}
		return result, echo.NewHTTPError(500, "could not import piles").WithInternal(err)
	}

	monitoring.ImportRowsAmount.WithLabelValues("created").Add(float64(result.Created))
	monitoring.ImportRowsAmount.WithLabelValues("updated").Add(float64(result.Updated))
	monitoring.ImportRowsAmount.WithLabelValues("skipped").Add(float64(result.Skipped))

	slog.Info("piles imported", "projectID", project.ID, "created", result.Created, "updated", result.Updated, "skipped", result.Skipped)
	if result.Created+result.Updated > 0 {
		s.publish(ctx, project.ID, shared.PilesImported, map[string]any{
			"created": result.Created,
			"updated": result.Updated,
		})
	}
	return result, nil
}

// RederiveStatuses derives the status of every pile of the project with the current tolerance.
// It runs inside the transaction of the caller and returns the amount of changed piles.
func (s *pileService) RederiveStatuses(tx shared.DB, project models.Project, userID string) (int, error) {
	piles, err := s.pileRepository.ListByProject(tx, project.ID)
	if err != nil {
		return 0, err
	}

	changed := make([]models.Pile, 0)
	events := make([]models.PileEvent, 0)
	for _, pile := range piles {
		oldStatus := pile.Status
		pile.Recalculate(project.Tolerance())
		if pile.Status == oldStatus {
			continue
		}
		changed = append(changed, pile)
		events = append(events, models.PileEvent{
			PileID:    pile.ID,
			ProjectID: project.ID,
			UserID:    userID,
			Type:      models.PileEventTypeRederived,
			Changes: datatypes.JSONMap{
				"status":    map[string]any{"from": oldStatus, "to": pile.Status},
				"tolerance": project.Tolerance(),
			},
		})
	}

	if len(changed) == 0 {
		return 0, nil
	}
	if err := s.pileRepository.SaveBatch(tx, changed); err != nil {
		return 0, err
	}
	if err := s.pileEventRepository.CreateBatch(tx, events); err != nil {
		return 0, err
	}
	return len(changed), nil
}
