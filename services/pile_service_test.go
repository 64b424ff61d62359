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
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/piletracker/database/models"
	"github.com/l3montree-dev/piletracker/mocks"
	"github.com/l3montree-dev/piletracker/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func f(v float64) *float64 {
	return &v
}

func testProject() models.Project {
	project := models.Project{EmbedmentTolerance: 1}
	project.ID = uuid.MustParse("0b6f2c1e-3c2a-4a57-8d0e-9f1e2d3c4b5a")
	return project
}

func TestPileServiceCreate(t *testing.T) {
	t.Run("should derive the status and publish the pile", func(t *testing.T) {
		pileRepository := mocks.NewPileRepository(t)
		pileEventRepository := mocks.NewPileEventRepository(t)
		broker := mocks.NewPubSubBroker(t)
		project := testProject()

		pileRepository.On("Transaction", mock.Anything).Return(runTx)
		pileRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		pileEventRepository.On("Create", mock.Anything, mock.MatchedBy(func(e *models.PileEvent) bool {
			return e.Type == models.PileEventTypeCreated && e.UserID == "inspector"
		})).Return(nil)
		broker.On("Publish", mock.Anything, mock.MatchedBy(func(m shared.PubSubMessage) bool {
			return m.GetPayload()["projectId"] == project.ID.String() && m.GetPayload()["type"] == string(shared.PileCreated)
		})).Return(nil)

		s := NewPileService(pileRepository, pileEventRepository, broker)
		// a client sent status is ignored
		pile := models.Pile{PileNumber: "A-1", DesignEmbedment: f(10), Embedment: f(8), Status: models.PileStatusAccepted}

		err := s.Create(context.Background(), project, "inspector", &pile)
		assert.NoError(t, err)
		assert.Equal(t, models.PileStatusRefusal, pile.Status)
		assert.Equal(t, project.ID, pile.ProjectID)
		assert.Equal(t, "inspector", pile.InspectorID)
	})

	t.Run("should still succeed if publishing fails", func(t *testing.T) {
		pileRepository := mocks.NewPileRepository(t)
		pileEventRepository := mocks.NewPileEventRepository(t)
		broker := mocks.NewPubSubBroker(t)

		pileRepository.On("Transaction", mock.Anything).Return(runTx)
		pileRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		pileEventRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		broker.On("Publish", mock.Anything, mock.Anything).Return(errors.New("payload too large"))

		s := NewPileService(pileRepository, pileEventRepository, broker)
		assert.NoError(t, s.Create(context.Background(), testProject(), "inspector", &models.Pile{PileNumber: "A-1"}))
	})

	t.Run("should return a conflict for a duplicated pile number", func(t *testing.T) {
		pileRepository := mocks.NewPileRepository(t)

		pileRepository.On("Transaction", mock.Anything).Return(runTx)
		pileRepository.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

		s := NewPileService(pileRepository, mocks.NewPileEventRepository(t), mocks.NewPubSubBroker(t))
		err := s.Create(context.Background(), testProject(), "inspector", &models.Pile{PileNumber: "A-1"})
		assert.Equal(t, http.StatusConflict, httpStatus(t, err))
	})
}

func TestPileServiceUpdate(t *testing.T) {
	t.Run("should record the derived status change", func(t *testing.T) {
		pileRepository := mocks.NewPileRepository(t)
		pileEventRepository := mocks.NewPileEventRepository(t)
		broker := mocks.NewPubSubBroker(t)

		pile := models.Pile{PileNumber: "A-1", DesignEmbedment: f(10), Embedment: f(9.5), Status: models.PileStatusPending}
		changes := map[string]any{"embedment": map[string]any{"from": nil, "to": 9.5}}

		pileRepository.On("Transaction", mock.Anything).Return(runTx)
		pileRepository.On("Save", mock.Anything, &pile).Return(nil)
		pileEventRepository.On("Create", mock.Anything, mock.MatchedBy(func(e *models.PileEvent) bool {
			status, ok := e.Changes["status"].(map[string]any)
			return ok && e.Type == models.PileEventTypeUpdated && status["to"] == models.PileStatusAccepted
		})).Return(nil)
		broker.On("Publish", mock.Anything, mock.Anything).Return(nil)

		s := NewPileService(pileRepository, pileEventRepository, broker)
		err := s.Update(context.Background(), testProject(), "inspector", &pile, changes)
		assert.NoError(t, err)
		assert.Equal(t, models.PileStatusAccepted, pile.Status)
	})

	t.Run("should not write anything without changes", func(t *testing.T) {
		s := NewPileService(mocks.NewPileRepository(t), mocks.NewPileEventRepository(t), mocks.NewPubSubBroker(t))
		pile := models.Pile{PileNumber: "A-1", Status: models.PileStatusPending}
		assert.NoError(t, s.Update(context.Background(), testProject(), "inspector", &pile, map[string]any{}))
	})
}

func TestPileServiceDelete(t *testing.T) {
	pileRepository := mocks.NewPileRepository(t)
	pileEventRepository := mocks.NewPileEventRepository(t)
	broker := mocks.NewPubSubBroker(t)

	pile := models.Pile{PileNumber: "A-1"}
	pile.ID = uuid.New()

	pileRepository.On("Transaction", mock.Anything).Return(runTx)
	pileRepository.On("Delete", mock.Anything, pile.ID).Return(nil)
	pileEventRepository.On("Create", mock.Anything, mock.MatchedBy(func(e *models.PileEvent) bool {
		return e.Type == models.PileEventTypeDeleted && e.PileID == pile.ID
	})).Return(nil)
	broker.On("Publish", mock.Anything, mock.MatchedBy(func(m shared.PubSubMessage) bool {
		return m.GetPayload()["type"] == string(shared.PileDeleted)
	})).Return(nil)

	s := NewPileService(pileRepository, pileEventRepository, broker)
	assert.NoError(t, s.Delete(context.Background(), testProject(), "inspector", pile))
}

func TestPileServiceImport(t *testing.T) {
	t.Run("should create, update and skip rows", func(t *testing.T) {
		pileRepository := mocks.NewPileRepository(t)
		pileEventRepository := mocks.NewPileEventRepository(t)
		broker := mocks.NewPubSubBroker(t)
		project := testProject()

		unchanged := models.Pile{PileNumber: "A-2", Block: "A", ProjectID: project.ID}
		unchanged.ID = uuid.New()
		changed := models.Pile{PileNumber: "A-3", Block: "A", ProjectID: project.ID, InspectorID: "first-inspector"}
		changed.ID = uuid.New()

		var saved []models.Pile
		pileRepository.On("Transaction", mock.Anything).Return(runTx)
		pileRepository.On("ListByPileNumbers", mock.Anything, project.ID, []string{"A-1", "A-2", "A-3"}).Return([]models.Pile{unchanged, changed}, nil)
		pileRepository.On("SaveBatch", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = args.Get(1).([]models.Pile)
		}).Return(nil)
		pileEventRepository.On("CreateBatch", mock.Anything, mock.MatchedBy(func(events []models.PileEvent) bool {
			return len(events) == 2
		})).Return(nil)
		broker.On("Publish", mock.Anything, mock.MatchedBy(func(m shared.PubSubMessage) bool {
			return m.GetPayload()["type"] == string(shared.PilesImported)
		})).Return(nil).Once()

		s := NewPileService(pileRepository, pileEventRepository, broker)
		result, err := s.Import(context.Background(), project, "importer", []models.Pile{
			{PileNumber: "A-1", Block: "old"},
			{PileNumber: "A-2", Block: "A"},
			{PileNumber: "A-3", Block: "B"},
			// the last row with the same pile number wins
			{PileNumber: "A-1", Block: "A", DesignEmbedment: f(10), Embedment: f(10)},
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Created)
		assert.Equal(t, 1, result.Updated)
		assert.Equal(t, 2, result.Skipped)

		assert.Len(t, saved, 2)
		assert.Equal(t, "A-1", saved[0].PileNumber)
		assert.Equal(t, "A", saved[0].Block)
		assert.Equal(t, models.PileStatusAccepted, saved[0].Status)
		assert.NotEqual(t, uuid.Nil, saved[0].ID)
		assert.Equal(t, "importer", saved[0].InspectorID)

		assert.Equal(t, changed.ID, saved[1].ID)
		assert.Equal(t, "B", saved[1].Block)
		assert.Equal(t, "first-inspector", saved[1].InspectorID)
	})

	t.Run("should not save or publish if every row is unchanged", func(t *testing.T) {
		pileRepository := mocks.NewPileRepository(t)
		project := testProject()
		stored := models.Pile{PileNumber: "A-1", ProjectID: project.ID}

		pileRepository.On("Transaction", mock.Anything).Return(runTx)
		pileRepository.On("ListByPileNumbers", mock.Anything, project.ID, []string{"A-1"}).Return([]models.Pile{stored}, nil)

		s := NewPileService(pileRepository, mocks.NewPileEventRepository(t), mocks.NewPubSubBroker(t))
		result, err := s.Import(context.Background(), project, "importer", []models.Pile{{PileNumber: "A-1"}})
		assert.NoError(t, err)
		assert.Equal(t, 1, result.Skipped)
	})
}

func TestPileServiceRederiveStatuses(t *testing.T) {
	pileRepository := mocks.NewPileRepository(t)
	pileEventRepository := mocks.NewPileEventRepository(t)
	project := testProject()
	project.EmbedmentTolerance = 2

	piles := []models.Pile{
		// 8.5 is a refusal with a tolerance of 1 but accepted with 2
		{PileNumber: "A-1", DesignEmbedment: f(10), Embedment: f(8.5), Status: models.PileStatusRefusal},
		{PileNumber: "A-2", DesignEmbedment: f(10), Embedment: f(10), Status: models.PileStatusAccepted},
		{PileNumber: "A-3", Status: models.PileStatusPending},
	}

	pileRepository.On("ListByProject", mock.Anything, project.ID).Return(piles, nil)
	pileRepository.On("SaveBatch", mock.Anything, mock.MatchedBy(func(changed []models.Pile) bool {
		return len(changed) == 1 && changed[0].PileNumber == "A-1" && changed[0].Status == models.PileStatusAccepted
	})).Return(nil)
	pileEventRepository.On("CreateBatch", mock.Anything, mock.MatchedBy(func(events []models.PileEvent) bool {
		return len(events) == 1 && events[0].Type == models.PileEventTypeRederived
	})).Return(nil)

	s := NewPileService(pileRepository, pileEventRepository, mocks.NewPubSubBroker(t))
	n, err := s.RederiveStatuses(nil, project, "admin")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}
