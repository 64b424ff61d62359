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
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/piletracker/database/models"
	"github.com/l3montree-dev/piletracker/dtos"
	"github.com/l3montree-dev/piletracker/shared"
	"github.com/ory/client-go"
	"github.com/stretchr/testify/assert"
)

func TestPileRequestToModel(t *testing.T) {
	t.Run("should parse the start date", func(t *testing.T) {
		projectID := uuid.New()
		pile, err := PileRequestToModel(dtos.PileRequest{
			PileNumber: "A-1",
			StartDate:  "2024-05-01",
		}, projectID)

		assert.Nil(t, err)
		assert.Equal(t, projectID, pile.ProjectID)
		assert.Equal(t, "2024-05-01", FormatDate(pile.StartDate))
		assert.Equal(t, models.PileStatusPending, pile.Status)
	})

	t.Run("should return an error on an invalid date", func(t *testing.T) {
		_, err := PileRequestToModel(dtos.PileRequest{
			PileNumber: "A-1",
			StartDate:  "01.05.2024",
		}, uuid.New())

		assert.Error(t, err)
	})
}

func TestApplyPilePatchRequestToModel(t *testing.T) {
	t.Run("should only report the fields which actually changed", func(t *testing.T) {
		pile := models.Pile{
			PileNumber: "A-1",
			Block:      "A",
			Embedment:  shared.Ptr(9.0),
		}

		changes, err := ApplyPilePatchRequestToModel(dtos.PilePatchRequest{
			Block:     shared.Ptr("A"),
			Embedment: shared.Ptr(10.5),
			Notes:     shared.Ptr("hard layer at 8ft"),
		}, &pile)

		assert.Nil(t, err)
		assert.Len(t, changes, 2)
		assert.Equal(t, map[string]any{"from": 9.0, "to": 10.5}, changes["embedment"])
		assert.Equal(t, 10.5, *pile.Embedment)
		assert.Equal(t, "hard layer at 8ft", pile.Notes)
	})

	t.Run("should set a value which was nil before", func(t *testing.T) {
		pile := models.Pile{}

		changes, err := ApplyPilePatchRequestToModel(dtos.PilePatchRequest{
			DesignEmbedment: shared.Ptr(12.0),
		}, &pile)

		assert.Nil(t, err)
		assert.Equal(t, map[string]any{"from": nil, "to": 12.0}, changes["designEmbedment"])
	})
}

func TestIdentityToUserDTO(t *testing.T) {
	t.Run("should join first and last name", func(t *testing.T) {
		user := IdentityToUserDTO(client.Identity{
			Id: "user-1",
			Traits: map[string]any{
				"email": "jane@example.com",
				"name": map[string]any{
					"first": "Jane",
					"last":  "Doe",
				},
			},
		})

		assert.Equal(t, dtos.UserDTO{ID: "user-1", Email: "jane@example.com", Name: "Jane Doe"}, user)
	})

	t.Run("should accept a plain string name", func(t *testing.T) {
		user := IdentityToUserDTO(client.Identity{
			Id:     "user-2",
			Traits: map[string]any{"name": "John"},
		})

		assert.Equal(t, "John", user.Name)
	})
}
