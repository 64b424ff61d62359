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
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/piletracker/database/models"
	"github.com/l3montree-dev/piletracker/dtos"
)

const dateLayout = "2006-01-02"

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return &t, nil
}

func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

// PileRequestToModel does not derive the status. that is done by the pile service
// since it depends on the project tolerance.
func PileRequestToModel(req dtos.PileRequest, projectID uuid.UUID) (models.Pile, error) {
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return models.Pile{}, err
	}

	return models.Pile{
		ProjectID:        projectID,
		PileNumber:       req.PileNumber,
		PileIdentifier:   req.PileID,
		Block:            req.Block,
		Zone:             req.Zone,
		PileType:         req.PileType,
		PileSize:         req.PileSize,
		PileColor:        req.PileColor,
		Machine:          req.Machine,
		DesignEmbedment:  req.DesignEmbedment,
		Embedment:        req.Embedment,
		StartZ:           req.StartZ,
		EndZ:             req.EndZ,
		GainPer30Seconds: req.GainPer30Seconds,
		StartDate:        startDate,
		StartTime:        req.StartTime,
		StopTime:         req.StopTime,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		Notes:            req.Notes,
		Status:           models.PileStatusPending,
	}, nil
}

// ApplyPilePatchRequestToModel returns the changed fields keyed by their json name.
// the map is stored as the audit trail of the pile.
func ApplyPilePatchRequestToModel(patch dtos.PilePatchRequest, pile *models.Pile) (map[string]any, error) {
	changes := map[string]any{}

	setString := func(key string, v *string, target *string) {
		if v != nil && *v != *target {
			changes[key] = map[string]any{"from": *target, "to": *v}
			*target = *v
		}
	}
	setFloat := func(key string, v *float64, target **float64) {
		if v == nil {
			return
		}
		if *target != nil && **target == *v {
			return
		}
		var from any
		if *target != nil {
			from = **target
		}
		changes[key] = map[string]any{"from": from, "to": *v}
		value := *v
		*target = &value
	}

	setString("pileNumber", patch.PileNumber, &pile.PileNumber)
	setString("pileId", patch.PileID, &pile.PileIdentifier)
	setString("block", patch.Block, &pile.Block)
	setString("zone", patch.Zone, &pile.Zone)
	setString("pileType", patch.PileType, &pile.PileType)
	setString("pileSize", patch.PileSize, &pile.PileSize)
	setString("pileColor", patch.PileColor, &pile.PileColor)
	setString("machine", patch.Machine, &pile.Machine)
	setString("startTime", patch.StartTime, &pile.StartTime)
	setString("stopTime", patch.StopTime, &pile.StopTime)
	setString("notes", patch.Notes, &pile.Notes)

	setFloat("designEmbedment", patch.DesignEmbedment, &pile.DesignEmbedment)
	setFloat("embedment", patch.Embedment, &pile.Embedment)
	setFloat("startZ", patch.StartZ, &pile.StartZ)
	setFloat("endZ", patch.EndZ, &pile.EndZ)
	setFloat("gainPer30Seconds", patch.GainPer30Seconds, &pile.GainPer30Seconds)
	setFloat("latitude", patch.Latitude, &pile.Latitude)
	setFloat("longitude", patch.Longitude, &pile.Longitude)

	if patch.StartDate != nil {
		startDate, err := parseDate(*patch.StartDate)
		if err != nil {
			return nil, err
		}
		if FormatDate(startDate) != FormatDate(pile.StartDate) {
			changes["startDate"] = map[string]any{"from": FormatDate(pile.StartDate), "to": FormatDate(startDate)}
			pile.StartDate = startDate
		}
	}

	return changes, nil
}

// PileModelToRequest is the inverse of PileRequestToModel. it is used for the csv export.
func PileModelToRequest(pile models.Pile) dtos.PileRequest {
	return dtos.PileRequest{
		PileNumber:       pile.PileNumber,
		PileID:           pile.PileIdentifier,
		Block:            pile.Block,
		Zone:             pile.Zone,
		PileType:         pile.PileType,
		PileSize:         pile.PileSize,
		PileColor:        pile.PileColor,
		Machine:          pile.Machine,
		DesignEmbedment:  pile.DesignEmbedment,
		Embedment:        pile.Embedment,
		StartZ:           pile.StartZ,
		EndZ:             pile.EndZ,
		GainPer30Seconds: pile.GainPer30Seconds,
		StartDate:        FormatDate(pile.StartDate),
		StartTime:        pile.StartTime,
		StopTime:         pile.StopTime,
		Latitude:         pile.Latitude,
		Longitude:        pile.Longitude,
		Notes:            pile.Notes,
	}
}
