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

package dtos

// PileRequest is used for creating piles, for the csv import and for the json bulk import.
type PileRequest struct {
	PileNumber string `json:"pileNumber" validate:"required"`
	PileID     string `json:"pileId"`
	Block      string `json:"block"`
	Zone       string `json:"zone"`
	PileType   string `json:"pileType"`
	PileSize   string `json:"pileSize"`
	PileColor  string `json:"pileColor"`
	Machine    string `json:"machine"`

	DesignEmbedment  *float64 `json:"designEmbedment" validate:"omitempty,gte=0"`
	Embedment        *float64 `json:"embedment" validate:"omitempty,gte=0"`
	StartZ           *float64 `json:"startZ"`
	EndZ             *float64 `json:"endZ"`
	GainPer30Seconds *float64 `json:"gainPer30Seconds"`

	// YYYY-MM-DD
	StartDate string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	StartTime string `json:"startTime" validate:"omitempty,clock"`
	StopTime  string `json:"stopTime" validate:"omitempty,clock"`

	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`

	Notes string `json:"notes"`
}

type PilePatchRequest struct {
	PileNumber *string `json:"pileNumber" validate:"omitempty,min=1"`
	PileID     *string `json:"pileId"`
	Block      *string `json:"block"`
	Zone       *string `json:"zone"`
	PileType   *string `json:"pileType"`
	PileSize   *string `json:"pileSize"`
	PileColor  *string `json:"pileColor"`
	Machine    *string `json:"machine"`

	DesignEmbedment  *float64 `json:"designEmbedment" validate:"omitempty,gte=0"`
	Embedment        *float64 `json:"embedment" validate:"omitempty,gte=0"`
	StartZ           *float64 `json:"startZ"`
	EndZ             *float64 `json:"endZ"`
	GainPer30Seconds *float64 `json:"gainPer30Seconds"`

	StartDate *string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	StartTime *string `json:"startTime" validate:"omitempty,clock"`
	StopTime  *string `json:"stopTime" validate:"omitempty,clock"`

	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`

	Notes *string `json:"notes"`
}

type ImportRowError struct {
	// 1-based, the header is row 1
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type ImportResult struct {
	Created int              `json:"created"`
	Updated int              `json:"updated"`
	Skipped int              `json:"skipped"`
	Errors  []ImportRowError `json:"errors"`
}
