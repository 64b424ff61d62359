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

package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type PileStatus string

const (
	PileStatusPending  PileStatus = "pending"
	PileStatusAccepted PileStatus = "accepted"
	PileStatusRefusal  PileStatus = "refusal"
)

type Pile struct {
	SoftDeleteModel
	ProjectID uuid.UUID `json:"projectId" gorm:"type:uuid;not null;uniqueIndex:idx_piles_project_pile_number"`
	Project   Project   `json:"-"`

	PileNumber     string `json:"pileNumber" gorm:"type:text;not null;uniqueIndex:idx_piles_project_pile_number"`
	PileIdentifier string `json:"pileId" gorm:"column:pile_id;type:text"`
	Block          string `json:"block" gorm:"type:text;index"`
	Zone           string `json:"zone" gorm:"type:text"`
	PileType       string `json:"pileType" gorm:"type:text"`
	PileSize       string `json:"pileSize" gorm:"type:text"`
	PileColor      string `json:"pileColor" gorm:"type:text"`
	Machine        string `json:"machine" gorm:"type:text"`

	DesignEmbedment  *float64 `json:"designEmbedment"`
	Embedment        *float64 `json:"embedment"`
	StartZ           *float64 `json:"startZ"`
	EndZ             *float64 `json:"endZ"`
	GainPer30Seconds *float64 `json:"gainPer30Seconds" gorm:"column:gain_per_30_seconds"`

	StartDate       *time.Time `json:"startDate" gorm:"type:date;index"`
	StartTime       string     `json:"startTime" gorm:"type:text"`
	StopTime        string     `json:"stopTime" gorm:"type:text"`
	DurationSeconds *int       `json:"durationSeconds"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	Notes       string     `json:"notes" gorm:"type:text"`
	Status      PileStatus `json:"status" gorm:"type:text;not null;default:'pending';index"`
	InspectorID string     `json:"inspectorId" gorm:"type:text"`
}

func (Pile) TableName() string {
	return "piles"
}

// DeriveStatus compares the measured embedment against the design embedment.
// A pile reaching at least design - tolerance is accepted, anything
// shallower is a refusal. Without both measurements the pile stays pending.
func DeriveStatus(designEmbedment, embedment *float64, tolerance float64) PileStatus {
	if designEmbedment == nil || embedment == nil {
		return PileStatusPending
	}
	if tolerance < 0 {
		tolerance = 0
	}
	if *embedment >= *designEmbedment-tolerance {
		return PileStatusAccepted
	}
	return PileStatusRefusal
}

// ParseClock parses "HH:MM" or "HH:MM:SS" into the offset since midnight.
func ParseClock(s string) (time.Duration, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, layout := range []string{"15:04:05", "15:04"} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute + time.Duration(t.Second())*time.Second, true
		}
	}
	return 0, false
}

// DurationSeconds returns stop - start. A stop time before the start time
// is treated as crossing midnight.
func DurationSeconds(startTime, stopTime string) *int {
	start, ok := ParseClock(startTime)
	if !ok {
		return nil
	}
	stop, ok := ParseClock(stopTime)
	if !ok {
		return nil
	}
	d := stop - start
	if d < 0 {
		d += 24 * time.Hour
	}
	seconds := int(d.Seconds())
	return &seconds
}

// Recalculate refreshes every derived field of the pile.
func (p *Pile) Recalculate(tolerance float64) {
	p.Status = DeriveStatus(p.DesignEmbedment, p.Embedment, tolerance)
	p.DurationSeconds = DurationSeconds(p.StartTime, p.StopTime)
}

func (p Pile) IsInstalled() bool {
	return p.Status == PileStatusAccepted || p.Status == PileStatusRefusal
}

func (p Pile) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}
