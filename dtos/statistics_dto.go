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

import "time"

type StatisticsSummary struct {
	Total             int64   `json:"total"`
	Accepted          int64   `json:"accepted"`
	Refusal           int64   `json:"refusal"`
	Pending           int64   `json:"pending"`
	TotalProjectPiles int     `json:"totalProjectPiles"`
	PercentComplete   float64 `json:"percentComplete"`
	RefusalRate       float64 `json:"refusalRate"`

	AverageEmbedment       *float64 `json:"averageEmbedment"`
	AverageDurationSeconds *float64 `json:"averageDurationSeconds"`
}

type StatusCounts struct {
	Accepted int64 `json:"accepted"`
	Refusal  int64 `json:"refusal"`
	Pending  int64 `json:"pending"`
	Total    int64 `json:"total"`
}

type BlockDistribution struct {
	Block string `json:"block"`
	StatusCounts
}

type TimelineInterval string

const (
	TimelineIntervalDay   TimelineInterval = "day"
	TimelineIntervalWeek  TimelineInterval = "week"
	TimelineIntervalMonth TimelineInterval = "month"
)

func (i TimelineInterval) IsValid() bool {
	return i == TimelineIntervalDay || i == TimelineIntervalWeek || i == TimelineIntervalMonth
}

type TimelineBucket struct {
	// first day of the bucket
	Start time.Time `json:"start"`
	StatusCounts
	Cumulative int64 `json:"cumulative"`
}

type HeatmapCell struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Count     int64   `json:"count"`
	Refusals  int64   `json:"refusals"`
	// count relative to the densest cell, in (0, 1]
	Weight float64 `json:"weight"`
}

type Dashboard struct {
	Summary  StatisticsSummary   `json:"summary"`
	Blocks   []BlockDistribution `json:"blocks"`
	Timeline []TimelineBucket    `json:"timeline"`
	Heatmap  []HeatmapCell       `json:"heatmap"`
}
