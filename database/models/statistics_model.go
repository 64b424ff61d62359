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

import "time"

// the following types are not tables. they are scanned from aggregation queries.

type PileAverages struct {
	AverageEmbedment       *float64 `json:"averageEmbedment"`
	AverageDurationSeconds *float64 `json:"averageDurationSeconds"`
}

type BlockStatusCount struct {
	Block  string
	Status PileStatus
	Count  int64
}

type DailyStatusCount struct {
	Day    time.Time
	Status PileStatus
	Count  int64
}

type PilePoint struct {
	Latitude  float64
	Longitude float64
	Status    PileStatus
}
