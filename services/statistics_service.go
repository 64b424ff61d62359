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
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/piletracker/database/models"
	"github.com/l3montree-dev/piletracker/dtos"
	"github.com/l3montree-dev/piletracker/shared"
	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

const (
	unassignedBlock         = "Unassigned"
	DefaultHeatmapPrecision = 5
	maxHeatmapPrecision     = 8
	maxTimelineBuckets      = 1000
)

type statisticsService struct {
	statisticsRepository shared.StatisticsRepository
}

var _ shared.StatisticsService = &statisticsService{}

func NewStatisticsService(statisticsRepository shared.StatisticsRepository) *statisticsService {
	return &statisticsService{
		statisticsRepository: statisticsRepository,
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

type statusCounter dtos.StatusCounts

func (c *statusCounter) add(status models.PileStatus, n int64) {
	switch status {
	case models.PileStatusAccepted:
		c.Accepted += n
	case models.PileStatusRefusal:
		c.Refusal += n
	default:
		c.Pending += n
	}
	c.Total += n
}

func (s *statisticsService) GetSummary(project models.Project) (dtos.StatisticsSummary, error) {
	counts, err := s.statisticsRepository.CountByStatus(project.ID)
	if err != nil {
		return dtos.StatisticsSummary{}, echo.NewHTTPError(500, "could not count piles").WithInternal(err)
	}
	averages, err := s.statisticsRepository.Averages(project.ID)
	if err != nil {
		return dtos.StatisticsSummary{}, echo.NewHTTPError(500, "could not calculate averages").WithInternal(err)
	}

	var c statusCounter
	for status, n := range counts {
		c.add(status, n)
	}

	installed := c.Accepted + c.Refusal
	summary := dtos.StatisticsSummary{
		Total:                  c.Total,
		Accepted:               c.Accepted,
		Refusal:                c.Refusal,
		Pending:                c.Pending,
		TotalProjectPiles:      project.TotalProjectPiles,
		AverageEmbedment:       averages.AverageEmbedment,
		AverageDurationSeconds: averages.AverageDurationSeconds,
	}
	if project.TotalProjectPiles > 0 {
		summary.PercentComplete = round2(math.Min(100, float64(installed)/float64(project.TotalProjectPiles)*100))
	}
	if installed > 0 {
		summary.RefusalRate = round2(float64(c.Refusal) / float64(installed) * 100)
	}
	return summary, nil
}

// GetBlockDistribution is sorted by block name. piles without a block are counted as "Unassigned".
func (s *statisticsService) GetBlockDistribution(projectID uuid.UUID) ([]dtos.BlockDistribution, error) {
	rows, err := s.statisticsRepository.BlockStatusCounts(projectID)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not count piles per block").WithInternal(err)
	}

	byBlock := map[string]*statusCounter{}
	for _, row := range rows {
		block := row.Block
		if block == "" {
			block = unassignedBlock
		}
		c, ok := byBlock[block]
		if !ok {
			c = &statusCounter{}
			byBlock[block] = c
		}
		c.add(row.Status, row.Count)
	}

	res := make([]dtos.BlockDistribution, 0, len(byBlock))
	for block, c := range byBlock {
		res = append(res, dtos.BlockDistribution{
			Block:        block,
			StatusCounts: dtos.StatusCounts(*c),
		})
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Block < res[j].Block
	})
	return res, nil
}

// bucketStart truncates the day to the first day of its bucket. weeks start on monday.
func bucketStart(day time.Time, interval dtos.TimelineInterval) time.Time {
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	switch interval {
	case dtos.TimelineIntervalWeek:
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case dtos.TimelineIntervalMonth:
		return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return day
	}
}

func nextBucket(start time.Time, interval dtos.TimelineInterval) time.Time {
	switch interval {
	case dtos.TimelineIntervalWeek:
		return start.AddDate(0, 0, 7)
	case dtos.TimelineIntervalMonth:
		return start.AddDate(0, 1, 0)
	default:
		return start.AddDate(0, 0, 1)
	}
}

// GetTimeline emits one bucket per interval between the first and the last installation date,
// or between from and to when given. Piles without a start date are not part of the timeline.
func (s *statisticsService) GetTimeline(projectID uuid.UUID, interval dtos.TimelineInterval, from, to *time.Time) ([]dtos.TimelineBucket, error) {
	if !interval.IsValid() {
		return nil, echo.NewHTTPError(400, fmt.Sprintf("invalid interval %q", interval))
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, echo.NewHTTPError(400, "from must be before to")
	}

	rows, err := s.statisticsRepository.DailyStatusCounts(projectID, from, to)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not build the timeline").WithInternal(err)
	}
	if len(rows) == 0 && (from == nil || to == nil) {
		return []dtos.TimelineBucket{}, nil
	}

	counters := map[time.Time]*statusCounter{}
	var first, last time.Time
	for i, row := range rows {
		start := bucketStart(row.Day, interval)
		if i == 0 || start.Before(first) {
			first = start
		}
		if i == 0 || start.After(last) {
			last = start
		}
		c, ok := counters[start]
		if !ok {
			c = &statusCounter{}
			counters[start] = c
		}
		c.add(row.Status, row.Count)
	}
	if from != nil {
		first = bucketStart(*from, interval)
	}
	if to != nil {
		last = bucketStart(*to, interval)
	}

	res := make([]dtos.TimelineBucket, 0)
	var cumulative int64
	for start := first; !start.After(last); start = nextBucket(start, interval) {
		if len(res) == maxTimelineBuckets {
			return nil, echo.NewHTTPError(400, "the timeline is too long, use a larger interval or a shorter range")
		}
		bucket := dtos.TimelineBucket{Start: start}
		if c, ok := counters[start]; ok {
			bucket.StatusCounts = dtos.StatusCounts(*c)
		}
		cumulative += bucket.Total
		bucket.Cumulative = cumulative
		res = append(res, bucket)
	}
	return res, nil
}

func ClampHeatmapPrecision(precision int) int {
	return min(max(precision, 0), maxHeatmapPrecision)
}

type heatmapKey struct {
	lat, lng float64
}

// GetHeatmap groups the piles with coordinates into cells of the given decimal precision.
// The weight of the densest cell is 1.
func (s *statisticsService) GetHeatmap(projectID uuid.UUID, precision int) ([]dtos.HeatmapCell, error) {
	precision = ClampHeatmapPrecision(precision)
	points, err := s.statisticsRepository.PilePoints(projectID)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not load pile coordinates").WithInternal(err)
	}

	factor := math.Pow10(precision)
	roundTo := func(f float64) float64 {
		return math.Round(f*factor) / factor
	}

	cells := map[heatmapKey]*dtos.HeatmapCell{}
	order := make([]heatmapKey, 0)
	var densest int64
	for _, p := range points {
		key := heatmapKey{lat: roundTo(p.Latitude), lng: roundTo(p.Longitude)}
		cell, ok := cells[key]
		if !ok {
			cell = &dtos.HeatmapCell{Latitude: key.lat, Longitude: key.lng}
			cells[key] = cell
			order = append(order, key)
		}
		cell.Count++
		if p.Status == models.PileStatusRefusal {
			cell.Refusals++
		}
		densest = max(densest, cell.Count)
	}

	res := make([]dtos.HeatmapCell, 0, len(order))
	for _, key := range order {
		cell := cells[key]
		cell.Weight = float64(cell.Count) / float64(densest)
		res = append(res, *cell)
	}
	return res, nil
}

// GetDashboard loads every statistic concurrently.
func (s *statisticsService) GetDashboard(ctx context.Context, project models.Project, interval dtos.TimelineInterval) (dtos.Dashboard, error) {
	var dashboard dtos.Dashboard
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		dashboard.Summary, err = s.GetSummary(project)
		return err
	})
	g.Go(func() error {
		var err error
		dashboard.Blocks, err = s.GetBlockDistribution(project.ID)
		return err
	})
	g.Go(func() error {
		var err error
		dashboard.Timeline, err = s.GetTimeline(project.ID, interval, nil, nil)
		return err
	})
	g.Go(func() error {
		var err error
		dashboard.Heatmap, err = s.GetHeatmap(project.ID, DefaultHeatmapPrecision)
		return err
	})

	if err := g.Wait(); err != nil {
		return dtos.Dashboard{}, err
	}
	return dashboard, nil
}
