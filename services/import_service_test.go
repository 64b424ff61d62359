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
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/l3montree-dev/piletracker/database/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportServiceParseCSV(t *testing.T) {
	t.Run("should read the columns by header name and alias", func(t *testing.T) {
		csv := "Pile No,Block,Design Embedment (ft),Embedment,Date,Start Time,Stop Time,Lat,Lng\n" +
			"A-1,A,10,9.5,3/4/2025,08:00,08:02,35.1,-106.5\n" +
			"A-2,A,10,,2025-03-05,,,,\n"

		requests, rowErrors, err := NewImportService().ParseCSV(strings.NewReader(csv))
		require.NoError(t, err)
		assert.Empty(t, rowErrors)
		require.Len(t, requests, 2)

		assert.Equal(t, "A-1", requests[0].PileNumber)
		assert.Equal(t, 10.0, *requests[0].DesignEmbedment)
		assert.Equal(t, 9.5, *requests[0].Embedment)
		assert.Equal(t, "2025-03-04", requests[0].StartDate)
		assert.Equal(t, -106.5, *requests[0].Longitude)
		assert.Nil(t, requests[1].Embedment)
	})

	t.Run("should report invalid rows and keep the valid ones", func(t *testing.T) {
		csv := "pileNumber,embedment,latitude,startTime\n" +
			"A-1,deep,,\n" +
			",10,,\n" +
			"A-3,10,95,\n" +
			"A-4,10,,25:99\n" +
			",,,\n" +
			"A-6,10,,07:30\n"

		requests, rowErrors, err := NewImportService().ParseCSV(strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, requests, 1)
		assert.Equal(t, "A-6", requests[0].PileNumber)

		rows := make([]int, 0, len(rowErrors))
		for _, e := range rowErrors {
			rows = append(rows, e.Row)
		}
		// the header is row 1, the empty row 6 is ignored
		assert.Equal(t, []int{2, 3, 4, 5}, rows)
	})

	t.Run("should reject cells which are not finite numbers", func(t *testing.T) {
		csv := "pileNumber,designEmbedment,embedment,startZ,gainPer30Seconds\n" +
			"P-1,10,Inf,,\n" +
			"P-2,10,9.5,NaN,\n" +
			"P-3,10,9.5,,-Infinity\n" +
			"P-4,10,9.5,1.5,2\n"

		requests, rowErrors, err := NewImportService().ParseCSV(strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, requests, 1)
		assert.Equal(t, "P-4", requests[0].PileNumber)

		require.Len(t, rowErrors, 3)
		assert.Equal(t, 2, rowErrors[0].Row)
		assert.Contains(t, rowErrors[0].Message, "embedment")
		assert.Contains(t, rowErrors[1].Message, "startz")
		assert.Contains(t, rowErrors[2].Message, "gainper30seconds")
	})

	t.Run("should fail without a pile number column", func(t *testing.T) {
		_, _, err := NewImportService().ParseCSV(strings.NewReader("block,embedment\nA,10\n"))
		assert.ErrorIs(t, err, ErrMissingPileNumberColumn)
	})

	t.Run("should strip the byte order mark of excel exports", func(t *testing.T) {
		requests, _, err := NewImportService().ParseCSV(strings.NewReader("\uFEFFpileNumber\nA-1\n"))
		require.NoError(t, err)
		assert.Len(t, requests, 1)
	})
}

func TestImportServiceParseJSON(t *testing.T) {
	s := NewImportService()

	t.Run("should accept a valid bulk request", func(t *testing.T) {
		requests, err := s.ParseJSON([]byte(`[{"pileNumber":"A-1","embedment":9.5,"startDate":"2025-03-04","status":"accepted"},{"pileNumber":"A-2","latitude":null}]`))
		require.NoError(t, err)
		assert.Len(t, requests, 2)
		assert.Equal(t, 9.5, *requests[0].Embedment)
	})

	t.Run("should reject unknown fields", func(t *testing.T) {
		_, err := s.ParseJSON([]byte(`[{"pileNumber":"A-1","embedement":9.5}]`))
		assert.Error(t, err)
	})

	t.Run("should reject a missing pile number", func(t *testing.T) {
		_, err := s.ParseJSON([]byte(`[{"embedment":9.5}]`))
		assert.Error(t, err)
	})

	t.Run("should reject a negative embedment", func(t *testing.T) {
		_, err := s.ParseJSON([]byte(`[{"pileNumber":"A-1","embedment":-1}]`))
		assert.Error(t, err)
	})

	t.Run("should reject an object instead of an array", func(t *testing.T) {
		_, err := s.ParseJSON([]byte(`{"pileNumber":"A-1"}`))
		assert.Error(t, err)
	})
}

func TestImportServiceWriteCSV(t *testing.T) {
	startDate := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	duration := 120
	piles := []models.Pile{
		{
			PileNumber:      "A-1",
			Block:           "A",
			DesignEmbedment: f(10),
			Embedment:       f(9.5),
			StartDate:       &startDate,
			StartTime:       "08:00",
			StopTime:        "08:02",
			DurationSeconds: &duration,
			Notes:           "hit rock, \"refusal\"",
			Status:          models.PileStatusAccepted,
		},
	}

	s := NewImportService()
	var buf bytes.Buffer
	require.NoError(t, s.WriteCSV(&buf, piles))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "pileNumber,pileId,block"))
	assert.True(t, strings.HasSuffix(lines[1], "accepted,120"))

	// the export can be imported again
	requests, rowErrors, err := s.ParseCSV(&buf)
	require.NoError(t, err)
	assert.Empty(t, rowErrors)
	require.Len(t, requests, 1)
	assert.Equal(t, "2025-03-04", requests[0].StartDate)
	assert.Equal(t, "hit rock, \"refusal\"", requests[0].Notes)
}
