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
	_ "embed"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/l3montree-dev/piletracker/database/models"
	"github.com/l3montree-dev/piletracker/dtos"
	"github.com/l3montree-dev/piletracker/shared"
	"github.com/l3montree-dev/piletracker/transformer"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

const (
	MaxImportRows     = 10000
	pileBulkSchemaURL = "https://piletracker.local/schemas/pile_bulk.schema.json"
)

//go:embed schemas/pile_bulk.schema.json
var pileBulkSchema []byte

var ErrMissingPileNumberColumn = errors.New("the csv file has no pile number column")

// the header of the export. the import accepts the same names.
var csvColumns = []string{
	"pileNumber", "pileId", "block", "zone", "pileType", "pileSize", "pileColor", "machine",
	"designEmbedment", "embedment", "startZ", "endZ", "gainPer30Seconds",
	"startDate", "startTime", "stopTime", "latitude", "longitude", "notes",
	"status", "durationSeconds",
}

// aliases found in the spreadsheets of the field crews. keys are normalized.
var csvHeaderAliases = map[string]string{
	"pileno":         "pilenumber",
	"pile":           "pilenumber",
	"lat":            "latitude",
	"lng":            "longitude",
	"lon":            "longitude",
	"gain30":         "gainper30seconds",
	"gainper30sec":   "gainper30seconds",
	"date":           "startdate",
	"installdate":    "startdate",
	"designdepth":    "designembedment",
	"depth":          "embedment",
	"finalembedment": "embedment",
}

type importService struct {
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
}

var _ shared.ImportService = &importService{}

func NewImportService() *importService {
	return &importService{}
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF")))
	h = strings.NewReplacer(" ", "", "_", "", "-", "", "(ft)", "", "(s)", "").Replace(h)
	if alias, ok := csvHeaderAliases[h]; ok {
		return alias
	}
	return h
}

func parseOptionalFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%q is not a number", s)
	}
	// ParseFloat accepts NaN and Inf, json cannot encode them
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%q is not a finite number", s)
	}
	return &f, nil
}

// normalizeDate accepts YYYY-MM-DD and the M/D/YYYY format of spreadsheet exports.
func normalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	for _, layout := range []string{time.DateOnly, "1/2/2006", "01/02/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(time.DateOnly), nil
		}
	}
	return "", fmt.Errorf("%q is not a date", s)
}

func rowToPileRequest(get func(column string) string) (dtos.PileRequest, error) {
	req := dtos.PileRequest{
		PileNumber: strings.TrimSpace(get("pilenumber")),
		PileID:     strings.TrimSpace(get("pileid")),
		Block:      strings.TrimSpace(get("block")),
		Zone:       strings.TrimSpace(get("zone")),
		PileType:   strings.TrimSpace(get("piletype")),
		PileSize:   strings.TrimSpace(get("pilesize")),
		PileColor:  strings.TrimSpace(get("pilecolor")),
		Machine:    strings.TrimSpace(get("machine")),
		StartTime:  strings.TrimSpace(get("starttime")),
		StopTime:   strings.TrimSpace(get("stoptime")),
		Notes:      strings.TrimSpace(get("notes")),
	}

	floats := []struct {
		column string
		target **float64
	}{
		{"designembedment", &req.DesignEmbedment},
		{"embedment", &req.Embedment},
		{"startz", &req.StartZ},
		{"endz", &req.EndZ},
		{"gainper30seconds", &req.GainPer30Seconds},
		{"latitude", &req.Latitude},
		{"longitude", &req.Longitude},
	}
	for _, f := range floats {
		v, err := parseOptionalFloat(get(f.column))
		if err != nil {
			return req, fmt.Errorf("%s: %w", f.column, err)
		}
		*f.target = v
	}

	startDate, err := normalizeDate(get("startdate"))
	if err != nil {
		return req, fmt.Errorf("startdate: %w", err)
	}
	req.StartDate = startDate

	return req, nil
}

func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		msgs := make([]string, 0, len(validationErrors))
		for _, fe := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
		}
		return strings.Join(msgs, "; ")
	}
	return err.Error()
}

// ParseCSV returns the valid rows and an error per invalid row. Only a broken file returns an error.
// Rows are numbered like in a spreadsheet, the header is row 1.
func (s *importService) ParseCSV(r io.Reader) ([]dtos.PileRequest, []dtos.ImportRowError, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("could not read csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, h := range header {
		if _, exists := columns[normalizeHeader(h)]; !exists {
			columns[normalizeHeader(h)] = i
		}
	}
	if _, ok := columns["pilenumber"]; !ok {
		return nil, nil, ErrMissingPileNumberColumn
	}

	requests := make([]dtos.PileRequest, 0)
	rowErrors := make([]dtos.ImportRowError, 0)
	for row := 2; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("could not read csv row %d: %w", row, err)
		}
		if row-1 > MaxImportRows {
			return nil, nil, fmt.Errorf("the file contains more than %d rows", MaxImportRows)
		}
		if isEmptyRecord(record) {
			continue
		}

		get := func(column string) string {
			i, ok := columns[column]
			if !ok || i >= len(record) {
				return ""
			}
			return record[i]
		}

		req, err := rowToPileRequest(get)
		if err != nil {
			rowErrors = append(rowErrors, dtos.ImportRowError{Row: row, Message: err.Error()})
			continue
		}
		if err := shared.V.Struct(req); err != nil {
			rowErrors = append(rowErrors, dtos.ImportRowError{Row: row, Message: validationMessage(err)})
			continue
		}
		requests = append(requests, req)
	}

	return requests, rowErrors, nil
}

func isEmptyRecord(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func (s *importService) compiledSchema() (*jsonschema.Schema, error) {
	s.schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(pileBulkSchema))
		if err != nil {
			s.schemaErr = err
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(pileBulkSchemaURL, doc); err != nil {
			s.schemaErr = err
			return
		}
		s.schema, s.schemaErr = compiler.Compile(pileBulkSchemaURL)
	})
	return s.schema, s.schemaErr
}

// ParseJSON validates the raw body against the bulk schema before decoding it.
func (s *importService) ParseJSON(raw []byte) ([]dtos.PileRequest, error) {
	schema, err := s.compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("could not compile pile schema: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, err
	}

	var requests []dtos.PileRequest
	if err := json.Unmarshal(raw, &requests); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	for i, req := range requests {
		if err := shared.V.Struct(req); err != nil {
			return nil, fmt.Errorf("pile %d: %s", i, validationMessage(err))
		}
	}
	return requests, nil
}

func formatOptionalFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

// WriteCSV writes the piles in a format ParseCSV reads back.
func (s *importService) WriteCSV(w io.Writer, piles []models.Pile) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvColumns); err != nil {
		return err
	}

	for _, pile := range piles {
		req := transformer.PileModelToRequest(pile)
		duration := ""
		if pile.DurationSeconds != nil {
			duration = strconv.Itoa(*pile.DurationSeconds)
		}
		if err := writer.Write([]string{
			req.PileNumber, req.PileID, req.Block, req.Zone, req.PileType, req.PileSize, req.PileColor, req.Machine,
			formatOptionalFloat(req.DesignEmbedment), formatOptionalFloat(req.Embedment),
			formatOptionalFloat(req.StartZ), formatOptionalFloat(req.EndZ), formatOptionalFloat(req.GainPer30Seconds),
			req.StartDate, req.StartTime, req.StopTime,
			formatOptionalFloat(req.Latitude), formatOptionalFloat(req.Longitude), req.Notes,
			string(pile.Status), duration,
		}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
