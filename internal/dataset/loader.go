// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/raphaelratuczne/teste-outsera/internal/logging"
	"github.com/raphaelratuczne/teste-outsera/internal/metrics"
	"github.com/raphaelratuczne/teste-outsera/internal/models"
)

// Separator is the field delimiter of the awards file.
const Separator = ';'

// ErrDatasetNotFound is returned by Load when the dataset file does not exist.
var ErrDatasetNotFound = errors.New("dataset file not found")

// ErrMissingColumn is returned when the header lacks a required column.
var ErrMissingColumn = errors.New("dataset header is missing a required column")

// Column names recognized in the header row.
const (
	ColumnYear      = "year"
	ColumnTitle     = "title"
	ColumnStudios   = "studios"
	ColumnProducers = "producers"
	ColumnWinner    = "winner"
)

const utf8BOM = "\ufeff"

// Report summarizes a dataset read.
type Report struct {
	// Loaded is the number of rows turned into movies.
	Loaded int

	// Skipped is the number of rows dropped for a non-numeric year or blank title.
	Skipped int
}

// Load reads the dataset file at path.
func Load(path string) ([]models.Movie, Report, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, Report{}, fmt.Errorf("%w: %s", ErrDatasetNotFound, path)
		}
		return nil, Report{}, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logging.Warn().Err(cerr).Str("path", path).Msg("Failed to close dataset file")
		}
	}()

	movies, report, err := Read(f)
	if err != nil {
		return nil, report, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}
	return movies, report, nil
}

// Read parses a semicolon separated awards file. The first row is the
// header; columns are matched by name, case-insensitively, so their order
// does not matter. Rows with a non-numeric year or a blank title are
// skipped and counted in the report instead of failing the read.
func Read(r io.Reader) ([]models.Movie, Report, error) {
	logger := logging.WithComponent("dataset")

	reader := csv.NewReader(r)
	reader.Comma = Separator
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, Report{}, fmt.Errorf("%w: empty file", ErrMissingColumn)
		}
		return nil, Report{}, fmt.Errorf("failed to read header: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, Report{}, err
	}

	var (
		movies = []models.Movie{}
		report Report
	)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, report, fmt.Errorf("failed to read row: %w", err)
		}
		line, _ := reader.FieldPos(0)

		if isBlankRecord(record) {
			continue
		}

		movie, ok := cols.toMovie(record)
		if !ok {
			report.Skipped++
			logger.Warn().
				Int("line", line).
				Strs("row", record).
				Msg("Skipping dataset row with invalid year or title")
			continue
		}
		movies = append(movies, movie)
		report.Loaded++
	}

	metrics.RecordDatasetLoad(report.Loaded, report.Skipped)
	logger.Info().
		Int("loaded", report.Loaded).
		Int("skipped", report.Skipped).
		Msg("Dataset read complete")

	return movies, report, nil
}

// columns holds the index of each known column, -1 when absent.
type columns struct {
	year, title, studios, producers, winner int
}

func mapColumns(header []string) (columns, error) {
	cols := columns{year: -1, title: -1, studios: -1, producers: -1, winner: -1}
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		switch strings.ToLower(strings.TrimSpace(name)) {
		case ColumnYear:
			cols.year = i
		case ColumnTitle:
			cols.title = i
		case ColumnStudios:
			cols.studios = i
		case ColumnProducers:
			cols.producers = i
		case ColumnWinner:
			cols.winner = i
		}
	}

	if cols.year < 0 {
		return cols, fmt.Errorf("%w: %s", ErrMissingColumn, ColumnYear)
	}
	if cols.title < 0 {
		return cols, fmt.Errorf("%w: %s", ErrMissingColumn, ColumnTitle)
	}
	return cols, nil
}

func (c columns) toMovie(record []string) (models.Movie, bool) {
	year, err := strconv.Atoi(field(record, c.year))
	if err != nil {
		return models.Movie{}, false
	}
	title := field(record, c.title)
	if title == "" {
		return models.Movie{}, false
	}

	return models.Movie{
		Year:      year,
		Title:     title,
		Studios:   field(record, c.studios),
		Producers: field(record, c.producers),
		Winner:    strings.EqualFold(field(record, c.winner), "yes"),
	}, true
}

// field returns the trimmed value at idx, or "" when the column is absent
// or the row is short.
func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func isBlankRecord(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
