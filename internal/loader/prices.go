package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"dcalab/pkg/model"
)

// ErrMissingColumn is returned when a required CSV column is absent.
var ErrMissingColumn = errors.New("missing required column")

// ErrInsufficientData is returned when fewer than two usable price points
// remain after filtering.
var ErrInsufficientData = errors.New("not enough data points after filtering")

// PriceOptions controls price CSV parsing.
type PriceOptions struct {
	DayFirst     bool // dd/mm/yyyy when true, mm/dd/yyyy otherwise
	TrailingDays int  // keep only dates within this many days of the latest; 0 keeps all
}

// PriceLoad is the result of loading a price CSV: a validated, ascending,
// duplicate-free series plus warnings for every dropped row.
type PriceLoad struct {
	Series   []model.PricePoint
	Warnings []string
}

var dayFirstLayouts = []string{"02/01/2006", "2/1/2006", "02-01-2006", "2006-01-02"}
var monthFirstLayouts = []string{"01/02/2006", "1/2/2006", "01-02-2006", "2006-01-02"}

// LoadPrices reads a price CSV from path. The file needs Date and Close
// columns, matched case-insensitively with surrounding whitespace ignored.
func LoadPrices(path string, opts PriceOptions) (*PriceLoad, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening price file: %w", err)
	}
	defer f.Close()

	return ReadPrices(f, opts)
}

// ReadPrices parses price CSV data from r. Rows with unparseable dates or
// non-positive or non-numeric closes are dropped and reported as warnings;
// the remaining series is sorted ascending, deduplicated by date (first
// occurrence wins), and filtered to the trailing window.
func ReadPrices(r io.Reader, opts PriceOptions) (*PriceLoad, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	dateIdx, ok := cols["date"]
	if !ok {
		return nil, fmt.Errorf("%w: Date", ErrMissingColumn)
	}
	closeIdx, ok := cols["close"]
	if !ok {
		return nil, fmt.Errorf("%w: Close", ErrMissingColumn)
	}

	layouts := monthFirstLayouts
	if opts.DayFirst {
		layouts = dayFirstLayouts
	}

	load := &PriceLoad{}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", line, err)
		}
		if dateIdx >= len(record) || closeIdx >= len(record) {
			load.Warnings = append(load.Warnings, fmt.Sprintf("row %d: too few fields", line))
			continue
		}

		date, ok := parseDate(record[dateIdx], layouts)
		if !ok {
			load.Warnings = append(load.Warnings, fmt.Sprintf("row %d: unparseable date %q", line, record[dateIdx]))
			continue
		}

		close, err := strconv.ParseFloat(strings.TrimSpace(record[closeIdx]), 64)
		if err != nil || math.IsNaN(close) || math.IsInf(close, 0) {
			load.Warnings = append(load.Warnings, fmt.Sprintf("row %d: non-numeric close %q", line, record[closeIdx]))
			continue
		}
		if close <= 0 {
			load.Warnings = append(load.Warnings, fmt.Sprintf("row %d: non-positive close %g", line, close))
			continue
		}

		load.Series = append(load.Series, model.PricePoint{Date: date, Close: close})
	}

	sort.SliceStable(load.Series, func(i, j int) bool {
		return load.Series[i].Date.Before(load.Series[j].Date)
	})
	load.Series = dedupeDates(load.Series, &load.Warnings)

	if opts.TrailingDays > 0 && len(load.Series) > 0 {
		cutoff := load.Series[len(load.Series)-1].Date.AddDate(0, 0, -opts.TrailingDays)
		for len(load.Series) > 0 && load.Series[0].Date.Before(cutoff) {
			load.Series = load.Series[1:]
		}
	}

	if len(load.Series) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientData, len(load.Series))
	}

	return load, nil
}

func parseDate(s string, layouts []string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// dedupeDates drops repeated dates from a sorted series, keeping the first
// occurrence.
func dedupeDates(series []model.PricePoint, warnings *[]string) []model.PricePoint {
	if len(series) < 2 {
		return series
	}
	out := series[:1]
	for _, p := range series[1:] {
		if p.Date.Equal(out[len(out)-1].Date) {
			*warnings = append(*warnings, fmt.Sprintf("duplicate date %s dropped", p.Date.Format("2006-01-02")))
			continue
		}
		out = append(out, p)
	}
	return out
}
