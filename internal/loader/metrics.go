package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"dcalab/pkg/model"
)

// MetricsLoad is the result of loading a company metrics CSV.
type MetricsLoad struct {
	Metrics  []model.CompanyMetrics
	Warnings []string
}

// Accepted header aliases per field, matched after lowercasing and stripping
// spaces, underscores and dashes.
var metricsAliases = map[string][]string{
	"identifier": {"symbol", "ticker", "identifier", "company", "name"},
	"pe":         {"pe", "peratio"},
	"eps":        {"eps"},
	"beta":       {"beta"},
	"market_cap": {"marketcap", "mktcap"},
	"high_52w":   {"high52w", "52whigh", "high52", "52weekhigh"},
	"low_52w":    {"low52w", "52wlow", "low52", "52weeklow"},
	"price":      {"price", "close", "lastprice"},
}

// LoadMetrics reads a company metrics CSV from path.
func LoadMetrics(path string) (*MetricsLoad, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening metrics file: %w", err)
	}
	defer f.Close()

	return ReadMetrics(f)
}

// ReadMetrics parses company metrics CSV data from r. Every required column
// must be present; rows with non-numeric or non-finite values, or with a
// 52-week high below the low, are dropped with a warning. The risk engine
// can assume every surviving row is finite and range-consistent.
func ReadMetrics(r io.Reader) (*MetricsLoad, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[normalizeHeader(name)] = i
	}

	idx := make(map[string]int, len(metricsAliases))
	for field, aliases := range metricsAliases {
		found := -1
		for _, alias := range aliases {
			if i, ok := cols[alias]; ok {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, field)
		}
		idx[field] = found
	}

	load := &MetricsLoad{}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", line, err)
		}

		m, reason := parseMetricsRow(record, idx)
		if reason != "" {
			load.Warnings = append(load.Warnings, fmt.Sprintf("row %d: %s", line, reason))
			continue
		}
		load.Metrics = append(load.Metrics, m)
	}

	return load, nil
}

func parseMetricsRow(record []string, idx map[string]int) (model.CompanyMetrics, string) {
	var m model.CompanyMetrics

	for _, i := range idx {
		if i >= len(record) {
			return m, "too few fields"
		}
	}

	m.Identifier = strings.TrimSpace(record[idx["identifier"]])
	if m.Identifier == "" {
		return m, "empty identifier"
	}

	fields := []struct {
		name string
		dst  *float64
	}{
		{"pe", &m.PE},
		{"eps", &m.EPS},
		{"beta", &m.Beta},
		{"market_cap", &m.MarketCap},
		{"high_52w", &m.High52w},
		{"low_52w", &m.Low52w},
		{"price", &m.Price},
	}
	for _, f := range fields {
		raw := strings.TrimSpace(record[idx[f.name]])
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return m, fmt.Sprintf("%s: non-numeric value %q", f.name, raw)
		}
		*f.dst = v
	}

	if m.High52w < m.Low52w {
		return m, fmt.Sprintf("52-week high %g below low %g", m.High52w, m.Low52w)
	}

	return m, ""
}

func normalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(s)
}
