// Package data contains named data columns used to train scales.
package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Columns maps a variable name to its values. Missing values are NaN.
type Columns map[string][]float64

// Names returns the column names of c in lexical order.
func (c Columns) Names() []string {
	names := make([]string, 0, len(c))
	for n := range c {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Range returns the minimum and maximum non-NaN value of the named column.
// The result is (NaN, NaN) if the column is missing or has no values.
func (c Columns) Range(name string) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, v := range c[name] {
		if math.IsNaN(v) {
			continue
		}
		min, max = math.Min(min, v), math.Max(max, v)
	}
	if math.IsInf(min, 1) {
		return math.NaN(), math.NaN()
	}
	return min, max
}

// ReadCSV reads comma separated values with a header line. Every header
// field becomes a column; fields which do not parse as numbers become NaN.
// The column names are returned in header order. Surrounding space is
// trimmed from names and empty names become col1, col2 and so on.
func ReadCSV(r io.Reader) (Columns, []string, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("data: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("data: missing header line")
	}

	header := records[0]
	cols := make(Columns, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			h = "col" + strconv.Itoa(i+1)
		}
		if _, dup := cols[h]; dup {
			return nil, nil, fmt.Errorf("data: duplicate column %q", h)
		}
		header[i] = h
		cols[h] = make([]float64, 0, len(records)-1)
	}
	for _, rec := range records[1:] {
		for i, h := range header {
			v := math.NaN()
			if i < len(rec) {
				if f, err := strconv.ParseFloat(strings.TrimSpace(rec[i]), 64); err == nil {
					v = f
				}
			}
			cols[h] = append(cols[h], v)
		}
	}
	return cols, header, nil
}
