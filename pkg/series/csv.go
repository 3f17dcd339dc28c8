package series

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNoSeries is returned when a CSV header names no y columns.
var ErrNoSeries = errors.New("csv header has no series columns")

// ReadCSV reads series from r.
//
// The first record is a header: the x column followed by one column per
// series, whose header cell becomes the series name. Each following record
// holds an x value and one y value per series. An empty y cell leaves that
// series without a sample at this x.
func ReadCSV(r io.Reader) ([]Series, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("failed to read csv header: %w", io.ErrUnexpectedEOF)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	if len(header) < 2 {
		return nil, ErrNoSeries
	}

	out := make([]Series, len(header)-1)
	for i := range out {
		out[i].Name = strings.TrimSpace(header[i+1])
	}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv record: %w", err)
		}
		line, _ := cr.FieldPos(0)

		x, err := parseCell(record[0])
		if err != nil {
			return nil, fmt.Errorf("line %d, column x: %w", line, err)
		}

		for i := range out {
			col := i + 1
			if col >= len(record) || strings.TrimSpace(record[col]) == "" {
				continue
			}
			y, err := parseCell(record[col])
			if err != nil {
				return nil, fmt.Errorf("line %d, column %q: %w", line, out[i].Name, err)
			}
			out[i].X = append(out[i].X, x)
			out[i].Y = append(out[i].Y, y)
		}
	}

	return out, nil
}

// WriteCSV writes each series as rows of name, x, y.
func WriteCSV(w io.Writer, series ...Series) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"series", "x", "y"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, s := range series {
		for i := 0; i < min(len(s.X), len(s.Y)); i++ {
			record := []string{
				s.Name,
				strconv.FormatFloat(s.X[i], 'g', -1, 64),
				strconv.FormatFloat(s.Y[i], 'g', -1, 64),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write csv record: %w", err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func parseCell(cell string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", cell, err)
	}
	return v, nil
}
