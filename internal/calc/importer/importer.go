// Package importer reads trial sheets and sieve weights from xlsx workbooks.
package importer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"Civilcalc/internal/calc/sieve"
	"Civilcalc/internal/numeric"

	"github.com/xuri/excelize/v2"
)

var ErrEmptySheet = errors.New("empty sheet")

func firstSheetRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}
	return rows, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// ReadTrials expects a header row of field keys followed by one trial per row.
// Blank rows are skipped; missing cells read as blank fields.
func ReadTrials(r io.Reader) ([]numeric.Fields, error) {
	rows, err := firstSheetRows(r)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrEmptySheet
	}
	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var trials []numeric.Fields
	for _, row := range rows[1:] {
		if blank(row) {
			continue
		}
		fields := numeric.Fields{}
		for i, key := range header {
			if key == "" {
				continue
			}
			if i < len(row) {
				fields[key] = strings.TrimSpace(row[i])
			} else {
				fields[key] = ""
			}
		}
		trials = append(trials, fields)
	}
	if len(trials) == 0 {
		return nil, ErrEmptySheet
	}
	return trials, nil
}

// ReadRetained reads sieve labels from column A and retained weights from
// column B. A row labelled "total" carries the sample total weight, and a
// leading "sieve" header row is ignored.
func ReadRetained(r io.Reader) (sieve.Input, error) {
	rows, err := firstSheetRows(r)
	if err != nil {
		return sieve.Input{}, err
	}
	in := sieve.Input{Retained: numeric.Fields{}}
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		label := strings.TrimSpace(row[0])
		value := ""
		if len(row) > 1 {
			value = strings.TrimSpace(row[1])
		}
		switch strings.ToLower(label) {
		case "", "sieve", "sieve size":
			continue
		case "total", "total weight":
			in.TotalWeight = numeric.Raw(value)
		default:
			in.Retained[label] = value
		}
	}
	if len(in.Retained) == 0 && in.TotalWeight == "" {
		return sieve.Input{}, ErrEmptySheet
	}
	return in, nil
}
