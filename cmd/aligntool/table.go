package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var errNoColumn = errors.New("column not found")

// table is a CSV file with a header row. Columns are parsed as float64 on
// demand.
type table struct {
	header  map[string]int
	records [][]string
}

func loadTable(path string, delimiter rune) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := readTable(f, delimiter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func readTable(r io.Reader, delimiter rune) (*table, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("missing header row")
	}
	if err != nil {
		return nil, err
	}

	t := &table{header: make(map[string]int, len(header))}
	for i, name := range header {
		t.header[strings.TrimSpace(name)] = i
	}

	t.records, err = reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (t *table) rows() int {
	return len(t.records)
}

func (t *table) column(name string) ([]float64, error) {
	col, ok := t.header[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errNoColumn, name)
	}

	out := make([]float64, len(t.records))
	for i, rec := range t.records {
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[col]), 64)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: %w", name, i+2, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}
