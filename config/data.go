package config

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var ErrColumn = errors.New("invalid column")

// Table is the content of a CSV file. The first line is the header.
type Table struct {
	Header []string
	Rows   [][]string
}

func ReadTable(file string) (*Table, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	t, err := DecodeTable(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return t, nil
}

func DecodeTable(r io.Reader) (*Table, error) {
	var (
		rs = csv.NewReader(r)
		t  Table
	)
	rs.FieldsPerRecord = -1
	rs.TrimLeadingSpace = true
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if t.Header == nil {
			t.Header = row
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	return &t, nil
}

func (t *Table) Strings(col int) ([]string, error) {
	if col < 0 || col >= len(t.Header) {
		return nil, fmt.Errorf("%w: %d", ErrColumn, col)
	}
	list := make([]string, 0, len(t.Rows))
	for i, row := range t.Rows {
		if col >= len(row) {
			return nil, fmt.Errorf("row %d: %w: %d", i+1, ErrColumn, col)
		}
		list = append(list, strings.TrimSpace(row[col]))
	}
	return list, nil
}

func (t *Table) Floats(col int) ([]float64, error) {
	values, err := t.Strings(col)
	if err != nil {
		return nil, err
	}
	list := make([]float64, len(values))
	for i, v := range values {
		list[i], err = strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return list, nil
}
