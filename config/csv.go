package config

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/midbel/xychart"
)

var timeFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ReadCSV reads the rows of file. The first row gives the names of the
// columns.
func ReadCSV(file string) ([]xychart.Datum, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := readRows(r)
	if err != nil {
		return nil, FileError{File: file, Err: err}
	}
	return data, nil
}

func readRows(r io.Reader) ([]xychart.Datum, error) {
	rs := csv.NewReader(r)
	rs.TrimLeadingSpace = true

	header, err := rs.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("missing header")
		}
		return nil, err
	}
	var data []xychart.Datum
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		d := make(xychart.Datum, len(header))
		for i, name := range header {
			d[name] = parseCell(row[i])
		}
		data = append(data, d)
	}
	return data, nil
}

// parseCell gives a number, a time or the cell itself. An empty cell is
// null.
func parseCell(str string) any {
	str = strings.TrimSpace(str)
	if str == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(str, 64); err == nil {
		return f
	}
	for _, layout := range timeFormats {
		if t, err := time.Parse(layout, str); err == nil {
			return t
		}
	}
	return str
}
