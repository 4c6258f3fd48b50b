package timeseries

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the layout of the Date column written by WriteCSV.
const DateFormat = "2006-01-02"

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	DateColumn  string // Column name for dates (optional)
	ValueColumn string // Column name for values (default: "Value")
	DateFormat  string // Date format (default: "2006-01-02")
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "Value",
		DateFormat:  DateFormat,
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV loads a series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a series from an io.Reader.
//
// Every data row must carry a parseable value: regressors read this way are
// aligned by position with the generated index, so a skipped row would
// silently shift them.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	if reader.Comma == 0 {
		reader.Comma = ','
	}
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	valueIdx, dateIdx := 1, 0
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		valueIdx, dateIdx = -1, -1
		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			switch {
			case h == opts.ValueColumn:
				valueIdx = i
			case opts.DateColumn != "" && h == opts.DateColumn:
				dateIdx = i
			case opts.DateColumn == "" && (h == "Date" || h == "date" || h == "ds"):
				if dateIdx == -1 {
					dateIdx = i
				}
			}
		}
		if valueIdx == -1 {
			return nil, fmt.Errorf("column %q not found in CSV header", opts.ValueColumn)
		}
	}

	layout := opts.DateFormat
	if layout == "" {
		layout = DateFormat
	}

	var values []float64
	var timestamps []time.Time
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row++

		if valueIdx >= len(record) {
			return nil, fmt.Errorf("row %d: missing value column", row)
		}
		valStr := strings.TrimSpace(strings.Trim(record[valueIdx], "\""))
		val, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		values = append(values, val)

		if dateIdx >= 0 && dateIdx < len(record) {
			ts, err := time.Parse(layout, strings.TrimSpace(record[dateIdx]))
			if err == nil {
				timestamps = append(timestamps, ts)
			}
		}
	}

	if len(values) == 0 {
		return nil, errors.New("no data rows found in CSV")
	}

	if len(timestamps) == len(values) {
		return &Series{
			Timestamps: timestamps,
			Values:     values,
		}, nil
	}

	return New(values), nil
}

// WriteCSV writes the series as a two-column Date,Value table.
func WriteCSV(w io.Writer, series *Series) error {
	if len(series.Timestamps) != len(series.Values) {
		return fmt.Errorf("series has %d timestamps for %d values", len(series.Timestamps), len(series.Values))
	}

	writer := bufio.NewWriter(w)
	writer.WriteString("Date,Value\n")
	for i, v := range series.Values {
		writer.WriteString(series.Timestamps[i].Format(DateFormat))
		writer.WriteString(",")
		writer.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		writer.WriteString("\n")
	}
	return writer.Flush()
}

// WriteComponentsCSV writes Date,Value followed by one column per component
// track the series carries, in ComponentNames order.
func WriteComponentsCSV(w io.Writer, series *Series) error {
	if len(series.Timestamps) != len(series.Values) {
		return fmt.Errorf("series has %d timestamps for %d values", len(series.Timestamps), len(series.Values))
	}

	var names []string
	for _, name := range ComponentNames {
		if track, ok := series.Components[name]; ok {
			if len(track) != len(series.Values) {
				return fmt.Errorf("component %s has %d values, expected %d", name, len(track), len(series.Values))
			}
			names = append(names, name)
		}
	}

	writer := bufio.NewWriter(w)
	writer.WriteString("Date,Value")
	for _, name := range names {
		writer.WriteString(",")
		writer.WriteString(name)
	}
	writer.WriteString("\n")
	for i, v := range series.Values {
		writer.WriteString(series.Timestamps[i].Format(DateFormat))
		writer.WriteString(",")
		writer.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		for _, name := range names {
			writer.WriteString(",")
			writer.WriteString(strconv.FormatFloat(series.Components[name][i], 'f', -1, 64))
		}
		writer.WriteString("\n")
	}
	return writer.Flush()
}

// SaveCSV saves the series to a CSV file.
func SaveCSV(series *Series, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WriteCSV(file, series); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
