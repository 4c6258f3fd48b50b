package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sartorproj/gosynth/errs"
	"github.com/sartorproj/gosynth/timeseries"
)

const (
	formatCSV  = "csv"
	formatJSON = "json"
)

func checkFormat(format string) error {
	if format != formatCSV && format != formatJSON {
		return errs.Invalid("format", "unknown format %q, want csv or json", format)
	}
	return nil
}

// writeSeries encodes one series. CSV carries the component columns when the
// series kept them.
func writeSeries(w io.Writer, s *timeseries.Series, format string) error {
	switch format {
	case formatCSV:
		if s.Components != nil {
			return timeseries.WriteComponentsCSV(w, s)
		}
		return timeseries.WriteCSV(w, s)
	case formatJSON:
		return writeJSON(w, s)
	}
	return checkFormat(format)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

// writeAll writes series to path, or to stdout when path is empty. Several
// CSV series go to numbered files next to path; several JSON series form one
// array.
func writeAll(stdout io.Writer, path string, series []*timeseries.Series, format string) error {
	if len(series) == 1 {
		return writeTo(stdout, path, func(w io.Writer) error {
			return writeSeries(w, series[0], format)
		})
	}
	if format == formatJSON {
		return writeTo(stdout, path, func(w io.Writer) error {
			return writeJSON(w, series)
		})
	}
	if path == "" {
		return errs.Invalid("output", "csv output of %d replicas needs an output path", len(series))
	}
	for i, s := range series {
		err := writeTo(stdout, replicaPath(path, i), func(w io.Writer) error {
			return writeSeries(w, s, format)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeTo(stdout io.Writer, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// replicaPath numbers path from 1: out.csv becomes out_1.csv.
func replicaPath(path string, i int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(path, ext), i+1, ext)
}
