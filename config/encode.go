package config

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/sartorproj/gosynth/generator"
	"github.com/sartorproj/gosynth/seasonality"
)

// FromConfig returns the file form of cfg. Regressors are written inline.
func FromConfig(cfg *generator.Config) *File {
	f := &File{
		Name:            cfg.Name,
		StartDate:       cfg.StartDate.Format(DateFormat),
		Periods:         cfg.Periods,
		TrendMethod:     cfg.TrendMethod.String(),
		AR:              cfg.AR,
		MA:              cfg.MA,
		RandomWalkScale: cfg.RandomWalkScale,
		NoiseScale:      cfg.NoiseScale,
		SeasonEffect:    cfg.SeasonEffect,
		Seed:            cfg.Seed,
		KeepComponents:  cfg.KeepComponents,
	}
	for _, nd := range cfg.Nodes {
		f.InterpolationNodes = append(f.InterpolationNodes, []float64{nd.X, nd.Y})
	}
	for _, b := range cfg.LevelBreaks {
		f.LevelBreaks = append(f.LevelBreaks, []float64{float64(b.Index), b.Magnitude})
	}
	for _, o := range cfg.Outliers {
		f.ManualOutliers = append(f.ManualOutliers, []float64{float64(o.Index), o.Value})
	}
	for _, reg := range cfg.Exogenous {
		f.Exogenous = append(f.Exogenous, Exogenous{Coeff: reg.Coeffs, TS: reg.Series})
	}
	if cfg.Season != nil {
		f.SeasonConf = seasonFields(cfg.Season)
	}
	return f
}

func seasonFields(c seasonality.Config) *Season {
	s := &Season{Style: string(c.Style())}
	switch v := c.(type) {
	case seasonality.FixedError:
		s.PeriodLength, s.PeriodSD, s.StartIndex = ptr(float64(v.PeriodLength)), ptr(v.PeriodSD), ptr(v.StartIndex)
	case seasonality.SemiMarkov:
		s.PeriodLength, s.PeriodSD, s.StartIndex = ptr(float64(v.PeriodLength)), ptr(v.PeriodSD), ptr(v.StartIndex)
	case seasonality.Sin:
		s.PeriodLength, s.StartIndex = ptr(v.PeriodLength), ptr(v.StartIndex)
	case seasonality.SinCovar:
		s.PeriodLength, s.PeriodSD, s.StartIndex = ptr(v.PeriodLength), ptr(v.PeriodSD), ptr(v.StartIndex)
	case seasonality.Holiday:
		for _, w := range v.Windows {
			s.SeasonDates = append(s.SeasonDates, HolidayDate{Date: w.Start.Format(DateFormat), Days: w.Days})
		}
	}
	return s
}

func ptr[T any](v T) *T {
	return &v
}

// Write encodes f as YAML.
func (f *File) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}

const defaultHeader = `# Synthetic time series configuration.
#
# interpolation_nodes: [position, value] pairs; the span must cover [0, n_periods-1]
# level_breaks:        [index, magnitude] steps added from index onwards
# manual_outliers:     [index, value] overrides applied last
# season_conf.style:   fixed+error | semi-markov | holiday | sin | sin_covar
# seed:                omit for a fresh seed on every run
`

// Default renders the default configuration as a commented YAML document.
func Default() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(defaultHeader)
	if err := FromConfig(generator.DefaultConfig()).Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
