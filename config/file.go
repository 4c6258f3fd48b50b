package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/sartorproj/gosynth/arma"
	"github.com/sartorproj/gosynth/errs"
	"github.com/sartorproj/gosynth/generator"
	"github.com/sartorproj/gosynth/seasonality"
	"github.com/sartorproj/gosynth/timeseries"
	"github.com/sartorproj/gosynth/trend"
)

// DateFormat is the layout of every date in a configuration file.
const DateFormat = "2006-01-02"

// File is the on-disk form of a generator.Config. Pairs such as nodes,
// breaks and outliers are written as two-element lists.
type File struct {
	Name               string      `yaml:"name,omitempty"`
	StartDate          string      `yaml:"start_date" validate:"required,datetime=2006-01-02"`
	Periods            int         `yaml:"n_periods" validate:"required,gt=0"`
	TrendMethod        string      `yaml:"trend_method,omitempty" validate:"omitempty,trend_method"`
	InterpolationNodes [][]float64 `yaml:"interpolation_nodes,flow" validate:"required,min=2,dive,len=2"`
	LevelBreaks        [][]float64 `yaml:"level_breaks,flow,omitempty" validate:"omitempty,dive,len=2"`
	ManualOutliers     [][]float64 `yaml:"manual_outliers,flow,omitempty" validate:"omitempty,dive,len=2"`
	AR                 []float64   `yaml:"ar,flow,omitempty"`
	MA                 []float64   `yaml:"ma,flow,omitempty"`
	Exogenous          []Exogenous `yaml:"exogenous,omitempty" validate:"omitempty,dive"`
	RandomWalkScale    float64     `yaml:"randomwalk_scale" validate:"gte=0"`
	NoiseScale         float64     `yaml:"noise_scale" validate:"gte=0"`
	SeasonEffect       float64     `yaml:"season_eff"`
	SeasonConf         *Season     `yaml:"season_conf,omitempty"`
	Seed               *uint64     `yaml:"seed,omitempty"`
	KeepComponents     bool        `yaml:"keep_components,omitempty"`
}

// Exogenous is a regressor given inline (ts) or as a CSV column.
type Exogenous struct {
	Coeff  []float64 `yaml:"coeff,flow" validate:"required,min=1"`
	TS     []float64 `yaml:"ts,flow,omitempty" validate:"required_without=CSV"`
	CSV    string    `yaml:"csv,omitempty" validate:"required_without=TS"`
	Column string    `yaml:"column,omitempty"`
}

// Season is the flat form of a seasonality configuration. Only the fields
// of the chosen style are read.
type Season struct {
	Style        string        `yaml:"style" validate:"required,season_style"`
	PeriodLength *float64      `yaml:"period_length,omitempty"`
	PeriodSD     *float64      `yaml:"period_sd,omitempty"`
	StartIndex   *int          `yaml:"start_index,omitempty"`
	SeasonDates  []HolidayDate `yaml:"season_dates,omitempty" validate:"omitempty,dive"`
}

// HolidayDate is a holiday window; zero days means a single day.
type HolidayDate struct {
	Date string `yaml:"date" validate:"required,datetime=2006-01-02"`
	Days int    `yaml:"days,omitempty" validate:"gte=0"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report yaml keys instead of Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Names are checked by the parsers that convert them later, so the two
	// never disagree.
	v.RegisterValidation("trend_method", func(fl validator.FieldLevel) bool {
		_, err := trend.ParseMethod(fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("season_style", func(fl validator.FieldLevel) bool {
		_, err := seasonality.ParseStyle(fl.Field().String())
		return err == nil
	})
	return v
}

// Load reads and converts the configuration file at path. CSV regressors are
// resolved relative to the file's directory.
func Load(path string) (*generator.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	f, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg, err := f.Config(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and shape-checks a YAML document. Unknown keys are rejected.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errs.Invalid("", "empty configuration")
		}
		return nil, errs.Invalid("", "%v", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate runs the struct tag checks.
func (f *File) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errs.Invalid("", "%v", err)
	}
	fe := verrs[0]
	field := strings.TrimPrefix(fe.Namespace(), "File.")
	switch fe.Tag() {
	case "trend_method":
		_, err := trend.ParseMethod(fmt.Sprint(fe.Value()))
		return err
	case "season_style":
		_, err := seasonality.ParseStyle(fmt.Sprint(fe.Value()))
		return err
	}
	if fe.Param() != "" {
		return errs.Invalid(field, "failed %q check (%s), got %v", fe.Tag(), fe.Param(), fe.Value())
	}
	return errs.Invalid(field, "failed %q check, got %v", fe.Tag(), fe.Value())
}

// Config converts the file into a generator.Config. baseDir anchors relative
// CSV paths.
func (f *File) Config(baseDir string) (*generator.Config, error) {
	start, err := time.Parse(DateFormat, f.StartDate)
	if err != nil {
		return nil, errs.Invalid("start_date", "%v", err)
	}
	method, err := trend.ParseMethod(f.TrendMethod)
	if err != nil {
		return nil, err
	}

	cfg := &generator.Config{
		Name:            f.Name,
		StartDate:       start,
		Periods:         f.Periods,
		TrendMethod:     method,
		AR:              f.AR,
		MA:              f.MA,
		RandomWalkScale: f.RandomWalkScale,
		NoiseScale:      f.NoiseScale,
		SeasonEffect:    f.SeasonEffect,
		Seed:            f.Seed,
		KeepComponents:  f.KeepComponents,
	}

	for _, pair := range f.InterpolationNodes {
		cfg.Nodes = append(cfg.Nodes, trend.Node{X: pair[0], Y: pair[1]})
	}
	for i, pair := range f.LevelBreaks {
		idx, err := index(fmt.Sprintf("level_breaks[%d]", i), pair[0])
		if err != nil {
			return nil, err
		}
		cfg.LevelBreaks = append(cfg.LevelBreaks, generator.LevelBreak{Index: idx, Magnitude: pair[1]})
	}
	for i, pair := range f.ManualOutliers {
		idx, err := index(fmt.Sprintf("manual_outliers[%d]", i), pair[0])
		if err != nil {
			return nil, err
		}
		cfg.Outliers = append(cfg.Outliers, generator.Outlier{Index: idx, Value: pair[1]})
	}

	for i, ex := range f.Exogenous {
		reg, err := ex.regressor(fmt.Sprintf("exogenous[%d]", i), baseDir)
		if err != nil {
			return nil, err
		}
		cfg.Exogenous = append(cfg.Exogenous, reg)
	}

	if f.SeasonConf != nil {
		season, err := f.SeasonConf.variant()
		if err != nil {
			return nil, err
		}
		cfg.Season = season
	}
	return cfg, nil
}

func index(field string, v float64) (int, error) {
	if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0, errs.Invalid(field+".index", "must be an integer, got %v", v)
	}
	return int(v), nil
}

func (e Exogenous) regressor(field, baseDir string) (arma.Regressor, error) {
	reg := arma.Regressor{Coeffs: e.Coeff, Series: e.TS}
	if e.CSV == "" {
		return reg, nil
	}
	if len(e.TS) > 0 {
		return reg, errs.Invalid(field, "set either ts or csv, not both")
	}

	path := e.CSV
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	opts := timeseries.DefaultCSVOptions()
	if e.Column != "" {
		opts.ValueColumn = e.Column
	}
	series, err := timeseries.LoadCSV(path, opts)
	if err != nil {
		return reg, errs.Invalid(field+".csv", "%v", err)
	}
	reg.Series = series.Values
	return reg, nil
}

func (s *Season) variant() (seasonality.Config, error) {
	fields := seasonality.Fields{
		PeriodLength: s.PeriodLength,
		PeriodSD:     s.PeriodSD,
		StartIndex:   s.StartIndex,
	}
	for i, hd := range s.SeasonDates {
		day, err := time.Parse(DateFormat, hd.Date)
		if err != nil {
			return nil, errs.Invalid(fmt.Sprintf("season_conf.season_dates[%d].date", i), "%v", err)
		}
		fields.Dates = append(fields.Dates, seasonality.Window{Start: day, Days: max(hd.Days, 1)})
	}
	return seasonality.New(s.Style, fields)
}
