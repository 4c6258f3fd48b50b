package seasonality

import (
	"math"
	"slices"
	"strings"

	"github.com/sartorproj/gosynth/errs"
)

// Fields is the loosely typed form of a seasonality configuration as found in
// configuration files. Nil pointers mark absent fields.
type Fields struct {
	PeriodLength *float64
	PeriodSD     *float64
	StartIndex   *int
	Dates        []Window
}

// New builds the variant for style from fields. Fields the style does not
// read are dropped; fields it requires must be present.
func New(style string, f Fields) (Config, error) {
	st, err := ParseStyle(style)
	if err != nil {
		return nil, err
	}
	switch st {
	case StyleFixedError:
		length, sd, start, err := periodicFields(StyleFixedError, f)
		if err != nil {
			return nil, err
		}
		return FixedError{PeriodLength: length, PeriodSD: sd, StartIndex: start}, nil
	case StyleSemiMarkov:
		length, sd, start, err := periodicFields(StyleSemiMarkov, f)
		if err != nil {
			return nil, err
		}
		return SemiMarkov{PeriodLength: length, PeriodSD: sd, StartIndex: start}, nil
	case StyleHoliday:
		if len(f.Dates) == 0 {
			return nil, missing("season_dates", StyleHoliday)
		}
		return Holiday{Windows: append([]Window(nil), f.Dates...)}, nil
	case StyleSin:
		if f.PeriodLength == nil {
			return nil, missing("period_length", StyleSin)
		}
		if f.StartIndex == nil {
			return nil, missing("start_index", StyleSin)
		}
		return Sin{PeriodLength: *f.PeriodLength, StartIndex: *f.StartIndex}, nil
	case StyleSinCovar:
		if f.PeriodLength == nil {
			return nil, missing("period_length", StyleSinCovar)
		}
		if f.PeriodSD == nil {
			return nil, missing("period_sd", StyleSinCovar)
		}
		if f.StartIndex == nil {
			return nil, missing("start_index", StyleSinCovar)
		}
		return SinCovar{PeriodLength: *f.PeriodLength, PeriodSD: *f.PeriodSD, StartIndex: *f.StartIndex}, nil
	}
	return nil, errs.Invalid("season_conf.style", "unknown style %q", style)
}

// ParseStyle returns the style named name, one of Styles.
func ParseStyle(name string) (Style, error) {
	st := Style(strings.TrimSpace(name))
	if !slices.Contains(Styles, st) {
		return "", errs.Invalid("season_conf.style", "unknown style %q, want one of %v", name, Styles)
	}
	return st, nil
}

func periodicFields(style Style, f Fields) (length int, sd float64, start int, err error) {
	switch {
	case f.PeriodLength == nil:
		return 0, 0, 0, missing("period_length", style)
	case f.PeriodSD == nil:
		return 0, 0, 0, missing("period_sd", style)
	case f.StartIndex == nil:
		return 0, 0, 0, missing("start_index", style)
	}
	if *f.PeriodLength != math.Trunc(*f.PeriodLength) {
		return 0, 0, 0, errs.Invalid("season_conf.period_length", "must be a whole number of periods, got %v", *f.PeriodLength)
	}
	return int(*f.PeriodLength), *f.PeriodSD, *f.StartIndex, nil
}

func missing(field string, style Style) error {
	return errs.Invalid("season_conf."+field, "required by style %q", style)
}
