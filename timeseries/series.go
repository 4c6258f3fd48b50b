// Package timeseries provides the generated series container and its index.
package timeseries

import (
	"math"
	"sort"
	"time"

	"github.com/sartorproj/gosynth/errs"
)

// Epoch is the first date of a series built with New.
var Epoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// Component track names recorded when a generator keeps its stages.
const (
	ComponentTrend  = "trend"
	ComponentARMA   = "arma"
	ComponentSeason = "season"
	ComponentNoise  = "noise"
	ComponentBreaks = "breaks"
)

// ComponentNames lists the component tracks in composition order.
var ComponentNames = []string{ComponentTrend, ComponentARMA, ComponentSeason, ComponentNoise, ComponentBreaks}

// Series is an ordered sequence of (date, value) observations.
type Series struct {
	Timestamps []time.Time           `json:"date"`
	Values     []float64             `json:"value"`
	Name       string                `json:"name,omitempty"`
	Seed       uint64                `json:"seed"`
	Components map[string][]float64 `json:"components,omitempty"`
}

// Record is a single observation of a series.
type Record struct {
	Date  time.Time
	Value float64
}

// DailyIndex returns n consecutive calendar days starting at the date of start.
// The clock part of start is dropped; the location is kept.
func DailyIndex(start time.Time, n int) ([]time.Time, error) {
	if n <= 0 {
		return nil, errs.Invalid("n_periods", "must be positive, got %d", n)
	}
	y, m, d := start.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, start.Location())

	index := make([]time.Time, n)
	for i := range index {
		// AddDate keeps days aligned across DST changes, unlike Add(24h).
		index[i] = day.AddDate(0, 0, i)
	}
	return index, nil
}

// New creates a daily series from values, dated from Epoch.
func New(values []float64) *Series {
	timestamps := make([]time.Time, len(values))
	for i := range timestamps {
		timestamps[i] = Epoch.AddDate(0, 0, i)
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}
}

// NewWithTimestamps creates a series with explicit timestamps.
func NewWithTimestamps(timestamps []time.Time, values []float64) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, errs.Mismatch("values", len(values), len(timestamps))
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}, nil
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Records returns the observations in period order.
func (s *Series) Records() []Record {
	records := make([]Record, len(s.Values))
	for i, v := range s.Values {
		records[i] = Record{Date: s.Timestamps[i], Value: v}
	}
	return records
}

// Component returns the named stage track, or nil when it was not kept.
func (s *Series) Component(name string) []float64 {
	if s.Components == nil {
		return nil
	}
	return s.Components[name]
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.Values {
		sum += v
	}
	return sum / float64(len(s.Values))
}

// Variance calculates the sample variance of the series.
func (s *Series) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	mean := s.Mean()
	sumSq := 0.0
	for _, v := range s.Values {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(s.Values)-1)
}

// Std calculates the standard deviation of the series.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	lo := s.Values[0]
	for _, v := range s.Values[1:] {
		lo = math.Min(lo, v)
	}
	return lo
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	hi := s.Values[0]
	for _, v := range s.Values[1:] {
		hi = math.Max(hi, v)
	}
	return hi
}

// Median returns the median value of the series.
func (s *Series) Median() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Diff returns the first difference of the values.
func (s *Series) Diff() []float64 {
	if len(s.Values) < 2 {
		return []float64{}
	}
	result := make([]float64, len(s.Values)-1)
	for i := 1; i < len(s.Values); i++ {
		result[i-1] = s.Values[i] - s.Values[i-1]
	}
	return result
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)

	var components map[string][]float64
	if s.Components != nil {
		components = make(map[string][]float64, len(s.Components))
		for name, track := range s.Components {
			components[name] = append([]float64(nil), track...)
		}
	}

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
		Seed:       s.Seed,
		Components: components,
	}
}
