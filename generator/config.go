package generator

import (
	"time"

	"github.com/sartorproj/gosynth/arma"
	"github.com/sartorproj/gosynth/seasonality"
	"github.com/sartorproj/gosynth/trend"
)

// LevelBreak adds Magnitude to every period at or after Index.
type LevelBreak struct {
	Index     int
	Magnitude float64
}

// Outlier replaces the composed value at Index with Value.
type Outlier struct {
	Index int
	Value float64
}

// Config holds every input of one generation call. The generator only reads
// it; a Config may be reused across calls and goroutines.
type Config struct {
	Name        string
	StartDate   time.Time
	Periods     int
	Nodes       []trend.Node
	TrendMethod trend.Method

	LevelBreaks []LevelBreak
	Outliers    []Outlier

	AR              []float64 // AR coefficients (phi)
	MA              []float64 // MA coefficients (theta)
	Exogenous       []arma.Regressor
	RandomWalkScale float64

	SeasonEffect float64
	Season       seasonality.Config // nil for no seasonality

	NoiseScale float64

	// Seed fixes the pseudo-random draws. Nil draws a fresh seed, reported
	// on the returned series.
	Seed *uint64

	// KeepComponents records the additive stage tracks on the series.
	KeepComponents bool
}

// Seed returns a pointer to s, for filling Config.Seed.
func Seed(s uint64) *uint64 {
	return &s
}

// DefaultConfig returns a three-year daily series with a cubic trend, two
// level breaks, a random walk and noise.
func DefaultConfig() *Config {
	return &Config{
		StartDate: time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC),
		Periods:   1096,
		Nodes: []trend.Node{
			{X: 0, Y: 98},
			{X: 300, Y: 92},
			{X: 700, Y: 190},
			{X: 1096, Y: 213},
		},
		TrendMethod: trend.Spline,
		LevelBreaks: []LevelBreak{
			{Index: 250, Magnitude: 100},
			{Index: 650, Magnitude: -50},
		},
		AR:              []float64{1},
		RandomWalkScale: 2,
		NoiseScale:      10,
	}
}

func (c *Config) process() *arma.Process {
	return &arma.Process{
		AR:        c.AR,
		MA:        c.MA,
		Scale:     c.RandomWalkScale,
		Exogenous: c.Exogenous,
	}
}

// WithSeed returns a copy of c drawing from seed. Slices are shared with c.
func (c *Config) WithSeed(seed uint64) *Config {
	cp := *c
	cp.Seed = &seed
	return &cp
}
