package generator

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gosynth/arma"
	"github.com/sartorproj/gosynth/errs"
	"github.com/sartorproj/gosynth/seasonality"
	"github.com/sartorproj/gosynth/timeseries"
	"github.com/sartorproj/gosynth/trend"
)

var start = time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

func quietGenerator() *Generator {
	return New(WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
}

// lineConfig is a four period straight line with every stochastic stage off.
func lineConfig() *Config {
	return &Config{
		StartDate: start,
		Periods:   4,
		Nodes:     []trend.Node{{X: 0, Y: 0}, {X: 1, Y: 100}, {X: 2, Y: 200}, {X: 3, Y: 300}},
		Seed:      Seed(1),
	}
}

// noisyConfig switches on every additive stage.
func noisyConfig() *Config {
	cfg := DefaultConfig()
	cfg.Periods = 365
	cfg.Nodes = []trend.Node{{X: 0, Y: 98}, {X: 120, Y: 92}, {X: 250, Y: 190}, {X: 364, Y: 213}}
	cfg.LevelBreaks = []LevelBreak{{Index: 100, Magnitude: 30}}
	cfg.MA = []float64{0.3}
	cfg.SeasonEffect = 15
	cfg.Season = seasonality.Sin{PeriodLength: 7, StartIndex: 4}
	cfg.Seed = Seed(42)
	return cfg
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		expected []float64
	}{
		{"straight line", func(*Config) {}, []float64{0, 100, 200, 300}},
		{"outlier", func(c *Config) { c.Outliers = []Outlier{{Index: 2, Value: 999}} }, []float64{0, 100, 999, 300}},
		{"level break", func(c *Config) { c.LevelBreaks = []LevelBreak{{Index: 2, Magnitude: 50}} }, []float64{0, 100, 250, 350}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := lineConfig()
			tt.mutate(cfg)

			series, err := quietGenerator().Generate(cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, series.Values)
			assert.Equal(t, []time.Time{start, start.AddDate(0, 0, 1), start.AddDate(0, 0, 2), start.AddDate(0, 0, 3)}, series.Timestamps)
		})
	}
}

func TestDeterminism(t *testing.T) {
	g := quietGenerator()
	a, err := g.Generate(noisyConfig())
	require.NoError(t, err)
	b, err := g.Generate(noisyConfig())
	require.NoError(t, err)

	assert.Equal(t, a.Values, b.Values)
	assert.Equal(t, a.Timestamps, b.Timestamps)

	c, err := g.Generate(noisyConfig().WithSeed(43))
	require.NoError(t, err)
	assert.NotEqual(t, a.Values, c.Values)
}

func TestUnsetSeedIsReported(t *testing.T) {
	cfg := noisyConfig()
	cfg.Seed = nil

	first, err := quietGenerator().Generate(cfg)
	require.NoError(t, err)

	again, err := quietGenerator().Generate(cfg.WithSeed(first.Seed))
	require.NoError(t, err)
	assert.Equal(t, first.Values, again.Values)
}

func TestStraightLineExactness(t *testing.T) {
	// Colinear nodes on y = 10 + 2.5x, given out of order.
	cfg := &Config{
		StartDate: start,
		Periods:   50,
		Nodes:     []trend.Node{{X: 49, Y: 132.5}, {X: 0, Y: 10}, {X: 20, Y: 60}},
		Seed:      Seed(7),
	}

	series, err := quietGenerator().Generate(cfg)
	require.NoError(t, err)
	for i, v := range series.Values {
		assert.Equal(t, 10+2.5*float64(i), v, "index %d", i)
	}
}

func TestZeroEffectRemovesVariance(t *testing.T) {
	cfg := noisyConfig()
	cfg.RandomWalkScale = 0
	cfg.NoiseScale = 0
	cfg.SeasonEffect = 0
	cfg.Season = nil
	cfg.LevelBreaks = nil
	cfg.KeepComponents = true

	series, err := quietGenerator().Generate(cfg)
	require.NoError(t, err)

	zeros := make([]float64, cfg.Periods)
	assert.Equal(t, zeros, series.Component(timeseries.ComponentARMA))
	assert.Equal(t, zeros, series.Component(timeseries.ComponentSeason))
	assert.Equal(t, zeros, series.Component(timeseries.ComponentNoise))
	assert.Equal(t, series.Component(timeseries.ComponentTrend), series.Values)

	residual := make([]float64, cfg.Periods)
	for i := range residual {
		residual[i] = series.Values[i] - series.Component(timeseries.ComponentTrend)[i]
	}
	assert.Equal(t, 0.0, timeseries.New(residual).Variance())
}

func TestOutlierOverridesEveryStage(t *testing.T) {
	cfg := noisyConfig()
	cfg.Outliers = []Outlier{{Index: 0, Value: -1}, {Index: 150, Value: 999}, {Index: 364, Value: 0}, {Index: 150, Value: 1234.5}}

	series, err := quietGenerator().Generate(cfg)
	require.NoError(t, err)

	assert.Equal(t, -1.0, series.Values[0])
	assert.Equal(t, 1234.5, series.Values[150])
	assert.Equal(t, 0.0, series.Values[364])
}

func TestLevelBreakPersistence(t *testing.T) {
	base := noisyConfig()
	base.LevelBreaks = nil
	baseline, err := quietGenerator().Generate(base)
	require.NoError(t, err)

	shifted := noisyConfig()
	shifted.LevelBreaks = []LevelBreak{{Index: 200, Magnitude: 75}}
	series, err := quietGenerator().Generate(shifted)
	require.NoError(t, err)

	for i := range series.Values {
		want := baseline.Values[i]
		if i >= 200 {
			want += 75
		}
		assert.Equal(t, want, series.Values[i], "index %d", i)
	}
}

func TestLevelBreaksAccumulate(t *testing.T) {
	shifts, err := LevelShifts(6, []LevelBreak{{Index: 1, Magnitude: 10}, {Index: 3, Magnitude: -4}, {Index: 3, Magnitude: 1}})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 10, 10, 7, 7, 7}, shifts)
}

func TestStagesDrawIndependently(t *testing.T) {
	quiet := noisyConfig()
	quiet.KeepComponents = true
	loud := noisyConfig()
	loud.KeepComponents = true
	loud.NoiseScale = 50

	a, err := quietGenerator().Generate(quiet)
	require.NoError(t, err)
	b, err := quietGenerator().Generate(loud)
	require.NoError(t, err)

	assert.Equal(t, a.Component(timeseries.ComponentARMA), b.Component(timeseries.ComponentARMA))
	assert.NotEqual(t, a.Component(timeseries.ComponentNoise), b.Component(timeseries.ComponentNoise))
}

func TestARMAStageMatchesStandalone(t *testing.T) {
	cfg := noisyConfig()
	cfg.KeepComponents = true

	series, err := quietGenerator().Generate(cfg)
	require.NoError(t, err)

	standalone, err := arma.Generate(cfg.AR, cfg.MA, cfg.RandomWalkScale, cfg.Periods, *cfg.Seed)
	require.NoError(t, err)
	assert.Equal(t, standalone, series.Component(timeseries.ComponentARMA))
}

func TestConfigIsNotMutated(t *testing.T) {
	cfg := noisyConfig()
	cfg.Nodes = []trend.Node{{X: 364, Y: 213}, {X: 0, Y: 98}, {X: 120, Y: 92}}
	before := *cfg
	nodes := append([]trend.Node(nil), cfg.Nodes...)

	_, err := quietGenerator().Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, before, *cfg)
	assert.Equal(t, nodes, cfg.Nodes)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		kind   error
		field  string
	}{
		{"no periods", func(c *Config) { c.Periods = 0 }, errs.ErrInvalidConfiguration, "n_periods"},
		{"no start", func(c *Config) { c.StartDate = time.Time{} }, errs.ErrInvalidConfiguration, "start_date"},
		{"one node", func(c *Config) { c.Nodes = c.Nodes[:1] }, errs.ErrInvalidConfiguration, "interpolation_nodes"},
		{"duplicate nodes", func(c *Config) { c.Nodes[1].X = 0 }, errs.ErrInvalidConfiguration, "interpolation_nodes"},
		{"short span", func(c *Config) { c.Periods = 5 }, errs.ErrInvalidConfiguration, "interpolation_nodes"},
		{"negative walk", func(c *Config) { c.RandomWalkScale = -1 }, errs.ErrInvalidConfiguration, "randomwalk_scale"},
		{"negative noise", func(c *Config) { c.NoiseScale = -0.1 }, errs.ErrInvalidConfiguration, "noise_scale"},
		{"season without effect", func(c *Config) { c.Season = seasonality.Sin{PeriodLength: 7} }, errs.ErrInvalidConfiguration, "season_eff"},
		{"effect without season", func(c *Config) { c.SeasonEffect = 0.15 }, errs.ErrInvalidConfiguration, "season_conf"},
		{"outlier past end", func(c *Config) { c.Outliers = []Outlier{{Index: 4, Value: 1}} }, errs.ErrOutOfRangeIndex, "manual_outliers[0].index"},
		{"negative break", func(c *Config) { c.LevelBreaks = []LevelBreak{{Index: 1, Magnitude: 1}, {Index: -1, Magnitude: 1}} }, errs.ErrOutOfRangeIndex, "level_breaks[1].index"},
		{"nan outlier", func(c *Config) { c.Outliers = []Outlier{{Index: 1, Value: math.NaN()}} }, errs.ErrInvalidConfiguration, "manual_outliers[0].value"},
		{"short exogenous", func(c *Config) {
			c.Exogenous = []arma.Regressor{{Coeffs: []float64{1}, Series: []float64{1, 2, 3}}}
		}, errs.ErrDimensionMismatch, "exogenous[0].series"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := lineConfig()
			tt.mutate(cfg)

			series, err := quietGenerator().Generate(cfg)
			assert.Nil(t, series)
			assert.ErrorIs(t, err, tt.kind)
			assert.Equal(t, tt.field, errs.Field(err))
		})
	}

	assert.ErrorIs(t, Validate(nil), errs.ErrInvalidConfiguration)
}

func TestExogenousRegressorEntersSeries(t *testing.T) {
	cfg := lineConfig()
	cfg.KeepComponents = true
	cfg.Exogenous = []arma.Regressor{{Coeffs: []float64{10}, Series: []float64{1, 0, 0, 2}}}

	series, err := quietGenerator().Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 100, 200, 320}, series.Values)
}

func TestKeepComponents(t *testing.T) {
	cfg := noisyConfig()
	cfg.KeepComponents = true
	cfg.Outliers = []Outlier{{Index: 10, Value: 0}}

	series, err := quietGenerator().Generate(cfg)
	require.NoError(t, err)
	for i := range series.Values {
		if i == 10 {
			continue
		}
		sum := series.Component(timeseries.ComponentTrend)[i] +
			series.Component(timeseries.ComponentARMA)[i] +
			series.Component(timeseries.ComponentSeason)[i] +
			series.Component(timeseries.ComponentNoise)[i] +
			series.Component(timeseries.ComponentBreaks)[i]
		assert.Equal(t, sum, series.Values[i], "index %d", i)
	}
	assert.Equal(t, 0.0, series.Values[10])

	cfg.KeepComponents = false
	series, err = quietGenerator().Generate(cfg)
	require.NoError(t, err)
	assert.Nil(t, series.Components)
}

func TestNoise(t *testing.T) {
	noise, err := Noise(3, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, noise)

	_, err = Noise(3, -1, nil)
	assert.ErrorIs(t, err, errs.ErrInvalidConfiguration)
}

func TestApplyOutliersRange(t *testing.T) {
	err := ApplyOutliers(make([]float64, 3), []Outlier{{Index: 3, Value: 1}})
	assert.ErrorIs(t, err, errs.ErrOutOfRangeIndex)
	assert.Equal(t, "manual_outliers[0].index", errs.Field(err))
}

func TestGenerateAll(t *testing.T) {
	g := quietGenerator()
	var cfgs []*Config
	for seed := uint64(1); seed <= 8; seed++ {
		cfgs = append(cfgs, noisyConfig().WithSeed(seed))
	}

	parallel, err := g.GenerateAll(context.Background(), cfgs, 3)
	require.NoError(t, err)
	require.Len(t, parallel, len(cfgs))

	for i, cfg := range cfgs {
		sequential, err := g.Generate(cfg)
		require.NoError(t, err)
		assert.Equal(t, sequential.Values, parallel[i].Values, "config %d", i)
		assert.Equal(t, *cfg.Seed, parallel[i].Seed)
	}
}

func TestGenerateAllStopsOnError(t *testing.T) {
	bad := lineConfig()
	bad.Periods = -1

	_, err := quietGenerator().GenerateAll(context.Background(), []*Config{lineConfig(), bad}, 0)
	assert.ErrorIs(t, err, errs.ErrInvalidConfiguration)
}

func TestGeneratorLogsStages(t *testing.T) {
	var buf bytes.Buffer
	g := New(WithLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))))

	cfg := noisyConfig()
	cfg.Name = "sales"
	_, err := g.Generate(cfg)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "stage=trend")
	assert.Contains(t, out, "stage=arma")
	assert.Contains(t, out, "order=ARMA(1,1)")
	assert.Contains(t, out, "style=sin")
	assert.Contains(t, out, "series=sales")
	assert.Contains(t, out, "seed=42")
	assert.Contains(t, out, "stage=noise")
	assert.Contains(t, out, "stage=breaks")
	assert.Equal(t, 5, strings.Count(out, "stage complete"))
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		assert.Contains(t, line, "n_periods=")
	}
	assert.Equal(t, 1, strings.Count(out, "series generated"))
}

func TestGeneratorLogsSkippedSeason(t *testing.T) {
	var buf bytes.Buffer
	g := New(WithLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))))

	_, err := g.Generate(lineConfig())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "stage=season style=none")
	assert.Contains(t, out, "n_periods=4")
	assert.Equal(t, 5, strings.Count(out, "stage complete"))
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, Validate(cfg))

	series, err := quietGenerator().Generate(cfg.WithSeed(2019))
	require.NoError(t, err)
	assert.Equal(t, 1096, series.Len())
	assert.Equal(t, time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC), series.Timestamps[1095])
}
