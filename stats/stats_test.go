package stats

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gosynth/arma"
	"github.com/sartorproj/gosynth/errs"
	"github.com/sartorproj/gosynth/timeseries"
)

func TestACF(t *testing.T) {
	acf := ACF([]float64{1, 2, 3, 4, 5}, 2)
	require.Len(t, acf, 3)
	assert.InDelta(t, 1.0, acf[0], 1e-12)
	assert.InDelta(t, 0.4, acf[1], 1e-12)
	assert.InDelta(t, -0.1, acf[2], 1e-12)
}

func TestACFEdgeCases(t *testing.T) {
	assert.Nil(t, ACF([]float64{3, 3, 3}, 2), "constant series")
	assert.Nil(t, ACF(nil, 2), "empty series")
	assert.Len(t, ACF([]float64{1, 2, 4}, 10), 3, "lags capped at n-1")
}

func TestACFDecaysForAR1(t *testing.T) {
	values, err := arma.Generate([]float64{0.8}, nil, 1, 2000, 11)
	require.NoError(t, err)

	acf := ACF(values, 3)
	assert.InDelta(t, 0.8, acf[1], 0.1)
	assert.InDelta(t, 0.64, acf[2], 0.12)
}

func TestSignificantLags(t *testing.T) {
	acf := []float64{1, 0.5, 0.05, -0.3, 0.1}
	assert.Equal(t, []int{1, 3}, SignificantLags(acf, 0.2))
	assert.Nil(t, SignificantLags(acf, 0.9))
	assert.InDelta(t, 0.196, ConfidenceBound(100), 1e-12)
}

func TestChiSquaredCDF(t *testing.T) {
	tests := []struct {
		x    float64
		k    int
		want float64
	}{
		{3.841459, 1, 0.95},
		{5.991465, 2, 0.95},
		{7.814728, 3, 0.95},
		{18.307038, 10, 0.95},
		{2.558212, 10, 0.01},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, chiSquaredCDF(tt.x, tt.k), 1e-5, "x=%v k=%d", tt.x, tt.k)
	}

	// Two degrees of freedom has a closed form.
	for _, x := range []float64{0.1, 1, 2.5, 4, 9, 30} {
		assert.InDelta(t, 1-math.Exp(-x/2), chiSquaredCDF(x, 2), 1e-10, "x=%v", x)
	}
	assert.Equal(t, 0.0, chiSquaredCDF(0, 3))
}

func TestLjungBox(t *testing.T) {
	noise, err := arma.Generate(nil, nil, 1, 500, 3)
	require.NoError(t, err)
	white, err := LjungBox(noise, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 10, white.DOF)
	assert.True(t, white.WhiteNoise(0.001), "p=%v", white.PValue)

	ar, err := arma.Generate([]float64{0.9}, nil, 1, 500, 3)
	require.NoError(t, err)
	correlated, err := LjungBox(ar, 10, 0)
	require.NoError(t, err)
	assert.Less(t, correlated.PValue, 1e-6)
	assert.False(t, correlated.WhiteNoise(0.05))

	fitted, err := LjungBox(ar, 10, 2)
	require.NoError(t, err)
	assert.Equal(t, 8, fitted.DOF)
}

func TestLjungBoxRejects(t *testing.T) {
	_, err := LjungBox([]float64{1, 2, 3}, 2, 0)
	assert.ErrorIs(t, err, errs.ErrInvalidConfiguration)

	values := make([]float64, 20)
	_, err = LjungBox(values, 5, 0)
	assert.ErrorIs(t, err, errs.ErrInvalidConfiguration, "constant series")

	values[3] = 1
	_, err = LjungBox(values, 0, 0)
	assert.Equal(t, "lags", errs.Field(err))
}

func TestSummarize(t *testing.T) {
	walk, err := arma.Generate([]float64{1}, nil, 2, 500, 5)
	require.NoError(t, err)
	s := timeseries.New(walk)
	s.Name = "walk"

	sum, err := Summarize(s, 0)
	require.NoError(t, err)
	assert.Equal(t, 500, sum.N)
	assert.Len(t, sum.ACF, DefaultLags+1)
	assert.Len(t, sum.DiffACF, DefaultLags+1)
	require.NotNil(t, sum.DiffTest)
	assert.True(t, sum.DiffTest.WhiteNoise(0.001), "differences of a random walk are its innovations")
	assert.Greater(t, sum.ACF[1], 0.9)

	var buf bytes.Buffer
	_, err = sum.WriteTo(&buf)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "series   walk\n")
	assert.Contains(t, out, "periods  500\n")
	assert.Contains(t, out, "acf diff ")
	assert.Contains(t, out, "ljung-box diff  Q=")
}

func TestSummarizeShortSeries(t *testing.T) {
	sum, err := Summarize(timeseries.New([]float64{1, 2, 3}), 5)
	require.NoError(t, err)
	assert.Nil(t, sum.DiffTest)
	assert.Len(t, sum.ACF, 3)
	assert.Nil(t, sum.DiffACF, "constant differences")

	var buf bytes.Buffer
	_, err = sum.WriteTo(&buf)
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "ljung-box")
}

func TestSummarizeRejectsDegenerateSeries(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
	}{
		{"empty", nil},
		{"single", []float64{4}},
		{"constant", []float64{2, 2, 2, 2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum, err := Summarize(timeseries.New(tt.values), 5)
			assert.Nil(t, sum)
			assert.ErrorIs(t, err, errs.ErrInvalidConfiguration)
			assert.Equal(t, "values", errs.Field(err))
		})
	}
}
