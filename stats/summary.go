package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/sartorproj/gosynth/errs"
	"github.com/sartorproj/gosynth/timeseries"
)

// DefaultLags is the number of autocorrelation lags a Summary reports.
const DefaultLags = 10

// Summary describes a series: its moments and the autocorrelation of its
// levels and of its first differences. The differences are what an ARMA
// component with a unit AR root reduces to, so their Ljung-Box test tells a
// pure random walk apart from one with structure in its steps.
type Summary struct {
	Name    string
	N       int
	Mean    float64
	Std     float64
	Min     float64
	Max     float64
	Median  float64
	ACF     []float64
	DiffACF []float64
	Bound   float64
	// DiffTest is nil when the series is too short or its differences
	// are constant.
	DiffTest *LjungBoxResult
}

// Summarize computes the Summary of s for lags 1 to lags. Series shorter than
// two values or with constant values have no autocorrelation and are
// rejected. Constant differences, as of a straight line, only leave out the
// difference sections.
func Summarize(s *timeseries.Series, lags int) (*Summary, error) {
	if lags < 1 {
		lags = DefaultLags
	}
	if s.Len() < 2 {
		return nil, errs.Invalid("values", "need at least 2 observations, got %d", s.Len())
	}
	acf := ACF(s.Values, lags)
	if acf == nil {
		return nil, errs.Invalid("values", "constant series has no autocorrelation")
	}
	sum := &Summary{
		Name:   s.Name,
		N:      s.Len(),
		Mean:   s.Mean(),
		Std:    s.Std(),
		Min:    s.Min(),
		Max:    s.Max(),
		Median: s.Median(),
		ACF:    acf,
		Bound:  ConfidenceBound(s.Len()),
	}
	diff := s.Diff()
	sum.DiffACF = ACF(diff, lags)
	if lb, err := LjungBox(diff, lags, 0); err == nil {
		sum.DiffTest = lb
	}
	return sum, nil
}

// WriteTo prints the summary as an aligned text block.
func (s *Summary) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	if s.Name != "" {
		fmt.Fprintf(&b, "series   %s\n", s.Name)
	}
	fmt.Fprintf(&b, "periods  %d\n", s.N)
	fmt.Fprintf(&b, "mean     %.4f\n", s.Mean)
	fmt.Fprintf(&b, "std      %.4f\n", s.Std)
	fmt.Fprintf(&b, "min      %.4f\n", s.Min)
	fmt.Fprintf(&b, "median   %.4f\n", s.Median)
	fmt.Fprintf(&b, "max      %.4f\n", s.Max)
	writeACF(&b, "acf", s.ACF, s.Bound)
	writeACF(&b, "acf diff", s.DiffACF, s.Bound)
	if s.DiffTest != nil {
		fmt.Fprintf(&b, "ljung-box diff  Q=%.4f dof=%d p=%.4f\n", s.DiffTest.Statistic, s.DiffTest.DOF, s.DiffTest.PValue)
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func writeACF(b *strings.Builder, label string, acf []float64, bound float64) {
	if len(acf) < 2 {
		return
	}
	fmt.Fprintf(b, "%-9s", label)
	for _, v := range acf[1:] {
		fmt.Fprintf(b, "%7.3f", v)
	}
	if lags := SignificantLags(acf, bound); len(lags) > 0 {
		fmt.Fprintf(b, "  significant %v", lags)
	}
	b.WriteByte('\n')
}
