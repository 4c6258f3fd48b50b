package seasonality

import (
	"math"
	"math/rand/v2"
	"time"
)

// minCycle bounds drawn cycle lengths away from zero and negative values.
const minCycle = 1

func (c FixedError) shape(dates []time.Time, rng *rand.Rand) []float64 {
	n := len(dates)
	events := make([]float64, n)
	for k := 0; k <= n/c.PeriodLength; k++ {
		// Offsets are placed in float64 so huge draws fall off the index
		// instead of overflowing int.
		pos := float64(c.StartIndex + k*c.PeriodLength)
		if c.PeriodSD > 0 {
			pos += math.Round(c.PeriodSD * rng.NormFloat64())
		}
		if pos >= 0 && pos < float64(n) {
			events[int(pos)] = 1
		}
	}
	return events
}

func (c SemiMarkov) shape(dates []time.Time, rng *rand.Rand) []float64 {
	n := len(dates)
	events := make([]float64, n)
	for idx := c.StartIndex; idx < n; {
		events[idx] = 1
		step := float64(c.PeriodLength)
		if c.PeriodSD > 0 {
			step += c.PeriodSD * rng.NormFloat64()
		}
		step = math.Max(minCycle, math.Round(step))
		// Compare before converting: a step past the end may not fit an int.
		if step >= float64(n-idx) {
			break
		}
		idx += int(step)
	}
	return events
}

type day struct {
	y int
	m time.Month
	d int
}

func dayOf(t time.Time) day {
	y, m, d := t.Date()
	return day{y, m, d}
}

func (c Holiday) shape(dates []time.Time, _ *rand.Rand) []float64 {
	holidays := make(map[day]bool)
	for _, w := range c.Windows {
		for i := 0; i < w.Days; i++ {
			holidays[dayOf(w.Start.AddDate(0, 0, i))] = true
		}
	}

	events := make([]float64, len(dates))
	for i, d := range dates {
		if holidays[dayOf(d)] {
			events[i] = 1
		}
	}
	return events
}

func (c Sin) shape(dates []time.Time, _ *rand.Rand) []float64 {
	wave := make([]float64, len(dates))
	for i := range wave {
		wave[i] = math.Sin(2 * math.Pi * float64(i-c.StartIndex) / c.PeriodLength)
	}
	return wave
}

func (c SinCovar) shape(dates []time.Time, rng *rand.Rand) []float64 {
	n := len(dates)
	wave := make([]float64, n)

	draw := func() float64 {
		length := c.PeriodLength
		if c.PeriodSD > 0 {
			length += c.PeriodSD * rng.NormFloat64()
		}
		return math.Max(minCycle, length)
	}

	// Before the first cycle the wave runs at the nominal length.
	for i := 0; i < n && i < c.StartIndex; i++ {
		wave[i] = math.Sin(2 * math.Pi * float64(i-c.StartIndex) / c.PeriodLength)
	}

	cycleStart := float64(c.StartIndex)
	length := draw()
	for i := max(c.StartIndex, 0); i < n; i++ {
		for float64(i)-cycleStart >= length {
			cycleStart += length
			length = draw()
		}
		wave[i] = math.Sin(2 * math.Pi * (float64(i) - cycleStart) / length)
	}
	return wave
}
