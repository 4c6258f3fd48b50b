package generator_test

import (
	"fmt"
	"time"

	"github.com/sartorproj/gosynth/generator"
	"github.com/sartorproj/gosynth/trend"
)

func ExampleGenerate() {
	cfg := &generator.Config{
		StartDate:   time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Periods:     4,
		Nodes:       []trend.Node{{X: 0, Y: 0}, {X: 3, Y: 300}},
		LevelBreaks: []generator.LevelBreak{{Index: 2, Magnitude: 50}},
		Outliers:    []generator.Outlier{{Index: 3, Value: -1}},
		Seed:        generator.Seed(42),
	}

	series, err := generator.Generate(cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, r := range series.Records() {
		fmt.Println(r.Date.Format("2006-01-02"), r.Value)
	}
	// Output:
	// 2025-04-01 0
	// 2025-04-02 100
	// 2025-04-03 250
	// 2025-04-04 -1
}
