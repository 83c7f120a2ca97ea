package main

import (
	"fmt"
	"math"
	"time"

	"twister"

	"github.com/fatih/color"
	"github.com/jamiealquiza/tachymeter"
	"github.com/rodaine/table"
)

func main() {
	samples := 1_000_000
	g := twister.NewSeeded(twister.SeedString("loadtest"))

	dists := []struct {
		name   string
		sample func() float64
	}{
		{"UniformInt [0,100]", func() float64 { return float64(twister.UniformInt(g, 0, 100)) }},
		{"UniformReal [0,1)", func() float64 { return twister.UniformReal(g, 0.0, 1.0) }},
		{"UniformProbability", g.UniformProbability},
		{"NormalReal (0,1)", func() float64 { return g.NormalReal(0, 1) }},
	}

	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()
	tbl := table.
		New("Distribution", "Samples", "Mean", "Min", "Max", "P50", "P99", "Ops/s").
		WithHeaderFormatter(headerFmt).
		WithFirstColumnFormatter(columnFmt)

	for _, d := range dists {
		tm := tachymeter.New(&tachymeter.Config{Size: 50_000})

		sum := 0.0
		low := math.Inf(1)
		high := math.Inf(-1)

		start := time.Now()
		for i := 0; i < samples; i++ {
			t := time.Now()
			v := d.sample()
			tm.AddTime(time.Since(t))

			sum += v
			if v < low {
				low = v
			}
			if v > high {
				high = v
			}
		}
		elapsed := time.Since(start)
		calc := tm.Calc()

		tbl.AddRow(
			d.name,
			samples,
			fmt.Sprintf("%.4f", sum/float64(samples)),
			fmt.Sprintf("%.4f", low),
			fmt.Sprintf("%.4f", high),
			calc.Time.P50,
			calc.Time.P99,
			fmt.Sprintf("%.0f", float64(samples)/elapsed.Seconds()),
		)
	}
	tbl.Print()
}
