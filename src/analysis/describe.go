// Package analysis computes the statistics shown by the explorer: the
// descriptive summary table, Pearson correlations, OLS regression and the
// distribution helpers behind the histogram, box and normal-curve plots.
// All numerics are delegated to gonum; this package only prepares columns
// (NaN filtering, sorting) and arranges results for display.
package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/Zohaibmuaz/Statistical-Data-Analysis-App/src/dataset"
)

// ColumnSummary holds the descriptive statistics of one numeric column,
// mirroring the count/mean/std/min/quartiles/max layout of a describe table.
type ColumnSummary struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// Describe summarizes every numeric column of the dataset, in column order.
// NaN entries are excluded per column; an all-NaN column yields Count 0 and
// NaN statistics rather than being dropped from the table.
func Describe(ds *dataset.Dataset) []ColumnSummary {
	cols := ds.NumericColumns()
	out := make([]ColumnSummary, 0, len(cols))
	for _, c := range cols {
		vals, err := ds.Float(c)
		if err != nil {
			continue
		}
		out = append(out, summarize(c, vals))
	}
	return out
}

func summarize(name string, vals []float64) ColumnSummary {
	clean := dropNaN(vals)
	s := ColumnSummary{Column: name, Count: len(clean)}
	if len(clean) == 0 {
		n := math.NaN()
		s.Mean, s.Std, s.Min, s.Q25, s.Median, s.Q75, s.Max = n, n, n, n, n, n, n
		return s
	}
	sort.Float64s(clean)
	s.Mean = stat.Mean(clean, nil)
	if len(clean) > 1 {
		s.Std = stat.StdDev(clean, nil)
	} else {
		s.Std = math.NaN()
	}
	s.Min = clean[0]
	s.Max = clean[len(clean)-1]
	s.Q25 = quantile(0.25, clean)
	s.Median = quantile(0.50, clean)
	s.Q75 = quantile(0.75, clean)
	return s
}

// quantile computes the linear-interpolation quantile over sorted values:
// h = (n-1)p, interpolated between the two nearest ranks. This is the
// convention pandas and numpy default to, which the describe table and box
// plot follow.
func quantile(p float64, sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	h := p * float64(n-1)
	lo := int(math.Floor(h))
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[hi]-sorted[lo])
}

// dropNaN returns a copy of vals without NaN entries.
func dropNaN(vals []float64) []float64 {
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// dropNaNPairs filters both slices to indices where neither value is NaN.
func dropNaNPairs(x, y []float64) ([]float64, []float64) {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	return xs, ys
}
