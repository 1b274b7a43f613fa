package analysis

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// NormalCurvePoints is the fixed sample count of the standard normal curve.
const NormalCurvePoints = 100

// NormalCurveMin and NormalCurveMax bound the plotted domain.
const (
	NormalCurveMin = -3.0
	NormalCurveMax = 3.0
)

// NormalCurve returns exactly 100 (x, pdf(x)) points of the standard normal
// density spanning [-3, 3]. It is independent of any loaded dataset.
func NormalCurve() (xs, ys []float64) {
	xs = make([]float64, NormalCurvePoints)
	ys = make([]float64, NormalCurvePoints)
	step := (NormalCurveMax - NormalCurveMin) / float64(NormalCurvePoints-1)
	for i := 0; i < NormalCurvePoints; i++ {
		x := NormalCurveMin + float64(i)*step
		xs[i] = x
		ys[i] = distuv.UnitNormal.Prob(x)
	}
	// pin the endpoint so rounding never shortens the domain
	xs[NormalCurvePoints-1] = NormalCurveMax
	ys[NormalCurvePoints-1] = distuv.UnitNormal.Prob(NormalCurveMax)
	return xs, ys
}

// Bin is one histogram bucket over [Start, End).
type Bin struct {
	Start float64
	End   float64
	Count int
}

// Histogram buckets the values into the given number of equal-width bins.
// NaNs are dropped first. bins < 1 falls back to the Sturges rule.
func Histogram(values []float64, bins int) ([]Bin, error) {
	clean := dropNaN(values)
	if len(clean) == 0 {
		return nil, fmt.Errorf("%w: no numeric values", ErrTooFewObservations)
	}
	if bins < 1 {
		bins = sturges(len(clean))
	}
	min, max := clean[0], clean[0]
	for _, v := range clean[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == max {
		// single-valued column: one bin holding everything
		return []Bin{{Start: min, End: max, Count: len(clean)}}, nil
	}
	width := (max - min) / float64(bins)
	out := make([]Bin, bins)
	for i := range out {
		out[i].Start = min + float64(i)*width
		out[i].End = min + float64(i+1)*width
	}
	out[bins-1].End = max
	for _, v := range clean {
		idx := int((v - min) / width)
		if idx >= bins { // v == max lands in the last bin
			idx = bins - 1
		}
		out[idx].Count++
	}
	return out, nil
}

func sturges(n int) int {
	b := int(math.Ceil(math.Log2(float64(n)))) + 1
	if b < 1 {
		b = 1
	}
	return b
}

// BoxStats is the five-number summary drawn by the box plot.
type BoxStats struct {
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
	N      int
}

// Box computes the five-number summary of the values, NaNs excluded.
func Box(values []float64) (BoxStats, error) {
	clean := dropNaN(values)
	if len(clean) == 0 {
		return BoxStats{}, fmt.Errorf("%w: no numeric values", ErrTooFewObservations)
	}
	sort.Float64s(clean)
	return BoxStats{
		Min:    clean[0],
		Q1:     quantile(0.25, clean),
		Median: quantile(0.50, clean),
		Q3:     quantile(0.75, clean),
		Max:    clean[len(clean)-1],
		N:      len(clean),
	}, nil
}
