package analysis

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/Zohaibmuaz/Statistical-Data-Analysis-App/src/dataset"
)

const eps = 1e-9

func almostEqual(a, b, tol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	return math.Abs(a-b) <= tol
}

func TestPearsonPerfectCorrelation(t *testing.T) {
	r, err := Pearson([]float64{1, 2, 3}, []float64{2, 4, 6})
	if err != nil {
		t.Fatalf("Pearson: %v", err)
	}
	// displayed to 4 decimal places as 1.0000
	if got := fmt.Sprintf("%.4f", r); got != "1.0000" {
		t.Fatalf("correlation got %s want 1.0000", got)
	}
}

func TestPearsonNegative(t *testing.T) {
	r, err := Pearson([]float64{1, 2, 3, 4}, []float64{8, 6, 4, 2})
	if err != nil {
		t.Fatalf("Pearson: %v", err)
	}
	if !almostEqual(r, -1, eps) {
		t.Fatalf("correlation got %v want -1", r)
	}
}

func TestPearsonDropsNaNPairs(t *testing.T) {
	x := []float64{1, math.NaN(), 2, 3}
	y := []float64{2, 5, 4, 6}
	r, err := Pearson(x, y)
	if err != nil {
		t.Fatalf("Pearson: %v", err)
	}
	if !almostEqual(r, 1, eps) {
		t.Fatalf("correlation got %v want 1 after NaN drop", r)
	}
}

func TestPearsonErrors(t *testing.T) {
	if _, err := Pearson([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatalf("expected length mismatch error")
	}
	if _, err := Pearson([]float64{1}, []float64{2}); !errors.Is(err, ErrTooFewObservations) {
		t.Fatalf("expected ErrTooFewObservations, got %v", err)
	}
	// zero variance is undefined, not a crash
	if _, err := Pearson([]float64{5, 5, 5}, []float64{1, 2, 3}); err == nil {
		t.Fatalf("expected error for constant column")
	}
}

func TestNormalCurveShape(t *testing.T) {
	xs, ys := NormalCurve()
	if len(xs) != 100 || len(ys) != 100 {
		t.Fatalf("want exactly 100 points, got %d/%d", len(xs), len(ys))
	}
	if xs[0] != -3 || xs[99] != 3 {
		t.Fatalf("domain got [%v, %v] want [-3, 3]", xs[0], xs[99])
	}
	// peak of the standard normal pdf is 1/sqrt(2*pi) at 0
	peak := 0.0
	for _, y := range ys {
		if y > peak {
			peak = y
		}
	}
	if !almostEqual(peak, 1/math.Sqrt(2*math.Pi), 1e-3) {
		t.Fatalf("peak got %v want ~%v", peak, 1/math.Sqrt(2*math.Pi))
	}
	// symmetric around zero
	if !almostEqual(ys[0], ys[99], eps) {
		t.Fatalf("pdf not symmetric: %v vs %v", ys[0], ys[99])
	}
}

func TestQuantileInterpolation(t *testing.T) {
	// h = (n-1)p rank interpolation, matching pandas describe() output
	sorted := []float64{1, 2, 3, 4}
	cases := []struct{ p, want float64 }{
		{0, 1},
		{0.25, 1.75},
		{0.5, 2.5},
		{0.75, 3.25},
		{1, 4},
	}
	for _, tc := range cases {
		if got := quantile(tc.p, sorted); !almostEqual(got, tc.want, eps) {
			t.Fatalf("quantile(%v) got %v want %v", tc.p, got, tc.want)
		}
	}
	if got := quantile(0.5, []float64{7}); got != 7 {
		t.Fatalf("single value quantile got %v", got)
	}
	if got := quantile(0.5, nil); !math.IsNaN(got) {
		t.Fatalf("empty input quantile got %v want NaN", got)
	}
}

func TestDescribe(t *testing.T) {
	ds, err := dataset.FromRecords([][]string{
		{"name", "v"},
		{"a", "1"},
		{"b", "2"},
		{"c", "3"},
		{"d", "4"},
	})
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}
	sums := Describe(ds)
	if len(sums) != 1 {
		t.Fatalf("expected 1 numeric column summary, got %d", len(sums))
	}
	s := sums[0]
	if s.Column != "v" || s.Count != 4 {
		t.Fatalf("summary header got %q/%d", s.Column, s.Count)
	}
	if !almostEqual(s.Mean, 2.5, eps) {
		t.Fatalf("mean got %v", s.Mean)
	}
	// sample std of 1..4
	if !almostEqual(s.Std, math.Sqrt(5.0/3.0), eps) {
		t.Fatalf("std got %v", s.Std)
	}
	if s.Min != 1 || s.Max != 4 {
		t.Fatalf("min/max got %v/%v", s.Min, s.Max)
	}
	// linear interpolation quartiles, pandas-style
	if !almostEqual(s.Q25, 1.75, eps) || !almostEqual(s.Median, 2.5, eps) || !almostEqual(s.Q75, 3.25, eps) {
		t.Fatalf("quartiles got %v/%v/%v", s.Q25, s.Median, s.Q75)
	}
}

func TestDescribeSkipsTextColumns(t *testing.T) {
	ds, err := dataset.FromRecords([][]string{
		{"city", "pop"},
		{"lahore", "10"},
		{"multan", "20"},
	})
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}
	sums := Describe(ds)
	if len(sums) != 1 || sums[0].Column != "pop" {
		t.Fatalf("describe got %+v", sums)
	}
}

func TestFitOLSKnownLine(t *testing.T) {
	// y = 2x + 1 exactly
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{3, 5, 7, 9, 11}
	res, err := FitOLS(x, y, "x", "y")
	if err != nil {
		t.Fatalf("FitOLS: %v", err)
	}
	if !almostEqual(res.Slope, 2, 1e-9) || !almostEqual(res.Intercept, 1, 1e-9) {
		t.Fatalf("coef got a=%v b=%v want 1, 2", res.Intercept, res.Slope)
	}
	if !almostEqual(res.R2, 1, 1e-9) {
		t.Fatalf("R2 got %v want 1", res.R2)
	}
	if res.N != 5 || len(res.Fitted) != 5 {
		t.Fatalf("n/fitted got %d/%d", res.N, len(res.Fitted))
	}
	if !math.IsInf(res.F, 1) {
		t.Fatalf("perfect fit should give infinite F, got %v", res.F)
	}
}

func TestFitOLSNoisy(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	y := []float64{2.1, 3.9, 6.2, 8.1, 9.8, 12.3, 13.9, 16.2}
	res, err := FitOLS(x, y, "x", "y")
	if err != nil {
		t.Fatalf("FitOLS: %v", err)
	}
	if res.Slope < 1.8 || res.Slope > 2.2 {
		t.Fatalf("slope got %v want ~2", res.Slope)
	}
	if res.StdErrSlope <= 0 {
		t.Fatalf("std err slope should be positive, got %v", res.StdErrSlope)
	}
	if res.PSlope <= 0 || res.PSlope >= 0.05 {
		t.Fatalf("slope p-value got %v want small positive", res.PSlope)
	}
	if res.R2 <= 0.99 || res.R2 >= 1 {
		t.Fatalf("R2 got %v", res.R2)
	}
	if res.AdjR2 >= res.R2 {
		t.Fatalf("adjusted R2 %v should be below R2 %v", res.AdjR2, res.R2)
	}
	if res.PF <= 0 || res.PF >= 0.05 {
		t.Fatalf("F p-value got %v", res.PF)
	}
}

func TestFitOLSGuards(t *testing.T) {
	if _, err := FitOLS([]float64{1, 2}, []float64{1, 2}, "x", "y"); !errors.Is(err, ErrTooFewObservations) {
		t.Fatalf("expected ErrTooFewObservations, got %v", err)
	}
	if _, err := FitOLS([]float64{3, 3, 3, 3}, []float64{1, 2, 3, 4}, "x", "y"); err == nil {
		t.Fatalf("expected zero-variance error")
	}
}

func TestRegressionSummaryText(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}
	y := []float64{1.9, 4.2, 5.8, 8.1, 9.9, 12.1}
	res, err := FitOLS(x, y, "height", "weight")
	if err != nil {
		t.Fatalf("FitOLS: %v", err)
	}
	s := res.Summary()
	for _, want := range []string{"weight ~ height", "Observations: 6", "R-squared", "F-statistic", "const", "height", "P>|t|"} {
		if !strings.Contains(s, want) {
			t.Fatalf("summary missing %q:\n%s", want, s)
		}
	}
}

func TestCorrelationMatrix(t *testing.T) {
	ds, err := dataset.FromRecords([][]string{
		{"a", "b", "c"},
		{"1", "2", "5"},
		{"2", "4", "4"},
		{"3", "6", "3"},
		{"4", "8", "2"},
	})
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}
	cols, m, err := CorrelationMatrix(ds)
	if err != nil {
		t.Fatalf("CorrelationMatrix: %v", err)
	}
	if len(cols) != 3 || len(m) != 3 {
		t.Fatalf("matrix dims got %d/%d", len(cols), len(m))
	}
	for i := range m {
		if !almostEqual(m[i][i], 1, eps) {
			t.Fatalf("diagonal[%d] got %v", i, m[i][i])
		}
		for j := range m {
			if !almostEqual(m[i][j], m[j][i], eps) {
				t.Fatalf("matrix not symmetric at %d,%d", i, j)
			}
		}
	}
	if !almostEqual(m[0][1], 1, eps) {
		t.Fatalf("a-b correlation got %v want 1", m[0][1])
	}
	if !almostEqual(m[0][2], -1, eps) {
		t.Fatalf("a-c correlation got %v want -1", m[0][2])
	}
}

func TestCorrelationMatrixNeedsTwoColumns(t *testing.T) {
	ds, err := dataset.FromRecords([][]string{{"name", "v"}, {"a", "1"}, {"b", "2"}})
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}
	if _, _, err := CorrelationMatrix(ds); !errors.Is(err, ErrTooFewObservations) {
		t.Fatalf("expected ErrTooFewObservations, got %v", err)
	}
}

func TestHistogram(t *testing.T) {
	bins, err := Histogram([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 5)
	if err != nil {
		t.Fatalf("Histogram: %v", err)
	}
	if len(bins) != 5 {
		t.Fatalf("bin count got %d want 5", len(bins))
	}
	total := 0
	for _, b := range bins {
		total += b.Count
	}
	if total != 10 {
		t.Fatalf("total count got %d want 10", total)
	}
	// max value lands in the last bin, not out of range
	if bins[4].Count != 2 {
		t.Fatalf("last bin got %d want 2 (8 and 9)", bins[4].Count)
	}
}

func TestHistogramEdgeCases(t *testing.T) {
	if _, err := Histogram([]float64{math.NaN()}, 3); !errors.Is(err, ErrTooFewObservations) {
		t.Fatalf("expected ErrTooFewObservations, got %v", err)
	}
	bins, err := Histogram([]float64{7, 7, 7}, 4)
	if err != nil {
		t.Fatalf("Histogram constant: %v", err)
	}
	if len(bins) != 1 || bins[0].Count != 3 {
		t.Fatalf("constant column bins got %+v", bins)
	}
	// bins < 1 falls back to the Sturges rule
	auto, err := Histogram([]float64{1, 2, 3, 4, 5, 6, 7, 8}, 0)
	if err != nil {
		t.Fatalf("Histogram auto: %v", err)
	}
	if len(auto) != 4 { // ceil(log2(8)) + 1
		t.Fatalf("auto bins got %d want 4", len(auto))
	}
}

func TestBox(t *testing.T) {
	b, err := Box([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	if err != nil {
		t.Fatalf("Box: %v", err)
	}
	if b.Min != 1 || b.Max != 9 || b.N != 9 {
		t.Fatalf("box extremes got %+v", b)
	}
	if !almostEqual(b.Median, 5, eps) || !almostEqual(b.Q1, 3, eps) || !almostEqual(b.Q3, 7, eps) {
		t.Fatalf("box quartiles got %+v", b)
	}
	if _, err := Box(nil); !errors.Is(err, ErrTooFewObservations) {
		t.Fatalf("expected ErrTooFewObservations for empty input, got %v", err)
	}
}
