package analysis

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// RegressionResult is a fitted ordinary-least-squares model Y ~ X with
// intercept, plus the summary statistics displayed alongside the plot.
type RegressionResult struct {
	XColumn string
	YColumn string

	Intercept float64
	Slope     float64

	StdErrIntercept float64
	StdErrSlope     float64
	TIntercept      float64
	TSlope          float64
	PIntercept      float64
	PSlope          float64

	R2    float64
	AdjR2 float64
	F     float64
	PF    float64

	N int

	// Cleaned observations and their fitted values, for the overlay plot.
	XClean []float64
	YClean []float64
	Fitted []float64
}

// FitOLS fits y ~ x with an intercept. NaN entries are dropped pairwise; at
// least three clean pairs are required so the residual variance is defined.
// A constant x column is rejected since the slope would be unidentified.
func FitOLS(x, y []float64, xName, yName string) (*RegressionResult, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("length mismatch: %d vs %d", len(x), len(y))
	}
	xs, ys := dropNaNPairs(x, y)
	n := len(xs)
	if n < 3 {
		return nil, fmt.Errorf("%w: %d clean pairs, need at least 3", ErrTooFewObservations, n)
	}
	meanX := stat.Mean(xs, nil)
	sxx := 0.0
	for _, v := range xs {
		d := v - meanX
		sxx += d * d
	}
	if sxx == 0 {
		return nil, fmt.Errorf("column %q has zero variance", xName)
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	r2 := stat.RSquared(xs, ys, nil, alpha, beta)

	fitted := make([]float64, n)
	rss := 0.0
	for i, v := range xs {
		fitted[i] = alpha + beta*v
		resid := ys[i] - fitted[i]
		rss += resid * resid
	}
	dof := float64(n - 2)
	sigma2 := rss / dof
	seSlope := math.Sqrt(sigma2 / sxx)
	seIntercept := math.Sqrt(sigma2 * (1.0/float64(n) + meanX*meanX/sxx))

	res := &RegressionResult{
		XColumn:         xName,
		YColumn:         yName,
		Intercept:       alpha,
		Slope:           beta,
		StdErrIntercept: seIntercept,
		StdErrSlope:     seSlope,
		R2:              r2,
		AdjR2:           1 - (1-r2)*float64(n-1)/dof,
		N:               n,
		XClean:          xs,
		YClean:          ys,
		Fitted:          fitted,
	}

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: dof}
	if seIntercept > 0 {
		res.TIntercept = alpha / seIntercept
		res.PIntercept = 2 * tDist.Survival(math.Abs(res.TIntercept))
	}
	if seSlope > 0 {
		res.TSlope = beta / seSlope
		res.PSlope = 2 * tDist.Survival(math.Abs(res.TSlope))
	}
	if r2 < 1 {
		res.F = r2 * dof / (1 - r2)
		res.PF = distuv.F{D1: 1, D2: dof}.Survival(res.F)
	} else {
		res.F = math.Inf(1)
		res.PF = 0
	}
	return res, nil
}

// Summary renders the model in the text layout shown under the regression plot.
func (r *RegressionResult) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "OLS Regression: %s ~ %s\n", r.YColumn, r.XColumn)
	fmt.Fprintf(&b, "Observations: %d\n", r.N)
	fmt.Fprintf(&b, "R-squared: %.4f    Adj. R-squared: %.4f\n", r.R2, r.AdjR2)
	fmt.Fprintf(&b, "F-statistic: %.4g    Prob (F): %.4g\n\n", r.F, r.PF)
	name := r.XColumn
	if len(name) > 16 {
		name = name[:16]
	}
	fmt.Fprintf(&b, "%-16s %12s %12s %10s %10s\n", "", "coef", "std err", "t", "P>|t|")
	fmt.Fprintf(&b, "%-16s %12.4f %12.4f %10.3f %10.3f\n", "const", r.Intercept, r.StdErrIntercept, r.TIntercept, r.PIntercept)
	fmt.Fprintf(&b, "%-16s %12.4f %12.4f %10.3f %10.3f\n", name, r.Slope, r.StdErrSlope, r.TSlope, r.PSlope)
	return b.String()
}
