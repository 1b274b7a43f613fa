package analysis

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/Zohaibmuaz/Statistical-Data-Analysis-App/src/dataset"
)

// ErrTooFewObservations signals that after NaN filtering there is not enough
// data left to compute the requested statistic.
var ErrTooFewObservations = errors.New("too few observations")

// Pearson returns the Pearson correlation coefficient between x and y.
// NaN entries are removed pairwise first; at least two clean pairs are needed.
func Pearson(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(x), len(y))
	}
	xs, ys := dropNaNPairs(x, y)
	if len(xs) < 2 {
		return 0, fmt.Errorf("%w: %d clean pairs", ErrTooFewObservations, len(xs))
	}
	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) {
		return 0, errors.New("correlation undefined (zero variance column)")
	}
	return r, nil
}

// CorrelationMatrix computes the pairwise Pearson matrix over all numeric
// columns of the dataset. Undefined cells (zero variance, no data) are NaN.
// The returned column order matches the dataset's column order.
func CorrelationMatrix(ds *dataset.Dataset) ([]string, [][]float64, error) {
	cols := ds.NumericColumns()
	if len(cols) < 2 {
		return nil, nil, fmt.Errorf("%w: need at least 2 numeric columns, have %d", ErrTooFewObservations, len(cols))
	}
	data := make([][]float64, len(cols))
	for i, c := range cols {
		vals, err := ds.Float(c)
		if err != nil {
			return nil, nil, err
		}
		data[i] = vals
	}
	m := make([][]float64, len(cols))
	for i := range cols {
		m[i] = make([]float64, len(cols))
	}
	for i := range cols {
		for j := range cols {
			switch {
			case i == j:
				m[i][j] = 1
			case j < i:
				m[i][j] = m[j][i]
			default:
				r, err := Pearson(data[i], data[j])
				if err != nil {
					m[i][j] = math.NaN()
				} else {
					m[i][j] = r
				}
			}
		}
	}
	return cols, m, nil
}
