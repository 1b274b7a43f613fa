package main

import (
	"errors"
	"fmt"
)

// Plot type names, as shown in the selector.
const (
	plotLine      = "Line Plot"
	plotBar       = "Bar Chart"
	plotHistogram = "Histogram"
	plotScatter   = "Scatter Plot"
	plotBox       = "Box Plot"
	plotHeatmap   = "Correlation Heatmap"
	plotNormal    = "Normal Distribution Curve"
	plotOLS       = "OLS Regression"
	plotCorrPair  = "Correlation Between Two Columns"
)

// plotTypes is the fixed selector order.
var plotTypes = []string{
	plotLine, plotBar, plotHistogram, plotScatter, plotBox,
	plotHeatmap, plotNormal, plotOLS, plotCorrPair,
}

// noHue is the sentinel offered in the group/hue selector.
const noHue = "None"

// plotConfig is the full set of user plotting selections, rebuilt from the
// widgets on every change. It is plain data so the render dispatch and the
// label-default rules can be tested without a window.
type plotConfig struct {
	PlotType string
	XCol     string
	YCol     string
	HueCol   string // noHue when unset

	UseSingleColumn bool
	SingleColumn    string
	SingleLabel     string

	Title  string
	XLabel string
	YLabel string
}

// effectiveY is the Y column the dispatch actually uses: single-column mode
// always clears it.
func (c plotConfig) effectiveY() string {
	if c.UseSingleColumn {
		return ""
	}
	return c.YCol
}

// singleDisplayLabel is the label shown for the single selected column,
// falling back to the column name when the user left the field untouched.
func (c plotConfig) singleDisplayLabel() string {
	if c.SingleLabel != "" {
		return c.SingleLabel
	}
	return c.SingleColumn
}

// defaultTitle computes the title placeholder for the current selections.
func (c plotConfig) defaultTitle() string {
	if c.UseSingleColumn {
		return fmt.Sprintf("%s of %s", c.PlotType, c.singleDisplayLabel())
	}
	return fmt.Sprintf("%s of %s vs %s", c.PlotType, c.XCol, c.YCol)
}

// defaultXLabel / defaultYLabel compute the axis label placeholders.
func (c plotConfig) defaultXLabel() string { return c.XCol }

func (c plotConfig) defaultYLabel() string {
	if c.UseSingleColumn {
		return c.singleDisplayLabel()
	}
	return c.YCol
}

// requireTwoDistinct guards the two-column operations (OLS regression and the
// pairwise correlation): single-column mode must be off and X and Y must be
// two different, selected columns. The error text is the warning banner.
func (c plotConfig) requireTwoDistinct() error {
	if c.UseSingleColumn {
		return errors.New("uncheck 'Use just one column for plot' for this operation")
	}
	if c.XCol == "" || c.YCol == "" {
		return errors.New("select both an X and a Y column")
	}
	if c.XCol == c.YCol {
		return errors.New("select two different columns for X and Y")
	}
	return nil
}

// histogramColumn is the one column the histogram bins: the single-column
// selection when the toggle is on, otherwise X. Y is never used as a weight.
func (c plotConfig) histogramColumn() string {
	if c.UseSingleColumn {
		return c.SingleColumn
	}
	return c.XCol
}

// defaultColumns returns the default X and Y selections for a fresh dataset:
// column 0 and column 1, with Y falling back to column 0 when only one exists.
func defaultColumns(cols []string) (x, y string) {
	if len(cols) == 0 {
		return "", ""
	}
	x = cols[0]
	y = cols[0]
	if len(cols) > 1 {
		y = cols[1]
	}
	return x, y
}
