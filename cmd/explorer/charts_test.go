package main

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/Zohaibmuaz/Statistical-Data-Analysis-App/src/analysis"
	"github.com/Zohaibmuaz/Statistical-Data-Analysis-App/src/dataset"
)

func testDataset(t *testing.T, records [][]string) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.FromRecords(records)
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}
	return ds
}

func linearDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	records := [][]string{{"x", "y", "group"}}
	for i := 1; i <= 6; i++ {
		records = append(records, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%d", 2*i+1),
			[]string{"a", "b"}[i%2],
		})
	}
	return testDataset(t, records)
}

func TestDispatchGuardsTwoColumnOperations(t *testing.T) {
	ds := linearDataset(t)
	for _, pt := range []string{plotOLS, plotCorrPair} {
		out := dispatchPlot(ds, plotConfig{PlotType: pt, XCol: "x", YCol: "x"}, 800, 400)
		if out.Warning == "" {
			t.Fatalf("%s with X==Y: want warning, got %+v", pt, out)
		}
		if out.Image != nil || out.Err != nil {
			t.Fatalf("%s warning path should compute nothing, got %+v", pt, out)
		}

		out = dispatchPlot(ds, plotConfig{PlotType: pt, XCol: "x", YCol: "y", UseSingleColumn: true, SingleColumn: "x"}, 800, 400)
		if !strings.Contains(out.Warning, "uncheck") {
			t.Fatalf("%s in single mode: warning = %q", pt, out.Warning)
		}
	}
}

func TestDispatchScatterSingleColumnFallback(t *testing.T) {
	ds := linearDataset(t)
	out := dispatchPlot(ds, plotConfig{PlotType: plotScatter, UseSingleColumn: true, SingleColumn: "y"}, 800, 400)
	if out.Err != nil {
		t.Fatalf("single-column scatter: %v", out.Err)
	}
	if out.Image == nil {
		t.Fatalf("fallback should still draw the chart")
	}
	if !strings.Contains(out.Warning, "row index") {
		t.Fatalf("warning = %q, want row-index fallback note", out.Warning)
	}

	out = dispatchPlot(ds, plotConfig{PlotType: plotScatter, XCol: "x", YCol: "y"}, 800, 400)
	if out.Warning != "" {
		t.Fatalf("two-column scatter should not warn, got %q", out.Warning)
	}
}

func TestDispatchCorrelationScalar(t *testing.T) {
	ds := linearDataset(t)
	out := dispatchPlot(ds, plotConfig{PlotType: plotCorrPair, XCol: "x", YCol: "y"}, 800, 400)
	if out.Err != nil || out.Warning != "" {
		t.Fatalf("unexpected failure: %+v", out)
	}
	want := "Correlation between x and y: 1.0000"
	if out.Scalar != want {
		t.Fatalf("scalar = %q, want %q", out.Scalar, want)
	}
	if out.Image != nil {
		t.Fatalf("scalar path should not produce an image")
	}
}

func TestDispatchOLSTextColumn(t *testing.T) {
	ds := linearDataset(t)
	out := dispatchPlot(ds, plotConfig{PlotType: plotOLS, XCol: "group", YCol: "y"}, 800, 400)
	if out.Err == nil {
		t.Fatalf("OLS over a text column should fail")
	}
	if !strings.Contains(out.Err.Error(), "fitting OLS model") {
		t.Fatalf("error = %v, want wrapped fit error", out.Err)
	}
}

func TestDispatchOLSProducesSummary(t *testing.T) {
	ds := linearDataset(t)
	out := dispatchPlot(ds, plotConfig{PlotType: plotOLS, XCol: "x", YCol: "y", Title: "fit"}, 800, 400)
	if out.Err != nil || out.Warning != "" {
		t.Fatalf("unexpected failure: %+v", out)
	}
	if out.Image == nil {
		t.Fatalf("no chart image")
	}
	for _, want := range []string{"OLS Regression: y ~ x", "Observations: 6", "R-squared"} {
		if !strings.Contains(out.Text, want) {
			t.Fatalf("summary missing %q:\n%s", want, out.Text)
		}
	}
}

func TestDispatchNormalCurve(t *testing.T) {
	ds := linearDataset(t)
	out := dispatchPlot(ds, plotConfig{PlotType: plotNormal, Title: "Normal Distribution Curve"}, 640, 360)
	if out.Err != nil || out.Image == nil {
		t.Fatalf("normal curve: %+v", out)
	}
	b := out.Image.Bounds()
	if b.Dx() != 640 || b.Dy() != 360 {
		t.Fatalf("image size = %dx%d, want 640x360", b.Dx(), b.Dy())
	}
}

func TestDispatchHeatmapNeedsTwoNumericColumns(t *testing.T) {
	ds := testDataset(t, [][]string{{"x", "name"}, {"1", "a"}, {"2", "b"}, {"3", "c"}})
	out := dispatchPlot(ds, plotConfig{PlotType: plotHeatmap}, 800, 400)
	if !errors.Is(out.Err, analysis.ErrTooFewObservations) {
		t.Fatalf("heatmap on one numeric column: err = %v", out.Err)
	}
}

func TestDispatchUnknownPlotType(t *testing.T) {
	ds := linearDataset(t)
	out := dispatchPlot(ds, plotConfig{PlotType: "Pie Chart"}, 800, 400)
	if out.Err == nil || !strings.Contains(out.Err.Error(), "unknown plot type") {
		t.Fatalf("err = %v", out.Err)
	}
}

func TestHueGroupsPreservesFirstSeenOrder(t *testing.T) {
	ds := testDataset(t, [][]string{
		{"x", "y", "group"},
		{"1", "10", "b"},
		{"2", "20", "a"},
		{"3", "30", "b"},
	})
	xs := []float64{1, 2, 3}
	ys := []float64{10, 20, 30}
	groups, order, err := hueGroups(ds, "group", xs, ys)
	if err != nil {
		t.Fatalf("hueGroups: %v", err)
	}
	if len(order) != 2 || order[0] != "b" || order[1] != "a" {
		t.Fatalf("order = %v", order)
	}
	gb := groups["b"]
	if len(gb[0]) != 2 || gb[0][0] != 1 || gb[0][1] != 3 {
		t.Fatalf("group b xs = %v", gb[0])
	}
}

func TestCategoryTicksThinning(t *testing.T) {
	few := categoryTicks([]string{"a", "b", "c"})
	if len(few) != 3 {
		t.Fatalf("short label list should keep all ticks, got %d", len(few))
	}
	labels := make([]string, 100)
	for i := range labels {
		labels[i] = fmt.Sprintf("cat%d", i)
	}
	many := categoryTicks(labels)
	if len(many) > 21 {
		t.Fatalf("thinned ticks = %d, want at most 21", len(many))
	}
	if many[0].Label != "cat0" {
		t.Fatalf("first tick = %q", many[0].Label)
	}
}

func TestBarWidthClamps(t *testing.T) {
	if got := barWidth(1000, 5); got != 80 {
		t.Fatalf("wide bars = %d, want clamp to 80", got)
	}
	if got := barWidth(1000, 500); got != 4 {
		t.Fatalf("narrow bars = %d, want clamp to 4", got)
	}
	if got := barWidth(1000, 0); got != 10 {
		t.Fatalf("zero bars = %d", got)
	}
}

func TestValueBounds(t *testing.T) {
	mn, mx, ok := valueBounds([]float64{3, math.NaN(), -1, 7})
	if !ok || mn != -1 || mx != 7 {
		t.Fatalf("bounds = %v,%v,%v", mn, mx, ok)
	}
	if _, _, ok := valueBounds([]float64{math.NaN()}); ok {
		t.Fatalf("all-NaN input should report no bounds")
	}
}

func TestNiceAxisBoundsContainInput(t *testing.T) {
	a, b := niceAxisBounds(3.2, 9.7)
	if a > 3.2 || b < 9.7 {
		t.Fatalf("bounds [%v,%v] do not contain [3.2,9.7]", a, b)
	}
	a, b = niceAxisBounds(5, 5)
	if b <= a {
		t.Fatalf("degenerate range produced [%v,%v]", a, b)
	}
}

func TestNiceTicks(t *testing.T) {
	ticks := niceTicks(0, 100, 6)
	if len(ticks) < 2 {
		t.Fatalf("tick count = %d", len(ticks))
	}
	for i := 1; i < len(ticks); i++ {
		if ticks[i].Value <= ticks[i-1].Value {
			t.Fatalf("ticks not increasing: %v", ticks)
		}
	}
	if niceTicks(0, 1, 1) != nil {
		t.Fatalf("n<2 should yield no ticks")
	}
}

func TestFormatTick(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{123.456, "123"},
		{12.34, "12.3"},
		{1.234, "1.23"},
		{-0.5, "-0.50"},
	}
	for _, tc := range cases {
		if got := formatTick(tc.v); got != tc.want {
			t.Fatalf("formatTick(%v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestHeatmapCellColor(t *testing.T) {
	pos := heatmapCellColor(1)
	if pos.R != 255 || pos.G >= 255 {
		t.Fatalf("r=+1 color = %+v, want strong red", pos)
	}
	neg := heatmapCellColor(-1)
	if neg.B != 255 || neg.R >= 255 {
		t.Fatalf("r=-1 color = %+v, want strong blue", neg)
	}
	zero := heatmapCellColor(0)
	if zero.R != 255 || zero.G != 255 || zero.B != 255 {
		t.Fatalf("r=0 color = %+v, want white", zero)
	}
	gray := heatmapCellColor(math.NaN())
	if gray.R != gray.G || gray.G != gray.B {
		t.Fatalf("NaN color = %+v, want gray", gray)
	}
}

func TestRenderCorrelationHeatmap(t *testing.T) {
	ds := linearDataset(t)
	img, err := renderCorrelationHeatmap(ds, 800)
	if err != nil {
		t.Fatalf("renderCorrelationHeatmap: %v", err)
	}
	if img.Bounds().Dx() <= 0 || img.Bounds().Dy() <= 0 {
		t.Fatalf("empty heatmap image: %v", img.Bounds())
	}
}

func TestBlankSize(t *testing.T) {
	img := blank(320, 200)
	b := img.Bounds()
	if b.Dx() != 320 || b.Dy() != 200 {
		t.Fatalf("blank size = %dx%d", b.Dx(), b.Dy())
	}
}

func TestDrawHint(t *testing.T) {
	base := blank(400, 200)
	out := drawHint(base, "Hint: testing")
	if out == base {
		t.Fatalf("hint overlay should produce a new image")
	}
	if out.Bounds() != base.Bounds() {
		t.Fatalf("hint changed bounds: %v vs %v", out.Bounds(), base.Bounds())
	}
	if got := drawHint(base, "  "); got != base {
		t.Fatalf("blank hint should return the original image")
	}
}
