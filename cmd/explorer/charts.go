package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	png "image/png"
	"math"
	"sort"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Zohaibmuaz/Statistical-Data-Analysis-App/src/analysis"
	"github.com/Zohaibmuaz/Statistical-Data-Analysis-App/src/dataset"
)

// pointStyle returns a style that renders points only (no connecting line).
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    4,
		DotColor:    col,
	}
}

func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 2,
		StrokeColor: col,
	}
}

// huePalette colors the per-category scatter series, cycling when a hue
// column has more categories than colors.
var huePalette = []drawing.Color{
	chart.ColorBlue,
	chart.ColorGreen,
	chart.ColorRed,
	chart.ColorOrange,
	chart.ColorAlternateGray,
	chart.ColorCyan,
	chart.ColorYellow,
}

// plotOutput is what one dispatch pass produces. Exactly one of Image,
// Scalar or Err is the primary outcome; Text rides along with the regression
// chart, and Warning either blocks the computation (guard failures, no
// image) or annotates a fallback that was still drawn.
type plotOutput struct {
	Image   image.Image
	Text    string // regression summary, monospace
	Scalar  string // success banner for the scalar correlation path
	Warning string // invalid configuration, nothing computed
	Err     error  // computation failure, caught and displayed
}

// dispatchPlot produces the single output for the current configuration.
// The caller guarantees ds is loaded (the normal curve ignores it anyway).
func dispatchPlot(ds *dataset.Dataset, cfg plotConfig, w, h int) plotOutput {
	switch cfg.PlotType {
	case plotLine:
		img, err := renderXYChart(ds, cfg, w, h, false)
		return plotOutput{Image: img, Err: err}
	case plotBar:
		img, err := renderBarChart(ds, cfg, w, h)
		return plotOutput{Image: img, Err: err}
	case plotHistogram:
		img, err := renderHistogram(ds, cfg, w, h)
		return plotOutput{Image: img, Err: err}
	case plotScatter:
		img, err := renderXYChart(ds, cfg, w, h, true)
		out := plotOutput{Image: img, Err: err}
		if err == nil && cfg.UseSingleColumn {
			out.Warning = fmt.Sprintf("Scatter Plot needs X and Y columns; plotting %s against the row index", cfg.singleDisplayLabel())
		}
		return out
	case plotBox:
		img, err := renderBoxPlot(ds, cfg, w, h)
		return plotOutput{Image: img, Err: err}
	case plotHeatmap:
		img, err := renderCorrelationHeatmap(ds, w)
		return plotOutput{Image: img, Err: err}
	case plotNormal:
		return plotOutput{Image: renderNormalCurve(cfg, w, h)}
	case plotOLS:
		if err := cfg.requireTwoDistinct(); err != nil {
			return plotOutput{Warning: err.Error()}
		}
		img, summary, err := renderOLS(ds, cfg, w, h)
		if err != nil {
			return plotOutput{Err: fmt.Errorf("fitting OLS model: %w", err)}
		}
		return plotOutput{Image: img, Text: summary}
	case plotCorrPair:
		if err := cfg.requireTwoDistinct(); err != nil {
			return plotOutput{Warning: err.Error()}
		}
		x, err := ds.Float(cfg.XCol)
		if err != nil {
			return plotOutput{Err: fmt.Errorf("computing correlation: %w", err)}
		}
		y, err := ds.Float(cfg.YCol)
		if err != nil {
			return plotOutput{Err: fmt.Errorf("computing correlation: %w", err)}
		}
		r, err := analysis.Pearson(x, y)
		if err != nil {
			return plotOutput{Err: fmt.Errorf("computing correlation: %w", err)}
		}
		return plotOutput{Scalar: fmt.Sprintf("Correlation between %s and %s: %.4f", cfg.XCol, cfg.YCol, r)}
	default:
		return plotOutput{Err: fmt.Errorf("unknown plot type %q", cfg.PlotType)}
	}
}

// xyData resolves the X/Y value slices for the two-axis charts. In
// single-column mode Y is the chosen column over the row index. A
// non-numeric X column falls back to the row index with category ticks.
func xyData(ds *dataset.Dataset, cfg plotConfig) (xs, ys []float64, ticks []chart.Tick, err error) {
	if cfg.UseSingleColumn {
		ys, err = ds.Float(cfg.SingleColumn)
		if err != nil {
			return nil, nil, nil, err
		}
		xs = indexValues(len(ys))
		return xs, ys, nil, nil
	}
	ys, err = ds.Float(cfg.YCol)
	if err != nil {
		return nil, nil, nil, err
	}
	if ds.IsNumeric(cfg.XCol) {
		xs, err = ds.Float(cfg.XCol)
		if err != nil {
			return nil, nil, nil, err
		}
		return xs, ys, nil, nil
	}
	labels, err := ds.Strings(cfg.XCol)
	if err != nil {
		return nil, nil, nil, err
	}
	xs = indexValues(len(ys))
	ticks = categoryTicks(labels)
	return xs, ys, ticks, nil
}

func indexValues(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}

// categoryTicks labels index positions with category strings, thinning to at
// most 20 labels to keep the axis readable.
func categoryTicks(labels []string) []chart.Tick {
	step := 1
	if len(labels) > 20 {
		step = (len(labels) + 19) / 20
	}
	ticks := make([]chart.Tick, 0, len(labels)/step+1)
	for i := 0; i < len(labels); i += step {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: labels[i]})
	}
	return ticks
}

// renderXYChart draws the line plot (scatter=false) or scatter plot
// (scatter=true). Scatter honors the hue column by splitting the points into
// one colored series per category.
func renderXYChart(ds *dataset.Dataset, cfg plotConfig, w, h int, scatter bool) (image.Image, error) {
	xs, ys, ticks, err := xyData(ds, cfg)
	if err != nil {
		return nil, err
	}
	if scatter && cfg.UseSingleColumn {
		// a point cloud needs two columns; fall through with index X
		dataset.Warnf("scatter over a single column plots against the row index")
	}

	var series []chart.Series
	if scatter && cfg.HueCol != "" && cfg.HueCol != noHue && !cfg.UseSingleColumn {
		groups, order, gerr := hueGroups(ds, cfg.HueCol, xs, ys)
		if gerr != nil {
			return nil, gerr
		}
		for i, name := range order {
			g := groups[name]
			series = append(series, chart.ContinuousSeries{
				Name:    name,
				XValues: g[0],
				YValues: g[1],
				Style:   pointStyle(huePalette[i%len(huePalette)]),
			})
		}
	} else {
		st := lineStyle(chart.ColorBlue)
		if scatter {
			st = pointStyle(chart.ColorBlue)
		}
		series = append(series, chart.ContinuousSeries{XValues: xs, YValues: ys, Style: st})
	}

	ch := chart.Chart{
		Title:      cfg.Title,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis:      chart.XAxis{Name: cfg.XLabel, Ticks: ticks},
		YAxis:      chart.YAxis{Name: cfg.YLabel},
		Series:     series,
	}
	if mn, mx, ok := valueBounds(ys); ok {
		nMin, nMax := niceAxisBounds(mn, mx)
		ch.YAxis.Range = &chart.ContinuousRange{Min: nMin, Max: nMax}
		ch.YAxis.Ticks = niceTicks(nMin, nMax, 6)
	}
	if scatter && len(series) > 1 {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}
	return chartToImage(ch, w, h), nil
}

// hueGroups splits (xs, ys) into per-category pairs keyed by the hue column,
// preserving first-seen category order.
func hueGroups(ds *dataset.Dataset, hueCol string, xs, ys []float64) (map[string][2][]float64, []string, error) {
	cats, err := ds.Strings(hueCol)
	if err != nil {
		return nil, nil, err
	}
	groups := map[string][2][]float64{}
	var order []string
	for i := range xs {
		if i >= len(cats) {
			break
		}
		name := cats[i]
		g, ok := groups[name]
		if !ok {
			order = append(order, name)
		}
		g[0] = append(g[0], xs[i])
		g[1] = append(g[1], ys[i])
		groups[name] = g
	}
	return groups, order, nil
}

func renderBarChart(ds *dataset.Dataset, cfg plotConfig, w, h int) (image.Image, error) {
	var values []float64
	var labels []string
	if cfg.UseSingleColumn {
		vals, err := ds.Float(cfg.SingleColumn)
		if err != nil {
			return nil, err
		}
		values = vals
		labels = make([]string, len(vals))
		for i := range labels {
			labels[i] = fmt.Sprintf("%d", i)
		}
	} else {
		vals, err := ds.Float(cfg.YCol)
		if err != nil {
			return nil, err
		}
		labs, err := ds.Strings(cfg.XCol)
		if err != nil {
			return nil, err
		}
		values = vals
		labels = labs
	}
	bars := make([]chart.Value, 0, len(values))
	labelStep := 1
	if len(values) > 30 {
		labelStep = (len(values) + 29) / 30
	}
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		lab := ""
		if i%labelStep == 0 && i < len(labels) {
			lab = labels[i]
		}
		bars = append(bars, chart.Value{Value: v, Label: lab})
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("column %q has no numeric values to draw", cfg.YCol)
	}
	bc := chart.BarChart{
		Title:      cfg.Title,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 36}},
		YAxis:      chart.YAxis{Name: cfg.YLabel},
		BarWidth:   barWidth(w, len(bars)),
		Bars:       bars,
	}
	return barChartToImage(bc, w, h), nil
}

func renderHistogram(ds *dataset.Dataset, cfg plotConfig, w, h int) (image.Image, error) {
	vals, err := ds.Float(cfg.histogramColumn())
	if err != nil {
		return nil, err
	}
	bins, err := analysis.Histogram(vals, 0)
	if err != nil {
		return nil, err
	}
	bars := make([]chart.Value, len(bins))
	for i, b := range bins {
		bars[i] = chart.Value{Value: float64(b.Count), Label: formatTick(b.Start)}
	}
	bc := chart.BarChart{
		Title:      cfg.Title,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 36}},
		YAxis:      chart.YAxis{Name: "Count"},
		BarWidth:   barWidth(w, len(bars)),
		Bars:       bars,
	}
	return barChartToImage(bc, w, h), nil
}

// barWidth sizes bars to fill roughly 80% of the drawable width.
func barWidth(w, n int) int {
	if n == 0 {
		return 10
	}
	bw := (w * 8 / 10) / n
	if bw < 4 {
		bw = 4
	}
	if bw > 80 {
		bw = 80
	}
	return bw
}

func renderBoxPlot(ds *dataset.Dataset, cfg plotConfig, w, h int) (image.Image, error) {
	col := cfg.YCol
	if cfg.UseSingleColumn {
		col = cfg.SingleColumn
	}
	vals, err := ds.Float(col)
	if err != nil {
		return nil, err
	}
	bs, err := analysis.Box(vals)
	if err != nil {
		return nil, err
	}

	seg := func(x1, y1, x2, y2 float64, st chart.Style) chart.Series {
		return chart.ContinuousSeries{XValues: []float64{x1, x2}, YValues: []float64{y1, y2}, Style: st}
	}
	box := lineStyle(chart.ColorBlue)
	median := lineStyle(chart.ColorRed)
	whisker := chart.Style{StrokeWidth: 1, StrokeColor: chart.ColorBlue}

	series := []chart.Series{
		// whisker stem and caps
		seg(1, bs.Min, 1, bs.Q1, whisker),
		seg(1, bs.Q3, 1, bs.Max, whisker),
		seg(0.9, bs.Min, 1.1, bs.Min, whisker),
		seg(0.9, bs.Max, 1.1, bs.Max, whisker),
		// box edges
		seg(0.75, bs.Q1, 1.25, bs.Q1, box),
		seg(0.75, bs.Q3, 1.25, bs.Q3, box),
		seg(0.75, bs.Q1, 0.75, bs.Q3, box),
		seg(1.25, bs.Q1, 1.25, bs.Q3, box),
		// median
		seg(0.75, bs.Median, 1.25, bs.Median, median),
	}
	nMin, nMax := niceAxisBounds(bs.Min, bs.Max)
	ch := chart.Chart{
		Title:      cfg.Title,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis: chart.XAxis{
			Ticks: []chart.Tick{{Value: 0, Label: ""}, {Value: 1, Label: cfg.YLabel}, {Value: 2, Label: ""}},
			Range: &chart.ContinuousRange{Min: 0, Max: 2},
		},
		YAxis:  chart.YAxis{Name: cfg.YLabel, Range: &chart.ContinuousRange{Min: nMin, Max: nMax}, Ticks: niceTicks(nMin, nMax, 6)},
		Series: series,
	}
	return chartToImage(ch, w, h), nil
}

func renderNormalCurve(cfg plotConfig, w, h int) image.Image {
	xs, ys := analysis.NormalCurve()
	ch := chart.Chart{
		Title:      cfg.Title,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis:      chart.XAxis{Name: cfg.XLabel, Range: &chart.ContinuousRange{Min: -3, Max: 3}},
		YAxis:      chart.YAxis{Name: cfg.YLabel},
		Series: []chart.Series{
			chart.ContinuousSeries{XValues: xs, YValues: ys, Style: lineStyle(chart.ColorBlue)},
		},
	}
	return chartToImage(ch, w, h)
}

func renderOLS(ds *dataset.Dataset, cfg plotConfig, w, h int) (image.Image, string, error) {
	x, err := ds.Float(cfg.XCol)
	if err != nil {
		return nil, "", err
	}
	y, err := ds.Float(cfg.YCol)
	if err != nil {
		return nil, "", err
	}
	res, err := analysis.FitOLS(x, y, cfg.XCol, cfg.YCol)
	if err != nil {
		return nil, "", err
	}

	// sort the fitted line by X so it draws left to right
	type pt struct{ x, y float64 }
	line := make([]pt, len(res.XClean))
	for i := range res.XClean {
		line[i] = pt{res.XClean[i], res.Fitted[i]}
	}
	sort.Slice(line, func(i, j int) bool { return line[i].x < line[j].x })
	lx := make([]float64, len(line))
	ly := make([]float64, len(line))
	for i, p := range line {
		lx[i], ly[i] = p.x, p.y
	}

	ch := chart.Chart{
		Title:      cfg.Title,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis:      chart.XAxis{Name: cfg.XLabel},
		YAxis:      chart.YAxis{Name: cfg.YLabel},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: "Observed", XValues: res.XClean, YValues: res.YClean, Style: pointStyle(chart.ColorBlue)},
			chart.ContinuousSeries{Name: "OLS Line", XValues: lx, YValues: ly, Style: lineStyle(chart.ColorRed)},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return chartToImage(ch, w, h), res.Summary(), nil
}

// valueBounds returns the min and max of the non-NaN values.
func valueBounds(vals []float64) (float64, float64, bool) {
	mn := math.MaxFloat64
	mx := -math.MaxFloat64
	ok := false
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		if v < mn {
			mn = v
		}
		if v > mx {
			mx = v
		}
		ok = true
	}
	return mn, mx, ok
}

// chartToImage renders a chart to PNG and decodes it back into an image,
// falling back to a blank canvas so the UI visibly updates on render errors.
func chartToImage(ch chart.Chart, w, h int) image.Image {
	ch.Width = w
	ch.Height = h
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		fmt.Printf("[explorer] chart render error: %v; showing blank fallback\n", err)
		return blank(w, h)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		fmt.Printf("[explorer] chart decode error: %v; showing blank fallback\n", err)
		return blank(w, h)
	}
	return img
}

func barChartToImage(bc chart.BarChart, w, h int) image.Image {
	bc.Width = w
	bc.Height = h
	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		fmt.Printf("[explorer] bar chart render error: %v; showing blank fallback\n", err)
		return blank(w, h)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		fmt.Printf("[explorer] bar chart decode error: %v; showing blank fallback\n", err)
		return blank(w, h)
	}
	return img
}

func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	// subtle background
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 18, G: 18, B: 18, A: 255})
		}
	}
	return img
}

// niceAxisBounds expands [min,max] by a small margin and rounds to "nice"
// numbers for readability.
func niceAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	// 5% margin on both sides
	pad := span * 0.05
	if pad <= 0 {
		pad = 1
	}
	a := min - pad
	b := max + pad
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if !math.IsInf(mag, 0) && mag > 0 {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	return a, b
}

// niceTicks generates up to n desired tick marks between [min, max] using
// nice increments.
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil((max - min) / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	ticks := []chart.Tick{}
	for v := start; v <= end+bestStep/2; v += bestStep {
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
