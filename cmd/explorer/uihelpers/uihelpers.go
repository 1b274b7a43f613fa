package uihelpers

// ComputeChartDimensions applies the width/height clamp rules used for charts.
// Input: desired raw width (e.g., canvas width). Returns clamped width & height.
func ComputeChartDimensions(rawW int) (int, int) {
	w := rawW
	if w < 800 {
		w = 800
	}
	h := int(float32(w) * 0.5)
	if h < 320 {
		h = 320
	}
	if h > 560 {
		h = 560
	}
	return w, h
}

// ComputeStatsColumnWidths returns the 9 column widths of the summary
// statistics table for a given window width.
// Order: Column, Count, Mean, Std, Min, 25%, 50%, 75%, Max.
func ComputeStatsColumnWidths(winW float32) [9]int {
	const compactBreakpoint = 980
	if winW < compactBreakpoint {
		return [9]int{120, 55, 75, 75, 75, 75, 75, 75, 75}
	}
	return [9]int{180, 70, 95, 95, 95, 95, 95, 95, 95}
}

// ComputePreviewColumnWidth sizes the preview table columns to share the
// available width, clamped so narrow tables stay readable and wide ones do
// not produce absurdly wide cells.
func ComputePreviewColumnWidth(winW float32, cols int) int {
	if cols < 1 {
		cols = 1
	}
	w := int(winW*0.7) / cols
	if w < 80 {
		w = 80
	}
	if w > 260 {
		w = 260
	}
	return w
}
