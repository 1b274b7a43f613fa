package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Zohaibmuaz/Statistical-Data-Analysis-App/src/analysis"
	"github.com/Zohaibmuaz/Statistical-Data-Analysis-App/src/dataset"
)

// heatmapCellColor maps a correlation in [-1, 1] onto a diverging
// blue-white-red ramp. NaN cells (undefined correlations) render gray.
func heatmapCellColor(r float64) color.RGBA {
	if math.IsNaN(r) {
		return color.RGBA{R: 120, G: 120, B: 120, A: 255}
	}
	if r > 1 {
		r = 1
	}
	if r < -1 {
		r = -1
	}
	if r >= 0 {
		// white -> red
		v := uint8(255 - r*200)
		return color.RGBA{R: 255, G: v, B: v, A: 255}
	}
	// white -> blue
	v := uint8(255 + r*200)
	return color.RGBA{R: v, G: v, B: 255, A: 255}
}

// renderCorrelationHeatmap draws the pairwise Pearson matrix of all numeric
// columns as a labeled grid. go-chart has no heatmap type, so this paints the
// image directly and annotates it with the same bitmap font used for hints.
func renderCorrelationHeatmap(ds *dataset.Dataset, w int) (image.Image, error) {
	cols, m, err := analysis.CorrelationMatrix(ds)
	if err != nil {
		return nil, err
	}
	n := len(cols)

	face := basicfont.Face7x13
	labelW := 0
	meas := &font.Drawer{Face: face}
	for _, c := range cols {
		if tw := meas.MeasureString(c).Ceil(); tw > labelW {
			labelW = tw
		}
	}
	const pad = 10
	left := labelW + 2*pad
	top := face.Height + 2*pad
	cell := (w - left - pad) / n
	if cell < 24 {
		cell = 24
	}
	if cell > 110 {
		cell = 110
	}
	width := left + cell*n + pad
	height := top + cell*n + pad

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: 32, G: 32, B: 36, A: 255}), image.Point{}, draw.Src)

	white := image.NewUniform(color.RGBA{R: 235, G: 235, B: 235, A: 255})
	black := image.NewUniform(color.RGBA{R: 20, G: 20, B: 20, A: 255})

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x0 := left + j*cell
			y0 := top + i*cell
			rect := image.Rect(x0, y0, x0+cell-1, y0+cell-1)
			draw.Draw(img, rect, image.NewUniform(heatmapCellColor(m[i][j])), image.Point{}, draw.Src)

			txt := formatCorr(m[i][j])
			dr := &font.Drawer{Dst: img, Src: black, Face: face}
			tw := dr.MeasureString(txt).Ceil()
			dr.Dot = fixed.Point26_6{
				X: fixed.I(x0 + (cell-1-tw)/2),
				Y: fixed.I(y0 + (cell-1+face.Ascent)/2),
			}
			dr.DrawString(txt)
		}
	}

	// row labels on the left, column labels across the top
	for i, c := range cols {
		dr := &font.Drawer{Dst: img, Src: white, Face: face}
		dr.Dot = fixed.Point26_6{
			X: fixed.I(left - pad - dr.MeasureString(c).Ceil()),
			Y: fixed.I(top + i*cell + (cell+face.Ascent)/2),
		}
		dr.DrawString(c)
	}
	for j, c := range cols {
		label := c
		maxW := cell - 4
		for len(label) > 1 && meas.MeasureString(label).Ceil() > maxW {
			label = label[:len(label)-1]
		}
		dr := &font.Drawer{Dst: img, Src: white, Face: face}
		tw := dr.MeasureString(label).Ceil()
		dr.Dot = fixed.Point26_6{
			X: fixed.I(left + j*cell + (cell-tw)/2),
			Y: fixed.I(pad + face.Ascent),
		}
		dr.DrawString(label)
	}
	return img, nil
}

func formatCorr(r float64) string {
	if math.IsNaN(r) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", r)
}

// drawHint overlays a one-line hint along the bottom edge of a chart image.
func drawHint(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	pad := 6
	face := basicfont.Face7x13
	textCol := image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	shadowCol := image.NewUniform(color.RGBA{R: 0, G: 0, B: 0, A: 180})
	dr := &font.Drawer{Dst: rgba, Src: textCol, Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := b.Min.X + 8
	y := b.Max.Y - 6
	bg := image.NewUniform(color.RGBA{R: 0, G: 0, B: 0, A: 200})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad/2)
	draw.Draw(rgba, rect, bg, image.Point{}, draw.Over)
	drShadow := &font.Drawer{Dst: rgba, Src: shadowCol, Face: face, Dot: fixed.Point26_6{X: fixed.I(x + 1), Y: fixed.I(y + 1)}}
	drShadow.DrawString(text)
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return rgba
}
