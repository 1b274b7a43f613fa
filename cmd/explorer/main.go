package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	png "image/png"
	"os"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/Zohaibmuaz/Statistical-Data-Analysis-App/cmd/explorer/uihelpers"
	"github.com/Zohaibmuaz/Statistical-Data-Analysis-App/src/analysis"
	"github.com/Zohaibmuaz/Statistical-Data-Analysis-App/src/dataset"
)

type uiState struct {
	app    fyne.App
	window fyne.Window

	filePath string
	ds       *dataset.Dataset

	username  string
	cfg       plotConfig
	showHints bool

	// cached render inputs, rebuilt on every load
	previewRows [][]string
	summaries   []analysis.ColumnSummary

	// widgets
	headerLabel *widget.Label
	statusLabel *widget.Label
	fileLabel   *widget.Label

	previewTable *widget.Table
	statsTable   *widget.Table
	chartCanvas  *canvas.Image
	resultLabel  *widget.Label

	plotSelect   *widget.Select
	xSelect      *widget.Select
	ySelect      *widget.Select
	hueSelect    *widget.Select
	singleSelect *widget.Select
	singleChk    *widget.Check

	titleEntry       *widget.Entry
	xLabelEntry      *widget.Entry
	yLabelEntry      *widget.Entry
	singleLabelEntry *widget.Entry

	// true while label entries are being reset to recomputed defaults, so
	// their OnChanged callbacks don't trigger extra redraws
	applyingDefaults bool
}

// dark theme wrapper
type darkTheme struct{}

func (d *darkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}
func (d *darkTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (d *darkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (d *darkTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

const defaultUsername = "Zohaib Muaz"

func headerText(username string) string {
	return fmt.Sprintf("Student: %s\nCourse: STAT-402\nInstructor: Mam Kiran Iftikhar\nUniversity: University of Agriculture, Faisalabad", username)
}

func truncatePath(p string, max int) string {
	if len(p) <= max {
		return p
	}
	return "…" + p[len(p)-max:]
}

func main() {
	// CLI flag for opening a file directly
	var fileFlag string
	flag.StringVar(&fileFlag, "file", "", "Path to a CSV or XLSX dataset")
	flag.Parse()

	a := app.NewWithID("com.zohaibmuaz.statapp")
	a.Settings().SetTheme(&darkTheme{})
	w := a.NewWindow("STAT-402 Data Analysis App")
	w.Resize(fyne.NewSize(1200, 850))

	state := &uiState{
		app:      a,
		window:   w,
		filePath: fileFlag,
		username: defaultUsername,
		cfg:      plotConfig{PlotType: plotLine, HueCol: noHue},
	}
	// load showHints early so the checkbox reflects it on creation
	state.showHints = a.Preferences().BoolWithFallback("showHints", false)

	// header
	titleLabel := widget.NewLabelWithStyle("STAT-402 Data Analysis App", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	nameEntry := widget.NewEntry()
	nameEntry.SetText(state.username)
	state.headerLabel = widget.NewLabel(headerText(state.username))
	state.statusLabel = widget.NewLabel("")
	state.statusLabel.Wrapping = fyne.TextWrapWord
	state.fileLabel = widget.NewLabel(truncatePath(state.filePath, 48))

	// selection widgets, created without callbacks first; wired after the
	// canvases exist so early events can't touch a half-built window
	state.plotSelect = widget.NewSelect(plotTypes, nil)
	state.plotSelect.Selected = state.cfg.PlotType
	state.xSelect = widget.NewSelect([]string{}, nil)
	state.ySelect = widget.NewSelect([]string{}, nil)
	state.hueSelect = widget.NewSelect([]string{noHue}, nil)
	state.hueSelect.Selected = noHue
	state.singleChk = widget.NewCheck("Use just one column for plot", nil)
	state.singleSelect = widget.NewSelect([]string{}, nil)

	state.titleEntry = widget.NewEntry()
	state.xLabelEntry = widget.NewEntry()
	state.yLabelEntry = widget.NewEntry()
	state.singleLabelEntry = widget.NewEntry()
	hintsChk := widget.NewCheck("Hints", nil)
	hintsChk.SetChecked(state.showHints)

	// preview table: header row + first rows of the dataset
	state.previewTable = widget.NewTable(
		func() (int, int) {
			if len(state.previewRows) == 0 {
				return 1, 1
			}
			return len(state.previewRows), len(state.previewRows[0])
		},
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, o fyne.CanvasObject) {
			lbl := o.(*widget.Label)
			lbl.TextStyle = fyne.TextStyle{Bold: id.Row == 0}
			if id.Row >= len(state.previewRows) || id.Col >= len(state.previewRows[id.Row]) {
				lbl.SetText("")
				return
			}
			lbl.SetText(state.previewRows[id.Row][id.Col])
		},
	)

	// summary statistics table
	statsHeaders := []string{"Column", "Count", "Mean", "Std", "Min", "25%", "50%", "75%", "Max"}
	state.statsTable = widget.NewTable(
		func() (int, int) { return len(state.summaries) + 1, len(statsHeaders) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, o fyne.CanvasObject) {
			lbl := o.(*widget.Label)
			lbl.TextStyle = fyne.TextStyle{Bold: id.Row == 0}
			if id.Row == 0 {
				lbl.SetText(statsHeaders[id.Col])
				return
			}
			rix := id.Row - 1
			if rix >= len(state.summaries) {
				lbl.SetText("")
				return
			}
			s := state.summaries[rix]
			switch id.Col {
			case 0:
				lbl.SetText(s.Column)
			case 1:
				lbl.SetText(fmt.Sprintf("%d", s.Count))
			case 2:
				lbl.SetText(formatStat(s.Mean))
			case 3:
				lbl.SetText(formatStat(s.Std))
			case 4:
				lbl.SetText(formatStat(s.Min))
			case 5:
				lbl.SetText(formatStat(s.Q25))
			case 6:
				lbl.SetText(formatStat(s.Median))
			case 7:
				lbl.SetText(formatStat(s.Q75))
			case 8:
				lbl.SetText(formatStat(s.Max))
			}
		},
	)
	widths := uihelpers.ComputeStatsColumnWidths(1200)
	for i, cw := range widths {
		state.statsTable.SetColumnWidth(i, float32(cw))
	}

	// chart canvas and regression summary
	state.chartCanvas = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 60)))
	state.chartCanvas.FillMode = canvas.ImageFillContain
	state.chartCanvas.SetMinSize(fyne.NewSize(900, 420))
	state.resultLabel = widget.NewLabel("")
	state.resultLabel.TextStyle = fyne.TextStyle{Monospace: true}

	// sidebar, step by step like the original layout
	sidebar := container.NewVBox(
		widget.NewLabelWithStyle("Step 1: Load Data", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewButton("Open…", func() { openFileDialog(state) }),
		widget.NewButton("Load 'data.csv' from directory", func() {
			state.filePath = ""
			loadAll(state)
		}),
		state.fileLabel,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Step 2: Select Graph Type", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		state.plotSelect,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Step 3: Select Columns", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("X-axis:"), state.xSelect,
		widget.NewLabel("Y-axis:"), state.ySelect,
		widget.NewLabel("Group / Hue (optional):"), state.hueSelect,
		state.singleChk,
		widget.NewLabel("Column for Single Plot:"), state.singleSelect,
		widget.NewLabel("Custom Label for the Column:"), state.singleLabelEntry,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Step 4: Customize Labels", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Plot Title:"), state.titleEntry,
		widget.NewLabel("X-axis Label:"), state.xLabelEntry,
		widget.NewLabel("Y-axis Label:"), state.yLabelEntry,
		hintsChk,
	)
	sidebarScroll := container.NewVScroll(sidebar)
	sidebarScroll.SetMinSize(fyne.NewSize(300, 600))

	plotColumn := container.NewVBox(state.chartCanvas, state.resultLabel)
	plotScroll := container.NewVScroll(plotColumn)

	tabs := container.NewAppTabs(
		container.NewTabItem("Plot", plotScroll),
		container.NewTabItem("Preview", state.previewTable),
		container.NewTabItem("Summary Statistics", state.statsTable),
	)
	tabs.SetTabLocation(container.TabLocationTop)
	tabs.OnSelected = func(ti *container.TabItem) {
		state.app.Preferences().SetInt("selectedTabIndex", tabs.SelectedIndex())
	}

	top := container.NewVBox(
		titleLabel,
		container.NewBorder(nil, nil, widget.NewLabel("Enter Your Name:"), nil, nameEntry),
		state.headerLabel,
		state.statusLabel,
	)
	content := container.NewBorder(top, nil, sidebarScroll, nil, tabs)
	w.SetContent(content)

	// redraw charts on window resize so they scale with width
	if w.Canvas() != nil {
		prevW := int(w.Canvas().Size().Width)
		done := make(chan struct{})
		w.SetOnClosed(func() {
			savePrefs(state)
			close(done)
		})
		go func() {
			t := time.NewTicker(300 * time.Millisecond)
			defer t.Stop()
			for {
				select {
				case <-done:
					return
				case <-t.C:
					c := w.Canvas()
					if c == nil {
						continue
					}
					curW := int(c.Size().Width)
					if curW != prevW {
						prevW = curW
						fyne.Do(func() { redraw(state) })
					}
				}
			}
		}()
	}

	// now that canvases are ready, assign callbacks
	nameEntry.OnChanged = func(s string) {
		state.username = s
		state.headerLabel.SetText(headerText(s))
		savePrefs(state)
	}
	state.plotSelect.OnChanged = func(v string) {
		state.cfg.PlotType = v
		savePrefs(state)
		applyLabelDefaults(state, true)
		redraw(state)
	}
	state.xSelect.OnChanged = func(v string) {
		state.cfg.XCol = v
		applyLabelDefaults(state, true)
		redraw(state)
	}
	state.ySelect.OnChanged = func(v string) {
		state.cfg.YCol = v
		applyLabelDefaults(state, true)
		redraw(state)
	}
	state.hueSelect.OnChanged = func(v string) {
		state.cfg.HueCol = v
		redraw(state)
	}
	state.singleChk.OnChanged = func(b bool) {
		state.cfg.UseSingleColumn = b
		applyLabelDefaults(state, true)
		redraw(state)
	}
	state.singleSelect.OnChanged = func(v string) {
		state.cfg.SingleColumn = v
		applyLabelDefaults(state, true)
		redraw(state)
	}
	state.singleLabelEntry.OnChanged = func(s string) {
		state.cfg.SingleLabel = s
		if state.applyingDefaults {
			return
		}
		// the label feeds the title and Y-label defaults in single-column mode
		applyLabelDefaults(state, false)
		redraw(state)
	}
	state.titleEntry.OnChanged = func(s string) {
		state.cfg.Title = s
		if state.applyingDefaults {
			return
		}
		redraw(state)
	}
	state.xLabelEntry.OnChanged = func(s string) {
		state.cfg.XLabel = s
		if state.applyingDefaults {
			return
		}
		redraw(state)
	}
	state.yLabelEntry.OnChanged = func(s string) {
		state.cfg.YLabel = s
		if state.applyingDefaults {
			return
		}
		redraw(state)
	}
	hintsChk.OnChanged = func(b bool) {
		state.showHints = b
		savePrefs(state)
		redraw(state)
	}

	// menus, prefs, initial load
	buildMenus(state)
	loadPrefs(state, nameEntry, hintsChk, tabs)
	loadAll(state)

	w.ShowAndRun()
}

// applyLabelDefaults overwrites the title/axis-label entries with defaults
// recomputed from the current selections. User edits survive until the next
// upstream selection change. resetSingleLabel also resets the single-column
// label entry back to the column name.
func applyLabelDefaults(state *uiState, resetSingleLabel bool) {
	state.applyingDefaults = true
	defer func() { state.applyingDefaults = false }()
	if resetSingleLabel {
		state.cfg.SingleLabel = ""
		if state.singleLabelEntry != nil {
			state.singleLabelEntry.SetText(state.cfg.SingleColumn)
		}
	}
	state.cfg.Title = state.cfg.defaultTitle()
	state.cfg.XLabel = state.cfg.defaultXLabel()
	state.cfg.YLabel = state.cfg.defaultYLabel()
	if state.titleEntry != nil {
		state.titleEntry.SetText(state.cfg.Title)
	}
	if state.xLabelEntry != nil {
		state.xLabelEntry.SetText(state.cfg.XLabel)
	}
	if state.yLabelEntry != nil {
		state.yLabelEntry.SetText(state.cfg.YLabel)
	}
}

// menus and dialogs
func buildMenus(state *uiState) {
	if state == nil || state.window == nil || state.app == nil {
		return
	}
	var items []*fyne.MenuItem
	for _, f := range recentFiles(state) {
		f := f
		items = append(items, fyne.NewMenuItem(truncatePath(f, 48), func() {
			state.filePath = f
			savePrefs(state)
			loadAll(state)
		}))
	}
	clearRecent := fyne.NewMenuItem("Clear Recent", func() { clearRecentFiles(state); buildMenus(state) })
	recentMenu := fyne.NewMenu("Open Recent", append(items, clearRecent)...)
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open…", func() { openFileDialog(state) }),
		fyne.NewMenuItem("Reload", func() { loadAll(state) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Chart…", func() { exportChartPNG(state, state.chartCanvas, "chart.png") }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { state.window.Close() }),
	)
	state.window.SetMainMenu(fyne.NewMainMenu(fileMenu, recentMenu))

	canv := state.window.Canvas()
	if canv != nil {
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { openFileDialog(state) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { openFileDialog(state) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { loadAll(state) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { loadAll(state) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { state.window.Close() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { state.window.Close() })
	}
}

func openFileDialog(state *uiState) {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		defer rc.Close()
		state.filePath = rc.URI().Path()
		addRecentFile(state, state.filePath)
		savePrefs(state)
		buildMenus(state)
		loadAll(state)
	}, state.window)
	d.Show()
}

func exportChartPNG(state *uiState, img *canvas.Image, defaultName string) {
	if state == nil || state.window == nil || img == nil || img.Image == nil {
		dialog.ShowInformation("Export", "No chart to export.", state.window)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		_ = png.Encode(wc, img.Image)
	}, state.window)
	fs.SetFileName(defaultName)
	fs.Show()
}

// load the dataset and refresh everything derived from it
func loadAll(state *uiState) {
	var (
		ds  *dataset.Dataset
		err error
	)
	if state.filePath == "" {
		ds, err = dataset.LoadDefault()
		if err != nil {
			if errors.Is(err, dataset.ErrNoDefaultFile) {
				state.ds = nil
				state.statusLabel.SetText("No dataset loaded. Open a file or place 'data.csv' in the working directory.")
				refreshDataWidgets(state)
				return
			}
			dialog.ShowError(err, state.window)
			return
		}
		state.filePath = ds.Path()
	} else {
		ds, err = dataset.Load(state.filePath)
		if err != nil {
			state.statusLabel.SetText(fmt.Sprintf("loading %s: %v", state.filePath, err))
			dialog.ShowError(err, state.window)
			return
		}
	}
	state.ds = ds
	state.fileLabel.SetText(truncatePath(state.filePath, 48))
	fmt.Printf("[explorer] loaded %d rows x %d columns from %s\n", ds.NumRows(), ds.NumCols(), state.filePath)
	state.statusLabel.SetText(fmt.Sprintf("Loaded %d rows × %d columns from %s.", ds.NumRows(), ds.NumCols(), truncatePath(state.filePath, 48)))
	refreshDataWidgets(state)
	redraw(state)
}

// refreshDataWidgets repopulates the column selectors, preview and summary
// table from the loaded dataset (or clears them when none is loaded).
func refreshDataWidgets(state *uiState) {
	if state.ds == nil {
		state.previewRows = nil
		state.summaries = nil
		if state.previewTable != nil {
			state.previewTable.Refresh()
		}
		if state.statsTable != nil {
			state.statsTable.Refresh()
		}
		return
	}
	ds := state.ds
	cols := ds.Columns()
	x, y := defaultColumns(cols)
	state.cfg.XCol, state.cfg.YCol = x, y
	state.cfg.SingleColumn = x
	state.cfg.HueCol = noHue

	state.xSelect.Options = cols
	state.xSelect.Selected = x
	state.xSelect.Refresh()
	state.ySelect.Options = cols
	state.ySelect.Selected = y
	state.ySelect.Refresh()
	state.hueSelect.Options = append([]string{noHue}, ds.TextColumns()...)
	state.hueSelect.Selected = noHue
	state.hueSelect.Refresh()
	state.singleSelect.Options = cols
	state.singleSelect.Selected = x
	state.singleSelect.Refresh()

	state.previewRows = ds.Preview(5)
	state.summaries = analysis.Describe(ds)
	if state.window != nil && state.window.Canvas() != nil {
		winW := state.window.Canvas().Size().Width
		cw := uihelpers.ComputePreviewColumnWidth(winW, ds.NumCols())
		for i := 0; i < ds.NumCols(); i++ {
			state.previewTable.SetColumnWidth(i, float32(cw))
		}
		widths := uihelpers.ComputeStatsColumnWidths(winW)
		for i, w := range widths {
			state.statsTable.SetColumnWidth(i, float32(w))
		}
	}
	state.previewTable.Refresh()
	state.statsTable.Refresh()

	applyLabelDefaults(state, true)
}

// redraw recomputes the plot output for the current configuration.
func redraw(state *uiState) {
	if state == nil || state.chartCanvas == nil {
		return
	}
	if state.ds == nil {
		state.statusLabel.SetText("No dataset loaded. Open a file or place 'data.csv' in the working directory.")
		return
	}
	w, h := chartSize(state)
	out := dispatchPlot(state.ds, state.cfg, w, h)
	switch {
	case out.Warning != "":
		state.statusLabel.SetText(out.Warning)
	case out.Err != nil:
		state.statusLabel.SetText(out.Err.Error())
	case out.Scalar != "":
		state.statusLabel.SetText(out.Scalar)
	default:
		state.statusLabel.SetText("")
	}
	if out.Image != nil {
		img := out.Image
		if state.showHints {
			if hint := plotHint(state.cfg.PlotType); hint != "" {
				img = drawHint(img, hint)
			}
		}
		state.chartCanvas.Image = img
		state.chartCanvas.SetMinSize(fyne.NewSize(float32(w), float32(h)))
		state.chartCanvas.Refresh()
	}
	state.resultLabel.SetText(out.Text)
}

// plotHint returns the one-line reading aid drawn onto the chart image when
// hints are enabled.
func plotHint(plotType string) string {
	switch plotType {
	case plotHistogram:
		return "Hint: Bar heights are counts per value range. Skewed shapes suggest non-normal data."
	case plotBox:
		return "Hint: The box spans Q1 to Q3 with the median in red; whiskers reach min and max."
	case plotHeatmap:
		return "Hint: Red cells move together, blue cells move oppositely. Values near 0 mean no linear link."
	case plotNormal:
		return "Hint: Reference curve only. Compare your histogram's shape against it."
	case plotOLS:
		return "Hint: The red line is the fitted trend. Check R-squared below before trusting it."
	default:
		return ""
	}
}

func chartSize(state *uiState) (int, int) {
	if state == nil || state.window == nil || state.window.Canvas() == nil {
		return 900, 450
	}
	sz := state.window.Canvas().Size()
	// sidebar takes ~300px; charts use most of the rest
	return uihelpers.ComputeChartDimensions(int(sz.Width) - 340)
}

func formatStat(v float64) string {
	if v != v { // NaN
		return "-"
	}
	return fmt.Sprintf("%.4g", v)
}

// recent files helpers
func recentFiles(state *uiState) []string {
	raw := state.app.Preferences().StringWithFallback("recentFiles", "")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			out = append(out, p)
		}
	}
	return out
}

func addRecentFile(state *uiState, path string) {
	prefs := state.app.Preferences()
	list := recentFiles(state)
	filtered := []string{path}
	for _, f := range list {
		if f != path && len(filtered) < 10 {
			filtered = append(filtered, f)
		}
	}
	prefs.SetString("recentFiles", strings.Join(filtered, "\n"))
}

func clearRecentFiles(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	state.app.Preferences().SetString("recentFiles", "")
}

// prefs
func savePrefs(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	prefs.SetString("lastFile", state.filePath)
	prefs.SetString("username", state.username)
	prefs.SetString("plotType", state.cfg.PlotType)
	prefs.SetBool("showHints", state.showHints)
}

func loadPrefs(state *uiState, nameEntry *widget.Entry, hintsChk *widget.Check, tabs *container.AppTabs) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	if f := prefs.StringWithFallback("lastFile", state.filePath); f != "" {
		state.filePath = f
		if state.fileLabel != nil {
			state.fileLabel.SetText(truncatePath(state.filePath, 48))
		}
	}
	if u := prefs.StringWithFallback("username", state.username); u != "" {
		state.username = u
		if nameEntry != nil {
			nameEntry.SetText(u)
		}
	}
	if pt := prefs.StringWithFallback("plotType", state.cfg.PlotType); pt != "" {
		for _, known := range plotTypes {
			if pt == known {
				state.cfg.PlotType = pt
				if state.plotSelect != nil {
					state.plotSelect.Selected = pt
					state.plotSelect.Refresh()
				}
				break
			}
		}
	}
	state.showHints = prefs.BoolWithFallback("showHints", state.showHints)
	if hintsChk != nil {
		hintsChk.SetChecked(state.showHints)
	}
	if tabs != nil {
		idx := prefs.IntWithFallback("selectedTabIndex", 0)
		if idx >= 0 && idx < len(tabs.Items) {
			tabs.SelectIndex(idx)
		}
	}
}
