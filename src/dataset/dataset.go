package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
)

// DefaultFileName is the fallback dataset read from the working directory
// when no file has been chosen in the UI.
const DefaultFileName = "data.csv"

// ErrNoDefaultFile signals that the fallback data.csv was not present.
// Callers distinguish this recoverable condition from parse failures.
var ErrNoDefaultFile = errors.New("default dataset not found")

// ErrUnsupportedFormat signals a file extension other than csv/xlsx.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Dataset is one loaded tabular file. Column names and order are preserved
// exactly as parsed; the frame is never mutated after loading.
type Dataset struct {
	df   dataframe.DataFrame
	path string
}

// Load reads a CSV or Excel file into a Dataset. The format is chosen by
// file extension; anything else is rejected with ErrUnsupportedFormat.
func Load(path string) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	case ".xlsx", ".xls":
		return loadExcel(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadDefault loads data.csv from the working directory. A missing file is
// reported as ErrNoDefaultFile so the UI can show a warning instead of an error.
func LoadDefault() (*Dataset, error) {
	if _, err := os.Stat(DefaultFileName); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoDefaultFile, DefaultFileName)
		}
		return nil, err
	}
	return loadCSV(DefaultFileName)
}

func loadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	df := dataframe.ReadCSV(f)
	if df.Err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), df.Err)
	}
	Infof("loaded %s: %d rows x %d columns", filepath.Base(path), df.Nrow(), df.Ncol())
	return &Dataset{df: df, path: path}, nil
}

func loadExcel(path string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("parse %s: workbook has no sheets", filepath.Base(path))
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	if len(rows) < 1 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("parse %s: sheet %q has no header row", filepath.Base(path), sheets[0])
	}
	// excelize trims trailing empty cells per row; pad back to header width
	width := len(rows[0])
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		if len(r) < width {
			padded := make([]string, width)
			copy(padded, r)
			r = padded
		}
		records = append(records, r[:width])
	}
	df := dataframe.LoadRecords(records)
	if df.Err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), df.Err)
	}
	Infof("loaded %s (sheet %q): %d rows x %d columns", filepath.Base(path), sheets[0], df.Nrow(), df.Ncol())
	return &Dataset{df: df, path: path}, nil
}

// FromRecords builds a Dataset from in-memory records (header first).
// Used by tests and anywhere a frame is assembled without a file.
func FromRecords(records [][]string) (*Dataset, error) {
	df := dataframe.LoadRecords(records)
	if df.Err != nil {
		return nil, df.Err
	}
	return &Dataset{df: df}, nil
}

// Path returns the file the dataset was loaded from ("" for in-memory frames).
func (d *Dataset) Path() string { return d.path }

// NumRows returns the number of data rows (header excluded).
func (d *Dataset) NumRows() int { return d.df.Nrow() }

// NumCols returns the number of columns.
func (d *Dataset) NumCols() int { return d.df.Ncol() }

// Columns returns all column names in original order.
func (d *Dataset) Columns() []string { return d.df.Names() }

// NumericColumns returns the names of int/float typed columns, in order.
func (d *Dataset) NumericColumns() []string {
	names := d.df.Names()
	types := d.df.Types()
	out := make([]string, 0, len(names))
	for i, t := range types {
		if t == series.Int || t == series.Float {
			out = append(out, names[i])
		}
	}
	return out
}

// TextColumns returns the names of string typed columns, in order. These are
// the candidates offered as group/hue columns.
func (d *Dataset) TextColumns() []string {
	names := d.df.Names()
	types := d.df.Types()
	out := make([]string, 0, len(names))
	for i, t := range types {
		if t == series.String {
			out = append(out, names[i])
		}
	}
	return out
}

// IsNumeric reports whether the named column parsed as int or float.
func (d *Dataset) IsNumeric(col string) bool {
	names := d.df.Names()
	types := d.df.Types()
	for i, n := range names {
		if n == col {
			return types[i] == series.Int || types[i] == series.Float
		}
	}
	return false
}

// Float returns the named column as float64 values. Non-numeric columns are
// rejected rather than silently converted to NaNs.
func (d *Dataset) Float(col string) ([]float64, error) {
	if !d.hasColumn(col) {
		return nil, fmt.Errorf("no such column: %q", col)
	}
	if !d.IsNumeric(col) {
		return nil, fmt.Errorf("column %q is not numeric", col)
	}
	s := d.df.Col(col)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Float(), nil
}

// Strings returns the named column rendered as strings (any type).
func (d *Dataset) Strings(col string) ([]string, error) {
	if !d.hasColumn(col) {
		return nil, fmt.Errorf("no such column: %q", col)
	}
	s := d.df.Col(col)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Records(), nil
}

// Preview returns the header row plus up to n data rows, values as displayed.
func (d *Dataset) Preview(n int) [][]string {
	records := d.df.Records() // header first
	if n < 0 {
		n = 0
	}
	if len(records) > n+1 {
		records = records[:n+1]
	}
	return records
}

func (d *Dataset) hasColumn(col string) bool {
	for _, n := range d.df.Names() {
		if n == col {
			return true
		}
	}
	return false
}
