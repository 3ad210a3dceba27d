package loader

import (
	"fmt"
	"io"
	"strings"
	"time"

	"ai-need-analyzer/internal/logger"
	"ai-need-analyzer/internal/models"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

// Loader reads survey workbooks into immutable tables
type Loader struct {
	logger logger.Logger
}

// New creates a loader that reports progress to log
func New(log logger.Logger) *Loader {
	return &Loader{logger: log}
}

// Load opens the workbook at path and builds a survey table from its first sheet.
// The file is closed before Load returns.
func (l *Loader) Load(path string) (*models.SurveyTable, error) {
	start := time.Now()

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Op: "open", Err: err}
	}
	table, err := l.readWorkbook(path, f)
	if closeErr := f.Close(); closeErr != nil && err == nil {
		err = &LoadError{Path: path, Op: "close", Err: closeErr}
	}
	if err != nil {
		return nil, err
	}

	l.logger.Info("Loader", "survey loaded", map[string]interface{}{
		"path":        path,
		"rows":        table.Len(),
		"industries":  len(table.Industries()),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return table, nil
}

// LoadReader builds a survey table from a workbook stream. name is used
// for error messages and as the table source.
func (l *Loader) LoadReader(name string, r io.Reader) (*models.SurveyTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &LoadError{Path: name, Op: "open", Err: err}
	}
	defer f.Close()

	return l.readWorkbook(name, f)
}

func (l *Loader) readWorkbook(path string, f *excelize.File) (*models.SurveyTable, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &LoadError{Path: path, Op: "read", Err: ErrNoSheet}
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &LoadError{Path: path, Op: "read", Err: fmt.Errorf("sheet %q: %w", sheets[0], err)}
	}

	l.logger.Debug("Loader", "sheet read", map[string]interface{}{
		"sheet": sheets[0],
		"rows":  len(rows),
	})

	return buildTable(path, rows)
}

// buildTable turns raw sheet rows into a table. rows[models.HeaderRowOffset]
// is the header; everything after it is data.
func buildTable(path string, rows [][]string) (*models.SurveyTable, error) {
	if len(rows) <= models.HeaderRowOffset {
		return nil, &LoadError{Path: path, Op: "parse", Err: ErrNoHeader}
	}

	indexes, err := locateColumns(rows[models.HeaderRowOffset])
	if err != nil {
		return nil, &LoadError{Path: path, Op: "parse", Err: err}
	}

	data := rows[models.HeaderRowOffset+1:]
	if len(data) == 0 {
		return models.NewSurveyTable(path, nil), nil
	}

	df, err := toDataFrame(data, indexes)
	if err != nil {
		return nil, &LoadError{Path: path, Op: "parse", Err: err}
	}

	return models.NewSurveyTable(path, toRows(df)), nil
}

// locateColumns finds each required header and returns its column index in
// models.SourceColumns order.
func locateColumns(header []string) ([]int, error) {
	positions := make(map[string]int, len(header))
	for i, cell := range header {
		name := normalize(cell)
		if _, dup := positions[name]; !dup {
			positions[name] = i
		}
	}

	indexes := make([]int, len(models.SourceColumns))
	var missing []string
	for i, col := range models.SourceColumns {
		idx, ok := positions[normalize(col.Header)]
		if !ok {
			missing = append(missing, col.Header)
			continue
		}
		indexes[i] = idx
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return indexes, nil
}

// toDataFrame selects the required columns, renames them, coerces the
// numeric ones, drops rows without an industry and derives the totals.
func toDataFrame(data [][]string, indexes []int) (dataframe.DataFrame, error) {
	if !hasLabeledRow(data, indexes[0]) {
		return dataframe.New(), nil
	}

	columns := make([]series.Series, len(models.SourceColumns))
	for i, col := range models.SourceColumns {
		values := make([]string, len(data))
		for r, row := range data {
			values[r] = cell(row, indexes[i])
		}

		if col.Column == models.ColIndustry {
			columns[i] = series.New(values, series.String, col.Column)
		} else {
			columns[i] = series.New(values, series.Float, col.Column)
		}
	}

	df := dataframe.New(columns...)
	if df.Err != nil {
		return df, fmt.Errorf("build frame: %w", df.Err)
	}

	df = df.Filter(dataframe.F{
		Colname:    models.ColIndustry,
		Comparator: series.CompFunc,
		Comparando: func(el series.Element) bool {
			return !el.IsNA() && el.String() != ""
		},
	})
	if df.Err != nil {
		return df, fmt.Errorf("drop unlabeled rows: %w", df.Err)
	}
	if df.Nrow() == 0 {
		return df, nil
	}

	df = df.Mutate(series.New(
		addColumns(df.Col(models.ColVeryNeed).Float(), df.Col(models.ColSomeNeed).Float()),
		series.Float, models.ColNeedTotal,
	)).Mutate(series.New(
		addColumns(df.Col(models.ColLessNeed).Float(), df.Col(models.ColNeverNeed).Float()),
		series.Float, models.ColNoNeedTotal,
	))
	if df.Err != nil {
		return df, fmt.Errorf("derive totals: %w", df.Err)
	}
	return df, nil
}

func toRows(df dataframe.DataFrame) []models.SurveyRow {
	if df.Nrow() == 0 {
		return nil
	}

	industries := df.Col(models.ColIndustry).Records()
	very := df.Col(models.ColVeryNeed).Float()
	some := df.Col(models.ColSomeNeed).Float()
	less := df.Col(models.ColLessNeed).Float()
	never := df.Col(models.ColNeverNeed).Float()
	need := df.Col(models.ColNeedTotal).Float()
	noNeed := df.Col(models.ColNoNeedTotal).Float()

	rows := make([]models.SurveyRow, len(industries))
	for i := range industries {
		rows[i] = models.SurveyRow{
			Industry:    industries[i],
			VeryNeed:    very[i],
			SomeNeed:    some[i],
			LessNeed:    less[i],
			NeverNeed:   never[i],
			NeedTotal:   need[i],
			NoNeedTotal: noNeed[i],
		}
	}
	return rows
}

func hasLabeledRow(data [][]string, industryIdx int) bool {
	for _, row := range data {
		if cell(row, industryIdx) != "" {
			return true
		}
	}
	return false
}

func addColumns(a, b []float64) []float64 {
	sum := make([]float64, len(a))
	for i := range a {
		sum[i] = a[i] + b[i]
	}
	return sum
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return normalize(row[idx])
}

// normalize trims and NFC-normalizes a cell so decomposed Hangul compares
// equal to the composed constants.
func normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
