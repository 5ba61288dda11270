package excel

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"inferstat/domain/stats"
	"inferstat/internal"
)

// DataReader reads tabular observation data from Excel and CSV files and
// converts it into the series and group structures the statistical
// engines consume. It is the only place in the module that touches the
// filesystem.
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a reader for an .xlsx or .csv file, dispatching
// on the file extension.
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// ReadRows returns the header row and the raw data rows.
func (r *DataReader) ReadRows() ([]string, [][]string, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		return nil, nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
	if err != nil {
		return nil, nil, err
	}

	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("%s file must have at least a header row and one data row", strings.ToUpper(r.fileType))
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	internal.DefaultLogger.Info("[DataReader] %s file processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), len(headers), len(rows)-1)
	return headers, rows[1:], nil
}

func (r *DataReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read first sheet: %w", err)
	}
	return rows, nil
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

// NumericColumns reads the file into an ordered column set. Cells that do
// not parse as numbers (and short rows) become NaN, the engines' marker
// for a missing observation; semantic validation (minimum size, variance)
// stays with the engines.
func (r *DataReader) NumericColumns() (stats.Columns, error) {
	headers, rows, err := r.ReadRows()
	if err != nil {
		return nil, err
	}

	cols := make(stats.Columns, len(headers))
	for i, h := range headers {
		cols[i] = stats.Column{
			Name:   h,
			Values: make([]float64, len(rows)),
		}
		for j, row := range rows {
			cols[i].Values[j] = parseCell(row, i)
		}
	}
	return cols, nil
}

// GroupBy reads long-format data into a GroupSet: one row per
// observation, labelCol naming the group and valueCol carrying the
// number. Group order follows first appearance of each label. Rows whose
// value cell does not parse are dropped.
func (r *DataReader) GroupBy(labelCol, valueCol string) (stats.GroupSet, error) {
	headers, rows, err := r.ReadRows()
	if err != nil {
		return nil, err
	}

	labelIdx, valueIdx := -1, -1
	for i, h := range headers {
		if h == labelCol {
			labelIdx = i
		}
		if h == valueCol {
			valueIdx = i
		}
	}
	if labelIdx < 0 {
		return nil, fmt.Errorf("column %q not found", labelCol)
	}
	if valueIdx < 0 {
		return nil, fmt.Errorf("column %q not found", valueCol)
	}

	groups := make(stats.GroupSet, 0)
	index := make(map[string]int)
	dropped := 0
	for _, row := range rows {
		if labelIdx >= len(row) {
			dropped++
			continue
		}
		label := strings.TrimSpace(row[labelIdx])
		value := parseCell(row, valueIdx)
		if label == "" || math.IsNaN(value) {
			dropped++
			continue
		}
		pos, ok := index[label]
		if !ok {
			pos = len(groups)
			index[label] = pos
			groups = append(groups, stats.Group{Label: label})
		}
		groups[pos].Values = append(groups[pos].Values, value)
	}

	if dropped > 0 {
		internal.DefaultLogger.Warn("[DataReader] dropped %d rows without a usable %q value", dropped, valueCol)
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("no usable rows for columns %q/%q", labelCol, valueCol)
	}
	return groups, nil
}

func parseCell(row []string, idx int) float64 {
	if idx >= len(row) {
		return math.NaN()
	}
	cell := strings.TrimSpace(row[idx])
	if cell == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
