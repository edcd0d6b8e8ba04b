package export

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/Miguelburitica/accounts-project/internal/csvcodec"
	interfaces "github.com/Miguelburitica/accounts-project/internal/interfaces"
	"github.com/xuri/excelize/v2"
)

const (
	defaultSheet = "Sheet1"
	maxSheetName = 31
)

// Workbook collects emitted CSV files into one spreadsheet, a sheet per file.
// Numbers and booleans keep their cell type.
type Workbook struct {
	mu     sync.Mutex
	file   *excelize.File
	sheets int
}

func NewWorkbook() *Workbook {
	return &Workbook{file: excelize.NewFile()}
}

func (w *Workbook) Emit(ctx context.Context, filename, content string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	name := SheetName(filename)
	if idx, _ := w.file.GetSheetIndex(name); idx >= 0 && w.sheets > 0 {
		return fmt.Errorf("emit %q: sheet %q already exists", filename, name)
	}

	if w.sheets == 0 {
		if err := w.file.SetSheetName(defaultSheet, name); err != nil {
			return err
		}
	} else if _, err := w.file.NewSheet(name); err != nil {
		return err
	}
	w.sheets++

	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}

	header, _, _ := strings.Cut(content, "\n")
	columns := csvcodec.SplitLine(strings.TrimSpace(header))
	if err := w.setRow(name, 1, toCells(columns)); err != nil {
		return err
	}
	for i, record := range csvcodec.Parse(content) {
		row := make([]any, len(columns))
		for j, column := range columns {
			v, _ := record.Get(column)
			row[j] = cellValue(v)
		}
		if err := w.setRow(name, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func (w *Workbook) setRow(sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return w.file.SetSheetRow(sheet, cell, &values)
}

// Sheets lists the sheet names in emit order.
func (w *Workbook) Sheets() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.sheets == 0 {
		return nil
	}
	return w.file.GetSheetList()
}

// Rows returns the cell text of a sheet.
func (w *Workbook) Rows(sheet string) ([][]string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.file.GetRows(sheet)
}

func (w *Workbook) WriteTo(out io.Writer) (int64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.file.WriteTo(out)
}

func (w *Workbook) SaveAs(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.file.SaveAs(path)
}

func (w *Workbook) Close() error {
	return w.file.Close()
}

// SheetName derives a sheet name from a file name: the extension is dropped
// and the result cut to the 31 characters spreadsheets allow.
func SheetName(filename string) string {
	name := strings.TrimSuffix(filename, ".csv")
	if len(name) > maxSheetName {
		name = name[:maxSheetName]
	}
	return name
}

func toCells(columns []string) []any {
	cells := make([]any, len(columns))
	for i, c := range columns {
		cells[i] = c
	}
	return cells
}

func cellValue(v csvcodec.Value) any {
	switch v.Kind() {
	case csvcodec.Null:
		return nil
	case csvcodec.Bool:
		return v.Bool()
	case csvcodec.Number:
		return v.Number().InexactFloat64()
	}
	return v.String()
}

var _ interfaces.FileEmitter = (*Workbook)(nil)
