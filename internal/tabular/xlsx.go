package tabular

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"
)

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("failed to close workbook", "path", path, "error", err)
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	return f.GetRows(sheets[0])
}

// writeXLSX writes the table to the first sheet, named after the file's
// contents ("users" or "tasks").
func writeXLSX(path string, t table) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("failed to close workbook", "path", path, "error", err)
		}
	}()

	sheet := f.GetSheetName(0)
	if t.sheet != "" {
		if err := f.SetSheetName(sheet, t.sheet); err != nil {
			return fmt.Errorf("failed to name sheet: %w", err)
		}
		sheet = t.sheet
	}

	rows := append([][]string{t.header}, t.rows...)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
