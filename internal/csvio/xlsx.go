package csvio

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/thenoetrevino/phonebook/internal/models"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Contacts"

func readXLSX(path string) ([]Row, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, openErr(path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrIO, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("failed to close spreadsheet", "path", path, "error", err)
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", models.ErrMalformedHeader)
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrIO, err)
	}
	return fromRecords(records)
}

func writeXLSX(path string, contacts []models.Fields) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("failed to close spreadsheet", "path", path, "error", err)
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("%w: %w", models.ErrIO, err)
	}

	if err := setRow(f, 1, models.Headers); err != nil {
		return err
	}
	for i, c := range contacts {
		if err := setRow(f, i+2, toRecord(c)); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("%w: %w", models.ErrIO, err)
	}
	return nil
}

func setRow(f *excelize.File, row int, values []string) error {
	cellRef, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrIO, err)
	}

	// Numbers are stored as text so leading zeros survive
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheetName, cellRef, &cells); err != nil {
		return fmt.Errorf("%w: %w", models.ErrIO, err)
	}
	return nil
}
