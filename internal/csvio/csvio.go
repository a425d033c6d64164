// Package csvio reads and writes contact files.
// CSV is the native format; a path ending in .xlsx is handled as a spreadsheet
// with the same four columns on its first sheet.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/phonebook/internal/models"
)

const utf8BOM = "\ufeff"

// Row is one data row of an import file
type Row struct {
	Line   int // 1-based data row, the header excluded
	Fields models.Fields
}

// IsSpreadsheet reports whether path is handled by the XLSX codec
func IsSpreadsheet(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xlsx")
}

// Read parses every data row of the file at path
func Read(path string) ([]Row, error) {
	if IsSpreadsheet(path) {
		return readXLSX(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, openErr(path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses CSV data. Columns are located by header name, in any order.
// Stray quotes are kept as text so one bad row fails validation on its own.
func Decode(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrIO, err)
	}
	return fromRecords(records)
}

// Write stores contacts at path, replacing any existing file
func Write(path string, contacts []models.Fields) error {
	if IsSpreadsheet(path) {
		return writeXLSX(path, contacts)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrIO, err)
	}

	if err := Encode(f, contacts); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", models.ErrIO, err)
	}
	return nil
}

// Encode writes the header followed by one record per contact
func Encode(w io.Writer, contacts []models.Fields) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(models.Headers); err != nil {
		return fmt.Errorf("%w: %w", models.ErrIO, err)
	}
	for _, c := range contacts {
		if err := cw.Write(toRecord(c)); err != nil {
			return fmt.Errorf("%w: %w", models.ErrIO, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: %w", models.ErrIO, err)
	}
	return nil
}

// fromRecords maps raw records (header first) to rows, shared by both codecs
func fromRecords(records [][]string) ([]Row, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: file is empty", models.ErrMalformedHeader)
	}

	columns, err := locateColumns(records[0])
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(records)-1)
	for i, rec := range records[1:] {
		if isBlank(rec) {
			continue
		}
		rows = append(rows, Row{
			Line: i + 1,
			Fields: models.Fields{
				Name:    cell(rec, columns[models.HeaderName]),
				Surname: cell(rec, columns[models.HeaderSurname]),
				Number:  cell(rec, columns[models.HeaderNumber]),
				Email:   cell(rec, columns[models.HeaderEmail]),
			},
		})
	}
	return rows, nil
}

func locateColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		h = strings.TrimSpace(h)
		if _, seen := columns[h]; !seen {
			columns[h] = i
		}
	}

	var missing []string
	for _, h := range models.Headers {
		if _, ok := columns[h]; !ok {
			missing = append(missing, h)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing column(s) %s", models.ErrMalformedHeader, strings.Join(missing, ", "))
	}
	return columns, nil
}

func toRecord(c models.Fields) []string {
	return []string{c.Name, c.Surname, c.Number, c.Email}
}

func cell(rec []string, i int) string {
	if i < len(rec) {
		return rec[i]
	}
	return ""
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func openErr(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", models.ErrFileNotFound, path)
	}
	return fmt.Errorf("%w: %w", models.ErrIO, err)
}
