// Package xlsx читает справочник работ из книги Excel.
package xlsx

import (
	"fmt"

	"github.com/Spok95/labour-seed/internal/domain/labours"
	"github.com/xuri/excelize/v2"
)

type Reader struct {
	// Sheet имя листа; пусто — первый лист книги.
	Sheet string
}

func NewReader(sheet string) *Reader { return &Reader{Sheet: sheet} }

// ReadLabours возвращает все строки данных (со второй строки листа).
// Фильтрация по названию делается дальше, здесь строки не выкидываются.
func (r *Reader) ReadLabours(path string) ([]labours.Labour, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	sheet := r.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("sheet %q not found in %s", sheet, path)
	}

	rows, err := f.Rows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	defer func() { _ = rows.Close() }()

	var out []labours.Labour
	header := true
	for rows.Next() {
		// сырые значения: формат ячейки не должен портить числа
		cells, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if header {
			header = false
			continue
		}
		out = append(out, labours.FromCells(cells))
	}
	if err := rows.Error(); err != nil {
		return nil, fmt.Errorf("iterate sheet %q: %w", sheet, err)
	}
	return out, nil
}
