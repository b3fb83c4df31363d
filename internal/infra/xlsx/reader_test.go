package xlsx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var header = []interface{}{
	"source_id", "code", "name", "unit", "description", "col6", "comments", "pkwiu",
	"price_unit", "category_id", "category_name", "category_number", "category_path", "tags",
}

func writeBook(t *testing.T, sheets map[string][][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for name, rows := range sheets {
		if name != "Sheet1" {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for i, r := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			r := r
			require.NoError(t, f.SetSheetRow(name, cell, &r))
		}
	}

	path := filepath.Join(t.TempDir(), "labours.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadLabours(t *testing.T) {
	path := writeBook(t, map[string][][]interface{}{
		"Sheet1": {
			header,
			{1, "L1", "Dig", "m3", "", "x", "", "", 12.5, 10, "Earthworks", "1", "Earthworks/ Excavation", ""},
			{2, "L2", "", "m3"},
			{3, "L3", "Short"},
		},
	})

	rows, err := NewReader("").ReadLabours(path)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	first := rows[0]
	assert.Equal(t, "1", first.SourceID.Decimal.String())
	assert.Equal(t, "Dig", first.Name)
	assert.Equal(t, "12.5", first.PriceUnit.Decimal.String())
	assert.Equal(t, "10", first.CategoryID.Decimal.String())
	assert.Equal(t, "1", first.CategoryNumber)
	assert.Equal(t, "Earthworks / Excavation", first.NormalizedCategoryPath())

	// строка без названия возвращается: отбор делает генератор
	assert.Equal(t, "", rows[1].Name)

	assert.Equal(t, "Short", rows[2].Name)
	assert.False(t, rows[2].PriceUnit.Valid)
	assert.Equal(t, "", rows[2].Tags)
}

func TestReadLaboursNamedSheet(t *testing.T) {
	path := writeBook(t, map[string][][]interface{}{
		"Sheet1": {header, {1, "A", "Wrong sheet"}},
		"Data":   {header, {7, "B", "Right sheet"}},
	})

	rows, err := NewReader("Data").ReadLabours(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Right sheet", rows[0].Name)

	rows, err = NewReader("").ReadLabours(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Wrong sheet", rows[0].Name)
}

func TestReadLaboursHeaderOnly(t *testing.T) {
	path := writeBook(t, map[string][][]interface{}{"Sheet1": {header}})
	rows, err := NewReader("").ReadLabours(path)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadLaboursErrors(t *testing.T) {
	_, err := NewReader("").ReadLabours(filepath.Join(t.TempDir(), "missing.xlsx"))
	require.Error(t, err)

	path := writeBook(t, map[string][][]interface{}{"Sheet1": {header}})
	_, err = NewReader("Nope").ReadLabours(path)
	require.Error(t, err)
}
