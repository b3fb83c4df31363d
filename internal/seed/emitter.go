package seed

import (
	"fmt"
	"strings"

	"github.com/Spok95/labour-seed/internal/domain/catalog"
	"github.com/Spok95/labour-seed/internal/domain/labours"
)

const DefaultBatchSize = 100

const rule = "-- ====================================================="

var labourColumns = []string{
	"source_id", "code", "name", "unit", "description", "comments", "pkwiu",
	"price_unit", "category_id", "category_name", "category_number", "category_path", "tags",
}

// Emitter рендерит seed-скрипт: сначала категории (родители раньше детей), потом работы пачками.
type Emitter struct {
	BatchSize       int
	CategoriesTable string
	LaboursTable    string
	Source          string // имя исходного файла для шапки
}

func (e Emitter) batchSize() int {
	if e.BatchSize <= 0 {
		return DefaultBatchSize
	}
	return e.BatchSize
}

func (e Emitter) tables() (cats, labs string) {
	cats, labs = e.CategoriesTable, e.LaboursTable
	if cats == "" {
		cats = catalog.CategoriesTable
	}
	if labs == "" {
		labs = labours.Table
	}
	return cats, labs
}

// Render cats должны быть уже упорядочены (см. catalog.Hierarchy.Categories).
func (e Emitter) Render(cats []catalog.Category, rows []labours.Labour) string {
	catTable, labTable := e.tables()
	source := e.Source
	if source == "" {
		source = "spreadsheet"
	}

	lines := []string{
		rule,
		"-- LABOUR CATALOG SEED DATA",
		fmt.Sprintf("-- Generated from %s: %d labours, %d categories", source, len(rows), len(cats)),
		rule,
		"",
		rule,
		"-- 1. System labour categories",
		rule,
		"",
	}

	for i, c := range cats {
		lines = append(lines, fmt.Sprintf(
			"INSERT INTO %s (id, name, number, path, parent_id, sort_order, depth) VALUES (%s, %s, %s, %s, %s, %d, %d);",
			catTable,
			UUIDRef(&c.ID), Literal(c.Name), Literal(c.Number), Literal(c.Path),
			UUIDRef(c.ParentID), i, c.Depth,
		))
	}

	lines = append(lines,
		"",
		rule,
		"-- 2. System labours",
		rule,
		"",
	)

	size := e.batchSize()
	for start := 0; start < len(rows); start += size {
		end := min(start+size, len(rows))
		lines = append(lines, fmt.Sprintf("INSERT INTO %s (%s) VALUES", labTable, strings.Join(labourColumns, ", ")))

		tuples := make([]string, 0, end-start)
		for _, r := range rows[start:end] {
			tuples = append(tuples, "  "+labourTuple(r))
		}
		lines = append(lines, strings.Join(tuples, ",\n")+";", "")
	}

	return strings.Join(lines, "\n")
}

func labourTuple(r labours.Labour) string {
	vals := []string{
		Numeric(r.SourceID),
		Literal(r.Code),
		Literal(r.Name),
		Literal(r.Unit),
		Literal(r.Description),
		Literal(r.Comments),
		Literal(r.PKWiU),
		Numeric(r.PriceUnit),
		Numeric(r.CategoryID),
		Literal(r.CategoryName),
		Literal(r.CategoryNumber),
		Literal(r.NormalizedCategoryPath()),
		Literal(r.Tags),
	}
	return "(" + strings.Join(vals, ", ") + ")"
}
