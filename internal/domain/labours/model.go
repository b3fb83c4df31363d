package labours

import (
	"strings"

	"github.com/Spok95/labour-seed/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// Table таблица системных работ
const Table = "public.kosztorys_system_labours"

// Колонки исходного листа, в порядке следования.
const (
	ColSourceID = iota
	ColCode
	ColName
	ColUnit
	ColDescription
	colIgnored // шестая колонка в файле не используется
	ColComments
	ColPKWiU
	ColPriceUnit
	ColCategoryID
	ColCategoryName
	ColCategoryNumber
	ColCategoryPath
	ColTags

	ColumnCount
)

type Labour struct {
	SourceID       decimal.NullDecimal
	Code           string
	Name           string
	Unit           string
	Description    string
	Comments       string
	PKWiU          string // код классификации PKWiU
	PriceUnit      decimal.NullDecimal
	CategoryID     decimal.NullDecimal // id категории из источника, с нашими uuid не связан
	CategoryName   string
	CategoryNumber string
	CategoryPath   string // как в файле, без нормализации
	Tags           string
}

// FromCells строит запись из ячеек одной строки листа. Короткие строки дополняются пустыми ячейками.
func FromCells(cells []string) Labour {
	cell := func(i int) string {
		if i < len(cells) {
			return cells[i]
		}
		return ""
	}
	return Labour{
		SourceID:       Number(cell(ColSourceID)),
		Code:           Text(cell(ColCode)),
		Name:           Text(cell(ColName)),
		Unit:           Text(cell(ColUnit)),
		Description:    Text(cell(ColDescription)),
		Comments:       Text(cell(ColComments)),
		PKWiU:          Text(cell(ColPKWiU)),
		PriceUnit:      Number(cell(ColPriceUnit)),
		CategoryID:     Number(cell(ColCategoryID)),
		CategoryName:   Text(cell(ColCategoryName)),
		CategoryNumber: Text(cell(ColCategoryNumber)),
		CategoryPath:   Text(cell(ColCategoryPath)),
		Tags:           Text(cell(ColTags)),
	}
}

// NormalizedCategoryPath путь категории в каноническом виде, "" если пути нет.
func (l Labour) NormalizedCategoryPath() string {
	return catalog.NormalizePath(l.CategoryPath)
}

// Retain отбрасывает строки без названия.
func Retain(rows []Labour) (kept []Labour, skipped int) {
	kept = make([]Labour, 0, len(rows))
	for _, r := range rows {
		if strings.TrimSpace(r.Name) == "" {
			skipped++
			continue
		}
		kept = append(kept, r)
	}
	return kept, skipped
}
