package labours

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MissingPlaceholder текстовая заглушка "нет значения", встречается в выгрузках.
const MissingPlaceholder = "None"

// Text обрезает пробелы; заглушка и пустота превращаются в "".
func Text(s string) string {
	s = strings.TrimSpace(s)
	if s == MissingPlaceholder {
		return ""
	}
	return s
}

// Number разбирает число из ячейки. Запятая допускается как десятичный разделитель.
// Мусор не ошибка: просто Valid=false.
func Number(s string) decimal.NullDecimal {
	s = Text(s)
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
