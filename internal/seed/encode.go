package seed

import (
	"strings"

	"github.com/Spok95/labour-seed/internal/domain/labours"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const sqlNull = "NULL"

// Literal строковый литерал SQL: кавычки удваиваются, пустое значение и заглушка дают NULL.
func Literal(s string) string {
	s = labours.Text(s)
	if s == "" {
		return sqlNull
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func Numeric(d decimal.NullDecimal) string {
	if !d.Valid {
		return sqlNull
	}
	return d.Decimal.String()
}

func UUIDRef(id *uuid.UUID) string {
	if id == nil {
		return sqlNull
	}
	return "'" + id.String() + "'"
}
