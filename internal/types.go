package internal

import "github.com/shopspring/decimal"

type FieldKind string

const (
	FieldName   FieldKind = "name"
	FieldPrice  FieldKind = "price"
	FieldWeight FieldKind = "weight"
)

// SourceRow keeps the column labels in file order; extraction walks the
// labels left to right, so the map alone is not enough.
type SourceRow struct {
	Labels []string
	Values map[string]string
}

type Record struct {
	SourceID  string
	Name      string
	Price     decimal.Decimal
	Weight    decimal.Decimal
	UnitPrice decimal.Decimal
}

var ResultHeaders = []string{"№", "Наименование", "цена", "вес", "цена за кг.", "файл"}
