package pipeline

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/dimais77/price-list-analyzer/internal"
	"github.com/dimais77/price-list-analyzer/internal/util"
)

var (
	ErrNameMissing       = errors.New("no usable name value")
	ErrPriceMissing      = errors.New("no usable price value")
	ErrWeightMissing     = errors.New("no usable weight value")
	ErrPriceInvalid      = errors.New("price is not numeric")
	ErrWeightInvalid     = errors.New("weight is not numeric")
	ErrWeightNotPositive = errors.New("weight must be positive")
)

type Normalizer struct {
	log *zap.Logger
}

func NewNormalizer(log *zap.Logger) *Normalizer {
	return &Normalizer{log: log}
}

// Normalize turns a raw row into a canonical record, deriving the price
// per kilogram. Rejected rows are logged with their content and reason.
func (n *Normalizer) Normalize(sourceID string, row internal.SourceRow) (internal.Record, error) {
	record, err := buildRecord(sourceID, row)
	if err != nil {
		n.log.Warn("row rejected",
			zap.String("file", sourceID),
			zap.Strings("row", rowCells(row)),
			zap.Error(err))
		return internal.Record{}, err
	}
	return record, nil
}

func buildRecord(sourceID string, row internal.SourceRow) (internal.Record, error) {
	name := ExtractField(row, internal.FieldName)
	if name == "" {
		return internal.Record{}, ErrNameMissing
	}
	priceText := ExtractField(row, internal.FieldPrice)
	if priceText == "" {
		return internal.Record{}, ErrPriceMissing
	}
	weightText := ExtractField(row, internal.FieldWeight)
	if weightText == "" {
		return internal.Record{}, ErrWeightMissing
	}

	price, err := util.ParseDecimal(priceText)
	if err != nil {
		return internal.Record{}, fmt.Errorf("%w: %q", ErrPriceInvalid, priceText)
	}
	weight, err := util.ParseDecimal(weightText)
	if err != nil {
		return internal.Record{}, fmt.Errorf("%w: %q", ErrWeightInvalid, weightText)
	}
	if weight.Sign() <= 0 {
		return internal.Record{}, fmt.Errorf("%w: %s", ErrWeightNotPositive, weight)
	}

	return internal.Record{
		SourceID: sourceID,
		Name:     name,
		Price:    price,
		Weight:   weight,
		// Two decimal places, ties rounded to the even cent.
		UnitPrice: price.Div(weight).RoundBank(2),
	}, nil
}

func rowCells(row internal.SourceRow) []string {
	cells := make([]string, 0, len(row.Labels))
	for _, label := range row.Labels {
		cells = append(cells, row.Values[label])
	}
	return cells
}
