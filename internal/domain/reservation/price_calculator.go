package reservation

import (
	"github.com/shopspring/decimal"
)

// PriceCalculator computes importe_total from the salon snapshot plus the
// servicio snapshots. Amounts are fixed-point decimals; float arithmetic would
// drift on currency values.
type PriceCalculator interface {
	Total(importeSalon decimal.Decimal, cargos []ServicioCargo) decimal.Decimal
}

type SnapshotPriceCalculator struct{}

func NewSnapshotPriceCalculator() *SnapshotPriceCalculator {
	return &SnapshotPriceCalculator{}
}

func (c *SnapshotPriceCalculator) Total(importeSalon decimal.Decimal, cargos []ServicioCargo) decimal.Decimal {
	total := importeSalon
	for _, cargo := range cargos {
		total = total.Add(cargo.Importe)
	}
	return total
}
