package reservation

import (
	"time"

	"salones-api/internal/pkg/clock"

	"github.com/shopspring/decimal"
)

// SalonSpec is the slice of salon state the factory needs: identity plus the
// current rental price to snapshot into importe_salon.
type SalonSpec struct {
	ID      int64
	Importe decimal.Decimal
}

type Factory struct {
	Clock      clock.Clock
	Calculator PriceCalculator
}

func NewFactory(clk clock.Clock, calculator PriceCalculator) *Factory {
	return &Factory{
		Clock:      clk,
		Calculator: calculator,
	}
}

// NewReservation builds an active reservation with prices snapshot at booking
// time. All referential and availability checks happen before this is called;
// here only self-contained invariants are enforced.
func (f *Factory) NewReservation(
	fecha time.Time,
	salon SalonSpec,
	usuarioID, turnoID int64,
	foto *string,
	tematica *string,
	cargos []ServicioCargo,
) (*Reservation, error) {
	if salon.ID <= 0 || usuarioID <= 0 || turnoID <= 0 {
		return nil, ErrInvalidReference
	}
	if salon.Importe.IsNegative() {
		return nil, ErrNegativeImporte
	}

	bookingDate, err := NewBookingDate(fecha, f.Clock.Now())
	if err != nil {
		return nil, err
	}

	theme, err := NewTematica(tematica)
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]struct{}, len(cargos))
	for _, cargo := range cargos {
		if cargo.ServicioID <= 0 {
			return nil, ErrInvalidReference
		}
		if cargo.Importe.IsNegative() {
			return nil, ErrNegativeImporte
		}
		if _, dup := seen[cargo.ServicioID]; dup {
			return nil, ErrDuplicateCargo
		}
		seen[cargo.ServicioID] = struct{}{}
	}

	total := f.Calculator.Total(salon.Importe, cargos)

	servicios := make([]ServicioCargo, len(cargos))
	copy(servicios, cargos)

	return &Reservation{
		fecha:        bookingDate,
		salonID:      salon.ID,
		usuarioID:    usuarioID,
		turnoID:      turnoID,
		foto:         foto,
		tematica:     theme,
		importeSalon: salon.Importe,
		importeTotal: total,
		servicios:    servicios,
		status:       StatusActiva,
	}, nil
}
