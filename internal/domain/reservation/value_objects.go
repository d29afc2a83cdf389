package reservation

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const MaxTematicaLength = 255

// BookingDate is a calendar date without a time component; the hour range is
// implied by the turno.
type BookingDate struct {
	value time.Time
}

// NewBookingDate normalizes to midnight UTC and rejects dates before today.
// today is injected so the same check runs against the command's clock rather
// than the handler's wall time.
func NewBookingDate(value, today time.Time) (BookingDate, error) {
	day := truncateToDate(value)
	if day.Before(truncateToDate(today)) {
		return BookingDate{}, ErrPastDate
	}
	return BookingDate{value: day}, nil
}

// ReconstructBookingDate skips the past-date check for rows read from storage.
func ReconstructBookingDate(value time.Time) BookingDate {
	return BookingDate{value: truncateToDate(value)}
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (d BookingDate) Time() time.Time {
	return d.value
}

func (d BookingDate) Equal(other BookingDate) bool {
	return d.value.Equal(other.value)
}

func (d BookingDate) String() string {
	return d.value.Format("2006-01-02")
}

type Tematica struct {
	value *string
}

func NewTematica(value *string) (Tematica, error) {
	if value == nil {
		return Tematica{}, nil
	}
	if len(*value) > MaxTematicaLength {
		return Tematica{}, ErrTematicaTooLong
	}
	v := *value
	return Tematica{value: &v}, nil
}

// ReconstructTematica trusts values already persisted under the length check.
func ReconstructTematica(value *string) Tematica {
	return Tematica{value: value}
}

func (t Tematica) Ptr() *string {
	return t.value
}

// ServicioCargo is the price snapshot carried by one reservas_servicios row.
// The importe is fixed at the time the servicio is attached and never tracks
// later price changes of the servicio itself.
type ServicioCargo struct {
	ServicioID int64
	Importe    decimal.Decimal
}

var errNegativeCargo = errors.New("servicio cargo cannot be negative")

func NewServicioCargo(servicioID int64, importe decimal.Decimal) (ServicioCargo, error) {
	if servicioID <= 0 {
		return ServicioCargo{}, ErrInvalidReference
	}
	if importe.IsNegative() {
		return ServicioCargo{}, errNegativeCargo
	}
	return ServicioCargo{ServicioID: servicioID, Importe: importe}, nil
}
