package reservation

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrPastDate         = errors.New("reservation date cannot be in the past")
	ErrTematicaTooLong  = errors.New("tematica exceeds maximum length")
	ErrInvalidReference = errors.New("referenced id must be a positive integer")
	ErrNegativeImporte  = errors.New("importe cannot be negative")
	ErrDuplicateCargo   = errors.New("duplicate servicio in reservation")
	ErrAlreadyInactive  = errors.New("reservation is already inactive")
	ErrAlreadyActive    = errors.New("reservation is already active")
)

type Reservation struct {
	id           int64
	fecha        BookingDate
	salonID      int64
	usuarioID    int64
	turnoID      int64
	foto         *string
	tematica     Tematica
	importeSalon decimal.Decimal
	importeTotal decimal.Decimal
	servicios    []ServicioCargo
	status       Status
}

// ReservaState is the persisted slice of a reservation used to rebuild the
// entity from a storage row. Values are trusted; invariants were enforced
// when the row was written.
type ReservaState struct {
	ID           int64
	Fecha        BookingDate
	SalonID      int64
	UsuarioID    int64
	TurnoID      int64
	Foto         *string
	Tematica     Tematica
	ImporteSalon decimal.Decimal
	ImporteTotal decimal.Decimal
	Servicios    []ServicioCargo
	Status       Status
}

func ReconstructReservation(s ReservaState) *Reservation {
	return &Reservation{
		id:           s.ID,
		fecha:        s.Fecha,
		salonID:      s.SalonID,
		usuarioID:    s.UsuarioID,
		turnoID:      s.TurnoID,
		foto:         s.Foto,
		tematica:     s.Tematica,
		importeSalon: s.ImporteSalon,
		importeTotal: s.ImporteTotal,
		servicios:    s.Servicios,
		status:       s.Status,
	}
}

func (r *Reservation) ID() int64                     { return r.id }
func (r *Reservation) Fecha() BookingDate            { return r.fecha }
func (r *Reservation) SalonID() int64                { return r.salonID }
func (r *Reservation) UsuarioID() int64              { return r.usuarioID }
func (r *Reservation) TurnoID() int64                { return r.turnoID }
func (r *Reservation) Foto() *string                 { return r.foto }
func (r *Reservation) Tematica() Tematica            { return r.tematica }
func (r *Reservation) ImporteSalon() decimal.Decimal { return r.importeSalon }
func (r *Reservation) ImporteTotal() decimal.Decimal { return r.importeTotal }
func (r *Reservation) Status() Status                { return r.status }

// Servicios returns the price snapshots in attachment order.
func (r *Reservation) Servicios() []ServicioCargo {
	out := make([]ServicioCargo, len(r.servicios))
	copy(out, r.servicios)
	return out
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusActiva
}

func (r *Reservation) Deactivate() error {
	if r.status == StatusInactiva {
		return ErrAlreadyInactive
	}
	r.status = StatusInactiva
	return nil
}

// Restore only flips the state; slot availability is the caller's check
// because it needs current committed storage state.
func (r *Reservation) Restore() error {
	if r.status == StatusActiva {
		return ErrAlreadyActive
	}
	r.status = StatusActiva
	return nil
}
