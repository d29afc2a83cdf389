package commands

import (
	"context"
	"time"

	"salones-api/internal/domain/reservation"
	"salones-api/internal/domain/user"
	"salones-api/internal/infra"
	"salones-api/internal/pkg/clock"
	"salones-api/internal/pkg/errs"
	"salones-api/internal/pkg/patch"
	"salones-api/internal/usecase/queries"
	"salones-api/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

var (
	ErrReservaNotFound         = errs.New("reserva not found")
	ErrSlotUnavailable         = errs.New("slot unavailable")
	ErrSalonNotFound           = errs.New("salon not found or inactive")
	ErrTurnoNotFound           = errs.New("turno not found or inactive")
	ErrUsuarioNotFound         = errs.New("usuario not found or inactive")
	ErrServicioNotFound        = errs.New("servicio not found or inactive")
	ErrReservaInactiva         = errs.New("reserva is already inactive")
	ErrReservaActiva           = errs.New("reserva is already active")
	ErrForbidden               = errs.New("operation not allowed for this role")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrNoFieldsToUpdate        = errs.New("no fields to update")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateReservaParams struct {
	FechaReserva     time.Time
	SalonID          int64
	TurnoID          int64
	UsuarioID        *int64 // staff may book on behalf; nil means the actor
	FotoCumpleaniero *string
	Tematica         *string
	Servicios        []int64
}

// ReplaceReservaParams is the PUT payload: every mutable field, including the
// full servicio set.
type ReplaceReservaParams struct {
	FechaReserva     time.Time
	SalonID          int64
	TurnoID          int64
	FotoCumpleaniero *string
	Tematica         *string
	Servicios        []int64
}

// PatchReservaParams carries each mutable field as present-or-absent rather
// than pointer-vs-zero, so "set tematica to null" and "leave tematica alone"
// stay distinguishable.
type PatchReservaParams struct {
	FechaReserva     patch.Field[time.Time]
	SalonID          patch.Field[int64]
	TurnoID          patch.Field[int64]
	FotoCumpleaniero patch.Field[*string]
	Tematica         patch.Field[*string]
	Servicios        patch.Field[[]int64]
	Activo           patch.Field[bool]
}

func (p PatchReservaParams) HasChanges() bool {
	return p.FechaReserva.IsSet() || p.SalonID.IsSet() || p.TurnoID.IsSet() ||
		p.FotoCumpleaniero.IsSet() || p.Tematica.IsSet() || p.Servicios.IsSet() ||
		p.Activo.IsSet()
}

type ReservaCommands interface {
	Create(ctx context.Context, actor shared.Actor, p CreateReservaParams) (*queries.ReservaView, error)
	Update(ctx context.Context, actor shared.Actor, id int64, p ReplaceReservaParams) (*queries.ReservaView, error)
	PartialUpdate(ctx context.Context, actor shared.Actor, id int64, p PatchReservaParams) (*queries.ReservaView, error)
	Deactivate(ctx context.Context, actor shared.Actor, id int64) (*queries.ReservaView, error)
	Restore(ctx context.Context, actor shared.Actor, id int64) (*queries.ReservaView, error)
}

type reservaCommandsImpl struct {
	uow        shared.UnitOfWork
	views      queries.ReservaReadStore
	factory    *reservation.Factory
	calculator reservation.PriceCalculator
	clock      clock.Clock
}

func NewReservaCommands(
	uow shared.UnitOfWork,
	views queries.ReservaReadStore,
	factory *reservation.Factory,
	calculator reservation.PriceCalculator,
	clk clock.Clock,
) ReservaCommands {
	return &reservaCommandsImpl{
		uow:        uow,
		views:      views,
		factory:    factory,
		calculator: calculator,
		clock:      clk,
	}
}

func (c *reservaCommandsImpl) Create(ctx context.Context, actor shared.Actor, p CreateReservaParams) (*queries.ReservaView, error) {
	usuarioID := actor.UsuarioID
	if p.UsuarioID != nil && *p.UsuarioID != actor.UsuarioID {
		// Clients always book for themselves
		if !actor.Role.IsStaff() {
			return nil, ErrForbidden
		}
		usuarioID = *p.UsuarioID
	}

	var reservaID int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		taken, err := reads.SlotTaken(ctx, p.SalonID, p.FechaReserva, p.TurnoID, nil)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if taken {
			return ErrSlotUnavailable
		}

		salon, err := reads.SalonActivoByID(ctx, p.SalonID)
		if err != nil {
			return markNotFound(err, ErrSalonNotFound)
		}
		if _, err = reads.UsuarioActivoByID(ctx, usuarioID); err != nil {
			return markNotFound(err, ErrUsuarioNotFound)
		}
		if _, err = reads.TurnoActivoByID(ctx, p.TurnoID); err != nil {
			return markNotFound(err, ErrTurnoNotFound)
		}

		cargos, err := c.resolveCargos(ctx, reads, p.Servicios)
		if err != nil {
			return err
		}

		res, err := c.factory.NewReservation(
			p.FechaReserva,
			reservation.SalonSpec{ID: salon.ID, Importe: salon.Importe},
			usuarioID,
			p.TurnoID,
			p.FotoCumpleaniero,
			p.Tematica,
			cargos,
		)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		id, err := tx.Reservas().Insert(ctx, res)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrSlotUnavailable
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Reservas().InsertServicios(ctx, id, res.Servicios()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		reservaID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.readBack(ctx, reservaID)
}

func (c *reservaCommandsImpl) Update(ctx context.Context, actor shared.Actor, id int64, p ReplaceReservaParams) (*queries.ReservaView, error) {
	if actor.Role != user.RoleAdmin {
		return nil, ErrForbidden
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		existing, err := reads.ReservaByID(ctx, id)
		if err != nil {
			return markNotFound(err, ErrReservaNotFound)
		}
		if !existing.Activo {
			return ErrReservaInactiva
		}

		slotChanged := p.SalonID != existing.SalonID ||
			p.TurnoID != existing.TurnoID ||
			!sameDate(p.FechaReserva, existing.FechaReserva)

		if slotChanged {
			if err := c.requireSlotFree(ctx, reads, p.SalonID, p.FechaReserva, p.TurnoID, &id); err != nil {
				return err
			}
		}

		// Salon price is only re-snapshot when the salon itself changes.
		importeSalon := existing.ImporteSalon
		if p.SalonID != existing.SalonID {
			salon, err := reads.SalonActivoByID(ctx, p.SalonID)
			if err != nil {
				return markNotFound(err, ErrSalonNotFound)
			}
			importeSalon = salon.Importe
		}
		if p.TurnoID != existing.TurnoID {
			if _, err := reads.TurnoActivoByID(ctx, p.TurnoID); err != nil {
				return markNotFound(err, ErrTurnoNotFound)
			}
		}

		fecha, tematica, err := c.validateFields(p.FechaReserva, !sameDate(p.FechaReserva, existing.FechaReserva), p.Tematica)
		if err != nil {
			return err
		}

		cargos, err := c.resolveCargos(ctx, reads, p.Servicios)
		if err != nil {
			return err
		}
		if err := tx.Reservas().ReplaceServicios(ctx, id, cargos); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		// Totals always come from the committed join rows, never the payload.
		readback, err := tx.Reservas().ServicioCargos(ctx, id)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		total := c.calculator.Total(importeSalon, readback)

		return c.writeUpdate(ctx, tx, id, shared.UpdateReservaParams{
			FechaReserva:     fecha,
			SalonID:          p.SalonID,
			TurnoID:          p.TurnoID,
			FotoCumpleaniero: p.FotoCumpleaniero,
			Tematica:         tematica,
			ImporteSalon:     importeSalon,
			ImporteTotal:     total,
		})
	})
	if err != nil {
		return nil, err
	}

	return c.readBack(ctx, id)
}

func (c *reservaCommandsImpl) PartialUpdate(ctx context.Context, actor shared.Actor, id int64, p PatchReservaParams) (*queries.ReservaView, error) {
	if actor.Role != user.RoleAdmin {
		return nil, ErrForbidden
	}
	if !p.HasChanges() {
		return nil, ErrNoFieldsToUpdate
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		existing, err := reads.ReservaByID(ctx, id)
		if err != nil {
			return markNotFound(err, ErrReservaNotFound)
		}

		target := mergePatch(existing, p)

		slotChanged := target.SalonID != existing.SalonID ||
			target.TurnoID != existing.TurnoID ||
			!sameDate(target.FechaReserva, existing.FechaReserva)
		activating := target.Activo && !existing.Activo

		// A changed tuple or a reactivation both claim the slot anew.
		if (slotChanged && target.Activo) || activating {
			if err := c.requireSlotFree(ctx, reads, target.SalonID, target.FechaReserva, target.TurnoID, &id); err != nil {
				return err
			}
		}

		importeSalon := existing.ImporteSalon
		priceChanged := false
		if target.SalonID != existing.SalonID {
			salon, err := reads.SalonActivoByID(ctx, target.SalonID)
			if err != nil {
				return markNotFound(err, ErrSalonNotFound)
			}
			importeSalon = salon.Importe
			priceChanged = true
		}
		if target.TurnoID != existing.TurnoID {
			if _, err := reads.TurnoActivoByID(ctx, target.TurnoID); err != nil {
				return markNotFound(err, ErrTurnoNotFound)
			}
		}

		fecha, tematica, err := c.validateFields(target.FechaReserva, !sameDate(target.FechaReserva, existing.FechaReserva), target.Tematica)
		if err != nil {
			return err
		}

		if servicios, set := p.Servicios.Get(); set {
			cargos, err := c.resolveCargos(ctx, reads, servicios)
			if err != nil {
				return err
			}
			if err := tx.Reservas().ReplaceServicios(ctx, id, cargos); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			priceChanged = true
		}

		total := existing.ImporteTotal
		if priceChanged {
			readback, err := tx.Reservas().ServicioCargos(ctx, id)
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			total = c.calculator.Total(importeSalon, readback)
		}

		if err := c.writeUpdate(ctx, tx, id, shared.UpdateReservaParams{
			FechaReserva:     fecha,
			SalonID:          target.SalonID,
			TurnoID:          target.TurnoID,
			FotoCumpleaniero: target.FotoCumpleaniero,
			Tematica:         tematica,
			ImporteSalon:     importeSalon,
			ImporteTotal:     total,
		}); err != nil {
			return err
		}

		if target.Activo != existing.Activo {
			if err := tx.Reservas().SetActivo(ctx, id, target.Activo); err != nil {
				if infra.IsKind(err, infra.KindConflict) {
					return ErrSlotUnavailable
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.readBack(ctx, id)
}

func (c *reservaCommandsImpl) Deactivate(ctx context.Context, actor shared.Actor, id int64) (*queries.ReservaView, error) {
	if actor.Role != user.RoleAdmin {
		return nil, ErrForbidden
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Reads().ReservaByID(ctx, id)
		if err != nil {
			return markNotFound(err, ErrReservaNotFound)
		}
		res := lifecycleReserva(existing)
		if err := res.Deactivate(); err != nil {
			return ErrReservaInactiva
		}
		// Join rows stay: the historical record keeps its snapshots.
		if err := tx.Reservas().SetActivo(ctx, id, res.IsActive()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.readBack(ctx, id)
}

func (c *reservaCommandsImpl) Restore(ctx context.Context, actor shared.Actor, id int64) (*queries.ReservaView, error) {
	if actor.Role != user.RoleAdmin {
		return nil, ErrForbidden
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Reads().ReservaByID(ctx, id)
		if err != nil {
			return markNotFound(err, ErrReservaNotFound)
		}
		res := lifecycleReserva(existing)
		if err := res.Restore(); err != nil {
			return ErrReservaActiva
		}

		// The slot may have been retaken while this reserva was inactive.
		if err := c.requireSlotFree(ctx, tx.Reads(), existing.SalonID, existing.FechaReserva, existing.TurnoID, &id); err != nil {
			return err
		}

		if err := tx.Reservas().SetActivo(ctx, id, res.IsActive()); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrSlotUnavailable
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.readBack(ctx, id)
}

// lifecycleReserva rebuilds the entity for a state transition. Servicio
// snapshots are not loaded; the transitions never read them.
func lifecycleReserva(s *shared.ReservaSnapshot) *reservation.Reservation {
	return reservation.ReconstructReservation(reservation.ReservaState{
		ID:           s.ID,
		Fecha:        reservation.ReconstructBookingDate(s.FechaReserva),
		SalonID:      s.SalonID,
		UsuarioID:    s.UsuarioID,
		TurnoID:      s.TurnoID,
		Foto:         s.FotoCumpleaniero,
		Tematica:     reservation.ReconstructTematica(s.Tematica),
		ImporteSalon: s.ImporteSalon,
		ImporteTotal: s.ImporteTotal,
		Status:       reservation.StatusFromActivo(s.Activo),
	})
}

func (c *reservaCommandsImpl) requireSlotFree(ctx context.Context, reads shared.CommandReads, salonID int64, fecha time.Time, turnoID int64, excludeID *int64) error {
	taken, err := reads.SlotTaken(ctx, salonID, fecha, turnoID, excludeID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if taken {
		return ErrSlotUnavailable
	}
	return nil
}

func (c *reservaCommandsImpl) resolveCargos(ctx context.Context, reads shared.CommandReads, servicioIDs []int64) ([]reservation.ServicioCargo, error) {
	snapshots, err := reads.ServiciosActivosByIDs(ctx, servicioIDs)
	if err != nil {
		return nil, markNotFound(err, ErrServicioNotFound)
	}
	cargos := make([]reservation.ServicioCargo, 0, len(snapshots))
	for _, snapshot := range snapshots {
		cargo, err := reservation.NewServicioCargo(snapshot.ID, snapshot.Importe)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		cargos = append(cargos, cargo)
	}
	return cargos, nil
}

// validateFields re-runs the domain checks the handler layer already did; the
// in-transaction pass closes the gap between request validation and commit.
func (c *reservaCommandsImpl) validateFields(fecha time.Time, fechaChanged bool, tematica *string) (time.Time, *string, error) {
	if fechaChanged {
		bookingDate, err := reservation.NewBookingDate(fecha, c.clock.Now())
		if err != nil {
			return time.Time{}, nil, errs.Mark(err, ErrDomainValidation)
		}
		fecha = bookingDate.Time()
	}

	theme, err := reservation.NewTematica(tematica)
	if err != nil {
		return time.Time{}, nil, errs.Mark(err, ErrDomainValidation)
	}
	return fecha, theme.Ptr(), nil
}

func (c *reservaCommandsImpl) writeUpdate(ctx context.Context, tx shared.Tx, id int64, params shared.UpdateReservaParams) error {
	if err := tx.Reservas().Update(ctx, id, params); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return ErrSlotUnavailable
		}
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservaNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// Read-after-write: the hydrated view comes from the read store once the
// transaction committed.
func (c *reservaCommandsImpl) readBack(ctx context.Context, id int64) (*queries.ReservaView, error) {
	view, err := c.views.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

type mergedReserva struct {
	FechaReserva     time.Time
	SalonID          int64
	TurnoID          int64
	FotoCumpleaniero *string
	Tematica         *string
	ImporteSalon     decimal.Decimal
	Activo           bool
}

func mergePatch(existing *shared.ReservaSnapshot, p PatchReservaParams) mergedReserva {
	target := mergedReserva{
		FechaReserva:     existing.FechaReserva,
		SalonID:          existing.SalonID,
		TurnoID:          existing.TurnoID,
		FotoCumpleaniero: existing.FotoCumpleaniero,
		Tematica:         existing.Tematica,
		ImporteSalon:     existing.ImporteSalon,
		Activo:           existing.Activo,
	}
	if v, set := p.FechaReserva.Get(); set {
		target.FechaReserva = v
	}
	if v, set := p.SalonID.Get(); set {
		target.SalonID = v
	}
	if v, set := p.TurnoID.Get(); set {
		target.TurnoID = v
	}
	if v, set := p.FotoCumpleaniero.Get(); set {
		target.FotoCumpleaniero = v
	}
	if v, set := p.Tematica.Get(); set {
		target.Tematica = v
	}
	if v, set := p.Activo.Get(); set {
		target.Activo = v
	}
	return target
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func markNotFound(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}
