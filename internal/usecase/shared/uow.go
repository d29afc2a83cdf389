package shared

import (
	"context"
	"time"

	"salones-api/internal/domain/reservation"

	"github.com/shopspring/decimal"
)

// UnitOfWork scopes the check-then-write sequence of a booking to one storage
// transaction. Correctness under concurrent writers comes from the store
// (partial unique index on the active slot tuple), not in-process locking,
// because several server instances may share the database.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures and deadlocks
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: pool-backed command reads for validation outside transactions
	Reads() CommandReads
}

type Tx interface {
	Reservas() ReservaRepository
	Reads() CommandReads
}

// CommandReads are the entity-store lookups the lifecycle commands validate
// against. Active-only variants return KindNotFound for missing AND inactive
// rows; infrastructure failures carry KindDBFailure instead.
type CommandReads interface {
	SalonActivoByID(ctx context.Context, id int64) (*SalonSnapshot, error)
	TurnoActivoByID(ctx context.Context, id int64) (*TurnoSnapshot, error)
	UsuarioActivoByID(ctx context.Context, id int64) (*UsuarioSnapshot, error)
	// ServiciosActivosByIDs resolves every id or fails naming the first id
	// that is missing or inactive.
	ServiciosActivosByIDs(ctx context.Context, ids []int64) ([]ServicioSnapshot, error)
	ReservaByID(ctx context.Context, id int64) (*ReservaSnapshot, error)
	// SlotTaken is the single availability predicate: true iff an active
	// reserva other than excludeReservaID holds (salon, fecha, turno).
	SlotTaken(ctx context.Context, salonID int64, fecha time.Time, turnoID int64, excludeReservaID *int64) (bool, error)
}

type UpdateReservaParams struct {
	FechaReserva     time.Time
	SalonID          int64
	TurnoID          int64
	FotoCumpleaniero *string
	Tematica         *string
	ImporteSalon     decimal.Decimal
	ImporteTotal     decimal.Decimal
}

type ReservaRepository interface {
	Insert(ctx context.Context, res *reservation.Reservation) (int64, error)
	InsertServicios(ctx context.Context, reservaID int64, cargos []reservation.ServicioCargo) error
	// ReplaceServicios deletes every join row and reinserts the given set;
	// join rows are never patched in place.
	ReplaceServicios(ctx context.Context, reservaID int64, cargos []reservation.ServicioCargo) error
	// ServicioCargos reads the committed snapshots back so totals are
	// recomputed from storage, not from caller-supplied values.
	ServicioCargos(ctx context.Context, reservaID int64) ([]reservation.ServicioCargo, error)
	Update(ctx context.Context, id int64, params UpdateReservaParams) error
	SetActivo(ctx context.Context, id int64, activo bool) error
}
