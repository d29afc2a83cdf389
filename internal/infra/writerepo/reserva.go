package writerepo

import (
	"context"

	"salones-api/internal/domain/reservation"
	"salones-api/internal/infra"
	"salones-api/internal/infra/db"
	"salones-api/internal/pkg/pgconv"
	"salones-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

// ReservaRepository performs all reserva writes. It always runs on the
// transaction handed out by the unit of work; the partial unique index on
// (salon_id, fecha_reserva, turno_id) WHERE activo turns a lost availability
// race into a KindConflict error at commit time.
type ReservaRepository struct {
	db db.Querier
}

func NewReservaRepository(q db.Querier) *ReservaRepository {
	return &ReservaRepository{db: q}
}

func (r *ReservaRepository) Insert(ctx context.Context, res *reservation.Reservation) (int64, error) {
	const query = `
		INSERT INTO reservas (
			fecha_reserva, salon_id, usuario_id, turno_id,
			foto_cumpleaniero, tematica, importe_salon, importe_total, activo
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING reserva_id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		pgconv.DateToPgtype(res.Fecha().Time()),
		res.SalonID(),
		res.UsuarioID(),
		res.TurnoID(),
		pgconv.StringPtrToPgtype(res.Foto()),
		pgconv.StringPtrToPgtype(res.Tematica().Ptr()),
		pgconv.DecimalToNumeric(res.ImporteSalon()),
		pgconv.DecimalToNumeric(res.ImporteTotal()),
		res.Status().Activo(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert reserva", err)
	}

	return id, nil
}

func (r *ReservaRepository) InsertServicios(ctx context.Context, reservaID int64, cargos []reservation.ServicioCargo) error {
	const query = `
		INSERT INTO reservas_servicios (reserva_id, servicio_id, importe)
		VALUES ($1, $2, $3)`

	for _, cargo := range cargos {
		_, err := r.db.Exec(ctx, query, reservaID, cargo.ServicioID, pgconv.DecimalToNumeric(cargo.Importe))
		if err != nil {
			return infra.WrapRepoErr("failed to insert reserva servicio", err)
		}
	}
	return nil
}

// ReplaceServicios rewrites the join rows wholesale; individual rows are
// never patched, so snapshots stay immutable for their lifetime.
func (r *ReservaRepository) ReplaceServicios(ctx context.Context, reservaID int64, cargos []reservation.ServicioCargo) error {
	const deleteQuery = `DELETE FROM reservas_servicios WHERE reserva_id = $1`

	if _, err := r.db.Exec(ctx, deleteQuery, reservaID); err != nil {
		return infra.WrapRepoErr("failed to delete reserva servicios", err)
	}
	return r.InsertServicios(ctx, reservaID, cargos)
}

// ServicioCargos reads the committed snapshots back from the join table so a
// recomputed total can never be fed caller-supplied prices.
func (r *ReservaRepository) ServicioCargos(ctx context.Context, reservaID int64) ([]reservation.ServicioCargo, error) {
	const query = `
		SELECT servicio_id, importe
		FROM reservas_servicios
		WHERE reserva_id = $1
		ORDER BY servicio_id`

	rows, err := r.db.Query(ctx, query, reservaID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read reserva servicios", err)
	}
	defer rows.Close()

	var cargos []reservation.ServicioCargo
	for rows.Next() {
		var (
			cargo   reservation.ServicioCargo
			importe pgtype.Numeric
		)
		if err := rows.Scan(&cargo.ServicioID, &importe); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reserva servicio", err)
		}
		if cargo.Importe, err = pgconv.DecimalFromNumeric(importe); err != nil {
			return nil, infra.WrapRepoErr("invalid servicio importe", err)
		}
		cargos = append(cargos, cargo)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reserva servicios", err)
	}
	return cargos, nil
}

func (r *ReservaRepository) Update(ctx context.Context, id int64, params shared.UpdateReservaParams) error {
	const query = `
		UPDATE reservas
		SET fecha_reserva = $2,
		    salon_id = $3,
		    turno_id = $4,
		    foto_cumpleaniero = $5,
		    tematica = $6,
		    importe_salon = $7,
		    importe_total = $8,
		    modificado = now()
		WHERE reserva_id = $1`

	tag, err := r.db.Exec(ctx, query,
		id,
		pgconv.DateToPgtype(params.FechaReserva),
		params.SalonID,
		params.TurnoID,
		pgconv.StringPtrToPgtype(params.FotoCumpleaniero),
		pgconv.StringPtrToPgtype(params.Tematica),
		pgconv.DecimalToNumeric(params.ImporteSalon),
		pgconv.DecimalToNumeric(params.ImporteTotal),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reserva", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reserva not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservaRepository) SetActivo(ctx context.Context, id int64, activo bool) error {
	const query = `
		UPDATE reservas
		SET activo = $2, modificado = now()
		WHERE reserva_id = $1`

	tag, err := r.db.Exec(ctx, query, id, activo)
	if err != nil {
		return infra.WrapRepoErr("failed to change reserva state", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reserva not found", nil, infra.KindNotFound)
	}
	return nil
}
