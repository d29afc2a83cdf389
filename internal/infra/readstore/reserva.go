package readstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"salones-api/internal/infra"
	"salones-api/internal/infra/db"
	"salones-api/internal/pkg/pgconv"
	"salones-api/internal/usecase/queries"
	"salones-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservaReadStore struct {
	db db.Querier
}

func NewReservaReadStore(q db.Querier) *ReservaReadStore {
	return &ReservaReadStore{db: q}
}

// SlotTaken is the one availability predicate; the pre-flight endpoint and
// every write-side check go through it so the advisory and enforced checks
// cannot drift.
func (s *ReservaReadStore) SlotTaken(ctx context.Context, salonID int64, fecha time.Time, turnoID int64, excludeReservaID *int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM reservas
			WHERE salon_id = $1
			  AND fecha_reserva = $2
			  AND turno_id = $3
			  AND activo
			  AND ($4::bigint IS NULL OR reserva_id <> $4)
		)`

	var taken bool
	err := s.db.QueryRow(ctx, query, salonID, pgconv.DateToPgtype(fecha), turnoID, excludeReservaID).Scan(&taken)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check slot availability", err)
	}
	return taken, nil
}

// FindSnapshotByID returns the write-side row without hydration. Inactive
// rows resolve too: soft delete and restore start from them.
func (s *ReservaReadStore) FindSnapshotByID(ctx context.Context, id int64) (*shared.ReservaSnapshot, error) {
	const query = `
		SELECT reserva_id, fecha_reserva, salon_id, usuario_id, turno_id,
		       foto_cumpleaniero, tematica, importe_salon, importe_total, activo
		FROM reservas
		WHERE reserva_id = $1`

	var (
		snapshot     shared.ReservaSnapshot
		fecha        pgtype.Date
		foto         pgtype.Text
		tematica     pgtype.Text
		importeSalon pgtype.Numeric
		importeTotal pgtype.Numeric
	)
	err := s.db.QueryRow(ctx, query, id).Scan(
		&snapshot.ID,
		&fecha,
		&snapshot.SalonID,
		&snapshot.UsuarioID,
		&snapshot.TurnoID,
		&foto,
		&tematica,
		&importeSalon,
		&importeTotal,
		&snapshot.Activo,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reserva not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reserva by ID", err)
	}

	snapshot.FechaReserva = pgconv.DateFromPgtype(fecha)
	snapshot.FotoCumpleaniero = pgconv.StringPtrFromPgtype(foto)
	snapshot.Tematica = pgconv.StringPtrFromPgtype(tematica)
	if snapshot.ImporteSalon, err = pgconv.DecimalFromNumeric(importeSalon); err != nil {
		return nil, infra.WrapRepoErr("invalid importe_salon", err)
	}
	if snapshot.ImporteTotal, err = pgconv.DecimalFromNumeric(importeTotal); err != nil {
		return nil, infra.WrapRepoErr("invalid importe_total", err)
	}

	return &snapshot, nil
}

const reservaViewSelect = `
	SELECT r.reserva_id, r.fecha_reserva, r.salon_id, r.usuario_id, r.turno_id,
	       r.foto_cumpleaniero, r.tematica, r.importe_salon, r.importe_total,
	       r.activo, r.creado, r.modificado,
	       s.titulo, s.importe,
	       u.nombre, u.apellido, u.nombre_usuario,
	       t.orden, t.hora_desde::text, t.hora_hasta::text
	FROM reservas r
	JOIN salones s ON s.salon_id = r.salon_id
	JOIN usuarios u ON u.usuario_id = r.usuario_id
	JOIN turnos t ON t.turno_id = r.turno_id`

func (s *ReservaReadStore) FindByID(ctx context.Context, id int64) (*queries.ReservaView, error) {
	query := reservaViewSelect + `
	WHERE r.reserva_id = $1`

	rows, err := s.db.Query(ctx, query, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reserva by ID", err)
	}

	views, err := s.collectViews(ctx, rows)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, infra.WrapRepoErr("reserva not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return views[0], nil
}

// List applies the filters plus offset pagination and returns the page along
// with the unfiltered-by-page total.
func (s *ReservaReadStore) List(ctx context.Context, filter queries.ReservaFilter) ([]*queries.ReservaView, int64, error) {
	where, args := buildReservaFilter(filter)

	countQuery := `
	SELECT count(*)
	FROM reservas r
	JOIN salones s ON s.salon_id = r.salon_id
	JOIN usuarios u ON u.usuario_id = r.usuario_id
	JOIN turnos t ON t.turno_id = r.turno_id` + where

	var total int64
	if err := s.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count reservas", err)
	}

	// The usecase normalizes paging; guard here against direct callers.
	limit := filter.Limit
	if limit < 1 {
		limit = queries.DefaultListLimit
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	listQuery := reservaViewSelect + where + fmt.Sprintf(`
	ORDER BY r.fecha_reserva DESC, r.reserva_id DESC
	LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.db.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list reservas", err)
	}

	views, err := s.collectViews(ctx, rows)
	if err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

// Upcoming lists active reservas with fecha_reserva inside [from, to].
func (s *ReservaReadStore) Upcoming(ctx context.Context, from, to time.Time) ([]*queries.ReservaView, error) {
	query := reservaViewSelect + `
	WHERE r.activo
	  AND r.fecha_reserva >= $1
	  AND r.fecha_reserva <= $2
	ORDER BY r.fecha_reserva, t.orden, r.reserva_id`

	rows, err := s.db.Query(ctx, query, pgconv.DateToPgtype(from), pgconv.DateToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming reservas", err)
	}

	return s.collectViews(ctx, rows)
}

func buildReservaFilter(filter queries.ReservaFilter) (string, []any) {
	conds := make([]string, 0, 8)
	args := make([]any, 0, 8)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if !filter.IncludeInactive {
		conds = append(conds, "r.activo")
	}
	if filter.Search != "" {
		p := arg("%" + filter.Search + "%")
		conds = append(conds, fmt.Sprintf("(r.tematica ILIKE %s OR s.titulo ILIKE %s OR u.nombre_usuario ILIKE %s)", p, p, p))
	}
	if filter.DateFrom != nil {
		conds = append(conds, "r.fecha_reserva >= "+arg(pgconv.DateToPgtype(*filter.DateFrom)))
	}
	if filter.DateTo != nil {
		conds = append(conds, "r.fecha_reserva <= "+arg(pgconv.DateToPgtype(*filter.DateTo)))
	}
	if filter.UsuarioID != nil {
		conds = append(conds, "r.usuario_id = "+arg(*filter.UsuarioID))
	}
	if filter.SalonID != nil {
		conds = append(conds, "r.salon_id = "+arg(*filter.SalonID))
	}
	if filter.TurnoID != nil {
		conds = append(conds, "r.turno_id = "+arg(*filter.TurnoID))
	}

	if len(conds) == 0 {
		return "", args
	}
	return "\n\tWHERE " + strings.Join(conds, "\n\t  AND "), args
}

func (s *ReservaReadStore) collectViews(ctx context.Context, rows pgx.Rows) ([]*queries.ReservaView, error) {
	defer rows.Close()

	var views []*queries.ReservaView
	for rows.Next() {
		view, err := scanReservaView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservas", err)
	}

	if err := s.attachServicios(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func scanReservaView(rows pgx.Rows) (*queries.ReservaView, error) {
	var (
		view         queries.ReservaView
		fecha        pgtype.Date
		foto         pgtype.Text
		tematica     pgtype.Text
		importeSalon pgtype.Numeric
		importeTotal pgtype.Numeric
		salonImporte pgtype.Numeric
		creado       pgtype.Timestamptz
		modificado   pgtype.Timestamptz
	)
	err := rows.Scan(
		&view.ReservaID,
		&fecha,
		&view.SalonID,
		&view.UsuarioID,
		&view.TurnoID,
		&foto,
		&tematica,
		&importeSalon,
		&importeTotal,
		&view.Activo,
		&creado,
		&modificado,
		&view.Salon.Titulo,
		&salonImporte,
		&view.Usuario.Nombre,
		&view.Usuario.Apellido,
		&view.Usuario.NombreUsuario,
		&view.Turno.Orden,
		&view.Turno.HoraDesde,
		&view.Turno.HoraHasta,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan reserva row", err)
	}

	view.FechaReserva = pgconv.DateFromPgtype(fecha)
	view.FotoCumpleaniero = pgconv.StringPtrFromPgtype(foto)
	view.Tematica = pgconv.StringPtrFromPgtype(tematica)
	view.Creado = pgconv.TimeFromPgtype(creado)
	view.Modificado = pgconv.TimeFromPgtype(modificado)
	view.Salon.SalonID = view.SalonID
	view.Usuario.UsuarioID = view.UsuarioID
	view.Turno.TurnoID = view.TurnoID
	if view.ImporteSalon, err = pgconv.DecimalFromNumeric(importeSalon); err != nil {
		return nil, infra.WrapRepoErr("invalid importe_salon", err)
	}
	if view.ImporteTotal, err = pgconv.DecimalFromNumeric(importeTotal); err != nil {
		return nil, infra.WrapRepoErr("invalid importe_total", err)
	}
	if view.Salon.Importe, err = pgconv.DecimalFromNumeric(salonImporte); err != nil {
		return nil, infra.WrapRepoErr("invalid salon importe", err)
	}

	return &view, nil
}

func (s *ReservaReadStore) attachServicios(ctx context.Context, views []*queries.ReservaView) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]int64, len(views))
	byID := make(map[int64]*queries.ReservaView, len(views))
	for i, view := range views {
		ids[i] = view.ReservaID
		byID[view.ReservaID] = view
		view.Servicios = []queries.ServicioLinea{}
	}

	const query = `
		SELECT rs.reserva_id, rs.servicio_id, sv.descripcion, rs.importe
		FROM reservas_servicios rs
		JOIN servicios sv ON sv.servicio_id = rs.servicio_id
		WHERE rs.reserva_id = ANY($1)
		ORDER BY rs.reserva_id, rs.servicio_id`

	rows, err := s.db.Query(ctx, query, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to load reserva servicios", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			reservaID int64
			linea     queries.ServicioLinea
			importe   pgtype.Numeric
		)
		if err := rows.Scan(&reservaID, &linea.ServicioID, &linea.Descripcion, &importe); err != nil {
			return infra.WrapRepoErr("failed to scan reserva servicio", err)
		}
		if linea.Importe, err = pgconv.DecimalFromNumeric(importe); err != nil {
			return infra.WrapRepoErr("invalid servicio importe", err)
		}
		if view, ok := byID[reservaID]; ok {
			view.Servicios = append(view.Servicios, linea)
		}
	}
	return rows.Err()
}
