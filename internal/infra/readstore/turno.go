package readstore

import (
	"context"

	"salones-api/internal/infra"
	"salones-api/internal/infra/db"
	"salones-api/internal/pkg/pgconv"
	"salones-api/internal/usecase/shared"
)

type TurnoReadStore struct {
	db db.Querier
}

func NewTurnoReadStore(q db.Querier) *TurnoReadStore {
	return &TurnoReadStore{db: q}
}

func (s *TurnoReadStore) FindActivoByID(ctx context.Context, id int64) (*shared.TurnoSnapshot, error) {
	const query = `
		SELECT turno_id, orden, hora_desde::text, hora_hasta::text
		FROM turnos
		WHERE turno_id = $1 AND activo`

	var snapshot shared.TurnoSnapshot
	err := s.db.QueryRow(ctx, query, id).Scan(
		&snapshot.ID,
		&snapshot.Orden,
		&snapshot.HoraDesde,
		&snapshot.HoraHasta,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("turno not found or inactive", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find turno by ID", err)
	}

	return &snapshot, nil
}
