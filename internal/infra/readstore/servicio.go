package readstore

import (
	"context"

	"salones-api/internal/infra"
	"salones-api/internal/infra/db"
	"salones-api/internal/pkg/errs"
	"salones-api/internal/pkg/pgconv"
	"salones-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type ServicioReadStore struct {
	db db.Querier
}

func NewServicioReadStore(q db.Querier) *ServicioReadStore {
	return &ServicioReadStore{db: q}
}

// FindActivosByIDs resolves every requested servicio or fails as a whole,
// naming the first id that does not resolve to an active row. Results come
// back in the order of ids.
func (s *ServicioReadStore) FindActivosByIDs(ctx context.Context, ids []int64) ([]shared.ServicioSnapshot, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	const query = `
		SELECT servicio_id, descripcion, importe
		FROM servicios
		WHERE servicio_id = ANY($1) AND activo`

	rows, err := s.db.Query(ctx, query, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find servicios", err)
	}
	defer rows.Close()

	found := make(map[int64]shared.ServicioSnapshot, len(ids))
	for rows.Next() {
		var (
			snapshot shared.ServicioSnapshot
			importe  pgtype.Numeric
		)
		if err := rows.Scan(&snapshot.ID, &snapshot.Descripcion, &importe); err != nil {
			return nil, infra.WrapRepoErr("failed to scan servicio", err)
		}
		snapshot.Importe, err = pgconv.DecimalFromNumeric(importe)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid servicio importe", err)
		}
		found[snapshot.ID] = snapshot
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read servicios", err)
	}

	result := make([]shared.ServicioSnapshot, 0, len(ids))
	for _, id := range ids {
		snapshot, ok := found[id]
		if !ok {
			return nil, infra.WrapRepoErr(
				"servicio not found or inactive",
				errs.Newf("servicio %d not found or inactive", id),
				infra.KindNotFound,
			)
		}
		result = append(result, snapshot)
	}

	return result, nil
}
