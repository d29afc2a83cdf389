package readstore

import (
	"context"

	"salones-api/internal/infra"
	"salones-api/internal/infra/db"
	"salones-api/internal/pkg/pgconv"
	"salones-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type SalonReadStore struct {
	db db.Querier
}

func NewSalonReadStore(q db.Querier) *SalonReadStore {
	return &SalonReadStore{db: q}
}

// FindActivoByID resolves a salon only while its activo flag is set; inactive
// salons are indistinguishable from missing ones on purpose.
func (s *SalonReadStore) FindActivoByID(ctx context.Context, id int64) (*shared.SalonSnapshot, error) {
	const query = `
		SELECT salon_id, titulo, importe
		FROM salones
		WHERE salon_id = $1 AND activo`

	var (
		snapshot shared.SalonSnapshot
		importe  pgtype.Numeric
	)
	err := s.db.QueryRow(ctx, query, id).Scan(&snapshot.ID, &snapshot.Titulo, &importe)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("salon not found or inactive", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find salon by ID", err)
	}

	snapshot.Importe, err = pgconv.DecimalFromNumeric(importe)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid salon importe", err)
	}

	return &snapshot, nil
}
