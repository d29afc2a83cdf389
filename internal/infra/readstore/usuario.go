package readstore

import (
	"context"

	"salones-api/internal/domain/user"
	"salones-api/internal/infra"
	"salones-api/internal/infra/db"
	"salones-api/internal/pkg/pgconv"
	"salones-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

type UsuarioReadStore struct {
	db db.Querier
}

func NewUsuarioReadStore(q db.Querier) *UsuarioReadStore {
	return &UsuarioReadStore{db: q}
}

func (s *UsuarioReadStore) FindActivoByID(ctx context.Context, id int64) (*shared.UsuarioSnapshot, error) {
	const query = `
		SELECT usuario_id, nombre, apellido, nombre_usuario, contrasenia, tipo_usuario
		FROM usuarios
		WHERE usuario_id = $1 AND activo`

	return s.scanUsuario(s.db.QueryRow(ctx, query, id))
}

// FindActivoByNombreUsuario is the login lookup.
func (s *UsuarioReadStore) FindActivoByNombreUsuario(ctx context.Context, nombreUsuario string) (*shared.UsuarioSnapshot, error) {
	const query = `
		SELECT usuario_id, nombre, apellido, nombre_usuario, contrasenia, tipo_usuario
		FROM usuarios
		WHERE nombre_usuario = $1 AND activo`

	return s.scanUsuario(s.db.QueryRow(ctx, query, nombreUsuario))
}

func (s *UsuarioReadStore) scanUsuario(row pgx.Row) (*shared.UsuarioSnapshot, error) {
	var (
		snapshot shared.UsuarioSnapshot
		tipo     string
	)
	err := row.Scan(
		&snapshot.ID,
		&snapshot.Nombre,
		&snapshot.Apellido,
		&snapshot.NombreUsuario,
		&snapshot.Contrasenia,
		&tipo,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("usuario not found or inactive", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find usuario", err)
	}

	role, err := user.NewRole(tipo)
	if err != nil {
		return nil, infra.WrapRepoErr("stored tipo_usuario is not a known role", err)
	}
	snapshot.Role = role

	return &snapshot, nil
}
