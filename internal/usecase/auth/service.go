package auth

import (
	"context"

	"salones-api/internal/domain/user"
	"salones-api/internal/infra"
	"salones-api/internal/pkg/errs"
	"salones-api/internal/pkg/jwt"
	"salones-api/internal/pkg/password"
	"salones-api/internal/usecase/shared"
)

var (
	ErrInvalidCredentials      = errs.New("invalid credentials")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
	ErrTokenGenerationFailed   = errs.New("token generation failed")
)

// UsuarioReader is the lookup port for login; backed by the usuario read store.
type UsuarioReader interface {
	FindActivoByNombreUsuario(ctx context.Context, nombreUsuario string) (*shared.UsuarioSnapshot, error)
}

type LoginResult struct {
	Token         string
	UsuarioID     int64
	NombreUsuario string
	Nombre        string
	Apellido      string
	Role          user.Role
}

type Service struct {
	usuarios UsuarioReader
	tokens   *jwt.Service
}

func NewService(usuarios UsuarioReader, tokens *jwt.Service) *Service {
	return &Service{usuarios: usuarios, tokens: tokens}
}

func (s *Service) Login(ctx context.Context, nombreUsuario, contrasenia string) (*LoginResult, error) {
	usuario, err := s.usuarios.FindActivoByNombreUsuario(ctx, nombreUsuario)
	if err != nil {
		// An unknown username reads the same as a bad password.
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.Verify(usuario.Contrasenia, contrasenia); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(usuario.ID, usuario.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGenerationFailed)
	}

	return &LoginResult{
		Token:         token,
		UsuarioID:     usuario.ID,
		NombreUsuario: usuario.NombreUsuario,
		Nombre:        usuario.Nombre,
		Apellido:      usuario.Apellido,
		Role:          usuario.Role,
	}, nil
}
