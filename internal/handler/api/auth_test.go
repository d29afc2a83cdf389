//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"salones-api/internal/domain/user"
	"salones-api/internal/handler/api"
	resdto "salones-api/internal/handler/dto/response"
	"salones-api/internal/pkg/jwt"
	"salones-api/internal/pkg/password"
	"salones-api/internal/usecase/auth"
	"salones-api/internal/usecase/shared"
	"salones-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type stubUsuarioReader struct {
	usuario *shared.UsuarioSnapshot
	err     error
}

func (s *stubUsuarioReader) FindActivoByNombreUsuario(_ context.Context, _ string) (*shared.UsuarioSnapshot, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.usuario, nil
}

type AuthHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	reader *stubUsuarioReader
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	hash, err := password.Hash("secreta123")
	s.Require().NoError(err)

	s.reader = &stubUsuarioReader{
		usuario: &shared.UsuarioSnapshot{
			ID:            10,
			Nombre:        "Maria",
			Apellido:      "Gomez",
			NombreUsuario: "mgomez",
			Contrasenia:   hash,
			Role:          user.RoleCliente,
		},
	}

	service := auth.NewService(s.reader, jwt.NewService("test-secret", time.Hour))
	handler := api.NewAuthHandler(service)
	s.router.POST("/auth/login", handler.Login)
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	s.Run("success: returns token and usuario profile", func() {
		body := map[string]any{"nombre_usuario": "mgomez", "contrasenia": "secreta123"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.LoginResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.NotEmpty(resp.AccessToken)
		s.Equal("mgomez", resp.Usuario.NombreUsuario)
		s.Equal("cliente", resp.Usuario.TipoUsuario)
	})

	s.Run("wrong password", func() {
		body := map[string]any{"nombre_usuario": "mgomez", "contrasenia": "incorrecta"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("missing fields", func() {
		body := map[string]any{"nombre_usuario": "mgomez"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
