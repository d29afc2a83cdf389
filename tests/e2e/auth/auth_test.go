//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"salones-api/internal/domain/user"
	"salones-api/internal/handler/dto/request"
	"salones-api/internal/handler/dto/response"
	"salones-api/tests/common/dbtest"
	"salones-api/tests/common/httptest"
	"salones-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const loginURL = "/api/auth/login"

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestLogin() {
	s.Run("Normal case: Valid credentials return a token and the usuario profile", func() {
		t := s.T()

		dbtest.CreateTestUsuario(t, s.DB, "portera", string(user.RoleEmpleado))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{NombreUsuario: "portera", Contrasenia: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.LoginResponse
		err := httptest.DecodeResponseBody(t, w.Body, &res)
		require.NoError(t, err)
		require.NotEmpty(t, res.AccessToken)
		require.Equal(t, "portera", res.Usuario.NombreUsuario)
		require.Equal(t, "empleado", res.Usuario.TipoUsuario)
	})

	s.Run("Error case: Wrong password is rejected", func() {
		t := s.T()

		dbtest.CreateTestUsuario(t, s.DB, "olvidadiza", string(user.RoleCliente))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{NombreUsuario: "olvidadiza", Contrasenia: "equivocada"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: Unknown usuario reads the same as a bad password", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{NombreUsuario: "fantasma", Contrasenia: "password123"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
