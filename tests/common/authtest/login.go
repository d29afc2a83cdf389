//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"salones-api/internal/handler/dto/request"
	"salones-api/internal/handler/dto/response"
	"salones-api/tests/common/dbtest"
	"salones-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginUsuario(t *testing.T, router *gin.Engine, nombreUsuario, contrasenia string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{NombreUsuario: nombreUsuario, Contrasenia: contrasenia}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.LoginResponse
	err := httptest.DecodeResponseBody(t, w.Body, &res)
	require.NoError(t, err)
	require.NotEmpty(t, res.AccessToken, "Access token should not be empty")

	return res.AccessToken
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, nombreUsuario, tipoUsuario string) string {
	t.Helper()
	dbtest.CreateTestUsuario(t, db, nombreUsuario, tipoUsuario)
	return LoginUsuario(t, router, nombreUsuario, "password123")
}
