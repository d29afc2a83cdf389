//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"salones-api/internal/domain/user"
	"salones-api/internal/handler/api"
	resdto "salones-api/internal/handler/dto/response"
	"salones-api/internal/usecase/commands"
	"salones-api/internal/usecase/queries"
	"salones-api/tests/common/builder"
	"salones-api/tests/common/httptest"
	"salones-api/tests/common/testutil"
	commandsmock "salones-api/tests/mock/commands"
	queriesmock "salones-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservaHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservaCommands
	mockQueries  *queriesmock.MockReservaQueries
	handler      *api.ReservaHandler
}

func (s *ReservaHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservaCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservaQueries(s.mockCtrl)
	s.handler = api.NewReservaHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("usuario_id", int64(10))
		c.Set("usuario_role", user.RoleCliente)
		c.Next()
	}

	s.router.POST("/reservas", authMiddleware, s.handler.CreateReserva)
	s.router.GET("/reservas", authMiddleware, s.handler.ListReservas)
	s.router.GET("/reservas/proximas", authMiddleware, s.handler.UpcomingReservas)
	s.router.GET("/reservas/disponibilidad", authMiddleware, s.handler.CheckAvailability)
	s.router.GET("/reservas/:id", authMiddleware, s.handler.GetReserva)
	s.router.PUT("/reservas/:id", authMiddleware, s.handler.UpdateReserva)
	s.router.PATCH("/reservas/:id", authMiddleware, s.handler.PatchReserva)
	s.router.DELETE("/reservas/:id", authMiddleware, s.handler.DeleteReserva)
	s.router.PATCH("/reservas/:id/restaurar", authMiddleware, s.handler.RestoreReserva)
}

func (s *ReservaHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservaHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservaHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservaHandlerTestSuite) TestCreate() {
	url := "/reservas"
	returnView := builder.NewReservaBuilder().BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		body := builder.NewReservaBuilder().BuildCreateRequestMap()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		s.Equal(http.StatusCreated, rec.Code)

		var resp resdto.ReservaResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal(int64(1), resp.ReservaID)
		s.Equal("52300.00", resp.ImporteTotal)
		s.Equal("50000.00", resp.ImporteSalon)
		s.Len(resp.Servicios, 2)
	})

	s.Run("unauthorized without token", func() {
		body := builder.NewReservaBuilder().BuildCreateRequestMap()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	validation := []struct {
		name       string
		mutate     func(m map[string]any)
		expectCode int
	}{
		{name: "missing fecha_reserva", mutate: testutil.Field("fecha_reserva", nil), expectCode: http.StatusBadRequest},
		{name: "missing salon_id", mutate: testutil.Field("salon_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing turno_id", mutate: testutil.Field("turno_id", nil), expectCode: http.StatusBadRequest},
		{name: "malformed fecha_reserva", mutate: testutil.Field("fecha_reserva", "15/06/2025"), expectCode: http.StatusBadRequest},
		{name: "non-numeric salon_id", mutate: testutil.Field("salon_id", "abc"), expectCode: http.StatusBadRequest},
	}
	for _, tc := range validation {
		s.Run("validation: "+tc.name, func() {
			body := builder.NewReservaBuilder().BuildCreateRequestMap()
			tc.mutate(body)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
			s.Equal(tc.expectCode, rec.Code)
		})
	}

	domainErrors := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "occupied slot", err: commands.ErrSlotUnavailable, expectCode: http.StatusConflict},
		{name: "missing salon", err: commands.ErrSalonNotFound, expectCode: http.StatusBadRequest},
		{name: "missing servicio", err: commands.ErrServicioNotFound, expectCode: http.StatusBadRequest},
		{name: "missing usuario", err: commands.ErrUsuarioNotFound, expectCode: http.StatusBadRequest},
		{name: "missing turno", err: commands.ErrTurnoNotFound, expectCode: http.StatusBadRequest},
		{name: "domain validation", err: commands.ErrDomainValidation, expectCode: http.StatusBadRequest},
		{name: "forbidden", err: commands.ErrForbidden, expectCode: http.StatusForbidden},
	}
	for _, tc := range domainErrors {
		s.Run("error mapping: "+tc.name, func() {
			s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tc.err).Times(1)

			body := builder.NewReservaBuilder().BuildCreateRequestMap()
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
			s.Equal(tc.expectCode, rec.Code)
		})
	}
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReservaHandlerTestSuite) TestGet() {
	returnView := builder.NewReservaBuilder().BuildView()

	s.Run("success: returns the hydrated view", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), int64(1)).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservas/1", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.ReservaResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal("Salon Arcoiris", resp.Salon.Titulo)
		s.Equal("mgomez", resp.Usuario.NombreUsuario)
	})

	s.Run("invalid id format", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservas/abc", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("not found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), int64(404)).
			Return(nil, queries.ErrReservaNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservas/404", nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("forbidden for another cliente's reserva", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), int64(2)).
			Return(nil, queries.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservas/2", nil, "bearer-token")
		s.Equal(http.StatusForbidden, rec.Code)
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *ReservaHandlerTestSuite) TestList() {
	s.Run("success: returns data with pagination envelope", func() {
		page := &queries.ReservaPage{
			Data: []*queries.ReservaView{builder.NewReservaBuilder().BuildView()},
			Pagination: queries.Pagination{
				Page: 1, Limit: 20, Total: 1, TotalPages: 1,
			},
		}
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(page, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservas?page=1&limit=20", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.ReservaListResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Len(resp.Data, 1)
		s.Equal(int64(1), resp.Pagination.Total)
	})

	s.Run("malformed date filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservas?fecha_desde=junk", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("out-of-range paging params", func() {
		for _, query := range []string{"page=0", "page=-1", "limit=0", "limit=201"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservas?"+query, nil, "bearer-token")
			s.Equal(http.StatusBadRequest, rec.Code, query)
		}
	})
}

// ================================================================================
// TestUpcoming / TestCheckAvailability
// ================================================================================

func (s *ReservaHandlerTestSuite) TestUpcoming() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().Upcoming(gomock.Any(), gomock.Any(), 14).
			Return([]*queries.ReservaView{builder.NewReservaBuilder().BuildView()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservas/proximas?dias=14", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("forbidden for cliente", func() {
		s.mockQueries.EXPECT().Upcoming(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservas/proximas", nil, "bearer-token")
		s.Equal(http.StatusForbidden, rec.Code)
	})
}

func (s *ReservaHandlerTestSuite) TestCheckAvailability() {
	s.Run("free slot reports disponible", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), int64(1), gomock.Any(), int64(2)).
			Return(true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/reservas/disponibilidad?salon_id=1&fecha_reserva=2025-06-15&turno_id=2", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.AvailabilityResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.True(resp.Disponible)
	})

	s.Run("missing required params", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservas/disponibilidad?salon_id=1", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestUpdate / TestPatch
// ================================================================================

func (s *ReservaHandlerTestSuite) TestUpdate() {
	url := "/reservas/1"
	body := map[string]any{
		"fecha_reserva": "2025-06-15",
		"salon_id":      1,
		"turno_id":      2,
		"servicios":     []map[string]any{{"servicio_id": 1}},
	}

	s.Run("success", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), int64(1), gomock.Any()).
			Return(builder.NewReservaBuilder().BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("conflict on slot change", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), int64(1), gomock.Any()).
			Return(nil, commands.ErrSlotUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("inactive reserva", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), int64(1), gomock.Any()).
			Return(nil, commands.ErrReservaInactiva).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *ReservaHandlerTestSuite) TestPatch() {
	url := "/reservas/1"

	s.Run("success with single field", func() {
		s.mockCommands.EXPECT().PartialUpdate(gomock.Any(), gomock.Any(), int64(1), gomock.Any()).
			Return(builder.NewReservaBuilder().BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"tematica": "dinosaurios"}, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("empty body maps to 400", func() {
		s.mockCommands.EXPECT().PartialUpdate(gomock.Any(), gomock.Any(), int64(1), gomock.Any()).
			Return(nil, commands.ErrNoFieldsToUpdate).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestDelete / TestRestore
// ================================================================================

func (s *ReservaHandlerTestSuite) TestDelete() {
	s.Run("soft delete returns the deactivated view", func() {
		inactive := builder.NewReservaBuilder().AsInactiva().BuildView()
		s.mockCommands.EXPECT().Deactivate(gomock.Any(), gomock.Any(), int64(1)).
			Return(inactive, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservas/1", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.ReservaResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.False(resp.Activo)
	})

	s.Run("already inactive", func() {
		s.mockCommands.EXPECT().Deactivate(gomock.Any(), gomock.Any(), int64(1)).
			Return(nil, commands.ErrReservaInactiva).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservas/1", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *ReservaHandlerTestSuite) TestRestore() {
	s.Run("restores when slot is free", func() {
		s.mockCommands.EXPECT().Restore(gomock.Any(), gomock.Any(), int64(1)).
			Return(builder.NewReservaBuilder().BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/reservas/1/restaurar", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("slot retaken since deletion", func() {
		s.mockCommands.EXPECT().Restore(gomock.Any(), gomock.Any(), int64(1)).
			Return(nil, commands.ErrSlotUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/reservas/1/restaurar", nil, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})
}
