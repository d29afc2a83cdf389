//go:build e2e

package reserva_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"salones-api/internal/domain/user"
	"salones-api/internal/handler/dto/request"
	"salones-api/internal/handler/dto/response"
	"salones-api/tests/common/authtest"
	"salones-api/tests/common/dbtest"
	"salones-api/tests/common/httptest"
	"salones-api/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservasURL       = "/api/reservas"
	reservaURL        = "/api/reservas/%d"
	restaurarURL      = "/api/reservas/%d/restaurar"
	disponibilidadURL = "/api/reservas/disponibilidad?salon_id=%d&fecha_reserva=%s&turno_id=%d"
)

type ReservaSuite struct {
	e2e.SharedSuite
}

func (s *ReservaSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestReservaSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservaSuite))
}

// books a month ahead so domain date validation never interferes
func futureFecha() string {
	return time.Now().AddDate(0, 1, 0).Format("2006-01-02")
}

func strPtr(s string) *string { return &s }

// =============================================================================
// TestCreateReserva - Reserva creation API tests
// =============================================================================

func (s *ReservaSuite) TestCreateReserva() {
	url := reservasURL

	s.Run("Normal case: Cliente can book a salon with servicios", func() {
		t := s.T()

		dbtest.CreateTestUsuario(t, s.DB, "mgomez", string(user.RoleCliente))
		salonID := dbtest.CreateTestSalon(t, s.DB, "Salon Arcoiris", "50000.00")
		tortaID := dbtest.CreateTestServicio(t, s.DB, "Torta", "1500.00")
		animacionID := dbtest.CreateTestServicio(t, s.DB, "Animacion", "800.00")
		turnoID := dbtest.TurnoIDByOrden(t, s.DB, 1)

		token := authtest.LoginUsuario(t, s.Router, "mgomez", "password123")

		reqBody := request.CreateReservaRequest{
			FechaReserva: futureFecha(),
			SalonID:      salonID,
			TurnoID:      turnoID,
			Tematica:     strPtr("superheroes"),
			Servicios: []request.ServicioRefRequest{
				{ServicioID: tortaID},
				{ServicioID: animacionID},
			},
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.ReservaResponse
		err := httptest.DecodeResponseBody(t, w.Body, &created)
		require.NoError(t, err)
		require.NotZero(t, created.ReservaID)

		// Fetch detail and assert the snapshot prices
		detailURL := fmt.Sprintf(reservaURL, created.ReservaID)
		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, detailURL, nil, token)
		require.Equal(t, http.StatusOK, dw.Code)

		var actualRes response.ReservaResponse
		err = httptest.DecodeResponseBody(t, dw.Body, &actualRes)
		require.NoError(t, err)

		expected := &response.ReservaResponse{
			FechaReserva: futureFecha(),
			Tematica:     strPtr("superheroes"),
			ImporteSalon: "50000.00",
			ImporteTotal: "52300.00",
			Activo:       true,
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.ReservaResponse{},
				"ReservaID", "FotoCumpleaniero", "Creado", "Modificado",
				"Salon", "Usuario", "Turno", "Servicios"),
		}

		if diff := cmp.Diff(expected, &actualRes, opts...); diff != "" {
			t.Errorf("Reserva response mismatch (-want +got):\n%s", diff)
		}

		require.Equal(t, "Salon Arcoiris", actualRes.Salon.Titulo)
		require.Equal(t, "mgomez", actualRes.Usuario.NombreUsuario)
		require.Len(t, actualRes.Servicios, 2)

		var stamped int
		err = s.DB.QueryRow(context.Background(),
			`SELECT count(*) FROM reservas_servicios
			 WHERE reserva_id = $1 AND creado IS NOT NULL AND modificado IS NOT NULL`,
			created.ReservaID).Scan(&stamped)
		require.NoError(t, err)
		require.Equal(t, 2, stamped)
	})

	s.Run("Error case: Duplicate slot booking fails with conflict", func() {
		t := s.T()

		salonID := dbtest.CreateTestSalon(t, s.DB, "Salon Estrella", "30000.00")
		turnoID := dbtest.TurnoIDByOrden(t, s.DB, 2)
		fecha := futureFecha()

		token1 := authtest.CreateAndLogin(t, s.DB, s.Router, "cliente1", string(user.RoleCliente))
		token2 := authtest.CreateAndLogin(t, s.DB, s.Router, "cliente2", string(user.RoleCliente))

		reqBody := request.CreateReservaRequest{
			FechaReserva: fecha,
			SalonID:      salonID,
			TurnoID:      turnoID,
		}

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, url, reqBody, token1)
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, url, reqBody, token2)
		require.Equal(t, http.StatusConflict, w2.Code, "Same slot must not be bookable twice")

		// A different turno on the same date is still free
		reqBody.TurnoID = dbtest.TurnoIDByOrden(t, s.DB, 3)
		w3 := httptest.PerformRequest(t, s.Router, http.MethodPost, url, reqBody, token2)
		require.Equal(t, http.StatusCreated, w3.Code, w3.Body.String())
	})

	s.Run("Error case: Unknown salon reference is a bad request", func() {
		t := s.T()

		turnoID := dbtest.TurnoIDByOrden(t, s.DB, 1)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "sin_salon", string(user.RoleCliente))

		reqBody := request.CreateReservaRequest{
			FechaReserva: futureFecha(),
			SalonID:      999999,
			TurnoID:      turnoID,
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, reqBody, token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("Race case: Concurrent bookings for one slot yield a single winner", func() {
		t := s.T()

		salonID := dbtest.CreateTestSalon(t, s.DB, "Salon Luna", "40000.00")
		turnoID := dbtest.TurnoIDByOrden(t, s.DB, 1)
		fecha := futureFecha()

		tokenA := authtest.CreateAndLogin(t, s.DB, s.Router, "corredor_a", string(user.RoleCliente))
		tokenB := authtest.CreateAndLogin(t, s.DB, s.Router, "corredor_b", string(user.RoleCliente))

		reqBody := request.CreateReservaRequest{
			FechaReserva: fecha,
			SalonID:      salonID,
			TurnoID:      turnoID,
		}

		codes := make([]int, 2)
		var wg sync.WaitGroup
		for i, token := range []string{tokenA, tokenB} {
			wg.Add(1)
			go func(idx int, tok string) {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, reqBody, tok)
				codes[idx] = w.Code
			}(i, token)
		}
		wg.Wait()

		created := 0
		conflicted := 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			}
		}
		require.Equal(t, 1, created, "Exactly one booking should win the slot, got codes %v", codes)
		require.Equal(t, 1, conflicted, "The loser should get a conflict, got codes %v", codes)
	})

	s.Run("Error case: Cliente cannot book on behalf of another usuario", func() {
		t := s.T()

		otherID := dbtest.CreateTestUsuario(t, s.DB, "otro_cliente", string(user.RoleCliente))
		salonID := dbtest.CreateTestSalon(t, s.DB, "Salon Sol", "20000.00")
		turnoID := dbtest.TurnoIDByOrden(t, s.DB, 1)

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "cliente_comun", string(user.RoleCliente))

		reqBody := request.CreateReservaRequest{
			FechaReserva: futureFecha(),
			SalonID:      salonID,
			TurnoID:      turnoID,
			UsuarioID:    &otherID,
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, reqBody, token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("Normal case: Empleado can book on behalf of a cliente", func() {
		t := s.T()

		clienteID := dbtest.CreateTestUsuario(t, s.DB, "cumpleaniera", string(user.RoleCliente))
		salonID := dbtest.CreateTestSalon(t, s.DB, "Salon Sol", "20000.00")
		turnoID := dbtest.TurnoIDByOrden(t, s.DB, 2)

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "empleado1", string(user.RoleEmpleado))

		reqBody := request.CreateReservaRequest{
			FechaReserva: futureFecha(),
			SalonID:      salonID,
			TurnoID:      turnoID,
			UsuarioID:    &clienteID,
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.ReservaResponse
		err := httptest.DecodeResponseBody(t, w.Body, &created)
		require.NoError(t, err)
		require.Equal(t, clienteID, created.Usuario.UsuarioID)
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()

		salonID := dbtest.CreateTestSalon(t, s.DB, "Salon Sol", "20000.00")
		reqBody := request.CreateReservaRequest{
			FechaReserva: futureFecha(),
			SalonID:      salonID,
			TurnoID:      dbtest.TurnoIDByOrden(t, s.DB, 1),
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, "Should reject unauthorized access")
	})
}

// =============================================================================
// TestGetReserva - Reserva detail retrieval API tests
// =============================================================================

func (s *ReservaSuite) TestGetReserva() {
	s.Run("Error case: Cliente cannot read another cliente's reserva", func() {
		t := s.T()

		salonID := dbtest.CreateTestSalon(t, s.DB, "Salon Rio", "25000.00")
		turnoID := dbtest.TurnoIDByOrden(t, s.DB, 1)

		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "duenia", string(user.RoleCliente))
		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "curioso", string(user.RoleCliente))

		created := createReserva(t, s, ownerToken, salonID, turnoID, futureFecha())

		url := fmt.Sprintf(reservaURL, created.ReservaID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, otherToken)
		require.Equal(t, http.StatusForbidden, w.Code)

		// Staff can read anyone's reserva
		staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, "empleada", string(user.RoleEmpleado))
		sw := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, staffToken)
		require.Equal(t, http.StatusOK, sw.Code)
	})

	s.Run("Error case: Returns 404 Not Found for non-existent ID", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "buscador", string(user.RoleCliente))

		url := fmt.Sprintf(reservaURL, int64(999999))
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// TestListReservas - Reserva list API tests
// =============================================================================

func (s *ReservaSuite) TestListReservas() {
	s.Run("Normal case: Cliente only sees their own reservas", func() {
		t := s.T()

		salonID := dbtest.CreateTestSalon(t, s.DB, "Salon Norte", "15000.00")
		turno1 := dbtest.TurnoIDByOrden(t, s.DB, 1)
		turno2 := dbtest.TurnoIDByOrden(t, s.DB, 2)

		token1 := authtest.CreateAndLogin(t, s.DB, s.Router, "lista_uno", string(user.RoleCliente))
		token2 := authtest.CreateAndLogin(t, s.DB, s.Router, "lista_dos", string(user.RoleCliente))

		createReserva(t, s, token1, salonID, turno1, futureFecha())
		createReserva(t, s, token2, salonID, turno2, futureFecha())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservasURL, nil, token1)
		require.Equal(t, http.StatusOK, w.Code)

		var list response.ReservaListResponse
		err := httptest.DecodeResponseBody(t, w.Body, &list)
		require.NoError(t, err)
		require.Len(t, list.Data, 1, "Cliente must only see their own bookings")
		require.Equal(t, "lista_uno", list.Data[0].Usuario.NombreUsuario)
		require.Equal(t, int64(1), list.Pagination.Total)
	})

	s.Run("Normal case: Staff sees all reservas with pagination", func() {
		t := s.T()

		salonID := dbtest.CreateTestSalon(t, s.DB, "Salon Sur", "15000.00")
		clienteToken := authtest.CreateAndLogin(t, s.DB, s.Router, "cliente_paging", string(user.RoleCliente))
		staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, "empleado_paging", string(user.RoleEmpleado))

		for orden := 1; orden <= 3; orden++ {
			turnoID := dbtest.TurnoIDByOrden(t, s.DB, orden)
			createReserva(t, s, clienteToken, salonID, turnoID, futureFecha())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservasURL+"?limit=2", nil, staffToken)
		require.Equal(t, http.StatusOK, w.Code)

		var list response.ReservaListResponse
		err := httptest.DecodeResponseBody(t, w.Body, &list)
		require.NoError(t, err)
		require.Len(t, list.Data, 2)
		require.Equal(t, int64(3), list.Pagination.Total)
		require.Equal(t, 2, list.Pagination.TotalPages)
	})

	s.Run("Error case: Out-of-range paging params are rejected", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "paging_bad", string(user.RoleCliente))

		for _, query := range []string{"?page=0", "?limit=-5", "?limit=1000"} {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservasURL+query, nil, token)
			require.Equal(t, http.StatusBadRequest, w.Code, query)
		}
	})
}

// =============================================================================
// TestCheckAvailability - Slot availability API tests
// =============================================================================

func (s *ReservaSuite) TestCheckAvailability() {
	s.Run("Normal case: Availability flips after a booking", func() {
		t := s.T()

		salonID := dbtest.CreateTestSalon(t, s.DB, "Salon Oeste", "18000.00")
		turnoID := dbtest.TurnoIDByOrden(t, s.DB, 1)
		fecha := futureFecha()

		clienteToken := authtest.CreateAndLogin(t, s.DB, s.Router, "consultora", string(user.RoleCliente))
		staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, "recepcion", string(user.RoleEmpleado))

		url := fmt.Sprintf(disponibilidadURL, salonID, fecha, turnoID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, staffToken)
		require.Equal(t, http.StatusOK, w.Code)

		var avail response.AvailabilityResponse
		err := httptest.DecodeResponseBody(t, w.Body, &avail)
		require.NoError(t, err)
		require.True(t, avail.Disponible, "Untouched slot should be free")

		createReserva(t, s, clienteToken, salonID, turnoID, fecha)

		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, staffToken)
		require.Equal(t, http.StatusOK, w2.Code)
		err = httptest.DecodeResponseBody(t, w2.Body, &avail)
		require.NoError(t, err)
		require.False(t, avail.Disponible, "Booked slot should read as taken")
	})

	s.Run("Error case: Cliente cannot query availability", func() {
		t := s.T()

		salonID := dbtest.CreateTestSalon(t, s.DB, "Salon Este", "18000.00")
		turnoID := dbtest.TurnoIDByOrden(t, s.DB, 1)

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "curiosa", string(user.RoleCliente))

		url := fmt.Sprintf(disponibilidadURL, salonID, futureFecha(), turnoID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// =============================================================================
// TestUpdateReserva - Full and partial update API tests
// =============================================================================

func (s *ReservaSuite) TestUpdateReserva() {
	s.Run("Normal case: Admin moves a reserva to another salon and the price re-snapshots", func() {
		t := s.T()

		salonID := dbtest.CreateTestSalon(t, s.DB, "Salon Chico", "10000.00")
		salonGrandeID := dbtest.CreateTestSalon(t, s.DB, "Salon Grande", "90000.00")
		turnoID := dbtest.TurnoIDByOrden(t, s.DB, 1)
		fecha := futureFecha()

		clienteToken := authtest.CreateAndLogin(t, s.DB, s.Router, "mudanza", string(user.RoleCliente))
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin1", string(user.RoleAdmin))

		created := createReserva(t, s, clienteToken, salonID, turnoID, fecha)

		updateReq := request.PutReservaRequest{
			FechaReserva: fecha,
			SalonID:      salonGrandeID,
			TurnoID:      turnoID,
		}

		url := fmt.Sprintf(reservaURL, created.ReservaID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, url, updateReq, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated response.ReservaResponse
		err := httptest.DecodeResponseBody(t, w.Body, &updated)
		require.NoError(t, err)
		require.Equal(t, "90000.00", updated.ImporteSalon)
		require.Equal(t, "90000.00", updated.ImporteTotal)
		require.Equal(t, salonGrandeID, updated.Salon.SalonID)
	})

	s.Run("Normal case: PATCH with explicit null clears tematica only", func() {
		t := s.T()

		salonID := dbtest.CreateTestSalon(t, s.DB, "Salon Patch", "10000.00")
		turnoID := dbtest.TurnoIDByOrden(t, s.DB, 2)

		clienteToken := authtest.CreateAndLogin(t, s.DB, s.Router, "parchada", string(user.RoleCliente))
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin2", string(user.RoleAdmin))

		created := createReserva(t, s, clienteToken, salonID, turnoID, futureFecha())
		require.NotNil(t, created.Tematica)

		url := fmt.Sprintf(reservaURL, created.ReservaID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url,
			map[string]any{"tematica": nil}, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var patched response.ReservaResponse
		err := httptest.DecodeResponseBody(t, w.Body, &patched)
		require.NoError(t, err)
		require.Nil(t, patched.Tematica, "Explicit null must clear tematica")
		require.Equal(t, created.ImporteTotal, patched.ImporteTotal, "Untouched price must survive the patch")
		require.Equal(t, created.FechaReserva, patched.FechaReserva)
	})

	s.Run("Error case: Non-admin cannot update", func() {
		t := s.T()

		salonID := dbtest.CreateTestSalon(t, s.DB, "Salon Veda", "10000.00")
		turnoID := dbtest.TurnoIDByOrden(t, s.DB, 1)

		clienteToken := authtest.CreateAndLogin(t, s.DB, s.Router, "sin_permisos", string(user.RoleCliente))
		created := createReserva(t, s, clienteToken, salonID, turnoID, futureFecha())

		updateReq := request.PutReservaRequest{
			FechaReserva: futureFecha(),
			SalonID:      salonID,
			TurnoID:      turnoID,
		}

		url := fmt.Sprintf(reservaURL, created.ReservaID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, url, updateReq, clienteToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// =============================================================================
// TestDeleteAndRestore - Soft delete and restore API tests
// =============================================================================

func (s *ReservaSuite) TestDeleteAndRestore() {
	s.Run("Normal case: Soft delete frees the slot and restore re-occupies it", func() {
		t := s.T()

		salonID := dbtest.CreateTestSalon(t, s.DB, "Salon Ciclo", "12000.00")
		turnoID := dbtest.TurnoIDByOrden(t, s.DB, 1)
		fecha := futureFecha()

		clienteToken := authtest.CreateAndLogin(t, s.DB, s.Router, "ciclista", string(user.RoleCliente))
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin3", string(user.RoleAdmin))

		created := createReserva(t, s, clienteToken, salonID, turnoID, fecha)

		// Soft delete keeps the row but marks it inactive
		url := fmt.Sprintf(reservaURL, created.ReservaID)
		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil, adminToken)
		require.Equal(t, http.StatusOK, dw.Code, dw.Body.String())

		var deleted response.ReservaResponse
		err := httptest.DecodeResponseBody(t, dw.Body, &deleted)
		require.NoError(t, err)
		require.False(t, deleted.Activo)

		// The freed slot can be booked again
		second := createReserva(t, s, clienteToken, salonID, turnoID, fecha)
		require.NotEqual(t, created.ReservaID, second.ReservaID)

		// Restoring the original now collides with the new booking
		rw := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(restaurarURL, created.ReservaID), nil, adminToken)
		require.Equal(t, http.StatusConflict, rw.Code, "Restore must not double-book the slot")

		// Free the slot again and restore succeeds
		dw2 := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			fmt.Sprintf(reservaURL, second.ReservaID), nil, adminToken)
		require.Equal(t, http.StatusOK, dw2.Code)

		rw2 := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(restaurarURL, created.ReservaID), nil, adminToken)
		require.Equal(t, http.StatusOK, rw2.Code, rw2.Body.String())

		var restored response.ReservaResponse
		err = httptest.DecodeResponseBody(t, rw2.Body, &restored)
		require.NoError(t, err)
		require.True(t, restored.Activo)
		require.Equal(t, created.ImporteTotal, restored.ImporteTotal, "Restore must keep the original snapshot prices")
	})

	s.Run("Error case: Deleting an already inactive reserva fails", func() {
		t := s.T()

		salonID := dbtest.CreateTestSalon(t, s.DB, "Salon Doble", "12000.00")
		turnoID := dbtest.TurnoIDByOrden(t, s.DB, 2)

		clienteToken := authtest.CreateAndLogin(t, s.DB, s.Router, "repetida", string(user.RoleCliente))
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin4", string(user.RoleAdmin))

		created := createReserva(t, s, clienteToken, salonID, turnoID, futureFecha())

		url := fmt.Sprintf(reservaURL, created.ReservaID)
		w1 := httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil, adminToken)
		require.Equal(t, http.StatusOK, w1.Code)

		w2 := httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil, adminToken)
		require.Equal(t, http.StatusBadRequest, w2.Code)
	})
}

// creates a reserva through the API and returns the response body
func createReserva(t *testing.T, s *ReservaSuite, token string, salonID, turnoID int64, fecha string) response.ReservaResponse {
	t.Helper()

	reqBody := request.CreateReservaRequest{
		FechaReserva: fecha,
		SalonID:      salonID,
		TurnoID:      turnoID,
		Tematica:     strPtr("princesas"),
	}

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservasURL, reqBody, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.ReservaResponse
	err := httptest.DecodeResponseBody(t, w.Body, &created)
	require.NoError(t, err)
	return created
}
