package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "salones-api/internal/handler/dto/request"
	resdto "salones-api/internal/handler/dto/response"
	"salones-api/internal/handler/httperr"
	"salones-api/internal/handler/middleware"
	"salones-api/internal/usecase/commands"
	"salones-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservaHandler struct {
	reservaCommands commands.ReservaCommands
	reservaQueries  queries.ReservaQueries
}

func NewReservaHandler(reservaCommands commands.ReservaCommands, reservaQueries queries.ReservaQueries) *ReservaHandler {
	return &ReservaHandler{
		reservaCommands: reservaCommands,
		reservaQueries:  reservaQueries,
	}
}

// @Summary Create reserva
// @Description Reserve a salon for a date and turno with optional servicios
// @Tags reservas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservaRequest true "Reserva request"
// @Success 201 {object} resdto.ReservaResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservas [post]
func (h *ReservaHandler) CreateReserva(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	var req reqdto.CreateReservaRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "fecha_reserva must be formatted as YYYY-MM-DD", nil)
		return
	}

	view, err := h.reservaCommands.Create(c.Request.Context(), actor, params)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservaView(view))
}

// @Summary Get reserva
// @Description Get reserva by ID
// @Tags reservas
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reserva ID"
// @Success 200 {object} resdto.ReservaResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservas/{id} [get]
func (h *ReservaHandler) GetReserva(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	id, err := parseReservaID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reserva ID format", nil)
		return
	}

	view, err := h.reservaQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrReservaNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reserva not found", nil)
		case errors.Is(err, queries.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservaView(view))
}

// @Summary List reservas
// @Description List reservas with filters and pagination
// @Tags reservas
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param busqueda query string false "Free text search over salon, usuario and tematica"
// @Param incluir_inactivas query bool false "Include soft-deleted reservas (staff only)"
// @Param fecha_desde query string false "Earliest fecha_reserva (YYYY-MM-DD)"
// @Param fecha_hasta query string false "Latest fecha_reserva (YYYY-MM-DD)"
// @Success 200 {object} resdto.ReservaListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /reservas [get]
func (h *ReservaHandler) ListReservas(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	var req reqdto.ListReservasRequest
	if bindErr := c.ShouldBindQuery(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid query parameters", nil)
		return
	}

	filter := queries.ReservaFilter{
		Search:          req.Search,
		IncludeInactive: req.IncludeInactive,
		UsuarioID:       req.UsuarioID,
		SalonID:         req.SalonID,
		TurnoID:         req.TurnoID,
	}
	if req.Page != nil {
		filter.Page = *req.Page
	}
	if req.Limit != nil {
		filter.Limit = *req.Limit
	}
	if req.DateFrom != "" {
		from, err := reqdto.ParseFecha(req.DateFrom)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "fecha_desde must be formatted as YYYY-MM-DD", nil)
			return
		}
		filter.DateFrom = &from
	}
	if req.DateTo != "" {
		to, err := reqdto.ParseFecha(req.DateTo)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "fecha_hasta must be formatted as YYYY-MM-DD", nil)
			return
		}
		filter.DateTo = &to
	}

	page, err := h.reservaQueries.List(c.Request.Context(), actor, filter)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidPaging):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Paging params out of range", nil)
		case errors.Is(err, queries.ErrInvalidFilter):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid list filter", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservaPage(page))
}

// @Summary Upcoming reservas
// @Description List active reservas in the next N days (staff only)
// @Tags reservas
// @Produce json
// @Security BearerAuth
// @Param dias query int false "Days ahead, default 7"
// @Success 200 {array} resdto.ReservaResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /reservas/proximas [get]
func (h *ReservaHandler) UpcomingReservas(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	var req reqdto.UpcomingReservasRequest
	if bindErr := c.ShouldBindQuery(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid query parameters", nil)
		return
	}

	views, err := h.reservaQueries.Upcoming(c.Request.Context(), actor, req.Dias)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions", nil)
		case errors.Is(err, queries.ErrInvalidFilter):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid dias parameter", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservaViews(views))
}

// @Summary Check availability
// @Description Check whether a salon slot is free for a date and turno
// @Tags reservas
// @Produce json
// @Security BearerAuth
// @Param salon_id query int true "Salon ID"
// @Param fecha_reserva query string true "Date (YYYY-MM-DD)"
// @Param turno_id query int true "Turno ID"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /reservas/disponibilidad [get]
func (h *ReservaHandler) CheckAvailability(c *gin.Context) {
	var req reqdto.CheckAvailabilityRequest
	if bindErr := c.ShouldBindQuery(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "salon_id, fecha_reserva and turno_id are required", nil)
		return
	}

	fecha, err := reqdto.ParseFecha(req.FechaReserva)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "fecha_reserva must be formatted as YYYY-MM-DD", nil)
		return
	}

	available, err := h.reservaQueries.CheckAvailability(c.Request.Context(), req.SalonID, fecha, req.TurnoID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		SalonID:      req.SalonID,
		FechaReserva: req.FechaReserva,
		TurnoID:      req.TurnoID,
		Disponible:   available,
	})
}

// @Summary Replace reserva
// @Description Full update of a reserva, including its servicio set
// @Tags reservas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reserva ID"
// @Param request body reqdto.PutReservaRequest true "Reserva request"
// @Success 200 {object} resdto.ReservaResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservas/{id} [put]
func (h *ReservaHandler) UpdateReserva(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	id, err := parseReservaID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reserva ID format", nil)
		return
	}

	var req reqdto.PutReservaRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "fecha_reserva must be formatted as YYYY-MM-DD", nil)
		return
	}

	view, err := h.reservaCommands.Update(c.Request.Context(), actor, id, params)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservaView(view))
}

// @Summary Patch reserva
// @Description Partial update; absent fields keep their values
// @Tags reservas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reserva ID"
// @Param request body reqdto.PatchReservaRequest true "Fields to update"
// @Success 200 {object} resdto.ReservaResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservas/{id} [patch]
func (h *ReservaHandler) PatchReserva(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	id, err := parseReservaID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reserva ID format", nil)
		return
	}

	var req reqdto.PatchReservaRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "fecha_reserva must be formatted as YYYY-MM-DD", nil)
		return
	}

	view, err := h.reservaCommands.PartialUpdate(c.Request.Context(), actor, id, params)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservaView(view))
}

// @Summary Deactivate reserva
// @Description Soft delete; the reserva keeps its history and frees the slot
// @Tags reservas
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reserva ID"
// @Success 200 {object} resdto.ReservaResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservas/{id} [delete]
func (h *ReservaHandler) DeleteReserva(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	id, err := parseReservaID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reserva ID format", nil)
		return
	}

	view, err := h.reservaCommands.Deactivate(c.Request.Context(), actor, id)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservaView(view))
}

// @Summary Restore reserva
// @Description Reactivate a soft-deleted reserva if its slot is still free
// @Tags reservas
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reserva ID"
// @Success 200 {object} resdto.ReservaResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservas/{id}/restaurar [patch]
func (h *ReservaHandler) RestoreReserva(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	id, err := parseReservaID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reserva ID format", nil)
		return
	}

	view, err := h.reservaCommands.Restore(c.Request.Context(), actor, id)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservaView(view))
}

func (h *ReservaHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrReservaNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reserva not found", nil)
	case errors.Is(err, commands.ErrSalonNotFound):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Referenced salon not found or inactive", nil)
	case errors.Is(err, commands.ErrTurnoNotFound):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Referenced turno not found or inactive", nil)
	case errors.Is(err, commands.ErrUsuarioNotFound):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Referenced usuario not found or inactive", nil)
	case errors.Is(err, commands.ErrServicioNotFound):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Referenced servicio not found or inactive", nil)
	case errors.Is(err, commands.ErrSlotUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "The salon is already reserved for that date and turno", nil)
	case errors.Is(err, commands.ErrReservaInactiva):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Reserva is inactive", nil)
	case errors.Is(err, commands.ErrReservaActiva):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Reserva is already active", nil)
	case errors.Is(err, commands.ErrNoFieldsToUpdate):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "At least one field must be provided", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Domain validation failed", nil)
	case errors.Is(err, commands.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func parseReservaID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
