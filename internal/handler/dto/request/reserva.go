package request

import (
	"strings"
	"time"

	"salones-api/internal/pkg/errs"
	"salones-api/internal/pkg/patch"
	"salones-api/internal/usecase/commands"
)

// Dates travel as plain "YYYY-MM-DD" strings; the hour belongs to the turno.
const FechaLayout = "2006-01-02"

var ErrInvalidFecha = errs.New("fecha_reserva must be formatted as YYYY-MM-DD")

func ParseFecha(value string) (time.Time, error) {
	fecha, err := time.Parse(FechaLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, errs.Mark(err, ErrInvalidFecha)
	}
	return fecha, nil
}

type ServicioRefRequest struct {
	ServicioID int64 `json:"servicio_id" binding:"required"`
}

func servicioIDs(refs []ServicioRefRequest) []int64 {
	ids := make([]int64, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ServicioID)
	}
	return ids
}

type CreateReservaRequest struct {
	FechaReserva     string               `json:"fecha_reserva" binding:"required"`
	SalonID          int64                `json:"salon_id" binding:"required"`
	TurnoID          int64                `json:"turno_id" binding:"required"`
	UsuarioID        *int64               `json:"usuario_id,omitempty"`
	FotoCumpleaniero *string              `json:"foto_cumpleaniero,omitempty"`
	Tematica         *string              `json:"tematica,omitempty"`
	Servicios        []ServicioRefRequest `json:"servicios"`
}

func (r CreateReservaRequest) ToParams() (commands.CreateReservaParams, error) {
	fecha, err := ParseFecha(r.FechaReserva)
	if err != nil {
		return commands.CreateReservaParams{}, err
	}
	return commands.CreateReservaParams{
		FechaReserva:     fecha,
		SalonID:          r.SalonID,
		TurnoID:          r.TurnoID,
		UsuarioID:        r.UsuarioID,
		FotoCumpleaniero: r.FotoCumpleaniero,
		Tematica:         r.Tematica,
		Servicios:        servicioIDs(r.Servicios),
	}, nil
}

type PutReservaRequest struct {
	FechaReserva     string               `json:"fecha_reserva" binding:"required"`
	SalonID          int64                `json:"salon_id" binding:"required"`
	TurnoID          int64                `json:"turno_id" binding:"required"`
	FotoCumpleaniero *string              `json:"foto_cumpleaniero,omitempty"`
	Tematica         *string              `json:"tematica,omitempty"`
	Servicios        []ServicioRefRequest `json:"servicios"`
}

func (r PutReservaRequest) ToParams() (commands.ReplaceReservaParams, error) {
	fecha, err := ParseFecha(r.FechaReserva)
	if err != nil {
		return commands.ReplaceReservaParams{}, err
	}
	return commands.ReplaceReservaParams{
		FechaReserva:     fecha,
		SalonID:          r.SalonID,
		TurnoID:          r.TurnoID,
		FotoCumpleaniero: r.FotoCumpleaniero,
		Tematica:         r.Tematica,
		Servicios:        servicioIDs(r.Servicios),
	}, nil
}

// PatchReservaRequest distinguishes absent fields from explicit nulls, so a
// PATCH can clear tematica without touching the other columns.
type PatchReservaRequest struct {
	FechaReserva     patch.Field[string]               `json:"fecha_reserva"`
	SalonID          patch.Field[int64]                `json:"salon_id"`
	TurnoID          patch.Field[int64]                `json:"turno_id"`
	FotoCumpleaniero patch.Field[*string]              `json:"foto_cumpleaniero"`
	Tematica         patch.Field[*string]              `json:"tematica"`
	Servicios        patch.Field[[]ServicioRefRequest] `json:"servicios"`
	Activo           patch.Field[bool]                 `json:"activo"`
}

func (r PatchReservaRequest) ToParams() (commands.PatchReservaParams, error) {
	var p commands.PatchReservaParams
	if raw, set := r.FechaReserva.Get(); set {
		fecha, err := ParseFecha(raw)
		if err != nil {
			return commands.PatchReservaParams{}, err
		}
		p.FechaReserva = patch.NewField(fecha)
	}
	if v, set := r.SalonID.Get(); set {
		p.SalonID = patch.NewField(v)
	}
	if v, set := r.TurnoID.Get(); set {
		p.TurnoID = patch.NewField(v)
	}
	if v, set := r.FotoCumpleaniero.Get(); set {
		p.FotoCumpleaniero = patch.NewField(v)
	}
	if v, set := r.Tematica.Get(); set {
		p.Tematica = patch.NewField(v)
	}
	if v, set := r.Servicios.Get(); set {
		p.Servicios = patch.NewField(servicioIDs(v))
	}
	if v, set := r.Activo.Get(); set {
		p.Activo = patch.NewField(v)
	}
	return p, nil
}

type CheckAvailabilityRequest struct {
	SalonID      int64  `form:"salon_id" binding:"required"`
	FechaReserva string `form:"fecha_reserva" binding:"required"`
	TurnoID      int64  `form:"turno_id" binding:"required"`
}

type ListReservasRequest struct {
	Search          string `form:"busqueda"`
	IncludeInactive bool   `form:"incluir_inactivas"`
	DateFrom        string `form:"fecha_desde"`
	DateTo          string `form:"fecha_hasta"`
	UsuarioID       *int64 `form:"usuario_id"`
	SalonID         *int64 `form:"salon_id"`
	TurnoID         *int64 `form:"turno_id"`
	Page            *int   `form:"page" binding:"omitempty,min=1"`
	Limit           *int   `form:"limit" binding:"omitempty,min=1,max=200"`
}

type UpcomingReservasRequest struct {
	Dias int `form:"dias"`
}
