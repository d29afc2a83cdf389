package response

import (
	"time"

	"salones-api/internal/usecase/queries"
)

// Importes travel as decimal strings to keep JSON numbers out of money.
type ReservaResponse struct {
	ReservaID        int64              `json:"reserva_id"`
	FechaReserva     string             `json:"fecha_reserva"`
	FotoCumpleaniero *string            `json:"foto_cumpleaniero"`
	Tematica         *string            `json:"tematica"`
	ImporteSalon     string             `json:"importe_salon"`
	ImporteTotal     string             `json:"importe_total"`
	Activo           bool               `json:"activo"`
	Creado           time.Time          `json:"creado"`
	Modificado       time.Time          `json:"modificado"`
	Salon            SalonResponse      `json:"salon"`
	Usuario          UsuarioResponse    `json:"usuario"`
	Turno            TurnoResponse      `json:"turno"`
	Servicios        []ServicioResponse `json:"servicios"`
}

type SalonResponse struct {
	SalonID int64  `json:"salon_id"`
	Titulo  string `json:"titulo"`
	Importe string `json:"importe"`
}

type UsuarioResponse struct {
	UsuarioID     int64  `json:"usuario_id"`
	Nombre        string `json:"nombre"`
	Apellido      string `json:"apellido"`
	NombreUsuario string `json:"nombre_usuario"`
}

type TurnoResponse struct {
	TurnoID   int64  `json:"turno_id"`
	Orden     int32  `json:"orden"`
	HoraDesde string `json:"hora_desde"`
	HoraHasta string `json:"hora_hasta"`
}

type ServicioResponse struct {
	ServicioID  int64  `json:"servicio_id"`
	Descripcion string `json:"descripcion"`
	Importe     string `json:"importe"`
}

type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type ReservaListResponse struct {
	Data       []*ReservaResponse `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

type AvailabilityResponse struct {
	SalonID      int64  `json:"salon_id"`
	FechaReserva string `json:"fecha_reserva"`
	TurnoID      int64  `json:"turno_id"`
	Disponible   bool   `json:"disponible"`
}

const fechaLayout = "2006-01-02"

func FromReservaView(view *queries.ReservaView) *ReservaResponse {
	servicios := make([]ServicioResponse, 0, len(view.Servicios))
	for _, linea := range view.Servicios {
		servicios = append(servicios, ServicioResponse{
			ServicioID:  linea.ServicioID,
			Descripcion: linea.Descripcion,
			Importe:     linea.Importe.StringFixed(2),
		})
	}

	return &ReservaResponse{
		ReservaID:        view.ReservaID,
		FechaReserva:     view.FechaReserva.Format(fechaLayout),
		FotoCumpleaniero: view.FotoCumpleaniero,
		Tematica:         view.Tematica,
		ImporteSalon:     view.ImporteSalon.StringFixed(2),
		ImporteTotal:     view.ImporteTotal.StringFixed(2),
		Activo:           view.Activo,
		Creado:           view.Creado,
		Modificado:       view.Modificado,
		Salon: SalonResponse{
			SalonID: view.Salon.SalonID,
			Titulo:  view.Salon.Titulo,
			Importe: view.Salon.Importe.StringFixed(2),
		},
		Usuario: UsuarioResponse{
			UsuarioID:     view.Usuario.UsuarioID,
			Nombre:        view.Usuario.Nombre,
			Apellido:      view.Usuario.Apellido,
			NombreUsuario: view.Usuario.NombreUsuario,
		},
		Turno: TurnoResponse{
			TurnoID:   view.Turno.TurnoID,
			Orden:     view.Turno.Orden,
			HoraDesde: view.Turno.HoraDesde,
			HoraHasta: view.Turno.HoraHasta,
		},
		Servicios: servicios,
	}
}

func FromReservaPage(page *queries.ReservaPage) *ReservaListResponse {
	data := make([]*ReservaResponse, 0, len(page.Data))
	for _, view := range page.Data {
		data = append(data, FromReservaView(view))
	}
	return &ReservaListResponse{
		Data: data,
		Pagination: PaginationResponse{
			Page:       page.Pagination.Page,
			Limit:      page.Pagination.Limit,
			Total:      page.Pagination.Total,
			TotalPages: page.Pagination.TotalPages,
		},
	}
}

func FromReservaViews(views []*queries.ReservaView) []*ReservaResponse {
	data := make([]*ReservaResponse, 0, len(views))
	for _, view := range views {
		data = append(data, FromReservaView(view))
	}
	return data
}
