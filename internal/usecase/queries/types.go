package queries

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReservaView is the hydrated read model: the reserva row joined with its
// salon/usuario/turno summaries and servicio snapshot lines.
type ReservaView struct {
	ReservaID        int64
	FechaReserva     time.Time
	SalonID          int64
	UsuarioID        int64
	TurnoID          int64
	FotoCumpleaniero *string
	Tematica         *string
	ImporteSalon     decimal.Decimal
	ImporteTotal     decimal.Decimal
	Activo           bool
	Creado           time.Time
	Modificado       time.Time
	Salon            SalonResumen
	Usuario          UsuarioResumen
	Turno            TurnoResumen
	Servicios        []ServicioLinea
}

type SalonResumen struct {
	SalonID int64
	Titulo  string
	Importe decimal.Decimal
}

type UsuarioResumen struct {
	UsuarioID     int64
	Nombre        string
	Apellido      string
	NombreUsuario string
}

type TurnoResumen struct {
	TurnoID   int64
	Orden     int32
	HoraDesde string
	HoraHasta string
}

type ServicioLinea struct {
	ServicioID  int64
	Descripcion string
	Importe     decimal.Decimal
}

type Pagination struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

type ReservaPage struct {
	Data       []*ReservaView
	Pagination Pagination
}

// ReservaFilter narrows the list query; zero values mean "no filter".
type ReservaFilter struct {
	Search          string
	IncludeInactive bool
	DateFrom        *time.Time
	DateTo          *time.Time
	UsuarioID       *int64
	SalonID         *int64
	TurnoID         *int64
	Page            int
	Limit           int
}

const (
	DefaultListLimit = 20
	MaxListLimit     = 200

	DefaultUpcomingDays = 7
	MaxUpcomingDays     = 365
)

// NormalizeLimit applies the default for an unset limit and rejects
// out-of-range values. Zero means the caller sent no limit.
func NormalizeLimit(limit int) (int, error) {
	if limit == 0 {
		return DefaultListLimit, nil
	}
	if limit < 1 || limit > MaxListLimit {
		return 0, ErrInvalidPaging
	}
	return limit, nil
}

// NormalizePage applies the default for an unset page and rejects
// non-positive values.
func NormalizePage(page int) (int, error) {
	if page == 0 {
		return 1, nil
	}
	if page < 1 {
		return 0, ErrInvalidPaging
	}
	return page, nil
}
