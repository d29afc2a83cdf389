package shared

import (
	"time"

	"salones-api/internal/domain/user"

	"github.com/shopspring/decimal"
)

// Actor identifies the authenticated caller for ownership and role checks.
type Actor struct {
	UsuarioID int64
	Role      user.Role
}

// Write-side snapshots prevent dependency on read-side query types (CQRS separation)
type SalonSnapshot struct {
	ID      int64
	Titulo  string
	Importe decimal.Decimal
}

type TurnoSnapshot struct {
	ID        int64
	Orden     int32
	HoraDesde string
	HoraHasta string
}

type UsuarioSnapshot struct {
	ID            int64
	Nombre        string
	Apellido      string
	NombreUsuario string
	Contrasenia   string
	Role          user.Role
}

type ServicioSnapshot struct {
	ID          int64
	Descripcion string
	Importe     decimal.Decimal
}

type ReservaSnapshot struct {
	ID               int64
	FechaReserva     time.Time
	SalonID          int64
	UsuarioID        int64
	TurnoID          int64
	FotoCumpleaniero *string
	Tematica         *string
	ImporteSalon     decimal.Decimal
	ImporteTotal     decimal.Decimal
	Activo           bool
}
