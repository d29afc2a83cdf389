//go:build unit || e2e

package builder

import (
	"time"

	domreservation "salones-api/internal/domain/reservation"
	"salones-api/internal/pkg/clock"
	"salones-api/internal/usecase/queries"
	"salones-api/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

// Fixed "today" so date validation is deterministic in unit tests.
var Today = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

type ReservaBuilder struct {
	ReservaID     int64
	Fecha         time.Time
	SalonID       int64
	SalonTitulo   string
	SalonImporte  decimal.Decimal
	UsuarioID     int64
	TurnoID       int64
	Foto          *string
	Tematica      *string
	Cargos        []domreservation.ServicioCargo
	Activo        bool
	Creado        time.Time
	Modificado    time.Time
}

func NewReservaBuilder() *ReservaBuilder {
	tematica := "superheroes"
	return &ReservaBuilder{
		ReservaID:    1,
		Fecha:        Today.AddDate(0, 1, 0),
		SalonID:      1,
		SalonTitulo:  "Salon Arcoiris",
		SalonImporte: decimal.NewFromInt(50000),
		UsuarioID:    10,
		TurnoID:      2,
		Tematica:     &tematica,
		Cargos: []domreservation.ServicioCargo{
			{ServicioID: 1, Importe: decimal.NewFromInt(1500)},
			{ServicioID: 2, Importe: decimal.NewFromInt(800)},
		},
		Activo:     true,
		Creado:     Today,
		Modificado: Today,
	}
}

func (b *ReservaBuilder) With(mutate func(*ReservaBuilder)) *ReservaBuilder {
	mutate(b)
	return b
}

func (b *ReservaBuilder) BuildDomain() (*domreservation.Reservation, error) {
	factory := domreservation.NewFactory(
		clock.NewMockClock(Today),
		domreservation.NewSnapshotPriceCalculator(),
	)
	return factory.NewReservation(
		b.Fecha,
		domreservation.SalonSpec{ID: b.SalonID, Importe: b.SalonImporte},
		b.UsuarioID,
		b.TurnoID,
		b.Foto,
		b.Tematica,
		b.Cargos,
	)
}

func (b *ReservaBuilder) BuildSnapshot() *shared.ReservaSnapshot {
	return &shared.ReservaSnapshot{
		ID:               b.ReservaID,
		FechaReserva:     b.Fecha,
		SalonID:          b.SalonID,
		UsuarioID:        b.UsuarioID,
		TurnoID:          b.TurnoID,
		FotoCumpleaniero: b.Foto,
		Tematica:         b.Tematica,
		ImporteSalon:     b.SalonImporte,
		ImporteTotal:     b.totalImporte(),
		Activo:           b.Activo,
	}
}

func (b *ReservaBuilder) BuildView() *queries.ReservaView {
	servicios := make([]queries.ServicioLinea, 0, len(b.Cargos))
	for _, cargo := range b.Cargos {
		servicios = append(servicios, queries.ServicioLinea{
			ServicioID:  cargo.ServicioID,
			Descripcion: "Servicio",
			Importe:     cargo.Importe,
		})
	}
	return &queries.ReservaView{
		ReservaID:        b.ReservaID,
		FechaReserva:     b.Fecha,
		SalonID:          b.SalonID,
		UsuarioID:        b.UsuarioID,
		TurnoID:          b.TurnoID,
		FotoCumpleaniero: b.Foto,
		Tematica:         b.Tematica,
		ImporteSalon:     b.SalonImporte,
		ImporteTotal:     b.totalImporte(),
		Activo:           b.Activo,
		Creado:           b.Creado,
		Modificado:       b.Modificado,
		Salon: queries.SalonResumen{
			SalonID: b.SalonID,
			Titulo:  b.SalonTitulo,
			Importe: b.SalonImporte,
		},
		Usuario: queries.UsuarioResumen{
			UsuarioID:     b.UsuarioID,
			Nombre:        "Maria",
			Apellido:      "Gomez",
			NombreUsuario: "mgomez",
		},
		Turno: queries.TurnoResumen{
			TurnoID:   b.TurnoID,
			Orden:     1,
			HoraDesde: "12:00:00",
			HoraHasta: "15:00:00",
		},
		Servicios: servicios,
	}
}

// BuildCreateRequestMap returns the JSON payload as a map so handler tests can
// drop or override individual fields.
func (b *ReservaBuilder) BuildCreateRequestMap() map[string]any {
	servicios := make([]map[string]any, 0, len(b.Cargos))
	for _, cargo := range b.Cargos {
		servicios = append(servicios, map[string]any{"servicio_id": cargo.ServicioID})
	}
	m := map[string]any{
		"fecha_reserva": b.Fecha.Format("2006-01-02"),
		"salon_id":      b.SalonID,
		"turno_id":      b.TurnoID,
		"servicios":     servicios,
	}
	if b.Tematica != nil {
		m["tematica"] = *b.Tematica
	}
	if b.Foto != nil {
		m["foto_cumpleaniero"] = *b.Foto
	}
	return m
}

func (b *ReservaBuilder) totalImporte() decimal.Decimal {
	total := b.SalonImporte
	for _, cargo := range b.Cargos {
		total = total.Add(cargo.Importe)
	}
	return total
}

// Fluent builder methods
func (b *ReservaBuilder) WithFecha(fecha time.Time) *ReservaBuilder {
	b.Fecha = fecha
	return b
}

func (b *ReservaBuilder) WithSalonID(id int64) *ReservaBuilder {
	b.SalonID = id
	return b
}

func (b *ReservaBuilder) WithSalonImporte(importe decimal.Decimal) *ReservaBuilder {
	b.SalonImporte = importe
	return b
}

func (b *ReservaBuilder) WithUsuarioID(id int64) *ReservaBuilder {
	b.UsuarioID = id
	return b
}

func (b *ReservaBuilder) WithTurnoID(id int64) *ReservaBuilder {
	b.TurnoID = id
	return b
}

func (b *ReservaBuilder) WithTematica(tematica *string) *ReservaBuilder {
	b.Tematica = tematica
	return b
}

func (b *ReservaBuilder) WithCargos(cargos []domreservation.ServicioCargo) *ReservaBuilder {
	b.Cargos = cargos
	return b
}

func (b *ReservaBuilder) AsInactiva() *ReservaBuilder {
	b.Activo = false
	return b
}
