//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123", shared by every seeded usuario
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUsuario(t *testing.T, db DBLike, nombreUsuario, tipoUsuario string) int64 {
	t.Helper()

	ctx := context.Background()

	var usuarioID int64
	err := db.QueryRow(ctx, `
		INSERT INTO usuarios (nombre, apellido, nombre_usuario, contrasenia, tipo_usuario)
		VALUES ('Test', 'Usuario', $1, $2, $3)
		ON CONFLICT (nombre_usuario) DO UPDATE SET tipo_usuario = EXCLUDED.tipo_usuario
		RETURNING usuario_id`,
		nombreUsuario, testPasswordHash, tipoUsuario).Scan(&usuarioID)
	require.NoError(t, err)

	return usuarioID
}

func CreateTestSalon(t *testing.T, db DBLike, titulo, importe string) int64 {
	t.Helper()

	var salonID int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO salones (titulo, direccion, capacidad, importe)
		VALUES ($1, 'Av. Siempreviva 742', 50, $2::numeric)
		RETURNING salon_id`,
		titulo, importe).Scan(&salonID)
	require.NoError(t, err)

	return salonID
}

func CreateTestServicio(t *testing.T, db DBLike, descripcion, importe string) int64 {
	t.Helper()

	var servicioID int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO servicios (descripcion, importe)
		VALUES ($1, $2::numeric)
		RETURNING servicio_id`,
		descripcion, importe).Scan(&servicioID)
	require.NoError(t, err)

	return servicioID
}

// returns the id of a seeded turno by its orden
func TurnoIDByOrden(t *testing.T, db DBLike, orden int) int64 {
	t.Helper()

	var turnoID int64
	err := db.QueryRow(context.Background(),
		"SELECT turno_id FROM turnos WHERE orden = $1", orden).Scan(&turnoID)
	require.NoError(t, err)

	return turnoID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// Turnos are a fixed catalog; every booking references one of them.
	_, err := pool.Exec(ctx, `
		INSERT INTO turnos (orden, hora_desde, hora_hasta) VALUES
		    (1, '12:00', '15:00'),
		    (2, '16:00', '19:00'),
		    (3, '20:00', '23:00')
		ON CONFLICT (orden) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
