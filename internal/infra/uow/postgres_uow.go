package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"salones-api/internal/infra/db"
	"salones-api/internal/infra/readstore"
	"salones-api/internal/infra/writerepo"
	"salones-api/internal/pkg/errs"
	"salones-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted is enough here: the availability check runs inside the same
// transaction as the insert/update, and the partial unique index on the
// active slot tuple rejects whichever concurrent writer commits second.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) Reads() shared.CommandReads {
	return newCommandReads(u.pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(uval) % n
}

// Retryable codes only; a lost slot race surfaces as a unique violation and
// must stay a definitive business rejection, never a retry.
func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.Querier

	// Lazy-initialized repositories
	reservaRepo  shared.ReservaRepository
	commandReads shared.CommandReads
}

func (t *pgTx) Reservas() shared.ReservaRepository {
	if t.reservaRepo == nil {
		t.reservaRepo = writerepo.NewReservaRepository(t.dbtx)
	}
	return t.reservaRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = newCommandReads(t.dbtx)
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.Querier

	// Lazy-initialized readstores
	salonStore    *readstore.SalonReadStore
	turnoStore    *readstore.TurnoReadStore
	servicioStore *readstore.ServicioReadStore
	usuarioStore  *readstore.UsuarioReadStore
	reservaStore  *readstore.ReservaReadStore
}

func newCommandReads(q db.Querier) shared.CommandReads {
	return &commandReads{dbtx: q}
}

func (r *commandReads) SalonActivoByID(ctx context.Context, id int64) (*shared.SalonSnapshot, error) {
	if r.salonStore == nil {
		r.salonStore = readstore.NewSalonReadStore(r.dbtx)
	}
	return r.salonStore.FindActivoByID(ctx, id)
}

func (r *commandReads) TurnoActivoByID(ctx context.Context, id int64) (*shared.TurnoSnapshot, error) {
	if r.turnoStore == nil {
		r.turnoStore = readstore.NewTurnoReadStore(r.dbtx)
	}
	return r.turnoStore.FindActivoByID(ctx, id)
}

func (r *commandReads) UsuarioActivoByID(ctx context.Context, id int64) (*shared.UsuarioSnapshot, error) {
	if r.usuarioStore == nil {
		r.usuarioStore = readstore.NewUsuarioReadStore(r.dbtx)
	}
	return r.usuarioStore.FindActivoByID(ctx, id)
}

func (r *commandReads) ServiciosActivosByIDs(ctx context.Context, ids []int64) ([]shared.ServicioSnapshot, error) {
	if r.servicioStore == nil {
		r.servicioStore = readstore.NewServicioReadStore(r.dbtx)
	}
	return r.servicioStore.FindActivosByIDs(ctx, ids)
}

func (r *commandReads) ReservaByID(ctx context.Context, id int64) (*shared.ReservaSnapshot, error) {
	if r.reservaStore == nil {
		r.reservaStore = readstore.NewReservaReadStore(r.dbtx)
	}
	return r.reservaStore.FindSnapshotByID(ctx, id)
}

func (r *commandReads) SlotTaken(ctx context.Context, salonID int64, fecha time.Time, turnoID int64, excludeReservaID *int64) (bool, error) {
	if r.reservaStore == nil {
		r.reservaStore = readstore.NewReservaReadStore(r.dbtx)
	}
	return r.reservaStore.SlotTaken(ctx, salonID, fecha, turnoID, excludeReservaID)
}
