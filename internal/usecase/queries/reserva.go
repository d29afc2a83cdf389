package queries

import (
	"context"
	"time"

	"salones-api/internal/infra"
	"salones-api/internal/pkg/clock"
	"salones-api/internal/pkg/errs"
	"salones-api/internal/usecase/shared"
)

var (
	ErrReservaNotFound         = errs.New("reserva not found")
	ErrForbidden               = errs.New("operation not allowed for this role")
	ErrInvalidFilter           = errs.New("invalid list filter")
	ErrInvalidPaging           = errs.New("invalid paging params")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// ReservaReadStore is the read-side port backed by the hydrated view queries.
type ReservaReadStore interface {
	FindByID(ctx context.Context, id int64) (*ReservaView, error)
	List(ctx context.Context, filter ReservaFilter) ([]*ReservaView, int64, error)
	Upcoming(ctx context.Context, from, to time.Time) ([]*ReservaView, error)
	SlotTaken(ctx context.Context, salonID int64, fecha time.Time, turnoID int64, excludeReservaID *int64) (bool, error)
}

type ReservaQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id int64) (*ReservaView, error)
	List(ctx context.Context, actor shared.Actor, filter ReservaFilter) (*ReservaPage, error)
	Upcoming(ctx context.Context, actor shared.Actor, days int) ([]*ReservaView, error)
	CheckAvailability(ctx context.Context, salonID int64, fecha time.Time, turnoID int64) (bool, error)
}

type reservaQueriesImpl struct {
	store ReservaReadStore
	clock clock.Clock
}

func NewReservaQueries(store ReservaReadStore, clk clock.Clock) ReservaQueries {
	return &reservaQueriesImpl{store: store, clock: clk}
}

func (q *reservaQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id int64) (*ReservaView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReservaNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	// Clients only see their own reservas.
	if !actor.Role.IsStaff() && view.UsuarioID != actor.UsuarioID {
		return nil, ErrForbidden
	}
	return view, nil
}

func (q *reservaQueriesImpl) List(ctx context.Context, actor shared.Actor, filter ReservaFilter) (*ReservaPage, error) {
	page, err := NormalizePage(filter.Page)
	if err != nil {
		return nil, err
	}
	limit, err := NormalizeLimit(filter.Limit)
	if err != nil {
		return nil, err
	}
	filter.Page = page
	filter.Limit = limit

	if !actor.Role.IsStaff() {
		filter.UsuarioID = &actor.UsuarioID
		filter.IncludeInactive = false
	}

	views, total, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	totalPages := int(total / int64(filter.Limit))
	if total%int64(filter.Limit) != 0 {
		totalPages++
	}
	return &ReservaPage{
		Data: views,
		Pagination: Pagination{
			Page:       filter.Page,
			Limit:      filter.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

func (q *reservaQueriesImpl) Upcoming(ctx context.Context, actor shared.Actor, days int) ([]*ReservaView, error) {
	if !actor.Role.IsStaff() {
		return nil, ErrForbidden
	}
	if days <= 0 {
		days = DefaultUpcomingDays
	}
	if days > MaxUpcomingDays {
		return nil, errs.Mark(errs.Newf("days must be at most %d", MaxUpcomingDays), ErrInvalidFilter)
	}

	now := q.clock.Now().UTC()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, days)

	views, err := q.store.Upcoming(ctx, from, to)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *reservaQueriesImpl) CheckAvailability(ctx context.Context, salonID int64, fecha time.Time, turnoID int64) (bool, error) {
	taken, err := q.store.SlotTaken(ctx, salonID, fecha, turnoID, nil)
	if err != nil {
		return false, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return !taken, nil
}
