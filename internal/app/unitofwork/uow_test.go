package unitofwork

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ndudarev/go_fitness_backend/internal/adapter/storage"
	"github.com/ndudarev/go_fitness_backend/internal/domain"
)

type fakeDBContext struct {
	commits   int
	rollbacks int
}

func (f *fakeDBContext) Begin(ctx context.Context) (storage.DBContext, error) {
	return f, nil
}

func (f *fakeDBContext) Commit() error {
	f.commits++
	return nil
}

func (f *fakeDBContext) Rollback() error {
	f.rollbacks++
	return nil
}

func (f *fakeDBContext) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return nil, nil
}

func (f *fakeDBContext) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return nil, nil
}

func (f *fakeDBContext) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return nil
}

type fakeDatabase struct {
	tx *fakeDBContext
}

func (f *fakeDatabase) Begin(ctx context.Context) (storage.DBContext, error) {
	return f.tx, nil
}

type fakeAtomicContext struct {
	db     storage.DBContext
	events []domain.Event
	closed bool
}

func (f *fakeAtomicContext) Commit() error {
	return f.db.Commit()
}

func (f *fakeAtomicContext) Close() error {
	f.closed = true
	return nil
}

func (f *fakeAtomicContext) CollectEvents() []domain.Event {
	return f.events
}

type fakeBus struct {
	published []domain.Event
}

func (b *fakeBus) PublishEvents(events ...domain.Event) error {
	b.published = append(b.published, events...)
	return nil
}

type stubEvent struct{ at time.Time }

func (e stubEvent) Type() string           { return "stub" }
func (e stubEvent) PublishedAt() time.Time { return e.at }

func newTestUoW(tx *fakeDBContext, bus *fakeBus, events ...domain.Event) *UnitOfWork[*fakeAtomicContext] {
	return New(
		&fakeDatabase{tx: tx},
		func(db storage.DBContext) (*fakeAtomicContext, error) {
			return &fakeAtomicContext{db: db, events: events}, nil
		},
		bus,
		slog.Default(),
	)
}

func TestAtomic_CommitsAndPublishesEvents(t *testing.T) {
	tx := &fakeDBContext{}
	bus := &fakeBus{}
	uow := newTestUoW(tx, bus, stubEvent{at: time.Now()})

	err := uow.Atomic(context.Background(), func(ctx context.Context, a *fakeAtomicContext) error {
		return a.Commit()
	})
	require.NoError(t, err)
	require.Equal(t, 1, tx.commits)
	require.Zero(t, tx.rollbacks)
	require.Len(t, bus.published, 1)
}

func TestAtomic_RollsBackOnError(t *testing.T) {
	tx := &fakeDBContext{}
	bus := &fakeBus{}
	uow := newTestUoW(tx, bus, stubEvent{at: time.Now()})

	boom := errors.New("boom")
	err := uow.Atomic(context.Background(), func(ctx context.Context, a *fakeAtomicContext) error {
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, err, ErrRollback)
	require.Equal(t, 1, tx.rollbacks)
	require.Zero(t, tx.commits)
	require.Empty(t, bus.published)
}

func TestAtomic_RollsBackOnPanic(t *testing.T) {
	tx := &fakeDBContext{}
	uow := newTestUoW(tx, &fakeBus{})

	require.Panics(t, func() {
		_ = uow.Atomic(context.Background(), func(ctx context.Context, a *fakeAtomicContext) error {
			panic("boom")
		})
	})
	require.Equal(t, 1, tx.rollbacks)
}
