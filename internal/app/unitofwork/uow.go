package unitofwork

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ndudarev/go_fitness_backend/internal/adapter/storage"
	"github.com/ndudarev/go_fitness_backend/internal/domain"
)

var ErrRollback = errors.New("rollback")

// AtomicContext bundles the storages of one service over a single
// transaction.
type AtomicContext interface {
	Commit() error
	Close() error
	CollectEvents() []domain.Event
}

type MessageBus interface {
	PublishEvents(events ...domain.Event) error
}

type UnitOfWork[T AtomicContext] struct {
	db         storage.Database
	newContext func(storage.DBContext) (T, error)
	msgBus     MessageBus
	logger     *slog.Logger
}

func New[T AtomicContext](
	db storage.Database,
	newCtx func(storage.DBContext) (T, error),
	msgBus MessageBus,
	logger *slog.Logger,
) *UnitOfWork[T] {
	return &UnitOfWork[T]{
		db:         db,
		newContext: newCtx,
		msgBus:     msgBus,
		logger:     logger,
	}
}

// Atomic runs do inside a transaction. do must call Commit on the
// atomic context itself; any error rolls the transaction back. Events
// collected from the touched aggregates are published after do returns.
func (uow *UnitOfWork[T]) Atomic(
	ctx context.Context,
	do func(ctx context.Context, a T) error,
) error {
	tx, err := uow.db.Begin(ctx)
	if err != nil {
		return rollbackError(err)
	}

	atomicCtx, err := uow.newContext(tx)
	if err != nil {
		return rollbackError(err)
	}
	defer func() {
		if err := atomicCtx.Close(); err != nil {
			uow.logger.Error("failed to close atomic context", "error", err)
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			if err := tx.Rollback(); err != nil {
				uow.logger.Error("failed to rollback transaction", "error", err)
			}
			panic(r)
		}
	}()

	if err := do(ctx, atomicCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			uow.logger.Error("failed to rollback transaction", "error", rbErr)
		}
		return rollbackError(err)
	}

	if err := uow.msgBus.PublishEvents(atomicCtx.CollectEvents()...); err != nil {
		uow.logger.Error("failed to publish events", "error", err)
		return err
	}

	return nil
}

func rollbackError(err error) error {
	return errors.Join(fmt.Errorf("state rollback: %w", err), ErrRollback)
}
