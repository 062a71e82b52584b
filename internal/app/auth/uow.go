package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/ndudarev/go_fitness_backend/internal/adapter/storage"
	athletestorage "github.com/ndudarev/go_fitness_backend/internal/adapter/storage/athletes"
	"github.com/ndudarev/go_fitness_backend/internal/domain"
	"github.com/ndudarev/go_fitness_backend/internal/domain/athlete"
)

type AthleteStorage interface {
	Add(ctx context.Context, a *athlete.Athlete) error
	GetByEmail(ctx context.Context, email string) (*athlete.Athlete, error)
	GetByID(ctx context.Context, athleteID string) (*athlete.Athlete, error)
	GetBySessionID(ctx context.Context, sessionID string) (*athlete.Athlete, error)
	Persist(ctx context.Context, a *athlete.Athlete) error
	CollectEvents() []domain.Event
	Close() error
}

type AtomicContext struct {
	db             storage.DBContext
	AthleteStorage AthleteStorage
}

func NewAtomicContext(db storage.DBContext) (*AtomicContext, error) {
	return &AtomicContext{
		db:             db,
		AthleteStorage: athletestorage.NewPostgresStorage(db, nil),
	}, nil
}

func (a *AtomicContext) Commit() error {
	return a.db.Commit()
}

func (a *AtomicContext) Close() error {
	if err := a.AthleteStorage.Close(); err != nil {
		return errors.Join(fmt.Errorf("failed to close storage"), err)
	}
	return nil
}

func (a *AtomicContext) CollectEvents() []domain.Event {
	return a.AthleteStorage.CollectEvents()
}
