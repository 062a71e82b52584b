package workoutapp

import (
	"context"
	"errors"
	"fmt"

	"github.com/ndudarev/go_fitness_backend/internal/adapter/storage"
	workoutstorage "github.com/ndudarev/go_fitness_backend/internal/adapter/storage/workouts"
	"github.com/ndudarev/go_fitness_backend/internal/domain"
	"github.com/ndudarev/go_fitness_backend/internal/domain/workout"
)

type WorkoutStorage interface {
	Add(ctx context.Context, w *workout.Workout) error
	GetByID(ctx context.Context, workoutID string) (*workout.Workout, error)
	ListByAthlete(ctx context.Context, athleteID string) ([]*workout.Workout, error)
	CollectEvents() []domain.Event
	Close() error
}

type AtomicContext struct {
	db             storage.DBContext
	WorkoutStorage WorkoutStorage
}

func NewAtomicContext(db storage.DBContext) (*AtomicContext, error) {
	return &AtomicContext{
		db:             db,
		WorkoutStorage: workoutstorage.NewPostgresStorage(db),
	}, nil
}

func (a *AtomicContext) Commit() error {
	return a.db.Commit()
}

func (a *AtomicContext) Close() error {
	if err := a.WorkoutStorage.Close(); err != nil {
		return errors.Join(fmt.Errorf("failed to close storage"), err)
	}
	return nil
}

func (a *AtomicContext) CollectEvents() []domain.Event {
	return a.WorkoutStorage.CollectEvents()
}
