package workoutapp

import (
	"context"
	"log/slog"

	"github.com/ndudarev/go_fitness_backend/internal/app/unitofwork"
	"github.com/ndudarev/go_fitness_backend/internal/domain/workout"
)

// Service records raw sensor packages and serves stored workouts with
// their metrics recomputed.
type Service struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// Record validates and stores one sensor package and returns its
// computed summary.
func (s *Service) Record(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
	workoutID, athleteID, activity string,
	values []float64,
) (report workout.Report, err error) {
	err = uow.Atomic(ctx, func(ctx context.Context, ac *AtomicContext) error {
		w, err := workout.New(workoutID, athleteID, activity, values)
		if err != nil {
			return err
		}

		if report, err = w.Summary(); err != nil {
			return err
		}

		if err := ac.WorkoutStorage.Add(ctx, w); err != nil {
			return err
		}
		return ac.Commit()
	})
	return
}

func (s *Service) GetByID(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
	workoutID string,
) (w *workout.Workout, err error) {
	err = uow.Atomic(ctx, func(ctx context.Context, ac *AtomicContext) error {
		if w, err = ac.WorkoutStorage.GetByID(ctx, workoutID); err != nil {
			return err
		}
		return ac.Commit()
	})
	return
}

func (s *Service) ListByAthlete(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
	athleteID string,
) (ws []*workout.Workout, err error) {
	err = uow.Atomic(ctx, func(ctx context.Context, ac *AtomicContext) error {
		if ws, err = ac.WorkoutStorage.ListByAthlete(ctx, athleteID); err != nil {
			return err
		}
		return ac.Commit()
	})
	return
}
