package workoutstorage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/leporo/sqlf"

	"github.com/ndudarev/go_fitness_backend/internal/adapter/storage"
	"github.com/ndudarev/go_fitness_backend/internal/adapter/storage/pgutil"
	"github.com/ndudarev/go_fitness_backend/internal/domain"
	"github.com/ndudarev/go_fitness_backend/internal/domain/workout"
)

type PostgresStorage struct {
	db   storage.DBContext
	seen []*workout.Workout
}

func NewPostgresStorage(db storage.DBContext) *PostgresStorage {
	return &PostgresStorage{db: db}
}

func (s *PostgresStorage) Add(ctx context.Context, w *workout.Workout) error {
	cols := valuesToColumns(w.Activity, w.Values)

	q := sqlf.InsertInto("workouts").
		Set("workout_id", w.WorkoutID).
		Set("athlete_id", w.AthleteID).
		Set("activity", w.Activity).
		Set("action", cols[0]).
		Set("duration_h", cols[1]).
		Set("weight_kg", cols[2]).
		Set("height_cm", cols[3]).
		Set("length_pool", cols[4]).
		Set("count_pool", cols[5]).
		Set("created_at", w.CreatedAt)

	if _, err := q.ExecAndClose(ctx, s.db); err != nil {
		if pgutil.ViolatesConstraint(err, "workouts_pkey") {
			return workout.ErrWorkoutExists
		}
		return storage.InternalError(err)
	}

	s.seen = append(s.seen, w)
	return nil
}

func (s *PostgresStorage) get(
	ctx context.Context,
	modify func(stmt *sqlf.Stmt),
) ([]*workout.Workout, error) {
	var tmp workout.Workout
	cols := make([]float64, 6)

	q := sqlf.From("workouts w").
		Select("w.workout_id").To(&tmp.WorkoutID).
		Select("w.athlete_id").To(&tmp.AthleteID).
		Select("w.activity").To(&tmp.Activity).
		Select("w.action").To(&cols[0]).
		Select("w.duration_h").To(&cols[1]).
		Select("w.weight_kg").To(&cols[2]).
		Select("w.height_cm").To(&cols[3]).
		Select("w.length_pool").To(&cols[4]).
		Select("w.count_pool").To(&cols[5]).
		Select("w.created_at").To(&tmp.CreatedAt)

	modify(q)

	var result []*workout.Workout

	err := q.QueryAndClose(ctx, s.db, func(rows *sql.Rows) {
		result = append(result, &workout.Workout{
			WorkoutID: tmp.WorkoutID,
			AthleteID: tmp.AthleteID,
			Activity:  tmp.Activity,
			Values:    columnsToValues(tmp.Activity, cols),
			CreatedAt: tmp.CreatedAt,
		})
	})

	if err == nil || errors.Is(err, sql.ErrNoRows) {
		return result, nil
	}
	return nil, storage.InternalError(err)
}

func (s *PostgresStorage) GetByID(ctx context.Context, workoutID string) (*workout.Workout, error) {
	result, err := s.get(ctx, func(stmt *sqlf.Stmt) {
		stmt.Where("w.workout_id = ?", workoutID)
	})
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, workout.ErrWorkoutNotFound
	}
	return result[0], nil
}

func (s *PostgresStorage) ListByAthlete(ctx context.Context, athleteID string) ([]*workout.Workout, error) {
	return s.get(ctx, func(stmt *sqlf.Stmt) {
		stmt.Where("w.athlete_id = ?", athleteID).OrderBy("w.created_at DESC")
	})
}

func (s *PostgresStorage) CollectEvents() []domain.Event {
	var events []domain.Event
	for _, w := range s.seen {
		events = append(events, w.PopEvents()...)
	}
	s.seen = nil
	return events
}

func (s *PostgresStorage) Close() error {
	s.seen = nil
	return nil
}

// Raw sensor values are flattened into per-field columns; unused tail
// columns stay zero. The shared head is action, duration, weight; the
// tail depends on the activity code.
func valuesToColumns(activity string, values []float64) [6]float64 {
	var cols [6]float64
	copy(cols[:3], values)

	switch activity {
	case workout.CodeRaceWalking:
		if len(values) > 3 {
			cols[3] = values[3]
		}
	case workout.CodeSwimming:
		if len(values) > 4 {
			cols[4], cols[5] = values[3], values[4]
		}
	}
	return cols
}

func columnsToValues(activity string, cols []float64) []float64 {
	switch activity {
	case workout.CodeRunning:
		return []float64{cols[0], cols[1], cols[2]}
	case workout.CodeRaceWalking:
		return []float64{cols[0], cols[1], cols[2], cols[3]}
	case workout.CodeSwimming:
		return []float64{cols[0], cols[1], cols[2], cols[4], cols[5]}
	default:
		return append([]float64(nil), cols...)
	}
}
