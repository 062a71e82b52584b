package workout

import (
	"errors"
	"time"

	"github.com/ndudarev/go_fitness_backend/internal/domain"
)

var (
	ErrWorkoutExists   = errors.New("workout already exists")
	ErrWorkoutNotFound = errors.New("workout not found")
)

const EventRecorded = "workout.recorded"

// Workout is the stored record of one sensor package. Only the raw
// values are persisted; metrics are recomputed from them on every read.
type Workout struct {
	domain.Aggregate
	WorkoutID string
	AthleteID string
	Activity  string // package code: SWM, RUN or WLK
	Values    []float64
	CreatedAt time.Time
}

func New(workoutID, athleteID, activity string, values []float64) (*Workout, error) {
	if _, err := ParsePackage(activity, values); err != nil {
		return nil, err
	}

	w := &Workout{
		WorkoutID: workoutID,
		AthleteID: athleteID,
		Activity:  activity,
		Values:    values,
		CreatedAt: time.Now().UTC(),
	}
	w.PushEvent(RecordedEvent{
		At:        w.CreatedAt,
		WorkoutID: w.WorkoutID,
		AthleteID: w.AthleteID,
		Activity:  w.Activity,
	})
	return w, nil
}

// Training rebuilds the session from the stored raw values.
func (w *Workout) Training() (Training, error) {
	return ParsePackage(w.Activity, w.Values)
}

// Summary recomputes the derived metrics of the stored package.
func (w *Workout) Summary() (Report, error) {
	t, err := w.Training()
	if err != nil {
		return Report{}, err
	}
	return Summarize(t), nil
}

type RecordedEvent struct {
	At        time.Time
	WorkoutID string
	AthleteID string
	Activity  string
}

func (e RecordedEvent) Type() string {
	return EventRecorded
}

func (e RecordedEvent) PublishedAt() time.Time {
	return e.At
}
