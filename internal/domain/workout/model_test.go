package workout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWorkout_ValidatesPackage(t *testing.T) {
	_, err := New("w1", "a1", "XYZ", []float64{1, 2, 3})
	require.ErrorIs(t, err, ErrUnknownActivity)

	_, err = New("w1", "a1", "RUN", []float64{15000, 0, 75})
	require.ErrorIs(t, err, ErrInvalidRecord)
}

func TestNewWorkout_PushesRecordedEvent(t *testing.T) {
	w, err := New("w1", "a1", "RUN", []float64{15000, 1, 75})
	require.NoError(t, err)

	events := w.PopEvents()
	require.Len(t, events, 1)

	e, ok := events[0].(RecordedEvent)
	require.True(t, ok)
	require.Equal(t, EventRecorded, e.Type())
	require.Equal(t, "w1", e.WorkoutID)
	require.Equal(t, "a1", e.AthleteID)
	require.Equal(t, "RUN", e.Activity)
	require.Equal(t, w.CreatedAt, e.PublishedAt())

	require.Empty(t, w.PopEvents())
}

func TestWorkout_SummaryRecomputesFromRawValues(t *testing.T) {
	w, err := New("w1", "a1", "SWM", []float64{720, 1, 80, 25, 40})
	require.NoError(t, err)

	report, err := w.Summary()
	require.NoError(t, err)
	require.Equal(t, "Swimming", report.Activity)
	require.InDelta(t, 0.9936, report.Distance, eps)
	require.InDelta(t, 1.0, report.MeanSpeed, eps)
	require.InDelta(t, 336.0, report.Calories, eps)

	// a second summary is identical: nothing derived is cached
	again, err := w.Summary()
	require.NoError(t, err)
	require.Equal(t, report, again)
}

func TestWorkout_TrainingFailsOnCorruptRecord(t *testing.T) {
	w := &Workout{
		WorkoutID: "w1",
		AthleteID: "a1",
		Activity:  "RUN",
		Values:    []float64{15000, 1},
	}

	_, err := w.Training()
	require.ErrorIs(t, err, ErrInvalidRecord)
}
