package workoutstorage

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ndudarev/go_fitness_backend/internal/domain/workout"
)

func TestColumnMapping_RoundTripsPerActivity(t *testing.T) {
	cases := []struct {
		name     string
		activity string
		values   []float64
	}{
		{"running", workout.CodeRunning, []float64{15000, 1, 75}},
		{"race walking", workout.CodeRaceWalking, []float64{9000, 1, 75, 180}},
		{"swimming", workout.CodeSwimming, []float64{720, 1, 80, 25, 40}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cols := valuesToColumns(tc.activity, tc.values)
			require.Equal(t, tc.values, columnsToValues(tc.activity, cols[:]))
		})
	}
}

func TestValuesToColumns_PlacesTailByActivity(t *testing.T) {
	walk := valuesToColumns(workout.CodeRaceWalking, []float64{9000, 1, 75, 180})
	require.Equal(t, [6]float64{9000, 1, 75, 180, 0, 0}, walk)

	swim := valuesToColumns(workout.CodeSwimming, []float64{720, 1, 80, 25, 40})
	require.Equal(t, [6]float64{720, 1, 80, 0, 25, 40}, swim)

	run := valuesToColumns(workout.CodeRunning, []float64{15000, 1, 75})
	require.Equal(t, [6]float64{15000, 1, 75, 0, 0, 0}, run)
}

func TestColumnMapping_RoundTripParsesBack(t *testing.T) {
	cols := valuesToColumns(workout.CodeSwimming, []float64{720, 1, 80, 25, 40})
	values := columnsToValues(workout.CodeSwimming, cols[:])

	tr, err := workout.ParsePackage(workout.CodeSwimming, values)
	require.NoError(t, err)
	require.InDelta(t, 1.0, tr.MeanSpeed(), 1e-9)
}
