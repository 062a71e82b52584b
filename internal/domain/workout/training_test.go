package workout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestRunning_Metrics(t *testing.T) {
	r, err := NewRunning(15000, 1, 75)
	require.NoError(t, err)

	require.InDelta(t, 9.75, r.Distance(), eps)
	require.InDelta(t, 9.75, r.MeanSpeed(), eps)
	require.InDelta(t, 699.75, r.Calories(), eps)
}

func TestRaceWalking_Metrics(t *testing.T) {
	w, err := NewRaceWalking(9000, 1, 75, 180)
	require.NoError(t, err)

	require.InDelta(t, 5.85, w.Distance(), eps)
	require.InDelta(t, 5.85, w.MeanSpeed(), eps)
	// floor(5.85²/180) = 0, so only the weight term remains
	require.InDelta(t, 157.5, w.Calories(), eps)
}

func TestRaceWalking_CaloriesUsesFloorOfSquaredSpeed(t *testing.T) {
	// 2h, 20000 steps: speed = 6.5 km/h, 6.5²/170 ≈ 0.2485 floors to 0
	slow, err := NewRaceWalking(20000, 2, 80, 170)
	require.NoError(t, err)
	require.InDelta(t, (0.035*80)*2*60, slow.Calories(), eps)

	// 1h, 31000 steps: speed = 20.15 km/h, 20.15²/170 ≈ 2.388 floors to 2
	fast, err := NewRaceWalking(31000, 1, 80, 170)
	require.NoError(t, err)
	require.InDelta(t, (0.035*80+2*0.029*80)*1*60, fast.Calories(), eps)
}

func TestSwimming_Metrics(t *testing.T) {
	s, err := NewSwimming(720, 1, 80, 25, 40)
	require.NoError(t, err)

	require.InDelta(t, 0.9936, s.Distance(), eps)
	require.InDelta(t, 1.0, s.MeanSpeed(), eps)
	require.InDelta(t, 336.0, s.Calories(), eps)
}

func TestSwimming_MeanSpeedIgnoresStrokeCount(t *testing.T) {
	base, err := NewSwimming(720, 1, 80, 25, 40)
	require.NoError(t, err)

	moreStrokes, err := NewSwimming(9999, 1, 80, 25, 40)
	require.NoError(t, err)

	require.InDelta(t, base.MeanSpeed(), moreStrokes.MeanSpeed(), eps)
	require.NotEqual(t, base.Distance(), moreStrokes.Distance())
}

func TestTraining_GettersAreIdempotent(t *testing.T) {
	trainings := []Training{
		mustParse(t, CodeRunning, []float64{15000, 1, 75}),
		mustParse(t, CodeRaceWalking, []float64{9000, 1, 75, 180}),
		mustParse(t, CodeSwimming, []float64{720, 1, 80, 25, 40}),
	}

	for _, tr := range trainings {
		require.Equal(t, tr.Distance(), tr.Distance(), tr.Kind())
		require.Equal(t, tr.MeanSpeed(), tr.MeanSpeed(), tr.Kind())
		require.Equal(t, tr.Calories(), tr.Calories(), tr.Kind())
	}
}

func TestTraining_NonPositiveDurationRejected(t *testing.T) {
	for _, duration := range []float64{0, -1} {
		_, err := NewRunning(15000, duration, 75)
		require.ErrorIs(t, err, ErrInvalidRecord)

		_, err = NewRaceWalking(9000, duration, 75, 180)
		require.ErrorIs(t, err, ErrInvalidRecord)

		_, err = NewSwimming(720, duration, 80, 25, 40)
		require.ErrorIs(t, err, ErrInvalidRecord)
	}
}

func TestTraining_InvalidFieldsRejected(t *testing.T) {
	_, err := NewRunning(-1, 1, 75)
	require.ErrorIs(t, err, ErrInvalidRecord)

	_, err = NewRunning(15000, 1, 0)
	require.ErrorIs(t, err, ErrInvalidRecord)

	_, err = NewRaceWalking(9000, 1, 75, 0)
	require.ErrorIs(t, err, ErrInvalidRecord)

	_, err = NewSwimming(720, 1, 80, 0, 40)
	require.ErrorIs(t, err, ErrInvalidRecord)

	_, err = NewSwimming(720, 1, 80, 25, -1)
	require.ErrorIs(t, err, ErrInvalidRecord)
}

func mustParse(t *testing.T, code string, values []float64) Training {
	t.Helper()
	tr, err := ParsePackage(code, values)
	require.NoError(t, err)
	return tr
}
