package workout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePackage_BindsPositionalValues(t *testing.T) {
	tr, err := ParsePackage("SWM", []float64{720, 1, 80, 25, 40})
	require.NoError(t, err)

	direct, err := NewSwimming(720, 1, 80, 25, 40)
	require.NoError(t, err)
	require.Equal(t, direct, tr)

	run, err := ParsePackage("RUN", []float64{15000, 1, 75})
	require.NoError(t, err)
	require.Equal(t, "Running", run.Kind())

	walk, err := ParsePackage("WLK", []float64{9000, 1, 75, 180})
	require.NoError(t, err)
	require.Equal(t, "RaceWalking", walk.Kind())
}

func TestParsePackage_UnknownCode(t *testing.T) {
	_, err := ParsePackage("XYZ", []float64{1, 2, 3})
	require.ErrorIs(t, err, ErrUnknownActivity)

	// codes are case sensitive
	_, err = ParsePackage("swm", []float64{720, 1, 80, 25, 40})
	require.ErrorIs(t, err, ErrUnknownActivity)
}

func TestParsePackage_WrongArity(t *testing.T) {
	cases := []struct {
		name   string
		code   string
		values []float64
	}{
		{"run too few", "RUN", []float64{15000, 1}},
		{"run too many", "RUN", []float64{15000, 1, 75, 180}},
		{"walk missing height", "WLK", []float64{9000, 1, 75}},
		{"swim missing pool", "SWM", []float64{720, 1, 80, 25}},
		{"empty", "SWM", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParsePackage(tc.code, tc.values)
			require.ErrorIs(t, err, ErrInvalidRecord)
		})
	}
}
