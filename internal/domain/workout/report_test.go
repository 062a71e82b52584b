package workout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummarize_ReferencePackages(t *testing.T) {
	cases := []struct {
		code    string
		values  []float64
		message string
	}{
		{
			code:   "SWM",
			values: []float64{720, 1, 80, 25, 40},
			message: "Activity type: Swimming; Duration: 1.000 h.; " +
				"Distance: 0.994 km; Avg. speed: 1.000 km/h; " +
				"Calories burned: 336.000.",
		},
		{
			code:   "RUN",
			values: []float64{15000, 1, 75},
			message: "Activity type: Running; Duration: 1.000 h.; " +
				"Distance: 9.750 km; Avg. speed: 9.750 km/h; " +
				"Calories burned: 699.750.",
		},
		{
			code:   "WLK",
			values: []float64{9000, 1, 75, 180},
			message: "Activity type: RaceWalking; Duration: 1.000 h.; " +
				"Distance: 5.850 km; Avg. speed: 5.850 km/h; " +
				"Calories burned: 157.500.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			tr, err := ParsePackage(tc.code, tc.values)
			require.NoError(t, err)

			report := Summarize(tr)
			require.Equal(t, tr.Kind(), report.Activity)
			require.Equal(t, tc.message, report.Message())
		})
	}
}

func TestReport_MessageRoundsToThreeDigits(t *testing.T) {
	r := Report{
		Activity:  "Running",
		Duration:  0.5,
		Distance:  1.23456,
		MeanSpeed: 2.4691,
		Calories:  10.0005,
	}

	require.Equal(t,
		"Activity type: Running; Duration: 0.500 h.; "+
			"Distance: 1.235 km; Avg. speed: 2.469 km/h; "+
			"Calories burned: 10.000.",
		r.Message())
}
