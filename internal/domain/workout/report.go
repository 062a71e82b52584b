package workout

import "fmt"

const messageTemplate = "Activity type: %s; " +
	"Duration: %.3f h.; " +
	"Distance: %.3f km; " +
	"Avg. speed: %.3f km/h; " +
	"Calories burned: %.3f."

// Report is the computed summary of one training session.
type Report struct {
	Activity  string
	Duration  float64
	Distance  float64
	MeanSpeed float64
	Calories  float64
}

// Summarize computes distance, then mean speed, then calories.
// Calorie formulas depend on speed, so the order matters for a reader
// tracing the numbers even though every getter is pure.
func Summarize(t Training) Report {
	distance := t.Distance()
	speed := t.MeanSpeed()
	calories := t.Calories()

	return Report{
		Activity:  t.Kind(),
		Duration:  t.DurationHours(),
		Distance:  distance,
		MeanSpeed: speed,
		Calories:  calories,
	}
}

func (r Report) Message() string {
	return fmt.Sprintf(messageTemplate,
		r.Activity, r.Duration, r.Distance, r.MeanSpeed, r.Calories)
}
