package workout

import (
	"fmt"
	"math"
)

const (
	metersInKm    = 1000
	minutesInHour = 60

	lenStep   = 0.65 // meters covered by one step
	lenStroke = 1.38 // meters covered by one pool unit
)

// Calorie coefficients are empirical and calibrated per activity.
// Do not "simplify" them: recorded workouts are recomputed on read and
// must keep producing the same numbers.
const (
	runSpeedFactor = 18
	runSpeedShift  = 20

	walkWeightFactor = 0.035
	walkSpeedFactor  = 0.029

	swimSpeedShift   = 1.1
	swimWeightFactor = 2
)

// Training is one recorded session of a concrete activity. Distance and
// MeanSpeed have shared default formulas, Calories is always
// activity-specific.
type Training interface {
	Kind() string
	DurationHours() float64
	Distance() float64
	MeanSpeed() float64
	Calories() float64
}

type session struct {
	Action   int     // steps or strokes
	Duration float64 // hours
	Weight   float64 // kg
}

func (s session) DurationHours() float64 {
	return s.Duration
}

func (s session) distance(unitLen float64) float64 {
	return float64(s.Action) * unitLen / metersInKm
}

func (s session) validate() error {
	if s.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %v", ErrInvalidRecord, s.Duration)
	}
	if s.Action < 0 {
		return fmt.Errorf("%w: action count must not be negative, got %d", ErrInvalidRecord, s.Action)
	}
	if s.Weight <= 0 {
		return fmt.Errorf("%w: weight must be positive, got %v", ErrInvalidRecord, s.Weight)
	}
	return nil
}

type Running struct {
	session
}

func NewRunning(action int, duration, weight float64) (Running, error) {
	r := Running{session{Action: action, Duration: duration, Weight: weight}}
	if err := r.validate(); err != nil {
		return Running{}, err
	}
	return r, nil
}

func (Running) Kind() string {
	return "Running"
}

func (r Running) Distance() float64 {
	return r.distance(lenStep)
}

func (r Running) MeanSpeed() float64 {
	return r.Distance() / r.Duration
}

func (r Running) Calories() float64 {
	return (runSpeedFactor*r.MeanSpeed() - runSpeedShift) *
		r.Weight / metersInKm * r.Duration * minutesInHour
}

type RaceWalking struct {
	session
	Height float64 // cm
}

func NewRaceWalking(action int, duration, weight, height float64) (RaceWalking, error) {
	w := RaceWalking{
		session: session{Action: action, Duration: duration, Weight: weight},
		Height:  height,
	}
	if err := w.validate(); err != nil {
		return RaceWalking{}, err
	}
	if w.Height <= 0 {
		return RaceWalking{}, fmt.Errorf("%w: height must be positive, got %v", ErrInvalidRecord, w.Height)
	}
	return w, nil
}

func (RaceWalking) Kind() string {
	return "RaceWalking"
}

func (w RaceWalking) Distance() float64 {
	return w.distance(lenStep)
}

func (w RaceWalking) MeanSpeed() float64 {
	return w.Distance() / w.Duration
}

// Calories keeps the reference formula's floor of speed²/height.
func (w RaceWalking) Calories() float64 {
	speed := w.MeanSpeed()
	return (walkWeightFactor*w.Weight +
		math.Floor(speed*speed/w.Height)*walkSpeedFactor*w.Weight) *
		w.Duration * minutesInHour
}

type Swimming struct {
	session
	LengthPool int // meters
	CountPool  int
}

func NewSwimming(action int, duration, weight float64, lengthPool, countPool int) (Swimming, error) {
	s := Swimming{
		session:    session{Action: action, Duration: duration, Weight: weight},
		LengthPool: lengthPool,
		CountPool:  countPool,
	}
	if err := s.validate(); err != nil {
		return Swimming{}, err
	}
	if s.LengthPool <= 0 {
		return Swimming{}, fmt.Errorf("%w: pool length must be positive, got %d", ErrInvalidRecord, s.LengthPool)
	}
	if s.CountPool < 0 {
		return Swimming{}, fmt.Errorf("%w: pool count must not be negative, got %d", ErrInvalidRecord, s.CountPool)
	}
	return s, nil
}

func (Swimming) Kind() string {
	return "Swimming"
}

func (s Swimming) Distance() float64 {
	return s.distance(lenStroke)
}

// MeanSpeed is derived from pool laps, not from the stroke distance.
func (s Swimming) MeanSpeed() float64 {
	return float64(s.LengthPool) * float64(s.CountPool) / metersInKm / s.Duration
}

func (s Swimming) Calories() float64 {
	return (s.MeanSpeed() + swimSpeedShift) * swimWeightFactor * s.Weight
}
