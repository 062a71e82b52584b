package workout

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownActivity = errors.New("unknown activity code")
	ErrInvalidRecord   = errors.New("invalid activity record")
)

const (
	CodeSwimming    = "SWM"
	CodeRunning     = "RUN"
	CodeRaceWalking = "WLK"
)

// parsers binds each activity code to its positional field order:
// action, duration, weight, then the variant-specific tail.
var parsers = map[string]func([]float64) (Training, error){
	CodeSwimming: func(v []float64) (Training, error) {
		if err := expectArity(CodeSwimming, v, 5); err != nil {
			return nil, err
		}
		return NewSwimming(int(v[0]), v[1], v[2], int(v[3]), int(v[4]))
	},
	CodeRunning: func(v []float64) (Training, error) {
		if err := expectArity(CodeRunning, v, 3); err != nil {
			return nil, err
		}
		return NewRunning(int(v[0]), v[1], v[2])
	},
	CodeRaceWalking: func(v []float64) (Training, error) {
		if err := expectArity(CodeRaceWalking, v, 4); err != nil {
			return nil, err
		}
		return NewRaceWalking(int(v[0]), v[1], v[2], v[3])
	},
}

// ParsePackage turns one raw sensor package into a training session.
func ParsePackage(code string, values []float64) (Training, error) {
	parse, ok := parsers[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownActivity, code)
	}
	return parse(values)
}

func expectArity(code string, values []float64, want int) error {
	if len(values) != want {
		return fmt.Errorf("%w: %s expects %d values, got %d",
			ErrInvalidRecord, code, want, len(values))
	}
	return nil
}
