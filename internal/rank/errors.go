package rank

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidCorpus is returned when a corpus has no pages.
	ErrInvalidCorpus = errors.New("invalid corpus: at least one page is required")

	// ErrInvalidArgument is returned for out-of-range estimator parameters:
	// a damping factor outside [0,1], a sample count below 1 or a nil
	// random source.
	ErrInvalidArgument = errors.New("invalid argument")
)

func checkDamping(damping float64) error {
	if math.IsNaN(damping) || damping < 0 || damping > 1 {
		return fmt.Errorf("%w: damping factor %v not in [0,1]", ErrInvalidArgument, damping)
	}
	return nil
}
