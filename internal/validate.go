package internal

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Check the preconditions of a run up front, so that a bad input fails before
// any triangle is built. Every problem found is reported, not just the first.
//
// Coincident points are rejected. Inserting a point equal to an existing
// vertex would otherwise produce zero-area triangles.
func ValidateInput(points []Point, super [3]Point) error {
	var errs error

	seen := make(map[Point]int, len(points))
	for i, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			errs = multierr.Append(errs, errors.Wrapf(ErrInvalidInput, "point %d %v is not finite", i, p))
			continue
		}
		if first, ok := seen[p]; ok {
			errs = multierr.Append(errs, errors.Wrapf(ErrInvalidInput, "point %d %v duplicates point %d", i, p, first))
			continue
		}
		seen[p] = i
		if !strictlyInside(p, super) {
			errs = multierr.Append(errs, errors.Wrapf(ErrInvalidInput, "point %d %v is not strictly inside the super-triangle", i, p))
		}
	}

	if len(seen) < 3 {
		errs = multierr.Append(errs, errors.Wrapf(ErrInvalidInput, "need at least 3 distinct points, got %d", len(seen)))
	}
	return errs
}

func validateBounds(width, height float64) error {
	var errs error
	for _, dim := range []struct {
		name  string
		value float64
	}{{"width", width}, {"height", height}} {
		if math.IsNaN(dim.value) || math.IsInf(dim.value, 0) || dim.value <= 0 {
			errs = multierr.Append(errs, errors.Wrapf(ErrInvalidInput, "%s must be a positive finite number, got %v", dim.name, dim.value))
		}
	}
	return errs
}

// The super-triangle is stored counterclockwise, so p is inside iff it is
// strictly left of all three edges.
func strictlyInside(p Point, tri [3]Point) bool {
	for i := range tri {
		if Orientation(tri[i], tri[CircularIndex(i+1, 3)], p) <= 0 {
			return false
		}
	}
	return true
}
