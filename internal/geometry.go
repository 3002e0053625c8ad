package internal

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Points are plain values. Two points are the same vertex iff both coordinates
// are exactly equal; there is deliberately no tolerance here, since loosening
// equality changes which triangles are classified as bad during insertion.
type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (p Point) vec() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

func pointFromVec(v r2.Point) Point {
	return Point{X: v.X, Y: v.Y}
}

// Lexicographic order on X, then Y. Used only to pick a canonical starting
// vertex for triangles.
func (p Point) Less(other Point) bool {
	if p.X != other.X {
		return p.X < other.X
	}
	return p.Y < other.Y
}

// An edge is an ordered pair of points. Triangle edges always run
// counterclockwise around their triangle.
type Edge struct {
	Start Point
	End   Point
}

func (e Edge) String() string {
	return fmt.Sprintf("%v→%v", e.Start, e.End)
}

// Two edges are the same edge iff they have the same endpoints, in either
// direction.
func (e Edge) Shares(other Edge) bool {
	return e.Start == other.Start && e.End == other.End ||
		e.Start == other.End && e.End == other.Start
}

// Direction independent map key for an edge.
func (e Edge) Key() EdgeKey {
	if e.End.Less(e.Start) {
		return EdgeKey{e.End, e.Start}
	}
	return EdgeKey{e.Start, e.End}
}

type EdgeKey struct {
	Lower, Upper Point
}

// Twice the signed area of the triangle abc. Positive when abc winds
// counterclockwise, negative when clockwise, zero when collinear.
func Orientation(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Put three vertices into counterclockwise order and derive their edges.
//
// The triple is first rotated so that the lexicographically lowest vertex
// leads. Rotation does not change the winding, and it means every cyclic
// permutation of the same input produces a bit-for-bit identical triangle, so
// predicates evaluated on it cannot disagree through rounding.
func MakeCCW(a, b, c Point) (Point, Point, Point, [3]Edge) {
	if b.Less(a) && b.Less(c) {
		a, b, c = b, c, a
	} else if c.Less(a) && c.Less(b) {
		a, b, c = c, a, b
	}

	// This is the negated cross product of (b-a) and (c-b), so a negative value
	// means the vertices already wind counterclockwise.
	val := (b.Y-a.Y)*(c.X-b.X) - (b.X-a.X)*(c.Y-b.Y)
	if val >= 0 {
		b, c = c, b
	}
	return a, b, c, [3]Edge{{a, b}, {b, c}, {c, a}}
}

// Result of the in-circumcircle predicate.
type Side int

const (
	Outside Side = iota
	OnCircle
	Inside
)

func (s Side) String() string {
	switch s {
	case Inside:
		return "inside"
	case OnCircle:
		return "on circle"
	default:
		return "outside"
	}
}

// Classify p against the circumcircle of t, using the sign of the lifted
// determinant
//
//	| ax-px  ay-py  (ax-px)²+(ay-py)² |
//	| bx-px  by-py  (bx-px)²+(by-py)² |
//	| cx-px  cy-py  (cx-px)²+(cy-py)² |
//
// which is positive exactly when p is strictly inside, given that t's vertices
// wind counterclockwise. No tolerance is applied, so points numerically on the
// circle may land on either side.
func InCircle(p Point, t *Triangle) Side {
	adx, ady := t.A.X-p.X, t.A.Y-p.Y
	bdx, bdy := t.B.X-p.X, t.B.Y-p.Y
	cdx, cdy := t.C.X-p.X, t.C.Y-p.Y

	alift := adx*adx + ady*ady
	blift := bdx*bdx + bdy*bdy
	clift := cdx*cdx + cdy*cdy

	det := adx*(bdy*clift-blift*cdy) -
		ady*(bdx*clift-blift*cdx) +
		alift*(bdx*cdy-bdy*cdx)

	switch {
	case det > 0:
		return Inside
	case det == 0:
		return OnCircle
	default:
		return Outside
	}
}
