package internal

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Below this ratio of doubled area to the product of two side lengths (the
// sine of the angle at the first vertex), a triangle is treated as collinear.
const collinearEpsilon = 1e-12

// Center of the circle through the three vertices of t, from the closed form
// intersection of the perpendicular bisectors. Collinear vertices have no such
// circle and yield ErrDegenerateGeometry rather than an infinite or NaN point.
func Circumcenter(t *Triangle) (Point, error) {
	a, b, c := t.A, t.B, t.C

	area2 := Orientation(a, b, c)
	scale := math.Hypot(b.X-a.X, b.Y-a.Y) * math.Hypot(c.X-a.X, c.Y-a.Y)
	if scale == 0 || math.Abs(area2) <= collinearEpsilon*scale {
		return Point{}, errors.Wrapf(ErrDegenerateGeometry, "vertices %v %v %v are collinear", a, b, c)
	}

	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	aLift := a.X*a.X + a.Y*a.Y
	bLift := b.X*b.X + b.Y*b.Y
	cLift := c.X*c.X + c.Y*c.Y

	center := Point{
		X: (aLift*(b.Y-c.Y) + bLift*(c.Y-a.Y) + cLift*(a.Y-b.Y)) / d,
		Y: (aLift*(c.X-b.X) + bLift*(a.X-c.X) + cLift*(b.X-a.X)) / d,
	}
	if math.IsNaN(center.X) || math.IsNaN(center.Y) || math.IsInf(center.X, 0) || math.IsInf(center.Y, 0) {
		return Point{}, errors.Wrapf(ErrDegenerateGeometry, "circumcenter of %v %v %v is not finite", a, b, c)
	}
	return center, nil
}

// One edge of the Voronoi diagram. Bounded edges join the circumcenters of two
// adjacent triangles. Unbounded edges are rays leaving the circumcenter of a
// triangle on the mesh boundary, perpendicular to the boundary edge.
type VoronoiEdge struct {
	Origin Point
	// Only set for bounded edges.
	End Point
	// Unit vector. Only set for rays.
	Direction Point
	Bounded   bool
	// The Delaunay edge this Voronoi edge is dual to.
	Dual     Edge
	Triangle Handle
	// NoTriangle for rays.
	Neighbor Handle
}

func (e VoronoiEdge) IsRay() bool {
	return !e.Bounded
}

// A finite endpoint for the edge. Rays are cut off at the given length;
// bounded edges just return their end.
func (e VoronoiEdge) Clip(length float64) Point {
	if e.Bounded {
		return e.End
	}
	return pointFromVec(e.Origin.vec().Add(e.Direction.vec().Mul(length)))
}

func (e VoronoiEdge) String() string {
	if e.Bounded {
		return fmt.Sprintf("segment %v→%v", e.Origin, e.End)
	}
	return fmt.Sprintf("ray %v dir %v", e.Origin, e.Direction)
}

type Diagram struct {
	Edges []VoronoiEdge
	// One per triangle, in mesh order.
	Circumcenters []Point
	// Passed through from the triangulation, for drawing and diagnostics.
	DelaunayEdges []Edge
}

func (d *Diagram) Segments() []VoronoiEdge {
	return d.filter(true)
}

func (d *Diagram) Rays() []VoronoiEdge {
	return d.filter(false)
}

func (d *Diagram) filter(bounded bool) []VoronoiEdge {
	var result []VoronoiEdge
	for _, e := range d.Edges {
		if e.Bounded == bounded {
			result = append(result, e)
		}
	}
	return result
}

// Unit normal of edge i of t pointing away from the triangle, i.e. away from
// its third vertex.
func OutwardNormal(t *Triangle, i int) Point {
	edge := t.Edges[i]
	start := edge.Start.vec()
	normal := edge.End.vec().Sub(start).Ortho()
	if normal.Dot(t.ThirdVertex(i).vec().Sub(start)) > 0 {
		normal = normal.Mul(-1)
	}
	return pointFromVec(normal.Normalize())
}

// Build the Voronoi dual of a finished triangulation. Each interior Delaunay
// edge yields exactly one segment between the circumcenters of its two
// triangles, and each boundary edge yields one outward ray.
//
// Rays point along the outward normal of their boundary edge. This is the
// geometrically correct direction for every configuration, unlike the
// signed-area rule sometimes used to pick between the two directions along the
// line through the circumcenter and the edge midpoint.
func BuildVoronoi(tr *Triangulation) *Diagram {
	tr.requireStage(stageLinked, "BuildVoronoi")

	triangles := tr.Triangles()
	centers := make(map[Handle]Point, len(triangles))
	diagram := &Diagram{
		Circumcenters: make([]Point, 0, len(triangles)),
		DelaunayEdges: tr.ExportEdges(),
	}
	for _, t := range triangles {
		center, err := Circumcenter(t)
		if err != nil {
			throw(errors.Wrapf(err, "triangle %s", t.DbgName()))
		}
		centers[t.handle] = center
		diagram.Circumcenters = append(diagram.Circumcenters, center)
	}

	for _, t := range triangles {
		origin := centers[t.handle]
		for i, neighbor := range t.Neighbors {
			if !neighbor.Exists() {
				diagram.Edges = append(diagram.Edges, VoronoiEdge{
					Origin:    origin,
					Direction: OutwardNormal(t, i),
					Dual:      t.Edges[i],
					Triangle:  t.handle,
					Neighbor:  NoTriangle,
				})
				continue
			}
			// The neighbor sees the same edge from the other side; only the lower
			// handle emits it.
			if neighbor.Triangle < t.handle {
				continue
			}
			diagram.Edges = append(diagram.Edges, VoronoiEdge{
				Origin:   origin,
				End:      centers[neighbor.Triangle],
				Bounded:  true,
				Dual:     t.Edges[i],
				Triangle: t.handle,
				Neighbor: neighbor.Triangle,
			})
		}
	}

	tr.logger.Debug("built voronoi diagram",
		zap.Int("circumcenters", len(diagram.Circumcenters)),
		zap.Int("segments", len(diagram.Segments())),
		zap.Int("rays", len(diagram.Rays())),
	)
	return diagram
}
