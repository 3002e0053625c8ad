// Delaunay triangulation and Voronoi diagrams for Go.
//
// Points are inserted one at a time using the Bowyer-Watson algorithm: every
// triangle whose circumcircle contains the new point is removed, and the hole
// left behind is filled with a fan of triangles around the point. The Voronoi
// diagram is then read off the finished mesh, joining the circumcenters of
// adjacent triangles and sending rays outward from the boundary.
//
// Geometry is evaluated with plain floating point arithmetic and exact point
// equality. Inputs with four or more cocircular points are accepted, but the
// choice of diagonal in such a configuration depends on rounding.
package delaunay

import (
	"github.com/osuushi/delaunay/internal"
)

type Point = internal.Point
type Edge = internal.Edge
type Triangle = internal.Triangle
type Handle = internal.Handle
type Neighbor = internal.Neighbor
type Triangulation = internal.Triangulation
type Diagram = internal.Diagram
type VoronoiEdge = internal.VoronoiEdge
type Option = internal.Option

const NoTriangle = internal.NoTriangle

var (
	ErrDegenerateGeometry   = internal.ErrDegenerateGeometry
	ErrNumericalInstability = internal.ErrNumericalInstability
	ErrInvalidInput         = internal.ErrInvalidInput
)

var (
	WithLogger           = internal.WithLogger
	WithStrictCocircular = internal.WithStrictCocircular
	WithIndexedNeighbors = internal.WithIndexedNeighbors
)

// Triangulate the points, which must lie strictly inside the super-triangle
// sized by width and height. Any point of the closed box [0, width] ×
// [0, height] is fine, as is anything within 100 units of it.
//
// The returned triangulation has its super-triangle removed and its neighbor
// slots filled in. The edges include both directions of every interior edge.
func Triangulate(width, height float64, points []Point, options ...Option) (mesh *Triangulation, edges []Edge, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			mesh = nil
			edges = nil
			err = recoveredErr
		}
	}()
	mesh = internal.NewTriangulation(width, height, options...)
	edges = mesh.Run(points)
	return mesh, edges, nil
}

// Triangulate the points and build the Voronoi diagram of the result.
func ComputeVoronoi(width, height float64, points []Point, options ...Option) (diagram *Diagram, err error) {
	mesh, _, err := Triangulate(width, height, points, options...)
	if err != nil {
		return nil, err
	}
	return Voronoi(mesh)
}

// Build the Voronoi diagram of an already finished triangulation.
func Voronoi(mesh *Triangulation) (diagram *Diagram, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			diagram = nil
			err = recoveredErr
		}
	}()
	return internal.BuildVoronoi(mesh), nil
}

// Center of the circumcircle of the triangle abc.
func Circumcenter(a, b, c Point) (Point, error) {
	return internal.Circumcenter(internal.NewTriangle(a, b, c))
}
