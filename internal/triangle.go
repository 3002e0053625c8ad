package internal

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/delaunay/internal/dbg"
)

// Triangles are referred to by handle rather than by pointer. A handle is only
// meaningful together with the Triangulation that issued it.
type Handle int

// Marks an empty neighbor slot, meaning the edge lies on the mesh boundary.
const NoTriangle Handle = -1

func (h Handle) IsNone() bool {
	return h == NoTriangle
}

// A neighbor slot. Slot i of a triangle describes whatever lies across edge i.
type Neighbor struct {
	Triangle Handle
	Edge     Edge
}

func (n Neighbor) Exists() bool {
	return n.Triangle != NoTriangle
}

var noNeighbor = Neighbor{Triangle: NoTriangle}

// The vertices of a triangle are normalized to counterclockwise order at
// construction time and never change afterwards. Only the neighbor slots are
// written later, once the mesh has stabilized.
type Triangle struct {
	A, B, C   Point
	Edges     [3]Edge
	Neighbors [3]Neighbor
	handle    Handle
}

func NewTriangle(a, b, c Point) *Triangle {
	t := &Triangle{handle: NoTriangle}
	t.A, t.B, t.C, t.Edges = MakeCCW(a, b, c)
	t.Neighbors = [3]Neighbor{noNeighbor, noNeighbor, noNeighbor}
	return t
}

func (t *Triangle) Handle() Handle {
	return t.handle
}

func (t *Triangle) HasVertex(p Point) bool {
	return t.A == p || t.B == p || t.C == p
}

func (t *Triangle) Vertices() [3]Point {
	return [3]Point{t.A, t.B, t.C}
}

// The vertex that is not an endpoint of edge i.
func (t *Triangle) ThirdVertex(i int) Point {
	// Edge i runs from vertex i to vertex i+1, so the opposite vertex is i+2
	return t.Vertices()[CircularIndex(i+2, 3)]
}

// Index of the edge shared with e, or -1.
func (t *Triangle) EdgeIndex(e Edge) int {
	for i, edge := range t.Edges {
		if edge.Shares(e) {
			return i
		}
	}
	return -1
}

// True if any of the edges has no neighbor.
func (t *Triangle) OnBoundary() bool {
	for _, n := range t.Neighbors {
		if !n.Exists() {
			return true
		}
	}
	return false
}

func (t *Triangle) SignedArea() float64 {
	return Orientation(t.A, t.B, t.C) / 2
}

// Names are keyed on the triangle itself rather than its handle, since handles
// are recycled once a triangle is destroyed.
func (t *Triangle) DbgName() string {
	name := dbg.Name(t)
	if t.OnBoundary() {
		return aurora.Cyan(name).String()
	}
	return aurora.Green(name).String()
}

func (t *Triangle) String() string {
	return fmt.Sprintf("%s[%v %v %v]", t.DbgName(), t.A, t.B, t.C)
}

// Modular index that never goes negative.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
