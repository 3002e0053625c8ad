package internal

import (
	"fmt"

	"go.uber.org/zap"
)

// Margin by which the super-triangle overhangs the width/height box. The legs
// stick out by a further 2·superMargin so that the far corner of the box stays
// clear of the hypotenuse.
const superMargin = 100

type stage int

const (
	stageInserting stage = iota
	stageCleaned
	stageLinked
)

// Counters collected over the lifetime of a triangulation.
type Stats struct {
	PointsInserted     int
	TrianglesCreated   int
	TrianglesDestroyed int
	// Number of times an inserted point landed exactly on a live triangle's
	// circumcircle. Such triangles are left alone unless strict mode is on.
	CocircularHits int
}

// Incremental Bowyer-Watson triangulation.
//
// The live set starts as the single super-triangle. Each insertion removes
// the triangles whose circumcircle strictly contains the new point and fans
// the resulting cavity out from it, so the live set stays Delaunay over every
// point inserted so far (super-triangle vertices included). Once all points
// are in, the triangles touching the super-triangle are dropped and neighbor
// slots are filled in.
//
// A Triangulation is not safe for concurrent use. Each Insert mutates the
// whole live set and must run to completion before the next begins.
type Triangulation struct {
	super  [3]Point
	arena  arena
	live   []Handle
	stage  stage
	stats  Stats
	opts   options
	logger *zap.Logger
}

// Create a triangulation whose super-triangle strictly encloses the closed box
// [0, width] × [0, height] with a wide margin. Callers must keep every point
// strictly inside it; Run checks this up front.
func NewTriangulation(width, height float64, setters ...Option) *Triangulation {
	if err := validateBounds(width, height); err != nil {
		throw(err)
	}

	opts := defaultOptions()
	for _, set := range setters {
		set(&opts)
	}

	superTriangle := NewTriangle(
		Point{-superMargin, -superMargin},
		Point{2*width + 3*superMargin, -superMargin},
		Point{-superMargin, 2*height + 3*superMargin},
	)
	tr := &Triangulation{
		super:  superTriangle.Vertices(),
		opts:   opts,
		logger: opts.logger,
	}
	tr.add(superTriangle)
	return tr
}

func (tr *Triangulation) SuperVertices() [3]Point {
	return tr.super
}

func (tr *Triangulation) Stats() Stats {
	return tr.stats
}

func (tr *Triangulation) Len() int {
	return len(tr.live)
}

// Handles of the live triangles, in the order they were created.
func (tr *Triangulation) Handles() []Handle {
	return append([]Handle(nil), tr.live...)
}

func (tr *Triangulation) Triangles() []*Triangle {
	result := make([]*Triangle, len(tr.live))
	for i, h := range tr.live {
		result[i] = tr.arena.get(h)
	}
	return result
}

func (tr *Triangulation) Triangle(h Handle) *Triangle {
	return tr.arena.get(h)
}

// The triangle across edge i of t, or nil on the mesh boundary. Only
// meaningful after neighbors have been found.
func (tr *Triangulation) Neighbor(t *Triangle, i int) *Triangle {
	n := t.Neighbors[i]
	if !n.Exists() {
		return nil
	}
	return tr.arena.get(n.Triangle)
}

func (tr *Triangulation) add(t *Triangle) Handle {
	h := tr.arena.alloc(t)
	tr.live = append(tr.live, h)
	tr.stats.TrianglesCreated++
	return h
}

// Remove every live triangle matching the predicate.
func (tr *Triangulation) removeWhere(remove func(h Handle, t *Triangle) bool) int {
	kept := tr.live[:0]
	removed := 0
	for _, h := range tr.live {
		if remove(h, tr.arena.get(h)) {
			tr.arena.release(h)
			removed++
			continue
		}
		kept = append(kept, h)
	}
	tr.live = kept
	tr.stats.TrianglesDestroyed += removed
	return removed
}

func (tr *Triangulation) requireStage(s stage, op string) {
	if tr.stage != s {
		panic(fmt.Sprintf("%s called out of order", op))
	}
}

// Insert a single point and return the boundary of the cavity that was
// retriangulated around it.
//
// A point coincident with an existing vertex, or lying exactly on a
// circumcircle, is not handled in any meaningful way. Run rejects the first
// case, and strict mode rejects the second.
func (tr *Triangulation) Insert(p Point) Polygon {
	tr.requireStage(stageInserting, "Insert")

	bad := make(map[Handle]struct{})
	var badTriangles []*Triangle
	for _, h := range tr.live {
		t := tr.arena.get(h)
		switch InCircle(p, t) {
		case Inside:
			bad[h] = struct{}{}
			badTriangles = append(badTriangles, t)
		case OnCircle:
			tr.stats.CocircularHits++
			if tr.opts.strictCocircular {
				fatalf(ErrNumericalInstability, "point %v lies on the circumcircle of %v", p, t)
			}
			tr.logger.Warn("point lies exactly on a circumcircle",
				zap.Stringer("point", p),
				zap.Stringer("triangle", t),
			)
		}
	}
	if len(badTriangles) == 0 {
		// Every point strictly inside the super-triangle is inside the
		// circumcircle of whichever live triangle contains it, unless it is
		// already a vertex.
		for _, h := range tr.live {
			if tr.arena.get(h).HasVertex(p) {
				fatalf(ErrInvalidInput, "point %v coincides with an existing vertex", p)
			}
		}
		fatalf(ErrInvalidInput, "point %v is not inside the super-triangle", p)
	}

	// An edge of a bad triangle is on the cavity boundary iff no other bad
	// triangle has it.
	var cavity Polygon
	for _, t := range badTriangles {
		for _, edge := range t.Edges {
			if !sharedWithOther(edge, t, badTriangles) {
				cavity.Edges = append(cavity.Edges, edge)
			}
		}
	}

	tr.removeWhere(func(h Handle, _ *Triangle) bool {
		_, ok := bad[h]
		return ok
	})

	for _, edge := range cavity.Edges {
		tr.add(NewTriangle(edge.Start, edge.End, p))
	}
	tr.stats.PointsInserted++

	tr.logger.Debug("inserted point",
		zap.Stringer("point", p),
		zap.Int("cavity", len(badTriangles)),
		zap.Int("boundary", len(cavity.Edges)),
		zap.Int("live", len(tr.live)),
	)
	return cavity
}

func sharedWithOther(edge Edge, owner *Triangle, triangles []*Triangle) bool {
	for _, other := range triangles {
		if other.handle == owner.handle {
			continue
		}
		for _, otherEdge := range other.Edges {
			if edge.Shares(otherEdge) {
				return true
			}
		}
	}
	return false
}

// Drop every triangle that uses a super-triangle vertex. This is terminal: no
// more points can be inserted afterwards.
func (tr *Triangulation) RemoveSuperTriangle() {
	tr.requireStage(stageInserting, "RemoveSuperTriangle")
	removed := tr.removeWhere(func(_ Handle, t *Triangle) bool {
		return t.HasVertex(tr.super[0]) || t.HasVertex(tr.super[1]) || t.HasVertex(tr.super[2])
	})
	tr.stage = stageCleaned
	tr.logger.Debug("removed super-triangle",
		zap.Int("removed", removed),
		zap.Int("remaining", len(tr.live)),
	)
}

// Fill the neighbor slots of every triangle by comparing each triangle's edges
// against every other triangle's edges. Slots with no match are left empty and
// mark the mesh boundary.
func (tr *Triangulation) FindNeighbours() {
	tr.requireStage(stageCleaned, "FindNeighbours")
	triangles := tr.Triangles()
	for _, t := range triangles {
		for i, edge := range t.Edges {
			t.Neighbors[i] = noNeighbor
			for _, other := range triangles {
				if other.handle == t.handle {
					continue
				}
				for _, otherEdge := range other.Edges {
					if edge.Shares(otherEdge) {
						t.Neighbors[i] = Neighbor{Triangle: other.handle, Edge: edge}
					}
				}
			}
		}
	}
	tr.stage = stageLinked
	tr.logNeighbours("pairwise")
}

// Same result as FindNeighbours, but edges are matched through a map keyed on
// the undirected edge instead of comparing all pairs of triangles.
func (tr *Triangulation) FindNeighboursIndexed() {
	tr.requireStage(stageCleaned, "FindNeighboursIndexed")

	type slot struct {
		triangle *Triangle
		index    int
	}
	byEdge := make(map[EdgeKey][]slot, 3*len(tr.live)/2)
	for _, t := range tr.Triangles() {
		for i, edge := range t.Edges {
			t.Neighbors[i] = noNeighbor
			key := edge.Key()
			byEdge[key] = append(byEdge[key], slot{t, i})
		}
	}

	for key, slots := range byEdge {
		switch len(slots) {
		case 1:
			// boundary
		case 2:
			a, b := slots[0], slots[1]
			a.triangle.Neighbors[a.index] = Neighbor{Triangle: b.triangle.handle, Edge: a.triangle.Edges[a.index]}
			b.triangle.Neighbors[b.index] = Neighbor{Triangle: a.triangle.handle, Edge: b.triangle.Edges[b.index]}
		default:
			fatalf(ErrDegenerateGeometry, "edge %v–%v is shared by %d triangles", key.Lower, key.Upper, len(slots))
		}
	}
	tr.stage = stageLinked
	tr.logNeighbours("indexed")
}

func (tr *Triangulation) logNeighbours(method string) {
	interior, boundary := 0, 0
	for _, h := range tr.live {
		for _, n := range tr.arena.get(h).Neighbors {
			if n.Exists() {
				interior++
			} else {
				boundary++
			}
		}
	}
	tr.logger.Debug("found neighbours",
		zap.String("method", method),
		zap.Int("interiorSlots", interior),
		zap.Int("boundarySlots", boundary),
	)
}

// Every edge of every live triangle. Edges between two triangles appear twice,
// once in each direction.
func (tr *Triangulation) ExportEdges() []Edge {
	edges := make([]Edge, 0, 3*len(tr.live))
	for _, h := range tr.live {
		t := tr.arena.get(h)
		edges = append(edges, t.Edges[:]...)
	}
	return edges
}

// Triangulate the points in the given order, drop the super-triangle, link
// neighbors, and return the edges.
func (tr *Triangulation) Run(points []Point) []Edge {
	if err := ValidateInput(points, tr.super); err != nil {
		throw(err)
	}
	for _, p := range points {
		tr.Insert(p)
	}
	tr.RemoveSuperTriangle()
	if tr.opts.indexedNeighbors {
		tr.FindNeighboursIndexed()
	} else {
		tr.FindNeighbours()
	}
	tr.logger.Info("triangulation complete",
		zap.Int("points", tr.stats.PointsInserted),
		zap.Int("triangles", len(tr.live)),
		zap.Int("cocircularHits", tr.stats.CocircularHits),
	)
	return tr.ExportEdges()
}
