package internal

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdgeShares(t *testing.T) {
	a, b, c := Point{0, 0}, Point{1, 0}, Point{0, 1}
	assert.True(t, Edge{a, b}.Shares(Edge{a, b}))
	assert.True(t, Edge{a, b}.Shares(Edge{b, a}))
	assert.False(t, Edge{a, b}.Shares(Edge{a, c}))
	assert.False(t, Edge{a, b}.Shares(Edge{c, b}))
	// No tolerance
	assert.False(t, Edge{a, b}.Shares(Edge{a, Point{1, 1e-300}}))
}

func TestEdgeKey(t *testing.T) {
	a, b := Point{3, 1}, Point{-2, 5}
	assert.Equal(t, Edge{a, b}.Key(), Edge{b, a}.Key())
	assert.Equal(t, EdgeKey{b, a}, Edge{a, b}.Key())
	assert.NotEqual(t, Edge{a, b}.Key(), Edge{a, Point{-2, 6}}.Key())
}

func TestOrientation(t *testing.T) {
	a, b, c := Point{0, 0}, Point{1, 0}, Point{0, 1}
	assert.Equal(t, 1.0, Orientation(a, b, c))
	assert.Equal(t, -1.0, Orientation(a, c, b))
	assert.Equal(t, 0.0, Orientation(a, b, Point{2, 0}))
}

func TestMakeCCW(t *testing.T) {
	triples := [][3]Point{
		{{0, 0}, {1, 0}, {0, 1}},
		{{5, 3}, {-2, 7}, {1, -4}},
		{{0.25, 0.5}, {0.75, 0.5}, {0.5, 0.125}},
	}
	permutations := [][3]int{{0, 1, 2}, {1, 2, 0}, {2, 0, 1}, {0, 2, 1}, {2, 1, 0}, {1, 0, 2}}

	for _, triple := range triples {
		for _, perm := range permutations {
			a, b, c := triple[perm[0]], triple[perm[1]], triple[perm[2]]
			t.Run(fmt.Sprintf("%v %v %v", a, b, c), func(t *testing.T) {
				na, nb, nc, edges := MakeCCW(a, b, c)
				assert.Greater(t, Orientation(na, nb, nc), 0.0)
				assert.ElementsMatch(t, triple[:], []Point{na, nb, nc})

				// Edges chain around the triangle and cover every vertex
				for i, edge := range edges {
					assert.Equal(t, edge.End, edges[CircularIndex(i+1, 3)].Start)
					assert.Greater(t, Orientation(edge.Start, edge.End, edges[CircularIndex(i+1, 3)].End), 0.0)
				}
				var endpoints []Point
				for _, edge := range edges {
					endpoints = append(endpoints, edge.Start)
				}
				assert.ElementsMatch(t, triple[:], endpoints)
			})
		}
	}
}

func TestMakeCCW_CyclicPermutationsAreIdentical(t *testing.T) {
	a, b, c := Point{0.1, 0.7}, Point{0.9, 0.3}, Point{0.4, 0.95}
	ta, tb, tc, te := MakeCCW(a, b, c)
	for _, triple := range [][3]Point{{b, c, a}, {c, a, b}} {
		na, nb, nc, ne := MakeCCW(triple[0], triple[1], triple[2])
		assert.Equal(t, [3]Point{ta, tb, tc}, [3]Point{na, nb, nc})
		assert.Equal(t, te, ne)
	}
}

func TestInCircle(t *testing.T) {
	tri := NewTriangle(Point{0, 0}, Point{4, 0}, Point{0, 3})
	// Circumcircle is centered on (2, 1.5) with radius 2.5
	assert.Equal(t, Inside, InCircle(Point{2, 1.5}, tri))
	assert.Equal(t, Inside, InCircle(Point{3, 3}, tri))
	assert.Equal(t, Outside, InCircle(Point{5, 5}, tri))
	assert.Equal(t, Outside, InCircle(Point{-1, -1}, tri))
	assert.Equal(t, OnCircle, InCircle(Point{4, 3}, tri))
	// Vertices are on their own circumcircle
	assert.Equal(t, OnCircle, InCircle(Point{0, 0}, tri))
}

func TestInCircle_OrientationIndependent(t *testing.T) {
	// Clockwise input is normalized, so the predicate keeps its meaning
	cw := NewTriangle(Point{0, 0}, Point{0, 3}, Point{4, 0})
	assert.Equal(t, Inside, InCircle(Point{2, 1.5}, cw))
	assert.Equal(t, Outside, InCircle(Point{5, 5}, cw))
}

func TestInCircle_CyclicPermutation(t *testing.T) {
	points := pseudoRandomPoints(7, 60, 10)
	for i := 0; i+3 <= len(points); i += 3 {
		a, b, c := points[i], points[i+1], points[i+2]
		abc := NewTriangle(a, b, c)
		bca := NewTriangle(b, c, a)
		cab := NewTriangle(c, a, b)
		for _, p := range points {
			side := InCircle(p, abc)
			assert.Equal(t, side, InCircle(p, bca))
			assert.Equal(t, side, InCircle(p, cab))
		}
	}
}

func TestInCircle_MatchesDistanceToCircumcenter(t *testing.T) {
	points := pseudoRandomPoints(11, 90, 1)
	for i := 0; i+3 <= len(points); i += 3 {
		tri := NewTriangle(points[i], points[i+1], points[i+2])
		center, err := Circumcenter(tri)
		require.NoError(t, err)
		radius := math.Hypot(tri.A.X-center.X, tri.A.Y-center.Y)
		for _, p := range points {
			distance := math.Hypot(p.X-center.X, p.Y-center.Y)
			// Stay clear of the boundary, where rounding decides
			if math.Abs(distance-radius) < 1e-9 {
				continue
			}
			if distance < radius {
				assert.Equal(t, Inside, InCircle(p, tri), "%v in %v", p, tri)
			} else {
				assert.Equal(t, Outside, InCircle(p, tri), "%v in %v", p, tri)
			}
		}
	}
}

func TestSideString(t *testing.T) {
	assert.Equal(t, "inside", Inside.String())
	assert.Equal(t, "on circle", OnCircle.String())
	assert.Equal(t, "outside", Outside.String())
}
