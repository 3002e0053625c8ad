package internal

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTriangle(t *testing.T) {
	a, b, c := Point{0, 0}, Point{0, 1}, Point{1, 0}
	tri := NewTriangle(a, b, c)

	assert.Equal(t, [3]Point{a, c, b}, tri.Vertices())
	assert.Equal(t, [3]Edge{{a, c}, {c, b}, {b, a}}, tri.Edges)
	for _, n := range tri.Neighbors {
		assert.False(t, n.Exists())
		assert.Equal(t, NoTriangle, n.Triangle)
	}
	assert.Equal(t, NoTriangle, tri.Handle())
	assert.True(t, tri.OnBoundary())
}

func TestTriangleHasVertex(t *testing.T) {
	tri := NewTriangle(Point{0, 0}, Point{1, 0}, Point{0, 1})
	assert.True(t, tri.HasVertex(Point{0, 0}))
	assert.True(t, tri.HasVertex(Point{1, 0}))
	assert.True(t, tri.HasVertex(Point{0, 1}))
	assert.False(t, tri.HasVertex(Point{1, 1}))
	// Exact equality only
	assert.False(t, tri.HasVertex(Point{math.Nextafter(1, 2), 0}))
}

func TestTriangleThirdVertex(t *testing.T) {
	tri := NewTriangle(Point{2, 2}, Point{5, 3}, Point{3, 6})
	for i, edge := range tri.Edges {
		third := tri.ThirdVertex(i)
		assert.False(t, third == edge.Start || third == edge.End)
		assert.True(t, tri.HasVertex(third))
	}
}

func TestTriangleEdgeIndex(t *testing.T) {
	tri := NewTriangle(Point{0, 0}, Point{1, 0}, Point{0, 1})
	for i, edge := range tri.Edges {
		assert.Equal(t, i, tri.EdgeIndex(edge))
		assert.Equal(t, i, tri.EdgeIndex(Edge{edge.End, edge.Start}))
	}
	assert.Equal(t, -1, tri.EdgeIndex(Edge{Point{0, 0}, Point{1, 1}}))
}

func TestTriangleSignedArea(t *testing.T) {
	for _, order := range [][3]Point{
		{{0, -1}, {1, 0}, {0, 1}},
		{{1, 0}, {0, -1}, {0, 1}},
	} {
		order := order
		t.Run(fmt.Sprint(order), func(t *testing.T) {
			// Normalization means the area is positive whatever the input winding
			tri := NewTriangle(order[0], order[1], order[2])
			assert.InDelta(t, 1.0, tri.SignedArea(), 1e-12)
		})
	}
}

func TestTriangleDbgName_HandleReuse(t *testing.T) {
	var a arena
	first := NewTriangle(Point{0, 0}, Point{1, 0}, Point{0, 1})
	h := a.alloc(first)
	firstName := first.DbgName()
	assert.Equal(t, firstName, first.DbgName())
	a.release(h)

	second := NewTriangle(Point{1, 0}, Point{1, 1}, Point{0, 1})
	require.Equal(t, h, a.alloc(second))
	assert.NotEqual(t, firstName, second.DbgName())
}

func TestTriangleString(t *testing.T) {
	tri := NewTriangle(Point{0, 0}, Point{1, 0}, Point{0, 1})
	assert.Contains(t, tri.String(), "(0, 0) (1, 0) (0, 1)")
}
