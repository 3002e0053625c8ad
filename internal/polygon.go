package internal

// The boundary of a cavity left behind by removing the bad triangles for an
// inserted point. Edges keep the counterclockwise direction they had in the
// triangles they came from, but are in no particular order.
type Polygon struct {
	Edges []Edge
}

// Even-odd point-in-polygon. Since the crossing count doesn't care about edge
// order, this works directly on the unordered cavity boundary returned by
// Insert, which makes it a handy diagnostic for where a point landed.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Number of edges crossed by a ray cast from p towards +X.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for _, edge := range poly.Edges {
		start, end := edge.Start, edge.End
		if (start.Y > p.Y) == (end.Y > p.Y) {
			continue
		}
		x := start.X + (p.Y-start.Y)*(end.X-start.X)/(end.Y-start.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

// Signed area by the shoelace formula. Positive for a counterclockwise
// boundary; again edge order is irrelevant.
func (poly Polygon) Area() float64 {
	var sum float64
	for _, edge := range poly.Edges {
		sum += edge.Start.X*edge.End.Y - edge.End.X*edge.Start.Y
	}
	return sum / 2
}

// The distinct vertices of the boundary, in first-seen order.
func (poly Polygon) Points() []Point {
	seen := make(map[Point]struct{}, len(poly.Edges))
	points := make([]Point, 0, len(poly.Edges))
	for _, edge := range poly.Edges {
		for _, p := range [2]Point{edge.Start, edge.End} {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			points = append(points, p)
		}
	}
	return points
}
