package internal

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Padding around the mesh, in pixels, so that rays have somewhere to go.
const drawPadding = 100

// Render the triangulation and its Voronoi dual. The diagram may be nil, in
// which case only the Delaunay edges are drawn.
//
// The origin is put at the bottom left, so the picture has the same handedness
// as the coordinates.
func Draw(tr *Triangulation, diagram *Diagram, scale float64) *gg.Context {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, t := range tr.Triangles() {
		for _, p := range t.Vertices() {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if math.IsInf(minX, 1) {
		// Empty mesh, draw a blank unit box
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(1)
	c.SetRGB(0, 0.6, 0)
	for _, edge := range tr.ExportEdges() {
		c.DrawLine(edge.Start.X, edge.Start.Y, edge.End.X, edge.End.Y)
	}
	c.Stroke()

	if diagram != nil {
		// Long enough to leave the canvas from anywhere on it
		rayLength := float64(width+height) / scale

		c.SetLineWidth(2)
		c.SetRGB(0, 0, 0)
		for _, edge := range diagram.Edges {
			end := edge.Clip(rayLength)
			c.DrawLine(edge.Origin.X, edge.Origin.Y, end.X, end.Y)
		}
		c.Stroke()

		c.SetRGB(1, 0, 0)
		for _, center := range diagram.Circumcenters {
			c.DrawCircle(center.X, center.Y, 2/scale)
		}
		c.Fill()
	}

	c.SetRGB(0, 0, 1)
	seen := make(map[Point]struct{})
	for _, t := range tr.Triangles() {
		for _, p := range t.Vertices() {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			c.DrawCircle(p.X, p.Y, 3/scale)
		}
	}
	c.Fill()

	return c
}

// Print a PNG to a terminal that understands the iTerm inline image protocol.
func Preview(path string, out io.Writer) error {
	return imgcat.CatFile(path, out)
}
