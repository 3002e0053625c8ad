package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/delaunay"
	"github.com/osuushi/delaunay/internal"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of triangulation. Input on stdin should be newline separated points in
// the form "x y". Blank lines and lines starting with # are skipped. The
// Delaunay edges are printed one per line as "x1 y1 x2 y2", followed by the
// Voronoi edges if requested.
var (
	app       = kingpin.New("delaunay", "Delaunay triangulation and Voronoi diagram of points read from stdin.")
	width     = app.Flag("width", "Width of the box the points lie in.").Default("100").Float64()
	height    = app.Flag("height", "Height of the box the points lie in.").Default("100").Float64()
	strict    = app.Flag("strict", "Fail when a point lies exactly on a circumcircle.").Bool()
	indexed   = app.Flag("indexed", "Use the edge index for neighbour discovery.").Bool()
	voronoi   = app.Flag("voronoi", "Also print the Voronoi edges.").Bool()
	pngPath   = app.Flag("png", "Render the mesh and diagram to this PNG file.").String()
	scale     = app.Flag("scale", "Pixels per unit when rendering.").Default("5").Float64()
	preview   = app.Flag("preview", "Print the rendered PNG to the terminal (iTerm only).").Bool()
	verbose   = app.Flag("verbose", "Log engine progress to stderr.").Short('v').Bool()
	rayLength = app.Flag("ray-length", "Length at which Voronoi rays are cut off when printed.").Default("1000").Float64()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			app.Fatalf("creating logger: %v", err)
		}
	}
	defer logger.Sync() //nolint:errcheck

	points, err := readPoints(os.Stdin)
	if err != nil {
		app.Fatalf("reading points: %v", err)
	}
	logger.Info("read points", zap.Int("count", len(points)))

	mesh, edges, err := delaunay.Triangulate(*width, *height, points,
		delaunay.WithLogger(logger),
		delaunay.WithStrictCocircular(*strict),
		delaunay.WithIndexedNeighbors(*indexed),
	)
	if err != nil {
		app.Fatalf("triangulating: %v", err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for _, edge := range edges {
		fmt.Fprintf(out, "%g %g %g %g\n", edge.Start.X, edge.Start.Y, edge.End.X, edge.End.Y)
	}

	var diagram *delaunay.Diagram
	if *voronoi || *pngPath != "" {
		diagram, err = delaunay.Voronoi(mesh)
		if err != nil {
			app.Fatalf("building voronoi diagram: %v", err)
		}
	}
	if *voronoi {
		fmt.Fprintln(out)
		for _, edge := range diagram.Edges {
			end := edge.Clip(*rayLength)
			fmt.Fprintf(out, "%g %g %g %g\n", edge.Origin.X, edge.Origin.Y, end.X, end.Y)
		}
	}

	if *pngPath != "" {
		c := internal.Draw(mesh, diagram, *scale)
		if err := c.SavePNG(*pngPath); err != nil {
			app.Fatalf("saving %s: %v", *pngPath, err)
		}
		if *preview {
			out.Flush()
			if err := internal.Preview(*pngPath, os.Stdout); err != nil {
				app.Fatalf("previewing %s: %v", *pngPath, err)
			}
		}
	}
}

func readPoints(in io.Reader) ([]delaunay.Point, error) {
	var points []delaunay.Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	return points, scanner.Err()
}

func parsePoint(line string) (delaunay.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return delaunay.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return delaunay.Point{}, err
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return delaunay.Point{}, err
	}
	return delaunay.Point{X: x, Y: y}, nil
}
