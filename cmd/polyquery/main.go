package main

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"polygeom"
	"polygeom/dbg"
	"polygeom/geom"
)

// Demo of the polygon queries. Input on stdin should be newline
// separated points in the form "x y", with each polygon separated by
// an extra newline. For every polygon, the query point given by --at
// is tested for containment and boundary membership, and its closest
// boundary point is reported. The polygon whose boundary comes nearest
// overall is highlighted, and can optionally be rendered to a PNG.
var (
	at      = kingpin.Flag("at", "Query point as \"x,y\".").Required().String()
	pngPath = kingpin.Flag("png", "Render the nearest polygon and its query result to this PNG file.").String()
	cat     = kingpin.Flag("cat", "Display the rendered PNG inline in the terminal.").Bool()
	scale   = kingpin.Flag("scale", "Pixels per coordinate unit when rendering.").Default("4").Float64()
)

func main() {
	kingpin.Parse()

	target, err := parsePoint(*at)
	if err != nil {
		kingpin.Fatalf("invalid --at point %q: %v", *at, err)
	}

	polygons := readPolygons(os.Stdin)
	if len(polygons) == 0 {
		kingpin.Fatalf("no polygons on stdin")
	}
	fmt.Printf("Read %d polygons, querying at (%g, %g)\n", len(polygons), target.X, target.Y)

	nearest := -1
	nearestDist := math.Inf(1)
	closestPoints := make([]polygeom.Point, len(polygons))
	for i := range polygons {
		closestPoints[i] = polygons[i].ClosestPointTo(target)
		if d := geom.Dist(target, closestPoints[i]); d < nearestDist {
			nearestDist = d
			nearest = i
		}
	}

	for i := range polygons {
		poly := polygons[i]
		closest := closestPoints[i]
		line := fmt.Sprintf("%s: inside=%v onEdge=%v closest=(%g, %g) dist=%g",
			dbg.Name(&polygons[i]),
			poly.ContainsPoint(target),
			poly.OnEdge(target),
			closest.X, closest.Y,
			geom.Dist(target, closest),
		)
		if i == nearest {
			fmt.Println(aurora.Green(line))
		} else {
			fmt.Println(line)
		}
	}

	if *pngPath != "" {
		if err := polygons[nearest].DrawQuery(target, *scale, *pngPath); err != nil {
			kingpin.Fatalf("rendering %s: %v", *pngPath, err)
		}
		if *cat {
			imgcat.CatFile(*pngPath, os.Stdout)
		}
	}
}

func readPolygons(in *os.File) []polygeom.Polygon {
	polygons := []polygeom.Polygon{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	points := []polygeom.Point{}
	flush := func() {
		if len(points) == 0 {
			return
		}
		poly, err := polygeom.NewPolygon(points...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping polygon: %v\n", err)
		} else {
			polygons = append(polygons, poly)
		}
		points = []polygeom.Point{}
	}
	for scanner.Scan() {
		// Read the next line
		line := scanner.Text()

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			flush()
			continue
		}

		// Parse the point out of the line
		parts := strings.Fields(line)
		if len(parts) != 2 {
			kingpin.Fatalf("invalid point line %q", line)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			kingpin.Fatalf("invalid x value %q: %v", parts[0], err)
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			kingpin.Fatalf("invalid y value %q: %v", parts[1], err)
		}
		points = append(points, polygeom.Point{X: x, Y: y})
	}

	// Handle trailing polygon if any
	flush()
	return polygons
}

func parsePoint(s string) (polygeom.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return polygeom.Point{}, fmt.Errorf("want \"x,y\"")
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return polygeom.Point{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return polygeom.Point{}, err
	}
	return polygeom.Point{X: x, Y: y}, nil
}
