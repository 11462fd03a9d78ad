// Package validate checks mission configuration files and reports
// heuristics about them. Beyond schema and semantic validation it flood
// fills the planet from the rover's landing cell, using the mission's edge
// policy, and reports free cells the rover can never reach.
package validate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wricardo/mcp-training/marsrover/rover/config"
	"github.com/wricardo/mcp-training/marsrover/rover/engine"
)

// ValidationResult captures the outcome of validating a single file.
// Errors holds what made the file invalid; Info holds the summary lines of
// a valid file.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
	Info   []string
}

// Reachability is the flood fill result for a planet
type Reachability struct {
	Free        int
	Reachable   int
	Unreachable []engine.Position
}

// ValidateConfig loads and validates a single configuration file
func ValidateConfig(path string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(path),
		Valid:  true,
		Errors: []string{},
	}

	mission, err := config.ValidateFile(path)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	planet, err := engine.BuildPlanet(mission)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	edge, _ := engine.ParseEdgePolicy(mission.Planet.Edge)

	inBounds := 0
	for y := 0; y < planet.SizeY(); y++ {
		for x := 0; x < planet.SizeX(); x++ {
			if planet.HasObstacle(x, y) {
				inBounds++
			}
		}
	}
	cells := planet.SizeX() * planet.SizeY()

	result.Info = append(result.Info,
		fmt.Sprintf("✓ Name: %s", mission.Name),
		fmt.Sprintf("✓ Planet: %dx%d (%s)", planet.SizeX(), planet.SizeY(), edge),
		fmt.Sprintf("✓ Obstacles: %d (%.0f%% of the planet)", inBounds, 100*float64(inBounds)/float64(cells)),
		fmt.Sprintf("✓ Rover: (%d, %d) facing %s", mission.Rover.X, mission.Rover.Y, mission.Rover.Orientation),
	)

	start := engine.Position{X: mission.Rover.X, Y: mission.Rover.Y}
	reach := CheckReachability(planet, edge, start)
	if len(reach.Unreachable) == 0 {
		result.Info = append(result.Info, fmt.Sprintf("✓ Reachability: all %d free cells reachable from the landing cell", reach.Free))
	} else {
		result.Info = append(result.Info, fmt.Sprintf("⚠️  Reachability: %d/%d free cells unreachable from the landing cell", len(reach.Unreachable), reach.Free))
		for i, p := range reach.Unreachable {
			if i == 5 {
				result.Info = append(result.Info, fmt.Sprintf("   ... and %d more", len(reach.Unreachable)-5))
				break
			}
			result.Info = append(result.Info, fmt.Sprintf("   Unreachable: %s", p))
		}
	}

	return result
}

// CheckReachability flood fills free cells from start with 4-directional
// steps. Wrapping planets connect opposite edges. On open planets the fill
// may leave the nominal rectangle, bounded by a one-cell margin around the
// rectangle and every obstacle.
func CheckReachability(planet *engine.Planet, edge engine.EdgePolicy, start engine.Position) Reachability {
	width, height := planet.SizeX(), planet.SizeY()

	inside := planet.InBounds
	if edge == engine.EdgeOpen {
		minX, minY, maxX, maxY := 0, 0, width-1, height-1
		for _, o := range planet.Obstacles() {
			minX, maxX = min(minX, o.X), max(maxX, o.X)
			minY, maxY = min(minY, o.Y), max(maxY, o.Y)
		}
		inside = func(x, y int) bool {
			return x >= minX-1 && x <= maxX+1 && y >= minY-1 && y <= maxY+1
		}
	}

	var reach Reachability
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !planet.HasObstacle(x, y) {
				reach.Free++
			}
		}
	}

	visited := make(map[engine.Position]bool)
	queue := []engine.Position{start}
	visited[start] = true

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, o := range []engine.Orientation{engine.North, engine.East, engine.South, engine.West} {
			d, _ := engine.ForwardDelta(o)
			next := engine.Position{X: current.X + d.DX, Y: current.Y + d.DY}
			if edge == engine.EdgeWrap {
				next.X = engine.FloorMod(next.X, width)
				next.Y = engine.FloorMod(next.Y, height)
			}
			if !inside(next.X, next.Y) || planet.HasObstacleAt(next) || visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := engine.Position{X: x, Y: y}
			if !planet.HasObstacle(x, y) && !visited[p] {
				reach.Unreachable = append(reach.Unreachable, p)
			}
		}
	}
	reach.Reachable = reach.Free - len(reach.Unreachable)
	return reach
}

// ConfigFiles lists the mission files in dir in name order
func ConfigFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := config.FormatFor(entry.Name()); ok {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// Report prints a concise report for results and returns whether all of
// them are valid.
func Report(w io.Writer, results []ValidationResult) bool {
	allValid := true
	for _, result := range results {
		fmt.Fprintf(w, "\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Fprintln(w, "✅ VALID")
			for _, info := range result.Info {
				fmt.Fprintln(w, "  "+info)
			}
		} else {
			fmt.Fprintln(w, "❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				fmt.Fprintln(w, "  ❌ "+err)
			}
		}
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Fprintln(w, "✅ All configurations are valid!")
	} else {
		fmt.Fprintln(w, "❌ Some configurations have errors")
	}
	return allValid
}
