// Package render draws planets and command outcomes for terminals and clients.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/wricardo/mcp-training/marsrover/rover/engine"
)

var (
	obstacleColor = color.New(color.FgRed, color.Bold)
	roverColor    = color.New(color.FgGreen, color.Bold)
	freeColor     = color.New(color.FgHiBlack)
	footerColor   = color.New(color.FgYellow)

	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
)

var roverGlyphs = map[engine.Orientation]byte{
	engine.North: '^',
	engine.East:  '>',
	engine.South: 'v',
	engine.West:  '<',
}

// Glyph returns the character used to draw a rover facing o
func Glyph(o engine.Orientation) byte {
	if g, ok := roverGlyphs[o]; ok {
		return g
	}
	return '?'
}

// Grid draws the planet north-up, one string per row, with the rover drawn
// as an arrow. A rover outside the planet is reported in an extra footer row.
func Grid(planet *engine.Planet, pose engine.Pose) []string {
	lines := make([]string, 0, planet.SizeY()+1)
	for y := planet.SizeY() - 1; y >= 0; y-- {
		row := make([]byte, planet.SizeX())
		for x := 0; x < planet.SizeX(); x++ {
			row[x] = planet.CellAt(x, y)
			if pose.Position.X == x && pose.Position.Y == y {
				row[x] = Glyph(pose.Orientation)
			}
		}
		lines = append(lines, string(row))
	}

	if !planet.InBounds(pose.Position.X, pose.Position.Y) {
		lines = append(lines, fmt.Sprintf("rover off planet at %s facing %s", pose.Position, pose.Orientation))
	}
	return lines
}

// ColorGrid draws the planet like Grid and colors each cell by what occupies
// it: the rover's cell, obstacle cells and free cells.
func ColorGrid(planet *engine.Planet, pose engine.Pose) string {
	lines := Grid(planet, pose)
	rows := planet.SizeY()

	var b strings.Builder
	for i, line := range lines {
		if i >= rows {
			b.WriteString(footerColor.Sprint(line))
			b.WriteByte('\n')
			continue
		}
		y := rows - 1 - i
		for x := 0; x < len(line); x++ {
			c := line[x]
			switch {
			case pose.Position == (engine.Position{X: x, Y: y}):
				b.WriteString(roverColor.Sprintf("%c", c))
			case planet.HasObstacle(x, y):
				b.WriteString(obstacleColor.Sprintf("%c", c))
			default:
				b.WriteString(freeColor.Sprintf("%c", c))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Describe returns a one-line summary of a command outcome
func Describe(out engine.Outcome) string {
	pose := out.Pose
	switch out.Status {
	case engine.StoppedAtObstacle, engine.StoppedAtBoundary:
		reason := "obstacle"
		if out.Status == engine.StoppedAtBoundary {
			reason = "planet edge"
		}
		return fmt.Sprintf("%s %d/%d: %s at %s, rover at %s facing %s",
			out.Kind, out.Applied, out.Requested, reason, out.BlockedAt, pose.Position, pose.Orientation)
	case engine.Rejected:
		return fmt.Sprintf("%s %d/%d: rejected %q, rover at %s facing %s",
			out.Kind, out.Applied, out.Requested, out.Unapplied.String(), pose.Position, pose.Orientation)
	default:
		return fmt.Sprintf("%s %d/%d: rover at %s facing %s",
			out.Kind, out.Applied, out.Requested, pose.Position, pose.Orientation)
	}
}

// PrintOutcome writes Describe(out) in the color of its status
func PrintOutcome(w io.Writer, out engine.Outcome) {
	c := successColor
	switch out.Status {
	case engine.StoppedAtObstacle, engine.StoppedAtBoundary:
		c = warningColor
	case engine.Rejected:
		c = errorColor
	}
	_, _ = c.Fprintln(w, Describe(out))
}
