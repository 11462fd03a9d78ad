package engine

import (
	"fmt"
	"sort"
)

// ObstacleMarker is the grid character that denotes an impassable cell
const ObstacleMarker = 'o'

// Planet is the read-only world a rover drives on. It is backed either by an
// explicit obstacle set or by a literal character grid.
type Planet struct {
	sizeX     int
	sizeY     int
	obstacles map[Position]struct{}
	// cells is indexed [y][x]; nil for set-backed planets
	cells [][]byte
}

// NewPlanet creates a planet with an explicit obstacle set. Obstacles outside
// the planet bounds are kept and still match HasObstacle exactly.
func NewPlanet(sizeX, sizeY int, obstacles ...Position) (*Planet, error) {
	if sizeX <= 0 || sizeY <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidPlanetSize, sizeX, sizeY)
	}

	set := make(map[Position]struct{}, len(obstacles))
	for _, obs := range obstacles {
		set[obs] = struct{}{}
	}

	return &Planet{
		sizeX:     sizeX,
		sizeY:     sizeY,
		obstacles: set,
	}, nil
}

// NewPlanetFromGrid creates a planet from rows of single-character cells.
// Rows are listed north-up: rows[0] is the northern edge (y = len(rows)-1).
// Cells equal to ObstacleMarker are obstacles, anything else is free.
func NewPlanetFromGrid(rows []string) (*Planet, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: grid is empty", ErrInvalidGrid)
	}

	sizeY := len(rows)
	sizeX := len(rows[0])
	cells := make([][]byte, sizeY)
	set := make(map[Position]struct{})

	for i, row := range rows {
		if len(row) != sizeX {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidGrid, i+1, len(row), sizeX)
		}
		y := sizeY - 1 - i
		cells[y] = []byte(row)
		for x := 0; x < sizeX; x++ {
			if row[x] == ObstacleMarker {
				set[Position{X: x, Y: y}] = struct{}{}
			}
		}
	}

	return &Planet{
		sizeX:     sizeX,
		sizeY:     sizeY,
		obstacles: set,
		cells:     cells,
	}, nil
}

// SizeX returns the planet width
func (p *Planet) SizeX() int {
	return p.sizeX
}

// SizeY returns the planet height
func (p *Planet) SizeY() int {
	return p.sizeY
}

// GridBacked reports whether the planet was built from a literal grid
func (p *Planet) GridBacked() bool {
	return p.cells != nil
}

// InBounds reports whether (x, y) lies on the planet
func (p *Planet) InBounds(x, y int) bool {
	return 0 <= x && x < p.sizeX && 0 <= y && y < p.sizeY
}

// HasObstacle reports whether (x, y) is impassable. Grid-backed planets never
// report obstacles outside their bounds; set-backed planets match exactly.
func (p *Planet) HasObstacle(x, y int) bool {
	if p.cells != nil {
		if !p.InBounds(x, y) {
			return false
		}
		return p.cells[y][x] == ObstacleMarker
	}
	_, blocked := p.obstacles[Position{X: x, Y: y}]
	return blocked
}

// HasObstacleAt is HasObstacle for a Position
func (p *Planet) HasObstacleAt(pos Position) bool {
	return p.HasObstacle(pos.X, pos.Y)
}

// Obstacles returns every obstacle sorted by y then x
func (p *Planet) Obstacles() []Position {
	result := make([]Position, 0, len(p.obstacles))
	for pos := range p.obstacles {
		result = append(result, pos)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Y != result[j].Y {
			return result[i].Y < result[j].Y
		}
		return result[i].X < result[j].X
	})
	return result
}

// ObstacleCount returns the number of obstacles
func (p *Planet) ObstacleCount() int {
	return len(p.obstacles)
}

// CellAt returns the raw grid character at (x, y). Set-backed planets report
// ObstacleMarker or '.'; out-of-bounds cells report ' '.
func (p *Planet) CellAt(x, y int) byte {
	if !p.InBounds(x, y) {
		return ' '
	}
	if p.cells != nil {
		return p.cells[y][x]
	}
	if p.HasObstacle(x, y) {
		return ObstacleMarker
	}
	return '.'
}
