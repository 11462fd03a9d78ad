package engine

import (
	"errors"
	"testing"
)

func TestNewPlanetBounds(t *testing.T) {
	planet, err := NewPlanet(3, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"origin", 0, 0, true},
		{"top row", 0, 3, true},
		{"past top", 0, 4, false},
		{"negative x", -1, 0, false},
		{"past right", 3, 0, false},
		{"far corner", 2, 3, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := planet.InBounds(test.x, test.y); got != test.want {
				t.Errorf("InBounds(%d, %d): expected %v, got %v", test.x, test.y, test.want, got)
			}
		})
	}
}

func TestNewPlanetObstacles(t *testing.T) {
	planet, err := NewPlanet(3, 4, Position{X: 0, Y: 0}, Position{X: 2, Y: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !planet.HasObstacle(0, 0) || !planet.HasObstacle(2, 3) {
		t.Error("expected configured obstacles to be reported")
	}
	if planet.HasObstacle(1, 1) || planet.HasObstacle(2, 2) {
		t.Error("expected free cells to be free")
	}
	if planet.ObstacleCount() != 2 {
		t.Errorf("expected 2 obstacles, got %d", planet.ObstacleCount())
	}
	if planet.GridBacked() {
		t.Error("set-backed planet reported as grid-backed")
	}
}

func TestSetBackedObstacleOutsideBounds(t *testing.T) {
	planet, err := NewPlanet(3, 3, Position{X: 5, Y: -1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !planet.HasObstacle(5, -1) {
		t.Error("set-backed membership should be exact, independent of bounds")
	}
}

func TestNewPlanetInvalidSize(t *testing.T) {
	for _, size := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		if _, err := NewPlanet(size[0], size[1]); !errors.Is(err, ErrInvalidPlanetSize) {
			t.Errorf("NewPlanet(%d, %d): expected ErrInvalidPlanetSize, got %v", size[0], size[1], err)
		}
	}
}

func TestNewPlanetFromGrid(t *testing.T) {
	planet, err := NewPlanetFromGrid([]string{
		"..o",
		"...",
		"o..",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if planet.SizeX() != 3 || planet.SizeY() != 3 {
		t.Fatalf("expected 3x3, got %dx%d", planet.SizeX(), planet.SizeY())
	}
	if !planet.GridBacked() {
		t.Error("expected grid-backed planet")
	}

	tests := []struct {
		x, y int
		want bool
	}{
		{2, 2, true},
		{0, 0, true},
		{0, 2, false},
		{2, 0, false},
		{1, 1, false},
		{-1, 0, false},
		{3, 3, false},
	}
	for _, test := range tests {
		if got := planet.HasObstacle(test.x, test.y); got != test.want {
			t.Errorf("HasObstacle(%d, %d): expected %v, got %v", test.x, test.y, test.want, got)
		}
		if got := planet.HasObstacleAt(Position{X: test.x, Y: test.y}); got != test.want {
			t.Errorf("HasObstacleAt(%d, %d): expected %v, got %v", test.x, test.y, test.want, got)
		}
	}

	obstacles := planet.Obstacles()
	if len(obstacles) != 2 || obstacles[0] != (Position{X: 0, Y: 0}) || obstacles[1] != (Position{X: 2, Y: 2}) {
		t.Errorf("unexpected obstacle list: %v", obstacles)
	}
}

func TestNewPlanetFromGridInvalid(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"nil", nil},
		{"empty row", []string{""}},
		{"ragged", []string{"...", ".."}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := NewPlanetFromGrid(test.rows); !errors.Is(err, ErrInvalidGrid) {
				t.Errorf("expected ErrInvalidGrid, got %v", err)
			}
		})
	}
}

func TestCellAt(t *testing.T) {
	grid, _ := NewPlanetFromGrid([]string{"#o", ".."})
	if c := grid.CellAt(0, 1); c != '#' {
		t.Errorf("expected raw grid char '#', got %q", c)
	}
	if c := grid.CellAt(1, 1); c != ObstacleMarker {
		t.Errorf("expected obstacle marker, got %q", c)
	}
	if c := grid.CellAt(5, 5); c != ' ' {
		t.Errorf("expected blank outside bounds, got %q", c)
	}

	set, _ := NewPlanet(2, 2, Position{X: 1, Y: 0})
	if c := set.CellAt(1, 0); c != ObstacleMarker {
		t.Errorf("expected obstacle marker, got %q", c)
	}
	if c := set.CellAt(0, 0); c != '.' {
		t.Errorf("expected free cell, got %q", c)
	}
}
