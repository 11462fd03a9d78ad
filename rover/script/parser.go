package script

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type Mission struct {
	Statements []*Statement `parser:"@@*"`
}

type Statement struct {
	Pos lexer.Position

	Planet   *PlanetStmt   `parser:"  @@"`
	Grid     *GridStmt     `parser:"| @@"`
	Obstacle *ObstacleStmt `parser:"| @@"`
	Rover    *RoverStmt    `parser:"| @@"`
	Command  *CommandStmt  `parser:"| @@"`
	Expect   *ExpectStmt   `parser:"| @@"`
}

type PlanetStmt struct {
	Width  int    `parser:"'planet' @Int 'x'"`
	Height int    `parser:"@Int"`
	Edge   string `parser:"@('wrap'|'open'|'bounded')?"`
}

type GridStmt struct {
	Edge string   `parser:"'grid' @('wrap'|'open'|'bounded')?"`
	Rows []string `parser:"'{' @String* '}'"`
}

type ObstacleStmt struct {
	X int `parser:"'obstacle' @('-'? Int)"`
	Y int `parser:"@('-'? Int)"`
}

type RoverStmt struct {
	X           int    `parser:"'rover' @Int"`
	Y           int    `parser:"@Int"`
	Orientation string `parser:"'facing' @('N'|'E'|'S'|'W')"`
}

type CommandStmt struct {
	Verb     string `parser:"@('move'|'turn'|'exec')"`
	Commands string `parser:"@String"`
}

type ExpectStmt struct {
	X           int    `parser:"'expect' @('-'? Int)"`
	Y           int    `parser:"@('-'? Int)"`
	Orientation string `parser:"@('N'|'E'|'S'|'W')"`
}

var parser = participle.MustBuild[Mission](participle.Unquote("String"))

// Parse parses a mission script
func Parse(src string) (*Mission, error) {
	return ParseNamed("mission", src)
}

// ParseNamed parses a mission script, reporting positions against filename
func ParseNamed(filename, src string) (*Mission, error) {
	mission, err := parser.ParseString(filename, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	if err := mission.check(); err != nil {
		return nil, err
	}
	return mission, nil
}

func (s *Statement) setup() bool {
	return s.Planet != nil || s.Grid != nil || s.Obstacle != nil || s.Rover != nil
}

// check enforces the statement ordering rules the grammar cannot express
func (m *Mission) check() error {
	var planets, rovers int
	commands := false
	for _, stmt := range m.Statements {
		if stmt.setup() && commands {
			return fmt.Errorf("line %d: setup statement after the first command", stmt.Pos.Line)
		}
		switch {
		case stmt.Planet != nil, stmt.Grid != nil:
			planets++
		case stmt.Rover != nil:
			rovers++
		case stmt.Command != nil, stmt.Expect != nil:
			commands = true
		}
	}

	if planets != 1 {
		return fmt.Errorf("mission needs exactly one planet or grid statement, got %d", planets)
	}
	if rovers != 1 {
		return fmt.Errorf("mission needs exactly one rover statement, got %d", rovers)
	}
	return nil
}
