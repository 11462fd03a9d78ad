// Package script parses and runs rover mission scripts.
//
// A script sets up a planet and a rover, then drives the rover and checks
// where it ends up:
//
//	// 5x5 wrapping planet with one boulder
//	planet 5 x 5 wrap
//	obstacle 2 0
//	rover 0 0 facing N
//
//	move "ff"
//	turn "r"
//	exec "frf"
//	expect 1 1 S
//
// A grid block can replace the planet and obstacle statements; rows are
// listed north-up and 'o' marks an obstacle:
//
//	grid bounded {
//	  "..o"
//	  "..."
//	  "o.."
//	}
//
// Setup statements (planet, grid, obstacle, rover) must come before the
// first command.
package script
