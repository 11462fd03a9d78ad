// Package config loads mission definitions for the rover server.
//
// Missions live as JSON or YAML files in a single directory. The file name
// without its extension is the config ID used when creating sessions:
//
//	configs/
//	  classic.yaml
//	  canyon.json
//	  crater.yml
//
// A mission names the planet (either width/height plus obstacles, or a
// north-up grid where 'o' marks an obstacle), the edge policy, the rover's
// landing pose and optional messages:
//
//	name: Classic
//	planet:
//	  width: 3
//	  height: 3
//	  edge: wrap
//	  obstacles:
//	    - {x: 1, y: 2}
//	rover: {x: 0, y: 0, orientation: N}
//
// Every document is checked against an embedded JSON Schema before the
// semantic checks in engine.ValidateMissionConfig run.
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//	mission, err := manager.LoadConfig("classic")
package config
