package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/wricardo/mcp-training/marsrover/rover/engine"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a mission file
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Extensions tried, in order, when resolving a config ID to a file
var extensions = []string{".json", ".yaml", ".yml"}

//go:embed mission.schema.json
var missionSchemaSource string

var missionSchema = jsonschema.MustCompileString("mission.schema.json", missionSchemaSource)

// FormatFor returns the format implied by a file name's extension
func FormatFor(filename string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	}
	return "", false
}

// ParseConfig decodes a mission document, checks it against the mission
// schema and validates it.
func ParseConfig(data []byte, format Format) (*engine.MissionConfig, error) {
	doc, err := normalize(data, format)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	var value any
	if err := json.Unmarshal(doc, &value); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := missionSchema.Validate(value); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	var config engine.MissionConfig
	if err := json.Unmarshal(doc, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := engine.ValidateMissionConfig(&config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return &config, nil
}

// ValidateFile parses and validates a single mission file
func ValidateFile(path string) (*engine.MissionConfig, error) {
	format, ok := FormatFor(path)
	if !ok {
		return nil, fmt.Errorf("%s: unsupported config extension %q", path, filepath.Ext(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data, format)
}

// EncodeConfig renders a mission in the given format
func EncodeConfig(config *engine.MissionConfig, format Format) ([]byte, error) {
	if format == FormatYAML {
		return yaml.Marshal(config)
	}
	return json.MarshalIndent(config, "", "  ")
}

// normalize turns a document of either format into JSON bytes
func normalize(data []byte, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("failed to parse json: %w", err)
		}
		return data, nil
	case FormatYAML:
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
		if v == nil {
			return nil, fmt.Errorf("empty yaml document")
		}
		return json.Marshal(v)
	}
	return nil, fmt.Errorf("unknown format %q", format)
}
