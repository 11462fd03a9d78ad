package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/wricardo/mcp-training/marsrover/rover/engine"
	"github.com/wricardo/mcp-training/marsrover/rover/service"
)

var (
	ErrConfigNotFound = service.ErrConfigNotFound
	ErrInvalidConfig  = engine.ErrInvalidConfig
)

// DefaultConfigID is preferred as the default mission when present
const DefaultConfigID = "classic"

// Manager handles mission configuration loading and caching
type Manager struct {
	configDir     string
	defaultConfig *engine.MissionConfig
	configs       map[string]*engine.MissionConfig
	mu            sync.RWMutex
}

// NewManager creates a new configuration manager
func NewManager(configDir string) (*Manager, error) {
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("config directory does not exist: %s", configDir)
	}

	m := &Manager{
		configDir: configDir,
		configs:   make(map[string]*engine.MissionConfig),
	}

	m.loadDefaultConfig()
	return m, nil
}

// LoadConfig loads a configuration by ID. The ID may carry its extension;
// otherwise .json, .yaml and .yml are tried in that order.
func (m *Manager) LoadConfig(name string) (*engine.MissionConfig, error) {
	id := configID(name)

	m.mu.RLock()
	if config, exists := m.configs[id]; exists {
		m.mu.RUnlock()
		return config, nil
	}
	m.mu.RUnlock()

	path, err := m.resolve(name)
	if err != nil {
		return nil, err
	}

	config, err := ValidateFile(path)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if cached, exists := m.configs[id]; exists {
		return cached, nil
	}
	m.configs[id] = config
	return config, nil
}

// resolve maps a config ID to a file in the config directory
func (m *Manager) resolve(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", fmt.Errorf("%w: %q", ErrConfigNotFound, name)
	}

	if _, ok := FormatFor(name); ok {
		path := filepath.Join(m.configDir, name)
		if !fileExists(path) {
			return "", ErrConfigNotFound
		}
		return path, nil
	}

	for _, ext := range extensions {
		path := filepath.Join(m.configDir, name+ext)
		if fileExists(path) {
			return path, nil
		}
	}
	return "", ErrConfigNotFound
}

// ListConfigs returns information about all valid configurations. A config ID
// present in several formats is listed once, using the file LoadConfig picks.
func (m *Manager) ListConfigs() ([]*service.ConfigInfo, error) {
	entries, err := os.ReadDir(m.configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	seen := make(map[string]bool)
	var configs []*service.ConfigInfo

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		format, ok := FormatFor(entry.Name())
		if !ok {
			continue
		}

		id := configID(entry.Name())
		if seen[id] {
			continue
		}
		if path, err := m.resolve(id); err != nil || filepath.Base(path) != entry.Name() {
			continue
		}

		config, err := m.LoadConfig(id)
		if err != nil {
			// Skip invalid configs
			continue
		}
		seen[id] = true

		planet, err := engine.BuildPlanet(config)
		if err != nil {
			continue
		}
		edge, _ := engine.ParseEdgePolicy(config.Planet.Edge)

		configs = append(configs, &service.ConfigInfo{
			Filename:    entry.Name(),
			ConfigID:    id,
			Name:        config.Name,
			Description: config.Description,
			Width:       planet.SizeX(),
			Height:      planet.SizeY(),
			Edge:        string(edge),
			Obstacles:   planet.ObstacleCount(),
			Format:      string(format),
		})
	}

	return configs, nil
}

// GetDefault returns the default configuration
func (m *Manager) GetDefault() *engine.MissionConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultConfig
}

// SetDefault sets the default configuration by ID
func (m *Manager) SetDefault(name string) error {
	config, err := m.LoadConfig(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultConfig = config
	return nil
}

// RefreshCache drops cached configurations and reloads the default from disk
func (m *Manager) RefreshCache() {
	m.mu.Lock()
	m.configs = make(map[string]*engine.MissionConfig)
	m.mu.Unlock()

	m.loadDefaultConfig()
}

// loadDefaultConfig picks classic, then the first valid file, then the
// built-in mission
func (m *Manager) loadDefaultConfig() {
	config, err := m.LoadConfig(DefaultConfigID)
	if err != nil {
		config = engine.DefaultMissionConfig()
		if configs, listErr := m.ListConfigs(); listErr == nil && len(configs) > 0 {
			if first, loadErr := m.LoadConfig(configs[0].ConfigID); loadErr == nil {
				config = first
			}
		}
	}

	m.mu.Lock()
	m.defaultConfig = config
	m.mu.Unlock()
}

// SaveConfig validates and writes a configuration. The extension of name
// selects the format; without one the config is written as JSON. The encoded
// document goes through the same checks as LoadConfig, so anything saved can
// be loaded again.
func (m *Manager) SaveConfig(name string, config *engine.MissionConfig) error {
	if config == nil {
		return fmt.Errorf("%w: config is required", ErrInvalidConfig)
	}
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return fmt.Errorf("invalid config name %q", name)
	}

	filename := name
	format, ok := FormatFor(name)
	if !ok {
		format = FormatJSON
		filename = name + ".json"
	}

	data, err := EncodeConfig(config, format)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	parsed, err := ParseConfig(data, format)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(m.configDir, filename), data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	m.mu.Lock()
	m.configs[configID(name)] = parsed
	m.mu.Unlock()

	return nil
}

// configID strips a known extension from a file name
func configID(name string) string {
	if _, ok := FormatFor(name); ok {
		return strings.TrimSuffix(name, filepath.Ext(name))
	}
	return name
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
