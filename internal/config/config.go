// Package config stores user preferences in small JSON files. Keys are
// "section.name" strings; each section is a top-level object in the file.
// Preferences that follow the user (output format) live in the global file,
// preferences tied to a directory tree (ignore handling) live next to it.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// Known keys.
const (
	KeyOutputJSON    = "output.json"
	KeyRespectIgnore = "stat.respect_ignore"
)

// ProjectFile is the name of the per-directory config file.
const ProjectFile = ".filesize"

type sections map[string]map[string]string

// Config merges the global and project files. Each key is stored in exactly
// one of them, decided by globalKeys.
type Config struct {
	globalPath  string
	projectPath string
	global      sections
	project     sections
}

var globalKeys = map[string]bool{
	KeyOutputJSON: true,
}

// New loads the global config and, if projectDir is not empty, the project
// config in projectDir. Missing files are treated as empty.
func New(projectDir string) (*Config, error) {
	globalDir, err := GlobalDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine global config path: %w", err)
	}

	c := &Config{
		globalPath: filepath.Join(globalDir, "config.json"),
		global:     sections{},
		project:    sections{},
	}

	if err := load(c.globalPath, c.global); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load global config: %w", err)
	}

	if projectDir != "" {
		c.projectPath = filepath.Join(projectDir, ProjectFile)
		if err := load(c.projectPath, c.project); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load project config: %w", err)
		}
	}

	return c, nil
}

// IsGlobalKey reports whether key is stored in the global file.
func IsGlobalKey(key string) bool {
	return globalKeys[key]
}

// Has checks if a key is set.
func (c *Config) Has(key string) bool {
	section, name := splitKey(key)
	_, ok := c.store(key)[section][name]
	return ok
}

// Get returns the value of key, or "" if unset.
func (c *Config) Get(key string) string {
	section, name := splitKey(key)
	return c.store(key)[section][name]
}

// Bool returns key parsed as a boolean, or def if it is unset or malformed.
func (c *Config) Bool(key string, def bool) bool {
	if !c.Has(key) {
		return def
	}
	v, err := strconv.ParseBool(c.Get(key))
	if err != nil {
		return def
	}
	return v
}

// Set stores a value and persists the file that owns key.
func (c *Config) Set(key, value string) error {
	section, name := splitKey(key)
	store := c.store(key)
	if _, ok := store[section]; !ok {
		store[section] = map[string]string{}
	}
	store[section][name] = value
	return c.save(key)
}

// Delete removes a value and persists the file that owns key.
func (c *Config) Delete(key string) error {
	section, name := splitKey(key)
	store := c.store(key)
	if data, ok := store[section]; ok {
		delete(data, name)
		if len(data) == 0 {
			delete(store, section)
		}
	}
	return c.save(key)
}

// Keys returns every key set in either file.
func (c *Config) Keys() []string {
	var keys []string
	for _, store := range []sections{c.global, c.project} {
		for section, data := range store {
			for name := range data {
				keys = append(keys, section+"."+name)
			}
		}
	}
	return keys
}

// MARK: Internal helper functions

func (c *Config) store(key string) sections {
	if globalKeys[key] {
		return c.global
	}
	return c.project
}

func (c *Config) save(key string) error {
	if globalKeys[key] {
		return save(c.globalPath, c.global)
	}
	if c.projectPath == "" {
		return fmt.Errorf("no project directory for key %s", key)
	}
	return save(c.projectPath, c.project)
}

func splitKey(key string) (section, name string) {
	parts := strings.SplitN(key, ".", 2)
	if len(parts) != 2 {
		return "", key
	}
	return parts[0], parts[1]
}

func load(path string, data sections) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(content, &data)
}

func save(path string, data sections) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GlobalDir returns the directory holding the global config file.
func GlobalDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			return "", fmt.Errorf("APPDATA environment variable not set")
		}

	default:
		// Check XDG_CONFIG_HOME first
		if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
			configDir = xdgHome
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, "filesize"), nil
}
