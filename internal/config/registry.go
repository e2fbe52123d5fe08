package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/muurk/modalctl/internal/focustrap"
)

const (
	appName    = "modalctl"
	configFile = "config.yaml"
)

// Mutex for thread-safe file operations
var fileMutex sync.Mutex

// GetConfigDir returns the OS-appropriate configuration directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/modalctl or $HOME/.config/modalctl
//   - macOS: $HOME/.config/modalctl (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\modalctl
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetConfigPath returns the full path to the configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// resolvePath returns path, or the default config path when path is empty.
func resolvePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	return GetConfigPath()
}

// Load reads the configuration file at path (the default path if empty).
// A missing file yields a new default File.
func Load(path string) (*File, error) {
	configPath, err := resolvePath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	fileMutex.Lock()
	defer fileMutex.Unlock()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return NewFile(), nil
	}
	return loadFromFile(configPath)
}

// loadFromFile performs the actual file loading.
func loadFromFile(configPath string) (*File, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if f.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported config version: %d (expected %d)", f.Version, CurrentVersion)
	}

	if f.Defaults == nil {
		f.Defaults = &ModalPrefs{}
	}
	if f.Mounts == nil {
		f.Mounts = make(map[string]*ModalPrefs)
	}

	return &f, nil
}

// marshalFile renders f as YAML with a header comment.
func marshalFile(f *File, configPath string) ([]byte, error) {
	data, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# modalctl configuration file
# "defaults" applies to every modal; "mounts" overrides it per mount id.
#
# Location: ` + configPath + `

`)
	return append(header, data...), nil
}

// Save writes f to path (the default path if empty).
// Performs an atomic write to prevent corruption on crash.
func (f *File) Save(path string) error {
	configPath, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := os.MkdirAll(filepath.Dir(configPath), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := marshalFile(f, configPath)
	if err != nil {
		return err
	}

	// Write to temporary file first (atomic write)
	tmpPath := configPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, configPath); err != nil {
		// Clean up temp file on error
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}

// Exists reports whether a config file is present at path (the default
// path if empty).
func Exists(path string) bool {
	configPath, err := resolvePath(path)
	if err != nil {
		return false
	}
	_, err = os.Stat(configPath)
	return err == nil
}

// CreateDefaultConfig writes a configuration file with example data to
// path (the default path if empty).
func CreateDefaultConfig(path string) (*File, error) {
	f := NewFile()
	f.Defaults.PreventScroll = Bool(true)

	confirm := f.EnsureMount("confirm")
	confirm.FocusTrap = &focustrap.Options{
		Focusables:   []string{"confirm", "cancel"},
		InitialFocus: "cancel",
	}

	if err := f.Save(path); err != nil {
		return nil, err
	}
	return f, nil
}
