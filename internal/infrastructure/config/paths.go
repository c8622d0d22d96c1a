package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	appDirName = ".weaver"

	// SettingsFileName is the TOML preferences file under the data root.
	SettingsFileName = "settings.toml"
	// ProfileConfigFileName is the INI file recording the profile identifier.
	ProfileConfigFileName = "config.ini"
	// SchemaFileName is written next to the settings file.
	SchemaFileName = "settings.schema.json"
	// LogDirName holds file logs under the data root.
	LogDirName = "logs"

	envDataDir = "WEAVER_DATA_DIR"
)

// GetDataRoot returns the data root: WEAVER_DATA_DIR when set, otherwise ~/.weaver.
func GetDataRoot() (string, error) {
	if dir := strings.TrimSpace(os.Getenv(envDataDir)); dir != "" {
		return filepath.Clean(dir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, appDirName), nil
}

// SettingsFile returns the settings path under root.
func SettingsFile(root string) string {
	return filepath.Join(root, SettingsFileName)
}

// ProfileConfigFile returns the profile INI path under root.
func ProfileConfigFile(root string) string {
	return filepath.Join(root, ProfileConfigFileName)
}

// LogDir returns the log directory under root.
func LogDir(root string) string {
	return filepath.Join(root, LogDirName)
}

// EnsureDirectories creates the data root.
func EnsureDirectories(root string) error {
	if err := os.MkdirAll(root, dirPerm); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", root, err)
	}
	return nil
}
