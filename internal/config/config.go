package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration
type Config struct {
	DefaultCollection string        `toml:"default_collection"`
	Artwork           ArtworkConfig `toml:"artwork"`
}

// ArtworkConfig controls how card art is rendered in the terminal.
type ArtworkConfig struct {
	Height int  `toml:"height"` // Art height in terminal rows
	Color  bool `toml:"color"`  // 24-bit color output
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetXDGCacheHome returns XDG_CACHE_HOME or default path
func GetXDGCacheHome() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return xdgCache
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".cache")
}

// GetCollectionLibraryPath returns the path to the collection library
func GetCollectionLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "manaview", "collections")
}

// GetArtworkCacheDir returns the directory for cached ANSI artwork
func GetArtworkCacheDir() string {
	return filepath.Join(GetXDGCacheHome(), "manaview", "artwork")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "manaview", "config.toml")
}

// LoadConfig loads the config file, creating a default one when absent.
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	var config Config
	md, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	applyDefaults(&config, md)
	return &config, nil
}

// applyDefaults fills in settings a hand-written config left out. Color
// defaults on only when the key is absent; an explicit false is kept.
func applyDefaults(config *Config, md toml.MetaData) {
	if config.Artwork.Height <= 0 {
		config.Artwork.Height = 16
	}
	if !md.IsDefined("artwork", "color") {
		config.Artwork.Color = true
	}
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	configPath := GetConfigFilePath()
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %v", err)
	}

	config := &Config{
		DefaultCollection: "starter",
		Artwork: ArtworkConfig{
			Height: 16,
			Color:  true,
		},
	}

	file, err := os.Create(configPath)
	if err != nil {
		return nil, fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return nil, fmt.Errorf("error encoding config: %v", err)
	}

	return config, nil
}

// GetCollectionPath returns the path to a collection file, either in the
// collection library or as a direct path.
func GetCollectionPath(name string) (string, error) {
	libraryPath := GetCollectionLibraryPath()
	for _, candidate := range []string{
		filepath.Join(libraryPath, name+".toml"),
		filepath.Join(libraryPath, name),
		name,
	} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("collection not found: %s", name)
}

// GetDefaultCollection returns the default collection name from config
func GetDefaultCollection() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}

	return config.DefaultCollection, nil
}

// SetDefaultCollection sets the default collection in the config
func SetDefaultCollection(name string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.DefaultCollection = name

	configPath := GetConfigFilePath()
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error opening config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}
