// Package config handles tool configuration loading and management.
package config

// Config holds all settings for the scene tools.
type Config struct {
	Assets  AssetsConfig  `yaml:"assets"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Logging LoggingConfig `yaml:"logging"`
}

// AssetsConfig holds asset lookup settings.
type AssetsConfig struct {
	// Roots are searched in reverse order (last entry wins).
	Roots []string `yaml:"roots"`
}

// ViewerConfig holds scene viewer window settings.
type ViewerConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	VSync  bool    `yaml:"vsync"`
	Scale  float32 `yaml:"scale"` // world units to pixels
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Assets: AssetsConfig{
			Roots: []string{"assets"},
		},
		Viewer: ViewerConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
			Scale:  1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
