package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string          `toml:"environment"` // "development" or "production"
	Server      ServerConfig    `toml:"server"`
	Extractor   ExtractorConfig `toml:"extractor"`
	Inspector   InspectorConfig `toml:"inspector"`
	Janitor     JanitorConfig   `toml:"janitor"`
	Logging     LoggingConfig   `toml:"logging"`
}

type ServerConfig struct {
	Port int    `toml:"port" validate:"gte=1,lte=65535"`
	Host string `toml:"host"`
}

// ExtractorConfig describes how the pdffigures2 CLI is invoked.
type ExtractorConfig struct {
	JarPath    string   `toml:"jar_path" validate:"required"`    // Path to the primary pdffigures2 JAR
	LibDir     string   `toml:"lib_dir"`                         // Directory of supporting JARs added to the classpath (optional)
	DataDir    string   `toml:"data_dir" validate:"required"`    // Root directory for per-request scratch directories
	JavaBin    string   `toml:"java_bin" validate:"required"`    // Java executable name or path
	EntryClass string   `toml:"entry_class" validate:"required"` // Main class invoked via -cp
	Timeout    Duration `toml:"timeout" validate:"gt=0"`         // Hard wall-clock limit per extraction, e.g. "60s"
}

// InspectorConfig controls the pdfcpu-based preflight step.
type InspectorConfig struct {
	Enabled bool `toml:"enabled"` // Log page count and encryption status before extraction
}

// JanitorConfig controls background cleanup of orphaned scratch directories.
type JanitorConfig struct {
	Enabled  bool     `toml:"enabled"`
	Schedule string   `toml:"schedule"` // Cron schedule format, e.g. "*/15 * * * *"
	MaxAge   Duration `toml:"max_age"`  // Scratch directories older than this are removed
}

type LoggingConfig struct {
	Level      string   `toml:"level"`       // "debug", "info", "warn", "error"
	Format     string   `toml:"format"`      // "json" or "text"
	Output     []string `toml:"output"`      // "stdout", "file"
	TimeFormat string   `toml:"time_format"` // Time format for logs (default: "15:04:05")
}

// NewDefaultConfig creates a configuration with default values
// Defaults mirror the container layout so the binary runs unconfigured
// inside the standard image. Only user-facing settings should be
// exposed in figura.toml.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8080,
			Host: "localhost",
		},
		Extractor: ExtractorConfig{
			JarPath:    "/app/pdffigures2.jar",
			LibDir:     "/app/lib",
			DataDir:    "/data",
			JavaBin:    "java",
			EntryClass: "org.allenai.pdffigures2.FigureExtractorBatchCli",
			Timeout:    Duration(60 * time.Second),
		},
		Inspector: InspectorConfig{
			Enabled: true,
		},
		Janitor: JanitorConfig{
			Enabled:  true,
			Schedule: "*/15 * * * *", // Every 15 minutes
			MaxAge:   Duration(1 * time.Hour),
		},
		Logging: LoggingConfig{
			Level:  "info",                     // Info level for production (debug|info|warn|error)
			Format: "text",                     // Human-readable text format (text|json)
			Output: []string{"stdout", "file"}, // Log to both console and file
		},
	}
}

// LoadFromFile loads configuration with priority: default -> file -> env -> CLI
// Priority system: CLI flags > Environment variables > Config file > Defaults
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority: default -> file1 -> file2 -> ... -> env -> CLI
// Later files override earlier files.
// Example: LoadFromFiles("base.toml", "override.toml") - override.toml settings take precedence over base.toml
func LoadFromFiles(paths ...string) (*Config, error) {
	// Start with defaults
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier files)
	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		// Unmarshal into config (merges with existing values, later values override)
		err = toml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	// Apply environment variables (overrides all file configs)
	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	// Environment configuration (highest priority: FIGURA_ENV, fallback: GO_ENV)
	if env := os.Getenv("FIGURA_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	// Server configuration
	if port := os.Getenv("FIGURA_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("FIGURA_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}

	// Extractor configuration
	// Unprefixed names are honored for compatibility with existing
	// container manifests that predate the FIGURA_ prefix.
	if jarPath := os.Getenv("FIGURA_JAR_PATH"); jarPath != "" {
		config.Extractor.JarPath = jarPath
	} else if jarPath := os.Getenv("PDFFIGURES2_JAR"); jarPath != "" {
		config.Extractor.JarPath = jarPath // Deprecated: backward compatibility
	}
	if libDir := os.Getenv("FIGURA_LIB_DIR"); libDir != "" {
		config.Extractor.LibDir = libDir
	} else if libDir := os.Getenv("LIB_DIR"); libDir != "" {
		config.Extractor.LibDir = libDir // Deprecated: backward compatibility
	}
	if dataDir := os.Getenv("FIGURA_DATA_DIR"); dataDir != "" {
		config.Extractor.DataDir = dataDir
	} else if dataDir := os.Getenv("DATA_DIR"); dataDir != "" {
		config.Extractor.DataDir = dataDir // Deprecated: backward compatibility
	}
	if javaBin := os.Getenv("FIGURA_JAVA_BIN"); javaBin != "" {
		config.Extractor.JavaBin = javaBin
	}
	if entryClass := os.Getenv("FIGURA_ENTRY_CLASS"); entryClass != "" {
		config.Extractor.EntryClass = entryClass
	}
	if timeout := os.Getenv("FIGURA_TIMEOUT"); timeout != "" {
		if t, err := time.ParseDuration(timeout); err == nil {
			config.Extractor.Timeout = Duration(t)
		}
	}

	// Inspector configuration
	if enabled := os.Getenv("FIGURA_INSPECTOR_ENABLED"); enabled != "" {
		if e, err := strconv.ParseBool(enabled); err == nil {
			config.Inspector.Enabled = e
		}
	}

	// Janitor configuration
	if enabled := os.Getenv("FIGURA_JANITOR_ENABLED"); enabled != "" {
		if e, err := strconv.ParseBool(enabled); err == nil {
			config.Janitor.Enabled = e
		}
	}
	if schedule := os.Getenv("FIGURA_JANITOR_SCHEDULE"); schedule != "" {
		config.Janitor.Schedule = schedule
	}
	if maxAge := os.Getenv("FIGURA_JANITOR_MAX_AGE"); maxAge != "" {
		if ma, err := time.ParseDuration(maxAge); err == nil {
			config.Janitor.MaxAge = Duration(ma)
		}
	}

	// Logging configuration
	if level := os.Getenv("FIGURA_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if format := os.Getenv("FIGURA_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}
	if output := os.Getenv("FIGURA_LOG_OUTPUT"); output != "" {
		// Split comma-separated output types
		outputs := []string{}
		for _, o := range strings.Split(output, ",") {
			trimmed := strings.TrimSpace(o)
			if trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config
func ApplyFlagOverrides(config *Config, port int, host string) {
	// Command-line flags have highest priority
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// Validate checks the loaded configuration for structural problems.
// Called once at startup after all override layers are applied.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			first := errs[0]
			return fmt.Errorf("invalid configuration: field %s failed %q validation", first.Namespace(), first.Tag())
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
