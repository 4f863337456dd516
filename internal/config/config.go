package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Default values applied by the Get* methods when a field is unset.
const (
	DefaultUnits      = "fps"
	DefaultListenAddr = ":8080"
	DefaultDBPath     = "wits.db"
	DefaultBaudRate   = 9600
	DefaultDataBits   = 8
	DefaultStopBits   = 1
	DefaultParity     = "N"
)

// Config is the witskit daemon configuration. All fields are pointers so a
// JSON file can set any subset; the Get* methods supply defaults for fields
// left unset. The serial field names match streammux.PortOptions so values
// pass through without translation.
type Config struct {
	// Feed params
	Source          *string `json:"source,omitempty"`
	Units           *string `json:"units,omitempty"`
	RequestInterval *string `json:"request_interval,omitempty"` // duration string like "30s"

	// Serial port params, applied when Source names a serial device
	BaudRate *int    `json:"baud_rate,omitempty"`
	DataBits *int    `json:"data_bits,omitempty"`
	StopBits *int    `json:"stop_bits,omitempty"`
	Parity   *string `json:"parity,omitempty"`

	// Server params
	ListenAddr *string `json:"listen_addr,omitempty"`
	DBPath     *string `json:"db_path,omitempty"`
}

// Helper functions to create pointers
func ptrString(v string) *string { return &v }
func ptrInt(v int) *int          { return &v }

// DefaultConfig returns a Config with every field explicitly set to its
// default value. Saving it produces a complete starter file.
func DefaultConfig() *Config {
	return &Config{
		Units:      ptrString(DefaultUnits),
		BaudRate:   ptrInt(DefaultBaudRate),
		DataBits:   ptrInt(DefaultDataBits),
		StopBits:   ptrInt(DefaultStopBits),
		Parity:     ptrString(DefaultParity),
		ListenAddr: ptrString(DefaultListenAddr),
		DBPath:     ptrString(DefaultDBPath),
	}
}

// LoadConfig loads a Config from a JSON file.
// The file is validated to ensure it has a .json extension and is under the
// max file size. Fields omitted from the JSON file fall back to defaults
// through the Get* methods, so partial configs are safe.
func LoadConfig(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	// Check file size for safety (max 1MB)
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to path as indented JSON via a temp file
// then rename, so a crash mid-write cannot leave a truncated config behind.
func (c *Config) Save(path string) error {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return fmt.Errorf("config file must have .json extension, got %q", ext)
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	data = append(data, '\n')

	tmp := cleanPath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Rename(tmp, cleanPath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace config file: %w", err)
	}
	return nil
}

// Validate checks that the configuration values are valid.
func (c *Config) Validate() error {
	if c.Units != nil && *c.Units != "" {
		switch strings.ToLower(*c.Units) {
		case "fps", "field", "metric", "si":
		default:
			return fmt.Errorf("units must be \"fps\" or \"metric\", got %q", *c.Units)
		}
	}

	// Validate RequestInterval can be parsed if set
	if c.RequestInterval != nil && *c.RequestInterval != "" {
		d, err := time.ParseDuration(*c.RequestInterval)
		if err != nil {
			return fmt.Errorf("invalid request_interval '%s': %w", *c.RequestInterval, err)
		}
		if d < 0 {
			return fmt.Errorf("request_interval must not be negative, got %s", *c.RequestInterval)
		}
	}

	if c.BaudRate != nil && *c.BaudRate <= 0 {
		return fmt.Errorf("baud_rate must be positive, got %d", *c.BaudRate)
	}
	if c.DataBits != nil && (*c.DataBits < 5 || *c.DataBits > 8) {
		return fmt.Errorf("data_bits must be between 5 and 8, got %d", *c.DataBits)
	}
	if c.StopBits != nil && *c.StopBits != 1 && *c.StopBits != 2 {
		return fmt.Errorf("stop_bits must be 1 or 2, got %d", *c.StopBits)
	}

	if c.Parity != nil && *c.Parity != "" {
		switch strings.ToUpper(*c.Parity) {
		case "N", "NONE", "E", "EVEN", "O", "ODD":
		default:
			return fmt.Errorf("unsupported parity %q: expected N, E, or O", *c.Parity)
		}
	}

	return nil
}

// GetSource returns the feed source address, or "" when none is configured.
func (c *Config) GetSource() string {
	if c.Source == nil {
		return ""
	}
	return *c.Source
}

// GetUnits returns the units value or the default.
func (c *Config) GetUnits() string {
	if c.Units == nil || *c.Units == "" {
		return DefaultUnits
	}
	return strings.ToLower(*c.Units)
}

// GetRequestInterval parses and returns the RequestInterval as a
// time.Duration. Zero means the source is not polled.
func (c *Config) GetRequestInterval() time.Duration {
	if c.RequestInterval == nil || *c.RequestInterval == "" {
		return 0 // default: no polling
	}
	d, err := time.ParseDuration(*c.RequestInterval)
	if err != nil || d < 0 {
		return 0 // default on parse error
	}
	return d
}

// GetBaudRate returns the baud_rate value or the default.
func (c *Config) GetBaudRate() int {
	if c.BaudRate == nil {
		return DefaultBaudRate
	}
	return *c.BaudRate
}

// GetDataBits returns the data_bits value or the default.
func (c *Config) GetDataBits() int {
	if c.DataBits == nil {
		return DefaultDataBits
	}
	return *c.DataBits
}

// GetStopBits returns the stop_bits value or the default.
func (c *Config) GetStopBits() int {
	if c.StopBits == nil {
		return DefaultStopBits
	}
	return *c.StopBits
}

// GetParity returns the parity value or the default.
func (c *Config) GetParity() string {
	if c.Parity == nil || *c.Parity == "" {
		return DefaultParity
	}
	return *c.Parity
}

// GetListenAddr returns the listen_addr value or the default.
func (c *Config) GetListenAddr() string {
	if c.ListenAddr == nil || *c.ListenAddr == "" {
		return DefaultListenAddr
	}
	return *c.ListenAddr
}

// GetDBPath returns the db_path value or the default.
func (c *Config) GetDBPath() string {
	if c.DBPath == nil || *c.DBPath == "" {
		return DefaultDBPath
	}
	return *c.DBPath
}
