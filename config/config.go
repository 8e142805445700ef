// config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	defaultConfigDir  = ".config/calcmcp"
	defaultConfigFile = "config.yaml"
)

// Config holds the complete configuration for the server and clients
type Config struct {
	LLM struct {
		Model        string `yaml:"model"`
		APIKey       string `yaml:"api_key"`
		BaseURL      string `yaml:"base_url"`
		SystemPrompt string `yaml:"system_prompt"`
	} `yaml:"llm"`

	// Server is the bind address of the MCP SSE server
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"server"`

	// ServerURL is the base URL clients use to reach the MCP server
	ServerURL string `yaml:"server_url"`

	// API is the optional HTTP chat front-end
	API struct {
		Enable bool   `yaml:"enable"`
		Host   string `yaml:"host"`
		Port   int    `yaml:"port"`
	} `yaml:"api"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	cfg := &Config{}

	// LLM defaults
	cfg.LLM.Model = "gpt-4o"
	cfg.LLM.SystemPrompt = "You are a helpful assistant with access to a calculator tool. Use the add tool whenever the user asks for a sum."

	// MCP server defaults
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 8050
	cfg.ServerURL = "http://localhost:8050"

	// API defaults - disabled unless requested
	cfg.API.Enable = false
	cfg.API.Host = "localhost"
	cfg.API.Port = 8080

	// Logging defaults
	cfg.Logging.Level = "info"
	cfg.Logging.Format = "text"

	return cfg
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, defaultConfigDir)
	return filepath.Join(configDir, defaultConfigFile), nil
}

// LoadOrCreate loads the config file if it exists, or creates a default one if it doesn't.
// Environment overrides are applied either way.
func LoadOrCreate() (*Config, bool, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, false, err
	}

	configDir := filepath.Dir(configPath)
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return nil, false, fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := cfg.Save(); err != nil {
			return nil, false, fmt.Errorf("failed to save default config: %w", err)
		}
		cfg.ApplyEnv()
		if err := cfg.validate(); err != nil {
			return nil, false, fmt.Errorf("invalid configuration: %w", err)
		}
		return cfg, true, nil
	}

	cfg, err := Load(configPath)
	return cfg, false, err
}

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with default config to ensure all fields have values
	cfg := DefaultConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ApplyEnv()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overlays environment variables on top of the loaded values.
// Credentials are only ever read from the environment in practice; the
// yaml field exists for completeness.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
	if v := os.Getenv("CALC_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("CALC_SERVER_HOST"); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv("CALC_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("CALC_SERVER_URL"); v != "" {
		c.ServerURL = v
	}
}

// Save writes the configuration to disk
func (c *Config) Save() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ListenAddr returns the bind address for the MCP SSE server
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// validate checks that required fields are present and valid
func (c *Config) validate() error {
	if c.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if c.Server.Host == "" {
		return fmt.Errorf("server.host is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in range 1-65535, got %d", c.Server.Port)
	}
	if c.ServerURL == "" {
		return fmt.Errorf("server_url is required")
	}
	if c.API.Enable {
		if c.API.Host == "" {
			return fmt.Errorf("api.host is required when api.enable is set")
		}
		if c.API.Port <= 0 || c.API.Port > 65535 {
			return fmt.Errorf("api.port must be in range 1-65535, got %d", c.API.Port)
		}
	}

	return nil
}
