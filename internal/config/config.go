// Package config provides centralized configuration management for
// thriftc. It handles environment variables, default values, and
// programmatic overrides.
package config

import (
	"os"
	"strconv"
	"sync"
)

// Config holds all configuration settings for thriftc
type Config struct {
	// Compiler settings
	ToolVersion string
	Generator   string

	// Executable overrides the embedded compiler when set.
	Executable string

	// Output settings
	Verbose bool
}

var (
	globalConfig *Config
	configOnce   sync.Once
)

// Default values
const (
	DefaultToolVersion = "0.5.0"
	DefaultGenerator   = "java"
)

// Get returns the global configuration, loading from environment if not already loaded
func Get() *Config {
	configOnce.Do(func() {
		globalConfig = loadFromEnv()
	})
	return globalConfig
}

// Reset clears the global configuration, forcing reload on next Get()
// This is primarily useful for testing
func Reset() {
	configOnce = sync.Once{}
	globalConfig = nil
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv() *Config {
	return &Config{
		ToolVersion: getEnv("THRIFTC_VERSION", DefaultToolVersion),
		Generator:   getEnv("THRIFTC_GENERATOR", DefaultGenerator),
		Executable:  getEnv("THRIFTC_EXECUTABLE", ""),
		Verbose:     getEnvBool("THRIFTC_VERBOSE", false),
	}
}

// NewConfig creates a new configuration with default values.
// This is useful for testing or programmatic configuration
func NewConfig() *Config {
	return &Config{
		ToolVersion: DefaultToolVersion,
		Generator:   DefaultGenerator,
	}
}

// WithToolVersion sets the bundled compiler version to resolve
func (c *Config) WithToolVersion(version string) *Config {
	if version != "" {
		c.ToolVersion = version
	}
	return c
}

// WithGenerator sets the --gen option value
func (c *Config) WithGenerator(generator string) *Config {
	if generator != "" {
		c.Generator = generator
	}
	return c
}

// WithExecutable sets an external compiler path, bypassing the embedded binaries
func (c *Config) WithExecutable(path string) *Config {
	c.Executable = path
	return c
}

// WithVerbose enables verbose output
func (c *Config) WithVerbose(verbose bool) *Config {
	c.Verbose = verbose
	return c
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
		// Also accept "1" as true
		if value == "1" {
			return true
		}
	}
	return defaultValue
}
