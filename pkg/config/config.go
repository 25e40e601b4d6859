// Package config resolves actd settings from .actd.yaml, ACTD_* environment
// variables and built-in defaults.
package config

import (
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// EnvConfigPath names an extra directory searched for .actd.yaml.
const EnvConfigPath = "ACTD_CONFIG_PATH"

// Config is the resolved configuration.
type Config struct {
	// Seed loads the sample journal at startup.
	Seed bool
	Log  LogConfig
	HTTP HTTPConfig
	MCP  MCPConfig

	// File is the config file that was read, if any.
	File string
}

type LogConfig struct {
	Level string
	JSON  bool
}

type HTTPConfig struct {
	Addr string
}

type MCPConfig struct {
	Host string
	Port int
	Path string
}

// Load reads configuration using the default search path.
func Load() (*Config, error) {
	return load(viper.New(), os.Getenv(EnvConfigPath))
}

func load(v *viper.Viper, override string) (*Config, error) {
	v.SetDefault("seed", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("http.addr", "127.0.0.1:8080")
	v.SetDefault("mcp.host", "127.0.0.1")
	v.SetDefault("mcp.port", 8081)
	v.SetDefault("mcp.path", "/mcp")

	v.SetConfigName(".actd") // .yaml is implicit
	v.SetEnvPrefix("ACTD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &Config{
		Seed: v.GetBool("seed"),
		Log: LogConfig{
			Level: v.GetString("log.level"),
			JSON:  v.GetBool("log.json"),
		},
		HTTP: HTTPConfig{Addr: v.GetString("http.addr")},
		MCP: MCPConfig{
			Host: v.GetString("mcp.host"),
			Port: v.GetInt("mcp.port"),
			Path: v.GetString("mcp.path"),
		},
		File: v.ConfigFileUsed(),
	}, nil
}
