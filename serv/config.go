package serv

import (
	"fmt"
	"path"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the gqlscan service config values
type Config struct {
	// AppName is the name of your application used in log messages
	AppName string `mapstructure:"app_name"`

	// SchemaDir is the directory scanned for GraphQL documents
	SchemaDir string `mapstructure:"schema_dir"`

	// OutDir is the directory the generated Go files are written to
	OutDir string `mapstructure:"out_dir"`

	// Package is the package name of the generated files
	Package string `mapstructure:"package"`

	// Exts are the file extensions treated as GraphQL documents
	Exts []string `mapstructure:"exts"`

	// Watch regenerates on document changes instead of exiting
	Watch bool `mapstructure:"watch"`

	// LogLevel can be debug, info, warn or error
	LogLevel string `mapstructure:"log_level"`

	// LogFormat can be json or simple
	LogFormat string `mapstructure:"log_format"`

	cpath string
	vi    *viper.Viper
}

// RelPath joins a path with the directory the config was loaded from.
func (c *Config) RelPath(p string) string {
	return path.Join(c.cpath, p)
}

// NewConfig returns a config with the defaults applied. Used by tests
// and callers that configure the service in code.
func NewConfig() *Config {
	c := &Config{}
	setDefaults(c)
	return c
}

func setDefaults(c *Config) {
	if c.SchemaDir == "" {
		c.SchemaDir = "./graphql"
	}
	if c.OutDir == "" {
		c.OutDir = "./gen"
	}
	if c.Package == "" {
		c.Package = "model"
	}
	if len(c.Exts) == 0 {
		c.Exts = []string{".graphql", ".gql"}
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// ReadInConfig reads in the config file found at the given path.
func ReadInConfig(configFile string) (*Config, error) {
	cpath := path.Dir(configFile)
	cfile := path.Base(configFile)
	vi := newViper(cpath, cfile)

	if err := vi.ReadInConfig(); err != nil {
		return nil, err
	}

	c := &Config{cpath: cpath, vi: vi}
	if err := vi.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("failed to decode config, %v", err)
	}
	setDefaults(c)

	return c, nil
}

func newViper(configPath, configFile string) *viper.Viper {
	vi := viper.New()

	vi.SetEnvPrefix("GQL")
	vi.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vi.AutomaticEnv()

	vi.AddConfigPath(configPath)
	vi.SetConfigName(strings.TrimSuffix(configFile, path.Ext(configFile)))

	vi.SetDefault("app_name", "gqlscan")
	vi.SetDefault("schema_dir", "./graphql")
	vi.SetDefault("out_dir", "./gen")
	vi.SetDefault("package", "model")
	vi.SetDefault("log_level", "info")
	vi.SetDefault("log_format", "simple")

	return vi
}

// GetConfigName returns the default config file name.
func GetConfigName() string {
	return "gqlscan.yml"
}
