// Package config loads lvroute settings from file and environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvroute/dijkstra"
)

type Config struct {
	Graph  GraphConfig  `mapstructure:"graph"`
	Engine EngineConfig `mapstructure:"engine"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
}

type GraphConfig struct {
	Path string `mapstructure:"path"`
}

// EngineConfig mirrors the dijkstra options. Zero MaxDistance and
// InfEdgeThreshold mean "no limit".
type EngineConfig struct {
	Epsilon          float64 `mapstructure:"epsilon"`
	MaxDistance      float64 `mapstructure:"max_distance"`
	InfEdgeThreshold float64 `mapstructure:"inf_edge_threshold"`
	TraceRuns        bool    `mapstructure:"trace_runs"`
}

type ServerConfig struct {
	Listen string `mapstructure:"listen"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads the configuration from file and LVROUTE_* environment
// variables. An empty cfgFile searches ./lvroute.yaml and ~/.lvroute/.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".lvroute"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("lvroute")
		v.SetConfigType("yaml")
	}

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix("LVROUTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("graph.path", "")
	v.SetDefault("engine.epsilon", dijkstra.DefaultEpsilon)
	v.SetDefault("engine.max_distance", 0.0)
	v.SetDefault("engine.inf_edge_threshold", 0.0)
	v.SetDefault("engine.trace_runs", false)
	v.SetDefault("server.listen", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Options translates the engine section into dijkstra options. log is
// attached only when TraceRuns is set.
func (c EngineConfig) Options(log logrus.FieldLogger) []dijkstra.Option {
	opts := []dijkstra.Option{dijkstra.WithEpsilon(c.Epsilon)}
	if c.MaxDistance > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(c.MaxDistance))
	}
	if c.InfEdgeThreshold > 0 {
		opts = append(opts, dijkstra.WithInfEdgeThreshold(c.InfEdgeThreshold))
	}
	if c.TraceRuns && log != nil {
		opts = append(opts, dijkstra.WithLogger(log))
	}

	return opts
}
