package sfconfig

import (
	"os"
	"strconv"

	"github.com/spf13/viper"

	"github.com/sfxlab/sfxgraph/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates the value came from a command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates the value came from an SFX_ environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates the value came from ~/.sfxgraph/config.yaml.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates the value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue tracks a configuration value and its resolution chain, for
// logging config resolution with --verbose.
type ResolvedValue struct {
	Key      string
	Value    any
	Source   ConfigSource
	Shadowed map[ConfigSource]any
}

// LoadOptions carries flag-provided overrides. A nil pointer means the flag
// was not set on the command line.
type LoadOptions struct {
	MaxTransformThreads *int
	UseSIMD             *bool
	CPUCacheSize        *int
	ChunkSize           *int

	// ConfigDir overrides the default ~/.sfxgraph config directory; used by
	// tests to avoid touching the real home directory.
	ConfigDir string
}

// Load resolves the execution Config using precedence flag > env > config
// file > default, returning the resolved values alongside a trace of where
// each one came from.
func Load(opts LoadOptions) (*Config, []ResolvedValue, error) {
	dir := opts.ConfigDir
	if dir == "" {
		d, err := DefaultConfigDir()
		if err != nil {
			return nil, nil, err
		}
		dir = d
	}

	v := newViper(dir)
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, nil, err
		}
	}

	cfg := &Config{}
	var resolved []ResolvedValue

	threads, rv := resolveInt(v, opts.MaxTransformThreads, "max_transform_threads", "SFX_MAX_TRANSFORM_THREADS")
	cfg.MaxTransformThreads = threads
	resolved = append(resolved, rv)

	simd, rv := resolveBool(v, opts.UseSIMD, "use_simd", "SFX_USE_SIMD", DefaultConfig().UseSIMD)
	cfg.UseSIMD = simd
	resolved = append(resolved, rv)

	cache, rv := resolveInt(v, opts.CPUCacheSize, "cpu_cache_size", "SFX_CPU_CACHE_SIZE")
	cfg.CPUCacheSize = cache
	resolved = append(resolved, rv)

	chunk, rv := resolveInt(v, opts.ChunkSize, "chunk_size", "SFX_CHUNK_SIZE")
	cfg.ChunkSize = chunk
	resolved = append(resolved, rv)

	return cfg, resolved, nil
}

func resolveInt(v *viper.Viper, flagValue *int, key, envKey string) (int, ResolvedValue) {
	rv := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]any)}

	envValue, envSet := os.LookupEnv(envKey)
	configValue := v.GetInt(key)
	usedConfig := v.InConfig(key)

	if flagValue != nil {
		rv.Value, rv.Source = *flagValue, SourceFlag
		if envSet {
			rv.Shadowed[SourceEnv] = envValue
		}
		if usedConfig {
			rv.Shadowed[SourceConfig] = configValue
		}
		return *flagValue, rv
	}
	if envSet {
		n, err := strconv.Atoi(envValue)
		if err == nil {
			rv.Value, rv.Source = n, SourceEnv
			if usedConfig {
				rv.Shadowed[SourceConfig] = configValue
			}
			return n, rv
		}
	}
	if usedConfig {
		rv.Value, rv.Source = configValue, SourceConfig
		return configValue, rv
	}

	rv.Value, rv.Source = configValue, SourceDefault
	return configValue, rv
}

func resolveBool(v *viper.Viper, flagValue *bool, key, envKey string, def bool) (bool, ResolvedValue) {
	rv := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]any)}

	envValue, envSet := os.LookupEnv(envKey)
	usedConfig := v.InConfig(key)
	configValue := v.GetBool(key)

	if flagValue != nil {
		rv.Value, rv.Source = *flagValue, SourceFlag
		if envSet {
			rv.Shadowed[SourceEnv] = envValue
		}
		if usedConfig {
			rv.Shadowed[SourceConfig] = configValue
		}
		return *flagValue, rv
	}
	if envSet {
		b, err := strconv.ParseBool(envValue)
		if err == nil {
			rv.Value, rv.Source = b, SourceEnv
			if usedConfig {
				rv.Shadowed[SourceConfig] = configValue
			}
			return b, rv
		}
	}
	if usedConfig {
		rv.Value, rv.Source = configValue, SourceConfig
		return configValue, rv
	}

	rv.Value, rv.Source = def, SourceDefault
	return def, rv
}

// LogResolvedValues logs configuration resolution at DEBUG level when verbose.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
