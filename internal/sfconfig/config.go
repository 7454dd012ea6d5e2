// Package sfconfig resolves the small set of process-wide knobs that
// govern pipeline execution: thread count, SIMD use, and the cache/chunk
// sizing hints. Only the thread count is read by the executor; the other
// three are resolved and carried in Config but not read by the planner,
// the executor or the bundled kernels.
package sfconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config is the fully-resolved, immutable-after-init execution configuration.
// A single value is built once at pipeline construction and threaded through
// rather than read from globals at each call site.
type Config struct {
	// MaxTransformThreads bounds the executor's worker pool size.
	// Env: SFX_MAX_TRANSFORM_THREADS, Default: runtime.NumCPU()
	MaxTransformThreads int `mapstructure:"max_transform_threads"`

	// UseSIMD enables vectorized transform kernels where available.
	// Env: SFX_USE_SIMD, Default: true (false when SFX_MEMCHECK=1)
	UseSIMD bool `mapstructure:"use_simd"`

	// CPUCacheSize is an optional CPU cache size hint, in bytes.
	// Env: SFX_CPU_CACHE_SIZE, Default: 262144 (256 KiB)
	CPUCacheSize int `mapstructure:"cpu_cache_size"`

	// ChunkSize is an optional chunk size hint, in bytes.
	// Env: SFX_CHUNK_SIZE, Default: 4096
	ChunkSize int `mapstructure:"chunk_size"`
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	useSIMD := true
	if os.Getenv("SFX_MEMCHECK") == "1" {
		// Memory-checking tools instrument scalar code paths; vectorized
		// kernels trip false positives under their shadow memory model.
		useSIMD = false
	}

	return &Config{
		MaxTransformThreads: runtime.NumCPU(),
		UseSIMD:             useSIMD,
		CPUCacheSize:        256 * 1024,
		ChunkSize:           4096,
	}
}

// DefaultConfigDir returns ~/.sfxgraph, creating it if absent.
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".sfxgraph")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	return dir, nil
}

// newViper builds a viper instance bound to the SFX_ environment prefix
// and, when present, a config.yaml under dir.
func newViper(dir string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("SFX")
	v.AutomaticEnv()

	v.SetDefault("max_transform_threads", runtime.NumCPU())
	v.SetDefault("use_simd", true)
	v.SetDefault("cpu_cache_size", 256*1024)
	v.SetDefault("chunk_size", 4096)

	if dir != "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
	}

	return v
}
