package sfconfig

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Greater(t, cfg.MaxTransformThreads, 0)
	assert.True(t, cfg.UseSIMD)
	assert.Equal(t, 256*1024, cfg.CPUCacheSize)
	assert.Equal(t, 4096, cfg.ChunkSize)
}

func TestDefaultConfig_MemcheckDisablesSIMD(t *testing.T) {
	t.Setenv("SFX_MEMCHECK", "1")
	cfg := DefaultConfig()
	assert.False(t, cfg.UseSIMD)
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	cfg, resolved, err := Load(LoadOptions{ConfigDir: dir})
	require.NoError(t, err)

	assert.Equal(t, 4096, cfg.ChunkSize)
	assert.Equal(t, 256*1024, cfg.CPUCacheSize)

	for _, rv := range resolved {
		if rv.Key == "chunk_size" {
			assert.Equal(t, SourceDefault, rv.Source)
		}
	}
}

func TestLoad_FlagOverridesEverything(t *testing.T) {
	dir := t.TempDir()
	os.Setenv("SFX_CHUNK_SIZE", "8192")
	defer os.Unsetenv("SFX_CHUNK_SIZE")

	flagValue := 1024
	cfg, resolved, err := Load(LoadOptions{ConfigDir: dir, ChunkSize: &flagValue})
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.ChunkSize)

	for _, rv := range resolved {
		if rv.Key == "chunk_size" {
			assert.Equal(t, SourceFlag, rv.Source)
			assert.Equal(t, "8192", rv.Shadowed[SourceEnv])
		}
	}
}

func TestLoad_EnvOverridesDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SFX_MAX_TRANSFORM_THREADS", "3")

	cfg, resolved, err := Load(LoadOptions{ConfigDir: dir})
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.MaxTransformThreads)

	found := false
	for _, rv := range resolved {
		if rv.Key == "max_transform_threads" {
			found = true
			assert.Equal(t, SourceEnv, rv.Source)
		}
	}
	assert.True(t, found)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	configYAML := "use_simd: false\nchunk_size: 2048\n"
	require.NoError(t, os.WriteFile(dir+"/config.yaml", []byte(configYAML), 0o644))

	cfg, resolved, err := Load(LoadOptions{ConfigDir: dir})
	require.NoError(t, err)

	assert.False(t, cfg.UseSIMD)
	assert.Equal(t, 2048, cfg.ChunkSize)

	for _, rv := range resolved {
		if rv.Key == "chunk_size" {
			assert.Equal(t, SourceConfig, rv.Source)
		}
	}
}
