package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSpecs_ReadsYAMLList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "specs.yaml")
	contents := "- \"loudness[window, rdft, energy]\"\n- \"brightness[window, rdft, rolloff]\"\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	specs, err := loadSpecs(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"loudness[window, rdft, energy]", "brightness[window, rdft, rolloff]"}, specs)
}

func TestLoadSpecs_RejectsEmptyList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "specs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("[]\n"), 0o644))

	_, err := loadSpecs(path)
	assert.Error(t, err)
}

func TestLoadSpecs_MissingFile(t *testing.T) {
	_, err := loadSpecs(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
