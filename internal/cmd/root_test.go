package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRootCmd_RegistersEveryVerb(t *testing.T) {
	root := NewRootCmd()

	want := []string{"version", "compile", "run", "list-transforms", "dot", "diff"}
	got := make(map[string]bool, len(root.Commands()))
	for _, c := range root.Commands() {
		got[c.Name()] = true
	}
	for _, name := range want {
		assert.True(t, got[name], "expected subcommand %q to be registered", name)
	}
}

func TestNewRootCmd_PersistentFlagsHaveDefaults(t *testing.T) {
	root := NewRootCmd()

	flag := root.PersistentFlags().Lookup("threads")
	if assert.NotNil(t, flag) {
		assert.Equal(t, "0", flag.DefValue)
	}

	assert.NotNil(t, root.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, root.PersistentFlags().Lookup("no-simd"))
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}

func TestListTransformsCmd_RunsAgainstTheLiveRegistry(t *testing.T) {
	root := NewRootCmd()
	root.SetArgs([]string{"list-transforms"})
	assert.NoError(t, root.Execute())
}
