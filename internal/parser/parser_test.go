package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfxlab/sfxgraph/internal/sferrors"
)

func alwaysKnown(string) bool { return true }

func TestParse_SimpleChain(t *testing.T) {
	f, err := Parse("energy[window,energy]", alwaysKnown)
	require.NoError(t, err)

	assert.Equal(t, "energy", f.Name)
	require.Len(t, f.Chain, 2)
	assert.Equal(t, "window", f.Chain[0].Name)
	assert.Equal(t, "energy", f.Chain[1].Name)
}

func TestParse_WithParams(t *testing.T) {
	f, err := Parse("mfcc[window(length=25,step=10,window=hamming),rdft]", alwaysKnown)
	require.NoError(t, err)

	assert.Equal(t, "mfcc", f.Name)
	require.Len(t, f.Chain, 2)
	assert.Equal(t, map[string]string{"length": "25", "step": "10", "window": "hamming"}, f.Chain[0].Params)
	assert.Empty(t, f.Chain[1].Params)
}

func TestParse_QuotedValue(t *testing.T) {
	f, err := Parse(`x[selector(name="a, b")]`, alwaysKnown)
	require.NoError(t, err)
	assert.Equal(t, "a, b", f.Chain[0].Params["name"])
}

func TestParse_WhitespaceInsignificant(t *testing.T) {
	f, err := Parse("  x [ window ( length = 25 ) , energy ]  ", alwaysKnown)
	require.NoError(t, err)
	assert.Equal(t, "x", f.Name)
	assert.Equal(t, "25", f.Chain[0].Params["length"])
}

func TestParse_UnknownTransform(t *testing.T) {
	_, err := Parse("x[bogus]", func(string) bool { return false })
	assert.ErrorIs(t, err, sferrors.ErrUnknownTransform)
}

func TestParse_SyntaxErrorMissingBracket(t *testing.T) {
	_, err := Parse("x(window)", alwaysKnown)
	assert.ErrorIs(t, err, sferrors.ErrParse)
}

func TestParse_TrailingInput(t *testing.T) {
	_, err := Parse("x[window]garbage", alwaysKnown)
	assert.ErrorIs(t, err, sferrors.ErrParse)
}

func TestParse_EmptyTransformList(t *testing.T) {
	_, err := Parse("x[]", alwaysKnown)
	assert.ErrorIs(t, err, sferrors.ErrParse)
}
