package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxmix/loxmix/environment"
)

func TestGet_GlobalFallbackWhenExprUnresolved(t *testing.T) {
	globals := environment.NewGlobals(environment.Locals{})
	globals.Define("x", 1.0)

	v, err := globals.Get("x", 99)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestGet_UsesResolvedDepth(t *testing.T) {
	globals := environment.NewGlobals(environment.Locals{1: 1})
	globals.Define("x", "outer")
	inner := environment.New(globals)
	inner.Define("x", "inner")

	v, err := inner.Get("x", 1)
	require.NoError(t, err)
	assert.Equal(t, "outer", v)
}

func TestAssign_FailsForUndefinedName(t *testing.T) {
	globals := environment.NewGlobals(environment.Locals{})
	err := globals.Assign("missing", 1.0, 0)
	assert.Error(t, err)
}

func TestMergeLocals_ExtendsSharedMapInPlace(t *testing.T) {
	locals := environment.Locals{}
	globals := environment.NewGlobals(locals)
	globals.Define("x", "outer")
	inner := environment.New(globals)
	inner.Define("x", "inner")

	globals.MergeLocals(environment.Locals{5: 1})

	v, err := inner.Get("x", 5)
	require.NoError(t, err)
	assert.Equal(t, "outer", v)
}

func TestGetOwn_DoesNotWalkChain(t *testing.T) {
	globals := environment.NewGlobals(environment.Locals{})
	globals.Define("this", "receiver")
	inner := environment.New(globals)

	_, ok := inner.GetOwn("this")
	assert.False(t, ok)

	v, ok := globals.GetOwn("this")
	assert.True(t, ok)
	assert.Equal(t, "receiver", v)
}

func TestGetThisInstance_ResolvesOneScopeCloserThanSuper(t *testing.T) {
	globals := environment.NewGlobals(environment.Locals{10: 2})
	superEnv := environment.New(globals)
	superEnv.Define("super", "superclass")
	thisEnv := environment.New(superEnv)
	thisEnv.Define("this", "receiver")
	callEnv := environment.New(thisEnv)

	v, err := callEnv.GetThisInstance(10)
	require.NoError(t, err)
	assert.Equal(t, "receiver", v)
}
