package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxmix/loxmix/lexer"
	"github.com/loxmix/loxmix/parser"
	"github.com/loxmix/loxmix/resolver"
)

func resolveSource(t *testing.T, src string) (map[int]int, error) {
	t.Helper()
	tokens, err := lexer.ScanTokens(src)
	require.NoError(t, err)
	stmts, err := parser.Parse(tokens)
	require.NoError(t, err)
	return resolver.Resolve(stmts)
}

func TestResolve_GlobalReferenceHasNoLocalsEntry(t *testing.T) {
	locals, err := resolveSource(t, `var a = 1; print a;`)
	require.NoError(t, err)
	assert.Empty(t, locals)
}

func TestResolve_BlockLocalGetsDepthZero(t *testing.T) {
	locals, err := resolveSource(t, `{ var a = 1; print a; }`)
	require.NoError(t, err)
	assert.Len(t, locals, 1)
	for _, depth := range locals {
		assert.Equal(t, 0, depth)
	}
}

func TestResolve_ReadOwnInitializerIsAnError(t *testing.T) {
	_, err := resolveSource(t, `var a = 1; { var a = a; }`)
	require.Error(t, err)
}

func TestResolve_DuplicateDeclarationInSameScopeIsAnError(t *testing.T) {
	_, err := resolveSource(t, `{ var a = 1; var a = 2; }`)
	require.Error(t, err)
}

func TestResolve_ReturnOutsideFunctionIsAnError(t *testing.T) {
	_, err := resolveSource(t, `return 1;`)
	require.Error(t, err)
}

func TestResolve_ThisOutsideMethodIsAnError(t *testing.T) {
	_, err := resolveSource(t, `print this;`)
	require.Error(t, err)
}

func TestResolve_SuperWithoutSuperclassIsAnError(t *testing.T) {
	_, err := resolveSource(t, `
class Foo {
  bar() { return super.bar(); }
}`)
	require.Error(t, err)
}

func TestResolve_SelfInheritanceIsAnError(t *testing.T) {
	_, err := resolveSource(t, `class Foo < Foo {}`)
	require.Error(t, err)
}

func TestResolve_ValidSuperUsageResolvesCleanly(t *testing.T) {
	_, err := resolveSource(t, `
class Animal {
  speak() { return "..."; }
}
class Dog < Animal {
  speak() { return super.speak(); }
}`)
	require.NoError(t, err)
}
