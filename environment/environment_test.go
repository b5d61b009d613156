// File: golox/environment/environment_test.go
package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/golox/token"
	"github.com/akashmaji946/golox/value"
)

func ident(name string) token.Token {
	return token.New(token.Identifier, name, 1)
}

func TestEnvironment_DefineAndGet(t *testing.T) {
	env := New()
	env.Define("x", value.NewNumber(10))
	v, err := env.Get(ident("x"))
	require.NoError(t, err)
	assert.Equal(t, value.NewNumber(10), v)
}

func TestEnvironment_GetUndefinedFails(t *testing.T) {
	env := New()
	_, err := env.Get(ident("missing"))
	assert.Error(t, err)
}

func TestEnvironment_AssignWalksToDefiningScope(t *testing.T) {
	outer := New()
	outer.Define("x", value.NewNumber(1))
	inner := NewEnclosed(outer)

	err := inner.Assign(ident("x"), value.NewNumber(2))
	require.NoError(t, err)

	v, err := outer.Get(ident("x"))
	require.NoError(t, err)
	assert.Equal(t, value.NewNumber(2), v)
}

func TestEnvironment_AssignUndefinedFails(t *testing.T) {
	env := New()
	err := env.Assign(ident("missing"), value.NewNumber(1))
	assert.Error(t, err)
}

func TestEnvironment_ShadowingDoesNotMutateOuter(t *testing.T) {
	outer := New()
	outer.Define("x", value.NewString("outer"))
	inner := NewEnclosed(outer)
	inner.Define("x", value.NewString("inner"))

	innerVal, _ := inner.Get(ident("x"))
	outerVal, _ := outer.Get(ident("x"))
	assert.Equal(t, value.NewString("inner"), innerVal)
	assert.Equal(t, value.NewString("outer"), outerVal)
}

func TestEnvironment_GetAtDoesNotClimbPastDistance(t *testing.T) {
	global := New()
	global.Define("a", value.NewNumber(99))
	middle := NewEnclosed(global)
	middle.Define("a", value.NewNumber(1))
	inner := NewEnclosed(middle)

	// distance 1 from inner is middle, which does have "a" bound.
	assert.Equal(t, value.NewNumber(1), inner.GetAt(1, "a"))

	// Redefining in global after capture must not affect the closer binding.
	global.Define("a", value.NewNumber(1000))
	assert.Equal(t, value.NewNumber(1), inner.GetAt(1, "a"))
}

func TestEnvironment_AssignAtWritesExactFrame(t *testing.T) {
	global := New()
	middle := NewEnclosed(global)
	middle.Define("a", value.NewNumber(1))
	inner := NewEnclosed(middle)

	inner.AssignAt(1, ident("a"), value.NewNumber(2))
	v, _ := middle.Get(ident("a"))
	assert.Equal(t, value.NewNumber(2), v)
}
