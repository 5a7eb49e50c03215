package object_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loxmix/loxmix/object"
)

func TestTruthy(t *testing.T) {
	assert.False(t, object.Truthy(nil))
	assert.False(t, object.Truthy(false))
	assert.True(t, object.Truthy(true))
	assert.True(t, object.Truthy(0.0))
	assert.True(t, object.Truthy(""))
}

func TestEquals_SameVariant(t *testing.T) {
	assert.True(t, object.Equals(1.0, 1.0))
	assert.False(t, object.Equals(1.0, 2.0))
	assert.True(t, object.Equals("a", "a"))
	assert.True(t, object.Equals(nil, nil))
	assert.True(t, object.Equals(true, true))
}

func TestEquals_CrossVariantIsFalseNotError(t *testing.T) {
	assert.False(t, object.Equals(1.0, "1"))
	assert.False(t, object.Equals(nil, false))
	assert.False(t, object.Equals("", nil))
}

func TestInstance_GetSetField(t *testing.T) {
	class := &object.Class{Name: "Point", Methods: map[string]*object.UserFunction{}}
	inst := object.NewInstance(class)

	_, ok := inst.GetField("x")
	assert.False(t, ok)

	inst.SetField("x", 1.0)
	inst.SetField("y", 2.0)
	inst.SetField("x", 10.0)

	x, ok := inst.GetField("x")
	assert.True(t, ok)
	assert.Equal(t, 10.0, x)

	y, ok := inst.GetField("y")
	assert.True(t, ok)
	assert.Equal(t, 2.0, y)
}

func TestClass_FindMethod_WalksSuperclassChain(t *testing.T) {
	greet := &object.UserFunction{Name: "greet"}
	base := &object.Class{Name: "Animal", Methods: map[string]*object.UserFunction{"greet": greet}}
	derived := &object.Class{Name: "Dog", Methods: map[string]*object.UserFunction{}, Superclass: base}

	m, ok := derived.FindMethod("greet")
	assert.True(t, ok)
	assert.Same(t, greet, m)

	_, ok = derived.FindMethod("bark")
	assert.False(t, ok)
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "nil", object.Stringify(nil))
	assert.Equal(t, "true", object.Stringify(true))
	assert.Equal(t, "3", object.Stringify(3.0))
	assert.Equal(t, "3.5", object.Stringify(3.5))
	assert.Equal(t, "hello", object.Stringify("hello"))

	class := &object.Class{Name: "Point"}
	assert.Equal(t, "Class 'Point'", object.Stringify(class))
	assert.Equal(t, "Instance of 'Point'", object.Stringify(object.NewInstance(class)))
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "nil", object.TypeName(nil))
	assert.Equal(t, "number", object.TypeName(1.0))
	assert.Equal(t, "string", object.TypeName("s"))
	assert.Equal(t, "boolean", object.TypeName(true))
}
