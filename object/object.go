/*
File    : loxmix/object/object.go

Package object defines loxmix's runtime value representation and the
handful of operations (stringification, equality, truthiness) that are
defined uniformly across every value kind. Every concrete kind gets its
own small type; values themselves are stored as plain `interface{}`
rather than behind a common value interface, and the interpreter
type-switches on them - idiomatic for a small, closed value set, and it
keeps Callable dispatch (which needs to call back into the interpreter
to run a UserFunction's body) out of this package entirely, avoiding an
object<->interpreter import cycle.

LiteralValue variants and their Go representation:

	Number      float64
	StringValue string
	True/False  bool
	Nil         nil (the untyped Go nil, stored as interface{})
	Callable    *UserFunction or *NativeFunction
	Class       *Class
	Instance    *Instance
*/
package object

import (
	"fmt"
	"strconv"

	"github.com/loxmix/loxmix/ast"
	"github.com/loxmix/loxmix/environment"
	"github.com/loxmix/loxmix/token"
)

// Value is loxmix's runtime value. It is an alias rather than a new
// named type so callers can pass Go's nil directly for Nil.
type Value = interface{}

// Callable is implemented by both UserFunction and NativeFunction so
// the interpreter can arity-check a call before deciding, by type
// switch, how to actually invoke it.
type Callable interface {
	CallableName() string
	CallableArity() int
}

// UserFunction is a callable built from a `fun`/method declaration (or
// an anonymous function expression). ParentEnv is the environment
// captured at the point the function value was created; IsInitializer
// marks a class's `init` method so the interpreter knows to always
// return the instance regardless of what the body returns.
type UserFunction struct {
	Name          string
	Params        []token.Token
	Body          []ast.Stmt
	ParentEnv     *environment.Environment
	IsInitializer bool
}

func (f *UserFunction) CallableName() string { return f.Name }
func (f *UserFunction) CallableArity() int    { return len(f.Params) }

// Bind returns a copy of f whose ParentEnv is a fresh environment,
// enclosing f's own ParentEnv, with `this` (and, for inherited methods,
// the implicit `super` already reachable through that chain) defined to
// receiver. This is how Get and Super produce a "bound method" value:
// the receiver rides along in the captured environment, not in any
// per-call metadata (see interpreter package notes on this).
func (f *UserFunction) Bind(receiver *Instance) *UserFunction {
	env := environment.New(f.ParentEnv)
	env.Define("this", receiver)
	bound := *f
	bound.ParentEnv = env
	return &bound
}

// NativeFunction is a callable implemented in Go. CmdFunction
// declarations and the builtin `clock` are both NativeFunctions.
type NativeFunction struct {
	Name  string
	Arity int
	Fn    func(args []Value) (Value, error)
}

func (f *NativeFunction) CallableName() string { return f.Name }
func (f *NativeFunction) CallableArity() int    { return f.Arity }

// Class is a runtime class value: a name, its own methods, and an
// optional superclass to continue the lookup chain into.
type Class struct {
	Name       string
	Methods    map[string]*UserFunction
	Superclass *Class
}

// FindMethod walks this class's own methods, then its superclass
// chain, returning the first match.
func (c *Class) FindMethod(name string) (*UserFunction, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// field is one (name, value) pair in an Instance's field list. Fields
// are kept as an ordered slice, not a map, per the data model: lookup is
// linear, insertion order is preserved, and setting an existing field
// leaves the slice length unchanged.
type field struct {
	name  string
	value Value
}

// Instance is a class instance: a back-reference to its Class and an
// ordered field list. Instances are always referenced through a
// pointer, so multiple variables holding "the same" instance share
// mutations - matching the data model's "shared by reference" field.
type Instance struct {
	Class  *Class
	fields []field
}

// NewInstance allocates a fresh, fieldless instance of c.
func NewInstance(c *Class) *Instance {
	return &Instance{Class: c}
}

// GetField returns a field's value by name, searching only the
// instance's own fields (methods are reached through Class.FindMethod,
// not through this).
func (i *Instance) GetField(name string) (Value, bool) {
	for _, f := range i.fields {
		if f.name == name {
			return f.value, true
		}
	}
	return nil, false
}

// SetField overwrites an existing field in place, or appends a new one.
func (i *Instance) SetField(name string, value Value) {
	for idx := range i.fields {
		if i.fields[idx].name == name {
			i.fields[idx].value = value
			return
		}
	}
	i.fields = append(i.fields, field{name: name, value: value})
}

// Truthy implements loxmix's truthiness rule: only Nil and the boolean
// false are falsy. Everything else - 0, "", any callable, any instance
// - is truthy. This applies uniformly; there is no special-cased
// "falsy number".
func Truthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// Equals implements `==`/`!=`. Equality is only ever defined between
// two values of the same variant (Number/Number, String/String,
// Boolean/Boolean, Nil/Nil, Callable/Callable by name+arity, whether
// each side is a UserFunction or a NativeFunction); any other pairing -
// including a Class or an Instance against anything - is simply false,
// never a runtime error.
func Equals(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case Callable:
		bv, ok := b.(Callable)
		return ok && av.CallableName() == bv.CallableName() && av.CallableArity() == bv.CallableArity()
	default:
		return false
	}
}

// Stringify renders a value the way `print` does: numbers as their
// shortest round-tripping decimal, strings bare (no quotes), booleans
// as true/false, nil as "nil", callables as "name/arity", classes as
// "Class 'name'", and instances as "Instance of 'ClassName'".
func Stringify(v Value) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case string:
		return val
	case Callable:
		return fmt.Sprintf("%s/%d", val.CallableName(), val.CallableArity())
	case *Class:
		return fmt.Sprintf("Class '%s'", val.Name)
	case *Instance:
		return fmt.Sprintf("Instance of '%s'", val.Class.Name)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// TypeName names a value's kind for runtime type-mismatch diagnostics.
func TypeName(v Value) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case Callable:
		return "function"
	case *Class:
		return "class"
	case *Instance:
		return "instance"
	default:
		return fmt.Sprintf("%T", val)
	}
}
