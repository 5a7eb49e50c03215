/*
File    : loxmix/environment/environment.go

Package environment implements loxmix's chained lexical scopes: each
scope is a values map plus a parent pointer, and the whole chain is
adapted to the resolver-driven model so a reference's scope depth is
computed once, ahead of time. Evaluation either walks exactly that many
links (the fast path) or falls all the way out to globals (the
fallback path for references the resolver left unmapped, i.e. every
global reference).
*/
package environment

import "fmt"

// Locals is the resolver's output: expression id -> scope depth. It is
// a plain map shared by reference across every Environment created
// during one interpretation, because the depths it holds are computed
// once for the whole program, not per-environment.
type Locals map[int]int

// Environment is one lexical scope: its own bindings, plus a pointer to
// the scope it is nested in (nil only for globals).
type Environment struct {
	values    map[string]interface{}
	enclosing *Environment
	locals    Locals
}

// NewGlobals allocates the single globals environment for an
// interpretation, retaining locals for every Get/Assign it or its
// descendants perform.
func NewGlobals(locals Locals) *Environment {
	return &Environment{values: make(map[string]interface{}), locals: locals}
}

// New encloses a fresh scope inside enclosing, sharing its locals map
// by reference (enclosing is never nil in practice; only NewGlobals
// produces a nil-enclosing environment).
func New(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]interface{}), enclosing: enclosing, locals: enclosing.locals}
}

// Define inserts name into this scope unconditionally. Redefining an
// already-bound name in the same scope is allowed - loxmix is dynamic,
// and `var x = 1; var x = 2;` in one block is legal.
func (e *Environment) Define(name string, value interface{}) {
	e.values[name] = value
}

// Get resolves name for the expression exprID. If the resolver
// recorded a depth for exprID, the binding is read exactly that many
// scopes outward (an O(1) chain walk); otherwise the reference is
// global and the full chain is walked out to the globals scope.
func (e *Environment) Get(name string, exprID int) (interface{}, error) {
	if depth, ok := e.locals[exprID]; ok {
		env, err := e.ancestor(depth)
		if err != nil {
			return nil, err
		}
		if v, ok := env.values[name]; ok {
			return v, nil
		}
		return nil, fmt.Errorf("undefined variable '%s'", name)
	}
	return e.globals().getGlobal(name)
}

// GetThisInstance looks up `this` one scope closer than the scope a
// `super` expression resolved at - i.e. at depth-1 of the given
// expression id. Super and this are deliberately placed in separate,
// nested scopes by both the resolver and the evaluator's class
// machinery specifically so this lookup lands on the method receiver
// rather than on `super` itself.
func (e *Environment) GetThisInstance(superExprID int) (interface{}, error) {
	depth, ok := e.locals[superExprID]
	if !ok {
		return nil, fmt.Errorf("'super' used outside a method")
	}
	env, err := e.ancestor(depth - 1)
	if err != nil {
		return nil, err
	}
	v, ok := env.values["this"]
	if !ok {
		return nil, fmt.Errorf("undefined variable 'this'")
	}
	return v, nil
}

// Assign writes value into the scope where name is already bound,
// using the same depth-or-global lookup rule as Get. It fails if name
// is unbound anywhere in the chain.
func (e *Environment) Assign(name string, value interface{}, exprID int) error {
	if depth, ok := e.locals[exprID]; ok {
		env, err := e.ancestor(depth)
		if err != nil {
			return err
		}
		if _, ok := env.values[name]; !ok {
			return fmt.Errorf("undefined variable '%s'", name)
		}
		env.values[name] = value
		return nil
	}
	return e.globals().assignGlobal(name, value)
}

// Enclosing exposes the parent scope, used by the interpreter to
// restore the active environment after a block or call returns.
func (e *Environment) Enclosing() *Environment { return e.enclosing }

// MergeLocals copies every entry of locals into e's own locals map in
// place, so environments created earlier (which captured the same map
// by reference) see the new entries too. Used by the REPL, where each
// line is resolved independently into a brand new map that still has
// to extend the one long-lived interpreter's locals.
func (e *Environment) MergeLocals(locals Locals) {
	for id, depth := range locals {
		e.locals[id] = depth
	}
}

// GetOwn looks up name in this exact scope only, without walking the
// chain. The interpreter uses this to recover a bound method's
// receiver out of the scope UserFunction.Bind defined it in, when an
// initializer returns and the instance has to be produced without any
// per-call receiver metadata.
func (e *Environment) GetOwn(name string) (interface{}, bool) {
	v, ok := e.values[name]
	return v, ok
}

func (e *Environment) ancestor(depth int) (*Environment, error) {
	env := e
	for i := 0; i < depth; i++ {
		if env.enclosing == nil {
			return nil, fmt.Errorf("internal error: scope depth %d exceeds chain", depth)
		}
		env = env.enclosing
	}
	return env, nil
}

func (e *Environment) globals() *Environment {
	env := e
	for env.enclosing != nil {
		env = env.enclosing
	}
	return env
}

func (e *Environment) getGlobal(name string) (interface{}, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("undefined variable '%s'", name)
}

func (e *Environment) assignGlobal(name string, value interface{}) error {
	if _, ok := e.values[name]; !ok {
		return fmt.Errorf("undefined variable '%s'", name)
	}
	e.values[name] = value
	return nil
}
