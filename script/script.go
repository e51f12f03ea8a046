// Package script compiles Lua expressions into the predicates, selectors and comparators accepted by package stack.
//
// An expression is the body of a Lua function: predicates and selectors see the element as x,
// comparators see the two operands as a and b. "x > 3", "x .. '!'" and "a < b and -1 or (a > b and 1 or 0)"
// are all valid expressions.
package script

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/log"
	libs "github.com/metafates/mangal-lua-libs"
	"github.com/spf13/viper"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

// ErrEmptyExpression is returned when compiling a blank expression.
var ErrEmptyExpression = errors.New("empty expression")

// bytecodeCache maps generated Lua source to its compiled prototype.
var bytecodeCache sync.Map

// Program is a compiled expression bound to its own Lua state.
//
// Callbacks handed to a stack cannot return errors, so the first runtime failure is latched:
// later calls return zero values without running Lua and Err reports the failure.
type Program struct {
	Expr  string
	state *lua.LState
	fn    *lua.LFunction
	err   error
}

// Predicate compiles expr as a function of x whose truthiness decides a match.
func Predicate(expr string) (*Program, error) {
	return compile(expr, "x")
}

// Selector compiles expr as a function of x whose value replaces the element.
func Selector(expr string) (*Program, error) {
	return compile(expr, "x")
}

// Comparator compiles expr as a function of a and b returning -1, 0 or 1.
func Comparator(expr string) (*Program, error) {
	return compile(expr, "a", "b")
}

func newState() *lua.LState {
	state := lua.NewState()
	if viper.GetBool(key.ScriptPreloadLibs) {
		libs.Preload(state)
	}
	return state
}

func compile(expr string, params ...string) (*Program, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, ErrEmptyExpression
	}

	source := fmt.Sprintf("return function(%s) return (%s) end", strings.Join(params, ", "), expr)
	state := newState()

	if err := load(state, source, expr); err != nil {
		state.Close()
		return nil, fmt.Errorf("compile %q: %w", expr, err)
	}

	fn, ok := state.Get(-1).(*lua.LFunction)
	state.Pop(1)
	if !ok {
		state.Close()
		return nil, fmt.Errorf("compile %q: chunk did not produce a function", expr)
	}

	log.Debugf("compiled expression %q", expr)
	return &Program{Expr: expr, state: state, fn: fn}, nil
}

// load runs the chunk for source, leaving its single return value on the stack.
func load(state *lua.LState, source, name string) error {
	if cached, exists := bytecodeCache.Load(source); exists {
		state.Push(state.NewFunctionFromProto(cached.(*lua.FunctionProto)))
		return state.PCall(0, 1, nil)
	}

	chunk, err := parse.Parse(strings.NewReader(source), name)
	if err != nil {
		return err
	}

	proto, err := lua.Compile(chunk, name)
	if err != nil {
		return err
	}

	bytecodeCache.Store(source, proto)

	state.Push(state.NewFunctionFromProto(proto))
	return state.PCall(0, 1, nil)
}

func (p *Program) call(args ...lua.LValue) lua.LValue {
	if p.err != nil {
		return lua.LNil
	}

	if err := p.state.CallByParam(lua.P{Fn: p.fn, NRet: 1, Protect: true}, args...); err != nil {
		p.err = fmt.Errorf("evaluate %q: %w", p.Expr, err)
		log.WithFields(log.Fields{"expr": p.Expr}).Warn(err)
		return lua.LNil
	}

	ret := p.state.Get(-1)
	p.state.Pop(1)
	return ret
}

// Test evaluates the program as a predicate.
func (p *Program) Test(x lua.LValue) bool {
	return lua.LVAsBool(p.call(x))
}

// Map evaluates the program as a selector.
func (p *Program) Map(x lua.LValue) lua.LValue {
	return p.call(x)
}

// Compare evaluates the program as a three-way comparator.
// Results that are not whole numbers latch an error; whole numbers are passed through
// so the caller can enforce the {-1, 0, 1} contract itself.
func (p *Program) Compare(a, b lua.LValue) int {
	ret := p.call(a, b)
	if p.err != nil {
		return 0
	}

	n, ok := ret.(lua.LNumber)
	if !ok || float64(n) != math.Trunc(float64(n)) {
		p.err = fmt.Errorf("evaluate %q: comparator returned %s, want an integer", p.Expr, ret.String())
		return 0
	}
	return int(n)
}

// Err returns the first runtime error raised by the program, if any.
func (p *Program) Err() error {
	return p.err
}

// Close releases the underlying Lua state.
func (p *Program) Close() {
	p.state.Close()
}
