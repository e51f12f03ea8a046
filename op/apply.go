package op

import (
	"fmt"
	"strings"

	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/log"
	"github.com/lifo-cli/lifo/script"
	"github.com/lifo-cli/lifo/stack"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	lua "github.com/yuin/gopher-lua"
)

// Result is the outcome of applying one operation.
// Value is set for scalar results, Stack (in pop order) for operations producing a new stack.
type Result struct {
	Op    Kind   `json:"op" jsonschema:"enum=push,enum=pop,enum=peek,enum=empty,enum=len,enum=clear,enum=reverse,enum=where,enum=select,enum=first,enum=contains,enum=count,enum=max"`
	Arg   string `json:"arg,omitempty"`
	Value any    `json:"value"`
	Stack []any  `json:"stack"`
	Error string `json:"error,omitempty"`

	value    lua.LValue
	produced []lua.LValue
	err      error
}

func (r *Result) setValue(v lua.LValue) {
	r.value = v
	r.Value = script.ToGo(v)
}

func (r *Result) setStack(s *stack.Stack[lua.LValue]) {
	r.produced = s.Items()
	r.Stack = lo.Map(r.produced, func(v lua.LValue, _ int) any {
		return script.ToGo(v)
	})
}

func (r *Result) fail(err error) {
	if err == nil {
		return
	}
	r.err = err
	r.Error = err.Error()
	r.value, r.Value = nil, nil
	r.produced, r.Stack = nil, nil
}

func (r *Result) set(v lua.LValue, err error) {
	if err != nil {
		r.fail(err)
		return
	}
	r.setValue(v)
}

// Err returns the failure recorded for the operation, if any.
func (r *Result) Err() error {
	return r.err
}

// String renders the result as a single line of plain text.
func (r *Result) String() string {
	head := Op{Kind: r.Op, Arg: r.Arg}.String()

	switch {
	case r.err != nil:
		return fmt.Sprintf("%s → error: %v", head, r.err)
	case r.Stack != nil:
		return fmt.Sprintf("%s → %s", head, FormatStack(r.produced))
	case r.value != nil:
		return fmt.Sprintf("%s → %s", head, script.Format(r.value))
	default:
		return head
	}
}

// FormatStack renders values, given in pop order, between brackets using the configured separator.
func FormatStack(values []lua.LValue) string {
	parts := lo.Map(values, func(v lua.LValue, _ int) string {
		return script.Format(v)
	})
	return "[" + strings.Join(parts, viper.GetString(key.OutputSeparator)) + "]"
}

// Apply executes the operation against s.
//
// Stack failures (empty stack, no match, invalid comparison) and Lua runtime errors are recorded
// in the result; only expressions that fail to compile are returned as errors.
func (o Op) Apply(s *stack.Stack[lua.LValue]) (*Result, error) {
	r := &Result{Op: o.Kind, Arg: o.Arg}

	switch o.Kind {
	case Push:
		v := script.Parse(o.Arg)
		s.Push(v)
		r.setValue(v)
	case Pop:
		r.set(s.Pop())
	case Peek:
		r.set(s.Peek())
	case Empty:
		r.setValue(lua.LBool(s.IsEmpty()))
	case Len:
		r.setValue(lua.LNumber(s.Len()))
	case Clear:
		s.Clear()
	case Reverse:
		r.setStack(s.Reverse())
	case Where, First, Contains, Count:
		p, err := script.Predicate(o.Arg)
		if err != nil {
			return nil, err
		}
		defer p.Close()

		switch o.Kind {
		case Where:
			r.setStack(s.Where(p.Test))
		case First:
			r.set(s.First(p.Test))
		case Contains:
			r.setValue(lua.LBool(s.Contains(p.Test)))
		case Count:
			r.setValue(lua.LNumber(s.Count(p.Test)))
		}
		r.fail(p.Err())
	case Select:
		p, err := script.Selector(o.Arg)
		if err != nil {
			return nil, err
		}
		defer p.Close()

		r.setStack(stack.Select(s, p.Map))
		r.fail(p.Err())
	case Max:
		if o.Arg == "" {
			r.set(s.Max(script.Ascending))
			break
		}

		p, err := script.Comparator(o.Arg)
		if err != nil {
			return nil, err
		}
		defer p.Close()

		r.set(s.Max(p.Compare))
		r.fail(p.Err())
	default:
		return nil, errUnknownKind(string(o.Kind))
	}

	log.WithFields(log.Fields{"op": o.Kind, "arg": o.Arg, "len": s.Len()}).Debug(r.String())
	return r, nil
}

// ApplyAll applies ops in order to the same stack.
func ApplyAll(s *stack.Stack[lua.LValue], ops []Op) ([]*Result, error) {
	results := make([]*Result, 0, len(ops))
	for _, o := range ops {
		r, err := o.Apply(s)
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}
