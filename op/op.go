// Package op parses textual stack operations such as "push 3" or "where x > 3" and applies them to a stack of Lua values.
package op

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

// Kind names a stack operation.
type Kind string

const (
	Push     Kind = "push"
	Pop      Kind = "pop"
	Peek     Kind = "peek"
	Empty    Kind = "empty"
	Len      Kind = "len"
	Clear    Kind = "clear"
	Reverse  Kind = "reverse"
	Where    Kind = "where"
	Select   Kind = "select"
	First    Kind = "first"
	Contains Kind = "contains"
	Count    Kind = "count"
	Max      Kind = "max"
)

var kinds = []Kind{Push, Pop, Peek, Empty, Len, Clear, Reverse, Where, Select, First, Contains, Count, Max}

var (
	ErrUnknownOperation   = errors.New("unknown operation")
	ErrMissingArgument    = errors.New("missing argument")
	ErrUnexpectedArgument = errors.New("unexpected argument")
)

// arity describes whether an operation requires, accepts or rejects an argument.
type arity int

const (
	noArg arity = iota
	optionalArg
	requiredArg
)

func (k Kind) arity() arity {
	switch k {
	case Push, Where, Select, First, Contains, Count:
		return requiredArg
	case Max:
		return optionalArg
	default:
		return noArg
	}
}

// Mutates reports whether the operation changes the stack it is applied to.
func (k Kind) Mutates() bool {
	return k == Push || k == Pop || k == Clear
}

// Kinds returns the names of every supported operation.
func Kinds() []string {
	return lo.Map(kinds, func(k Kind, _ int) string {
		return string(k)
	})
}

// Op is a parsed operation with its optional argument: a value for push,
// a Lua expression for the queries.
type Op struct {
	Kind Kind
	Arg  string
}

func (o Op) String() string {
	if o.Arg == "" {
		return string(o.Kind)
	}
	return string(o.Kind) + " " + o.Arg
}

// Parse reads an operation from its textual form: the first word names the kind,
// the remainder after any run of whitespace is the argument.
func Parse(s string) (Op, error) {
	s = strings.TrimSpace(s)
	name, arg := s, ""
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		name, arg = s[:i], strings.TrimSpace(s[i:])
	}
	kind := Kind(strings.ToLower(name))

	if !lo.Contains(kinds, kind) {
		return Op{}, errUnknownKind(name)
	}

	switch kind.arity() {
	case requiredArg:
		if arg == "" {
			return Op{}, fmt.Errorf("%s: %w", kind, ErrMissingArgument)
		}
	case noArg:
		if arg != "" {
			return Op{}, fmt.Errorf("%s: %w %q", kind, ErrUnexpectedArgument, arg)
		}
	}

	return Op{Kind: kind, Arg: arg}, nil
}

// ParseAll parses every element of ss, stopping at the first failure.
func ParseAll(ss []string) ([]Op, error) {
	ops := make([]Op, 0, len(ss))
	for _, s := range ss {
		o, err := Parse(s)
		if err != nil {
			return nil, err
		}
		ops = append(ops, o)
	}
	return ops, nil
}

func errUnknownKind(name string) error {
	closest := lo.MinBy(Kinds(), func(a string, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	return fmt.Errorf("%w %q, did you mean %q?", ErrUnknownOperation, name, closest)
}

// Demo returns the walkthrough run by "lifo demo": one of each query over the same stack.
func Demo() []Op {
	return lo.Must(ParseAll([]string{
		"where x > 3",
		"select x + 5",
		"reverse",
		"first x > 4",
		"contains x == 3",
		"count x > 2",
		"max",
	}))
}
