package script

import (
	"strconv"
	"strings"

	"github.com/lifo-cli/lifo/stack"
	lua "github.com/yuin/gopher-lua"
)

// Parse converts command-line text into a Lua value: numbers and booleans are recognised,
// anything else becomes a string.
func Parse(s string) lua.LValue {
	trimmed := strings.TrimSpace(s)
	switch trimmed {
	case "true":
		return lua.LTrue
	case "false":
		return lua.LFalse
	}

	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return lua.LNumber(n)
	}
	return lua.LString(s)
}

// ParseAll applies Parse to every element of values.
func ParseAll(values []string) []lua.LValue {
	out := make([]lua.LValue, len(values))
	for i, v := range values {
		out[i] = Parse(v)
	}
	return out
}

// ToGo converts a Lua value into its closest plain Go representation, suitable for JSON encoding.
func ToGo(v lua.LValue) any {
	switch v := v.(type) {
	case lua.LNumber:
		return float64(v)
	case lua.LString:
		return string(v)
	case lua.LBool:
		return bool(v)
	case *lua.LNilType:
		return nil
	case *lua.LTable:
		if n := v.MaxN(); n > 0 {
			list := make([]any, 0, n)
			for i := 1; i <= n; i++ {
				list = append(list, ToGo(v.RawGetInt(i)))
			}
			return list
		}

		m := make(map[string]any)
		v.ForEach(func(k, val lua.LValue) {
			m[k.String()] = ToGo(val)
		})
		return m
	default:
		return v.String()
	}
}

// Format renders a value for display. Strings are quoted so "8" and 8 stay distinguishable.
func Format(v lua.LValue) string {
	if s, ok := v.(lua.LString); ok {
		return strconv.Quote(string(s))
	}
	return v.String()
}

// Ascending is the default comparator: numbers compare numerically, strings lexically,
// and values of different types by their Lua type.
func Ascending(a, b lua.LValue) int {
	if an, ok := a.(lua.LNumber); ok {
		if bn, ok := b.(lua.LNumber); ok {
			return stack.Ascending(float64(an), float64(bn))
		}
	}

	if as, ok := a.(lua.LString); ok {
		if bs, ok := b.(lua.LString); ok {
			return stack.Ascending(string(as), string(bs))
		}
	}

	return stack.Ascending(int(a.Type()), int(b.Type()))
}
