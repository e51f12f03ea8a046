package op

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/script"
	"github.com/lifo-cli/lifo/stack"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	lua "github.com/yuin/gopher-lua"
)

func init() {
	viper.Set(key.ScriptPreloadLibs, false)
	viper.Set(key.OutputSeparator, ", ")
}

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Splits the kind from its argument", func() {
			o, err := Parse("  where   x > 3 ")
			So(err, ShouldBeNil)
			So(o, ShouldResemble, Op{Kind: Where, Arg: "x > 3"})
			So(o.String(), ShouldEqual, "where x > 3")
		})

		Convey("Accepts any whitespace between the kind and its argument", func() {
			o, err := Parse("where\tx > 3")
			So(err, ShouldBeNil)
			So(o, ShouldResemble, Op{Kind: Where, Arg: "x > 3"})

			o, err = Parse("count\n  x > 2")
			So(err, ShouldBeNil)
			So(o, ShouldResemble, Op{Kind: Count, Arg: "x > 2"})
		})

		Convey("Is case-insensitive on the kind", func() {
			o, err := Parse("POP")
			So(err, ShouldBeNil)
			So(o.Kind, ShouldEqual, Pop)
		})

		Convey("Accepts max with or without a comparator", func() {
			o, err := Parse("max")
			So(err, ShouldBeNil)
			So(o.Arg, ShouldBeEmpty)

			o, err = Parse("max a > b and -1 or 1")
			So(err, ShouldBeNil)
			So(o.Arg, ShouldEqual, "a > b and -1 or 1")
		})

		Convey("Rejects a missing argument", func() {
			_, err := Parse("where")
			So(errors.Is(err, ErrMissingArgument), ShouldBeTrue)
		})

		Convey("Rejects an unexpected argument", func() {
			_, err := Parse("pop 3")
			So(errors.Is(err, ErrUnexpectedArgument), ShouldBeTrue)
		})

		Convey("Suggests the closest kind for typos", func() {
			_, err := Parse("wehre x > 3")
			So(errors.Is(err, ErrUnknownOperation), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, `did you mean "where"?`)
		})

		Convey("ParseAll stops at the first failure", func() {
			_, err := ParseAll([]string{"push 1", "bogus"})
			So(err, ShouldNotBeNil)

			ops, err := ParseAll([]string{"push 1", "pop"})
			So(err, ShouldBeNil)
			So(ops, ShouldHaveLength, 2)
		})
	})

	Convey("Kinds", t, func() {
		So(Kinds(), ShouldContain, "select")
		So(Push.Mutates(), ShouldBeTrue)
		So(Where.Mutates(), ShouldBeFalse)
	})
}

func demoStack() *stack.Stack[lua.LValue] {
	return stack.Of(script.ParseAll([]string{"1", "5", "3", "8"})...)
}

func TestApply(t *testing.T) {
	Convey("Given the demo stack", t, func() {
		s := demoStack()

		Convey("The demo walkthrough produces the documented results", func() {
			results, err := ApplyAll(s, Demo())
			So(err, ShouldBeNil)
			So(results, ShouldHaveLength, 7)

			So(results[0].Stack, ShouldResemble, []any{8.0, 5.0})
			So(results[1].Stack, ShouldResemble, []any{13.0, 8.0, 10.0, 6.0})
			So(results[2].Stack, ShouldResemble, []any{1.0, 5.0, 3.0, 8.0})
			So(results[3].Value, ShouldEqual, 8.0)
			So(results[4].Value, ShouldEqual, true)
			So(results[5].Value, ShouldEqual, 3.0)
			So(results[6].Value, ShouldEqual, 8.0)

			So(s.Items(), ShouldResemble, script.ParseAll([]string{"8", "3", "5", "1"}))
		})

		Convey("Results render as plain text", func() {
			results, err := ApplyAll(s, Demo())
			So(err, ShouldBeNil)
			So(results[0].String(), ShouldEqual, "where x > 3 → [8, 5]")
			So(results[4].String(), ShouldEqual, "contains x == 3 → true")
		})

		Convey("Mutating operations change the stack", func() {
			results, err := ApplyAll(s, []Op{{Kind: Push, Arg: "pear"}, {Kind: Peek}, {Kind: Pop}, {Kind: Len}})
			So(err, ShouldBeNil)
			So(results[1].Value, ShouldEqual, "pear")
			So(results[2].String(), ShouldEqual, `pop → "pear"`)
			So(results[3].Value, ShouldEqual, 4.0)

			_, err = Op{Kind: Clear}.Apply(s)
			So(err, ShouldBeNil)
			So(s.IsEmpty(), ShouldBeTrue)
		})

		Convey("A custom comparator drives max", func() {
			r, err := Op{Kind: Max, Arg: "a > b and -1 or (a < b and 1 or 0)"}.Apply(s)
			So(err, ShouldBeNil)
			So(r.Value, ShouldEqual, 1.0)
		})

		Convey("A comparator breaking the contract is reported", func() {
			r, err := Op{Kind: Max, Arg: "b - a"}.Apply(s)
			So(err, ShouldBeNil)
			So(errors.Is(r.Err(), stack.ErrInvalidComparison), ShouldBeTrue)
		})

		Convey("No match is reported, not returned", func() {
			r, err := Op{Kind: First, Arg: "x > 100"}.Apply(s)
			So(err, ShouldBeNil)
			So(errors.Is(r.Err(), stack.ErrNotFound), ShouldBeTrue)
			So(r.Value, ShouldBeNil)
		})

		Convey("Lua runtime errors are reported and the stack survives", func() {
			r, err := Op{Kind: Where, Arg: "x.y"}.Apply(s)
			So(err, ShouldBeNil)
			So(r.Err(), ShouldNotBeNil)
			So(r.Stack, ShouldBeNil)
			So(s.Len(), ShouldEqual, 4)
		})

		Convey("Compile errors are returned", func() {
			_, err := Op{Kind: Select, Arg: "x +"}.Apply(s)
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given an empty stack", t, func() {
		s := stack.New[lua.LValue]()

		for _, o := range []Op{{Kind: Pop}, {Kind: Peek}, {Kind: Max}} {
			r, err := o.Apply(s)
			So(err, ShouldBeNil)
			So(errors.Is(r.Err(), stack.ErrEmptyContainer), ShouldBeTrue)
		}

		r, err := Op{Kind: Empty}.Apply(s)
		So(err, ShouldBeNil)
		So(r.Value, ShouldEqual, true)

		r, err = Op{Kind: Reverse}.Apply(s)
		So(err, ShouldBeNil)
		So(r.String(), ShouldEqual, "reverse → []")
	})

	Convey("Results encode to JSON", t, func() {
		r, err := Op{Kind: Count, Arg: "x > 2"}.Apply(demoStack())
		So(err, ShouldBeNil)

		var buf bytes.Buffer
		encoder := json.NewEncoder(&buf)
		encoder.SetEscapeHTML(false)
		So(encoder.Encode(r), ShouldBeNil)
		So(buf.String(), ShouldEqual, `{"op":"count","arg":"x > 2","value":3,"stack":null}`+"\n")
	})
}
