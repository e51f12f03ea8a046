package script

import (
	"errors"
	"testing"

	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/stack"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	lua "github.com/yuin/gopher-lua"
)

func init() {
	viper.Set(key.ScriptPreloadLibs, false)
}

func TestPrograms(t *testing.T) {
	Convey("Given compiled expressions", t, func() {
		Convey("A predicate tests its argument", func() {
			p, err := Predicate("x > 3")
			So(err, ShouldBeNil)
			defer p.Close()

			So(p.Test(lua.LNumber(5)), ShouldBeTrue)
			So(p.Test(lua.LNumber(3)), ShouldBeFalse)
			So(p.Err(), ShouldBeNil)
		})

		Convey("A selector maps its argument", func() {
			p, err := Selector("x + 5")
			So(err, ShouldBeNil)
			defer p.Close()

			So(p.Map(lua.LNumber(8)), ShouldEqual, lua.LNumber(13))
		})

		Convey("A comparator sees a and b", func() {
			p, err := Comparator("a < b and -1 or (a > b and 1 or 0)")
			So(err, ShouldBeNil)
			defer p.Close()

			So(p.Compare(lua.LNumber(1), lua.LNumber(2)), ShouldEqual, -1)
			So(p.Compare(lua.LNumber(2), lua.LNumber(1)), ShouldEqual, 1)
			So(p.Compare(lua.LNumber(2), lua.LNumber(2)), ShouldEqual, 0)
		})

		Convey("A comparator returning a non-integer latches an error", func() {
			p, err := Comparator("'bigger'")
			So(err, ShouldBeNil)
			defer p.Close()

			So(p.Compare(lua.LNumber(1), lua.LNumber(2)), ShouldEqual, 0)
			So(p.Err(), ShouldNotBeNil)
		})

		Convey("Programs drive stack queries", func() {
			s := stack.Of[lua.LValue](lua.LNumber(1), lua.LNumber(5), lua.LNumber(3), lua.LNumber(8))

			where, err := Predicate("x > 3")
			So(err, ShouldBeNil)
			defer where.Close()
			So(s.Where(where.Test).Items(), ShouldResemble, []lua.LValue{lua.LNumber(8), lua.LNumber(5)})

			v, err := s.Max(Ascending)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, lua.LNumber(8))
		})
	})

	Convey("Given faulty expressions", t, func() {
		Convey("A blank expression is rejected", func() {
			_, err := Predicate("   ")
			So(errors.Is(err, ErrEmptyExpression), ShouldBeTrue)
		})

		Convey("A syntax error fails compilation", func() {
			_, err := Predicate("x >")
			So(err, ShouldNotBeNil)
		})

		Convey("A runtime error is latched and later calls short-circuit", func() {
			p, err := Predicate("x.field > 1")
			So(err, ShouldBeNil)
			defer p.Close()

			So(p.Test(lua.LNumber(1)), ShouldBeFalse)
			So(p.Err(), ShouldNotBeNil)

			first := p.Err()
			So(p.Test(lua.LNumber(2)), ShouldBeFalse)
			So(p.Err(), ShouldEqual, first)
		})
	})

	Convey("Compiled chunks are cached by source", t, func() {
		p1, err := Predicate("x == 42")
		So(err, ShouldBeNil)
		defer p1.Close()

		_, cached := bytecodeCache.Load("return function(x) return (x == 42) end")
		So(cached, ShouldBeTrue)

		p2, err := Predicate("x == 42")
		So(err, ShouldBeNil)
		defer p2.Close()
		So(p2.Test(lua.LNumber(42)), ShouldBeTrue)
	})
}

func TestValues(t *testing.T) {
	Convey("Parse", t, func() {
		So(Parse("8"), ShouldEqual, lua.LNumber(8))
		So(Parse("-2.5"), ShouldEqual, lua.LNumber(-2.5))
		So(Parse("true"), ShouldEqual, lua.LTrue)
		So(Parse("false"), ShouldEqual, lua.LFalse)
		So(Parse("pear"), ShouldEqual, lua.LString("pear"))
		So(ParseAll([]string{"1", "a"}), ShouldResemble, []lua.LValue{lua.LNumber(1), lua.LString("a")})
	})

	Convey("ToGo", t, func() {
		So(ToGo(lua.LNumber(3)), ShouldEqual, 3.0)
		So(ToGo(lua.LString("x")), ShouldEqual, "x")
		So(ToGo(lua.LTrue), ShouldEqual, true)
		So(ToGo(lua.LNil), ShouldBeNil)

		L := lua.NewState()
		defer L.Close()

		list := L.NewTable()
		list.Append(lua.LNumber(1))
		list.Append(lua.LString("two"))
		So(ToGo(list), ShouldResemble, []any{1.0, "two"})

		record := L.NewTable()
		record.RawSetString("name", lua.LString("top"))
		So(ToGo(record), ShouldResemble, map[string]any{"name": "top"})
	})

	Convey("Format quotes strings only", t, func() {
		So(Format(lua.LNumber(8)), ShouldEqual, "8")
		So(Format(lua.LString("8")), ShouldEqual, `"8"`)
		So(Format(lua.LTrue), ShouldEqual, "true")
	})

	Convey("Ascending", t, func() {
		So(Ascending(lua.LNumber(1), lua.LNumber(2)), ShouldEqual, -1)
		So(Ascending(lua.LString("b"), lua.LString("a")), ShouldEqual, 1)
		So(Ascending(lua.LNumber(9), lua.LString("a")), ShouldEqual, Ascending(lua.LNumber(0), lua.LString("")))
	})
}
