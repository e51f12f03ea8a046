package stack

import (
	"errors"
	"strconv"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func greaterThan(n int) func(int) bool {
	return func(x int) bool { return x > n }
}

// explodeOn returns a counter that panics with "boom" on its nth call.
func explodeOn(n int) func() {
	calls := 0
	return func() {
		calls++
		if calls == n {
			panic("boom")
		}
	}
}

func TestQueries(t *testing.T) {
	Convey("Given 1, 5, 3, 8 pushed in that order", t, func() {
		s := Of(1, 5, 3, 8)
		original := []int{1, 5, 3, 8}

		Convey("Where keeps the matches in source order", func() {
			So(popAll(s.Where(greaterThan(3))), ShouldResemble, []int{8, 5})
			So(s.items, ShouldResemble, original)
		})

		Convey("Where with no match yields an empty stack", func() {
			So(s.Where(greaterThan(100)).IsEmpty(), ShouldBeTrue)
			So(s.items, ShouldResemble, original)
		})

		Convey("Select maps every element in source order", func() {
			So(popAll(Select(s, func(x int) int { return x + 5 })), ShouldResemble, []int{13, 8, 10, 6})
			So(s.items, ShouldResemble, original)
		})

		Convey("Select may change the element type", func() {
			So(popAll(Select(s, strconv.Itoa)), ShouldResemble, []string{"8", "3", "5", "1"})
		})

		Convey("Reverse mirrors the pop order", func() {
			So(popAll(s.Reverse()), ShouldResemble, []int{1, 5, 3, 8})
			So(s.items, ShouldResemble, original)
		})

		Convey("Clone keeps the pop order and shares nothing", func() {
			c := s.Clone()
			c.Push(99)
			So(popAll(c), ShouldResemble, []int{99, 8, 3, 5, 1})
			So(s.items, ShouldResemble, original)
		})

		Convey("Derived stacks are independent of the source", func() {
			w := s.Where(greaterThan(0))
			s.Push(7)
			So(popAll(w), ShouldResemble, []int{8, 3, 5, 1})
			So(s.Len(), ShouldEqual, 5)
		})

		Convey("First returns the topmost match", func() {
			v, err := s.First(greaterThan(4))
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 8)

			v, err = s.First(func(x int) bool { return x < 5 })
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 3)
			So(s.items, ShouldResemble, original)
		})

		Convey("First fails with ErrNotFound and still restores the stack", func() {
			_, err := s.First(greaterThan(100))
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
			So(s.items, ShouldResemble, original)
		})

		Convey("Contains and Count", func() {
			So(s.Contains(func(x int) bool { return x == 3 }), ShouldBeTrue)
			So(s.Contains(func(x int) bool { return x == 4 }), ShouldBeFalse)
			So(s.Count(greaterThan(2)), ShouldEqual, 3)
			So(s.Count(greaterThan(2)), ShouldEqual, s.Where(greaterThan(2)).Len())
			So(s.items, ShouldResemble, original)
		})

		Convey("Max with an ascending comparator returns the largest", func() {
			v, err := s.Max(Ascending[int])
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 8)

			v, err = s.Max(Descending[int])
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 1)
			So(s.items, ShouldResemble, original)
		})

		Convey("Max rejects comparator results outside {-1, 0, 1}", func() {
			_, err := s.Max(func(a, b int) int { return b - a })
			So(errors.Is(err, ErrInvalidComparison), ShouldBeTrue)
			So(s.items, ShouldResemble, original)
		})

		Convey("The source pops unchanged after every query", func() {
			_ = s.Where(greaterThan(3))
			_ = Select(s, func(x int) int { return x + 5 })
			_ = s.Reverse()
			_, _ = s.First(greaterThan(4))
			_ = s.Contains(func(x int) bool { return x == 3 })
			_ = s.Count(greaterThan(2))
			_, _ = s.Max(Ascending[int])
			So(popAll(s), ShouldResemble, []int{8, 3, 5, 1})
		})

		Convey("A panicking callback propagates after the stack is restored", func() {
			calls := 0
			So(func() {
				s.Count(func(x int) bool {
					calls++
					if calls == 3 {
						panic("boom")
					}
					return true
				})
			}, ShouldPanicWith, "boom")
			So(s.items, ShouldResemble, original)
		})

		Convey("A panicking predicate in Where leaves the source intact", func() {
			tick := explodeOn(2)
			So(func() {
				s.Where(func(x int) bool {
					tick()
					return x > 3
				})
			}, ShouldPanicWith, "boom")
			So(s.items, ShouldResemble, original)
		})

		Convey("A panicking selector in Select leaves the source intact", func() {
			tick := explodeOn(4)
			So(func() {
				Select(s, func(x int) string {
					tick()
					return strconv.Itoa(x)
				})
			}, ShouldPanicWith, "boom")
			So(s.items, ShouldResemble, original)
		})

		Convey("A panicking comparator in Max leaves the source intact", func() {
			tick := explodeOn(2)
			So(func() {
				_, _ = s.Max(func(a, b int) int {
					tick()
					return Ascending(a, b)
				})
			}, ShouldPanicWith, "boom")
			So(s.items, ShouldResemble, original)
		})

		Convey("Max stops at the first invalid result and restores the source", func() {
			calls := 0
			_, err := s.Max(func(a, b int) int {
				calls++
				if calls == 2 {
					return 7
				}
				return Ascending(a, b)
			})
			So(errors.Is(err, ErrInvalidComparison), ShouldBeTrue)
			So(calls, ShouldEqual, 2)
			So(s.items, ShouldResemble, original)
			So(popAll(s), ShouldResemble, []int{8, 3, 5, 1})
		})
	})

	Convey("Given an empty stack", t, func() {
		s := New[int]()

		Convey("Queries yield empty results", func() {
			So(s.Reverse().IsEmpty(), ShouldBeTrue)
			So(s.Where(greaterThan(0)).IsEmpty(), ShouldBeTrue)
			So(Select(s, strconv.Itoa).IsEmpty(), ShouldBeTrue)
			So(s.Contains(greaterThan(0)), ShouldBeFalse)
			So(s.Count(greaterThan(0)), ShouldEqual, 0)
		})

		Convey("First fails with ErrNotFound", func() {
			_, err := s.First(greaterThan(0))
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
		})

		Convey("Max fails with ErrEmptyContainer", func() {
			_, err := s.Max(Ascending[int])
			So(errors.Is(err, ErrEmptyContainer), ShouldBeTrue)
		})
	})

	Convey("Given duplicate maxima", t, func() {
		type entry struct {
			rank int
			name string
		}
		s := Of(entry{1, "low"}, entry{9, "older"}, entry{4, "mid"}, entry{9, "newer"}, entry{2, "top"})
		byRank := func(a, b entry) int { return Ascending(a.rank, b.rank) }

		Convey("The earliest encountered in pop order wins", func() {
			v, err := s.Max(byRank)
			So(err, ShouldBeNil)
			So(v.name, ShouldEqual, "newer")
		})
	})
}
