package softheap

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestItemRing(t *testing.T) {
	Convey("Given a singleton ring", t, func() {
		it := singleton(5)

		Convey("it self-loops", func() {
			So(it.next, ShouldEqual, it)
		})

		Convey("it does not report more than one element", func() {
			So(hasMoreThanOne(it), ShouldBeFalse)
		})

		Convey("peekFirst returns the sole item", func() {
			So(peekFirst(it), ShouldEqual, it)
		})
	})

	Convey("Given two singleton rings spliced together", t, func() {
		a := singleton(1)
		b := singleton(2)
		tail := spliceInto(a, b)

		Convey("the combined ring reports more than one element", func() {
			So(hasMoreThanOne(tail), ShouldBeTrue)
		})

		Convey("both keys are reachable by walking next from the tail", func() {
			first := peekFirst(tail)
			second := first.next
			So([]float64{first.key, second.key}, ShouldContain, 1.0)
			So([]float64{first.key, second.key}, ShouldContain, 2.0)
			So(second, ShouldEqual, tail)
		})
	})

	Convey("Given a three-item ring built by repeated splice", t, func() {
		a := singleton(1)
		b := singleton(2)
		c := singleton(3)
		tail := spliceInto(spliceInto(a, b), c)

		Convey("wiring out the first item twice leaves one item", func() {
			wireOutFirst(tail)
			wireOutFirst(tail)
			So(hasMoreThanOne(tail), ShouldBeFalse)
		})
	})
}
