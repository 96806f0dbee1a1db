package softheap

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSentinel(t *testing.T) {
	Convey("Given the shared nilNode sentinel", t, func() {
		Convey("it self-loops on every pointer field", func() {
			So(nilNode.left, ShouldEqual, nilNode)
			So(nilNode.right, ShouldEqual, nilNode)
			So(nilNode.next, ShouldEqual, nilNode)
		})

		Convey("its key and rank are maximal", func() {
			So(nilNode.key, ShouldEqual, math.Inf(1))
			So(nilNode.rank, ShouldEqual, math.MaxInt)
		})

		Convey("it is reported as a leaf", func() {
			So(nilNode.isLeaf(), ShouldBeTrue)
		})
	})
}

func TestNewRoot(t *testing.T) {
	Convey("Given a freshly built rank-0 root", t, func() {
		x := newRoot(3.5)

		Convey("it holds exactly one item at its own key", func() {
			So(x.key, ShouldEqual, 3.5)
			So(x.rank, ShouldEqual, 0)
			So(x.first().key, ShouldEqual, 3.5)
			So(hasMoreThanOne(x.set), ShouldBeFalse)
		})

		Convey("it has no children and no live root-list pointer", func() {
			So(x.isLeaf(), ShouldBeTrue)
			So(x.left, ShouldEqual, nilNode)
			So(x.right, ShouldEqual, nilNode)
			So(x.next, ShouldEqual, nilNode)
		})
	})
}
