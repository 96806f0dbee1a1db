package softheapsort

import (
	"math/rand"
	"sort"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func shuffled(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(n)
	out := make([]float64, n)
	for i, v := range perm {
		out[i] = float64(v)
	}
	return out
}

func TestSortDegenerateIsStrictlyIncreasing(t *testing.T) {
	Convey("Given a random permutation of [0,30) sorted at eps = 0", t, func() {
		xs := shuffled(30, 5)
		out, err := Sort(xs, 0)

		Convey("the output is strictly increasing", func() {
			So(err, ShouldBeNil)
			So(len(out), ShouldEqual, 30)
			for i := 1; i < len(out); i++ {
				So(out[i], ShouldBeGreaterThan, out[i-1])
			}
			So(CountInversions(out), ShouldEqual, 0)
		})
	})
}

func TestSortCorruptedBoundsInversions(t *testing.T) {
	Convey("Given a random permutation of [0,30) sorted at eps = 0.5", t, func() {
		xs := shuffled(30, 6)
		out, err := Sort(xs, 0.5)

		Convey("the result is a permutation of the input with bounded inversions", func() {
			So(err, ShouldBeNil)

			sorted := make([]float64, len(out))
			copy(sorted, out)
			sort.Float64s(sorted)

			want := make([]float64, 30)
			for i := range want {
				want[i] = float64(i)
			}
			So(sorted, ShouldResemble, want)
			So(CountInversions(out), ShouldBeLessThanOrEqualTo, 15)
		})
	})
}

func TestSortRejectsInvalidEpsilon(t *testing.T) {
	Convey("Sort rejects eps outside [0, 1)", t, func() {
		_, err := Sort([]float64{1, 2, 3}, 1)
		So(err, ShouldNotBeNil)
	})
}
