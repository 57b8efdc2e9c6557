package palindrome

import (
	"errors"
	"strings"
	"testing"

	"github.com/lifo-cli/lifo/stack"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func evaluate(input string) string {
	result, err := Evaluate(strings.NewReader(input), ReadOptions{
		Sentinel: DefaultSentinel,
		Limit:    stack.DefaultCapacity,
	})
	So(err, ShouldBeNil)
	return result.Verdict
}

func TestScenarios(t *testing.T) {
	Convey("Given sentinel-terminated console input", t, func() {
		Convey("A single character is a palindrome", func() {
			So(evaluate("a#"), ShouldEqual, Yes)
		})

		Convey("Two different characters are not", func() {
			So(evaluate("ab#"), ShouldEqual, No)
		})

		Convey("An odd-length palindrome skips the middle", func() {
			So(evaluate("aba#"), ShouldEqual, Yes)
		})

		Convey("An even-length palindrome", func() {
			So(evaluate("abba#"), ShouldEqual, Yes)
		})

		Convey("The empty sequence is vacuously a palindrome", func() {
			So(evaluate("#"), ShouldEqual, Yes)
		})

		Convey("Characters after the sentinel are ignored", func() {
			So(evaluate("abba#xyz"), ShouldEqual, Yes)
		})
	})
}

func TestCheck(t *testing.T) {
	Convey("Check agrees with reversal", t, func() {
		inputs := []string{
			"", "a", "aa", "ab", "aba", "abc", "abca", "racecar", "racecars",
			"never odd or even", "neveroddoreven", "xyzzyx", "xyzyxx",
			strings.Repeat("ab", 50), strings.Repeat("a", 100),
		}

		for _, in := range inputs {
			seq := []rune(in)
			reversed := lo.Reverse([]rune(in))

			got, err := Check(seq, stack.DefaultCapacity)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, string(reversed) == in)
		}
	})

	Convey("Check agrees with reversal for every word of up to six letters over {a, b}", t, func() {
		for n := 0; n <= 6; n++ {
			for mask := 0; mask < 1<<n; mask++ {
				seq := make([]rune, n)
				for i := range seq {
					seq[i] = lo.Ternary(mask&(1<<i) != 0, 'b', 'a')
				}
				in := string(seq)

				got, err := Check(seq, n)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, string(lo.Reverse([]rune(in))) == in)
			}
		}
	})

	Convey("Check works over integers", t, func() {
		So(lo.Must(Check([]int{1, 2, 3, 2, 1}, 10)), ShouldBeTrue)
		So(lo.Must(Check([]int{1, 2, 2, 1}, 10)), ShouldBeTrue)
		So(lo.Must(Check([]int{1, 2, 3}, 10)), ShouldBeFalse)
	})

	Convey("The middle element takes no part in the comparison", t, func() {
		So(lo.Must(Check([]rune("abXba"), 5)), ShouldBeTrue)
		So(lo.Must(Check([]rune("abYba"), 5)), ShouldBeTrue)
	})

	Convey("Sequences longer than the capacity are rejected", t, func() {
		_, err := Check([]rune("abcba"), 4)
		So(errors.Is(err, ErrInputTooLong), ShouldBeTrue)
		So(errors.Is(err, ErrBrokenInvariant), ShouldBeFalse)
	})

	Convey("Capacities beyond the stack limit are an error, not a panic", t, func() {
		for _, capacity := range []int{stack.MaxCapacity + 1, 1 << 62, -1} {
			So(func() {
				_, err := Check([]rune("a"), capacity)
				So(errors.Is(err, stack.ErrCapacity), ShouldBeTrue)
			}, ShouldNotPanic)
		}
	})
}

func TestRead(t *testing.T) {
	Convey("Given a reader", t, func() {
		opts := ReadOptions{Sentinel: DefaultSentinel, Limit: 5}

		Convey("It excludes the sentinel", func() {
			seq, err := Read(strings.NewReader("abc#def"), opts)
			So(err, ShouldBeNil)
			So(string(seq), ShouldEqual, "abc")
		})

		Convey("It keeps newlines by default", func() {
			seq, err := Read(strings.NewReader("a\nb#"), opts)
			So(err, ShouldBeNil)
			So(string(seq), ShouldEqual, "a\nb")
		})

		Convey("It drops newlines when asked", func() {
			opts.IgnoreNewlines = true
			seq, err := Read(strings.NewReader("ab\r\nba#"), opts)
			So(err, ShouldBeNil)
			So(string(seq), ShouldEqual, "abba")
		})

		Convey("It honours a custom sentinel", func() {
			opts.Sentinel = '.'
			seq, err := Read(strings.NewReader("a#a."), opts)
			So(err, ShouldBeNil)
			So(string(seq), ShouldEqual, "a#a")
		})

		Convey("It accepts exactly Limit characters", func() {
			seq, err := Read(strings.NewReader("abcde#"), opts)
			So(err, ShouldBeNil)
			So(len(seq), ShouldEqual, 5)
		})

		Convey("It rejects input longer than Limit", func() {
			_, err := Read(strings.NewReader("abcdef#"), opts)
			So(errors.Is(err, ErrInputTooLong), ShouldBeTrue)
		})

		Convey("It does not allocate the whole limit up front", func() {
			opts.Limit = 1 << 62
			So(func() {
				seq, err := Read(strings.NewReader("a#"), opts)
				So(err, ShouldBeNil)
				So(string(seq), ShouldEqual, "a")
			}, ShouldNotPanic)
		})

		Convey("It fails when the sentinel never arrives", func() {
			_, err := Read(strings.NewReader("abc"), opts)
			So(errors.Is(err, ErrMissingSentinel), ShouldBeTrue)
		})
	})
}

func TestEvaluate(t *testing.T) {
	Convey("Evaluate fills in the result", t, func() {
		result, err := Evaluate(strings.NewReader("level#"), ReadOptions{Sentinel: '#', Limit: 10})
		So(err, ShouldBeNil)
		So(result.Input, ShouldEqual, "level")
		So(result.Length, ShouldEqual, 5)
		So(result.Palindrome, ShouldBeTrue)
		So(result.Verdict, ShouldEqual, Yes)
		So(VerdictOf(false), ShouldEqual, No)
	})

	Convey("Evaluate rejects an oversized limit before reading", t, func() {
		in := strings.NewReader("a#")
		_, err := Evaluate(in, ReadOptions{Sentinel: '#', Limit: 1 << 62})
		So(errors.Is(err, stack.ErrCapacity), ShouldBeTrue)
		So(in.Len(), ShouldEqual, 2)
	})

	Convey("Evaluate propagates read failures", t, func() {
		_, err := Evaluate(strings.NewReader("level"), ReadOptions{Sentinel: '#', Limit: 10})
		So(errors.Is(err, ErrMissingSentinel), ShouldBeTrue)
	})
}
