package trace

import (
	"bytes"
	"errors"
	"strconv"
	"testing"

	"github.com/lifo-cli/lifo/stack"
	. "github.com/smartystreets/goconvey/convey"
)

func runChars(capacity int, words ...string) (string, error) {
	ops, err := Parse(words)
	if err != nil {
		return "", err
	}

	var out bytes.Buffer
	err = Run(&out, stack.New[rune](capacity), ops, Char, func(r rune) string { return string(r) })
	return out.String(), err
}

func runInts(capacity int, words ...string) (string, error) {
	ops, err := Parse(words)
	if err != nil {
		return "", err
	}

	var out bytes.Buffer
	err = Run(&out, stack.New[int](capacity), ops, Int, strconv.Itoa)
	return out.String(), err
}

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("It reads operations and push operands", func() {
			ops, err := Parse([]string{"push:a", "POP", "drain"})
			So(err, ShouldBeNil)
			So(ops, ShouldResemble, []Op{{Kind: Push, Arg: "a"}, {Kind: Pop}, {Kind: Drain}})
			So(ops[0].String(), ShouldEqual, "push:a")
		})

		Convey("It rejects unknown words", func() {
			_, err := Parse([]string{"shove:a"})
			So(errors.Is(err, ErrUnknownOp), ShouldBeTrue)
		})

		Convey("It rejects push without a value and pop with one", func() {
			_, err := Parse([]string{"push"})
			So(errors.Is(err, ErrUnknownOp), ShouldBeTrue)
			_, err = Parse([]string{"pop:1"})
			So(errors.Is(err, ErrUnknownOp), ShouldBeTrue)
		})
	})
}

func TestRun(t *testing.T) {
	Convey("Given a character stack", t, func() {
		Convey("Pops come back in reverse order", func() {
			out, err := runChars(5, "push:a", "push:b", "push:c", "drain", "empty")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "c\nb\na\ntrue\n")
		})

		Convey("Peek does not remove the top", func() {
			out, err := runChars(5, "push:a", "peek", "len", "pop", "len")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "a\n1\na\n0\n")
		})

		Convey("Overflow aborts the run", func() {
			out, err := runChars(1, "push:a", "full", "push:b", "pop")
			So(errors.Is(err, stack.ErrOverflow), ShouldBeTrue)
			So(out, ShouldEqual, "true\n")
		})

		Convey("Underflow aborts the run", func() {
			_, err := runChars(1, "push:a", "init", "pop")
			So(errors.Is(err, stack.ErrUnderflow), ShouldBeTrue)
		})

		Convey("Multi-character operands are rejected", func() {
			_, err := runChars(1, "push:ab")
			So(errors.Is(err, ErrBadValue), ShouldBeTrue)
		})
	})

	Convey("Given an integer stack", t, func() {
		Convey("Values round-trip through the stack", func() {
			out, err := runInts(3, "push:1", "push:-2", "push:30", "drain")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "30\n-2\n1\n")
		})

		Convey("Non-numeric operands are rejected", func() {
			_, err := runInts(3, "push:x")
			So(errors.Is(err, ErrBadValue), ShouldBeTrue)
		})
	})
}

func TestDemo(t *testing.T) {
	Convey("Demo prints the classic result", t, func() {
		var out bytes.Buffer
		So(Demo(&out), ShouldBeNil)
		So(out.String(), ShouldEqual, "stack\n")
	})
}
