// Package trace replays scripted push and pop operations against a bounded stack and reports what each step produced.
package trace

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/lifo-cli/lifo/log"
	"github.com/lifo-cli/lifo/stack"
	"github.com/samber/lo"
)

var (
	// ErrUnknownOp is returned for a script word that names no operation.
	ErrUnknownOp = errors.New("unknown operation")

	// ErrBadValue is returned when a push operand cannot be converted to the element type.
	ErrBadValue = errors.New("bad value")
)

// Kind identifies a stack operation.
type Kind string

// Supported operations.
const (
	Push  Kind = "push"
	Pop   Kind = "pop"
	Peek  Kind = "peek"
	Empty Kind = "empty"
	Full  Kind = "full"
	Len   Kind = "len"
	Init  Kind = "init"
	Drain Kind = "drain"
)

// Kinds returns every supported operation name.
func Kinds() []string {
	return lo.Map([]Kind{Push, Pop, Peek, Empty, Full, Len, Init, Drain}, func(k Kind, _ int) string {
		return string(k)
	})
}

// Op is one parsed script step. Arg is only set for Push.
type Op struct {
	Kind Kind
	Arg  string
}

func (o Op) String() string {
	if o.Kind == Push {
		return string(o.Kind) + ":" + o.Arg
	}
	return string(o.Kind)
}

// Parse turns words such as "push:a", "pop" or "drain" into operations.
func Parse(words []string) ([]Op, error) {
	ops := make([]Op, 0, len(words))
	for _, word := range words {
		name, arg, hasArg := strings.Cut(word, ":")
		kind := Kind(strings.ToLower(name))

		if !lo.Contains(Kinds(), string(kind)) {
			return nil, fmt.Errorf("%w %q", ErrUnknownOp, word)
		}

		if (kind == Push) != hasArg {
			return nil, fmt.Errorf("%w %q: only push takes a value", ErrUnknownOp, word)
		}

		ops = append(ops, Op{Kind: kind, Arg: arg})
	}
	return ops, nil
}

// Char converts a push operand into a single character.
func Char(arg string) (rune, error) {
	if utf8.RuneCountInString(arg) != 1 {
		return 0, fmt.Errorf("%w %q: want exactly one character", ErrBadValue, arg)
	}
	r, _ := utf8.DecodeRuneInString(arg)
	return r, nil
}

// Int converts a push operand into an integer.
func Int(arg string) (int, error) {
	v, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrBadValue, arg, err)
	}
	return v, nil
}

// Run applies ops to s in order, writing one line per value produced by pop, peek and the queries.
// The first overflow, underflow or conversion failure aborts the run.
func Run[T any](w io.Writer, s *stack.Bounded[T], ops []Op, parse func(string) (T, error), format func(T) string) error {
	emit := func(line string) error {
		_, err := fmt.Fprintln(w, line)
		return err
	}

	for i, op := range ops {
		if log.Enabled() {
			log.Tracef("step %d: %s on %v", i+1, op, s.Values())
		}

		var err error
		switch op.Kind {
		case Push:
			var v T
			if v, err = parse(op.Arg); err == nil {
				err = s.Push(v)
			}
		case Pop, Peek:
			var v T
			if op.Kind == Pop {
				v, err = s.Pop()
			} else {
				v, err = s.Peek()
			}
			if err == nil {
				err = emit(format(v))
			}
		case Empty:
			err = emit(strconv.FormatBool(s.IsEmpty()))
		case Full:
			err = emit(strconv.FormatBool(s.IsFull()))
		case Len:
			err = emit(strconv.Itoa(s.Len()))
		case Init:
			s.Init()
		case Drain:
			for !s.IsEmpty() && err == nil {
				var v T
				if v, err = s.Pop(); err == nil {
					err = emit(format(v))
				}
			}
		default:
			err = fmt.Errorf("%w %q", ErrUnknownOp, op.Kind)
		}

		if err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, op, err)
		}
	}

	return nil
}
