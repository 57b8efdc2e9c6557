package trace

import (
	"fmt"
	"io"
	"strings"

	"github.com/lifo-cli/lifo/stack"
)

// Demo replays the classic character-stack exercise and writes the drained
// contents followed by the last popped character. The output is "stack".
func Demo(w io.Writer) error {
	s := stack.New[rune](stack.DefaultCapacity)
	x, y := 'c', 'k'

	var err error
	push := func(r rune) {
		if err == nil {
			err = s.Push(r)
		}
	}
	pop := func(into *rune) {
		if err == nil {
			*into, err = s.Pop()
		}
	}

	push(x)
	push('a')
	push(y)
	pop(&x)
	push('t')
	push(x)
	pop(&x)
	push('s')

	var b strings.Builder
	for err == nil && !s.IsEmpty() {
		pop(&y)
		b.WriteRune(y)
	}
	if err != nil {
		return err
	}

	b.WriteRune(x)
	_, err = fmt.Fprintln(w, b.String())
	return err
}
