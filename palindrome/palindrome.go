// Package palindrome decides whether a sequence reads the same in both directions using only a bounded stack.
package palindrome

import (
	"errors"
	"fmt"

	"github.com/lifo-cli/lifo/log"
	"github.com/lifo-cli/lifo/stack"
)

var (
	// ErrInputTooLong is returned when the sequence does not fit into the stack capacity.
	ErrInputTooLong = errors.New("input too long")

	// ErrBrokenInvariant marks a failed internal assertion, such as popping from a stack that must not be empty.
	ErrBrokenInvariant = errors.New("broken invariant")
)

// Check pushes the first half of seq onto a stack of the given capacity and compares
// popped values against the second half read forward. The middle element of an
// odd-length sequence is skipped.
func Check[T comparable](seq []T, capacity int) (bool, error) {
	if err := stack.CheckCapacity(capacity); err != nil {
		return false, err
	}

	n := len(seq)
	if n > capacity {
		return false, fmt.Errorf("%w: %d elements exceed capacity %d", ErrInputTooLong, n, capacity)
	}

	s := stack.New[T](capacity)
	for p := 0; p < n/2; p++ {
		if err := s.Push(seq[p]); err != nil {
			return false, err
		}
	}
	log.Debugf("pushed %d of %d elements", s.Len(), n)

	from := n / 2
	if n%2 != 0 {
		from++
	}

	for p := from; p < n; p++ {
		top, err := s.Pop()
		if err != nil {
			return false, fmt.Errorf("%w: position %d: %w", ErrBrokenInvariant, p, err)
		}

		if top != seq[p] {
			log.Debugf("mismatch at position %d", p)
			return false, nil
		}
	}

	return true, nil
}
