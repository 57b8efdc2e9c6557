package palindrome

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/lifo-cli/lifo/log"
)

// DefaultSentinel terminates console input and is never part of the tested sequence.
const DefaultSentinel = '#'

// ErrMissingSentinel is returned when the input ends before the sentinel is seen.
var ErrMissingSentinel = errors.New("input ended before sentinel")

// ReadOptions controls how characters are collected from an input stream.
type ReadOptions struct {
	// Sentinel marks the end of input.
	Sentinel rune
	// Limit is the maximum number of characters accepted before the sentinel.
	Limit int
	// IgnoreNewlines drops '\r' and '\n' instead of treating them as characters.
	IgnoreNewlines bool
}

// Read collects characters one at a time until opts.Sentinel, which is excluded.
// It fails with ErrInputTooLong as soon as more than opts.Limit characters were read.
func Read(r io.Reader, opts ReadOptions) ([]rune, error) {
	reader := bufio.NewReader(r)
	buf := make([]rune, 0, min(max(opts.Limit, 0), 128))

	for {
		ch, _, err := reader.ReadRune()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w %q after %d characters", ErrMissingSentinel, opts.Sentinel, len(buf))
		}
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}

		if ch == opts.Sentinel {
			log.Debugf("sentinel reached after %d characters", len(buf))
			return buf, nil
		}

		if opts.IgnoreNewlines && (ch == '\n' || ch == '\r') {
			continue
		}

		if len(buf) == opts.Limit {
			log.Warnf("input exceeds %d characters, rejecting", opts.Limit)
			return nil, fmt.Errorf("%w: more than %d characters before sentinel %q", ErrInputTooLong, opts.Limit, opts.Sentinel)
		}
		buf = append(buf, ch)
	}
}
