package palindrome

import (
	"io"

	"github.com/lifo-cli/lifo/log"
	"github.com/lifo-cli/lifo/stack"
)

// Verdicts printed for a completed check.
const (
	Yes = "Yes"
	No  = "No"
)

// Result is the outcome of a completed check.
type Result struct {
	// Input is the tested sequence without the sentinel.
	Input string `json:"input"`
	// Length is the number of characters in Input.
	Length int `json:"length"`
	// Palindrome reports whether Input reads the same in both directions.
	Palindrome bool `json:"palindrome"`
	// Verdict is the console answer, Yes or No.
	Verdict string `json:"verdict" jsonschema:"enum=Yes,enum=No"`
}

// VerdictOf maps a check outcome to its console answer.
func VerdictOf(palindrome bool) string {
	if palindrome {
		return Yes
	}
	return No
}

// Evaluate reads a sentinel-terminated sequence from r and checks it against a stack of capacity opts.Limit.
func Evaluate(r io.Reader, opts ReadOptions) (*Result, error) {
	if err := stack.CheckCapacity(opts.Limit); err != nil {
		return nil, err
	}

	seq, err := Read(r, opts)
	if err != nil {
		return nil, err
	}

	ok, err := Check(seq, opts.Limit)
	if err != nil {
		return nil, err
	}

	log.Infof("checked %d characters: palindrome=%t", len(seq), ok)
	return &Result{
		Input:      string(seq),
		Length:     len(seq),
		Palindrome: ok,
		Verdict:    VerdictOf(ok),
	}, nil
}
