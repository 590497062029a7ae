// Package elicit implements the interactive elicitation protocol: a
// line-oriented prompt loop that plays back each slate item and
// collects a response. Parsing and validation are pure functions so
// the core stays testable without a terminal; invalid input is a
// recoverable condition absorbed by the outer retry loop, never a
// fatal error.
package elicit

import (
	"errors"
	"strconv"

	"github.com/danielpatrickdp/preference-elicitation/go-elicitor/internal/query"
)

// #region input-errors
// Input errors are local and recoverable: the prompt loop re-asks
// instead of propagating them.
var (
	ErrNotInteger    = errors.New("input is not an integer")
	ErrOutOfRange    = errors.New("input is out of range")
	ErrDuplicateRank = errors.New("trajectory already ranked")
)
// #endregion input-errors

// #region isinteger
// IsInteger reports whether text is a base-10 integer literal: an
// optional leading '+' or '-' followed by digits, nothing else.
// Fractional forms like "3.0" and surrounding whitespace are rejected;
// this is a format check, not a numeric-value check.
func IsInteger(text string) bool {
	_, err := strconv.ParseInt(text, 10, 64)
	return err == nil
}
// #endregion isinteger

// #region parse
// ParseChoice parses a preference selection and checks it against the
// query's index range.
func ParseChoice(text string, set query.IndexSet) (int, error) {
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, ErrNotInteger
	}
	if v < 0 || v >= int64(set.K) {
		return 0, ErrOutOfRange
	}
	return int(v), nil
}

// ParseComparison parses a weak comparison answer against {-1, 0, 1}.
func ParseComparison(text string) (int, error) {
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, ErrNotInteger
	}
	if v < -1 || v > 1 {
		return 0, ErrOutOfRange
	}
	return int(v), nil
}

// ParseRank parses one rank selection: the value must be a slate index
// in [0, k) that has not been chosen at an earlier rank.
func ParseRank(text string, k int, chosen []int) (int, error) {
	v64, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, ErrNotInteger
	}
	if v64 < 0 || v64 >= int64(k) {
		return 0, ErrOutOfRange
	}
	v := int(v64)
	for _, c := range chosen {
		if c == v {
			return 0, ErrDuplicateRank
		}
	}
	return v, nil
}
// #endregion parse
