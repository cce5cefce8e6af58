// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

// Package diffmatchpatch offers robust algorithms to compute, clean up,
// serialize and format the differences between two plain texts.
package diffmatchpatch

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidArgument is returned when a DiffMatchPatch is configured with values
// outside of their domain.
var ErrInvalidArgument = errors.New("diffmatchpatch: invalid argument")

// DiffMatchPatch holds the configuration for diff operations.
type DiffMatchPatch struct {
	// Number of seconds to map a diff before giving up (0 for infinity).
	DiffTimeout time.Duration
	// Cost of an empty edit operation in terms of edit characters.
	DiffEditCost int
	// Clock returns the current time. Deadlines are computed and checked with
	// it. A nil Clock means time.Now.
	Clock func() time.Time
}

// New creates a new DiffMatchPatch object with default parameters.
func New() *DiffMatchPatch {
	// Defaults.
	return &DiffMatchPatch{
		DiffTimeout:  time.Second,
		DiffEditCost: 4,
	}
}

// Option configures a DiffMatchPatch created by NewWithOptions.
type Option func(*DiffMatchPatch)

// WithTimeout sets how long a diff may run before it settles for a
// non-minimal result. Zero disables the deadline.
func WithTimeout(d time.Duration) Option {
	return func(dmp *DiffMatchPatch) {
		dmp.DiffTimeout = d
	}
}

// WithEditCost sets the cost of an empty edit operation used by
// DiffCleanupEfficiency.
func WithEditCost(cost int) Option {
	return func(dmp *DiffMatchPatch) {
		dmp.DiffEditCost = cost
	}
}

// WithClock sets the time source used for deadlines.
func WithClock(clock func() time.Time) Option {
	return func(dmp *DiffMatchPatch) {
		dmp.Clock = clock
	}
}

// NewWithOptions creates a DiffMatchPatch from the defaults of New, applies opts
// and validates the result.
func NewWithOptions(opts ...Option) (*DiffMatchPatch, error) {
	dmp := New()
	for _, o := range opts {
		o(dmp)
	}
	if err := dmp.Validate(); err != nil {
		return nil, err
	}
	return dmp, nil
}

// Validate reports an error wrapping ErrInvalidArgument if a parameter is out of
// range.
func (dmp *DiffMatchPatch) Validate() error {
	if dmp.DiffTimeout < 0 {
		return fmt.Errorf("%w: negative diff timeout %v", ErrInvalidArgument, dmp.DiffTimeout)
	}
	if dmp.DiffEditCost < 1 {
		return fmt.Errorf("%w: diff edit cost %d is less than 1", ErrInvalidArgument, dmp.DiffEditCost)
	}
	return nil
}

func (dmp *DiffMatchPatch) now() time.Time {
	if dmp.Clock == nil {
		return time.Now()
	}
	return dmp.Clock()
}

// deadline returns the time by which a diff started now should be complete.
// The zero time means there is no deadline.
func (dmp *DiffMatchPatch) deadline() time.Time {
	if dmp.DiffTimeout <= 0 {
		return time.Time{}
	}
	return dmp.now().Add(dmp.DiffTimeout)
}

func (dmp *DiffMatchPatch) expired(deadline time.Time) bool {
	return !deadline.IsZero() && dmp.now().After(deadline)
}

// indexOf returns the first index of pattern in str, starting at str[i].
func indexOf(str string, pattern string, i int) int {
	if i > len(str)-1 {
		return -1
	}
	if i <= 0 {
		return strings.Index(str, pattern)
	}
	ind := strings.Index(str[i:], pattern)
	if ind == -1 {
		return -1
	}
	return ind + i
}

// Return the index of pattern in target, starting at target[i].
func runesIndexOf(target, pattern []rune, i int) int {
	if i > len(target)-1 {
		return -1
	}
	if i <= 0 {
		return runesIndex(target, pattern)
	}
	ind := runesIndex(target[i:], pattern)
	if ind == -1 {
		return -1
	}
	return ind + i
}

func runesEqual(r1, r2 []rune) bool {
	if len(r1) != len(r2) {
		return false
	}
	for i, c := range r1 {
		if c != r2[i] {
			return false
		}
	}
	return true
}

// The equivalent of strings.Index for rune slices.
func runesIndex(r1, r2 []rune) int {
	last := len(r1) - len(r2)
	for i := 0; i <= last; i++ {
		if runesEqual(r1[i:i+len(r2)], r2) {
			return i
		}
	}
	return -1
}
