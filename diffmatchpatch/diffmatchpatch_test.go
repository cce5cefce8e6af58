// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package diffmatchpatch

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diffRebuildTexts(diffs []Diff) []string {
	texts := []string{"", ""}

	for _, d := range diffs {
		if d.Type != DiffInsert {
			texts[0] += d.Text
		}
		if d.Type != DiffDelete {
			texts[1] += d.Text
		}
	}

	return texts
}

// speedtestTexts returns two large texts that share most of their lines.
func speedtestTexts() (s1 string, s2 string) {
	var b1, b2 strings.Builder
	for i := 0; i < 2000; i++ {
		line := fmt.Sprintf("%d: `Twas brillig, and the slithy toves did gyre and gimble in the wabe.\n", i)
		b1.WriteString(line)
		switch i % 7 {
		case 0:
			fmt.Fprintf(&b2, "%d: All mimsy were the borogoves, and the mome raths outgrabe.\n", i)
		case 3:
			b2.WriteString(strings.Replace(line, "slithy", "slimy", 1))
		default:
			b2.WriteString(line)
		}
	}
	return b1.String(), b2.String()
}

func TestRunesIndexOf(t *testing.T) {
	type TestCase struct {
		Pattern string
		Start   int

		Expected int
	}

	for i, tc := range []TestCase{
		{"abc", 0, 0},
		{"cde", 0, 2},
		{"e", 0, 4},
		{"cdef", 0, -1},
		{"abcdef", 0, -1},
		{"abc", 2, -1},
		{"cde", 2, 2},
		{"e", 2, 4},
		{"cdef", 2, -1},
		{"abcdef", 2, -1},
		{"e", 6, -1},
	} {
		actual := runesIndexOf([]rune("abcde"), []rune(tc.Pattern), tc.Start)
		assert.Equal(t, tc.Expected, actual, fmt.Sprintf("Test case #%d, %#v", i, tc))
	}
}

func TestIndexOf(t *testing.T) {
	type TestCase struct {
		String   string
		Pattern  string
		Position int

		Expected int
	}

	for i, tc := range []TestCase{
		{"hi world", "world", -1, 3},
		{"hi world", "world", 0, 3},
		{"hi world", "world", 1, 3},
		{"hi world", "world", 2, 3},
		{"hi world", "world", 3, 3},
		{"hi world", "world", 4, -1},
		{"abbc", "b", -1, 1},
		{"abbc", "b", 0, 1},
		{"abbc", "b", 1, 1},
		{"abbc", "b", 2, 2},
		{"abbc", "b", 3, -1},
		{"abbc", "b", 4, -1},
		// The greek letter beta is the two-byte sequence of "\u03b2".
		{"a\u03b2\u03b2c", "\u03b2", -1, 1},
		{"a\u03b2\u03b2c", "\u03b2", 0, 1},
		{"a\u03b2\u03b2c", "\u03b2", 1, 1},
		{"a\u03b2\u03b2c", "\u03b2", 3, 3},
		{"a\u03b2\u03b2c", "\u03b2", 5, -1},
		{"a\u03b2\u03b2c", "\u03b2", 6, -1},
	} {
		actual := indexOf(tc.String, tc.Pattern, tc.Position)
		assert.Equal(t, tc.Expected, actual, fmt.Sprintf("Test case #%d, %#v", i, tc))
	}
}

func TestNewWithOptions(t *testing.T) {
	dmp, err := NewWithOptions()
	require.NoError(t, err)
	assert.Equal(t, New(), dmp)

	clock := func() time.Time { return time.Unix(0, 0) }
	dmp, err = NewWithOptions(WithTimeout(0), WithEditCost(6), WithClock(clock))
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), dmp.DiffTimeout)
	assert.Equal(t, 6, dmp.DiffEditCost)
	assert.Equal(t, time.Unix(0, 0), dmp.now())
	assert.True(t, dmp.deadline().IsZero())
}

func TestValidate(t *testing.T) {
	type TestCase struct {
		Name string

		Options []Option

		ExpectedError string
	}

	for i, tc := range []TestCase{
		{"negative timeout", []Option{WithTimeout(-time.Second)}, "diffmatchpatch: invalid argument: negative diff timeout -1s"},
		{"zero edit cost", []Option{WithEditCost(0)}, "diffmatchpatch: invalid argument: diff edit cost 0 is less than 1"},
	} {
		msg := fmt.Sprintf("Test case #%d, %s", i, tc.Name)

		dmp, err := NewWithOptions(tc.Options...)
		assert.Nil(t, dmp, msg)
		assert.True(t, errors.Is(err, ErrInvalidArgument), msg)
		assert.EqualError(t, err, tc.ExpectedError, msg)
	}

	dmp := New()
	dmp.DiffEditCost = -1
	assert.ErrorIs(t, dmp.Validate(), ErrInvalidArgument)
}

func TestDeadline(t *testing.T) {
	now := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	dmp := New()
	dmp.Clock = func() time.Time { return now }

	deadline := dmp.deadline()
	assert.Equal(t, now.Add(time.Second), deadline)
	assert.False(t, dmp.expired(deadline))

	now = now.Add(time.Second)
	assert.False(t, dmp.expired(deadline))

	now = now.Add(time.Nanosecond)
	assert.True(t, dmp.expired(deadline))

	assert.False(t, dmp.expired(time.Time{}))
}
