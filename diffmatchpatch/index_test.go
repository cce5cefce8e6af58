// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package diffmatchpatch

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestIndexConversion(t *testing.T) {
	indexes := make([]index, maxLineIndex)
	for i := range indexes {
		indexes[i] = index(i)
	}
	indexes2 := stringToIndex(indexesToString(indexes))
	assert.EqualValues(t, indexes, indexes2)
}

func TestIndexSkipsSurrogates(t *testing.T) {
	assert.Equal(t, rune(runeSkipStart-1), index(runeSkipStart-1).rune())
	assert.Equal(t, rune(runeSkipEnd), index(runeSkipStart).rune())
	assert.Equal(t, rune(utf8.MaxRune), index(maxLineIndex-1).rune())
	assert.Equal(t, index(runeSkipStart), runeToIndex(runeSkipEnd))
}
