// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package diffmatchpatch

import "unicode/utf8"

// index identifies a line in the line array built by DiffLinesToRunes. It is
// carried through the diff as a single rune.
type index uint32

const (
	// UTF-16 surrogate halves are not valid runes, so line indexes skip them.
	runeSkipStart = 0xd800
	runeSkipEnd   = 0xdfff + 1
	runeMax       = utf8.MaxRune + 1

	// maxLineIndex is the number of distinct lines that fit in the rune space.
	maxLineIndex = runeMax - (runeSkipEnd - runeSkipStart)
)

func (i index) rune() rune {
	if i >= runeSkipStart {
		return rune(i + (runeSkipEnd - runeSkipStart))
	}
	return rune(i)
}

func runeToIndex(r rune) index {
	if r >= runeSkipEnd {
		return index(r - (runeSkipEnd - runeSkipStart))
	}
	return index(r)
}

func indexesToString(indexes []index) string {
	runes := make([]rune, len(indexes))
	for i, idx := range indexes {
		runes[i] = idx.rune()
	}
	return string(runes)
}

func stringToIndex(text string) []index {
	indexes := make([]index, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		indexes = append(indexes, runeToIndex(r))
	}
	return indexes
}
