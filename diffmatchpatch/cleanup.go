// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package diffmatchpatch

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

// Define some regex patterns for matching boundaries.
var (
	nonAlphaNumericRegex = regexp.MustCompile(`[^a-zA-Z0-9]`)
	whitespaceRegex      = regexp.MustCompile(`\s`)
	linebreakRegex       = regexp.MustCompile(`[\r\n]`)
	blanklineEndRegex    = regexp.MustCompile(`\n\r?\n$`)
	blanklineStartRegex  = regexp.MustCompile(`^\r?\n\r?\n`)
)

// DiffCleanupSemantic reduces the number of edits by eliminating
// semantically trivial equalities.
// Edit and equality lengths are measured in bytes.
func (dmp *DiffMatchPatch) DiffCleanupSemantic(diffs []Diff) []Diff {
	changes := false
	// Stack of indices where equalities are found.
	equalities := make([]int, 0, len(diffs))

	// Always equal to diffs[equalities[len(equalities)-1]].Text
	var lastequality string
	var pointer int // Index of current position.
	// Number of characters that changed prior to the equality.
	var lengthInsertions1, lengthDeletions1 int
	// Number of characters that changed after the equality.
	var lengthInsertions2, lengthDeletions2 int

	for pointer < len(diffs) {
		if diffs[pointer].Type == DiffEqual {
			// Equality found.
			equalities = append(equalities, pointer)
			lengthInsertions1 = lengthInsertions2
			lengthDeletions1 = lengthDeletions2
			lengthInsertions2 = 0
			lengthDeletions2 = 0
			lastequality = diffs[pointer].Text
		} else {
			// An insertion or deletion.
			if diffs[pointer].Type == DiffInsert {
				lengthInsertions2 += len(diffs[pointer].Text)
			} else {
				lengthDeletions2 += len(diffs[pointer].Text)
			}
			// Eliminate an equality that is smaller or equal to the edits on both
			// sides of it.
			difference1 := max(lengthInsertions1, lengthDeletions1)
			difference2 := max(lengthInsertions2, lengthDeletions2)
			if len(lastequality) > 0 &&
				(len(lastequality) <= difference1) &&
				(len(lastequality) <= difference2) {
				// Duplicate record.
				insPoint := equalities[len(equalities)-1]
				diffs = slices.Insert(diffs, insPoint, Diff{DiffDelete, lastequality})

				// Change second copy to insert.
				diffs[insPoint+1].Type = DiffInsert
				// Throw away the equality we just deleted.
				equalities = equalities[:len(equalities)-1]
				// Throw away the previous equality (it needs to be reevaluated).
				if len(equalities) > 0 {
					equalities = equalities[:len(equalities)-1]
				}
				if len(equalities) > 0 {
					pointer = equalities[len(equalities)-1]
				} else {
					pointer = -1
				}

				lengthInsertions1 = 0 // Reset the counters.
				lengthDeletions1 = 0
				lengthInsertions2 = 0
				lengthDeletions2 = 0
				lastequality = ""
				changes = true
			}
		}
		pointer++
	}

	// Normalize the diff.
	if changes {
		diffs = dmp.DiffCleanupMerge(diffs)
	}
	diffs = dmp.DiffCleanupSemanticLossless(diffs)

	// Find any overlaps between deletions and insertions.
	// e.g: <del>abcxxx</del><ins>xxxdef</ins>
	//   -> <del>abc</del>xxx<ins>def</ins>
	// e.g: <del>xxxabc</del><ins>defxxx</ins>
	//   -> <ins>def</ins>xxx<del>abc</del>
	// Only extract an overlap if it is as big as the edit ahead or behind it.
	pointer = 1
	for pointer < len(diffs) {
		if diffs[pointer-1].Type == DiffDelete &&
			diffs[pointer].Type == DiffInsert {
			deletion := diffs[pointer-1].Text
			insertion := diffs[pointer].Text
			overlapLength1 := dmp.DiffCommonOverlap(deletion, insertion)
			overlapLength2 := dmp.DiffCommonOverlap(insertion, deletion)
			if overlapLength1 >= overlapLength2 {
				if overlapLength1*2 >= len(deletion) ||
					overlapLength1*2 >= len(insertion) {
					// Overlap found. Insert an equality and trim the surrounding edits.
					diffs = slices.Insert(diffs, pointer, Diff{DiffEqual, insertion[:overlapLength1]})
					diffs[pointer-1].Text = deletion[:len(deletion)-overlapLength1]
					diffs[pointer+1].Text = insertion[overlapLength1:]
					pointer++
				}
			} else {
				if overlapLength2*2 >= len(deletion) ||
					overlapLength2*2 >= len(insertion) {
					// Reverse overlap found.
					// Insert an equality and swap and trim the surrounding edits.
					diffs = slices.Insert(diffs, pointer, Diff{DiffEqual, deletion[:overlapLength2]})
					diffs[pointer-1] = Diff{DiffInsert, insertion[:len(insertion)-overlapLength2]}
					diffs[pointer+1] = Diff{DiffDelete, deletion[overlapLength2:]}
					pointer++
				}
			}
			pointer++
		}
		pointer++
	}

	return diffs
}

// diffCleanupSemanticScore computes a score representing whether the internal
// boundary between one and two falls on logical boundaries.
// Scores range from 6 (best) to 0 (worst).
func diffCleanupSemanticScore(one, two string) int {
	if len(one) == 0 || len(two) == 0 {
		// Edges are the best.
		return 6
	}

	// Each port of this function behaves slightly differently due to
	// subtle differences in each language's definition of things like
	// 'whitespace'. Since this function's purpose is largely cosmetic,
	// the choice has been made to use each language's native features
	// rather than force total conformity.
	rune1, _ := utf8.DecodeLastRuneInString(one)
	rune2, _ := utf8.DecodeRuneInString(two)
	char1 := string(rune1)
	char2 := string(rune2)

	nonAlphaNumeric1 := nonAlphaNumericRegex.MatchString(char1)
	nonAlphaNumeric2 := nonAlphaNumericRegex.MatchString(char2)
	whitespace1 := nonAlphaNumeric1 && whitespaceRegex.MatchString(char1)
	whitespace2 := nonAlphaNumeric2 && whitespaceRegex.MatchString(char2)
	lineBreak1 := whitespace1 && linebreakRegex.MatchString(char1)
	lineBreak2 := whitespace2 && linebreakRegex.MatchString(char2)
	blankLine1 := lineBreak1 && blanklineEndRegex.MatchString(one)
	blankLine2 := lineBreak2 && blanklineStartRegex.MatchString(two)

	switch {
	case blankLine1 || blankLine2:
		// Five points for blank lines.
		return 5
	case lineBreak1 || lineBreak2:
		// Four points for line breaks.
		return 4
	case nonAlphaNumeric1 && !whitespace1 && whitespace2:
		// Three points for end of sentences.
		return 3
	case whitespace1 || whitespace2:
		// Two points for whitespace.
		return 2
	case nonAlphaNumeric1 || nonAlphaNumeric2:
		// One point for non-alphanumeric.
		return 1
	}
	return 0
}

// DiffCleanupSemanticLossless looks for single edits surrounded on both sides
// by equalities which can be shifted sideways to align the edit to a word
// boundary.
// e.g: The c<ins>at c</ins>ame. -> The <ins>cat </ins>came.
func (dmp *DiffMatchPatch) DiffCleanupSemanticLossless(diffs []Diff) []Diff {
	pointer := 1

	// Intentionally ignore the first and last element (don't need checking).
	for pointer < len(diffs)-1 {
		if diffs[pointer-1].Type == DiffEqual &&
			diffs[pointer+1].Type == DiffEqual {

			// This is a single edit surrounded by equalities.
			equality1 := diffs[pointer-1].Text
			edit := diffs[pointer].Text
			equality2 := diffs[pointer+1].Text

			// First, shift the edit as far left as possible.
			if commonString := commonSuffixString(equality1, edit); commonString != "" {
				equality1 = equality1[:len(equality1)-len(commonString)]
				edit = commonString + edit[:len(edit)-len(commonString)]
				equality2 = commonString + equality2
			}

			// Second, step character by character right, looking for the best fit.
			bestEquality1 := equality1
			bestEdit := edit
			bestEquality2 := equality2
			bestScore := diffCleanupSemanticScore(equality1, edit) +
				diffCleanupSemanticScore(edit, equality2)

			for len(edit) != 0 && len(equality2) != 0 {
				_, sz := utf8.DecodeRuneInString(edit)
				if len(equality2) < sz || edit[:sz] != equality2[:sz] {
					break
				}
				equality1 += edit[:sz]
				edit = edit[sz:] + equality2[:sz]
				equality2 = equality2[sz:]
				score := diffCleanupSemanticScore(equality1, edit) +
					diffCleanupSemanticScore(edit, equality2)
				// The >= encourages trailing rather than leading whitespace on
				// edits.
				if score >= bestScore {
					bestScore = score
					bestEquality1 = equality1
					bestEdit = edit
					bestEquality2 = equality2
				}
			}

			if diffs[pointer-1].Text != bestEquality1 {
				// We have an improvement, save it back to the diff.
				if len(bestEquality1) != 0 {
					diffs[pointer-1].Text = bestEquality1
				} else {
					diffs = slices.Delete(diffs, pointer-1, pointer)
					pointer--
				}

				diffs[pointer].Text = bestEdit
				if len(bestEquality2) != 0 {
					diffs[pointer+1].Text = bestEquality2
				} else {
					diffs = slices.Delete(diffs, pointer+1, pointer+2)
					pointer--
				}
			}
		}
		pointer++
	}

	return diffs
}

// commonSuffixString returns the longest common suffix of text1 and text2
// that starts on a rune boundary.
func commonSuffixString(text1, text2 string) string {
	runes := []rune(text2)
	n := commonSuffixLength([]rune(text1), runes)
	return string(runes[len(runes)-n:])
}

// DiffCleanupEfficiency reduces the number of edits by eliminating
// operationally trivial equalities.
func (dmp *DiffMatchPatch) DiffCleanupEfficiency(diffs []Diff) []Diff {
	changes := false
	// Stack of indices where candidate equalities are found.
	equalities := make([]int, 0, len(diffs))
	// Always equal to diffs[equalities[len(equalities)-1]].Text
	lastequality := ""
	pointer := 0 // Index of current position.
	// Is there an insertion operation before the last equality.
	preIns := false
	// Is there a deletion operation before the last equality.
	preDel := false
	// Is there an insertion operation after the last equality.
	postIns := false
	// Is there a deletion operation after the last equality.
	postDel := false
	for pointer < len(diffs) {
		if diffs[pointer].Type == DiffEqual {
			// Equality found.
			if len(diffs[pointer].Text) < dmp.DiffEditCost &&
				(postIns || postDel) {
				// Candidate found.
				equalities = append(equalities, pointer)
				preIns = postIns
				preDel = postDel
				lastequality = diffs[pointer].Text
			} else {
				// Not a candidate, and can never become one.
				equalities = equalities[:0]
				lastequality = ""
			}
			postIns = false
			postDel = false
		} else {
			// An insertion or deletion.
			if diffs[pointer].Type == DiffDelete {
				postDel = true
			} else {
				postIns = true
			}

			if len(lastequality) > 0 &&
				splitsEquality(preIns, preDel, postIns, postDel, len(lastequality), dmp.DiffEditCost) {
				insPoint := equalities[len(equalities)-1]

				// Duplicate record.
				diffs = slices.Insert(diffs, insPoint, Diff{DiffDelete, lastequality})

				// Change second copy to insert.
				diffs[insPoint+1].Type = DiffInsert
				// Throw away the equality we just deleted.
				equalities = equalities[:len(equalities)-1]
				lastequality = ""

				if preIns && preDel {
					// No changes made which could affect previous entry, keep going.
					postIns = true
					postDel = true
					equalities = equalities[:0]
				} else {
					// Throw away the previous equality.
					if len(equalities) > 0 {
						equalities = equalities[:len(equalities)-1]
					}
					if len(equalities) > 0 {
						pointer = equalities[len(equalities)-1]
					} else {
						pointer = -1
					}
					postIns = false
					postDel = false
				}
				changes = true
			}
		}
		pointer++
	}

	if changes {
		diffs = dmp.DiffCleanupMerge(diffs)
	}

	return diffs
}

// splitsEquality reports whether an equality of length n surrounded by the
// given edits costs more to keep than to fold into a delete and an insert.
//
// Five types to be split:
//
//	<ins>A</ins><del>B</del>XY<ins>C</ins><del>D</del>
//	<ins>A</ins>X<ins>C</ins><del>D</del>
//	<ins>A</ins><del>B</del>X<ins>C</ins>
//	<del>B</del>X<ins>C</ins><del>D</del>
//	<ins>A</ins><del>B</del>X<del>C</del>
func splitsEquality(preIns, preDel, postIns, postDel bool, n, editCost int) bool {
	if preIns && preDel && postIns && postDel {
		return true
	}
	sumPres := 0
	for _, b := range []bool{preIns, preDel, postIns, postDel} {
		if b {
			sumPres++
		}
	}
	return n < editCost/2 && sumPres == 3
}

// DiffCleanupMerge reorders and merges like edit sections. Merge equalities.
// Any edit section can move as long as it doesn't cross an equality.
func (dmp *DiffMatchPatch) DiffCleanupMerge(diffs []Diff) []Diff {
	merged := make([]Diff, 0, len(diffs))
	countDelete := 0
	countInsert := 0
	var textDelete, textInsert []rune

	flush := func() {
		var suffix string
		if countDelete != 0 && countInsert != 0 {
			// Factor out any common prefixes.
			if commonlength := commonPrefixLength(textInsert, textDelete); commonlength != 0 {
				merged = appendEquality(merged, string(textInsert[:commonlength]))
				textInsert = textInsert[commonlength:]
				textDelete = textDelete[commonlength:]
			}
			// Factor out any common suffixes.
			if commonlength := commonSuffixLength(textInsert, textDelete); commonlength != 0 {
				suffix = string(textInsert[len(textInsert)-commonlength:])
				textInsert = textInsert[:len(textInsert)-commonlength]
				textDelete = textDelete[:len(textDelete)-commonlength]
			}
		}
		if len(textDelete) != 0 {
			merged = append(merged, Diff{DiffDelete, string(textDelete)})
		}
		if len(textInsert) != 0 {
			merged = append(merged, Diff{DiffInsert, string(textInsert)})
		}
		merged = appendEquality(merged, suffix)

		countDelete = 0
		countInsert = 0
		textDelete = nil
		textInsert = nil
	}

	for _, d := range diffs {
		switch d.Type {
		case DiffInsert:
			countInsert++
			textInsert = append(textInsert, []rune(d.Text)...)
		case DiffDelete:
			countDelete++
			textDelete = append(textDelete, []rune(d.Text)...)
		case DiffEqual:
			// Upon reaching an equality, check for prior redundancies.
			flush()
			merged = appendEquality(merged, d.Text)
		}
	}
	flush()

	// Second pass: look for single edits surrounded on both sides by
	// equalities which can be shifted sideways to eliminate an equality.
	// e.g: A<ins>BA</ins>C -> <ins>AB</ins>AC
	changes := false
	shifted := make([]Diff, 0, len(merged))
	for i := 0; i < len(merged); i++ {
		d := merged[i]
		last := len(shifted) - 1
		if last >= 0 && i+1 < len(merged) &&
			shifted[last].Type == DiffEqual &&
			d.Type != DiffEqual &&
			merged[i+1].Type == DiffEqual {
			// This is a single edit surrounded by equalities.
			prev, next := shifted[last].Text, merged[i+1].Text
			if strings.HasSuffix(d.Text, prev) {
				// Shift the edit over the previous equality.
				shifted[last] = Diff{d.Type, prev + d.Text[:len(d.Text)-len(prev)]}
				merged[i+1].Text = prev + next
				changes = true
				continue
			} else if strings.HasPrefix(d.Text, next) {
				// Shift the edit over the next equality.
				shifted[last].Text += next
				shifted = append(shifted, Diff{d.Type, d.Text[len(next):] + next})
				i++
				changes = true
				continue
			}
		}
		shifted = append(shifted, d)
	}

	// If shifts were made, the diff needs reordering and another shift sweep.
	if changes {
		return dmp.DiffCleanupMerge(shifted)
	}

	return shifted
}

// appendEquality appends text as an equality, extending a trailing equality
// if there is one.
func appendEquality(diffs []Diff, text string) []Diff {
	if text == "" {
		return diffs
	}
	if last := len(diffs) - 1; last >= 0 && diffs[last].Type == DiffEqual {
		diffs[last].Text += text
		return diffs
	}
	return append(diffs, Diff{DiffEqual, text})
}
