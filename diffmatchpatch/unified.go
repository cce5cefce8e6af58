// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package diffmatchpatch

import (
	"fmt"
	"strconv"
	"strings"
)

// Unified computes the line differences between text1 and text2 with
// DiffLines and formats them in the "unified diff" format.
// Optionally pass UnifiedOption to set the new/old labels and context lines.
func (dmp *DiffMatchPatch) Unified(text1, text2 string, opts ...UnifiedOption) string {
	return dmp.DiffLines(text1, text2).Unified(opts...)
}

// DiffUnified formats the diffs slice in the "unified diff" format. The diffs
// need not be line oriented, they are split and merged into lines first.
// Optionally pass UnifiedOption to set the new/old labels and context lines.
func (dmp *DiffMatchPatch) DiffUnified(diffs []Diff, opts ...UnifiedOption) string {
	return LineDiff(diffLinewise(diffs)).Unified(opts...)
}

// toUnified groups the change blocks of d into hunks. Blocks separated by at
// most twice the context length share a hunk.
func toUnified(d LineDiff, opts unifiedOptions) unified {
	u := unified{
		label1: opts.text1Label,
		label2: opts.text2Label,
	}

	ctx := opts.contextLines
	blocks := d.changeBlocks()
	prevEnd := 0
	for len(blocks) > 0 {
		n := 1
		for n < len(blocks) && blocks[n].start-blocks[n-1].end <= 2*ctx {
			n++
		}
		first, last := blocks[0], blocks[n-1]
		before := min(ctx, first.start-prevEnd)
		after := min(ctx, len(d)-last.end)

		u.hunks = append(u.hunks, hunk{
			fromLine: first.line1 - before,
			toLine:   first.line2 - before,
			diffs:    d[first.start-before : last.end+after],
		})
		prevEnd = last.end
		blocks = blocks[n:]
	}

	return u
}

// diffLinewise splits and merges diffs so that each diff holds one line,
// including its newline.
func diffLinewise(diffs []Diff) []Diff {
	var (
		ret          []Diff
		text1, text2 string
	)

	// Lines are emitted once they are complete, or at the end of the text.
	emit := func(final bool) {
		complete := func(s string) bool { return s != "" && (final || strings.HasSuffix(s, "\n")) }
		if complete(text1) && text1 == text2 {
			ret = append(ret, Diff{DiffEqual, text1})
			text1, text2 = "", ""
		}
		if complete(text1) {
			ret = append(ret, Diff{DiffDelete, text1})
			text1 = ""
		}
		if complete(text2) {
			ret = append(ret, Diff{DiffInsert, text2})
			text2 = ""
		}
	}

	for _, diff := range diffCleanupNewline(diffs) {
		for _, segment := range strings.SplitAfter(diff.Text, "\n") {
			if diff.Type != DiffInsert {
				text1 += segment
			}
			if diff.Type != DiffDelete {
				text2 += segment
			}
			emit(false)
		}
	}
	emit(true)

	return reorderDeletionsFirst(ret)
}

// diffCleanupNewline shifts single edits between two equalities so that they
// end on a line boundary where the text allows it.
func diffCleanupNewline(diffs []Diff) []Diff {
	ret := make([]Diff, 0, len(diffs))

	for i := 0; i < len(diffs); i++ {
		if i+2 < len(diffs) && diffs[i].Type == DiffEqual && diffs[i+1].Type != DiffEqual && diffs[i+2].Type == DiffEqual {
			// =E ±"L\nX" ="L\nF" becomes =E"L\n" ±"XL\n" =F.
			if common := prefixWithNewline(diffs[i+1].Text, diffs[i+2].Text); common != "" {
				ret = append(ret,
					Diff{DiffEqual, diffs[i].Text + common},
					Diff{diffs[i+1].Type, diffs[i+1].Text[len(common):] + common},
					Diff{DiffEqual, diffs[i+2].Text[len(common):]},
				)
				i += 2
				continue
			}
		}
		ret = append(ret, diffs[i])
	}

	return ret
}

// prefixWithNewline returns the common prefix of text1 and text2 up to and
// including its last newline, or "" if there is none.
func prefixWithNewline(text1, text2 string) string {
	runes := []rune(text1)
	prefix := string(runes[:commonPrefixLength(runes, []rune(text2))])

	if index := strings.LastIndexByte(prefix, '\n'); index != -1 {
		return prefix[:index+1]
	}

	return ""
}

// reorderDeletionsFirst moves the deletions of each block of changes in front
// of its insertions. Equalities stay where they are.
func reorderDeletionsFirst(diffs []Diff) []Diff {
	var ret, insertions []Diff
	for _, diff := range diffs {
		switch diff.Type {
		case DiffDelete:
			ret = append(ret, diff)
		case DiffInsert:
			insertions = append(insertions, diff)
		default:
			ret = append(ret, insertions...)
			ret = append(ret, diff)
			insertions = insertions[:0]
		}
	}
	return append(ret, insertions...)
}

// unified is a diff ready to be printed in the unified format.
type unified struct {
	label1, label2 string
	hunks          []hunk
}

// hunk is a group of nearby changes with their surrounding context.
type hunk struct {
	// fromLine and toLine are the 1-based first lines of the hunk in the old
	// and the new text.
	fromLine, toLine int
	// One deleted, inserted or equal line per Diff.
	diffs []Diff
}

func (h hunk) String() string {
	var n1, n2 int
	for _, diff := range h.diffs {
		if diff.Type != DiffInsert {
			n1++
		}
		if diff.Type != DiffDelete {
			n2++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "@@ -%s +%s @@\n", hunkRange(h.fromLine, n1), hunkRange(h.toLine, n2))
	for _, diff := range h.diffs {
		writeLine(&b, diff)
	}
	return b.String()
}

// hunkRange formats one side of a hunk header like GNU diff -u: the count is
// left out when it is 1 and an empty file is "0,0".
func hunkRange(start, n int) string {
	switch {
	case n > 1:
		return fmt.Sprintf("%d,%d", start, n)
	case n == 0 && start == 1:
		return "0,0"
	}
	return strconv.Itoa(start)
}

// String converts a unified diff to the standard textual form for that diff.
// The output of this function can be passed to tools like patch.
func (u unified) String() string {
	if len(u.hunks) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "--- %s\n+++ %s\n", u.label1, u.label2)
	for _, h := range u.hunks {
		_, _ = b.WriteString(h.String())
	}
	return b.String()
}

// DefaultContextLines is the number of unchanged lines of surrounding
// context displayed by Unified.
const DefaultContextLines = 3

// UnifiedOption is an option for Unified and DiffUnified.
type UnifiedOption func(*unifiedOptions)

type unifiedOptions struct {
	contextLines int
	text1Label   string
	text2Label   string
}

func newUnifiedOptions(opts []UnifiedOption) unifiedOptions {
	ret := unifiedOptions{
		contextLines: DefaultContextLines,
		text1Label:   "text1",
		text2Label:   "text2",
	}

	for _, o := range opts {
		o(&ret)
	}

	return ret
}

// UnifiedContextLines sets the number of unchanged lines of surrounding context
// printed. Defaults to DefaultContextLines.
func UnifiedContextLines(lines int) UnifiedOption {
	if lines <= 0 {
		lines = DefaultContextLines
	}

	return func(o *unifiedOptions) {
		o.contextLines = lines
	}
}

// UnifiedLabels sets the labels for the old and new files. Defaults to "text1" and "text2".
func UnifiedLabels(oldLabel, newLabel string) UnifiedOption {
	return func(o *unifiedOptions) {
		o.text1Label = oldLabel
		o.text2Label = newLabel
	}
}
