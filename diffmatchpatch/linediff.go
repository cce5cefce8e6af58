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
	"slices"
	"strings"
)

// LineDiff is a line oriented diff. Each Diff holds exactly one line,
// including its trailing newline if it has one.
type LineDiff []Diff

// DiffLines computes a line by line diff of text1 and text2.
//
// Unlike DiffMain it does not look for a minimal diff. Equal lines are matched
// from both ends first, and when both current lines reappear further on, the
// shorter of the two candidate blocks is treated as moved. The result is
// stable and reads well as a patch. Within each block of changes deletions
// come before insertions.
func (dmp *DiffMatchPatch) DiffLines(text1, text2 string) LineDiff {
	source := splitLines(text1)
	target := splitLines(text2)

	// tail is built back to front.
	var head, tail []Diff
	deleteFront := func() {
		head = append(head, Diff{DiffDelete, source[0]})
		source = source[1:]
	}
	insertFront := func() {
		head = append(head, Diff{DiffInsert, target[0]})
		target = target[1:]
	}

	for len(source) > 0 && len(target) > 0 {
		if source[0] == target[0] {
			head = append(head, Diff{DiffEqual, source[0]})
			source, target = source[1:], target[1:]
			continue
		}
		if last1, last2 := len(source)-1, len(target)-1; source[last1] == target[last2] {
			tail = append(tail, Diff{DiffEqual, source[last1]})
			source, target = source[:last1], target[:last2]
			continue
		}

		// Where the front of each side shows up again on the other side.
		p := slices.Index(source, target[0])
		q := slices.Index(target, source[0])
		switch {
		case p < 0 && q < 0:
			// A changed line.
			deleteFront()
			insertFront()
		case q < 0:
			// The source line is gone, the target line comes later.
			deleteFront()
		case p < 0:
			insertFront()
		default:
			// Both lines come later. Either the target lines up to p moved
			// up, or the source lines up to q moved down. Move the smaller
			// block.
			up := matchingRun(target, source[p:])
			down := matchingRun(source, target[q:])
			if up < down || (up == down && p <= q) {
				for i := 0; i < up; i++ {
					insertFront()
				}
			} else {
				for i := 0; i < down; i++ {
					deleteFront()
				}
			}
		}
	}
	for len(source) > 0 {
		deleteFront()
	}
	for len(target) > 0 {
		insertFront()
	}

	slices.Reverse(tail)
	return LineDiff(reorderDeletionsFirst(append(head, tail...)))
}

// splitLines splits text after each newline. The last line has no newline if
// text does not end with one.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// matchingRun returns the number of leading lines a and b have in common.
func matchingRun(a, b []string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

// Patch formats the changed lines as hunks. Each block of changed lines gets
// a "@@ -S,C +S2,C2 @@" header with the 1-based first line and line count in
// the old and the new text. Equal lines are not printed.
func (d LineDiff) Patch() string {
	var b strings.Builder
	for _, blk := range d.changeBlocks() {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", blk.line1, blk.deleted, blk.line2, blk.inserted)
		for _, diff := range d[blk.start:blk.end] {
			writeLine(&b, diff)
		}
	}
	return b.String()
}

// changeBlock is a run d[start:end] of deleted and inserted lines between two
// equal lines. line1 and line2 are the 1-based numbers of its first line in
// the old and the new text.
type changeBlock struct {
	start, end        int
	line1, line2      int
	deleted, inserted int
}

func (d LineDiff) changeBlocks() []changeBlock {
	var blocks []changeBlock
	line1, line2 := 1, 1
	for i := 0; i < len(d); {
		if d[i].Type == DiffEqual {
			line1++
			line2++
			i++
			continue
		}

		blk := changeBlock{start: i, line1: line1, line2: line2}
		for ; i < len(d) && d[i].Type != DiffEqual; i++ {
			if d[i].Type == DiffDelete {
				blk.deleted++
			} else {
				blk.inserted++
			}
		}
		blk.end = i
		line1 += blk.deleted
		line2 += blk.inserted
		blocks = append(blocks, blk)
	}
	return blocks
}

// FullDiff formats every line of the diff, equal lines included, without hunk
// headers.
func (d LineDiff) FullDiff() string {
	var b strings.Builder
	for _, diff := range d {
		writeLine(&b, diff)
	}
	return b.String()
}

// Unified formats the diff in the "unified diff" format.
// Optionally pass UnifiedOption to set the new/old labels and context lines.
func (d LineDiff) Unified(opts ...UnifiedOption) string {
	return toUnified(d, newUnifiedOptions(opts)).String()
}

// writeLine writes one line of d prefixed with its operation marker.
func writeLine(b *strings.Builder, d Diff) {
	switch d.Type {
	case DiffDelete:
		_ = b.WriteByte('-')
	case DiffInsert:
		_ = b.WriteByte('+')
	default:
		_ = b.WriteByte(' ')
	}
	_, _ = b.WriteString(d.Text)
	if !strings.HasSuffix(d.Text, "\n") {
		_, _ = b.WriteString("\n\\ No newline at end of file\n")
	}
}
