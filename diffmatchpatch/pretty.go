// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package diffmatchpatch

import (
	"html"
	"strings"
)

// markup holds the text written around a diff of one operation.
type markup struct {
	open, close string
}

var (
	htmlMarkup = map[Operation]markup{
		DiffInsert: {`<ins style="background:#e6ffe6;">`, "</ins>"},
		DiffDelete: {`<del style="background:#ffe6e6;">`, "</del>"},
		DiffEqual:  {"<span>", "</span>"},
	}
	ansiMarkup = map[Operation]markup{
		DiffInsert: {"\x1b[32m", "\x1b[0m"},
		DiffDelete: {"\x1b[31m", "\x1b[0m"},
	}
	htmlNewline = strings.NewReplacer("\n", "&para;<br>")
)

// DiffPrettyHtml converts a []Diff into a pretty HTML report.
// It is intended as an example from which to write one's own display functions.
func (dmp *DiffMatchPatch) DiffPrettyHtml(diffs []Diff) string {
	var b strings.Builder
	for _, diff := range diffs {
		writeMarked(&b, htmlMarkup[diff.Type], htmlNewline.Replace(html.EscapeString(diff.Text)))
	}
	return b.String()
}

// DiffPrettyText converts a []Diff into a colored text report.
func (dmp *DiffMatchPatch) DiffPrettyText(diffs []Diff) string {
	var b strings.Builder
	for _, diff := range diffs {
		writeMarked(&b, ansiMarkup[diff.Type], diff.Text)
	}
	return b.String()
}

func writeMarked(b *strings.Builder, m markup, text string) {
	_, _ = b.WriteString(m.open)
	_, _ = b.WriteString(text)
	_, _ = b.WriteString(m.close)
}
