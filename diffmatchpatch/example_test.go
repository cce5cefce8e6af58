// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package diffmatchpatch_test

import (
	"fmt"

	"github.com/di-graph/go-textdiff/diffmatchpatch"
)

func ExampleDiffMatchPatch_DiffMain() {
	dmp := diffmatchpatch.New()

	diffs := dmp.DiffMain("The cat sat.", "The dog sat.", false)
	for _, d := range diffs {
		fmt.Printf("%v %q\n", d.Type, d.Text)
	}
	// Output:
	// Equal "The "
	// Delete "cat"
	// Insert "dog"
	// Equal " sat."
}

func ExampleDiffMatchPatch_DiffToDelta() {
	dmp := diffmatchpatch.New()

	text1 := "jumps over the lazy"
	diffs := dmp.DiffMain(text1, "jumped over a lazy dog", false)
	delta := dmp.DiffToDelta(diffs)

	restored, err := dmp.DiffFromDelta(text1, delta)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(dmp.DiffText2(restored))
	// Output:
	// jumped over a lazy dog
}
