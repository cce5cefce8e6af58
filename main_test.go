// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	type TestCase struct {
		Name string

		Format  string
		Cleanup string

		Expected string
	}

	for _, tc := range []TestCase{
		{"patch", "patch", "semantic", "@@ -2,1 +2,1 @@\n-b\n+x\n"},
		{"full", "full", "semantic", " a\n-b\n+x\n c\n"},
		{"unified", "unified", "semantic", "--- old\n+++ new\n@@ -1,3 +1,3 @@\n a\n-b\n+x\n c\n"},
		{"delta", "delta", "semantic", "=2\t-1\t+x\t=3\n"},
		{"delta without cleanup", "delta", "none", "=2\t-1\t+x\t=3\n"},
		{"html", "html", "efficiency", "<span>a&para;<br></span><del style=\"background:#ffe6e6;\">b</del><ins style=\"background:#e6ffe6;\">x</ins><span>&para;<br>c&para;<br></span>\n"},
		{"text", "text", "semantic", "a\n\x1b[31mb\x1b[0m\x1b[32mx\x1b[0m\nc\n"},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			cfg := config{
				format:     tc.Format,
				cleanup:    tc.Cleanup,
				timeout:    time.Second,
				editCost:   4,
				checklines: true,
				context:    3,
				txtar:      "testdata/lines.txtar",
				oldName:    "old",
				newName:    "new",
			}

			var out bytes.Buffer
			require.NoError(t, run(cfg, &out))
			assert.Equal(t, tc.Expected, out.String())
		})
	}
}

func TestRunOffset(t *testing.T) {
	dir := t.TempDir()
	oldName := filepath.Join(dir, "old.txt")
	newName := filepath.Join(dir, "new.txt")
	require.NoError(t, os.WriteFile(oldName, []byte("The cat\n"), 0o644))
	require.NoError(t, os.WriteFile(newName, []byte("The big cat\n"), 0o644))

	cfg := config{
		format:   "unified",
		timeout:  time.Second,
		editCost: 4,
		oldName:  oldName,
		newName:  newName,
		offset:   "5",
	}

	var out bytes.Buffer
	require.NoError(t, run(cfg, &out))
	assert.Equal(t, "loc_change: 5 -> 9\n", out.String())

	cfg.offset = "five"
	assert.ErrorContains(t, run(cfg, &out), `invalid offset "five"`)

	cfg.offset = "100"
	assert.ErrorContains(t, run(cfg, &out), "offset 100 is outside of")
}

func TestRunErrors(t *testing.T) {
	base := config{
		format:   "patch",
		cleanup:  "semantic",
		timeout:  time.Second,
		editCost: 4,
		txtar:    "testdata/lines.txtar",
	}

	cfg := base
	cfg.format = "yaml"
	assert.EqualError(t, run(cfg, &bytes.Buffer{}), `unknown format "yaml"`)

	cfg = base
	cfg.format = "delta"
	cfg.cleanup = "aggressive"
	assert.EqualError(t, run(cfg, &bytes.Buffer{}), `unknown cleanup "aggressive"`)

	cfg = base
	cfg.editCost = 0
	assert.ErrorContains(t, run(cfg, &bytes.Buffer{}), "invalid argument")

	cfg = base
	cfg.txtar = "testdata/missing.txtar"
	assert.Error(t, run(cfg, &bytes.Buffer{}))
}
