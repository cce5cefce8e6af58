// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

// go-textdiff prints the differences between two files.
//
// Usage:
//
//	go-textdiff [flags] OLD NEW [OFFSET]
//	go-textdiff [flags] -txtar FILE [OFFSET]
//
// With OFFSET, the rune offset in OLD is mapped to the matching offset in NEW
// instead of printing the diff.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cast"
	"golang.org/x/term"
	"golang.org/x/tools/txtar"

	"github.com/di-graph/go-textdiff/diffmatchpatch"
)

type config struct {
	format     string
	cleanup    string
	timeout    time.Duration
	editCost   int
	checklines bool
	context    int
	txtar      string

	oldName, newName string
	offset           string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("go-textdiff: ")

	var cfg config
	flag.StringVar(&cfg.format, "format", "", "output format: delta, html, text, patch, full or unified (default text on a terminal, unified otherwise)")
	flag.StringVar(&cfg.cleanup, "cleanup", "semantic", "cleanup applied to character diffs: none, semantic or efficiency")
	flag.DurationVar(&cfg.timeout, "timeout", time.Second, "time limit for computing a character diff, 0 for none")
	flag.IntVar(&cfg.editCost, "editcost", 4, "cost of an empty edit for the efficiency cleanup")
	flag.BoolVar(&cfg.checklines, "checklines", true, "run a line level diff first to speed up large inputs")
	flag.IntVar(&cfg.context, "context", diffmatchpatch.DefaultContextLines, "lines of context in unified output")
	flag.StringVar(&cfg.txtar, "txtar", "", "read OLD and NEW from the files \"old\" and \"new\" of a txtar archive")
	flag.Parse()

	args := flag.Args()
	if cfg.txtar == "" {
		if len(args) < 2 || len(args) > 3 {
			log.Fatal("usage: go-textdiff [flags] OLD NEW [OFFSET]")
		}
		cfg.oldName, cfg.newName, args = args[0], args[1], args[2:]
	} else {
		if len(args) > 1 {
			log.Fatal("usage: go-textdiff [flags] -txtar FILE [OFFSET]")
		}
		cfg.oldName, cfg.newName = "old", "new"
	}
	if len(args) == 1 {
		cfg.offset = args[0]
	}

	if cfg.format == "" {
		cfg.format = "unified"
		if term.IsTerminal(int(os.Stdout.Fd())) {
			cfg.format = "text"
		}
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config, w io.Writer) error {
	dmp, err := diffmatchpatch.NewWithOptions(
		diffmatchpatch.WithTimeout(cfg.timeout),
		diffmatchpatch.WithEditCost(cfg.editCost),
	)
	if err != nil {
		return err
	}

	text1, text2, err := readInputs(cfg)
	if err != nil {
		return err
	}

	if cfg.offset != "" {
		loc, err := cast.ToIntE(cfg.offset)
		if err != nil {
			return fmt.Errorf("invalid offset %q: %w", cfg.offset, err)
		}
		if loc < 0 || loc > len([]rune(text1)) {
			return fmt.Errorf("offset %d is outside of %s", loc, cfg.oldName)
		}
		diffs := dmp.DiffMainRunes([]rune(text1), []rune(text2), cfg.checklines)
		_, err = fmt.Fprintf(w, "loc_change: %d -> %d\n", loc, dmp.DiffXIndex(diffs, loc))
		return err
	}

	var out string
	switch cfg.format {
	case "patch":
		out = dmp.DiffLines(text1, text2).Patch()
	case "full":
		out = dmp.DiffLines(text1, text2).FullDiff()
	case "unified":
		out = dmp.DiffLines(text1, text2).Unified(
			diffmatchpatch.UnifiedLabels(cfg.oldName, cfg.newName),
			diffmatchpatch.UnifiedContextLines(cfg.context))
	case "delta", "html", "text":
		diffs, err := charDiff(dmp, cfg, text1, text2)
		if err != nil {
			return err
		}
		switch cfg.format {
		case "delta":
			out = dmp.DiffToDelta(diffs) + "\n"
		case "html":
			out = dmp.DiffPrettyHtml(diffs) + "\n"
		default:
			out = dmp.DiffPrettyText(diffs)
		}
	default:
		return fmt.Errorf("unknown format %q", cfg.format)
	}

	_, err = io.WriteString(w, out)
	return err
}

func charDiff(dmp *diffmatchpatch.DiffMatchPatch, cfg config, text1, text2 string) ([]diffmatchpatch.Diff, error) {
	diffs := dmp.DiffMain(text1, text2, cfg.checklines)
	switch cfg.cleanup {
	case "none":
	case "semantic":
		diffs = dmp.DiffCleanupSemantic(diffs)
	case "efficiency":
		diffs = dmp.DiffCleanupEfficiency(diffs)
	default:
		return nil, fmt.Errorf("unknown cleanup %q", cfg.cleanup)
	}
	return diffs, nil
}

func readInputs(cfg config) (string, string, error) {
	if cfg.txtar == "" {
		text1, err := os.ReadFile(cfg.oldName)
		if err != nil {
			return "", "", err
		}
		text2, err := os.ReadFile(cfg.newName)
		if err != nil {
			return "", "", err
		}
		return string(text1), string(text2), nil
	}

	ar, err := txtar.ParseFile(cfg.txtar)
	if err != nil {
		return "", "", err
	}
	var text1, text2 string
	for _, f := range ar.Files {
		switch f.Name {
		case "old":
			text1 = string(f.Data)
		case "new":
			text2 = string(f.Data)
		}
	}
	return text1, text2, nil
}
