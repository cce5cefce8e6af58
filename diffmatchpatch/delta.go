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
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"
)

// unescaper unescapes selected chars for compatibility with JavaScript's encodeURI.
// In speed critical applications this could be dropped since the
// receiving application will certainly decode these fine.
// Note that this function is case-sensitive.  Thus "%3f" would not be
// unescaped.  But this is ok because it is only called with the output of
// url.QueryEscape which returns uppercase hex.
//
// Example: "%3F" -> "?", "%24" -> "$", etc.
var unescaper = strings.NewReplacer(
	"%21", "!", "%7E", "~", "%27", "'",
	"%28", "(", "%29", ")", "%3B", ";",
	"%2F", "/", "%3F", "?", "%3A", ":",
	"%40", "@", "%26", "&", "%3D", "=",
	"%2B", "+", "%24", "$", "%2C", ",", "%23", "#", "%2A", "*")

// FormatError is returned by DiffFromDelta when a delta cannot be applied to
// the source text.
type FormatError struct {
	// Token is the offending delta token. It is empty when the delta as a
	// whole does not fit the source text.
	Token string
	// Index is the position of Token among the tab separated tokens, or -1.
	Index int
	// Offset is the rune offset in the source text reached before the error.
	Offset int
	Err    error
}

func (e *FormatError) Error() string {
	if e.Index < 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v (token %d %q at offset %d)", e.Err, e.Index, e.Token, e.Offset)
}

func (e *FormatError) Unwrap() error { return e.Err }

// DiffToDelta crushes the diff into an encoded string which describes the
// operations required to transform text1 into text2.
// E.g. =3\t-2\t+ing  -> Keep 3 chars, delete 2 chars, insert 'ing'.
// Operations are tab-separated.  Inserted text is escaped using %xx notation.
func (dmp *DiffMatchPatch) DiffToDelta(diffs []Diff) string {
	tokens := make([]string, 0, len(diffs))
	for _, aDiff := range diffs {
		switch aDiff.Type {
		case DiffInsert:
			text := strings.ReplaceAll(url.QueryEscape(aDiff.Text), "+", " ")
			tokens = append(tokens, "+"+unescaper.Replace(text))
		case DiffDelete:
			tokens = append(tokens, "-"+strconv.Itoa(utf8.RuneCountInString(aDiff.Text)))
		case DiffEqual:
			tokens = append(tokens, "="+strconv.Itoa(utf8.RuneCountInString(aDiff.Text)))
		}
	}
	return strings.Join(tokens, "\t")
}

// DiffFromDelta given the original text1, and an encoded string which describes
// the operations required to transform text1 into text2, computes the full diff.
func (dmp *DiffMatchPatch) DiffFromDelta(text1, delta string) ([]Diff, error) {
	var diffs []Diff
	runes := []rune(text1)
	pointer := 0 // Cursor in runes

	for i, token := range strings.Split(delta, "\t") {
		if len(token) == 0 {
			// Blank tokens are ok (from a trailing \t).
			continue
		}
		fail := func(err error) ([]Diff, error) {
			return nil, &FormatError{Token: token, Index: i, Offset: pointer, Err: err}
		}

		// Each token begins with a one character parameter which specifies the
		// operation of this token (delete, insert, equality).
		param := token[1:]

		switch op := token[0]; op {
		case '+':
			// Literal pluses were escaped, a bare one would decode as a space.
			param = strings.ReplaceAll(param, "+", "%2B")
			text, err := url.QueryUnescape(param)
			if err != nil {
				return fail(err)
			}
			if !utf8.ValidString(text) {
				return fail(fmt.Errorf("invalid UTF-8 token: %q", text))
			}
			diffs = append(diffs, Diff{DiffInsert, text})
		case '=', '-':
			n, err := strconv.ParseInt(param, 10, 0)
			if err != nil {
				return fail(err)
			}
			if n < 0 {
				return fail(errors.New("negative number in DiffFromDelta: " + param))
			}
			if n > int64(len(runes)-pointer) {
				return fail(fmt.Errorf("delta length (%d) is different from source text length (%d)", uint64(pointer)+uint64(n), len(runes)))
			}
			end := pointer + int(n)
			text := string(runes[pointer:end])
			pointer = end

			if op == '=' {
				diffs = append(diffs, Diff{DiffEqual, text})
			} else {
				diffs = append(diffs, Diff{DiffDelete, text})
			}
		default:
			// Anything else is an error.
			return fail(errors.New("invalid diff operation in DiffFromDelta: " + string(op)))
		}
	}

	if pointer != len(runes) {
		return nil, &FormatError{
			Index:  -1,
			Offset: pointer,
			Err:    fmt.Errorf("delta length (%d) is different from source text length (%d)", pointer, len(runes)),
		}
	}

	return diffs, nil
}
