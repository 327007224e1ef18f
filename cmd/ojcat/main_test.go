// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"strings"
	"testing"

	"github.com/liptonshmidt/oj"
)

func TestRunEmitsOneLinePerDocument(t *testing.T) {
	var out strings.Builder
	err := run(strings.NewReader(`{"a":1} [1,2,3] "x"`), &out, oj.Options{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "{\"a\":1}\n[1,2,3]\n\"x\"\n"
	if out.String() != want {
		t.Errorf("run output = %q, want %q", out.String(), want)
	}
}

func TestRunRespectsComments(t *testing.T) {
	var out strings.Builder
	opt := oj.Options{}.WithComments(true)
	err := run(strings.NewReader("// leading comment\n[1, 2 /* trailing */]"), &out, opt)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got, want := out.String(), "[1,2]\n"; got != want {
		t.Errorf("run output = %q, want %q", got, want)
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	var out strings.Builder
	if err := run(strings.NewReader(`{"a":}`), &out, oj.Options{}); err == nil {
		t.Error("run with malformed input: got nil error, want non-nil")
	}
}

func TestParseOptionsRejectsUnknownBigDecMode(t *testing.T) {
	old := *bigDecFlag
	defer func() { *bigDecFlag = old }()

	*bigDecFlag = "nonsense"
	if _, err := parseOptions(); err == nil {
		t.Error("parseOptions with bad -bigdec: got nil error, want non-nil")
	}
}
