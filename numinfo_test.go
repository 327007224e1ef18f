// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package oj

import (
	"math"
	"math/big"
	"testing"
)

func scanOneNumber(t *testing.T, input string, opt Options) NumInfo {
	t.Helper()
	r := NewSliceReader([]byte(input))
	c := r.NextNonWhite()
	r.Protect(1)
	ni, err := scanNumber(r, c, opt)
	if err != nil {
		t.Fatalf("scanNumber(%q): %v", input, err)
	}
	return ni
}

func TestScanNumberInt(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"0", 0},
		{"5139", 5139},
		{"-1", -1},
		{"+42", 42},
	}
	for _, test := range tests {
		ni := scanOneNumber(t, test.input, Options{})
		if ni.Big {
			t.Errorf("scanNumber(%q): unexpectedly escalated to big", test.input)
			continue
		}
		got := ni.Decode()
		if got.Kind != KindInt || got.Int != test.want {
			t.Errorf("scanNumber(%q).Decode(): got %+v, want Int %d", test.input, got, test.want)
		}
	}
}

func TestScanNumberFloat(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"2.3", 2.3},
		{"5e9", 5e9},
		{"3.6E+4", 3.6e4},
		{"-0.001e-2", -0.001e-2},
	}
	for _, test := range tests {
		ni := scanOneNumber(t, test.input, Options{})
		got := ni.Decode()
		if got.Kind != KindFloat {
			t.Errorf("scanNumber(%q).Decode(): got Kind %v, want Float", test.input, got.Kind)
			continue
		}
		if math.Abs(got.Float-test.want) > 1e-9*math.Abs(test.want) {
			t.Errorf("scanNumber(%q).Decode(): got %v, want %v", test.input, got.Float, test.want)
		}
	}
}

func TestScanNumberBigInt(t *testing.T) {
	const input = "123456789012345678901234567890"
	ni := scanOneNumber(t, input, Options{})
	if !ni.Big {
		t.Fatalf("scanNumber(%q): expected escalation to big", input)
	}
	got := ni.Decode()
	if got.Kind != KindBigInt {
		t.Fatalf("scanNumber(%q).Decode(): got Kind %v, want BigInt", input, got.Kind)
	}
	want, _ := new(big.Int).SetString(input, 10)
	if got.BigInt.Cmp(want) != 0 {
		t.Errorf("scanNumber(%q).Decode(): got %v, want %v", input, got.BigInt, want)
	}
}

func TestScanNumberBigDecimal(t *testing.T) {
	const input = "1.234567890123456789012345e10"
	ni := scanOneNumber(t, input, Options{})
	if !ni.Big {
		t.Fatalf("scanNumber(%q): expected escalation to big", input)
	}
	got := ni.Decode()
	if got.Kind != KindBigDecimal {
		t.Fatalf("scanNumber(%q).Decode(): got Kind %v, want BigDecimal", input, got.Kind)
	}
	const want = "12345678901.23456789012345"
	if got.BigDec.String() != want {
		t.Errorf("scanNumber(%q).Decode(): got %v, want %v", input, got.BigDec, want)
	}
}

func TestScanNumberFloatDecMode(t *testing.T) {
	const input = "1.234567890123456789012345e2"
	opt := Options{}.WithBigDecMode(FloatDec)
	ni := scanOneNumber(t, input, opt)
	got := ni.Decode()
	if got.Kind != KindFloat {
		t.Fatalf("scanNumber(%q).Decode() under FloatDec: got Kind %v, want Float", input, got.Kind)
	}
	const want = 123.4567890123456789012345
	if math.Abs(got.Float-want) > 1e-6 {
		t.Errorf("scanNumber(%q).Decode(): got %v, want ~%v", input, got.Float, want)
	}
}

func TestScanNumberForcedBigDecMode(t *testing.T) {
	ni := scanOneNumber(t, "5", Options{}.WithBigDecMode(BigDec))
	got := ni.Decode()
	if got.Kind != KindBigInt {
		t.Fatalf("scanNumber(\"5\").Decode() under BigDec: got Kind %v, want BigInt", got.Kind)
	}
	if got.BigInt.Int64() != 5 {
		t.Errorf("scanNumber(\"5\").Decode(): got %v, want 5", got.BigInt)
	}
}

func TestScanNumberInfinityAndNaN(t *testing.T) {
	pos := scanOneNumber(t, "Infinity", Options{})
	if got := pos.Decode(); got.Kind != KindFloat || !math.IsInf(got.Float, 1) {
		t.Errorf("scanNumber(%q).Decode(): got %+v, want +Inf", "Infinity", got)
	}

	neg := scanOneNumber(t, "-Infinity", Options{})
	if got := neg.Decode(); got.Kind != KindFloat || !math.IsInf(got.Float, -1) {
		t.Errorf("scanNumber(%q).Decode(): got %+v, want -Inf", "-Infinity", got)
	}

	nan := scanOneNumber(t, "NaN", Options{})
	if got := nan.Decode(); got.Kind != KindFloat || !math.IsNaN(got.Float) {
		t.Errorf("scanNumber(%q).Decode(): got %+v, want NaN", "NaN", got)
	}
}

func TestScanNumberBadInfinity(t *testing.T) {
	r := NewSliceReader([]byte("Infinit"))
	c := r.NextNonWhite()
	r.Protect(1)
	if _, err := scanNumber(r, c, Options{}); err == nil {
		t.Error("scanNumber(\"Infinit\"): got nil error, want non-nil")
	}
}
