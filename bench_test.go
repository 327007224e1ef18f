// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package oj_test

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/liptonshmidt/oj"
	"github.com/liptonshmidt/oj/ast"
)

// benchInput is a small but structurally varied document (nested arrays
// and objects, strings, integers, and floats) standing in for the
// teacher's testdata/input.json, so the benchmark has no external file
// dependency.
var benchInput = []byte(`{
  "users": [
    {"id": 1, "name": "Ann", "active": true, "score": 91.5},
    {"id": 2, "name": "Bai", "active": false, "score": 73.25},
    {"id": 3, "name": "Cy", "active": true, "score": 88.0, "tags": ["a", "b", "c"]}
  ],
  "total": 3,
  "meta": {"page": 1, "pageSize": 50, "note": "sample data"}
}`)

func BenchmarkParse(b *testing.B) {
	b.Run("Decoder", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			dec := json.NewDecoder(bytes.NewReader(benchInput))
			for {
				_, err := dec.Token()
				if err == io.EOF {
					break
				} else if err != nil {
					b.Fatalf("unexpected error: %v", err)
				}
			}
		}
	})

	b.Run("Parser", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			p := oj.New(oj.NewSliceReader(benchInput), oj.Options{})
			if err := p.Run(ast.NewBuilder()); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
		}
	})
}
