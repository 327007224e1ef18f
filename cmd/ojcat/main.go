// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program ojcat reads a JSON document, or a stream of concatenated JSON
// documents, and re-emits each one as canonical JSON on its own line.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/liptonshmidt/oj"
	"github.com/liptonshmidt/oj/ast"
)

var (
	bigDecFlag         = flag.String("bigdec", "auto", "big-decimal materialization: auto, big, or float")
	commentsFlag       = flag.Bool("comments", false, "allow // and /* */ comments in the input")
	trailingCommasFlag = flag.Bool("trailing-commas", false, "allow a trailing comma before ] or }")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ojcat: ")
	flag.Parse()

	opt, err := parseOptions()
	if err != nil {
		log.Fatal(err)
	}

	in := os.Stdin
	if args := flag.Args(); len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	if err := run(in, os.Stdout, opt); err != nil {
		log.Fatal(err)
	}
}

func parseOptions() (oj.Options, error) {
	opt := oj.Options{}.WithComments(*commentsFlag).WithTrailingCommas(*trailingCommasFlag)
	switch *bigDecFlag {
	case "auto":
		opt = opt.WithBigDecMode(oj.AutoDec)
	case "big":
		opt = opt.WithBigDecMode(oj.BigDec)
	case "float":
		opt = opt.WithBigDecMode(oj.FloatDec)
	default:
		return opt, fmt.Errorf("invalid -bigdec value %q: want auto, big, or float", *bigDecFlag)
	}
	return opt, nil
}

// run parses the whitespace-separated stream of documents in r and writes
// one line of canonical JSON per document to w.
func run(r io.Reader, w io.Writer, opt oj.Options) error {
	docs, err := ast.ParseAll(r, opt)
	if err != nil {
		return err
	}
	for _, v := range docs {
		if _, err := fmt.Fprintln(w, v.JSON()); err != nil {
			return err
		}
	}
	return nil
}
