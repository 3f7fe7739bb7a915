// Command fpaqd decompresses a file produced by fpaqc.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fumin/fpaq0f2"
	"github.com/pkg/errors"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s infile outfile\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0), flag.Arg(1)); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run(inPath, outPath string) error {
	in, err := os.ReadFile(inPath)
	if err != nil {
		return errors.Wrap(err, "")
	}

	out := make([]byte, 4*len(in)+64)
	var n uint64
	for {
		n = fpaq0f2.Decompress(in, out)
		if n == fpaq0f2.ErrInvalidArgument {
			return errors.Errorf("invalid argument decompressing %s", inPath)
		}
		if n <= uint64(len(out)) {
			break
		}
		out = make([]byte, 2*len(out))
	}

	if err := os.WriteFile(outPath, out[:n], 0644); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}
