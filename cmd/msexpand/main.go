// Command msexpand expands files compressed by Microsoft's compress.exe
// (SZDD format).
//
// Usage:
//
//	msexpand [-h] [-V] [file ...]
//
// Each file must end with an underscore, which is removed to name the
// output. An existing output file is never overwritten. With no files,
// msexpand expands standard input to standard output.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/erikolofsson/mscompress/szdd"
)

var version = "dev"

const bufferSize = 16 * 1024

func main() {
	log.SetFlags(0)
	os.Exit(run(os.Args[1:]))
}

func usage(flags *flag.FlagSet) func() {
	return func() {
		fmt.Fprintf(flags.Output(), "Usage: %s [-h] [-V] [file ...]\n"+
			" -h --help        give this help\n"+
			" -V --version     display version number\n"+
			" file...          files to decompress. If none given, use standard input.\n", flags.Name())
	}
}

func run(args []string) int {
	flags := flag.NewFlagSet("msexpand", flag.ContinueOnError)
	flags.Usage = usage(flags)
	showVersion := flags.Bool("V", false, "display version number")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *showVersion {
		fmt.Printf("msexpand version %s\n", version)
		return 0
	}

	if flags.NArg() == 0 {
		if isTerminal(os.Stdin) {
			flags.Usage()
			return 0
		}
		if err := expand(os.Stdout, os.Stdin); err != nil {
			log.Printf("STDIN: %v", err)
			return 1
		}
		return 0
	}

	for _, src := range flags.Args() {
		dst, err := outputName(src)
		if err != nil {
			log.Printf("%s: %v", src, err)
			continue
		}
		fatal, err := expandFile(src, dst)
		if err != nil {
			log.Print(err)
			if fatal {
				return 1
			}
		}
	}
	return 0
}

var errNoUnderscore = errors.New("Doesn't end with underscore -- ignored")

// outputName strips the trailing underscore from src.
func outputName(src string) (string, error) {
	if !strings.HasSuffix(src, "_") {
		return "", errNoUnderscore
	}
	return strings.TrimSuffix(src, "_"), nil
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func expand(w io.Writer, r io.Reader) error {
	bw := bufio.NewWriterSize(w, bufferSize)
	if _, err := szdd.Expand(bw, bufio.NewReaderSize(r, bufferSize)); err != nil {
		return err
	}
	return bw.Flush()
}

// expandFile expands src into a new file dst. fatal is set when either file
// could not be opened, which stops the batch; errors while expanding are
// only reported.
func expandFile(src, dst string) (fatal bool, err error) {
	in, err := os.Open(src)
	if err != nil {
		return true, err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o666)
	if err != nil {
		return true, err
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("%s: %w", dst, cerr)
		}
	}()

	if err := expand(out, in); err != nil {
		return false, fmt.Errorf("%s: %w", src, err)
	}
	return false, nil
}
