// Command mscompress compresses a file in the SZDD format of Microsoft's
// compress.exe, so that it can be unpacked with expand.exe.
//
// Usage:
//
//	mscompress [-h] [-V] file [outfile]
//
// The output defaults to file with an underscore appended. An existing
// output file is never overwritten.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io/fs"
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
		fmt.Fprintf(flags.Output(), "Usage: %s [-h] [-V] file [outfile]\n"+
			" -h --help        give this help\n"+
			" -V --version     display version number\n"+
			" file             file to compress\n"+
			" outfile          output name (default: file followed by _)\n", flags.Name())
	}
}

func run(args []string) int {
	flags := flag.NewFlagSet("mscompress", flag.ContinueOnError)
	flags.Usage = usage(flags)
	showVersion := flags.Bool("V", false, "display version number")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *showVersion {
		fmt.Printf("mscompress version %s\n", version)
		return 0
	}

	if flags.NArg() == 0 {
		log.Printf("%s: No files specified", flags.Name())
		flags.Usage()
		return 1
	}

	src := flags.Arg(0)
	dst, err := outputName(src, flags.Arg(1))
	if err != nil {
		log.Printf("%s: %v", src, err)
		return 1
	}

	if err := compressFile(src, dst); err != nil {
		log.Print(err)
		return 1
	}
	return 0
}

var errHasUnderscore = errors.New("Already ends with underscore -- ignored")

// outputName returns explicit if it is set, and src with an underscore
// appended otherwise.
func outputName(src, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if strings.HasSuffix(src, "_") {
		return "", errHasUnderscore
	}
	return src + "_", nil
}

func compressFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o666)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriterSize(out, bufferSize)
	if err := szdd.CompressFile(bw, bufferedFile{in, bufio.NewReaderSize(in, bufferSize)}); err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: %w", dst, err)
	}
	return nil
}

// bufferedFile reads through a buffer but stats the underlying file.
type bufferedFile struct {
	f *os.File
	r *bufio.Reader
}

func (b bufferedFile) Read(p []byte) (int, error) {
	return b.r.Read(p)
}

func (b bufferedFile) Stat() (fs.FileInfo, error) {
	return b.f.Stat()
}
