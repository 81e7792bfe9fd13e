package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/erikolofsson/mscompress/szdd"
)

func TestOutputName(t *testing.T) {
	if got, err := outputName("README.TXT", ""); err != nil || got != "README.TXT_" {
		t.Fatalf("got %q, %v", got, err)
	}
	if got, err := outputName("README.TXT", "out.bin"); err != nil || got != "out.bin" {
		t.Fatalf("got %q, %v", got, err)
	}
	if _, err := outputName("SETUP.EX_", ""); err != errHasUnderscore {
		t.Fatalf("got %v, want errHasUnderscore", err)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "data.txt")
	data := bytes.Repeat([]byte("compress me, compress me again\n"), 200)
	if err := os.WriteFile(src, data, 0o644); err != nil {
		t.Fatal(err)
	}

	if code := run([]string{src}); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	compressed, err := os.ReadFile(src + "_")
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if _, err := szdd.Expand(&out, bytes.NewReader(compressed)); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.Bytes(), data) {
		t.Fatal("round trip through the command failed")
	}

	// The output already exists and must not be overwritten.
	if code := run([]string{src}); code != 1 {
		t.Fatalf("exit code %d, want 1", code)
	}
	if code := run(nil); code != 1 {
		t.Fatalf("no files: exit code %d, want 1", code)
	}
}
