package szdd

import (
	"bytes"
	"io"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

var benchInput = sampleText(42, 1<<20)

func BenchmarkEncode(b *testing.B) {
	b.StopTimer()
	b.ReportAllocs()
	data := benchInput
	b.SetBytes(int64(len(data)))
	buf := new(bytes.Buffer)
	if err := Compress(buf, bytes.NewReader(data), int64(len(data))); err != nil {
		b.Fatal(err)
	}
	b.ReportMetric(float64(len(data))/float64(buf.Len()), "ratio")
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		Compress(io.Discard, bytes.NewReader(data), int64(len(data)))
	}
}

func BenchmarkDecode(b *testing.B) {
	b.StopTimer()
	b.ReportAllocs()
	data := benchInput
	compressed := compress(b, data)
	b.SetBytes(int64(len(data)))
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		Expand(io.Discard, bytes.NewReader(compressed))
	}
}

func BenchmarkEncodeGolangSnappy(b *testing.B) {
	b.StopTimer()
	b.ReportAllocs()
	data := benchInput
	b.SetBytes(int64(len(data)))
	b.ReportMetric(float64(len(data))/float64(len(snappy.Encode(nil, data))), "ratio")
	dst := make([]byte, snappy.MaxEncodedLen(len(data)))
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		snappy.Encode(dst, data)
	}
}

func BenchmarkEncodeFlate(b *testing.B) {
	b.StopTimer()
	b.ReportAllocs()
	data := benchInput
	b.SetBytes(int64(len(data)))
	buf := new(bytes.Buffer)
	w, err := flate.NewWriter(buf, flate.DefaultCompression)
	if err != nil {
		b.Fatal(err)
	}
	w.Write(data)
	w.Close()
	b.ReportMetric(float64(len(data))/float64(buf.Len()), "ratio")
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		w.Reset(io.Discard)
		w.Write(data)
		w.Close()
	}
}

func BenchmarkEncodeZstd(b *testing.B) {
	b.StopTimer()
	b.ReportAllocs()
	data := benchInput
	b.SetBytes(int64(len(data)))
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
	if err != nil {
		b.Fatal(err)
	}
	defer enc.Close()
	compressed := enc.EncodeAll(data, nil)
	b.ReportMetric(float64(len(data))/float64(len(compressed)), "ratio")
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		compressed = enc.EncodeAll(data, compressed[:0])
	}
}

func BenchmarkEncodeLZ4(b *testing.B) {
	b.StopTimer()
	b.ReportAllocs()
	data := benchInput
	b.SetBytes(int64(len(data)))
	dst := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lz4.CompressBlock(data, dst, nil)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportMetric(float64(len(data))/float64(n), "ratio")
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		lz4.CompressBlock(data, dst, nil)
	}
}

func BenchmarkEncodeBrotli(b *testing.B) {
	b.StopTimer()
	b.ReportAllocs()
	data := benchInput
	b.SetBytes(int64(len(data)))
	buf := new(bytes.Buffer)
	w := brotli.NewWriterLevel(buf, 5)
	w.Write(data)
	w.Close()
	b.ReportMetric(float64(len(data))/float64(buf.Len()), "ratio")
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		w.Reset(io.Discard)
		w.Write(data)
		w.Close()
	}
}
