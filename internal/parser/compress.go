package parser

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the container format of an input file.
type Compression string

const (
	CompressionNone Compression = "none"
	CompressionGzip Compression = "gzip"
	CompressionZstd Compression = "zstd"
	CompressionLZ4  Compression = "lz4"
	CompressionS2   Compression = "s2"
)

// DetectCompression infers the compression of a file from its extension.
func DetectCompression(filePath string) Compression {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".gz", ".gzip":
		return CompressionGzip
	case ".zst", ".zstd":
		return CompressionZstd
	case ".lz4":
		return CompressionLZ4
	case ".s2":
		return CompressionS2
	default:
		return CompressionNone
	}
}

// Decompress wraps r in a decoder chosen by the extension of filePath.
// Closing the result releases the decoder but not r.
func Decompress(filePath string, r io.Reader) (io.ReadCloser, error) {
	switch DetectCompression(filePath) {
	case CompressionGzip:
		reader, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return reader, nil
	case CompressionZstd:
		decoder, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		return decoder.IOReadCloser(), nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case CompressionS2:
		return io.NopCloser(s2.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}
