package reader

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression names a transparent decompression scheme WrapCompressed can
// apply to a byte source before message framing begins.
type Compression uint8

const (
	// CompressionNone passes the source through unchanged.
	CompressionNone Compression = iota
	// CompressionZstd decompresses a Zstandard-framed source.
	CompressionZstd
	// CompressionLZ4 decompresses an LZ4-framed source.
	CompressionLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// WrapCompressed wraps source in a streaming decompressor for the given
// scheme, so SyncReader/AsyncReader can frame messages directly out of a
// trace file that was compressed at rest. CompressionNone returns source
// unchanged. The returned io.Reader should be closed (if it implements
// io.Closer) once the caller is done reading, to release decoder
// resources.
func WrapCompressed(source io.Reader, c Compression) (io.Reader, error) {
	switch c {
	case CompressionNone:
		return source, nil

	case CompressionZstd:
		dec, err := zstd.NewReader(source,
			zstd.WithDecoderConcurrency(1),
		)
		if err != nil {
			return nil, fmt.Errorf("dltcore: opening zstd stream: %w", err)
		}

		return &zstdReadCloser{dec}, nil

	case CompressionLZ4:
		return lz4.NewReader(source), nil

	default:
		return nil, fmt.Errorf("dltcore: unsupported compression scheme %s", c)
	}
}

// zstdReadCloser adapts *zstd.Decoder's Close (which has no error return)
// to the io.Closer interface WrapCompressed's callers expect to probe for.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z *zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}
