// Package reader turns a byte source into a stream of DLT message slices,
// without ever holding more than one message's worth of extra memory beyond
// the source's own internal buffer.
package reader

import (
	"bufio"
	"errors"
	"io"

	"github.com/go-dlt/dltcore/errs"
	"github.com/go-dlt/dltcore/filter"
	"github.com/go-dlt/dltcore/header"
	"github.com/go-dlt/dltcore/internal/pool"
	"github.com/go-dlt/dltcore/message"
)

// DefaultBufferSize is the internal buffered-reader capacity SyncReader and
// AsyncReader use when none is given explicitly.
const DefaultBufferSize = pool.DefaultBufferSize

// DefaultMessageMaxLen is the largest message slice a reader will produce:
// a storage header plus the largest overall_length a standard header can
// declare (overall_length is a 16-bit field).
const DefaultMessageMaxLen = pool.StorageScratchSize

// SyncReader buffers a byte source and hands back one message slice at a
// time. It reads the fixed-size header prefix first to learn the message's
// declared length, then reads exactly that many more bytes, so memory use
// never exceeds the configured scratch size regardless of source size.
type SyncReader struct {
	source      *bufio.Reader
	withStorage bool
	scratchBuf  *pool.ByteBuffer
	scratch     []byte
	skipped     int64
}

// NewSyncReader creates a SyncReader with the default buffer and scratch
// sizes. withStorage selects whether message slices are expected to begin
// with a StorageHeader (as in a stored trace file) or a bare StandardHeader
// (as on a live transport).
func NewSyncReader(source io.Reader, withStorage bool) *SyncReader {
	return NewSyncReaderSize(source, withStorage, DefaultBufferSize, DefaultMessageMaxLen)
}

// NewSyncReaderSize creates a SyncReader with explicit buffer and scratch
// capacities. bufferSize should be at least messageMaxLen. The scratch
// buffer is drawn from the shared pool package and must be returned with
// Close when the reader is no longer needed.
func NewSyncReaderSize(source io.Reader, withStorage bool, bufferSize, messageMaxLen int) *SyncReader {
	bb := pool.GetScratch(messageMaxLen)

	return &SyncReader{
		source:      bufio.NewReaderSize(source, bufferSize),
		withStorage: withStorage,
		scratchBuf:  bb,
		scratch:     bb.Bytes(),
	}
}

// Close returns the reader's scratch buffer to the shared pool. The reader
// must not be used again after Close.
func (r *SyncReader) Close() {
	pool.PutScratch(r.scratchBuf)
	r.scratchBuf = nil
	r.scratch = nil
}

// WithStorageHeader reports whether message slices produced by this reader
// begin with a StorageHeader.
func (r *SyncReader) WithStorageHeader() bool { return r.withStorage }

// SkippedBytes reports the running total of bytes this reader has discarded
// while resynchronizing past malformed input.
func (r *SyncReader) SkippedBytes() int64 { return r.skipped }

// NextMessageSlice reads the next message-sized slice from the source. The
// returned slice aliases the reader's internal scratch buffer and is only
// valid until the next call. It returns io.EOF when the source ends before
// the full header prefix (storage header, if any, plus the minimal standard
// header) has been read, including partway through it; a source that ends
// after that prefix but before the declared message length is reported as
// an Unrecoverable error, since the standard header already committed the
// reader to a known message length.
func (r *SyncReader) NextMessageSlice() ([]byte, error) {
	storageLen := 0
	if r.withStorage {
		storageLen = header.StorageHeaderLen
	}
	headerLen := storageLen + header.MinStandardHeaderLen

	if _, err := io.ReadFull(r.source, r.scratch[:headerLen]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, io.EOF
		}

		return nil, err
	}

	messageLen, err := header.PeekOverallLength(r.scratch[storageLen:headerLen])
	if err != nil {
		return nil, err
	}

	totalLen := storageLen + int(messageLen)
	if totalLen > len(r.scratch) {
		return nil, errs.NewUnrecoverable("message length exceeds configured maximum", nil)
	}

	if _, err := io.ReadFull(r.source, r.scratch[headerLen:totalLen]); err != nil {
		return nil, errs.NewUnrecoverable("stream truncated after header was parsed", err)
	}

	return r.scratch[:totalLen], nil
}

// Resync discards bytes from the source up to (not including) the next
// storage-header sync pattern, for recovery after a Malformed error. It
// only applies when the reader is configured withStorage; callers reading
// a bare live transport have no sync pattern to resynchronize on. It
// returns the number of bytes discarded, and adds that count to
// SkippedBytes. It returns io.EOF if the source is exhausted before the
// pattern is found.
func (r *SyncReader) Resync() (int64, error) {
	if !r.withStorage {
		return 0, errs.NewUnrecoverable("resync requires a storage-header-framed source", nil)
	}

	var discarded int64
	for {
		peeked, _ := r.source.Peek(4)
		if len(peeked) < 4 {
			r.skipped += discarded
			return discarded, io.EOF
		}

		if bytesEqualSync(peeked) {
			r.skipped += discarded
			return discarded, nil
		}

		if _, err := r.source.ReadByte(); err != nil {
			r.skipped += discarded
			return discarded, io.EOF
		}
		discarded++
	}
}

func bytesEqualSync(b []byte) bool {
	return b[0] == header.SyncPattern[0] && b[1] == header.SyncPattern[1] &&
		b[2] == header.SyncPattern[2] && b[3] == header.SyncPattern[3]
}

// ReadMessage reads and decodes the next message from r, applying cfg if
// non-nil. It returns io.EOF once the source is exhausted at a message
// boundary, matching NextMessageSlice.
func ReadMessage(r *SyncReader, cfg *filter.ProcessedFilterConfig) (message.Parsed, error) {
	slice, err := r.NextMessageSlice()
	if err != nil {
		return message.Parsed{}, err
	}

	_, parsed, err := message.DecodeMessage(slice, cfg, r.WithStorageHeader())
	return parsed, err
}
