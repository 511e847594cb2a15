package reader

import (
	"context"
	"errors"
	"io"

	"github.com/go-dlt/dltcore/errs"
	"github.com/go-dlt/dltcore/filter"
	"github.com/go-dlt/dltcore/header"
	"github.com/go-dlt/dltcore/message"
)

// AsyncReader is the cooperative-suspension counterpart to SyncReader, for
// sources fed from a push-style transport (a network connection or a pipe
// that may stall mid-message) where the caller wants to yield control
// rather than block a goroutine on I/O.
//
// It suspends at exactly two points per message: once waiting for the
// header prefix, once waiting for the remainder implied by the header's
// declared length. Both waits are plain io.Reader calls, each preceded by
// a check of the context.Context; the context's deadline does not bound a
// read once it has started. AsyncReader composes with anything that
// implements io.Reader, including a net.Conn.
//
// AsyncReader is not cancel-safe: if NextMessageSlice's context is
// canceled mid-read, the bytes already consumed from the source for the
// in-progress message are lost, and the reader's internal state no longer
// lines up with a message boundary. Callers that cancel must discard the
// AsyncReader and reopen the source at the last known-good offset.
type AsyncReader struct {
	sync *SyncReader
}

// NewAsyncReader creates an AsyncReader with the default buffer and
// scratch sizes.
func NewAsyncReader(source io.Reader, withStorage bool) *AsyncReader {
	return &AsyncReader{sync: NewSyncReader(source, withStorage)}
}

// NewAsyncReaderSize creates an AsyncReader with explicit buffer and
// scratch capacities.
func NewAsyncReaderSize(source io.Reader, withStorage bool, bufferSize, messageMaxLen int) *AsyncReader {
	return &AsyncReader{sync: NewSyncReaderSize(source, withStorage, bufferSize, messageMaxLen)}
}

// Close returns the reader's scratch buffer to the shared pool. The reader
// must not be used again after Close.
func (r *AsyncReader) Close() { r.sync.Close() }

// WithStorageHeader reports whether message slices produced by this reader
// begin with a StorageHeader.
func (r *AsyncReader) WithStorageHeader() bool { return r.sync.WithStorageHeader() }

// SkippedBytes reports the running total of bytes this reader has discarded
// while resynchronizing past malformed input.
func (r *AsyncReader) SkippedBytes() int64 { return r.sync.SkippedBytes() }

// NextMessageSlice reads the next message-sized slice from the source,
// suspending at the two read points described on AsyncReader. The returned
// slice aliases the reader's internal scratch buffer and is only valid
// until the next call.
func (r *AsyncReader) NextMessageSlice(ctx context.Context) ([]byte, error) {
	storageLen := 0
	if r.sync.withStorage {
		storageLen = header.StorageHeaderLen
	}
	headerLen := storageLen + header.MinStandardHeaderLen

	if err := readFullCtx(ctx, r.sync.source, r.sync.scratch[:headerLen]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, io.EOF
		}

		return nil, err
	}

	messageLen, err := header.PeekOverallLength(r.sync.scratch[storageLen:headerLen])
	if err != nil {
		return nil, err
	}

	totalLen := storageLen + int(messageLen)
	if totalLen > len(r.sync.scratch) {
		return nil, errs.NewUnrecoverable("message length exceeds configured maximum", nil)
	}

	if err := readFullCtx(ctx, r.sync.source, r.sync.scratch[headerLen:totalLen]); err != nil {
		return nil, errs.NewUnrecoverable("stream truncated after header was parsed", err)
	}

	return r.sync.scratch[:totalLen], nil
}

// Resync discards bytes up to the next storage-header sync pattern. See
// SyncReader.Resync for the exact contract; AsyncReader delegates to it
// since resync only ever inspects already-buffered bytes a few at a time
// and isn't worth suspending over.
func (r *AsyncReader) Resync() (int64, error) {
	return r.sync.Resync()
}

// readFullCtx is io.ReadFull with a suspension point: it returns ctx.Err()
// without reading if ctx is already done when it is called. Once the read
// has started, ctx is not checked again. The underlying read is not itself
// interruptible (plain io.Reader offers no cancellation
// hook), so a source that blocks forever after ctx is canceled still holds
// the calling goroutine; callers needing hard cancellation must use a
// source whose Read respects context cancellation directly (e.g. one
// built over net.Conn.SetReadDeadline).
func readFullCtx(ctx context.Context, r io.Reader, buf []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := io.ReadFull(r, buf)
	return err
}

// ReadMessageAsync reads and decodes the next message from r, applying cfg if
// non-nil.
func ReadMessageAsync(ctx context.Context, r *AsyncReader, cfg *filter.ProcessedFilterConfig) (message.Parsed, error) {
	slice, err := r.NextMessageSlice(ctx)
	if err != nil {
		return message.Parsed{}, err
	}

	_, parsed, err := message.DecodeMessage(slice, cfg, r.WithStorageHeader())
	return parsed, err
}
