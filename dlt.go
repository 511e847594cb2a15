package dltcore

import (
	"context"
	"io"

	"github.com/go-dlt/dltcore/dlf"
	"github.com/go-dlt/dltcore/fibex"
	"github.com/go-dlt/dltcore/filter"
	"github.com/go-dlt/dltcore/message"
	"github.com/go-dlt/dltcore/reader"
	"github.com/go-dlt/dltcore/stats"
)

// DecodeMessage decodes a single DLT message from the front of data. See
// message.DecodeMessage for the full contract.
func DecodeMessage(data []byte, cfg *filter.ProcessedFilterConfig, withStorage bool) ([]byte, message.Parsed, error) {
	return message.DecodeMessage(data, cfg, withStorage)
}

// NewSyncReader wraps source in a synchronous framed message reader.
// withStorage indicates whether each message is prefixed by a 16-byte
// storage header.
func NewSyncReader(source io.Reader, withStorage bool) *reader.SyncReader {
	return reader.NewSyncReader(source, withStorage)
}

// NewAsyncReader wraps source in a context-aware framed message reader.
// See reader.AsyncReader for its cancellation contract.
func NewAsyncReader(source io.Reader, withStorage bool) *reader.AsyncReader {
	return reader.NewAsyncReader(source, withStorage)
}

// ReadMessage reads and decodes the next message from r.
func ReadMessage(r *reader.SyncReader, cfg *filter.ProcessedFilterConfig) (message.Parsed, error) {
	return reader.ReadMessage(r, cfg)
}

// ReadMessageAsync reads and decodes the next message from r, honoring
// ctx cancellation between (not during) blocking reads.
func ReadMessageAsync(ctx context.Context, r *reader.AsyncReader, cfg *filter.ProcessedFilterConfig) (message.Parsed, error) {
	return reader.ReadMessageAsync(ctx, r, cfg)
}

// WrapCompressed wraps source in a decompressing reader for the given
// codec, or returns source unchanged for reader.CompressionNone.
func WrapCompressed(source io.Reader, c reader.Compression) (io.Reader, error) {
	return reader.WrapCompressed(source, c)
}

// CollectStatistics decodes only the headers of each message read from r,
// invoking collector.CollectStatistic for each one.
func CollectStatistics(r *reader.SyncReader, collector stats.StatisticCollector) error {
	return stats.CollectStatistics(r, collector)
}

// LoadFibex loads and combines FIBEX metadata from the given sources.
func LoadFibex(sources ...io.Reader) (*fibex.Metadata, error) {
	return fibex.Load(sources...)
}

// LoadFibexFiles loads and combines FIBEX metadata from the given file
// paths.
func LoadFibexFiles(paths ...string) (*fibex.Metadata, error) {
	return fibex.LoadFiles(paths...)
}

// LoadFilterFile loads a DLF filter definition document.
func LoadFilterFile(path string) (dlf.Config, error) {
	return dlf.LoadFile(path)
}
