package stats

import (
	"errors"
	"io"

	"github.com/go-dlt/dltcore/header"
	"github.com/go-dlt/dltcore/message"
	"github.com/go-dlt/dltcore/reader"
)

// CollectStatistics scans every message slice r yields, decoding only its
// headers, and reports one Statistic per message to collector. It returns
// nil once r is exhausted, or the first error returned by r or collector.
func CollectStatistics(r *reader.SyncReader, collector StatisticCollector) error {
	for {
		slice, err := r.NextMessageSlice()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return err
		}

		stat, err := statisticRowInfo(slice, r.WithStorageHeader())
		if err != nil {
			return err
		}

		if err := collector.CollectStatistic(stat); err != nil {
			return err
		}
	}
}

// statisticRowInfo decodes just enough of a message slice to produce a
// Statistic: storage header (if present), standard header, and extended
// header (if signalled) — the payload is sliced out but never parsed.
//
// If the declared overall length is too short for the headers the flags
// select, the header parse error is returned, which stops
// CollectStatistics. PayloadSlice is nil when overall_length lies outside
// data.
func statisticRowInfo(data []byte, withStorage bool) (Statistic, error) {
	cursor := data
	var storageHdr *header.StorageHeader

	if withStorage {
		sh, err := header.ParseStorageHeader(cursor)
		if err != nil {
			return Statistic{}, err
		}
		storageHdr = &sh
		cursor = cursor[header.StorageHeaderLen:]
	}

	std, err := header.ParseStandardHeader(cursor)
	if err != nil {
		return Statistic{}, err
	}

	off := std.Len()
	if !std.UseExtendedHeader {
		return Statistic{
			StorageHeader:  storageHdr,
			StandardHeader: std,
			PayloadSlice:   slicePayload(cursor, off, int(std.OverallLength)),
		}, nil
	}

	ext, err := header.ParseExtendedHeader(cursor[off:])
	if err != nil {
		return Statistic{}, err
	}
	off += header.ExtendedHeaderLen

	stat := Statistic{
		StorageHeader:  storageHdr,
		StandardHeader: std,
		ExtendedHeader: &ext,
		PayloadSlice:   slicePayload(cursor, off, int(std.OverallLength)),
		IsVerbose:      ext.Verbose,
	}

	if ext.Mstp == header.MstpLog {
		lvl := message.LogLevel(ext.Mtin)
		stat.LogLevel = &lvl
	}

	return stat, nil
}

func slicePayload(cursor []byte, off, overallLength int) []byte {
	if overallLength < off || overallLength > len(cursor) {
		return nil
	}

	return cursor[off:overallLength]
}
