// Package stats scans a stream of DLT message slices and reports one
// Statistic per message to a caller-supplied collector, without ever
// decoding a payload.
package stats

import (
	"github.com/go-dlt/dltcore/header"
	"github.com/go-dlt/dltcore/message"
)

// Statistic is the header-only view of one message handed to a
// StatisticCollector. LogLevel and ExtendedHeader are nil when the message
// has no extended header, or (LogLevel only) when it has one but isn't a
// Log message.
type Statistic struct {
	LogLevel       *message.LogLevel
	StorageHeader  *header.StorageHeader
	StandardHeader header.StandardHeader
	ExtendedHeader *header.ExtendedHeader
	PayloadSlice   []byte
	IsVerbose      bool
}

// StatisticCollector receives one Statistic per message scanned by
// CollectStatistics. Returning an error stops the scan.
type StatisticCollector interface {
	CollectStatistic(Statistic) error
}

// unknownEcuID is the bucket key used when a message carries no ecu id at
// all, matching the original statistics tool's "NONE" placeholder.
const unknownEcuID = "NONE"

func ecuIDOf(s Statistic) string {
	if s.StorageHeader != nil && s.StorageHeader.EcuID != "" {
		return s.StorageHeader.EcuID
	}
	if s.StandardHeader.EcuID != "" {
		return s.StandardHeader.EcuID
	}

	return unknownEcuID
}
