// Package idhash computes composite lookup keys for the FIBEX metadata
// store, the same xxHash64 technique the teacher uses for single-string
// metric ids, extended here to combine three fields.
package idhash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// FrameKey computes the xxHash64 of the (context id, application id,
// frame id) triple used to disambiguate FrameMetadata lookups.
func FrameKey(ctxID, appID string, frameID uint32) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(ctxID)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(appID)
	_, _ = d.WriteString("\x00")

	var frameIDBytes [4]byte
	binary.BigEndian.PutUint32(frameIDBytes[:], frameID)
	_, _ = d.Write(frameIDBytes[:])

	return d.Sum64()
}
