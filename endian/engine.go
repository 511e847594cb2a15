// Package endian provides the byte-order plumbing used to decode DLT
// payload arguments.
//
// DLT picks its payload endianness per message via the standard header's
// MostSignificantByteFirst flag, while the standard and extended headers'
// own integer fields are always big-endian regardless of that flag. This
// package exposes both as EndianEngine values so callers never hand-roll
// byte-order branches.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into the single interface this package's callers need: decode existing
// bytes and append new ones without an intermediate allocation.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// LittleEndian and BigEndian are the two payload engines a DLT message can
// select via its MSBF flag.
var (
	LittleEndian EndianEngine = binary.LittleEndian
	BigEndian    EndianEngine = binary.BigEndian
)

// PayloadEndian returns the engine that governs payload argument encoding
// for a message, selected by the standard header's MSBF flag: set means
// big-endian, clear means little-endian.
func PayloadEndian(msbf bool) EndianEngine {
	if msbf {
		return BigEndian
	}

	return LittleEndian
}

// HeaderEndian returns the fixed engine used for standard and extended
// header integer fields (overall_length, session id, timestamp, ...),
// which are always big-endian regardless of the MSBF flag.
func HeaderEndian() EndianEngine {
	return BigEndian
}
