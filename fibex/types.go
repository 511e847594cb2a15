// Package fibex loads FIBEX (Field Bus Exchange Format) files describing
// non-verbose DLT payload layouts, and resolves a (context id, app id,
// frame id) triple to the argument types a non-verbose payload should be
// decoded as.
package fibex

import "github.com/go-dlt/dltcore/argument"

// PduMetadata is one PDU element's resolved signal types, in
// SEQUENCE-NUMBER order.
type PduMetadata struct {
	Description string
	SignalTypes []argument.TypeInfo
}

// FrameMetadata is one FRAME element's metadata: its constituent PDUs (in
// SEQUENCE-NUMBER order) and, when present, the manufacturer-extension
// fields identifying which DLT messages it describes.
type FrameMetadata struct {
	ID            string
	FrameID       uint32 // ID parsed as a decimal number; 0 if ID isn't numeric
	ShortName     string
	Pdus          []PduMetadata
	ApplicationID string
	ContextID     string
	MessageType   string
	MessageInfo   string
}

// HasIdentification reports whether this frame carries both an
// application id and a context id, the precondition for it to be entered
// into Metadata.FramesByKey.
func (f FrameMetadata) HasIdentification() bool {
	return f.ApplicationID != "" && f.ContextID != ""
}

// Metadata is the combined model loaded from one or more FIBEX files.
type Metadata struct {
	// FramesByKey looks up a frame by the disambiguated (context id, app
	// id, frame id) composite key used when the same numeric frame id is
	// reused across different app/context scopes.
	FramesByKey map[uint64]FrameMetadata
	// FramesByID looks up a frame by its FIBEX ID attribute alone.
	FramesByID map[string]FrameMetadata
	// framesByNumericID is the fallback index Lookup uses when FramesByKey
	// has no match, keyed on the numeric form of the ID attribute alone. It
	// holds every frame with a non-zero numeric ID, with or without a
	// MANUFACTURER-EXTENSION.
	framesByNumericID map[uint32]FrameMetadata
}

// Lookup resolves a non-verbose message's FrameMetadata by context id, app
// id, and frame id (spec.md's non-verbose MessageID field, when the FIBEX
// id attributes encode decimal message ids as in DLT FIBEX dialects). It
// falls back to the plain numeric id if no context/app-scoped entry
// matches, so a FIBEX file omitting manufacturer-extension scoping still
// resolves.
func (m *Metadata) Lookup(ctxID, appID string, frameID uint32) (FrameMetadata, bool) {
	if fr, ok := m.FramesByKey[frameKey(ctxID, appID, frameID)]; ok {
		return fr, true
	}

	fr, ok := m.framesByNumericID[frameID]
	return fr, ok
}
