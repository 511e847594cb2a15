// Package header implements the byte-level codecs for DLT's three framing
// headers: StorageHeader, StandardHeader, and ExtendedHeader.
//
// # Layout
//
//	┌────────────────────────────────────────────────────────┐
//	│ StorageHeader (16 bytes, optional)                      │
//	│  "DLT\x01" (4) | seconds LE (4) | micros LE (4) | ecu (4)│
//	├────────────────────────────────────────────────────────┤
//	│ StandardHeader (4 bytes + optional fields)              │
//	│  header_type (1) | counter (1) | overall_length BE (2)  │
//	│  [ecu_id (4)] [session_id BE (4)] [timestamp BE (4)]    │
//	├────────────────────────────────────────────────────────┤
//	│ ExtendedHeader (10 bytes, optional)                     │
//	│  msin (1) | noar (1) | app_id (4) | ctx_id (4)          │
//	└────────────────────────────────────────────────────────┘
//
// Every multi-byte field in these three headers is big-endian, independent
// of the MostSignificantByteFirst flag carried in the header type byte —
// that flag governs payload argument endianness only (see package endian).
//
// HeaderType packs five flag bits and a 3-bit version number:
//
//	bit 0: UseExtendedHeader
//	bit 1: MostSignificantByteFirst (payload endianness)
//	bit 2: WithEcuId
//	bit 3: WithSessionId
//	bit 4: WithTimestamp
//	bits 5-7: version
//
// MSIN packs the verbose flag, message type, and message-type-info:
//
//	bit 0: verbose
//	bits 1-3: message type (MSTP)
//	bits 4-7: message type info (MTIN)
package header
